package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/apperrors"
	"taskhub/internal/cache"
	"taskhub/internal/model"
	"taskhub/internal/repository"
)

const listCacheTTL = 5 * time.Minute

// CreateListInput carries the client-supplied fields for a new list.
type CreateListInput struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// ListService exposes list operations, always scoped to the owning user.
type ListService interface {
	Lists(ctx context.Context, userID uuid.UUID) ([]model.List, error)
	Create(ctx context.Context, userID uuid.UUID, in CreateListInput) (*model.List, error)
	Delete(ctx context.Context, userID uuid.UUID, listID string) error
}

type listService struct {
	repo  repository.ListRepository
	cache *cache.Client
}

// NewListService builds a ListService with repository and cache.
func NewListService(repo repository.ListRepository, cache *cache.Client) ListService {
	return &listService{repo: repo, cache: cache}
}

func listCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("lists:%s", userID)
}

// Lists returns the user's lists in creation order, oldest first.
func (s *listService) Lists(ctx context.Context, userID uuid.UUID) ([]model.List, error) {
	var cached []model.List
	if s.cache.GetJSON(ctx, listCacheKey(userID), &cached) {
		return cached, nil
	}

	lists, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	if lists == nil {
		lists = []model.List{}
	}
	s.cache.SetJSON(ctx, listCacheKey(userID), lists, listCacheTTL)
	return lists, nil
}

// Create stores a new list under userID. The id is client-supplied and must
// be unique for this user only.
func (s *listService) Create(ctx context.Context, userID uuid.UUID, in CreateListInput) (*model.List, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Name = strings.TrimSpace(in.Name)
	in.Icon = strings.TrimSpace(in.Icon)
	if in.ID == "" {
		return nil, apperrors.Validation("List id is required")
	}
	if in.Name == "" {
		return nil, apperrors.Validation("List name is required")
	}
	if in.Icon == "" {
		return nil, apperrors.Validation("List icon is required")
	}

	if existing, err := s.repo.FindByUserAndID(ctx, userID, in.ID); err == nil && existing != nil {
		return nil, apperrors.Conflict("List already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check list existence: %w", err)
	}

	list := &model.List{
		ListID: in.ID,
		UserID: userID,
		Name:   in.Name,
		Icon:   in.Icon,
		Color:  strings.TrimSpace(in.Color),
	}
	if err := s.repo.Create(ctx, list); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("List already exists")
		}
		return nil, fmt.Errorf("create list: %w", err)
	}

	s.cache.Delete(ctx, listCacheKey(userID))
	return list, nil
}

// Delete removes an owned list. The four default ids are rejected before
// any lookup, so they stay protected even when no such row exists. Tasks
// referencing the deleted list are left in place.
func (s *listService) Delete(ctx context.Context, userID uuid.UUID, listID string) error {
	if IsDefaultListID(listID) {
		return apperrors.Validation("Default lists cannot be deleted")
	}

	rows, err := s.repo.DeleteByUserAndID(ctx, userID, listID)
	if err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("List not found")
	}

	s.cache.Delete(ctx, listCacheKey(userID))
	return nil
}
