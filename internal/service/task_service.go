package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/apperrors"
	"taskhub/internal/cache"
	"taskhub/internal/model"
	"taskhub/internal/repository"
)

const taskCacheTTL = 5 * time.Minute

// CreateTaskInput carries the client-supplied fields for a new task.
// CreatedAt is an opaque ISO-8601 string chosen by the caller and stored
// as-is; ListID is a soft reference with no existence check.
type CreateTaskInput struct {
	ID        string
	Title     string
	Notes     string
	DueDate   string
	ListID    string
	CreatedAt string
	Completed bool
}

// UpdateTaskInput is a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Title     *string
	Notes     *string
	DueDate   *string
	ListID    *string
	Completed *bool
}

// TaskService exposes task operations, always scoped to the owning user.
type TaskService interface {
	Tasks(ctx context.Context, userID uuid.UUID, listID string) ([]model.Task, error)
	Create(ctx context.Context, userID uuid.UUID, in CreateTaskInput) (*model.Task, error)
	Update(ctx context.Context, userID uuid.UUID, taskID string, in UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, userID uuid.UUID, taskID string) error
}

type taskService struct {
	repo  repository.TaskRepository
	cache *cache.Client
}

// NewTaskService builds a TaskService with repository and cache.
func NewTaskService(repo repository.TaskRepository, cache *cache.Client) TaskService {
	return &taskService{repo: repo, cache: cache}
}

func taskCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("tasks:%s", userID)
}

// Tasks returns the user's tasks most-recently-created first, optionally
// filtered to a single listId. A listId that matches no list still filters
// normally; orphaned tasks remain reachable this way.
func (s *taskService) Tasks(ctx context.Context, userID uuid.UUID, listID string) ([]model.Task, error) {
	var tasks []model.Task
	if !s.cache.GetJSON(ctx, taskCacheKey(userID), &tasks) {
		fetched, err := s.repo.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		tasks = fetched
		if tasks == nil {
			tasks = []model.Task{}
		}
		s.cache.SetJSON(ctx, taskCacheKey(userID), tasks, taskCacheTTL)
	}

	sortTasksByCreatedDesc(tasks)

	if listID == "" {
		return tasks, nil
	}
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ListID == listID {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// sortTasksByCreatedDesc orders tasks newest first by the caller-supplied
// createdAt string. Timestamps are compared chronologically, not lexically:
// ISO-8601 strings with different UTC offsets do not sort correctly as text.
// Unparseable values fall back to a lexical compare so the order stays total.
func sortTasksByCreatedDesc(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		ta, errA := time.Parse(time.RFC3339, a.CreatedAt)
		tb, errB := time.Parse(time.RFC3339, b.CreatedAt)
		switch {
		case errA == nil && errB == nil:
			if !ta.Equal(tb) {
				return ta.After(tb)
			}
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			if a.CreatedAt != b.CreatedAt {
				return a.CreatedAt > b.CreatedAt
			}
		}
		return a.RowID > b.RowID
	})
}

// Create stores a new task under userID.
func (s *taskService) Create(ctx context.Context, userID uuid.UUID, in CreateTaskInput) (*model.Task, error) {
	in.ID = strings.TrimSpace(in.ID)
	in.Title = strings.TrimSpace(in.Title)
	in.ListID = strings.TrimSpace(in.ListID)
	in.CreatedAt = strings.TrimSpace(in.CreatedAt)
	if in.ID == "" {
		return nil, apperrors.Validation("Task id is required")
	}
	if in.Title == "" {
		return nil, apperrors.Validation("Task title is required")
	}
	if in.ListID == "" {
		return nil, apperrors.Validation("Task listId is required")
	}
	if in.CreatedAt == "" {
		return nil, apperrors.Validation("Task createdAt is required")
	}

	if existing, err := s.repo.FindByUserAndID(ctx, userID, in.ID); err == nil && existing != nil {
		return nil, apperrors.Conflict("Task already exists")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check task existence: %w", err)
	}

	task := &model.Task{
		TaskID:    in.ID,
		UserID:    userID,
		Title:     in.Title,
		Notes:     in.Notes,
		Completed: in.Completed,
		DueDate:   in.DueDate,
		ListID:    in.ListID,
		CreatedAt: in.CreatedAt,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("Task already exists")
		}
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.cache.Delete(ctx, taskCacheKey(userID))
	return task, nil
}

// Update applies a partial update to an owned task and returns the full
// updated record. Fields not present in the input keep their values.
func (s *taskService) Update(ctx context.Context, userID uuid.UUID, taskID string, in UpdateTaskInput) (*model.Task, error) {
	task, err := s.repo.FindByUserAndID(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Task not found")
		}
		return nil, fmt.Errorf("find task: %w", err)
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperrors.Validation("Task title is required")
		}
		task.Title = title
	}
	if in.ListID != nil {
		listID := strings.TrimSpace(*in.ListID)
		if listID == "" {
			return nil, apperrors.Validation("Task listId is required")
		}
		task.ListID = listID
	}
	if in.Notes != nil {
		task.Notes = *in.Notes
	}
	if in.DueDate != nil {
		task.DueDate = *in.DueDate
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.cache.Delete(ctx, taskCacheKey(userID))
	return task, nil
}

// Delete removes an owned task.
func (s *taskService) Delete(ctx context.Context, userID uuid.UUID, taskID string) error {
	rows, err := s.repo.DeleteByUserAndID(ctx, userID, taskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("Task not found")
	}

	s.cache.Delete(ctx, taskCacheKey(userID))
	return nil
}
