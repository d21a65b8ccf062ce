package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/model"
)

// ListRepository defines list persistence operations. Every query is
// scoped by the owning user; no call can touch another user's rows.
type ListRepository interface {
	Create(ctx context.Context, list *model.List) error
	CreateBatch(ctx context.Context, lists []model.List) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.List, error)
	FindByUserAndID(ctx context.Context, userID uuid.UUID, listID string) (*model.List, error)
	DeleteByUserAndID(ctx context.Context, userID uuid.UUID, listID string) (int64, error)
}

type listRepository struct {
	db *gorm.DB
}

// NewListRepository builds a GORM-backed list repository.
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) Create(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *listRepository) CreateBatch(ctx context.Context, lists []model.List) error {
	if len(lists) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lists).Error
}

// ListByUser returns the user's lists in creation order, oldest first.
func (r *listRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.List, error) {
	var lists []model.List
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("row_id asc").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *listRepository) FindByUserAndID(ctx context.Context, userID uuid.UUID, listID string) (*model.List, error) {
	var list model.List
	if err := r.db.WithContext(ctx).Where("user_id = ? AND list_id = ?", userID, listID).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// DeleteByUserAndID removes the owned row and reports how many rows matched.
func (r *listRepository) DeleteByUserAndID(ctx context.Context, userID uuid.UUID, listID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND list_id = ?", userID, listID).Delete(&model.List{})
	return res.RowsAffected, res.Error
}
