package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskhub/internal/model"
)

// TaskRepository defines task persistence operations, all scoped by the
// owning user.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error)
	FindByUserAndID(ctx context.Context, userID uuid.UUID, taskID string) (*model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	DeleteByUserAndID(ctx context.Context, userID uuid.UUID, taskID string) (int64, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository builds a GORM-backed task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) FindByUserAndID(ctx context.Context, userID uuid.UUID, taskID string) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("user_id = ? AND task_id = ?", userID, taskID).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *taskRepository) DeleteByUserAndID(ctx context.Context, userID uuid.UUID, taskID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ? AND task_id = ?", userID, taskID).Delete(&model.Task{})
	return res.RowsAffected, res.Error
}
