package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"taskhub/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockListRepository is a mock implementation of repository.ListRepository.
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, list *model.List) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockListRepository) CreateBatch(ctx context.Context, lists []model.List) error {
	args := m.Called(ctx, lists)
	return args.Error(0)
}

func (m *MockListRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.List, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.List), args.Error(1)
}

func (m *MockListRepository) FindByUserAndID(ctx context.Context, userID uuid.UUID, listID string) (*model.List, error) {
	args := m.Called(ctx, userID, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.List), args.Error(1)
}

func (m *MockListRepository) DeleteByUserAndID(ctx context.Context, userID uuid.UUID, listID string) (int64, error) {
	args := m.Called(ctx, userID, listID)
	return args.Get(0).(int64), args.Error(1)
}

// MockTaskRepository is a mock implementation of repository.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByUserAndID(ctx context.Context, userID uuid.UUID, taskID string) (*model.Task, error) {
	args := m.Called(ctx, userID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteByUserAndID(ctx context.Context, userID uuid.UUID, taskID string) (int64, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(int64), args.Error(1)
}
