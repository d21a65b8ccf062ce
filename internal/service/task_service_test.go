package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"taskhub/internal/apperrors"
	"taskhub/internal/model"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskService_Tasks_ChronologicalNotLexicalOrder(t *testing.T) {
	userID := uuid.New()

	// "2024-01-01T12:00:00+14:00" is 2023-12-31T22:00:00Z: lexically it
	// sorts after the midnight UTC entry, chronologically it is earlier.
	repo := new(MockTaskRepository)
	repo.On("ListByUser", mock.Anything, userID).Return([]model.Task{
		{RowID: 1, TaskID: "early", Title: "early", ListID: "inbox", CreatedAt: "2024-01-01T12:00:00+14:00"},
		{RowID: 2, TaskID: "late", Title: "late", ListID: "inbox", CreatedAt: "2024-01-01T00:00:00Z"},
		{RowID: 3, TaskID: "latest", Title: "latest", ListID: "inbox", CreatedAt: "2024-01-02T09:30:00.000Z"},
	}, nil)

	svc := NewTaskService(repo, nil)
	tasks, err := svc.Tasks(context.Background(), userID, "")
	assert.NoError(t, err)
	assert.Len(t, tasks, 3)
	assert.Equal(t, "latest", tasks[0].TaskID)
	assert.Equal(t, "late", tasks[1].TaskID)
	assert.Equal(t, "early", tasks[2].TaskID)
}

func TestTaskService_Tasks_FilterByListID(t *testing.T) {
	userID := uuid.New()
	repo := new(MockTaskRepository)
	repo.On("ListByUser", mock.Anything, userID).Return([]model.Task{
		{RowID: 1, TaskID: "t1", Title: "a", ListID: "work", CreatedAt: "2024-01-01T00:00:00Z"},
		{RowID: 2, TaskID: "t2", Title: "b", ListID: "inbox", CreatedAt: "2024-01-02T00:00:00Z"},
		{RowID: 3, TaskID: "t3", Title: "c", ListID: "work", CreatedAt: "2024-01-03T00:00:00Z"},
	}, nil)

	svc := NewTaskService(repo, nil)

	tasks, err := svc.Tasks(context.Background(), userID, "work")
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "t3", tasks[0].TaskID)
	assert.Equal(t, "t1", tasks[1].TaskID)
}

func TestTaskService_Tasks_OrphanedListIDStillFilters(t *testing.T) {
	// The list "gone" no longer exists; its tasks must stay reachable.
	userID := uuid.New()
	repo := new(MockTaskRepository)
	repo.On("ListByUser", mock.Anything, userID).Return([]model.Task{
		{RowID: 1, TaskID: "t1", Title: "orphan", ListID: "gone", CreatedAt: "2024-01-01T00:00:00Z"},
	}, nil)

	svc := NewTaskService(repo, nil)
	tasks, err := svc.Tasks(context.Background(), userID, "gone")
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].TaskID)
}

func TestTaskService_Create(t *testing.T) {
	userID := uuid.New()
	valid := CreateTaskInput{
		ID:        "t1",
		Title:     "Buy milk",
		ListID:    "inbox",
		CreatedAt: "2024-01-01T00:00:00.000Z",
	}

	tests := []struct {
		name         string
		input        CreateTaskInput
		setupMock    func(repo *MockTaskRepository)
		expectedKind apperrors.Kind
		wantOK       bool
	}{
		{
			name:  "successful create with defaults",
			input: valid,
			setupMock: func(repo *MockTaskRepository) {
				repo.On("FindByUserAndID", mock.Anything, userID, "t1").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(tk *model.Task) bool {
					return tk.TaskID == "t1" && !tk.Completed && tk.CreatedAt == "2024-01-01T00:00:00.000Z"
				})).Return(nil)
			},
			wantOK: true,
		},
		{
			name:  "listId needs no matching list",
			input: CreateTaskInput{ID: "t2", Title: "Orphan", ListID: "no-such-list", CreatedAt: "2024-01-01T00:00:00Z"},
			setupMock: func(repo *MockTaskRepository) {
				repo.On("FindByUserAndID", mock.Anything, userID, "t2").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)
			},
			wantOK: true,
		},
		{
			name:         "blank title",
			input:        CreateTaskInput{ID: "t1", Title: "  ", ListID: "inbox", CreatedAt: "2024-01-01T00:00:00Z"},
			setupMock:    func(repo *MockTaskRepository) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "missing createdAt",
			input:        CreateTaskInput{ID: "t1", Title: "Buy milk", ListID: "inbox"},
			setupMock:    func(repo *MockTaskRepository) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "missing listId",
			input:        CreateTaskInput{ID: "t1", Title: "Buy milk", CreatedAt: "2024-01-01T00:00:00Z"},
			setupMock:    func(repo *MockTaskRepository) {},
			expectedKind: apperrors.KindValidation,
		},
		{
			name:  "duplicate id for same user",
			input: valid,
			setupMock: func(repo *MockTaskRepository) {
				repo.On("FindByUserAndID", mock.Anything, userID, "t1").Return(&model.Task{TaskID: "t1"}, nil)
			},
			expectedKind: apperrors.KindConflict,
		},
		{
			name:  "racing duplicate surfaces as conflict",
			input: valid,
			setupMock: func(repo *MockTaskRepository) {
				repo.On("FindByUserAndID", mock.Anything, userID, "t1").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(gorm.ErrDuplicatedKey)
			},
			expectedKind: apperrors.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTaskRepository)
			tt.setupMock(repo)

			svc := NewTaskService(repo, nil)
			task, err := svc.Create(context.Background(), userID, tt.input)

			if tt.wantOK {
				assert.NoError(t, err)
				assert.NotNil(t, task)
				assert.Equal(t, userID, task.UserID)
			} else {
				appErr := apperrors.FromError(err)
				assert.NotNil(t, appErr)
				assert.Equal(t, tt.expectedKind, appErr.Kind)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Update_PartialLeavesOtherFieldsAlone(t *testing.T) {
	userID := uuid.New()
	stored := &model.Task{
		RowID:     7,
		TaskID:    "t1",
		UserID:    userID,
		Title:     "Buy milk",
		Notes:     "2 liters",
		DueDate:   "2024-02-01",
		ListID:    "inbox",
		CreatedAt: "2024-01-01T00:00:00.000Z",
	}

	repo := new(MockTaskRepository)
	repo.On("FindByUserAndID", mock.Anything, userID, "t1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	svc := NewTaskService(repo, nil)
	task, err := svc.Update(context.Background(), userID, "t1", UpdateTaskInput{Completed: boolPtr(true)})
	assert.NoError(t, err)

	assert.True(t, task.Completed)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2 liters", task.Notes)
	assert.Equal(t, "2024-02-01", task.DueDate)
	assert.Equal(t, "inbox", task.ListID)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", task.CreatedAt)
}

func TestTaskService_Update(t *testing.T) {
	userID := uuid.New()

	t.Run("missing task", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("FindByUserAndID", mock.Anything, userID, "nope").Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(repo, nil)
		_, err := svc.Update(context.Background(), userID, "nope", UpdateTaskInput{Completed: boolPtr(true)})
		appErr := apperrors.FromError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("FindByUserAndID", mock.Anything, userID, "t1").Return(&model.Task{TaskID: "t1", Title: "keep"}, nil)

		svc := NewTaskService(repo, nil)
		_, err := svc.Update(context.Background(), userID, "t1", UpdateTaskInput{Title: strPtr("   ")})
		appErr := apperrors.FromError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	})

	t.Run("moving between lists", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("FindByUserAndID", mock.Anything, userID, "t1").Return(&model.Task{TaskID: "t1", Title: "keep", ListID: "inbox"}, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(tk *model.Task) bool {
			return tk.ListID == "work" && tk.Title == "keep"
		})).Return(nil)

		svc := NewTaskService(repo, nil)
		task, err := svc.Update(context.Background(), userID, "t1", UpdateTaskInput{ListID: strPtr("work")})
		assert.NoError(t, err)
		assert.Equal(t, "work", task.ListID)
		repo.AssertExpectations(t)
	})

	t.Run("clearing notes with empty string", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("FindByUserAndID", mock.Anything, userID, "t1").Return(&model.Task{TaskID: "t1", Title: "keep", Notes: "old"}, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

		svc := NewTaskService(repo, nil)
		task, err := svc.Update(context.Background(), userID, "t1", UpdateTaskInput{Notes: strPtr("")})
		assert.NoError(t, err)
		assert.Empty(t, task.Notes)
	})
}

func TestTaskService_Delete(t *testing.T) {
	userID := uuid.New()

	t.Run("missing task", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("DeleteByUserAndID", mock.Anything, userID, "nope").Return(int64(0), nil)

		svc := NewTaskService(repo, nil)
		err := svc.Delete(context.Background(), userID, "nope")
		appErr := apperrors.FromError(err)
		assert.NotNil(t, appErr)
		assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
	})

	t.Run("existing task", func(t *testing.T) {
		repo := new(MockTaskRepository)
		repo.On("DeleteByUserAndID", mock.Anything, userID, "t1").Return(int64(1), nil)

		svc := NewTaskService(repo, nil)
		assert.NoError(t, svc.Delete(context.Background(), userID, "t1"))
	})
}
