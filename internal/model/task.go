package model

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do item. ListID is a soft reference: it names a list
// without the store checking that the list exists, so deleting a list
// leaves its tasks in place. CreatedAt is the caller-supplied ISO-8601
// string and is authoritative; only UpdatedAt is server-assigned.
type Task struct {
	RowID     uint      `json:"-" gorm:"column:row_id;primaryKey"`
	TaskID    string    `json:"id" gorm:"column:task_id;size:64;not null;uniqueIndex:idx_tasks_owner_task"`
	UserID    uuid.UUID `json:"-" gorm:"type:char(36);not null;uniqueIndex:idx_tasks_owner_task"`
	Title     string    `json:"title" gorm:"size:500;not null"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	Completed bool      `json:"completed" gorm:"not null;default:false"`
	DueDate   string    `json:"dueDate,omitempty" gorm:"size:64"`
	ListID    string    `json:"listId" gorm:"column:list_id;size:64;not null;index"`
	CreatedAt string    `json:"createdAt" gorm:"column:created_at;size:64;not null;autoCreateTime:false"`
	UpdatedAt time.Time `json:"-"`
}
