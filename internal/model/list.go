package model

import (
	"time"

	"github.com/google/uuid"
)

// List is a named task list owned by exactly one user. The string id is
// client-supplied and unique per owner, not globally; the hidden row id is
// the stable creation-order sort key.
type List struct {
	RowID     uint      `json:"-" gorm:"column:row_id;primaryKey"`
	ListID    string    `json:"id" gorm:"column:list_id;size:64;not null;uniqueIndex:idx_lists_owner_list"`
	UserID    uuid.UUID `json:"-" gorm:"type:char(36);not null;uniqueIndex:idx_lists_owner_list"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Icon      string    `json:"icon" gorm:"size:64;not null"`
	Color     string    `json:"color,omitempty" gorm:"size:32"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
