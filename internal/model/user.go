package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an authenticated account. Emails are stored lowercased and
// trimmed; the password hash never appears in a response body.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// BeforeCreate assigns the UUID before inserting the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
