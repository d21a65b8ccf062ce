package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance.
//
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey; the per-user unique indexes on lists and tasks
// rely on this to resolve racing creates with the same client id.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}
