package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a developer whose commits are being logged.
// Users are created lazily on first commit ingestion and never deleted.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
