package models

import (
	"time"

	"github.com/google/uuid"
)

// Repo represents a local git repository a user has ingested commits from.
// A repo belongs to exactly one user; (user_id, name) is unique.
type Repo struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"not null;uniqueIndex:idx_repos_user_name"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_repos_user_name"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Repo
func (Repo) TableName() string {
	return "repos"
}
