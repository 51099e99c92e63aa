package models

import (
	"time"

	"github.com/google/uuid"
)

// Commit is a single ingested git commit. (repo_id, hash) is unique;
// re-ingesting the same pair overwrites the message in place. The owning
// user is denormalized for cheap per-user day queries.
type Commit struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"not null"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
	RepoID      uuid.UUID `json:"repo_id" gorm:"not null;uniqueIndex:idx_commits_repo_hash"`
	Repo        Repo      `json:"-" gorm:"foreignKey:RepoID"`
	Hash        string    `json:"hash" gorm:"not null;uniqueIndex:idx_commits_repo_hash"`
	Message     string    `json:"message" gorm:"not null"`
	CommittedAt time.Time `json:"committed_at" gorm:"not null"`
	InsertedAt  time.Time `json:"inserted_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Commit
func (Commit) TableName() string {
	return "commits"
}
