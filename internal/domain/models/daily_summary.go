package models

import (
	"time"

	"github.com/google/uuid"
)

// DailySummary is the generated work summary for one user on one calendar
// date. (user_id, date) is unique; regeneration overwrites the row and
// refreshes created_at rather than versioning.
type DailySummary struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID       uuid.UUID `json:"user_id" gorm:"not null;uniqueIndex:idx_summaries_user_date"`
	User         User      `json:"-" gorm:"foreignKey:UserID"`
	Date         time.Time `json:"date" gorm:"type:date;not null;uniqueIndex:idx_summaries_user_date"`
	Summary      string    `json:"summary" gorm:"not null"`
	TotalCommits int       `json:"total_commits"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for DailySummary
func (DailySummary) TableName() string {
	return "daily_summaries"
}

// DateString returns the summary date in YYYY-MM-DD form
func (s *DailySummary) DateString() string {
	return s.Date.Format("2006-01-02")
}
