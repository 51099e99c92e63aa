package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/logmycode/logmycode/internal/domain/models"
	"github.com/logmycode/logmycode/internal/domain/repository"
	apperror "github.com/logmycode/logmycode/pkg/errors"
)

// SummaryRepoImpl implements the SummaryRepository interface using GORM
type SummaryRepoImpl struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new SummaryRepoImpl instance
func NewSummaryRepository(db *gorm.DB) repository.SummaryRepository {
	return &SummaryRepoImpl{db: db}
}

// Upsert stores the summary for (user, date). Summary writes never create
// users implicitly: the user must already exist from commit ingestion.
func (r *SummaryRepoImpl) Upsert(ctx context.Context, username string, date time.Time, summary string, totalCommits int) error {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.UserNotFound(username)
		}
		return apperror.DatabaseError("find user for summary", err)
	}

	row := models.DailySummary{
		UserID:       user.ID,
		Date:         date,
		Summary:      summary,
		TotalCommits: totalCommits,
		CreatedAt:    time.Now(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"summary":       summary,
			"total_commits": totalCommits,
			"created_at":    time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return apperror.DatabaseError("upsert summary", err)
	}
	return nil
}

// FindByDate returns the summary stored for (user, date), or (nil, nil)
// when no row matches.
func (r *SummaryRepoImpl) FindByDate(ctx context.Context, username string, date time.Time) (*models.DailySummary, error) {
	var s models.DailySummary
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = daily_summaries.user_id").
		Where("users.username = ? AND daily_summaries.date = ?", username, date.Format("2006-01-02")).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.DatabaseError("find summary by date", err)
	}
	return &s, nil
}

// FindLatestBefore returns the summary with the greatest date strictly
// before the given date, or (nil, nil) when none exists.
func (r *SummaryRepoImpl) FindLatestBefore(ctx context.Context, username string, date time.Time) (*models.DailySummary, error) {
	var s models.DailySummary
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = daily_summaries.user_id").
		Where("users.username = ? AND daily_summaries.date < ?", username, date.Format("2006-01-02")).
		Order("daily_summaries.date DESC").
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperror.DatabaseError("find latest summary before date", err)
	}
	return &s, nil
}
