package repository

import (
	"context"
	"time"

	"github.com/logmycode/logmycode/internal/domain/models"
)

// SummaryRepository defines the data access operations for daily summaries
type SummaryRepository interface {
	// Upsert stores the summary for (user, date), overwriting any prior
	// row and refreshing created_at. Unlike commit ingestion it never
	// creates the user implicitly: an unknown username fails with a
	// user-not-found error.
	Upsert(ctx context.Context, username string, date time.Time, summary string, totalCommits int) error

	// FindByDate returns the summary stored for (user, date), or
	// (nil, nil) when no row matches.
	FindByDate(ctx context.Context, username string, date time.Time) (*models.DailySummary, error)

	// FindLatestBefore returns the summary with the greatest date strictly
	// before the given date, or (nil, nil) when none exists.
	FindLatestBefore(ctx context.Context, username string, date time.Time) (*models.DailySummary, error)
}
