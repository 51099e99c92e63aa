package repository

import (
	"context"
	"time"
)

// CommitInput is one commit as received from a scan, before persistence.
// CommittedAt may be zero when the source omitted a timestamp; the store
// substitutes the ingestion time.
type CommitInput struct {
	Hash        string
	Message     string
	CommittedAt time.Time
}

// RepoCommitsInput groups the commits of one repository in an ingestion batch.
type RepoCommitsInput struct {
	Name    string
	Commits []CommitInput
}

// DayCommit is a stored commit joined with its owning repository's name,
// as returned by day queries.
type DayCommit struct {
	RepoName    string
	Hash        string
	Message     string
	CommittedAt time.Time
}

// CommitRepository defines the data access operations for ingested commits
type CommitRepository interface {
	// UpsertBatch persists an ingestion batch inside one transaction:
	// the user is upserted by username, each repo by (user, name), each
	// commit by (repo, hash) with the message overwritten on conflict.
	// On any failure the whole transaction rolls back and the error
	// propagates unmodified.
	UpsertBatch(ctx context.Context, username string, repos []RepoCommitsInput) error

	// FindByUserAndDate returns all of a user's commits whose committed
	// timestamp falls on the given calendar date, joined with repo names.
	FindByUserAndDate(ctx context.Context, username string, date time.Time) ([]DayCommit, error)
}
