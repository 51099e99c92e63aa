package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/logmycode/logmycode/internal/domain/models"
	"github.com/logmycode/logmycode/internal/domain/repository"
	apperror "github.com/logmycode/logmycode/pkg/errors"
)

// CommitRepoImpl implements the CommitRepository interface using GORM
type CommitRepoImpl struct {
	db *gorm.DB
}

// NewCommitRepository creates a new CommitRepoImpl instance
func NewCommitRepository(db *gorm.DB) repository.CommitRepository {
	return &CommitRepoImpl{db: db}
}

// UpsertBatch persists one ingestion batch inside a single transaction.
// Conflicts are resolved by the uniqueness constraints: users by username,
// repos by (user_id, name), commits by (repo_id, hash) with message
// overwrite. Commits are inserted one by one so a duplicate hash within the
// same batch hits the conflict path instead of breaking the insert.
func (r *CommitRepoImpl) UpsertBatch(ctx context.Context, username string, repos []repository.RepoCommitsInput) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := models.User{Username: username}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"username": username}),
		}).Create(&user).Error; err != nil {
			return err
		}

		for _, repoInput := range repos {
			repo := models.Repo{UserID: user.ID, Name: repoInput.Name}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
				DoUpdates: clause.Assignments(map[string]interface{}{"name": repoInput.Name}),
			}).Create(&repo).Error; err != nil {
				return err
			}

			for _, c := range repoInput.Commits {
				committedAt := c.CommittedAt
				if committedAt.IsZero() {
					committedAt = time.Now()
				}

				commit := models.Commit{
					UserID:      user.ID,
					RepoID:      repo.ID,
					Hash:        c.Hash,
					Message:     c.Message,
					CommittedAt: committedAt,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "repo_id"}, {Name: "hash"}},
					DoUpdates: clause.Assignments(map[string]interface{}{"message": c.Message}),
				}).Create(&commit).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return apperror.DatabaseError("upsert commits", err)
	}
	return nil
}

// FindByUserAndDate returns the user's commits whose committed timestamp's
// calendar date equals the requested date, joined with repo names.
func (r *CommitRepoImpl) FindByUserAndDate(ctx context.Context, username string, date time.Time) ([]repository.DayCommit, error) {
	var rows []repository.DayCommit
	err := r.db.WithContext(ctx).
		Model(&models.Commit{}).
		Select("repos.name AS repo_name, commits.hash, commits.message, commits.committed_at").
		Joins("JOIN repos ON repos.id = commits.repo_id").
		Joins("JOIN users ON users.id = commits.user_id").
		Where("users.username = ? AND commits.committed_at::date = ?", username, date.Format("2006-01-02")).
		Order("commits.inserted_at ASC, commits.committed_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperror.DatabaseError("find commits by user and date", err)
	}
	return rows, nil
}
