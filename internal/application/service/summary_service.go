package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/logmycode/logmycode/internal/application/dto"
	"github.com/logmycode/logmycode/internal/domain/models"
	"github.com/logmycode/logmycode/internal/domain/repository"
	domainservice "github.com/logmycode/logmycode/internal/domain/service"
	apperror "github.com/logmycode/logmycode/pkg/errors"
	"github.com/logmycode/logmycode/pkg/logger"
)

// dateLayout is the wire format for day identifiers
const dateLayout = "2006-01-02"

// noSummaryPlaceholder is returned when a day has no stored summary.
// The text is part of the API contract.
const noSummaryPlaceholder = "No summary generated yet."

// SummaryService orchestrates the ingest and read paths: persist a scanned
// batch, generate its summary, and shape stored data for clients.
type SummaryService struct {
	commits    repository.CommitRepository
	summaries  repository.SummaryRepository
	summarizer domainservice.Summarizer
	log        *logger.Logger
}

// NewSummaryService creates a new SummaryService instance
func NewSummaryService(
	commits repository.CommitRepository,
	summaries repository.SummaryRepository,
	summarizer domainservice.Summarizer,
) *SummaryService {
	return &SummaryService{
		commits:    commits,
		summaries:  summaries,
		summarizer: summarizer,
		log:        logger.Get().WithFields(logger.Component("summary_service")),
	}
}

// IngestCommits runs the full ingest pipeline: persist the batch, re-read the
// day's stored commits, generate and store the summary, and return it with
// the day's deduplicated repo groups. Each step is strictly sequential; a
// persistence failure aborts the request, a generation failure does not.
func (s *SummaryService) IngestCommits(ctx context.Context, req *dto.BulkCommitsRequest) (*dto.SummaryResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, apperror.ValidationError("date", "date must be formatted YYYY-MM-DD")
	}

	if err := s.commits.UpsertBatch(ctx, req.UserID, toBatchInput(req.Repos)); err != nil {
		return nil, err
	}

	dayCommits, err := s.commits.FindByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		return nil, err
	}

	summaryText, outcome := s.summarizer.GenerateDailySummary(ctx, domainservice.SummaryRequest{
		Username:  req.UserID,
		Date:      req.Date,
		Commits:   dayCommits,
		Template:  req.Template,
		ManualLog: req.ManualLog,
	})
	if outcome != domainservice.OutcomeGenerated {
		s.log.Warn("Summary generation degraded to fallback text",
			logger.String("outcome", outcome.String()),
			logger.Username(req.UserID),
			logger.Date(req.Date),
		)
	}

	if err := s.summaries.Upsert(ctx, req.UserID, date, summaryText, len(dayCommits)); err != nil {
		return nil, err
	}

	s.log.Info("Ingested commit batch",
		logger.Username(req.UserID),
		logger.Date(req.Date),
		logger.Int("stored_commits", len(dayCommits)),
		logger.String("outcome", outcome.String()),
	)

	return &dto.SummaryResponse{
		UserID:  req.UserID,
		Date:    req.Date,
		Summary: summaryText,
		Repos:   GroupCommits(dayCommits),
	}, nil
}

// DailySummary returns the stored summary and deduplicated commit groups for
// one day. A day with no stored summary yields the fixed placeholder text and
// whatever commits exist, possibly none.
func (s *SummaryService) DailySummary(ctx context.Context, username, dateStr string) (*dto.SummaryResponse, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, apperror.ValidationError("date", "date must be formatted YYYY-MM-DD")
	}

	stored, err := s.summaries.FindByDate(ctx, username, date)
	if err != nil {
		return nil, err
	}

	dayCommits, err := s.commits.FindByUserAndDate(ctx, username, date)
	if err != nil {
		return nil, err
	}

	summaryText := noSummaryPlaceholder
	if stored != nil && stored.Summary != "" {
		summaryText = stored.Summary
	}

	return &dto.SummaryResponse{
		UserID:  username,
		Date:    dateStr,
		Summary: summaryText,
		Repos:   GroupCommits(dayCommits),
	}, nil
}

// RecentSummaries returns the requested day's summary and the latest summary
// strictly before it. The two reads are independent and run concurrently.
// Missing rows and empty stored texts become null summaries; a missing prior
// day has date "N/A".
func (s *SummaryService) RecentSummaries(ctx context.Context, username, dateStr string) (*dto.RecentSummariesResponse, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, apperror.ValidationError("date", "date must be formatted YYYY-MM-DD")
	}

	var today, prior *models.DailySummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = s.summaries.FindByDate(gctx, username, date)
		return err
	})
	g.Go(func() error {
		var err error
		prior, err = s.summaries.FindLatestBefore(gctx, username, date)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.RecentSummariesResponse{
		UserID:    username,
		Today:     dto.SummaryDigest{Date: dateStr},
		Yesterday: dto.SummaryDigest{Date: "N/A"},
	}
	if today != nil {
		if today.Summary != "" {
			resp.Today.Summary = &today.Summary
		}
		resp.Today.TotalCommits = today.TotalCommits
	}
	if prior != nil {
		resp.Yesterday.Date = prior.DateString()
		if prior.Summary != "" {
			resp.Yesterday.Summary = &prior.Summary
		}
		resp.Yesterday.TotalCommits = prior.TotalCommits
	}
	return resp, nil
}

func toBatchInput(repos []dto.RepoPayload) []repository.RepoCommitsInput {
	batch := make([]repository.RepoCommitsInput, 0, len(repos))
	for _, r := range repos {
		commits := make([]repository.CommitInput, 0, len(r.Commits))
		for _, c := range r.Commits {
			var committedAt time.Time
			if c.Timestamp != "" {
				// unparseable timestamps fall back to the ingestion time
				committedAt, _ = time.Parse(time.RFC3339, c.Timestamp)
			}
			commits = append(commits, repository.CommitInput{
				Hash:        c.Hash,
				Message:     c.Message,
				CommittedAt: committedAt,
			})
		}
		batch = append(batch, repository.RepoCommitsInput{Name: r.Name, Commits: commits})
	}
	return batch
}
