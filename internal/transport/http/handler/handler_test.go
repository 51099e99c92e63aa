package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logmycode/logmycode/internal/application/service"
	"github.com/logmycode/logmycode/internal/domain/models"
	"github.com/logmycode/logmycode/internal/domain/repository"
	domainservice "github.com/logmycode/logmycode/internal/domain/service"
)

type fakeCommitRepo struct {
	upsertCalls int
	stored      []repository.DayCommit
}

func (f *fakeCommitRepo) UpsertBatch(_ context.Context, _ string, repos []repository.RepoCommitsInput) error {
	f.upsertCalls++
	for _, r := range repos {
		for _, c := range r.Commits {
			f.stored = append(f.stored, repository.DayCommit{
				RepoName:    r.Name,
				Hash:        c.Hash,
				Message:     c.Message,
				CommittedAt: c.CommittedAt,
			})
		}
	}
	return nil
}

func (f *fakeCommitRepo) FindByUserAndDate(_ context.Context, _ string, _ time.Time) ([]repository.DayCommit, error) {
	return f.stored, nil
}

type fakeSummaryRepo struct {
	upsertCalls int
	byDate      *models.DailySummary
	latest      *models.DailySummary
}

func (f *fakeSummaryRepo) Upsert(_ context.Context, _ string, date time.Time, summary string, totalCommits int) error {
	f.upsertCalls++
	f.byDate = &models.DailySummary{Date: date, Summary: summary, TotalCommits: totalCommits}
	return nil
}

func (f *fakeSummaryRepo) FindByDate(_ context.Context, _ string, _ time.Time) (*models.DailySummary, error) {
	return f.byDate, nil
}

func (f *fakeSummaryRepo) FindLatestBefore(_ context.Context, _ string, _ time.Time) (*models.DailySummary, error) {
	return f.latest, nil
}

type staticSummarizer struct{}

func (staticSummarizer) GenerateDailySummary(_ context.Context, req domainservice.SummaryRequest) (string, domainservice.Outcome) {
	return "Summary for " + req.Date, domainservice.OutcomeGenerated
}

func newTestRouter(commits *fakeCommitRepo, summaries *fakeSummaryRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewSummaryService(commits, summaries, staticSummarizer{})
	commitHandler := NewCommitHandler(svc)
	summaryHandler := NewSummaryHandler(svc)

	r := gin.New()
	r.GET("/health", HealthHandler())
	api := r.Group("/api")
	api.POST("/commits", commitHandler.IngestCommits)
	api.GET("/daily-summary", summaryHandler.GetDailySummary)
	api.GET("/recent-summaries", summaryHandler.GetRecentSummaries)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakeCommitRepo{}, &fakeSummaryRepo{})

	w, body := doRequest(t, r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestIngestThenFetchDay(t *testing.T) {
	commits := &fakeCommitRepo{}
	summaries := &fakeSummaryRepo{}
	r := newTestRouter(commits, summaries)

	payload := `{
		"userId": "alen",
		"date": "2025-12-06",
		"repos": [
			{"name": "project-x", "commits": [
				{"hash": "abc1234", "message": "feat: add login validation", "timestamp": "2025-12-06T10:15:00Z"}
			]}
		]
	}`

	w, body := doRequest(t, r, http.MethodPost, "/api/commits", payload)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alen", body["userId"])
	assert.Equal(t, "2025-12-06", body["date"])
	assert.Equal(t, "Summary for 2025-12-06", body["summary"])

	repos := body["repos"].([]interface{})
	require.Len(t, repos, 1)
	repo := repos[0].(map[string]interface{})
	assert.Equal(t, "project-x", repo["name"])
	repoCommits := repo["commits"].([]interface{})
	require.Len(t, repoCommits, 1)
	assert.Equal(t, "abc1234", repoCommits[0].(map[string]interface{})["hash"])

	// a later GET returns the same shape with the stored summary
	w, body = doRequest(t, r, http.MethodGet, "/api/daily-summary?userId=alen&date=2025-12-06", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Summary for 2025-12-06", body["summary"])
	repos = body["repos"].([]interface{})
	require.Len(t, repos, 1)
	assert.Equal(t, "project-x", repos[0].(map[string]interface{})["name"])
}

func TestIngest_DuplicateHashesInOnePayload(t *testing.T) {
	r := newTestRouter(&fakeCommitRepo{}, &fakeSummaryRepo{})

	payload := `{
		"userId": "alen",
		"date": "2025-12-06",
		"repos": [
			{"name": "project-x", "commits": [
				{"hash": "abc1234", "message": "first"},
				{"hash": "abc1234", "message": "second"}
			]}
		]
	}`

	w, body := doRequest(t, r, http.MethodPost, "/api/commits", payload)

	require.Equal(t, http.StatusOK, w.Code)
	repos := body["repos"].([]interface{})
	repoCommits := repos[0].(map[string]interface{})["commits"].([]interface{})
	assert.Len(t, repoCommits, 1)
	assert.Equal(t, "first", repoCommits[0].(map[string]interface{})["message"])
}

func TestIngest_MalformedBodyShortCircuits(t *testing.T) {
	commits := &fakeCommitRepo{}
	summaries := &fakeSummaryRepo{}
	r := newTestRouter(commits, summaries)

	w, body := doRequest(t, r, http.MethodPost, "/api/commits", `{"userId": "alen", "date": "2025-12-06"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid payload", body["error"])
	assert.NotEmpty(t, body["details"])

	// nothing was persisted
	assert.Zero(t, commits.upsertCalls)
	assert.Zero(t, summaries.upsertCalls)
}

func TestIngest_InvalidDateShortCircuits(t *testing.T) {
	commits := &fakeCommitRepo{}
	r := newTestRouter(commits, &fakeSummaryRepo{})

	payload := `{"userId": "alen", "date": "Dec 6", "repos": [{"name": "p", "commits": [{"hash": "a", "message": "m"}]}]}`
	w, body := doRequest(t, r, http.MethodPost, "/api/commits", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid payload", body["error"])
	assert.Zero(t, commits.upsertCalls)
}

func TestDailySummary_MissingParams(t *testing.T) {
	r := newTestRouter(&fakeCommitRepo{}, &fakeSummaryRepo{})

	w, body := doRequest(t, r, http.MethodGet, "/api/daily-summary?userId=alen", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing userId or date", body["error"])

	w, body = doRequest(t, r, http.MethodGet, "/api/daily-summary?date=2025-12-06", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing userId or date", body["error"])
}

func TestDailySummary_MalformedDateParam(t *testing.T) {
	r := newTestRouter(&fakeCommitRepo{}, &fakeSummaryRepo{})

	w, body := doRequest(t, r, http.MethodGet, "/api/daily-summary?userId=alen&date=Dec+6", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid userId or date", body["error"])
	assert.NotEmpty(t, body["details"])
}

func TestRecentSummaries_MalformedDateParam(t *testing.T) {
	r := newTestRouter(&fakeCommitRepo{}, &fakeSummaryRepo{})

	w, body := doRequest(t, r, http.MethodGet, "/api/recent-summaries?userId=alen&date=06-12-2025", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid userId or date", body["error"])
}

func TestDailySummary_PlaceholderWhenEmpty(t *testing.T) {
	r := newTestRouter(&fakeCommitRepo{}, &fakeSummaryRepo{})

	w, body := doRequest(t, r, http.MethodGet, "/api/daily-summary?userId=alen&date=2025-12-06", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No summary generated yet.", body["summary"])
	assert.Empty(t, body["repos"])
}

func TestRecentSummaries_MissingUser(t *testing.T) {
	r := newTestRouter(&fakeCommitRepo{}, &fakeSummaryRepo{})

	w, body := doRequest(t, r, http.MethodGet, "/api/recent-summaries?date=2025-12-06", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing userId", body["error"])
}

func TestRecentSummaries_Shape(t *testing.T) {
	summaries := &fakeSummaryRepo{
		latest: &models.DailySummary{
			Date:         time.Date(2025, 12, 4, 0, 0, 0, 0, time.UTC),
			Summary:      "earlier work",
			TotalCommits: 2,
		},
	}
	r := newTestRouter(&fakeCommitRepo{}, summaries)

	w, body := doRequest(t, r, http.MethodGet, "/api/recent-summaries?userId=alen&date=2025-12-06", "")

	require.Equal(t, http.StatusOK, w.Code)
	today := body["today"].(map[string]interface{})
	assert.Equal(t, "2025-12-06", today["date"])
	assert.Nil(t, today["summary"])
	assert.Equal(t, float64(0), today["totalCommits"])

	yesterday := body["yesterday"].(map[string]interface{})
	assert.Equal(t, "2025-12-04", yesterday["date"])
	assert.Equal(t, "earlier work", yesterday["summary"])
	assert.Equal(t, float64(2), yesterday["totalCommits"])
}
