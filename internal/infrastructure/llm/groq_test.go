package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logmycode/logmycode/internal/config"
	"github.com/logmycode/logmycode/internal/domain/repository"
	domainservice "github.com/logmycode/logmycode/internal/domain/service"
)

func summaryRequest() domainservice.SummaryRequest {
	return domainservice.SummaryRequest{
		Username: "alen",
		Date:     "2025-12-06",
		Commits: []repository.DayCommit{
			{RepoName: "project-x", Hash: "abc1234", Message: "feat: add login validation"},
		},
	}
}

func newTestSummarizer(baseURL string) *GroqSummarizer {
	return NewGroqSummarizer(&config.LLMConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		Model:       "llama-3.3-70b-versatile",
		Temperature: 0.5,
	})
}

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(b)
}

func TestGenerateDailySummary_Success(t *testing.T) {
	var captured chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completionBody("LogMyCode – Daily Summary (2025-12-06)"))
	}))
	defer srv.Close()

	text, outcome := newTestSummarizer(srv.URL).GenerateDailySummary(context.Background(), summaryRequest())

	assert.Equal(t, domainservice.OutcomeGenerated, outcome)
	assert.Equal(t, "LogMyCode – Daily Summary (2025-12-06)", text)

	assert.Equal(t, "llama-3.3-70b-versatile", captured.Model)
	assert.Equal(t, 0.5, captured.Temperature)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, systemPrompt, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Contains(t, captured.Messages[1].Content, "Repo: project-x")
}

func TestGenerateDailySummary_MissingKey(t *testing.T) {
	g := NewGroqSummarizer(&config.LLMConfig{
		BaseURL: "https://api.groq.com/openai/v1",
		Model:   "llama-3.3-70b-versatile",
	})

	text, outcome := g.GenerateDailySummary(context.Background(), summaryRequest())

	assert.Equal(t, domainservice.OutcomeNotConfigured, outcome)
	assert.Equal(t, "Error: GROQ_API_KEY not configured. Cannot generate AI summary.", text)
}

func TestGenerateDailySummary_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"message":"rate limited"}}`)
	}))
	defer srv.Close()

	text, outcome := newTestSummarizer(srv.URL).GenerateDailySummary(context.Background(), summaryRequest())

	assert.Equal(t, domainservice.OutcomeServiceUnavailable, outcome)
	assert.Equal(t, "Error generating summary via AI.", text)
}

func TestGenerateDailySummary_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	text, outcome := newTestSummarizer(srv.URL).GenerateDailySummary(context.Background(), summaryRequest())

	assert.Equal(t, domainservice.OutcomeServiceUnavailable, outcome)
	assert.Equal(t, "Error generating summary via AI.", text)
}

func TestGenerateDailySummary_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completionBody(""))
	}))
	defer srv.Close()

	text, outcome := newTestSummarizer(srv.URL).GenerateDailySummary(context.Background(), summaryRequest())

	assert.Equal(t, domainservice.OutcomeGenerationFailed, outcome)
	assert.Equal(t, "Failed to generate summary.", text)
}

func TestGenerateDailySummary_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	_, outcome := newTestSummarizer(srv.URL).GenerateDailySummary(context.Background(), summaryRequest())

	assert.Equal(t, domainservice.OutcomeGenerationFailed, outcome)
}
