package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/logmycode/logmycode/internal/application/dto"
)

const defaultTimeout = 2 * time.Minute

// apiError is the backend's error body
type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (e *apiError) message() string {
	if e == nil || e.Error == "" {
		return "unknown error"
	}
	if e.Details != "" {
		return e.Error + ": " + e.Details
	}
	return e.Error
}

// Client talks to the LogMyCode backend API
type Client struct {
	http *resty.Client
}

// New creates a client against the given base URL, e.g. http://localhost:4001
func New(baseURL string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json")
	return &Client{http: http}
}

// PostCommits sends a scanned batch for ingestion and returns the generated
// summary with the day's stored repo groups.
func (c *Client) PostCommits(ctx context.Context, req *dto.BulkCommitsRequest) (*dto.SummaryResponse, error) {
	var result dto.SummaryResponse
	var errBody apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&errBody).
		Post("/api/commits")
	if err != nil {
		return nil, fmt.Errorf("post commits: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("post commits: server returned %d: %s", resp.StatusCode(), errBody.message())
	}
	return &result, nil
}

// DailySummary fetches the stored summary and commits for one day
func (c *Client) DailySummary(ctx context.Context, userID, date string) (*dto.SummaryResponse, error) {
	var result dto.SummaryResponse
	var errBody apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"userId": userID, "date": date}).
		SetResult(&result).
		SetError(&errBody).
		Get("/api/daily-summary")
	if err != nil {
		return nil, fmt.Errorf("get daily summary: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("get daily summary: server returned %d: %s", resp.StatusCode(), errBody.message())
	}
	return &result, nil
}

// RecentSummaries fetches the given day's summary and the latest one before it
func (c *Client) RecentSummaries(ctx context.Context, userID, date string) (*dto.RecentSummariesResponse, error) {
	var result dto.RecentSummariesResponse
	var errBody apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"userId": userID, "date": date}).
		SetResult(&result).
		SetError(&errBody).
		Get("/api/recent-summaries")
	if err != nil {
		return nil, fmt.Errorf("get recent summaries: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("get recent summaries: server returned %d: %s", resp.StatusCode(), errBody.message())
	}
	return &result, nil
}
