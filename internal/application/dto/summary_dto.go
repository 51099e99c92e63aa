package dto

// SummaryResponse is returned by POST /api/commits and GET /api/daily-summary
type SummaryResponse struct {
	UserID  string     `json:"userId"`
	Date    string     `json:"date"`
	Summary string     `json:"summary"`
	Repos   []RepoView `json:"repos"`
}

// SummaryDigest is one day's stored summary in condensed form. Summary is
// null when no row exists for the day; Date is "N/A" when the digest refers
// to a prior day that was never summarized.
type SummaryDigest struct {
	Date         string  `json:"date"`
	Summary      *string `json:"summary"`
	TotalCommits int     `json:"totalCommits"`
}

// RecentSummariesResponse is returned by GET /api/recent-summaries:
// the requested day's summary and the latest one strictly before it.
type RecentSummariesResponse struct {
	UserID    string        `json:"userId"`
	Today     SummaryDigest `json:"today"`
	Yesterday SummaryDigest `json:"yesterday"`
}
