package dto

// CommitPayload is one commit in an ingestion request. Timestamp is an
// optional RFC 3339 string; when absent the server stamps the ingestion time.
type CommitPayload struct {
	Hash      string `json:"hash" binding:"required"`
	Message   string `json:"message" binding:"required"`
	Timestamp string `json:"timestamp"`
}

// RepoPayload groups the commits of one repository in an ingestion request
type RepoPayload struct {
	Name    string          `json:"name" binding:"required"`
	Commits []CommitPayload `json:"commits" binding:"required,dive"`
}

// BulkCommitsRequest is the POST /api/commits body. Template optionally
// replaces the default prompt instructions; ManualLog carries free-text
// activity outside version control.
type BulkCommitsRequest struct {
	UserID    string        `json:"userId" binding:"required"`
	Date      string        `json:"date" binding:"required"`
	Repos     []RepoPayload `json:"repos" binding:"required,dive"`
	Template  string        `json:"template"`
	ManualLog string        `json:"manualLog"`
}

// CommitView is one stored commit as returned to clients
type CommitView struct {
	Hash    string `json:"hash"`
	Message string `json:"message"`
}

// RepoView groups a repository's commits in a response, in first-seen order
type RepoView struct {
	Name    string       `json:"name"`
	Commits []CommitView `json:"commits"`
}
