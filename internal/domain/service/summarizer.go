package service

import (
	"context"

	"github.com/logmycode/logmycode/internal/domain/repository"
)

// Outcome classifies the result of a summary generation attempt. The
// generator never fails outright: every non-Generated outcome carries a
// fixed fallback text so callers always have something to store and show.
type Outcome int

const (
	// OutcomeGenerated means the model produced the returned text
	OutcomeGenerated Outcome = iota

	// OutcomeNotConfigured means no API credential is present
	OutcomeNotConfigured

	// OutcomeServiceUnavailable means the completion call failed
	OutcomeServiceUnavailable

	// OutcomeGenerationFailed means the service answered without usable text
	OutcomeGenerationFailed
)

// DefaultText returns the fallback text for a non-Generated outcome.
// The strings are part of the API contract; clients match on them.
func (o Outcome) DefaultText() string {
	switch o {
	case OutcomeNotConfigured:
		return "Error: GROQ_API_KEY not configured. Cannot generate AI summary."
	case OutcomeServiceUnavailable:
		return "Error generating summary via AI."
	case OutcomeGenerationFailed:
		return "Failed to generate summary."
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeGenerated:
		return "generated"
	case OutcomeNotConfigured:
		return "not_configured"
	case OutcomeServiceUnavailable:
		return "service_unavailable"
	case OutcomeGenerationFailed:
		return "generation_failed"
	default:
		return "unknown"
	}
}

// SummaryRequest carries everything the generator needs for one day
type SummaryRequest struct {
	// Username and Date identify whose work is being summarized
	Username string
	Date     string

	// Commits is the day's stored commits, repo names attached
	Commits []repository.DayCommit

	// Template optionally replaces the default output-format instructions
	Template string

	// ManualLog is free-text activity outside version control; empty
	// renders as a literal "None" in the prompt
	ManualLog string
}

// Summarizer produces a formatted daily work summary from a day's commits.
// Implementations must not return an error: failures degrade to the
// outcome's DefaultText.
type Summarizer interface {
	GenerateDailySummary(ctx context.Context, req SummaryRequest) (string, Outcome)
}
