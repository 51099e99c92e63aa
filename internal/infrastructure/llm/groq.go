package llm

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/logmycode/logmycode/internal/config"
	domainservice "github.com/logmycode/logmycode/internal/domain/service"
	"github.com/logmycode/logmycode/pkg/logger"
)

const requestTimeout = 90 * time.Second

// chatMessage is one message in a chat-completions request
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GroqSummarizer generates daily summaries through an OpenAI-compatible
// chat-completions endpoint (Groq's hosted API by default). It satisfies the
// Summarizer contract of never failing: a missing credential, an unreachable
// service or an empty completion all degrade to the outcome's fixed text.
type GroqSummarizer struct {
	client *resty.Client
	cfg    *config.LLMConfig
	log    *logger.Logger
}

// NewGroqSummarizer creates a summarizer against the configured endpoint
func NewGroqSummarizer(cfg *config.LLMConfig) *GroqSummarizer {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json")

	return &GroqSummarizer{
		client: client,
		cfg:    cfg,
		log:    logger.Get().WithFields(logger.Component("llm")),
	}
}

// GenerateDailySummary issues one completion call and returns its text
// verbatim, or the fallback text for the failure outcome. It never returns
// an error; no retries, no alternate prompts.
func (g *GroqSummarizer) GenerateDailySummary(ctx context.Context, req domainservice.SummaryRequest) (string, domainservice.Outcome) {
	if !g.cfg.IsConfigured() {
		g.log.Warn("LLM API key not configured, returning fallback summary",
			logger.Username(req.Username),
			logger.Date(req.Date),
		)
		return domainservice.OutcomeNotConfigured.DefaultText(), domainservice.OutcomeNotConfigured
	}

	body := chatCompletionRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(req)},
		},
		Temperature: g.cfg.Temperature,
	}

	var result chatCompletionResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/chat/completions")
	if err != nil {
		g.log.Error("Completion call failed",
			logger.Error(err),
			logger.Username(req.Username),
			logger.Date(req.Date),
		)
		return domainservice.OutcomeServiceUnavailable.DefaultText(), domainservice.OutcomeServiceUnavailable
	}
	if !resp.IsSuccess() {
		g.log.Error("Completion call returned non-success status",
			logger.StatusCode(resp.StatusCode()),
			logger.Username(req.Username),
			logger.Date(req.Date),
		)
		return domainservice.OutcomeServiceUnavailable.DefaultText(), domainservice.OutcomeServiceUnavailable
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		g.log.Warn("Completion response carried no text",
			logger.Username(req.Username),
			logger.Date(req.Date),
		)
		return domainservice.OutcomeGenerationFailed.DefaultText(), domainservice.OutcomeGenerationFailed
	}

	return result.Choices[0].Message.Content, domainservice.OutcomeGenerated
}
