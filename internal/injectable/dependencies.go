package injectable

import (
	"github.com/logmycode/logmycode/internal/application/service"
	"github.com/logmycode/logmycode/internal/config"
	domainservice "github.com/logmycode/logmycode/internal/domain/service"
	"github.com/logmycode/logmycode/internal/infrastructure/database"
	"github.com/logmycode/logmycode/internal/infrastructure/llm"
	"github.com/logmycode/logmycode/internal/infrastructure/repository"
)

// Dependencies holds all the dependencies required by the router
type Dependencies struct {
	// Services
	SummaryService *service.SummaryService
	Summarizer     domainservice.Summarizer
}

func LoadDependencies(cfg *config.Config, db *database.Database) Dependencies {
	// Initialize repositories
	commitRepo := repository.NewCommitRepository(db.DB())
	summaryRepo := repository.NewSummaryRepository(db.DB())

	// Initialize the summary generator
	summarizer := llm.NewGroqSummarizer(&cfg.LLM)

	// Initialize services
	summaryService := service.NewSummaryService(commitRepo, summaryRepo, summarizer)

	return Dependencies{
		SummaryService: summaryService,
		Summarizer:     summarizer,
	}
}
