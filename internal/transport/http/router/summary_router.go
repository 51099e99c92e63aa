package router

import (
	"github.com/logmycode/logmycode/internal/transport/http/handler"
)

func (r *Router) summaryRouter() {
	h := handler.NewSummaryHandler(r.Deps.SummaryService)

	api := r.server.Group("/api")
	{
		api.GET("/daily-summary", h.GetDailySummary)
		api.GET("/recent-summaries", h.GetRecentSummaries)
	}
}
