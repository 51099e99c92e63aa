package router

import (
	"github.com/logmycode/logmycode/internal/transport/http/handler"
)

func (r *Router) commitRouter() {
	h := handler.NewCommitHandler(r.Deps.SummaryService)

	api := r.server.Group("/api")
	{
		api.POST("/commits", h.IngestCommits)
	}
}
