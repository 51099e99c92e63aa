package router

import (
	"github.com/logmycode/logmycode/internal/transport/http/handler"
)

func (r *Router) healthRouter() {
	r.server.GET("/health", handler.HealthHandler())
}
