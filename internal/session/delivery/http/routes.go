package http

import (
	"github.com/gin-gonic/gin"

	"ai-therapist/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths under /api to Handler methods.
// Everything under the group is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.GET("/health", h.Health)
	rg.GET("/metrics", h.Metrics)
	rg.POST("/chat", h.Chat)

	sessions := rg.Group("/sessions")
	{
		sessions.POST("/create", h.CreateSession)
		sessions.GET("", h.ListSessions)
		sessions.DELETE("/:id", h.DeleteSession)
		sessions.GET("/:id/history", h.GetHistory)
		sessions.POST("/:id/summary", h.GetSummary)
		sessions.POST("/:id/reset", h.ResetSession)
		sessions.GET("/:id/transcript", h.GetTranscript)
	}

	ragGroup := rg.Group("/rag")
	{
		ragGroup.POST("/initialize", h.InitializeRag)
		ragGroup.GET("/stats", h.GetRagStats)
	}
}
