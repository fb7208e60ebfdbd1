package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faqbot/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	logger := handler.logger
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.CORS.AllowedOrigins),
		errorHandlingMiddleware(logger),
	)

	router.GET("/health", handler.Health)
	router.GET("/chat", handler.Chat)

	limited := router.Group("/", rateLimitMiddleware(cfg.HTTP.RateLimit, logger))
	{
		limited.POST("/ask", handler.Ask)
		limited.GET("/faqs", handler.ListFAQs)
		limited.POST("/feedback", handler.Feedback)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
