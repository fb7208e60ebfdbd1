package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faqbot/internal/domain/faq"
)

// Handler wires the HTTP transport to the FAQ service.
type Handler struct {
	faqSvc   faq.Service
	chatPage string
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, chatPage ChatPage, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc:   faqSvc,
		chatPage: string(chatPage),
		logger:   logger.With("component", "http.handler"),
	}
}

// ChatPage is the path of the static chat frontend.
type ChatPage string

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ask answers a free-text question with the closest FAQ.
func (h *Handler) Ask(c *gin.Context) {
	var req faq.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.faqSvc.Ask(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "ask_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListFAQs returns the corpus, optionally filtered by ?category=.
func (h *Handler) ListFAQs(c *gin.Context) {
	items, err := h.faqSvc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		abortWithError(c, fromDomainError(err, "faq_failed"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// Feedback records a yes/no rating for an answer.
func (h *Handler) Feedback(c *gin.Context) {
	var req faq.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.faqSvc.Feedback(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "feedback_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Chat serves the static chatbot page.
func (h *Handler) Chat(c *gin.Context) {
	if h.chatPage == "" {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "chat page not configured", nil))
		return
	}
	if _, err := os.Stat(h.chatPage); err != nil {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "chat page not found", err))
		return
	}
	c.File(h.chatPage)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
