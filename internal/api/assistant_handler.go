package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvmaker/internal/api/middleware"
	"cvmaker/internal/assistant"
	"cvmaker/internal/store"
)

// AssistantHandler exposes the AI writing help. It is optional plumbing: a
// dead Ollama turns these endpoints into clean errors, never into a broken
// editor.
type AssistantHandler struct {
	client *assistant.Client
	store  *store.Store
}

func NewAssistantHandler(client *assistant.Client, cvStore *store.Store) *AssistantHandler {
	return &AssistantHandler{client: client, store: cvStore}
}

type improveRequest struct {
	CVID     string `json:"cvId" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Feedback string `json:"feedback"`
}

// Improve runs one improvement pass over the user's CV.
func (h *AssistantHandler) Improve(c *gin.Context) {
	var req improveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	kind := assistant.ImprovementType(req.Type)
	if !assistant.ValidImprovementType(kind) {
		BadRequest(c, "unknown improvement type")
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	doc, err := h.store.Document(ctx, req.CVID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "cv not found")
		} else {
			Internal(c, "failed to load cv")
		}
		return
	}
	if doc.UserID != userID {
		NotFound(c, "cv not found")
		return
	}

	record, err := h.store.Load(ctx, req.CVID)
	if err != nil {
		Internal(c, "failed to load cv")
		return
	}

	suggestion, err := h.client.SuggestImprovements(ctx, record, kind, req.Feedback, record.Language)
	if err != nil {
		middleware.LoggerFromContext(c).Warn("assistant request failed", slog.Any("error", err))
		Error(c, http.StatusBadGateway, "assistant unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

// Health reports whether the local model answers.
func (h *AssistantHandler) Health(c *gin.Context) {
	if h.client.Healthy(c.Request.Context()) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
}
