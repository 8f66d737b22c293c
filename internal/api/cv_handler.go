package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cvmaker/internal/api/middleware"
	"cvmaker/internal/cv"
	"cvmaker/internal/database"
	"cvmaker/internal/render"
	"cvmaker/internal/store"
	"cvmaker/internal/template"
)

// CVHandler serves CV record CRUD and the HTML preview.
type CVHandler struct {
	store  *store.Store
	logger *slog.Logger
}

func NewCVHandler(cvStore *store.Store, logger *slog.Logger) *CVHandler {
	return &CVHandler{store: cvStore, logger: logger}
}

type createCVRequest struct {
	Language string `json:"language"`
}

type cvListItem struct {
	ID        string    `json:"id"`
	Language  string    `json:"language"`
	Template  string    `json:"template"`
	Status    string    `json:"status,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCV starts a fresh record in the requested locale.
func (h *CVHandler) CreateCV(c *gin.Context) {
	var req createCVRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, err.Error())
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record := cv.New(req.Language)
	if err := h.store.Save(c.Request.Context(), userID, record); err != nil {
		middleware.LoggerFromContext(c).Error("create cv failed", slog.Any("error", err))
		Internal(c, "failed to create cv")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListCVs returns a summary of the user's documents, newest first.
func (h *CVHandler) ListCVs(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	docs, err := h.store.List(c.Request.Context(), userID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list cvs failed", slog.Any("error", err))
		Internal(c, "failed to list cvs")
		return
	}

	items := make([]cvListItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, cvListItem{
			ID:        doc.CVID,
			Language:  doc.Language,
			Template:  doc.Template,
			Status:    doc.Status,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	c.JSON(http.StatusOK, items)
}

// GetLatestCV returns the user's most recently updated record; the editor
// opens it by default.
func (h *CVHandler) GetLatestCV(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	record, err := h.store.LoadLatest(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "no cv yet")
			return
		}
		middleware.LoggerFromContext(c).Error("load latest cv failed", slog.Any("error", err))
		Internal(c, "failed to load cv")
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetCV returns the full record.
func (h *CVHandler) GetCV(c *gin.Context) {
	record, ok := h.loadForUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, record)
}

// PatchCV merges a partial record into the stored one. Autosave calls this
// on every pause in typing, so the body may carry any subset of fields; the
// record's id and creation time are immutable.
func (h *CVHandler) PatchCV(c *gin.Context) {
	record, ok := h.loadForUser(c)
	if !ok {
		return
	}
	userID, _ := userIDFromContext(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		BadRequest(c, "failed to read body")
		return
	}
	if err := record.ApplyPatch(body); err != nil {
		BadRequest(c, "invalid cv payload")
		return
	}

	if err := h.store.Save(c.Request.Context(), userID, record); err != nil {
		middleware.LoggerFromContext(c).Error("save cv failed", slog.Any("error", err))
		Internal(c, "failed to save cv")
		return
	}
	c.JSON(http.StatusOK, record)
}

type setTemplateRequest struct {
	Template string `json:"template" binding:"required"`
}

// SetTemplate switches the record's template. The choice must exist in the
// catalogue; rendering still falls back to the default if a stored id stops
// existing later.
func (h *CVHandler) SetTemplate(c *gin.Context) {
	var req setTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if !template.Valid(req.Template) {
		BadRequest(c, "unknown template")
		return
	}

	record, ok := h.loadForUser(c)
	if !ok {
		return
	}
	userID, _ := userIDFromContext(c)

	record.Template = req.Template
	record.Touch()
	if err := h.store.Save(c.Request.Context(), userID, record); err != nil {
		middleware.LoggerFromContext(c).Error("save cv failed", slog.Any("error", err))
		Internal(c, "failed to save cv")
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteCV removes the record.
func (h *CVHandler) DeleteCV(c *gin.Context) {
	if _, ok := h.loadForUser(c); !ok {
		return
	}
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		middleware.LoggerFromContext(c).Error("delete cv failed", slog.Any("error", err))
		Internal(c, "failed to delete cv")
		return
	}
	c.Status(http.StatusNoContent)
}

// PreviewCV renders the record as HTML. Query parameters may override the
// stored template (for the selector) and locale.
func (h *CVHandler) PreviewCV(c *gin.Context) {
	record, ok := h.loadForUser(c)
	if !ok {
		return
	}

	templateID := c.DefaultQuery("template", record.Template)
	tag := c.DefaultQuery("lang", record.Language)

	html, err := render.Preview(record, templateID, tag)
	if err != nil {
		middleware.LoggerFromContext(c).Error("render preview failed", slog.Any("error", err))
		Internal(c, "failed to render preview")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// loadForUser fetches the record addressed by the :id parameter and checks
// ownership. On failure it writes the response and returns ok=false.
func (h *CVHandler) loadForUser(c *gin.Context) (*cv.CVRecord, bool) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return nil, false
	}

	ctx := c.Request.Context()
	doc, err := h.store.Document(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "cv not found")
		} else {
			middleware.LoggerFromContext(c).Error("load cv failed", slog.Any("error", err))
			Internal(c, "failed to load cv")
		}
		return nil, false
	}
	if doc.UserID != userID {
		NotFound(c, "cv not found")
		return nil, false
	}

	record, err := h.store.Load(ctx, doc.CVID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("decode cv failed", slog.Any("error", err))
		Internal(c, "failed to load cv")
		return nil, false
	}
	return record, true
}

func userIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	case uint64:
		return uint(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint(v), true
	default:
		return 0, false
	}
}

// statusFromDocument maps persisted export status to the API vocabulary.
func statusFromDocument(doc *database.CVDocument) string {
	if doc.Status == "" {
		return database.StatusDraft
	}
	return doc.Status
}
