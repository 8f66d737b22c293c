package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"cvmaker/internal/api/middleware"
	"cvmaker/internal/database"
	"cvmaker/internal/objstore"
	"cvmaker/internal/store"
	"cvmaker/internal/tasks"
)

// ExportHandler runs the async PDF pipeline: enqueue, poll, download.
type ExportHandler struct {
	store       *store.Store
	asynqClient *asynq.Client
	objstore    *objstore.Client
}

func NewExportHandler(cvStore *store.Store, asynqClient *asynq.Client, objClient *objstore.Client) *ExportHandler {
	return &ExportHandler{
		store:       cvStore,
		asynqClient: asynqClient,
		objstore:    objClient,
	}
}

// StartExport enqueues PDF generation and returns 202. Progress is pushed
// over the websocket and can also be polled via ExportStatus.
func (h *ExportHandler) StartExport(c *gin.Context) {
	doc, ok := h.ownedDocument(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.store.SetExportState(ctx, doc.CVID, database.StatusExporting, ""); err != nil {
		Internal(c, "failed to mark export started")
		return
	}

	correlationID := middleware.GetCorrelationID(c)
	task, err := tasks.NewPDFExportTask(doc.CVID, correlationID)
	if err != nil {
		Internal(c, "failed to create export task")
		return
	}

	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(3))
	if err != nil {
		middleware.LoggerFromContext(c).Error("enqueue export failed", slog.Any("error", err))
		Internal(c, "failed to enqueue export")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "export accepted",
		"task_id": info.ID,
	})
}

// ExportStatus reports where the document is in the export lifecycle.
func (h *ExportHandler) ExportStatus(c *gin.Context) {
	doc, ok := h.ownedDocument(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": statusFromDocument(doc),
		"ready":  doc.Status == database.StatusExported && doc.PDFKey != "",
	})
}

// DownloadLink returns a short-lived presigned URL for the finished PDF,
// named after the person on the CV.
func (h *ExportHandler) DownloadLink(c *gin.Context) {
	doc, ok := h.ownedDocument(c)
	if !ok {
		return
	}
	if doc.Status != database.StatusExported || doc.PDFKey == "" {
		Conflict(c, "pdf not ready")
		return
	}

	ctx := c.Request.Context()
	record, err := h.store.Load(ctx, doc.CVID)
	if err != nil {
		Internal(c, "failed to load cv")
		return
	}

	url, err := h.objstore.PresignedDownloadURL(ctx, doc.PDFKey, record.ExportFileName(), 5*time.Minute)
	if err != nil {
		middleware.LoggerFromContext(c).Error("presign download failed", slog.Any("error", err))
		Internal(c, "failed to generate download link")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"url":       url,
		"file_name": record.ExportFileName(),
	})
}

func (h *ExportHandler) ownedDocument(c *gin.Context) (*database.CVDocument, bool) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return nil, false
	}

	doc, err := h.store.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "cv not found")
		} else {
			Internal(c, "failed to load cv")
		}
		return nil, false
	}
	if doc.UserID != userID {
		NotFound(c, "cv not found")
		return nil, false
	}
	return doc, true
}
