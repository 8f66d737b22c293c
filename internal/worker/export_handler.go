package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"cvmaker/internal/database"
	"cvmaker/internal/errcode"
	"cvmaker/internal/objstore"
	"cvmaker/internal/pdf"
	"cvmaker/internal/render"
	"cvmaker/internal/store"
	"cvmaker/internal/tasks"
	"cvmaker/internal/template"
)

// ExportTaskHandler consumes PDF export tasks: load the record, build the
// print page, drive chromium, upload the artifact and notify the browser.
type ExportTaskHandler struct {
	store       *store.Store
	objstore    *objstore.Client
	redisClient *redis.Client
	generator   *pdf.Generator
	logger      *slog.Logger
	timeout     time.Duration
}

func NewExportTaskHandler(
	cvStore *store.Store,
	objClient *objstore.Client,
	redisClient *redis.Client,
	generator *pdf.Generator,
	logger *slog.Logger,
	timeout time.Duration,
) *ExportTaskHandler {
	return &ExportTaskHandler{
		store:       cvStore,
		objstore:    objClient,
		redisClient: redisClient,
		generator:   generator,
		logger:      logger,
		timeout:     timeout,
	}
}

// ProcessTask implements asynq.Handler.
func (h *ExportTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	var payload tasks.PDFExportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("cv_id", payload.CVID),
	)
	log.Info("starting pdf export task")

	doc, err := h.store.Document(ctx, payload.CVID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("cv not found, skipping task")
			return nil
		}
		log.Error("load cv document failed", slog.Any("error", err))
		return err
	}
	record, err := h.store.Load(ctx, payload.CVID)
	if err != nil {
		log.Error("decode cv record failed", slog.Any("error", err))
		return err
	}

	log = log.With(slog.Uint64("user_id", uint64(doc.UserID)))

	defer func() {
		if retErr == nil {
			return
		}
		// SkipRetry errors never see another attempt, so they are final too.
		if !errors.Is(retErr, asynq.SkipRetry) && !isFinalAsynqAttempt(ctx) {
			return
		}

		status := database.StatusExportFailed
		code := errcode.SystemError
		message := strings.TrimSpace(retErr.Error())
		if errors.Is(retErr, pdf.ErrExportTimeout) {
			status = database.StatusExportTimedOut
			code = errcode.ExportTimeout
			message = "PDF export took too long, please try again"
		}
		if err := h.store.SetExportState(ctx, payload.CVID, status, ""); err != nil {
			log.Error("mark export failed state failed", slog.Any("error", err))
		}
		notify := ExportNotifyMessage{
			Status:        "error",
			CVID:          payload.CVID,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     code,
			ErrorMessage:  message,
		}
		if err := h.publishNotify(ctx, doc.UserID, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	// A malformed photo must not block the export; drop it and warn.
	missingKeys, resourceMissing := dropInvalidPhoto(record)

	renderDoc := render.BuildDocument(record, record.Language)
	html, err := pdf.BuildPrintHTML(renderDoc, template.StylesFor(record.Template))
	if err != nil {
		log.Error("build print html failed", slog.Any("error", err))
		return err
	}

	exportCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	pdfBytes, err := h.generator.ExportPDF(exportCtx, html)
	if err != nil {
		log.Error("export pdf failed", slog.Any("error", err))
		if errors.Is(err, pdf.ErrExportTimeout) {
			// Retrying a timed-out export just burns another browser.
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		return err
	}

	objectKey := fmt.Sprintf("exports/%d/%s.pdf", doc.UserID, uuid.NewString())
	if err := h.objstore.Upload(ctx, objectKey, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), "application/pdf"); err != nil {
		log.Error("upload pdf failed", slog.Any("error", err))
		return err
	}

	if err := h.store.SetExportState(ctx, payload.CVID, database.StatusExported, objectKey); err != nil {
		log.Error("mark export completed failed", slog.Any("error", err))
		return err
	}

	notify := ExportNotifyMessage{
		Status:        "completed",
		CVID:          payload.CVID,
		CorrelationID: payload.CorrelationID,
		ErrorCode:     errcode.OK,
	}
	if resourceMissing {
		notify.ErrorCode = errcode.ResourceMissing
		notify.ErrorMessage = "some images were invalid and have been skipped"
		notify.MissingKeys = missingKeys
		log.Warn("pdf exported with dropped assets", slog.Any("missing_keys", missingKeys))
	}
	if err := h.publishNotify(ctx, doc.UserID, notify); err != nil {
		log.Error("publish export notification failed", slog.Any("error", err))
		return err
	}

	log.Info("pdf export task completed")
	return nil
}

func (h *ExportTaskHandler) publishNotify(ctx context.Context, userID uint, notify ExportNotifyMessage) error {
	data, err := json.Marshal(notify)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	channel := fmt.Sprintf("user_notify:%d", userID)
	if err := h.redisClient.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", channel, err)
	}
	return nil
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
