package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"cvmaker/internal/objstore"
	"cvmaker/internal/pdf"
	"cvmaker/internal/render"
	"cvmaker/internal/tasks"
	"cvmaker/internal/template"
)

const thumbnailQuality = 80

// ThumbnailTaskHandler regenerates template selector thumbnails. Every
// template renders the same fixed sample record, so thumbnails differ only
// by style.
type ThumbnailTaskHandler struct {
	objstore  *objstore.Client
	generator *pdf.Generator
	logger    *slog.Logger
}

func NewThumbnailTaskHandler(objClient *objstore.Client, generator *pdf.Generator, logger *slog.Logger) *ThumbnailTaskHandler {
	return &ThumbnailTaskHandler{
		objstore:  objClient,
		generator: generator,
		logger:    logger,
	}
}

// ProcessTask implements asynq.Handler.
func (h *ThumbnailTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	log := h.logger

	var payload tasks.TemplateThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Error("unmarshal thumbnail payload failed", slog.Any("error", err))
		return err
	}

	log = log.With(
		slog.String("template_id", payload.TemplateID),
		slog.String("locale", payload.Locale),
		slog.String("correlation_id", payload.CorrelationID),
	)

	tpl, ok := template.ByID(payload.TemplateID)
	if !ok {
		log.Warn("unknown template, skipping thumbnail task")
		return nil
	}
	log.Info("starting template thumbnail task")

	record := render.SampleRecord(payload.Locale)
	html, err := render.Preview(record, tpl.ID, payload.Locale)
	if err != nil {
		log.Error("render sample preview failed", slog.Any("error", err))
		return err
	}

	shotCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	img, err := h.generator.Screenshot(shotCtx, html, thumbnailQuality)
	if err != nil {
		log.Error("capture thumbnail failed", slog.Any("error", err))
		return err
	}

	key := ThumbnailKey(tpl.ID, payload.Locale)
	if err := h.objstore.Upload(ctx, key, bytes.NewReader(img), int64(len(img)), "image/jpeg"); err != nil {
		log.Error("upload thumbnail failed", slog.Any("error", err))
		return err
	}

	log.Info("template thumbnail task completed")
	return nil
}

// ThumbnailKey is the object key for one template's selector thumbnail.
func ThumbnailKey(templateID, locale string) string {
	return fmt.Sprintf("thumbnails/%s/%s.jpg", locale, templateID)
}
