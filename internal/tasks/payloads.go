package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type constants, shared by queue producers and consumers.
const (
	TypePDFExport         = "pdf:export"
	TypeTemplateThumbnail = "template:thumbnail"
)

// PDFExportPayload carries the minimum needed to export one CV.
type PDFExportPayload struct {
	CVID          string `json:"cv_id"`
	CorrelationID string `json:"correlation_id"`
}

// NewPDFExportTask builds an export task for one CV record.
func NewPDFExportTask(cvID, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PDFExportPayload{
		CVID:          cvID,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePDFExport, payload), nil
}

// TemplateThumbnailPayload identifies one catalogue template whose selector
// thumbnail should be regenerated.
type TemplateThumbnailPayload struct {
	TemplateID    string `json:"template_id"`
	Locale        string `json:"locale"`
	CorrelationID string `json:"correlation_id"`
}

// NewTemplateThumbnailTask builds a thumbnail regeneration task.
func NewTemplateThumbnailTask(templateID, locale, correlationID string) (*asynq.Task, error) {
	payload, err := json.Marshal(TemplateThumbnailPayload{
		TemplateID:    templateID,
		Locale:        locale,
		CorrelationID: correlationID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTemplateThumbnail, payload), nil
}
