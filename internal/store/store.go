// Package store persists CV records. Records are saved whole as JSONB; the
// relational columns mirror just the fields queries need (language, template,
// export status).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cvmaker/internal/cv"
	"cvmaker/internal/database"
)

// ErrNotFound is returned when no document matches the requested id.
var ErrNotFound = errors.New("cv document not found")

// Store reads and writes CV documents.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Save upserts a record keyed by its uuid. The full record goes into the
// JSONB column; the mirrored columns are refreshed on every write.
func (s *Store) Save(ctx context.Context, userID uint, record *cv.CVRecord) error {
	content, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	doc := database.CVDocument{
		CVID:     record.ID,
		Content:  datatypes.JSON(content),
		Language: record.Language,
		Template: record.Template,
		UserID:   userID,
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cv_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"content", "language", "template", "updated_at",
			}),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save document %s: %w", record.ID, err)
	}
	return nil
}

// Load returns the record stored under the given uuid.
func (s *Store) Load(ctx context.Context, cvID string) (*cv.CVRecord, error) {
	doc, err := s.document(ctx, cvID)
	if err != nil {
		return nil, err
	}
	var record cv.CVRecord
	if err := json.Unmarshal(doc.Content, &record); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", cvID, err)
	}
	return &record, nil
}

// Document returns the raw persisted row, including export state.
func (s *Store) Document(ctx context.Context, cvID string) (*database.CVDocument, error) {
	return s.document(ctx, cvID)
}

func (s *Store) document(ctx context.Context, cvID string) (*database.CVDocument, error) {
	var doc database.CVDocument
	err := s.db.WithContext(ctx).Where("cv_id = ?", cvID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", cvID, err)
	}
	return &doc, nil
}

// LoadLatest returns the user's most recently updated record, which the
// editor opens by default.
func (s *Store) LoadLatest(ctx context.Context, userID uint) (*cv.CVRecord, error) {
	var doc database.CVDocument
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load latest document for user %d: %w", userID, err)
	}
	var record cv.CVRecord
	if err := json.Unmarshal(doc.Content, &record); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", doc.CVID, err)
	}
	return &record, nil
}

// List returns the documents belonging to a user, newest first.
func (s *Store) List(ctx context.Context, userID uint) ([]database.CVDocument, error) {
	var docs []database.CVDocument
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("list documents for user %d: %w", userID, err)
	}
	return docs, nil
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *Store) Delete(ctx context.Context, cvID string) error {
	err := s.db.WithContext(ctx).Where("cv_id = ?", cvID).Delete(&database.CVDocument{}).Error
	if err != nil {
		return fmt.Errorf("delete document %s: %w", cvID, err)
	}
	return nil
}

// SetExportState transitions the export lifecycle columns for a document.
// pdfKey may be empty for non-terminal states.
func (s *Store) SetExportState(ctx context.Context, cvID, status, pdfKey string) error {
	updates := map[string]any{"status": status}
	if pdfKey != "" {
		updates["pdf_key"] = pdfKey
	}
	res := s.db.WithContext(ctx).
		Model(&database.CVDocument{}).
		Where("cv_id = ?", cvID).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("update export state for %s: %w", cvID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
