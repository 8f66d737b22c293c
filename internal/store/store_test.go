package store

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cvmaker/internal/cv"
	"cvmaker/internal/database"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return New(db)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	record := cv.New("lv")
	record.PersonalInfo.FirstName = "Anna"
	record.ProfessionalSummary = "Kopsavilkums"

	if err := s.Save(ctx, 1, record); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := s.Load(ctx, record.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.PersonalInfo.FirstName != "Anna" || loaded.ProfessionalSummary != "Kopsavilkums" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
	if loaded.Language != "lv" {
		t.Errorf("language = %q", loaded.Language)
	}
}

func TestSaveUpsertsByID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	record := cv.New("en")
	if err := s.Save(ctx, 1, record); err != nil {
		t.Fatalf("first save: %v", err)
	}
	record.ProfessionalSummary = "Updated"
	record.Template = "europass"
	if err := s.Save(ctx, 1, record); err != nil {
		t.Fatalf("second save: %v", err)
	}

	docs, err := s.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected one row after upsert, got %d", len(docs))
	}
	if docs[0].Template != "europass" {
		t.Errorf("mirrored template column not refreshed: %q", docs[0].Template)
	}
}

func TestLoadLatestFollowsUpdates(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first := cv.New("lv")
	second := cv.New("lv")
	if err := s.Save(ctx, 1, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := s.Save(ctx, 1, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	// Editing the older record makes it the latest again.
	first.ProfessionalSummary = "Atjaunots"
	if err := s.Save(ctx, 1, first); err != nil {
		t.Fatalf("resave first: %v", err)
	}

	latest, err := s.LoadLatest(ctx, 1)
	if err != nil {
		t.Fatalf("load latest: %v", err)
	}
	if latest.ID != first.ID {
		t.Errorf("latest = %s, want %s", latest.ID, first.ID)
	}

	if _, err := s.LoadLatest(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty user err = %v, want ErrNotFound", err)
	}
}

func TestLoadMissingReturnsNotFound(t *testing.T) {
	s := testStore(t)
	if _, err := s.Load(context.Background(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	record := cv.New("en")
	if err := s.Save(ctx, 1, record); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Delete(ctx, record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, record.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
	if _, err := s.Load(ctx, record.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("load after delete: %v", err)
	}
}

func TestSetExportState(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	record := cv.New("en")
	if err := s.Save(ctx, 1, record); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.SetExportState(ctx, record.ID, database.StatusExporting, ""); err != nil {
		t.Fatalf("set exporting: %v", err)
	}
	if err := s.SetExportState(ctx, record.ID, database.StatusExported, "exports/x.pdf"); err != nil {
		t.Fatalf("set exported: %v", err)
	}

	doc, err := s.Document(ctx, record.ID)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if doc.Status != database.StatusExported || doc.PDFKey != "exports/x.pdf" {
		t.Errorf("doc state = %q/%q", doc.Status, doc.PDFKey)
	}

	if err := s.SetExportState(ctx, "missing", database.StatusExported, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing doc err = %v, want ErrNotFound", err)
	}
}
