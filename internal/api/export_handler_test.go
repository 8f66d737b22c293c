package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"cvmaker/internal/database"
	"cvmaker/internal/store"
)

func TestExportStatusDefaultsToDraft(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cvStore := store.New(newTestDB(t))
	h := NewExportHandler(cvStore, nil, nil)

	record := seedRecord(t, cvStore, 1, "lv")

	c, w := newCVContext(t, http.MethodGet, "/v1/cv/"+record.ID+"/export", nil, 1)
	c.Params = gin.Params{{Key: "id", Value: record.ID}}
	h.ExportStatus(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resp struct {
		Status string `json:"status"`
		Ready  bool   `json:"ready"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != database.StatusDraft {
		t.Errorf("status = %q, want %q", resp.Status, database.StatusDraft)
	}
	if resp.Ready {
		t.Error("fresh document must not be ready")
	}
}

func TestExportStatusAfterCompletion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cvStore := store.New(newTestDB(t))
	h := NewExportHandler(cvStore, nil, nil)

	record := seedRecord(t, cvStore, 1, "lv")
	c, _ := newCVContext(t, http.MethodGet, "/", nil, 1)
	if err := cvStore.SetExportState(c.Request.Context(), record.ID, database.StatusExported, "exports/1/out.pdf"); err != nil {
		t.Fatalf("set export state: %v", err)
	}

	c, w := newCVContext(t, http.MethodGet, "/v1/cv/"+record.ID+"/export", nil, 1)
	c.Params = gin.Params{{Key: "id", Value: record.ID}}
	h.ExportStatus(c)

	var resp struct {
		Status string `json:"status"`
		Ready  bool   `json:"ready"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != database.StatusExported || !resp.Ready {
		t.Errorf("resp = %+v, want exported and ready", resp)
	}
}

func TestDownloadLinkBeforeExportConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cvStore := store.New(newTestDB(t))
	h := NewExportHandler(cvStore, nil, nil)

	record := seedRecord(t, cvStore, 1, "lv")

	c, w := newCVContext(t, http.MethodGet, "/v1/cv/"+record.ID+"/export/download", nil, 1)
	c.Params = gin.Params{{Key: "id", Value: record.ID}}
	h.DownloadLink(c)

	if w.Code != http.StatusConflict {
		t.Fatalf("download before export must conflict, got %d", w.Code)
	}
}

func TestExportEndpointsHideForeignDocuments(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cvStore := store.New(newTestDB(t))
	h := NewExportHandler(cvStore, nil, nil)

	record := seedRecord(t, cvStore, 1, "lv")

	c, w := newCVContext(t, http.MethodGet, "/v1/cv/"+record.ID+"/export", nil, 2)
	c.Params = gin.Params{{Key: "id", Value: record.ID}}
	h.ExportStatus(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign document must read as missing, got %d", w.Code)
	}
}
