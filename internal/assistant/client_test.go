package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cvmaker/internal/config"
	"cvmaker/internal/cv"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.AssistantConfig{
		Endpoint: srv.URL,
		Model:    "llama3.2",
		Timeout:  5 * time.Second,
	})
}

func TestGenerateSendsOllamaContract(t *testing.T) {
	var got map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "Labs CV!"})
	})

	out, err := c.Generate(context.Background(), "Uzlabo manu CV", "lv")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "Labs CV!" {
		t.Errorf("response = %q", out)
	}
	if got["model"] != "llama3.2" {
		t.Errorf("model = %v", got["model"])
	}
	if got["stream"] != false {
		t.Errorf("stream = %v", got["stream"])
	}
	system, _ := got["system"].(string)
	if !strings.Contains(system, "latviešu valodā") {
		t.Errorf("system prompt not localized: %q", system)
	}
}

func TestGenerateRejectsErrorStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	})
	if _, err := c.Generate(context.Background(), "x", "en"); err == nil {
		t.Error("non-200 status must fail")
	}
}

func TestSuggestImprovementsIncludesRecordAndFocus(t *testing.T) {
	var prompt string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		_ = json.NewDecoder(r.Body).Decode(&req)
		prompt, _ = req["prompt"].(string)
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "ok"})
	})

	record := cv.New("en")
	record.PersonalInfo.FirstName = "Anna"
	_, err := c.SuggestImprovements(context.Background(), record, ImproveStructure, "shorter summary", "en")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	for _, want := range []string{"Anna", "section ordering", "shorter summary"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestHealthy(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/version" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"version": "0.5.0"})
	})
	if !c.Healthy(context.Background()) {
		t.Error("healthy endpoint must report true")
	}

	down := NewClient(config.AssistantConfig{Endpoint: "http://127.0.0.1:1", Model: "m", Timeout: time.Second})
	if down.Healthy(context.Background()) {
		t.Error("unreachable endpoint must report false")
	}
}

func TestValidImprovementType(t *testing.T) {
	if !ValidImprovementType(ImproveContent) || ValidImprovementType("bogus") {
		t.Error("improvement type validation broken")
	}
}
