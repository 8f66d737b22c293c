package cv

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	r := New("lv")
	if r.ID == "" {
		t.Fatal("new record must have an id")
	}
	if r.Template != DefaultTemplate {
		t.Errorf("template = %q, want %q", r.Template, DefaultTemplate)
	}
	if r.Language != "lv" {
		t.Errorf("language = %q, want lv", r.Language)
	}
	if r.WorkExperience == nil || r.Education == nil || r.LanguageSkills == nil ||
		r.ITSkills == nil || r.Skills == nil || r.References == nil {
		t.Error("repeating sections must be empty lists, not nil")
	}
	if r.CreatedAt.IsZero() || !r.UpdatedAt.Equal(r.CreatedAt) {
		t.Error("timestamps not initialized")
	}
}

func TestNewNormalizesUnknownLocale(t *testing.T) {
	if r := New("tlh"); r.Language != "en" {
		t.Errorf("unknown locale should normalize to en, got %q", r.Language)
	}
}

func TestEntryIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewEntryID()
		if id == "" {
			t.Fatal("empty entry id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate entry id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestApplyPatch(t *testing.T) {
	r := New("en")
	r.PersonalInfo.FirstName = "Anna"
	origID, origCreated := r.ID, r.CreatedAt
	before := r.UpdatedAt
	time.Sleep(time.Millisecond)

	patch := []byte(`{
		"id": "attacker-chosen",
		"professionalSummary": "Engineer with ten years of experience.",
		"personalInfo": {"firstName": "Anna", "lastName": "Ozola"},
		"workExperience": [{"id": "w1", "position": "Dev", "company": "SIA", "startDate": "2020-01-01", "current": true}]
	}`)
	if err := r.ApplyPatch(patch); err != nil {
		t.Fatalf("ApplyPatch: %v", err)
	}

	if r.ID != origID {
		t.Errorf("id must be immutable, got %q", r.ID)
	}
	if !r.CreatedAt.Equal(origCreated) {
		t.Error("createdAt must be immutable")
	}
	if !r.UpdatedAt.After(before) {
		t.Error("updatedAt must be refreshed on mutation")
	}
	if r.PersonalInfo.LastName != "Ozola" || r.PersonalInfo.FirstName != "Anna" {
		t.Errorf("personal info not merged: %+v", r.PersonalInfo)
	}
	if r.ProfessionalSummary == "" {
		t.Error("summary not applied")
	}
	if len(r.WorkExperience) != 1 || r.WorkExperience[0].Position != "Dev" {
		t.Errorf("work experience not replaced: %+v", r.WorkExperience)
	}
}

func TestApplyPatchRejectsMalformedJSON(t *testing.T) {
	r := New("en")
	if err := r.ApplyPatch([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed patch")
	}
}

func TestExportFileName(t *testing.T) {
	r := New("lv")
	r.PersonalInfo.FirstName = "Jānis"
	r.PersonalInfo.LastName = "Bērziņš"
	got := r.ExportFileName()
	if got != "cv_j_nis_b_rzi_.pdf" {
		t.Errorf("ExportFileName() = %q", got)
	}

	empty := New("en")
	if empty.ExportFileName() != "cv_cv.pdf" {
		t.Errorf("empty name fallback = %q", empty.ExportFileName())
	}
}
