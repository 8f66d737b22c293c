package locale

import (
	"strings"
	"testing"
)

func TestFormatDate(t *testing.T) {
	cases := []struct {
		date string
		tag  string
		want string
	}{
		{"2021-03-15", "en", "March 2021"},
		{"2021-03", "en", "March 2021"},
		{"2021-03-15", "lv", "marts 2021"},
		{"2021-03-15", "ru", "март 2021"},
		{"", "en", ""},
		{"   ", "lv", ""},
		{"not-a-date", "en", "not-a-date"},
		{"2021-12-01", "xx", "December 2021"},
	}
	for _, tc := range cases {
		if got := FormatDate(tc.date, tc.tag); got != tc.want {
			t.Errorf("FormatDate(%q, %q) = %q, want %q", tc.date, tc.tag, got, tc.want)
		}
	}
}

func TestFormatDateRange(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		end     string
		current bool
		want    string
	}{
		{"current ignores stray end date", "2020-01-01", "2021-06-01", true, "January 2020 – Present"},
		{"past with end date", "2020-01-01", "2021-06-01", false, "January 2020 – June 2021"},
		{"missing end date degrades to start", "2020-01-01", "", false, "January 2020"},
		{"current without start", "", "", true, "Present"},
	}
	for _, tc := range cases {
		if got := FormatDateRange(tc.start, tc.end, tc.current, "en"); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestLanguageLabelFallback(t *testing.T) {
	if got := LanguageLabel("en", "lv"); got != "Angļu" {
		t.Errorf("LanguageLabel(en, lv) = %q", got)
	}
	if got := LanguageLabel("zz", "lv"); got != "zz" {
		t.Errorf("unknown code should fall back to raw code, got %q", got)
	}
	if got := LanguageLabel("de", "nope"); got != "German" {
		t.Errorf("unknown locale should use the default locale, got %q", got)
	}
}

func TestProficiencyLabelFallback(t *testing.T) {
	if got := ProficiencyLabel("Native", "lv"); got != "Dzimtā valoda" {
		t.Errorf("ProficiencyLabel(Native, lv) = %q", got)
	}
	if got := ProficiencyLabel("B2", "en"); got != "B2 - Upper Intermediate" {
		t.Errorf("ProficiencyLabel(B2, en) = %q", got)
	}
	if got := ProficiencyLabel("D9", "ru"); got != "D9" {
		t.Errorf("unknown level should come back unchanged, got %q", got)
	}
}

func TestSectionTitleCoversAllLocales(t *testing.T) {
	sections := []Section{
		SectionSummary, SectionExperience, SectionEducation, SectionLanguages,
		SectionITSkills, SectionSkills, SectionReferences, SectionHobbies, SectionAdditional,
	}
	for _, tag := range []string{Latvian, Russian, English} {
		for _, s := range sections {
			if SectionTitle(s, tag) == "" {
				t.Errorf("missing title for section %q locale %q", s, tag)
			}
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"CV_Jānis_Bērziņš.pdf", "cv_j_nis_b_rzi_.pdf"},
		{"john doe.pdf", "john_doe.pdf"},
		{"a///b", "a_b"},
		{"___", "cv"},
		{"", "cv"},
		{"Резюме.pdf", "_.pdf"},
	}
	for _, tc := range cases {
		got := SanitizeFileName(tc.in)
		if got != tc.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if got == "" || strings.Contains(got, "/") || strings.Contains(got, "\\") {
			t.Errorf("SanitizeFileName(%q) produced unsafe name %q", tc.in, got)
		}
		if strings.Contains(got, "__") {
			t.Errorf("SanitizeFileName(%q) left consecutive underscores: %q", tc.in, got)
		}
	}
}
