package pdf

import (
	"strings"
	"testing"

	"cvmaker/internal/render"
	"cvmaker/internal/template"
)

func TestBuildPrintHTMLSelfContained(t *testing.T) {
	doc := render.BuildDocument(render.SampleRecord("lv"), "lv")
	out, err := BuildPrintHTML(doc, template.StylesFor(template.DefaultID))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, want := range []string{
		"size: A4",
		`lang="lv"`,
		"Jānis Bērziņš",
		`data-section="experience"`,
		"šobrīd",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("print html missing %q", want)
		}
	}
	for _, forbidden := range []string{`src="http`, `href="http`, "@import"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("print html references an external asset: %q", forbidden)
		}
	}
}

func TestPrintAndPreviewAgreeOnSections(t *testing.T) {
	doc := render.BuildDocument(render.SampleRecord("en"), "en")
	printed, err := BuildPrintHTML(doc, template.StylesFor(template.DefaultID))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	previewed, err := render.NewHTMLRenderer().Render(doc, template.StylesFor(template.DefaultID))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	for _, s := range doc.Sections {
		marker := `data-section="` + string(s.Kind) + `"`
		if strings.Contains(printed, marker) != strings.Contains(previewed, marker) {
			t.Errorf("section %s present in one back end but not the other", s.Kind)
		}
	}
}

func TestBuildPrintHTMLEscapesUserText(t *testing.T) {
	doc := &render.Document{
		Locale: "en",
		Header: render.Header{Name: `<b>Nosaukums</b>`},
	}
	out, err := BuildPrintHTML(doc, template.StylesFor(template.DefaultID))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if strings.Contains(out, "<b>Nosaukums</b>") {
		t.Error("header name must be escaped")
	}
}
