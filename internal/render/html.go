package render

import (
	"fmt"
	htmltemplate "html/template"
	"strings"

	"cvmaker/internal/template"
)

// HTMLRenderer is the markup back end for on-screen preview. All catalogue
// templates share it; visual variation comes entirely from style tokens, so
// the section traversal stays identical across templates by construction.
type HTMLRenderer struct {
	tpl *htmltemplate.Template
}

// NewHTMLRenderer parses the preview template once. The template text is a
// compile-time constant, so parse errors are programmer errors.
func NewHTMLRenderer() *HTMLRenderer {
	tpl := htmltemplate.New("preview").Funcs(htmltemplate.FuncMap{
		// Photos arrive as data URIs, which the html/template URL filter
		// would otherwise reject.
		"safeURL": func(s string) htmltemplate.URL { return htmltemplate.URL(s) },
	})
	return &HTMLRenderer{
		tpl: htmltemplate.Must(tpl.Parse(previewTemplate)),
	}
}

type previewData struct {
	Doc    *Document
	Styles template.Styles
}

// Render produces the full preview page for one document.
func (r *HTMLRenderer) Render(doc *Document, styles template.Styles) (string, error) {
	var sb strings.Builder
	if err := r.tpl.Execute(&sb, previewData{Doc: doc, Styles: styles}); err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return sb.String(), nil
}

const previewTemplate = `<!DOCTYPE html>
<html lang="{{.Doc.Locale}}">
<head>
<meta charset="UTF-8">
<style>
  body {
    margin: 0;
    font-family: '{{.Styles.FontFamily}}', sans-serif;
    color: #1f2937;
    background: #ffffff;
  }
  .cv {
    max-width: 794px;
    margin: 0 auto;
    padding: 32px 40px;
  }
  .cv-header {
    display: flex;
    gap: 24px;
    padding-bottom: 16px;
    margin-bottom: 24px;
    border-bottom: 2px solid {{.Styles.PrimaryColor}};
    {{if eq .Styles.PhotoPosition "top-right"}}flex-direction: row-reverse;{{end}}
  }
  .cv-photo {
    width: 96px;
    height: 96px;
    object-fit: cover;
    border-radius: 6px;
    flex-shrink: 0;
  }
  .cv-name {
    font-size: 28px;
    font-weight: 700;
    margin: 0 0 8px 0;
  }
  .cv-contact {
    font-size: 12px;
    color: #6b7280;
    margin: 2px 0;
  }
  .cv-detail {
    font-size: 12px;
    margin: 2px 0;
  }
  .cv-detail-label {
    font-weight: 600;
    color: #374151;
  }
  .cv-section {
    margin-bottom: 22px;
  }
  .cv-section h2 {
    font-size: 15px;
    font-weight: 700;
    text-transform: uppercase;
    letter-spacing: 0.5px;
    color: {{.Styles.PrimaryColor}};
    border-bottom: 1px solid {{.Styles.PrimaryColor}};
    padding-bottom: 4px;
    margin: 0 0 12px 0;
  }
  .cv-entry {
    margin-bottom: 14px;
    padding-left: 12px;
    border-left: 2px solid {{.Styles.PrimaryColor}};
  }
  .cv-entry-title { font-size: 13px; font-weight: 600; margin: 0; }
  .cv-entry-subtitle { font-size: 12px; color: {{.Styles.PrimaryColor}}; margin: 2px 0; }
  .cv-entry-meta { font-size: 11px; color: #6b7280; font-style: italic; margin: 2px 0 6px 0; }
  .cv-entry-line { font-size: 11px; margin: 2px 0; }
  .cv-bullets { margin: 6px 0 0 0; padding-left: 18px; }
  .cv-bullets li { font-size: 11px; margin-bottom: 2px; }
  .cv-group { margin-bottom: 8px; }
  .cv-group-label { font-size: 12px; font-weight: 600; margin-bottom: 4px; }
  .cv-badges { display: flex; flex-wrap: wrap; gap: 6px; }
  .cv-badge {
    background: {{.Styles.SecondaryColor}};
    color: {{.Styles.PrimaryColor}};
    border: 1px solid {{.Styles.PrimaryColor}};
    border-radius: 10px;
    font-size: 10px;
    padding: 3px 8px;
  }
  .cv-language {
    display: flex;
    justify-content: space-between;
    background: {{.Styles.SecondaryColor}};
    border-radius: 4px;
    padding: 6px 10px;
    margin-bottom: 4px;
    font-size: 12px;
  }
  .cv-language-level {
    background: {{.Styles.PrimaryColor}};
    color: #ffffff;
    border-radius: 6px;
    font-size: 10px;
    padding: 2px 6px;
  }
  .cv-certs { font-size: 10px; color: #6b7280; margin: 2px 0 6px 0; }
  .cv-text { font-size: 12px; line-height: 1.5; white-space: pre-wrap; margin: 0; }
</style>
</head>
<body>
<div class="cv">
  <div class="cv-header">
    {{if .Doc.Header.Photo}}<img class="cv-photo" src="{{.Doc.Header.Photo | safeURL}}" alt="{{.Doc.Header.Name}}">{{end}}
    <div>
      <h1 class="cv-name">{{.Doc.Header.Name}}</h1>
      {{range .Doc.Header.Contacts}}<p class="cv-contact" data-kind="{{.Kind}}">{{.Value}}</p>
      {{end}}
      {{range .Doc.Header.Details}}<p class="cv-detail"><span class="cv-detail-label">{{.Label}}:</span> {{.Value}}</p>
      {{end}}
    </div>
  </div>
  {{range .Doc.Sections}}
  <div class="cv-section" data-section="{{.Kind}}">
    <h2>{{.Title}}</h2>
    {{if .Text}}<p class="cv-text">{{.Text}}</p>{{end}}
    {{range .Entries}}
    <div class="cv-entry">
      {{if .Title}}<p class="cv-entry-title">{{.Title}}</p>{{end}}
      {{if .Subtitle}}<p class="cv-entry-subtitle">{{.Subtitle}}</p>{{end}}
      {{if .Meta}}<p class="cv-entry-meta">{{.Meta}}</p>{{end}}
      {{range .Lines}}<p class="cv-entry-line">{{.}}</p>
      {{end}}
      {{if .Bullets}}<ul class="cv-bullets">
        {{range .Bullets}}<li>{{.}}</li>
        {{end}}
      </ul>{{end}}
    </div>
    {{end}}
    {{range .Groups}}
    <div class="cv-group">
      {{if .Category}}<div class="cv-group-label">{{.Category}}</div>{{end}}
      <div class="cv-badges">
        {{range .Items}}<span class="cv-badge">{{.}}</span>
        {{end}}
      </div>
    </div>
    {{end}}
    {{range .Languages}}
    <div class="cv-language"><span>{{.Name}}</span><span class="cv-language-level">{{.Level}}</span></div>
    {{if .Certifications}}<p class="cv-certs">{{range $i, $c := .Certifications}}{{if $i}}, {{end}}{{$c}}{{end}}</p>{{end}}
    {{end}}
    {{if .Items}}
    <div class="cv-badges">
      {{range .Items}}<span class="cv-badge">{{.}}</span>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}
</div>
</body>
</html>
`
