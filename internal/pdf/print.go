// Package pdf produces the print artifact for a CV. It consumes the same
// intermediate document as the on-screen preview, so an exported PDF always
// carries exactly the sections the preview showed.
package pdf

import (
	"fmt"
	htmltemplate "html/template"
	"strings"

	"cvmaker/internal/render"
	"cvmaker/internal/template"
)

var printTpl = htmltemplate.Must(htmltemplate.New("print").Funcs(htmltemplate.FuncMap{
	"safeURL": func(s string) htmltemplate.URL { return htmltemplate.URL(s) },
}).Parse(printTemplate))

type printData struct {
	Doc    *render.Document
	Styles template.Styles
}

// BuildPrintHTML renders the self-contained A4 page description handed to
// the headless browser. No external assets are referenced; fonts fall back
// to system families so the page never blocks on network fetches.
func BuildPrintHTML(doc *render.Document, styles template.Styles) (string, error) {
	var sb strings.Builder
	if err := printTpl.Execute(&sb, printData{Doc: doc, Styles: styles}); err != nil {
		return "", fmt.Errorf("build print html: %w", err)
	}
	return sb.String(), nil
}

const printTemplate = `<!DOCTYPE html>
<html lang="{{.Doc.Locale}}">
<head>
<meta charset="UTF-8">
<style>
  @page {
    size: A4;
    margin: 0;
  }
  * {
    -webkit-print-color-adjust: exact !important;
    print-color-adjust: exact !important;
    box-sizing: border-box;
  }
  html, body {
    margin: 0;
    padding: 0;
    background: #ffffff;
  }
  body {
    font-family: '{{.Styles.FontFamily}}', 'Helvetica', sans-serif;
    color: #1f2937;
    width: 210mm;
  }
  .page {
    padding: 14mm 16mm;
  }
  .cv-header {
    display: flex;
    gap: 8mm;
    padding-bottom: 5mm;
    margin-bottom: 7mm;
    border-bottom: 0.6mm solid {{.Styles.PrimaryColor}};
    {{if eq .Styles.PhotoPosition "top-right"}}flex-direction: row-reverse;{{end}}
  }
  .cv-photo {
    width: 30mm;
    height: 30mm;
    object-fit: cover;
    border-radius: 2mm;
    flex-shrink: 0;
  }
  .cv-name {
    font-size: 22pt;
    font-weight: 700;
    margin: 0 0 2.5mm 0;
  }
  .cv-contact {
    font-size: 9pt;
    color: #6b7280;
    margin: 0.7mm 0;
  }
  .cv-detail {
    font-size: 9pt;
    margin: 0.7mm 0;
  }
  .cv-detail-label {
    font-weight: 600;
    color: #374151;
  }
  .cv-section {
    margin-bottom: 6mm;
    break-inside: avoid-page;
  }
  .cv-section h2 {
    font-size: 11.5pt;
    font-weight: 700;
    text-transform: uppercase;
    letter-spacing: 0.15mm;
    color: {{.Styles.PrimaryColor}};
    border-bottom: 0.3mm solid {{.Styles.PrimaryColor}};
    padding-bottom: 1.2mm;
    margin: 0 0 3.5mm 0;
  }
  .cv-entry {
    margin-bottom: 4mm;
    padding-left: 3.5mm;
    border-left: 0.5mm solid {{.Styles.PrimaryColor}};
    break-inside: avoid;
  }
  .cv-entry-title { font-size: 10pt; font-weight: 600; margin: 0; }
  .cv-entry-subtitle { font-size: 9.5pt; color: {{.Styles.PrimaryColor}}; margin: 0.5mm 0; }
  .cv-entry-meta { font-size: 8.5pt; color: #6b7280; font-style: italic; margin: 0.5mm 0 1.5mm 0; }
  .cv-entry-line { font-size: 8.5pt; margin: 0.5mm 0; }
  .cv-bullets { margin: 1.5mm 0 0 0; padding-left: 5mm; }
  .cv-bullets li { font-size: 8.5pt; margin-bottom: 0.5mm; }
  .cv-group { margin-bottom: 2.5mm; }
  .cv-group-label { font-size: 9.5pt; font-weight: 600; margin-bottom: 1.2mm; }
  .cv-badges { display: flex; flex-wrap: wrap; gap: 1.8mm; }
  .cv-badge {
    background: {{.Styles.SecondaryColor}};
    color: {{.Styles.PrimaryColor}};
    border: 0.2mm solid {{.Styles.PrimaryColor}};
    border-radius: 2.5mm;
    font-size: 7.5pt;
    padding: 0.8mm 2.2mm;
  }
  .cv-language {
    display: flex;
    justify-content: space-between;
    background: {{.Styles.SecondaryColor}};
    border-radius: 1.2mm;
    padding: 1.8mm 3mm;
    margin-bottom: 1.2mm;
    font-size: 9.5pt;
  }
  .cv-language-level {
    background: {{.Styles.PrimaryColor}};
    color: #ffffff;
    border-radius: 1.5mm;
    font-size: 7.5pt;
    padding: 0.6mm 1.8mm;
  }
  .cv-certs { font-size: 7.5pt; color: #6b7280; margin: 0.5mm 0 1.8mm 0; }
  .cv-text { font-size: 9.5pt; line-height: 1.5; white-space: pre-wrap; margin: 0; }
</style>
</head>
<body>
<div class="page">
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
