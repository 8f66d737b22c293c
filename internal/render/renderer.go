package render

import (
	"cvmaker/internal/cv"
	"cvmaker/internal/template"
)

// Renderer produces a preview rendering of a document under one template's
// style tokens. Adding a template is a registration, not a new conditional.
type Renderer interface {
	Render(doc *Document, styles template.Styles) (string, error)
}

var registry = map[string]Renderer{}

// Register binds a template id to its preview renderer. Called from init;
// not safe for concurrent use afterwards.
func Register(id string, r Renderer) {
	registry[id] = r
}

// For resolves the renderer for a template id. Dispatch fails closed: an
// unknown id gets the default template's renderer rather than an error.
func For(id string) Renderer {
	if r, ok := registry[id]; ok {
		return r
	}
	return registry[template.DefaultID]
}

// Preview renders a record through the template selected by templateID,
// overriding the record's own choice (used by the template selector to
// compare styles). Unknown ids fall back to the default rendering.
func Preview(record *cv.CVRecord, templateID, tag string) (string, error) {
	doc := BuildDocument(record, tag)
	return For(templateID).Render(doc, template.StylesFor(templateID))
}

func init() {
	html := NewHTMLRenderer()
	for _, t := range template.List() {
		Register(t.ID, html)
	}
}
