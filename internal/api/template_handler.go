package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvmaker/internal/render"
	"cvmaker/internal/template"
)

// TemplateHandler serves the static template catalogue and sample previews.
// The catalogue is compiled in; there is nothing to query or own, so these
// endpoints are public.
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

type templateListItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Premium     bool   `json:"premium"`
}

func newTemplateListItem(t template.Template) templateListItem {
	return templateListItem{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Category:    string(t.Category),
		Premium:     t.IsPremium,
	}
}

// ListTemplates returns the catalogue, optionally filtered by category.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	items := make([]templateListItem, 0)
	for _, t := range template.ByCategory(category) {
		items = append(items, newTemplateListItem(t))
	}
	c.JSON(http.StatusOK, items)
}

// GetTemplate returns one catalogue entry with its style tokens.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	t, ok := template.ByID(c.Param("id"))
	if !ok {
		NotFound(c, "template not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"template": newTemplateListItem(t),
		"styles":   template.StylesFor(t.ID),
	})
}

// PreviewTemplate renders the fixed sample CV under the requested template,
// so users compare styles against identical content.
func (h *TemplateHandler) PreviewTemplate(c *gin.Context) {
	t, ok := template.ByID(c.Param("id"))
	if !ok {
		NotFound(c, "template not found")
		return
	}

	tag := c.DefaultQuery("lang", "lv")
	record := render.SampleRecord(tag)
	html, err := render.Preview(record, t.ID, tag)
	if err != nil {
		Internal(c, "failed to render preview")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
