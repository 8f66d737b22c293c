// Package template is the static catalogue of visual CV templates and the
// dispatch point mapping a template id to its renderer. Template ids are
// persisted on CV records and must remain valid forever; never rename an id
// without a migration.
package template

import "cvmaker/internal/locale"

// Category groups templates in the selector UI.
type Category string

const (
	CategoryEuropass    Category = "europass"
	CategoryModern      Category = "modern"
	CategoryTraditional Category = "traditional"
	CategoryCreative    Category = "creative"
)

// Template describes one registered visual style. Defined at build time,
// never mutated at runtime.
type Template struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Category         Category `json:"category"`
	IsPremium        bool     `json:"isPremium"`
	SupportedLocales []string `json:"supportedLocales"`
}

var allLocales = []string{locale.Latvian, locale.Russian, locale.English}

var catalogue = []Template{
	{
		ID:          "europass",
		Name:        "Europass",
		Description: "Oficiālā Eiropas Savienības CV veidne, atzīta visā ES",
		Category:    CategoryEuropass,
	},
	{
		ID:          "modern-professional",
		Name:        "Mūsdienīgs Profesionāls",
		Description: "Tīrs, mūsdienīgs dizains ar uzsvaru uz lasāmību",
		Category:    CategoryModern,
	},
	{
		ID:          "traditional-business",
		Name:        "Tradicionāls Biznesa",
		Description: "Konservatīvs stils tradicionālām nozarēm",
		Category:    CategoryTraditional,
	},
	{
		ID:          "creative-designer",
		Name:        "Radošs Dizaineris",
		Description: "Kreatīvs dizains ar krāsu akcentiem dizaina profesijām",
		Category:    CategoryCreative,
		IsPremium:   true,
	},
	{
		ID:          "creative-minimalist",
		Name:        "Minimālistisks Radošs",
		Description: "Elegants minimālisms ar radošiem elementiem",
		Category:    CategoryCreative,
		IsPremium:   true,
	},
	{
		ID:          "creative-colorful",
		Name:        "Krāsains Radošs",
		Description: "Spilgts dizains ar unikālām krāsām un formām",
		Category:    CategoryCreative,
		IsPremium:   true,
	},
	{
		ID:          "creative-infographic",
		Name:        "Infogrāfisks CV",
		Description: "Vizuāls CV ar diagrammām un ikonām",
		Category:    CategoryCreative,
		IsPremium:   true,
	},
	{
		ID:          "creative-portfolio",
		Name:        "Portfolio Stils",
		Description: "CV ar portfolio elementiem radošajām profesijām",
		Category:    CategoryCreative,
		IsPremium:   true,
	},
}

// DefaultID is the fallback for unknown or missing template ids.
const DefaultID = "modern-professional"

// List returns the full catalogue in registration order.
func List() []Template {
	out := make([]Template, len(catalogue))
	copy(out, catalogue)
	for i := range out {
		out[i].SupportedLocales = append([]string(nil), allLocales...)
	}
	return out
}

// ByID looks up a template; ok is false for unknown ids.
func ByID(id string) (Template, bool) {
	for _, t := range catalogue {
		if t.ID == id {
			t.SupportedLocales = append([]string(nil), allLocales...)
			return t, true
		}
	}
	return Template{}, false
}

// IsPremium reports whether the template is gated behind premium. Unknown
// ids are not premium: the fallback rendering is always available.
func IsPremium(id string) bool {
	t, ok := ByID(id)
	return ok && t.IsPremium
}

// ByCategory filters the catalogue; the literal "all" returns everything.
func ByCategory(cat string) []Template {
	if cat == "all" || cat == "" {
		return List()
	}
	out := make([]Template, 0, len(catalogue))
	for _, t := range List() {
		if string(t.Category) == cat {
			out = append(out, t)
		}
	}
	return out
}

// Free returns the non-premium templates.
func Free() []Template {
	out := make([]Template, 0, len(catalogue))
	for _, t := range List() {
		if !t.IsPremium {
			out = append(out, t)
		}
	}
	return out
}

// Premium returns the premium templates.
func Premium() []Template {
	out := make([]Template, 0, len(catalogue))
	for _, t := range List() {
		if t.IsPremium {
			out = append(out, t)
		}
	}
	return out
}

// Valid reports whether id names a registered template.
func Valid(id string) bool {
	_, ok := ByID(id)
	return ok
}
