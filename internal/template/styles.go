package template

// Styles is the per-template style token bundle consumed by the selector UI
// and by the render back ends. Tokens affect presentation only; section
// inclusion and ordering never depend on them.
type Styles struct {
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
	FontFamily     string   `json:"fontFamily"`
	HeaderStyle    string   `json:"headerStyle"`
	SectionSpacing string   `json:"sectionSpacing"`
	PhotoPosition  string   `json:"photoPosition"`
	Features       []string `json:"features"`
}

var styleTokens = map[string]Styles{
	"europass": {
		PrimaryColor:   "#003d82",
		SecondaryColor: "#f0f0f0",
		FontFamily:     "Arial",
		HeaderStyle:    "official",
		SectionSpacing: "compact",
		PhotoPosition:  "top-right",
		Features:       []string{"EU Standard", "Official Format", "Multi-language", "Skills Framework"},
	},
	"modern-professional": {
		PrimaryColor:   "#2563eb",
		SecondaryColor: "#f1f5f9",
		FontFamily:     "Inter",
		HeaderStyle:    "clean",
		SectionSpacing: "comfortable",
		PhotoPosition:  "top-left",
		Features:       []string{"Clean Design", "Photo Support", "Color Accents", "Modern Layout"},
	},
	"traditional-business": {
		PrimaryColor:   "#1f2937",
		SecondaryColor: "#f9fafb",
		FontFamily:     "Times New Roman",
		HeaderStyle:    "formal",
		SectionSpacing: "traditional",
		PhotoPosition:  "top-center",
		Features:       []string{"Conservative", "Professional", "Print Optimized", "Classic Layout"},
	},
	"creative-designer": {
		PrimaryColor:   "#ec4899",
		SecondaryColor: "#fdf2f8",
		FontFamily:     "Inter",
		HeaderStyle:    "creative",
		SectionSpacing: "dynamic",
		PhotoPosition:  "integrated",
		Features:       []string{"Creative Design", "Color Gradients", "Portfolio Integration", "Visual Elements"},
	},
	"creative-minimalist": {
		PrimaryColor:   "#059669",
		SecondaryColor: "#f0fdf4",
		FontFamily:     "Inter",
		HeaderStyle:    "minimal",
		SectionSpacing: "spacious",
		PhotoPosition:  "subtle",
		Features:       []string{"Minimal Design", "Elegant Typography", "Subtle Colors", "White Space"},
	},
	"creative-colorful": {
		PrimaryColor:   "#7c3aed",
		SecondaryColor: "#faf5ff",
		FontFamily:     "Inter",
		HeaderStyle:    "bold",
		SectionSpacing: "creative",
		PhotoPosition:  "prominent",
		Features:       []string{"Bold Colors", "Unique Layout", "Eye-catching", "Personality"},
	},
	"creative-infographic": {
		PrimaryColor:   "#ea580c",
		SecondaryColor: "#fff7ed",
		FontFamily:     "Inter",
		HeaderStyle:    "visual",
		SectionSpacing: "infographic",
		PhotoPosition:  "integrated",
		Features:       []string{"Visual Charts", "Icons", "Data Visualization", "Infographic Style"},
	},
	"creative-portfolio": {
		PrimaryColor:   "#0891b2",
		SecondaryColor: "#f0f9ff",
		FontFamily:     "Inter",
		HeaderStyle:    "portfolio",
		SectionSpacing: "showcase",
		PhotoPosition:  "hero",
		Features:       []string{"Portfolio Showcase", "Project Gallery", "Work Samples", "Creative Layout"},
	},
}

// StylesFor returns the style tokens for a template id, falling back to the
// default template's tokens for unknown ids.
func StylesFor(id string) Styles {
	if s, ok := styleTokens[id]; ok {
		return s
	}
	return styleTokens[DefaultID]
}
