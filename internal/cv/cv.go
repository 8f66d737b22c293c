package cv

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cvmaker/internal/locale"
)

// DefaultTemplate is assigned to newly created records.
const DefaultTemplate = "modern-professional"

// Address is nested under PersonalInfo. Fields are present-but-empty rather
// than omitted so form bindings stay stable.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// PersonalInfo holds the header block of a CV.
type PersonalInfo struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        Address  `json:"address"`
	DateOfBirth    string   `json:"dateOfBirth,omitempty"`
	Nationality    string   `json:"nationality,omitempty"`
	MaritalStatus  string   `json:"maritalStatus,omitempty"`
	DrivingLicense []string `json:"drivingLicense,omitempty"`
	Photo          string   `json:"photo,omitempty"` // data URI or URL
	Website        string   `json:"website,omitempty"`
	LinkedIn       string   `json:"linkedin,omitempty"`
	GitHub         string   `json:"github,omitempty"`
}

// WorkExperience is one entry of the work history, in display order.
// When Current is true any stored EndDate is ignored.
type WorkExperience struct {
	ID           string   `json:"id"`
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education mirrors WorkExperience's current/endDate contract.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
	Thesis      string `json:"thesis,omitempty"`
	Description string `json:"description,omitempty"`
}

// LanguageSkill proficiency is CEFR (A1..C2) or "Native".
type LanguageSkill struct {
	ID             string   `json:"id"`
	Language       string   `json:"language"`
	Proficiency    string   `json:"proficiency"`
	Certifications []string `json:"certifications,omitempty"`
}

// ITSkill proficiency is Beginner/Intermediate/Advanced/Expert.
type ITSkill struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Proficiency       string `json:"proficiency"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
}

// Skill is a free-form skill not tied to IT.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Reference is a person vouching for the candidate.
type Reference struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship"`
}

// CVRecord is the root entity: one résumé's full content and metadata.
// List order is display order; entries are never re-sorted.
type CVRecord struct {
	ID                  string          `json:"id"`
	PersonalInfo        PersonalInfo    `json:"personalInfo"`
	ProfessionalSummary string          `json:"professionalSummary,omitempty"`
	WorkExperience      []WorkExperience `json:"workExperience"`
	Education           []Education     `json:"education"`
	LanguageSkills      []LanguageSkill `json:"languageSkills"`
	ITSkills            []ITSkill       `json:"itSkills"`
	Skills              []Skill         `json:"skills"`
	References          []Reference     `json:"references"`
	Hobbies             []string        `json:"hobbies,omitempty"`
	AdditionalInfo      string          `json:"additionalInfo,omitempty"`
	Template            string          `json:"template"`
	Language            string          `json:"language"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// NewEntryID returns a collision-resistant id for repeating-section entries.
// Entry ids are the stable render keys and update/delete targets, so they
// must survive reloads and concurrent editors.
func NewEntryID() string {
	return uuid.NewString()
}

// New creates an empty record with defaults: empty strings and lists, the
// default template and the given locale.
func New(tag string) *CVRecord {
	now := time.Now().UTC()
	return &CVRecord{
		ID:             uuid.NewString(),
		WorkExperience: []WorkExperience{},
		Education:      []Education{},
		LanguageSkills: []LanguageSkill{},
		ITSkills:       []ITSkill{},
		Skills:         []Skill{},
		References:     []Reference{},
		Template:       DefaultTemplate,
		Language:       locale.Normalize(tag),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Touch refreshes UpdatedAt; call after every mutation.
func (r *CVRecord) Touch() {
	r.UpdatedAt = time.Now().UTC()
}

// ApplyPatch merges a partial JSON update into the record. Only fields
// present in the patch are replaced (lists wholesale, as forms submit the
// full list they edit). ID and CreatedAt are immutable; UpdatedAt is
// refreshed.
func (r *CVRecord) ApplyPatch(patch []byte) error {
	id, createdAt := r.ID, r.CreatedAt
	if err := json.Unmarshal(patch, r); err != nil {
		return fmt.Errorf("apply patch: %w", err)
	}
	r.ID = id
	r.CreatedAt = createdAt
	r.Language = locale.Normalize(r.Language)
	r.Touch()
	return nil
}

// FullName joins the name fields for display and file naming.
func (r *CVRecord) FullName() string {
	first, last := r.PersonalInfo.FirstName, r.PersonalInfo.LastName
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// ExportFileName derives a download-safe PDF name from the person's name.
func (r *CVRecord) ExportFileName() string {
	name := r.FullName()
	if name == "" {
		name = "cv"
	}
	return locale.SanitizeFileName("CV_" + name + ".pdf")
}
