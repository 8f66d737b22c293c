package render

import (
	"time"

	"cvmaker/internal/cv"
	"cvmaker/internal/locale"
)

// SampleRecord returns the fixed demo CV used by the template selector and
// thumbnail generation. Users compare templates against this record, never
// against their own data. Ids and timestamps are constant so previews are
// reproducible.
func SampleRecord(tag string) *cv.CVRecord {
	created := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	return &cv.CVRecord{
		ID: "sample",
		PersonalInfo: cv.PersonalInfo{
			FirstName: "Jānis",
			LastName:  "Bērziņš",
			Email:     "janis.berzins@example.com",
			Phone:     "+371 20000000",
			Address: cv.Address{
				Street:  "Brīvības iela 1",
				City:    "Rīga",
				Country: "Latvija",
			},
			LinkedIn: "linkedin.com/in/janisberzins",
		},
		ProfessionalSummary: "Programmatūras izstrādātājs ar desmit gadu pieredzi tīmekļa sistēmu veidošanā.",
		WorkExperience: []cv.WorkExperience{
			{
				ID:          "sample-exp-1",
				Position:    "Vecākais izstrādātājs",
				Company:     "SIA Tehnoloģijas",
				Location:    "Rīga",
				StartDate:   "2021-03-01",
				Current:     true,
				Description: "Backend sistēmu arhitektūra un izstrāde.",
				Achievements: []string{
					"Samazināja atbildes laiku par 40%",
					"Ieviesa automatizētu izvietošanas procesu",
				},
			},
			{
				ID:        "sample-exp-2",
				Position:  "Izstrādātājs",
				Company:   "SIA Risinājumi",
				Location:  "Rīga",
				StartDate: "2017-06-01",
				EndDate:   "2021-02-01",
			},
		},
		Education: []cv.Education{
			{
				ID:          "sample-edu-1",
				Degree:      "Bakalaura grāds datorzinātnēs",
				Institution: "Latvijas Universitāte",
				Location:    "Rīga",
				StartDate:   "2013-09-01",
				EndDate:     "2017-06-01",
			},
		},
		LanguageSkills: []cv.LanguageSkill{
			{ID: "sample-lang-1", Language: "lv", Proficiency: "Native"},
			{ID: "sample-lang-2", Language: "en", Proficiency: "C1"},
		},
		ITSkills: []cv.ITSkill{
			{ID: "sample-it-1", Name: "Go", Category: "Programming", Proficiency: "Expert"},
			{ID: "sample-it-2", Name: "PostgreSQL", Category: "Database", Proficiency: "Advanced"},
		},
		Skills: []cv.Skill{
			{ID: "sample-skill-1", Name: "Komandas vadība", Category: "Soft skills"},
		},
		References: []cv.Reference{},
		Hobbies:    []string{"Riteņbraukšana", "Fotogrāfija"},
		Template:   cv.DefaultTemplate,
		Language:   locale.Normalize(tag),
		CreatedAt:  created,
		UpdatedAt:  created,
	}
}
