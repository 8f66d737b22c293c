package render

import (
	"reflect"
	"testing"

	"cvmaker/internal/cv"
	"cvmaker/internal/locale"
)

func minimalRecord() *cv.CVRecord {
	r := cv.New("en")
	r.PersonalInfo.FirstName = "Anna"
	r.PersonalInfo.LastName = "Ozola"
	return r
}

func sectionKinds(doc *Document) []locale.Section {
	kinds := make([]locale.Section, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func TestMinimalDocumentIsHeaderOnly(t *testing.T) {
	doc := BuildDocument(minimalRecord(), "en")
	if doc.Header.Name != "Anna Ozola" {
		t.Errorf("header name = %q", doc.Header.Name)
	}
	if len(doc.Sections) != 0 {
		t.Fatalf("empty record must yield zero sections, got %v", sectionKinds(doc))
	}
	if len(doc.Header.Contacts) != 0 {
		t.Errorf("no contact fields should render blank lines, got %v", doc.Header.Contacts)
	}
}

func TestEmptySectionsAreOmitted(t *testing.T) {
	r := minimalRecord()
	r.ProfessionalSummary = "   "
	r.WorkExperience = []cv.WorkExperience{}
	r.Hobbies = []string{"", "  "}
	doc := BuildDocument(r, "en")
	if len(doc.Sections) != 0 {
		t.Fatalf("whitespace-only content must be omitted, got %v", sectionKinds(doc))
	}
}

func TestSectionOrderIsFixed(t *testing.T) {
	r := minimalRecord()
	r.ProfessionalSummary = "Summary."
	r.WorkExperience = []cv.WorkExperience{{ID: "w1", Position: "Dev", StartDate: "2020-01-01", Current: true}}
	r.Education = []cv.Education{{ID: "e1", Degree: "BSc", StartDate: "2015-09-01", EndDate: "2019-06-01"}}
	r.LanguageSkills = []cv.LanguageSkill{{ID: "l1", Language: "en", Proficiency: "C1"}}
	r.ITSkills = []cv.ITSkill{{ID: "i1", Name: "Go", Category: "Programming", Proficiency: "Expert"}}
	r.Skills = []cv.Skill{{ID: "s1", Name: "Leadership", Category: "Soft"}}
	r.References = []cv.Reference{{ID: "r1", Name: "Someone", Email: "x@y.z"}}
	r.Hobbies = []string{"Chess"}
	r.AdditionalInfo = "More."

	want := []locale.Section{
		locale.SectionSummary, locale.SectionExperience, locale.SectionEducation,
		locale.SectionLanguages, locale.SectionITSkills, locale.SectionSkills,
		locale.SectionReferences, locale.SectionHobbies, locale.SectionAdditional,
	}
	got := sectionKinds(BuildDocument(r, "en"))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("section order = %v, want %v", got, want)
	}
}

func TestEntryOrderPreserved(t *testing.T) {
	r := minimalRecord()
	// Deliberately not in chronological order; display order is list order.
	r.WorkExperience = []cv.WorkExperience{
		{ID: "w1", Position: "Second job", StartDate: "2021-01-01", Current: true},
		{ID: "w2", Position: "First job", StartDate: "2015-01-01", EndDate: "2020-12-01"},
	}
	doc := BuildDocument(r, "en")
	if len(doc.Sections) != 1 {
		t.Fatalf("expected one section, got %v", sectionKinds(doc))
	}
	entries := doc.Sections[0].Entries
	if len(entries) != 2 || entries[0].Title != "Second job" || entries[1].Title != "First job" {
		t.Errorf("entries re-ordered: %+v", entries)
	}
}

func TestCurrentEntryDateRendering(t *testing.T) {
	r := minimalRecord()
	r.WorkExperience = []cv.WorkExperience{
		{ID: "w1", Position: "A", StartDate: "2020-01-01", EndDate: "2022-05-01", Current: true},
		{ID: "w2", Position: "B", StartDate: "2018-01-01", EndDate: "2019-12-01", Current: false},
		{ID: "w3", Position: "C", StartDate: "2017-01-01", Current: false},
	}
	doc := BuildDocument(r, "en")
	entries := doc.Sections[0].Entries
	if entries[0].Meta != "January 2020 – Present" {
		t.Errorf("current entry must ignore stray endDate, got %q", entries[0].Meta)
	}
	if entries[1].Meta != "January 2018 – December 2019" {
		t.Errorf("past entry meta = %q", entries[1].Meta)
	}
	if entries[2].Meta != "January 2017" {
		t.Errorf("entry without endDate must degrade to start date, got %q", entries[2].Meta)
	}
}

func TestAchievementsSubList(t *testing.T) {
	r := minimalRecord()
	r.WorkExperience = []cv.WorkExperience{
		{ID: "w1", Position: "A", StartDate: "2020-01-01", Current: true, Achievements: []string{"Shipped v1", "Cut costs"}},
		{ID: "w2", Position: "B", StartDate: "2019-01-01", Achievements: []string{}},
	}
	doc := BuildDocument(r, "en")
	entries := doc.Sections[0].Entries
	if len(entries[0].Bullets) != 2 {
		t.Errorf("achievements missing: %+v", entries[0].Bullets)
	}
	if entries[1].Bullets != nil {
		t.Errorf("empty achievements must omit the sub-list, got %+v", entries[1].Bullets)
	}
}

func TestSkillGroupingFirstSeenOrder(t *testing.T) {
	r := minimalRecord()
	r.ITSkills = []cv.ITSkill{
		{ID: "1", Name: "Go", Category: "Programming", Proficiency: "Expert"},
		{ID: "2", Name: "PostgreSQL", Category: "Database", Proficiency: "Advanced"},
		{ID: "3", Name: "Python", Category: "Programming", Proficiency: "Intermediate"},
	}
	doc := BuildDocument(r, "en")
	groups := doc.Sections[0].Groups
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %+v", groups)
	}
	if groups[0].Category != "Programming" || groups[1].Category != "Database" {
		t.Errorf("groups not in first-seen order: %+v", groups)
	}
	if !reflect.DeepEqual(groups[0].Items, []string{"Go (Expert)", "Python (Intermediate)"}) {
		t.Errorf("programming group items = %v", groups[0].Items)
	}
}

func TestHeaderContactsConditional(t *testing.T) {
	r := minimalRecord()
	r.PersonalInfo.Email = "anna@example.com"
	r.PersonalInfo.Phone = "   "
	r.PersonalInfo.Address.City = "Rīga"
	r.PersonalInfo.Address.Country = "Latvija"
	doc := BuildDocument(r, "en")
	if len(doc.Header.Contacts) != 2 {
		t.Fatalf("contacts = %+v", doc.Header.Contacts)
	}
	if doc.Header.Contacts[0].Kind != ContactEmail {
		t.Errorf("first contact = %+v", doc.Header.Contacts[0])
	}
	if doc.Header.Contacts[1].Value != "Rīga, Latvija" {
		t.Errorf("address line = %q", doc.Header.Contacts[1].Value)
	}
}

func TestLanguageLabelsLocalized(t *testing.T) {
	r := minimalRecord()
	r.LanguageSkills = []cv.LanguageSkill{
		{ID: "1", Language: "en", Proficiency: "C1"},
		{ID: "2", Language: "Spāņu valoda", Proficiency: "A2"},
	}
	doc := BuildDocument(r, "lv")
	rows := doc.Sections[0].Languages
	if rows[0].Name != "Angļu" {
		t.Errorf("language code should be localized, got %q", rows[0].Name)
	}
	if rows[1].Name != "Spāņu valoda" {
		t.Errorf("free-text language must pass through, got %q", rows[1].Name)
	}
	if rows[0].Level != "C1 - Augsts līmenis" {
		t.Errorf("proficiency label = %q", rows[0].Level)
	}
}

func TestBuildDocumentIsDeterministic(t *testing.T) {
	r := SampleRecord("lv")
	first := BuildDocument(r, "lv")
	second := BuildDocument(r, "lv")
	if !reflect.DeepEqual(first, second) {
		t.Error("two builds of the same record must be identical")
	}
}

func TestHeaderPersonalDetails(t *testing.T) {
	r := minimalRecord()
	r.PersonalInfo.DateOfBirth = "1990-05-10"
	r.PersonalInfo.Nationality = "Latvijas"
	r.PersonalInfo.MaritalStatus = "Precējies"
	r.PersonalInfo.DrivingLicense = []string{"B", "", "C1"}

	doc := BuildDocument(r, "lv")
	details := doc.Header.Details
	if len(details) != 4 {
		t.Fatalf("details = %+v", details)
	}
	if details[0].Label != "Dzimšanas datums" || details[0].Value != "maijs 1990" {
		t.Errorf("date of birth line = %+v", details[0])
	}
	if details[1].Value != "Latvijas" {
		t.Errorf("nationality line = %+v", details[1])
	}
	if details[3].Label != "Autovadītāja apliecība" || details[3].Value != "B, C1" {
		t.Errorf("driving license line = %+v", details[3])
	}
}

func TestHeaderDetailsOmittedWhenAbsent(t *testing.T) {
	doc := BuildDocument(minimalRecord(), "lv")
	if len(doc.Header.Details) != 0 {
		t.Errorf("absent personal extras must render nothing, got %+v", doc.Header.Details)
	}
}

func TestITSkillYearsAnnotateLabel(t *testing.T) {
	r := minimalRecord()
	r.ITSkills = []cv.ITSkill{
		{ID: "1", Name: "Go", Category: "Programming", Proficiency: "Expert", YearsOfExperience: 5},
		{ID: "2", Name: "Docker", Category: "Tools", YearsOfExperience: 3},
		{ID: "3", Name: "Rust", Category: "Programming", Proficiency: "Beginner"},
	}
	doc := BuildDocument(r, "lv")
	groups := doc.Sections[0].Groups
	if groups[0].Items[0] != "Go (Expert, 5 gadi)" {
		t.Errorf("label with proficiency and years = %q", groups[0].Items[0])
	}
	if groups[1].Items[0] != "Docker (3 gadi)" {
		t.Errorf("label with years alone = %q", groups[1].Items[0])
	}
	if groups[0].Items[1] != "Rust (Beginner)" {
		t.Errorf("label without years = %q", groups[0].Items[1])
	}
}
