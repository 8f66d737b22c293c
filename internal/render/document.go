// Package render turns a CV record into a visual document. A single
// traversal (BuildDocument) decides which sections appear, in what order and
// with what text; the HTML preview and the PDF export both consume the
// resulting Document, so the two back ends cannot diverge on content.
package render

import (
	"fmt"
	"strings"

	"cvmaker/internal/cv"
	"cvmaker/internal/locale"
)

// ContactKind tags a header contact line so back ends can pick an icon.
type ContactKind string

const (
	ContactEmail    ContactKind = "email"
	ContactPhone    ContactKind = "phone"
	ContactAddress  ContactKind = "address"
	ContactWebsite  ContactKind = "website"
	ContactLinkedIn ContactKind = "linkedin"
	ContactGitHub   ContactKind = "github"
)

// ContactLine is one conditionally included header detail.
type ContactLine struct {
	Kind  ContactKind
	Value string
}

// DetailLine is one labeled personal fact shown under the contacts (date of
// birth, nationality, marital status, driving licenses).
type DetailLine struct {
	Label string
	Value string
}

// Header is the top block: name, optional photo, contact details, personal
// details.
type Header struct {
	Name     string
	Photo    string // data URI or URL; empty when absent
	Contacts []ContactLine
	Details  []DetailLine
}

// Entry is one item of a repeating section (experience, education,
// references). Unused fields stay empty and are omitted by back ends.
type Entry struct {
	Title    string   // position / degree / reference name
	Subtitle string   // company / institution / reference position+company
	Meta     string   // date range and location, or contact info
	Lines    []string // description, gpa, thesis, reference details
	Bullets  []string // achievements sub-list
}

// Group is a labeled cluster of skill items sharing a category.
type Group struct {
	Category string
	Items    []string
}

// LanguageRow is one language with its localized proficiency.
type LanguageRow struct {
	Name           string
	Level          string
	Certifications []string
}

// Section is one named, independently omitted block. Exactly one of the
// payload fields is populated, depending on Kind.
type Section struct {
	Kind      locale.Section
	Title     string
	Text      string
	Entries   []Entry
	Groups    []Group
	Languages []LanguageRow
	Items     []string
}

// Document is the intermediate representation shared by all back ends.
// Building it is deterministic: same record and locale, same document.
type Document struct {
	Locale   string
	Header   Header
	Sections []Section
}

// BuildDocument derives the render document from a record. It never fails
// for a structurally valid record; the minimal output is a header carrying
// the name alone with zero sections. Empty sections are omitted entirely,
// entry order is preserved, and date ranges follow the current/endDate
// contract.
func BuildDocument(record *cv.CVRecord, tag string) *Document {
	tag = locale.Normalize(tag)
	doc := &Document{
		Locale: tag,
		Header: buildHeader(record, tag),
	}

	if s := strings.TrimSpace(record.ProfessionalSummary); s != "" {
		doc.addText(locale.SectionSummary, tag, s)
	}
	if entries := experienceEntries(record.WorkExperience, tag); len(entries) > 0 {
		doc.addEntries(locale.SectionExperience, tag, entries)
	}
	if entries := educationEntries(record.Education, tag); len(entries) > 0 {
		doc.addEntries(locale.SectionEducation, tag, entries)
	}
	if rows := languageRows(record.LanguageSkills, tag); len(rows) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:      locale.SectionLanguages,
			Title:     locale.SectionTitle(locale.SectionLanguages, tag),
			Languages: rows,
		})
	}
	if groups := itSkillGroups(record.ITSkills, tag); len(groups) > 0 {
		doc.addGroups(locale.SectionITSkills, tag, groups)
	}
	if groups := skillGroups(record.Skills); len(groups) > 0 {
		doc.addGroups(locale.SectionSkills, tag, groups)
	}
	if entries := referenceEntries(record.References); len(entries) > 0 {
		doc.addEntries(locale.SectionReferences, tag, entries)
	}
	if items := nonEmpty(record.Hobbies); len(items) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:  locale.SectionHobbies,
			Title: locale.SectionTitle(locale.SectionHobbies, tag),
			Items: items,
		})
	}
	if s := strings.TrimSpace(record.AdditionalInfo); s != "" {
		doc.addText(locale.SectionAdditional, tag, s)
	}

	return doc
}

func (d *Document) addText(kind locale.Section, tag, text string) {
	d.Sections = append(d.Sections, Section{
		Kind:  kind,
		Title: locale.SectionTitle(kind, tag),
		Text:  text,
	})
}

func (d *Document) addEntries(kind locale.Section, tag string, entries []Entry) {
	d.Sections = append(d.Sections, Section{
		Kind:    kind,
		Title:   locale.SectionTitle(kind, tag),
		Entries: entries,
	})
}

func (d *Document) addGroups(kind locale.Section, tag string, groups []Group) {
	d.Sections = append(d.Sections, Section{
		Kind:   kind,
		Title:  locale.SectionTitle(kind, tag),
		Groups: groups,
	})
}

func buildHeader(record *cv.CVRecord, tag string) Header {
	info := record.PersonalInfo
	h := Header{
		Name:  record.FullName(),
		Photo: strings.TrimSpace(info.Photo),
	}

	addContact := func(kind ContactKind, value string) {
		if value = strings.TrimSpace(value); value != "" {
			h.Contacts = append(h.Contacts, ContactLine{Kind: kind, Value: value})
		}
	}

	addContact(ContactEmail, info.Email)
	addContact(ContactPhone, info.Phone)
	addContact(ContactAddress, joinParts(", ",
		info.Address.Street, info.Address.City, info.Address.PostalCode, info.Address.Country))
	addContact(ContactWebsite, info.Website)
	addContact(ContactLinkedIn, info.LinkedIn)
	addContact(ContactGitHub, info.GitHub)

	addDetail := func(labelKey, value string) {
		if value = strings.TrimSpace(value); value != "" {
			h.Details = append(h.Details, DetailLine{
				Label: locale.ExtraLabel(labelKey, tag),
				Value: value,
			})
		}
	}

	addDetail("dateOfBirth", locale.FormatDate(info.DateOfBirth, tag))
	addDetail("nationality", info.Nationality)
	addDetail("maritalStatus", info.MaritalStatus)
	addDetail("drivingLicense", strings.Join(nonEmpty(info.DrivingLicense), ", "))
	return h
}

func experienceEntries(items []cv.WorkExperience, tag string) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, exp := range items {
		entry := Entry{
			Title:    strings.TrimSpace(exp.Position),
			Subtitle: strings.TrimSpace(exp.Company),
			Meta: joinParts(" • ",
				locale.FormatDateRange(exp.StartDate, exp.EndDate, exp.Current, tag),
				strings.TrimSpace(exp.Location)),
			Bullets: nonEmpty(exp.Achievements),
		}
		if desc := strings.TrimSpace(exp.Description); desc != "" {
			entry.Lines = append(entry.Lines, desc)
		}
		entries = append(entries, entry)
	}
	return entries
}

func educationEntries(items []cv.Education, tag string) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, edu := range items {
		entry := Entry{
			Title:    strings.TrimSpace(edu.Degree),
			Subtitle: strings.TrimSpace(edu.Institution),
			Meta: joinParts(" • ",
				locale.FormatDateRange(edu.StartDate, edu.EndDate, edu.Current, tag),
				strings.TrimSpace(edu.Location)),
		}
		if gpa := strings.TrimSpace(edu.GPA); gpa != "" {
			entry.Lines = append(entry.Lines, fmt.Sprintf("%s: %s", locale.ExtraLabel("gpa", tag), gpa))
		}
		if thesis := strings.TrimSpace(edu.Thesis); thesis != "" {
			entry.Lines = append(entry.Lines, fmt.Sprintf("%s: %s", locale.ExtraLabel("thesis", tag), thesis))
		}
		if desc := strings.TrimSpace(edu.Description); desc != "" {
			entry.Lines = append(entry.Lines, desc)
		}
		entries = append(entries, entry)
	}
	return entries
}

func languageRows(items []cv.LanguageSkill, tag string) []LanguageRow {
	rows := make([]LanguageRow, 0, len(items))
	for _, lang := range items {
		name := strings.TrimSpace(lang.Language)
		if name == "" {
			continue
		}
		rows = append(rows, LanguageRow{
			Name:           locale.LanguageLabel(name, tag),
			Level:          locale.ProficiencyLabel(lang.Proficiency, tag),
			Certifications: nonEmpty(lang.Certifications),
		})
	}
	return rows
}

// itSkillGroups clusters by the literal category string; groups appear in
// first-seen order and so do items within a group. Proficiency and years of
// experience annotate the item label.
func itSkillGroups(items []cv.ITSkill, tag string) []Group {
	var groups []Group
	index := map[string]int{}
	for _, skill := range items {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			continue
		}
		var notes []string
		if p := strings.TrimSpace(skill.Proficiency); p != "" {
			notes = append(notes, p)
		}
		if skill.YearsOfExperience > 0 {
			notes = append(notes, fmt.Sprintf("%d %s", skill.YearsOfExperience, locale.ExtraLabel("years", tag)))
		}
		label := name
		if len(notes) > 0 {
			label = fmt.Sprintf("%s (%s)", name, strings.Join(notes, ", "))
		}
		appendToGroup(&groups, index, strings.TrimSpace(skill.Category), label)
	}
	return groups
}

func skillGroups(items []cv.Skill) []Group {
	var groups []Group
	index := map[string]int{}
	for _, skill := range items {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			continue
		}
		appendToGroup(&groups, index, strings.TrimSpace(skill.Category), name)
	}
	return groups
}

func appendToGroup(groups *[]Group, index map[string]int, category, item string) {
	if i, ok := index[category]; ok {
		(*groups)[i].Items = append((*groups)[i].Items, item)
		return
	}
	index[category] = len(*groups)
	*groups = append(*groups, Group{Category: category, Items: []string{item}})
}

func referenceEntries(items []cv.Reference) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, ref := range items {
		entry := Entry{
			Title:    strings.TrimSpace(ref.Name),
			Subtitle: joinParts(" • ", strings.TrimSpace(ref.Position), strings.TrimSpace(ref.Company)),
		}
		if email := strings.TrimSpace(ref.Email); email != "" {
			entry.Lines = append(entry.Lines, email)
		}
		if phone := strings.TrimSpace(ref.Phone); phone != "" {
			entry.Lines = append(entry.Lines, phone)
		}
		if rel := strings.TrimSpace(ref.Relationship); rel != "" {
			entry.Lines = append(entry.Lines, rel)
		}
		entries = append(entries, entry)
	}
	return entries
}

func nonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func joinParts(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
