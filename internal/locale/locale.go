package locale

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Supported UI/content locales. Persisted records reference these tags, so
// the set may grow but existing tags must never be renamed.
const (
	Latvian = "lv"
	Russian = "ru"
	English = "en"
)

// Default is used whenever a record carries an unknown locale tag.
const Default = English

// Supported reports whether the tag belongs to the fixed locale set.
func Supported(tag string) bool {
	switch tag {
	case Latvian, Russian, English:
		return true
	}
	return false
}

// SupportedTags lists every locale tag, for callers that fan out work
// per locale.
func SupportedTags() []string {
	return []string{Latvian, Russian, English}
}

// Normalize maps unknown tags to the default locale.
func Normalize(tag string) string {
	if Supported(tag) {
		return tag
	}
	return Default
}

var monthNames = map[string][12]string{
	Latvian: {"janvāris", "februāris", "marts", "aprīlis", "maijs", "jūnijs", "jūlijs", "augusts", "septembris", "oktobris", "novembris", "decembris"},
	Russian: {"январь", "февраль", "март", "апрель", "май", "июнь", "июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь"},
	English: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
}

// dateLayouts accepted for stored dates. Forms emit full ISO dates; month
// pickers may persist just year-month.
var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339}

// FormatDate renders an ISO date string as "Month Year" using the locale's
// month names. Empty input yields an empty string; unparseable input is
// returned verbatim so a bad record never breaks a render.
func FormatDate(date, tag string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}

	var parsed time.Time
	var err error
	for _, layout := range dateLayouts {
		if parsed, err = time.Parse(layout, date); err == nil {
			break
		}
	}
	if err != nil {
		return date
	}

	months := monthNames[Normalize(tag)]
	return fmt.Sprintf("%s %d", months[parsed.Month()-1], parsed.Year())
}

var presentLabels = map[string]string{
	Latvian: "šobrīd",
	Russian: "по настоящее время",
	English: "Present",
}

// PresentLabel returns the localized marker for an ongoing position.
func PresentLabel(tag string) string {
	return presentLabels[Normalize(tag)]
}

// FormatDateRange renders "start – end" for an entry. A current entry ends
// at the present marker regardless of any stray end date; an entry without
// an end date degrades to the start date alone.
func FormatDateRange(start, end string, current bool, tag string) string {
	from := FormatDate(start, tag)
	switch {
	case current:
		return joinRange(from, PresentLabel(tag))
	case strings.TrimSpace(end) != "":
		return joinRange(from, FormatDate(end, tag))
	default:
		return from
	}
}

func joinRange(from, to string) string {
	if from == "" {
		return to
	}
	return from + " – " + to
}

var languageLabels = map[string]map[string]string{
	Latvian: {
		"lv": "Latviešu", "ru": "Krievu", "en": "Angļu", "de": "Vācu",
		"fr": "Franču", "es": "Spāņu", "it": "Itāļu",
	},
	Russian: {
		"lv": "Латышский", "ru": "Русский", "en": "Английский", "de": "Немецкий",
		"fr": "Французский", "es": "Испанский", "it": "Итальянский",
	},
	English: {
		"lv": "Latvian", "ru": "Russian", "en": "English", "de": "German",
		"fr": "French", "es": "Spanish", "it": "Italian",
	},
}

// LanguageLabel translates a language code into its display label for the
// given UI locale. Unknown codes come back unchanged, never empty.
func LanguageLabel(code, tag string) string {
	if label, ok := languageLabels[Normalize(tag)][code]; ok {
		return label
	}
	return code
}

var proficiencyLabels = map[string]map[string]string{
	Latvian: {
		"A1": "A1 - Sākuma līmenis", "A2": "A2 - Pamata līmenis",
		"B1": "B1 - Vidējs līmenis", "B2": "B2 - Augstāks vidējais līmenis",
		"C1": "C1 - Augsts līmenis", "C2": "C2 - Mātes valodas līmenis",
		"Native": "Dzimtā valoda",
	},
	Russian: {
		"A1": "A1 - Начальный уровень", "A2": "A2 - Базовый уровень",
		"B1": "B1 - Средний уровень", "B2": "B2 - Выше среднего",
		"C1": "C1 - Высокий уровень", "C2": "C2 - Уровень носителя",
		"Native": "Родной язык",
	},
	English: {
		"A1": "A1 - Beginner", "A2": "A2 - Elementary",
		"B1": "B1 - Intermediate", "B2": "B2 - Upper Intermediate",
		"C1": "C1 - Advanced", "C2": "C2 - Proficient",
		"Native": "Native",
	},
}

// ProficiencyLabel maps a CEFR level (or "Native") to its localized
// description, falling back to the raw level string.
func ProficiencyLabel(level, tag string) string {
	if label, ok := proficiencyLabels[Normalize(tag)][level]; ok {
		return label
	}
	return level
}

// Section identifies one independently omittable block of CV content.
type Section string

const (
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionLanguages  Section = "languages"
	SectionITSkills   Section = "it_skills"
	SectionSkills     Section = "skills"
	SectionReferences Section = "references"
	SectionHobbies    Section = "hobbies"
	SectionAdditional Section = "additional"
)

var sectionTitles = map[string]map[Section]string{
	Latvian: {
		SectionSummary:    "Profesionālais kopsavilkums",
		SectionExperience: "Darba pieredze",
		SectionEducation:  "Izglītība",
		SectionLanguages:  "Valodu prasmes",
		SectionITSkills:   "IT prasmes",
		SectionSkills:     "Citas prasmes",
		SectionReferences: "Atsauksmes",
		SectionHobbies:    "Intereses",
		SectionAdditional: "Papildu informācija",
	},
	Russian: {
		SectionSummary:    "Профессиональное резюме",
		SectionExperience: "Опыт работы",
		SectionEducation:  "Образование",
		SectionLanguages:  "Знание языков",
		SectionITSkills:   "IT навыки",
		SectionSkills:     "Прочие навыки",
		SectionReferences: "Рекомендации",
		SectionHobbies:    "Интересы",
		SectionAdditional: "Дополнительная информация",
	},
	English: {
		SectionSummary:    "Professional Summary",
		SectionExperience: "Work Experience",
		SectionEducation:  "Education",
		SectionLanguages:  "Language Skills",
		SectionITSkills:   "IT Skills",
		SectionSkills:     "Other Skills",
		SectionReferences: "References",
		SectionHobbies:    "Hobbies",
		SectionAdditional: "Additional Information",
	},
}

// SectionTitle returns the localized heading for a section.
func SectionTitle(section Section, tag string) string {
	return sectionTitles[Normalize(tag)][section]
}

var extraLabels = map[string]map[string]string{
	Latvian: {
		"gpa":            "Vidējā atzīme",
		"thesis":         "Diplomdarbs",
		"dateOfBirth":    "Dzimšanas datums",
		"nationality":    "Pilsonība",
		"maritalStatus":  "Ģimenes stāvoklis",
		"drivingLicense": "Autovadītāja apliecība",
		"years":          "gadi",
	},
	Russian: {
		"gpa":            "Средний балл",
		"thesis":         "Дипломная работа",
		"dateOfBirth":    "Дата рождения",
		"nationality":    "Гражданство",
		"maritalStatus":  "Семейное положение",
		"drivingLicense": "Водительские права",
		"years":          "лет",
	},
	English: {
		"gpa":            "GPA",
		"thesis":         "Thesis",
		"dateOfBirth":    "Date of Birth",
		"nationality":    "Nationality",
		"maritalStatus":  "Marital Status",
		"drivingLicense": "Driving License",
		"years":          "years",
	},
}

// ExtraLabel returns small inline labels used inside entries and the header
// details block (GPA, thesis, date of birth, driving license).
func ExtraLabel(key, tag string) string {
	if label, ok := extraLabels[Normalize(tag)][key]; ok {
		return label
	}
	return key
}

var (
	unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	repeatedScores  = regexp.MustCompile(`_{2,}`)
)

// SanitizeFileName builds a download-safe file name: characters outside
// [a-zA-Z0-9._-] become underscores, runs of underscores collapse, the
// result is lowercased. It never returns an empty string and can never
// contain a path separator.
func SanitizeFileName(name string) string {
	name = unsafeFileChars.ReplaceAllString(name, "_")
	name = repeatedScores.ReplaceAllString(name, "_")
	name = strings.ToLower(name)
	if strings.Trim(name, "._-") == "" {
		return "cv"
	}
	return name
}
