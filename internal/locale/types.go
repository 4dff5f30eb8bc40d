package locale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mahmoudabadi/portfolio/internal/icon"
)

// ErrUnsupportedLanguage is returned by ParseCode for codes outside the
// supported set.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Code identifies a supported language.
type Code string

const (
	Persian Code = "fa"
	Arabic  Code = "ar"
	English Code = "en"
)

// Default is the language every new session starts in.
const Default = Persian

// Codes returns the supported language codes in canonical order.
func Codes() []Code {
	return []Code{Persian, Arabic, English}
}

// nativeNames are shown in the language switcher.
var nativeNames = map[Code]string{
	Persian: "فارسی",
	Arabic:  "العربية",
	English: "English",
}

// ParseCode converts untrusted input into a Code.
func ParseCode(s string) (Code, error) {
	c := Code(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := nativeNames[c]; !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnsupportedLanguage)
	}
	return c, nil
}

// NativeName returns the language's name written in that language.
func (c Code) NativeName() string { return nativeNames[c] }

// Direction is the text direction of a locale.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Valid reports whether d is ltr or rtl.
func (d Direction) Valid() bool { return d == LTR || d == RTL }

// Locale is the complete content bundle for one language.
type Locale struct {
	Code         Code      `yaml:"-" json:"code"`
	Direction    Direction `yaml:"direction" json:"direction"`
	Font         string    `yaml:"font" json:"font"`
	Bismillah    string    `yaml:"bismillah" json:"bismillah"`
	HadithHeader string    `yaml:"hadith_header" json:"hadith_header"`
	Nav          Nav       `yaml:"nav" json:"nav"`
	Hero         Hero      `yaml:"hero" json:"hero"`
	About        About     `yaml:"about" json:"about"`
	Skills       Skills    `yaml:"skills" json:"skills"`
	Projects     Projects  `yaml:"projects" json:"projects"`
	Contact      Contact   `yaml:"contact" json:"contact"`
}

// Nav holds the navigation labels, one per page section.
type Nav struct {
	Home     string `yaml:"home" json:"home"`
	About    string `yaml:"about" json:"about"`
	Skills   string `yaml:"skills" json:"skills"`
	Projects string `yaml:"projects" json:"projects"`
	Contact  string `yaml:"contact" json:"contact"`
}

// Label returns the label for a section id, or "" for unknown ids.
func (n Nav) Label(section string) string {
	switch section {
	case "home":
		return n.Home
	case "about":
		return n.About
	case "skills":
		return n.Skills
	case "projects":
		return n.Projects
	case "contact":
		return n.Contact
	}
	return ""
}

type Hero struct {
	Name    string `yaml:"name" json:"name"`
	Tagline string `yaml:"tagline" json:"tagline"`
	CTA     string `yaml:"cta" json:"cta"`
	Hadith  string `yaml:"hadith" json:"hadith"`
}

type About struct {
	Title       string `yaml:"title" json:"title"`
	Age         string `yaml:"age" json:"age"`
	Field       string `yaml:"field" json:"field"`
	Description string `yaml:"description" json:"description"`
	Languages   string `yaml:"languages" json:"languages"`
}

type Skills struct {
	Title string `yaml:"title" json:"title"`
	// Empty is shown in the skill overlay when a skill has no sub-projects.
	Empty string  `yaml:"empty" json:"empty"`
	List  []Skill `yaml:"list" json:"list"`
}

// Skill is a competency with an expandable list of illustrative sub-projects.
type Skill struct {
	Title    string         `yaml:"title" json:"title"`
	Icon     icon.Skill     `yaml:"icon" json:"icon"`
	Color    string         `yaml:"color" json:"color"`
	Projects []SkillProject `yaml:"projects" json:"projects"`
}

type SkillProject struct {
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

type Projects struct {
	Title string    `yaml:"title" json:"title"`
	List  []Project `yaml:"list" json:"list"`
}

type Project struct {
	Title string       `yaml:"title" json:"title"`
	Desc  string       `yaml:"desc" json:"desc"`
	Tech  string       `yaml:"tech" json:"tech"`
	Icon  icon.Project `yaml:"icon" json:"icon"`
}

// Tags splits the comma-delimited technology string into trimmed, non-empty
// tags.
func (p Project) Tags() []string {
	var tags []string
	for _, part := range strings.Split(p.Tech, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

type Contact struct {
	Title       string `yaml:"title" json:"title"`
	Email       string `yaml:"email" json:"email"`
	Telegram    string `yaml:"telegram" json:"telegram"`
	FormName    string `yaml:"form_name" json:"form_name"`
	FormEmail   string `yaml:"form_email" json:"form_email"`
	FormMessage string `yaml:"form_message" json:"form_message"`
	Send        string `yaml:"send" json:"send"`
}

// SectionKeys returns the keys of the populated top-level sections, in page
// order.
func (l Locale) SectionKeys() []string {
	var keys []string
	if l.Nav != (Nav{}) {
		keys = append(keys, "nav")
	}
	if l.Hero != (Hero{}) {
		keys = append(keys, "hero")
	}
	if l.About != (About{}) {
		keys = append(keys, "about")
	}
	if l.Skills.Title != "" || len(l.Skills.List) > 0 {
		keys = append(keys, "skills")
	}
	if l.Projects.Title != "" || len(l.Projects.List) > 0 {
		keys = append(keys, "projects")
	}
	if l.Contact != (Contact{}) {
		keys = append(keys, "contact")
	}
	return keys
}

// clone returns a deep copy so callers cannot mutate the store's bundles.
func (l Locale) clone() Locale {
	out := l
	out.Skills.List = make([]Skill, len(l.Skills.List))
	for i, s := range l.Skills.List {
		s.Projects = append([]SkillProject(nil), s.Projects...)
		out.Skills.List[i] = s
	}
	out.Projects.List = append([]Project(nil), l.Projects.List...)
	return out
}
