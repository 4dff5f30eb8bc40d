package icon

import (
	"errors"
	"fmt"
	"html/template"
)

// ErrUnknown is returned when decoding an icon category that is not part of
// its enumeration.
var ErrUnknown = errors.New("unknown icon category")

// Glyph is implemented by every icon category. It produces the inline SVG
// markup for the category.
type Glyph interface {
	Glyph() template.HTML
}

// Skill identifies the artwork used for a skill card.
type Skill string

const (
	SkillQuran       Skill = "quran"
	SkillMech        Skill = "mech"
	SkillEnglish     Skill = "english"
	SkillElectronics Skill = "electronics"
	SkillRobotics    Skill = "robotics"
)

// Skills returns every skill category in declaration order.
func Skills() []Skill {
	return []Skill{SkillQuran, SkillMech, SkillEnglish, SkillElectronics, SkillRobotics}
}

var skillArt = map[Skill]shape{
	SkillQuran:       bookOpen,
	SkillMech:        wrench,
	SkillEnglish:     globe,
	SkillElectronics: cpu,
	SkillRobotics:    bot,
}

// Valid reports whether s belongs to the skill enumeration.
func (s Skill) Valid() bool {
	_, ok := skillArt[s]
	return ok
}

// Glyph returns the SVG for s.
func (s Skill) Glyph() template.HTML {
	return skillArt[s].svg(string(s))
}

func (s Skill) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("skill icon %q: %w", string(s), ErrUnknown)
	}
	return []byte(s), nil
}

func (s *Skill) UnmarshalText(text []byte) error {
	v := Skill(text)
	if !v.Valid() {
		return fmt.Errorf("skill icon %q: %w", string(text), ErrUnknown)
	}
	*s = v
	return nil
}

// Project identifies the artwork used for a project card.
type Project string

const (
	ProjectBot      Project = "bot"
	ProjectHome     Project = "home"
	ProjectDownload Project = "download"
)

// Projects returns every project category in declaration order.
func Projects() []Project {
	return []Project{ProjectBot, ProjectHome, ProjectDownload}
}

var projectArt = map[Project]shape{
	ProjectBot:      bot,
	ProjectHome:     home,
	ProjectDownload: download,
}

// Valid reports whether p belongs to the project enumeration.
func (p Project) Valid() bool {
	_, ok := projectArt[p]
	return ok
}

// Glyph returns the SVG for p.
func (p Project) Glyph() template.HTML {
	return projectArt[p].svg(string(p))
}

func (p Project) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("project icon %q: %w", string(p), ErrUnknown)
	}
	return []byte(p), nil
}

func (p *Project) UnmarshalText(text []byte) error {
	v := Project(text)
	if !v.Valid() {
		return fmt.Errorf("project icon %q: %w", string(text), ErrUnknown)
	}
	*p = v
	return nil
}

// UI names the chrome glyphs used by the page itself (menu button, section
// headings, contact cards).
type UI string

const (
	UIMenu     UI = "menu"
	UIClose    UI = "close"
	UIGlobe    UI = "globe"
	UIMail     UI = "mail"
	UISend     UI = "send"
	UICode     UI = "code"
	UITerminal UI = "terminal"
	UICpu      UI = "cpu"
	UIBook     UI = "book"
)

var uiArt = map[UI]shape{
	UIMenu:     menu,
	UIClose:    closeX,
	UIGlobe:    globe,
	UIMail:     mail,
	UISend:     send,
	UICode:     code,
	UITerminal: terminal,
	UICpu:      cpu,
	UIBook:     bookOpen,
}

// Valid reports whether u is a known chrome glyph.
func (u UI) Valid() bool {
	_, ok := uiArt[u]
	return ok
}

// Glyph returns the SVG for u.
func (u UI) Glyph() template.HTML {
	return uiArt[u].svg(string(u))
}
