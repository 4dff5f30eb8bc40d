package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/mahmoudabadi/portfolio/internal/icon"
	"github.com/mahmoudabadi/portfolio/internal/locale"
	"github.com/mahmoudabadi/portfolio/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// ErrUnknownFragment is returned by Fragment for names outside Fragments().
var ErrUnknownFragment = errors.New("unknown fragment")

// Fragment names. Each is also the DOM id of the element it replaces.
const (
	FragmentApp    = "app"
	FragmentHeader = "header"
	FragmentMenu   = "mobile-menu"
	FragmentModal  = "skill-modal"
)

// Fragments lists the names accepted by Renderer.Fragment.
func Fragments() []string {
	return []string{FragmentApp, FragmentHeader, FragmentMenu, FragmentModal}
}

// Profile is the site owner's identity shown in the footer and contact links.
type Profile struct {
	Name     string
	Email    string
	Telegram string
}

// TelegramURL links to the Telegram handle, with or without a leading "@".
func (p Profile) TelegramURL() string {
	return "https://t.me/" + strings.TrimPrefix(p.Telegram, "@")
}

// Renderer turns a controller's state into HTML. It holds no per-view state
// and is safe for concurrent use.
type Renderer struct {
	tmpl    *template.Template
	md      goldmark.Markdown
	profile Profile
	now     func() time.Time
}

// New parses the embedded templates.
func New(profile Profile) (*Renderer, error) {
	r := &Renderer{
		md:      newMarkdown(),
		profile: profile,
		now:     time.Now,
	}
	tmpl, err := template.New("render").Funcs(template.FuncMap{
		"ui":       uiGlyph,
		"markdown": r.markdown,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// Page writes the full document for ctrl, wired to the live session id.
func (r *Renderer) Page(w io.Writer, ctrl *view.Controller, sessionID string) error {
	data := r.build(ctrl)
	data.SessionID = sessionID
	if err := r.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// Fragment renders one named region of the page.
func (r *Renderer) Fragment(name string, ctrl *view.Controller) (string, error) {
	switch name {
	case FragmentApp, FragmentHeader, FragmentMenu, FragmentModal:
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnknownFragment)
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, r.build(ctrl)); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}

func uiGlyph(name string) template.HTML {
	return icon.UI(name).Glyph()
}

type pageData struct {
	SessionID string
	Attrs     view.Attributes
	L         locale.Locale
	MenuOpen  bool
	Languages []language
	Nav       []navItem
	Skills    []skillCard
	Projects  []projectCard
	Modal     *modalView
	Profile   Profile
	Year      int
}

type language struct {
	Code   locale.Code
	Name   string
	Active bool
}

type navItem struct {
	ID    view.Section
	Label string
}

type skillCard struct {
	Index   int
	Title   string
	Color   string
	Icon    template.HTML
	DelayMS int64
}

type projectCard struct {
	Index   int
	Title   string
	Desc    string
	Tags    []string
	Icon    template.HTML
	DelayMS int64
}

type modalView struct {
	Title    string
	Color    string
	Icon     template.HTML
	Heading  string
	Projects []locale.SkillProject
	Empty    string
}

func (r *Renderer) build(ctrl *view.Controller) pageData {
	l := ctrl.Locale()
	data := pageData{
		Attrs:    ctrl.Attributes(),
		L:        l,
		MenuOpen: ctrl.MenuOpen(),
		Profile:  r.profile,
		Year:     r.now().Year(),
	}

	for _, c := range locale.Codes() {
		data.Languages = append(data.Languages, language{Code: c, Name: c.NativeName(), Active: c == ctrl.Language()})
	}
	for _, s := range view.Sections() {
		data.Nav = append(data.Nav, navItem{ID: s, Label: l.Nav.Label(string(s))})
	}
	for i, s := range l.Skills.List {
		data.Skills = append(data.Skills, skillCard{
			Index:   i,
			Title:   s.Title,
			Color:   s.Color,
			Icon:    s.Icon.Glyph(),
			DelayMS: view.SkillCardEntrance(i).Delay.Milliseconds(),
		})
	}
	for i, p := range l.Projects.List {
		data.Projects = append(data.Projects, projectCard{
			Index:   i,
			Title:   p.Title,
			Desc:    p.Desc,
			Tags:    p.Tags(),
			Icon:    p.Icon.Glyph(),
			DelayMS: view.ProjectCardEntrance(i).Delay.Milliseconds(),
		})
	}

	if s, ok := ctrl.SelectedSkill(); ok {
		data.Modal = &modalView{
			Title:    s.Title,
			Color:    s.Color,
			Icon:     s.Icon.Glyph(),
			Heading:  l.Projects.Title,
			Projects: s.Projects,
			Empty:    l.Skills.Empty,
		}
	}
	return data
}
