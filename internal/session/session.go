package session

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mahmoudabadi/portfolio/internal/locale"
	"github.com/mahmoudabadi/portfolio/internal/view"
)

// Fragment ids patched by events.
const (
	fragmentApp    = "app"
	fragmentHeader = "header"
	fragmentModal  = "skill-modal"
)

// Session is the live state of one page load. Events are applied one at a
// time under the session lock.
type Session struct {
	ID string

	mu       sync.Mutex
	ctrl     *view.Controller
	nav      *view.Dispatcher
	scroll   *scrollRecorder
	renderer Renderer
	attrs    *view.Attributes

	lastSeen atomic.Int64
	attached atomic.Int32
}

func newSession(id string, contents view.Contents, renderer Renderer, lang locale.Code, now time.Time) *Session {
	s := &Session{
		ID:       id,
		ctrl:     view.NewController(contents, lang),
		scroll:   &scrollRecorder{},
		renderer: renderer,
	}
	s.nav = view.NewDispatcher(s.ctrl, s.scroll)
	s.ctrl.OnAttributes(func(a view.Attributes) { s.attrs = &a })
	s.lastSeen.Store(now.UnixNano())
	return s
}

// View runs fn with the session's controller under the session lock. fn must
// not retain the controller.
func (s *Session) View(fn func(*view.Controller) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.ctrl)
}

// Snapshot returns the committed state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Attach marks the session as held by a live connection, which exempts it
// from idle eviction. The returned func releases it.
func (s *Session) Attach() (release func()) {
	s.attached.Add(1)
	var once sync.Once
	return func() { once.Do(func() { s.attached.Add(-1) }) }
}

func (s *Session) touch(now time.Time) { s.lastSeen.Store(now.UnixNano()) }

func (s *Session) idleSince() time.Time { return time.Unix(0, s.lastSeen.Load()) }

// Apply commits one event and returns the resulting patch. An event that
// fails validation leaves the state unchanged and returns an error wrapping
// ErrInvalidEvent.
func (s *Session) Apply(ev Event) (Patch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		p   Patch
		err error
	)
	switch ev.Type {
	case EventSetLanguage:
		err = s.setLanguage(ev.Lang, &p)
	case EventToggleMenu:
		s.ctrl.ToggleMenu()
		if s.ctrl.MenuOpen() {
			p.Enter = append(p.Enter, view.MenuExpand())
		} else {
			p.Exit = append(p.Exit, view.MenuCollapse())
		}
		err = s.render(&p, fragmentHeader)
	case EventSelectSkill:
		err = s.selectSkill(ev.Skill, &p)
	case EventClearSkill:
		err = s.closeModal(s.ctrl.ClearSkill, &p)
	case EventBackdropClick:
		err = s.closeModal(s.ctrl.BackdropClick, &p)
	case EventContentClick:
		s.ctrl.ContentClick()
	case EventScrollTo:
		err = s.scrollTo(ev.Section, &p)
	default:
		err = fmt.Errorf("type %q: %w", ev.Type, ErrInvalidEvent)
	}
	if err != nil {
		return Patch{}, err
	}
	p.State = s.snapshot()
	return p, nil
}

func (s *Session) setLanguage(raw string, p *Patch) error {
	code, err := locale.ParseCode(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	if s.ctrl.MenuOpen() {
		p.Exit = append(p.Exit, view.MenuCollapse())
	}

	s.attrs = nil
	s.ctrl.SetLanguage(code)
	p.Attributes = s.attrs

	p.Enter = append(p.Enter, view.HeroEntrance())
	for i := range s.ctrl.Locale().Skills.List {
		p.Enter = append(p.Enter, view.SkillCardEntrance(i))
	}
	for i := range s.ctrl.Locale().Projects.List {
		p.Enter = append(p.Enter, view.ProjectCardEntrance(i))
	}
	return s.render(p, fragmentApp)
}

func (s *Session) selectSkill(idx *int, p *Patch) error {
	if idx == nil {
		return fmt.Errorf("select_skill without skill index: %w", ErrInvalidEvent)
	}
	if err := s.ctrl.SelectSkillAt(*idx); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}
	p.Enter = append(p.Enter, view.ModalEnter()...)
	return s.render(p, fragmentModal)
}

func (s *Session) closeModal(transition func(), p *Patch) error {
	wasOpen := s.ctrl.Modal().State() == view.ModalOpen
	transition()
	if !wasOpen {
		return nil
	}
	p.Exit = append(p.Exit, view.ModalExit()...)
	return s.render(p, fragmentModal)
}

func (s *Session) scrollTo(section string, p *Patch) error {
	wasOpen := s.ctrl.MenuOpen()
	if !s.nav.ScrollToSection(section) {
		return nil
	}
	p.Scroll = s.scroll.take()
	if !wasOpen {
		return nil
	}
	p.Exit = append(p.Exit, view.MenuCollapse())
	return s.render(p, fragmentHeader)
}

func (s *Session) render(p *Patch, names ...string) error {
	if s.renderer == nil {
		return nil
	}
	for _, name := range names {
		html, err := s.renderer.Fragment(name, s.ctrl)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		if p.Fragments == nil {
			p.Fragments = make(map[string]string)
		}
		p.Fragments[name] = html
	}
	return nil
}

func (s *Session) snapshot() Snapshot {
	a := s.ctrl.Attributes()
	snap := Snapshot{
		Lang:     string(a.Lang),
		Dir:      string(a.Dir),
		Font:     a.FontClass,
		MenuOpen: s.ctrl.MenuOpen(),
		Modal:    s.ctrl.Modal().State(),
	}
	if _, idx, ok := s.ctrl.Modal().Skill(); ok {
		snap.Skill = &idx
	}
	return snap
}

// scrollRecorder is the Scroller for a remote client: it holds the last
// request until the patch picks it up.
type scrollRecorder struct {
	pending *ScrollCommand
}

func (r *scrollRecorder) ScrollIntoView(anchor string, behavior view.Behavior) {
	r.pending = &ScrollCommand{Anchor: anchor, Behavior: behavior}
}

func (r *scrollRecorder) take() *ScrollCommand {
	cmd := r.pending
	r.pending = nil
	return cmd
}
