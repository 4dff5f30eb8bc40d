package view

import (
	"errors"
	"fmt"

	"github.com/mahmoudabadi/portfolio/internal/locale"
)

// ErrSkillOutOfRange is returned by SelectSkillAt for an index outside the
// active locale's skill list.
var ErrSkillOutOfRange = errors.New("skill index out of range")

// Contents is the read side of the locale store.
type Contents interface {
	Get(code locale.Code) locale.Locale
}

// Controller owns the interactive state of one page view: the active
// language, whether the mobile menu is open and which skill is inspected.
// State is only changed through its methods.
//
// A Controller is not safe for concurrent use; callers apply one event at a
// time.
type Controller struct {
	contents Contents
	lang     locale.Code
	loc      locale.Locale
	attrs    Attributes
	menuOpen bool
	modal    Modal

	observers []func(Attributes)
}

// NewController creates a controller in its initial state: the given language
// (locale.Default when empty), menu closed, no skill selected.
func NewController(contents Contents, lang locale.Code) *Controller {
	if lang == "" {
		lang = locale.Default
	}
	c := &Controller{contents: contents}
	c.load(lang)
	return c
}

func (c *Controller) load(lang locale.Code) {
	c.lang = lang
	c.loc = c.contents.Get(lang)
	c.attrs = deriveAttributes(c.loc)
}

// OnAttributes registers fn to be called with the root attributes after every
// SetLanguage, before SetLanguage returns.
func (c *Controller) OnAttributes(fn func(Attributes)) {
	c.observers = append(c.observers, fn)
}

// Language returns the active language code.
func (c *Controller) Language() locale.Code { return c.lang }

// Locale returns the bundle of the active language.
func (c *Controller) Locale() locale.Locale { return c.loc }

// MenuOpen reports whether the mobile menu is expanded.
func (c *Controller) MenuOpen() bool { return c.menuOpen }

// Modal returns the skill-detail overlay state.
func (c *Controller) Modal() Modal { return c.modal }

// Attributes returns the root attributes derived from the active language.
func (c *Controller) Attributes() Attributes { return c.attrs }

// Direction returns the text direction of the active language.
func (c *Controller) Direction() locale.Direction { return c.attrs.Dir }

// FontClass returns the font class of the active language.
func (c *Controller) FontClass() string { return c.attrs.FontClass }

// SelectedSkill returns the inspected skill, if any.
func (c *Controller) SelectedSkill() (locale.Skill, bool) {
	s, _, ok := c.modal.Skill()
	return s, ok
}

// SetLanguage switches the active language and closes the menu. An open
// overlay stays on the same skill index, now taken from the new locale.
// Derived attributes are recomputed and published to observers before it
// returns. Calling it with the current language leaves the language unchanged.
func (c *Controller) SetLanguage(code locale.Code) {
	c.load(code)
	c.menuOpen = false
	if _, i, ok := c.modal.Skill(); ok {
		if i >= 0 && i < len(c.loc.Skills.List) {
			c.modal = c.modal.Select(c.loc.Skills.List[i], i)
		} else {
			c.modal = c.modal.Clear()
		}
	}
	for _, fn := range c.observers {
		fn(c.attrs)
	}
}

// ToggleMenu flips the mobile menu.
func (c *Controller) ToggleMenu() {
	c.menuOpen = !c.menuOpen
}

// CloseMenu collapses the mobile menu.
func (c *Controller) CloseMenu() {
	c.menuOpen = false
}

// SelectSkill opens the overlay on s, which must be a skill of the active
// locale. Any other skill leaves the overlay unchanged. The menu is left as
// it is.
func (c *Controller) SelectSkill(s locale.Skill) {
	i := c.indexOf(s)
	if i < 0 {
		return
	}
	c.modal = c.modal.Select(s, i)
}

// SelectSkillAt opens the overlay on the i-th skill of the active locale.
func (c *Controller) SelectSkillAt(i int) error {
	list := c.loc.Skills.List
	if i < 0 || i >= len(list) {
		return fmt.Errorf("skill %d of %d: %w", i, len(list), ErrSkillOutOfRange)
	}
	c.modal = c.modal.Select(list[i], i)
	return nil
}

// ClearSkill closes the overlay.
func (c *Controller) ClearSkill() {
	c.modal = c.modal.Clear()
}

// BackdropClick dismisses the overlay from its backdrop.
func (c *Controller) BackdropClick() {
	c.modal = c.modal.Backdrop()
}

// ContentClick is a click inside the overlay content; it does not dismiss.
func (c *Controller) ContentClick() {
	c.modal = c.modal.Content()
}

func (c *Controller) indexOf(s locale.Skill) int {
	for i, cand := range c.loc.Skills.List {
		if cand.Title == s.Title && cand.Icon == s.Icon {
			return i
		}
	}
	return -1
}
