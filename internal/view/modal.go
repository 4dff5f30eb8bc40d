package view

import "github.com/mahmoudabadi/portfolio/internal/locale"

// ModalState is the state of the skill-detail overlay.
type ModalState string

const (
	ModalClosed ModalState = "closed"
	ModalOpen   ModalState = "open"
)

// Modal is the skill-detail overlay state machine:
//
//	Closed --Select(s)--> Open(s)
//	Open(s) --Clear()--> Closed
//	Open(s) --Backdrop()--> Closed
//	Open(s) --Content()--> Open(s)
//
// The zero value is Closed. Transitions return a new value.
type Modal struct {
	open  bool
	skill locale.Skill
	index int
}

// State reports Closed or Open.
func (m Modal) State() ModalState {
	if m.open {
		return ModalOpen
	}
	return ModalClosed
}

// Skill returns the inspected skill and its index in the skill list.
func (m Modal) Skill() (locale.Skill, int, bool) {
	if !m.open {
		return locale.Skill{}, -1, false
	}
	return m.skill, m.index, true
}

// Select opens the overlay on s. Selecting while open replaces the skill.
func (m Modal) Select(s locale.Skill, index int) Modal {
	return Modal{open: true, skill: s, index: index}
}

// Clear closes the overlay (explicit close button).
func (m Modal) Clear() Modal { return Modal{} }

// Backdrop handles a click on the dimmed area around the content.
func (m Modal) Backdrop() Modal { return Modal{} }

// Content handles a click inside the content panel. It never dismisses.
func (m Modal) Content() Modal { return m }
