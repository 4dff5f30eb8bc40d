package session

import (
	"errors"

	"github.com/mahmoudabadi/portfolio/internal/view"
)

var (
	// ErrNotFound is returned for an unknown or evicted session id.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidEvent is returned for events that cannot be applied.
	ErrInvalidEvent = errors.New("invalid event")
)

// EventType names a user interaction.
type EventType string

const (
	EventSetLanguage   EventType = "set_language"
	EventToggleMenu    EventType = "toggle_menu"
	EventSelectSkill   EventType = "select_skill"
	EventClearSkill    EventType = "clear_skill"
	EventBackdropClick EventType = "backdrop_click"
	EventContentClick  EventType = "content_click"
	EventScrollTo      EventType = "scroll_to"
)

// Event is one interaction sent by the client.
type Event struct {
	Type    EventType `json:"type"`
	Lang    string    `json:"lang,omitempty"`
	Section string    `json:"section,omitempty"`
	Skill   *int      `json:"skill,omitempty"`
}

// ScrollCommand asks the client to bring an anchor into view.
type ScrollCommand struct {
	Anchor   string        `json:"anchor"`
	Behavior view.Behavior `json:"behavior"`
}

// Snapshot is the committed state after an event.
type Snapshot struct {
	Lang     string          `json:"lang"`
	Dir      string          `json:"dir"`
	Font     string          `json:"font_class"`
	MenuOpen bool            `json:"menu_open"`
	Modal    view.ModalState `json:"modal"`
	Skill    *int            `json:"skill,omitempty"`
}

// Patch is the response to one event. Fragments are keyed by DOM id and
// replace the element with that id. Exit transitions play before the
// fragments are swapped in, Enter transitions after.
type Patch struct {
	Attributes *view.Attributes  `json:"attributes,omitempty"`
	Fragments  map[string]string `json:"fragments,omitempty"`
	Scroll     *ScrollCommand    `json:"scroll,omitempty"`
	Exit       []view.Transition `json:"exit,omitempty"`
	Enter      []view.Transition `json:"enter,omitempty"`
	State      Snapshot          `json:"state"`
}

// Renderer renders named page fragments for a controller.
type Renderer interface {
	Fragment(name string, ctrl *view.Controller) (string, error)
}
