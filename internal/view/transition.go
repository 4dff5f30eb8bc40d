package view

import (
	"encoding/json"
	"fmt"
	"time"
)

// Props maps CSS properties to values, e.g. "opacity": "0".
type Props map[string]string

// Transition describes a visual transition to play on the client. It is
// emitted after the state it illustrates has been committed and carries no
// state of its own.
type Transition struct {
	Target   string
	From     Props
	To       Props
	Duration time.Duration
	Delay    time.Duration
	Easing   string
}

func (t Transition) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Target     string `json:"target"`
		From       Props  `json:"from,omitempty"`
		To         Props  `json:"to"`
		DurationMS int64  `json:"duration_ms"`
		DelayMS    int64  `json:"delay_ms,omitempty"`
		Easing     string `json:"easing,omitempty"`
	}{t.Target, t.From, t.To, t.Duration.Milliseconds(), t.Delay.Milliseconds(), t.Easing})
}

const (
	menuDuration  = 250 * time.Millisecond
	modalDuration = 200 * time.Millisecond
	cardDuration  = 500 * time.Millisecond
	heroDuration  = 800 * time.Millisecond
	cardStagger   = 100 * time.Millisecond

	springEasing = "cubic-bezier(0.34, 1.56, 0.64, 1)"
	easeOut      = "ease-out"
)

// MenuExpand opens the mobile menu from zero height.
func MenuExpand() Transition {
	return Transition{
		Target:   "#mobile-menu",
		From:     Props{"height": "0", "opacity": "0"},
		To:       Props{"height": "auto", "opacity": "1"},
		Duration: menuDuration,
		Easing:   easeOut,
	}
}

// MenuCollapse is the reverse of MenuExpand.
func MenuCollapse() Transition {
	return Transition{
		Target:   "#mobile-menu",
		From:     Props{"height": "auto", "opacity": "1"},
		To:       Props{"height": "0", "opacity": "0"},
		Duration: menuDuration,
		Easing:   easeOut,
	}
}

// ModalEnter fades the backdrop in and scales the content panel up.
func ModalEnter() []Transition {
	return []Transition{
		{
			Target:   "#skill-modal .modal-backdrop",
			From:     Props{"opacity": "0"},
			To:       Props{"opacity": "1"},
			Duration: modalDuration,
		},
		{
			Target:   "#skill-modal .modal-content",
			From:     Props{"transform": "translateY(20px) scale(0.9)"},
			To:       Props{"transform": "translateY(0) scale(1)"},
			Duration: modalDuration,
			Easing:   easeOut,
		},
	}
}

// ModalExit is the reverse of ModalEnter.
func ModalExit() []Transition {
	return []Transition{
		{
			Target:   "#skill-modal .modal-backdrop",
			From:     Props{"opacity": "1"},
			To:       Props{"opacity": "0"},
			Duration: modalDuration,
		},
		{
			Target:   "#skill-modal .modal-content",
			From:     Props{"transform": "translateY(0) scale(1)"},
			To:       Props{"transform": "translateY(20px) scale(0.9)"},
			Duration: modalDuration,
			Easing:   easeOut,
		},
	}
}

// SkillCardEntrance is the staggered entrance of the i-th skill card.
func SkillCardEntrance(i int) Transition {
	return Transition{
		Target:   fmt.Sprintf("#skill-%d", i),
		From:     Props{"opacity": "0", "transform": "translateY(30px) scale(0.9)"},
		To:       Props{"opacity": "1", "transform": "translateY(0) scale(1)"},
		Duration: cardDuration,
		Delay:    time.Duration(i) * cardStagger,
		Easing:   springEasing,
	}
}

// ProjectCardEntrance is the staggered entrance of the i-th project card.
func ProjectCardEntrance(i int) Transition {
	return Transition{
		Target:   fmt.Sprintf("#project-%d", i),
		From:     Props{"opacity": "0", "transform": "scale(0.95)"},
		To:       Props{"opacity": "1", "transform": "scale(1)"},
		Duration: cardDuration,
		Delay:    time.Duration(i) * cardStagger,
		Easing:   easeOut,
	}
}

// HeroEntrance slides the hero block up on first paint.
func HeroEntrance() Transition {
	return Transition{
		Target:   "#home .hero",
		From:     Props{"opacity": "0", "transform": "translateY(20px)"},
		To:       Props{"opacity": "1", "transform": "translateY(0)"},
		Duration: heroDuration,
		Easing:   easeOut,
	}
}
