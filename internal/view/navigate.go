package view

// Section is a logical scroll destination on the page.
type Section string

const (
	SectionHome     Section = "home"
	SectionAbout    Section = "about"
	SectionSkills   Section = "skills"
	SectionProjects Section = "projects"
	SectionContact  Section = "contact"
)

// Sections returns every section in page order.
func Sections() []Section {
	return []Section{SectionHome, SectionAbout, SectionSkills, SectionProjects, SectionContact}
}

// Behavior is the scroll behaviour requested from the render surface.
type Behavior string

const Smooth Behavior = "smooth"

// Scroller brings an anchor into view on the render surface.
type Scroller interface {
	ScrollIntoView(anchor string, behavior Behavior)
}

// Dispatcher resolves section identifiers to anchors and scrolls to them.
type Dispatcher struct {
	ctrl     *Controller
	scroller Scroller
	rendered map[Section]bool
}

// NewDispatcher creates a dispatcher for the given rendered sections. With no
// sections, all of Sections() are assumed rendered.
func NewDispatcher(ctrl *Controller, scroller Scroller, rendered ...Section) *Dispatcher {
	if len(rendered) == 0 {
		rendered = Sections()
	}
	set := make(map[Section]bool, len(rendered))
	for _, s := range rendered {
		set[s] = true
	}
	return &Dispatcher{ctrl: ctrl, scroller: scroller, rendered: set}
}

// ScrollToSection smooth-scrolls to the section and collapses the menu.
// Unknown or unrendered ids are ignored.
func (d *Dispatcher) ScrollToSection(id string) bool {
	sec := Section(id)
	if !d.rendered[sec] {
		return false
	}
	d.scroller.ScrollIntoView(string(sec), Smooth)
	d.ctrl.CloseMenu()
	return true
}
