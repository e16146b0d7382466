package page

import (
	"time"

	"cinematic-landing/internal/engine2D/scroll"
	"cinematic-landing/internal/utils"
)

// RevealLift is how far below its place a hidden element waits by default,
// in pixels.
const RevealLift = 30

// HiddenOffset is where a hidden element waits before its reveal.
func (e *Element) HiddenOffset() Offset {
	if e.From != nil {
		return *e.From
	}
	return Offset{Y: RevealLift}
}

// State is the presentation state the scroll engine writes to an element.
type State struct {
	Opacity   float64
	Transform scroll.Transform
	Visible   bool
	Vars      map[string]float64
	Mix       scroll.RevealMix
	// Inline is set once the engine has written a transform; it then
	// replaces the element's own transform, rotation variable included.
	Inline bool
	// Hover is the pointer tilt while the pointer is over the element.
	Hover *Tilt
}

func (e *Element) reset() {
	e.State = State{
		Opacity:   1,
		Transform: scroll.Identity(),
		Vars:      map[string]float64{},
	}
	if e.Opacity != nil {
		e.State.Opacity = *e.Opacity
	}
	if e.Initial != nil {
		e.State.Transform = *e.Initial
		if e.State.Transform.Scale == 0 {
			e.State.Transform.Scale = 1
		}
	}
}

func (e *Element) Annotations() scroll.Annotations {
	return scroll.Annotations{
		Delay:    e.Delay.Or(0),
		Rotation: e.Rotation.Or(0),
	}
}

func (e *Element) SetOpacity(v float64)            { e.State.Opacity = v }
func (e *Element) SetTransform(t scroll.Transform) { e.State.Transform, e.State.Inline = t, true }
func (e *Element) MarkVisible()                    { e.State.Visible = true }

func (e *Element) SetVar(name string, v float64) {
	if e.State.Vars == nil {
		e.State.Vars = map[string]float64{}
	}
	e.State.Vars[name] = v
}

// Advance moves the element's reveal transition forward by dt.
func (e *Element) Advance(dt time.Duration) {
	e.State.Mix.Advance(e.State.Visible, dt)
}

// Effective is the opacity and transform to draw with. Opacity is clamped to
// [0,1]; hidden elements are faded and offset until their reveal settles.
// A published rotation variable rotates elements the engine has not
// transformed directly. A hover tilt applies last.
func (e *Element) Effective() (float64, scroll.Transform) {
	opacity := e.State.Opacity
	t := e.State.Transform
	if e.Hidden {
		mix := e.State.Mix.Value()
		from := e.HiddenOffset()
		opacity *= mix
		t.TranslateX += (1 - mix) * from.X
		t.TranslateY += (1 - mix) * from.Y
	}
	if r, ok := e.State.Vars[scroll.RotationVar]; ok && !e.State.Inline {
		t.Rotate += r
	}
	if h := e.State.Hover; h != nil {
		if h.Straighten {
			t.Rotate = 0
		}
		t.Scale *= h.Scale
		t.TranslateY += h.Lift
		t.RotateX += h.RotateX
		t.RotateY += h.RotateY
	}
	return min(max(opacity, 0), 1), t
}

// Document indexes a page for the scroll engine. Section boxes are in
// document coordinates; element boxes are offset by their section.
type Document struct {
	page     *Page
	sections map[string]*Section
	elements map[string]scroll.Rect
}

func NewDocument(p *Page) *Document {
	d := &Document{
		page:     p,
		sections: make(map[string]*Section, len(p.Sections)),
		elements: make(map[string]scroll.Rect),
	}
	for i := range p.Sections {
		s := &p.Sections[i]
		if _, dup := d.sections[s.ID]; dup {
			utils.Warn("Page: duplicate section id %q, keeping the first", s.ID)
			continue
		}
		d.sections[s.ID] = s
		for _, e := range s.Elements {
			e.reset()
			if e.Name != "" {
				d.elements[e.Name] = ElementRect(s, e)
			}
		}
	}
	utils.Debug("Page: indexed %d sections, %d named elements", len(d.sections), len(d.elements))
	return d
}

func (d *Document) Page() *Page { return d.page }

func (d *Document) Section(id string) (*Section, bool) {
	s, ok := d.sections[id]
	return s, ok
}

// BoundingBox resolves a section id, then an element name.
func (d *Document) BoundingBox(id string) (scroll.Rect, bool) {
	if s, ok := d.sections[id]; ok {
		return s.Box, true
	}
	r, ok := d.elements[id]
	return r, ok
}

// Query returns the elements of section matching target by name or class,
// in document order.
func (d *Document) Query(section, target string) []scroll.Node {
	s, ok := d.sections[section]
	if !ok {
		return nil
	}
	var out []scroll.Node
	for _, e := range s.Elements {
		if e.HasClass(target) {
			out = append(out, e)
		}
	}
	return out
}

// Height is the scrollable document height.
func (d *Document) Height() float64 {
	h := d.page.General.Height
	for _, s := range d.page.Sections {
		h = max(h, s.Box.Bottom())
	}
	return h
}

// Advance steps every element's reveal transition.
func (d *Document) Advance(dt time.Duration) {
	for _, s := range d.page.Sections {
		for _, e := range s.Elements {
			e.Advance(dt)
		}
	}
}

// ElementRect is e's box in document coordinates.
func ElementRect(s *Section, e *Element) scroll.Rect {
	return scroll.Rect{
		X:      s.Box.X + e.Box.X,
		Y:      s.Box.Y + e.Box.Y,
		Width:  e.Box.Width,
		Height: e.Box.Height,
	}
}

// LayerRect is a particle layer's box in document coordinates.
func LayerRect(s *Section, l *Layer) scroll.Rect {
	if l.Box.Width <= 0 || l.Box.Height <= 0 {
		return s.Box
	}
	return scroll.Rect{
		X:      s.Box.X + l.Box.X,
		Y:      s.Box.Y + l.Box.Y,
		Width:  l.Box.Width,
		Height: l.Box.Height,
	}
}
