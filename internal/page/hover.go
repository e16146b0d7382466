package page

import (
	"cinematic-landing/internal/engine2D/scroll"
)

// HoverStyle is how elements of one class respond to the pointer: they tilt
// towards it by one degree per Divisor units from their centre.
type HoverStyle struct {
	Class   string  `json:"class"`
	Divisor float64 `json:"divisor"`
	Scale   float64 `json:"scale"`
	Lift    float64 `json:"lift"`
	// Straighten drops the element's own rotation while hovered.
	Straighten bool `json:"straighten"`
}

// DefaultHoverStyles tilts gallery items and memory cards.
var DefaultHoverStyles = []HoverStyle{
	{Class: "gallery-item", Divisor: 20, Scale: 1.05, Straighten: true},
	{Class: "memory-card", Divisor: 15, Scale: 1, Lift: -10},
}

// Tilt is the hover response applied over an element's state.
type Tilt struct {
	RotateX    float64
	RotateY    float64
	Scale      float64
	Lift       float64
	Straighten bool
}

// TiltAt is the tilt for a pointer at (x, y) over box. The top edge leans
// back and the left edge comes forward, as under a CSS perspective.
func TiltAt(box scroll.Rect, x, y float64, style HoverStyle) Tilt {
	t := Tilt{Scale: style.Scale, Lift: style.Lift, Straighten: style.Straighten}
	if t.Scale == 0 {
		t.Scale = 1
	}
	if style.Divisor != 0 {
		cx, cy := box.Width/2, box.Height/2
		t.RotateX = ((y - box.Y) - cy) / style.Divisor
		t.RotateY = (cx - (x - box.X)) / style.Divisor
	}
	return t
}

func (p *Page) hoverStyles() []HoverStyle {
	if p.Hover != nil {
		return p.Hover
	}
	return DefaultHoverStyles
}

func (e *Element) hoverStyle(styles []HoverStyle) (HoverStyle, bool) {
	for _, s := range styles {
		if e.HasClass(s.Class) {
			return s, true
		}
	}
	return HoverStyle{}, false
}

// UpdateHover tilts the hoverable element under the pointer, given in
// document coordinates, and releases every other one. With inside false
// the pointer has left the page and all elements are released.
func (d *Document) UpdateHover(x, y float64, inside bool) *Element {
	styles := d.page.hoverStyles()
	var hit *Element

	// later elements draw on top, so the last match wins
	for i := range d.page.Sections {
		s := &d.page.Sections[i]
		for _, e := range s.Elements {
			e.State.Hover = nil
			style, ok := e.hoverStyle(styles)
			if !ok || !inside {
				continue
			}
			box := ElementRect(s, e)
			box.X += e.State.Transform.TranslateX
			box.Y += e.State.Transform.TranslateY
			if contains(box, x, y) {
				if hit != nil {
					hit.State.Hover = nil
				}
				tilt := TiltAt(box, x, y, style)
				e.State.Hover = &tilt
				hit = e
			}
		}
	}
	return hit
}

func contains(r scroll.Rect, x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}
