package page

import (
	"encoding/json"
	"image/color"
	"strconv"
	"strings"

	"cinematic-landing/internal/engine2D/scroll"
)

type Page struct {
	General  General   `json:"general"`
	Sections []Section `json:"sections"`
	// Animations replaces the preset named by General.Variant when present.
	Animations []scroll.SectionConfig `json:"animations,omitempty"`
	// Hover replaces DefaultHoverStyles when present.
	Hover []HoverStyle `json:"hover,omitempty"`

	// Dir is the directory the page was loaded from; images are looked up
	// there first.
	Dir    string `json:"-"`
	source imageSource
}

type General struct {
	Title      string       `json:"title"`
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	ClearColor string       `json:"clearcolor"`
	Variant    string       `json:"variant"`
	Font       string       `json:"font"`
	Soundtrack string       `json:"soundtrack"`
	Volume     BindingFloat `json:"volume"`
}

type Section struct {
	ID       string      `json:"id"`
	Box      scroll.Rect `json:"box"`
	Color    string      `json:"color"`
	Elements []*Element  `json:"elements"`

	Canvas  *Layer `json:"canvas,omitempty"`
	Ambient *Layer `json:"ambient,omitempty"`
}

// Layer is a particle layer drawn inside a section, over its elements unless
// Behind is set. A zero Box covers the whole section; Settings override the
// layer defaults field by field.
type Layer struct {
	Box      scroll.Rect     `json:"box"`
	Color    string          `json:"color"`
	Behind   bool            `json:"behind"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// Element is one presentational item. Box is relative to its section.
type Element struct {
	Name     string       `json:"name"`
	Class    []string     `json:"class"`
	Text     string       `json:"text"`
	FontSize float64      `json:"fontsize"`
	Image    string       `json:"image"`
	Box      scroll.Rect  `json:"box"`
	Color    string       `json:"color"`
	Delay    BindingFloat `json:"delay"`
	Rotation BindingFloat `json:"rotation"`

	Opacity *float64          `json:"opacity,omitempty"`
	Initial *scroll.Transform `json:"initial,omitempty"`
	// Hidden elements stay transparent and offset until marked visible,
	// then ease in. From is the offset they wait at, RevealLift below
	// their place when unset.
	Hidden bool    `json:"hidden"`
	From   *Offset `json:"from,omitempty"`

	State State `json:"-"`
}

type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BindingFloat accepts a number, a numeric string or {"value": ...}.
type BindingFloat struct {
	Value float64
	Set   bool
}

func (b *BindingFloat) UnmarshalJSON(data []byte) error {
	var floatVal float64
	if err := json.Unmarshal(data, &floatVal); err == nil {
		b.Value, b.Set = floatVal, true
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			b.Value, b.Set = parsed, true
		}
		return nil
	}
	var temp struct {
		Value interface{} `json:"value"`
	}
	if err := json.Unmarshal(data, &temp); err == nil {
		switch v := temp.Value.(type) {
		case float64:
			b.Value, b.Set = v, true
		case string:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				b.Value, b.Set = parsed, true
			}
		}
	}
	return nil
}

func (b BindingFloat) Or(def float64) float64 {
	if !b.Set {
		return def
	}
	return b.Value
}

// ParseColor reads "r g b" or "r g b a" with components in [0,1].
func ParseColor(colorStr string) (r, g, b, a float64) {
	parts := strings.Fields(colorStr)
	if len(parts) < 3 {
		return 0, 0, 0, 0
	}
	r, _ = strconv.ParseFloat(parts[0], 64)
	g, _ = strconv.ParseFloat(parts[1], 64)
	b, _ = strconv.ParseFloat(parts[2], 64)
	a = 1
	if len(parts) > 3 {
		a, _ = strconv.ParseFloat(parts[3], 64)
	}
	return r, g, b, a
}

// RGBA converts a ParseColor string, falling back to def when empty or
// malformed.
func RGBA(colorStr string, def color.RGBA) color.RGBA {
	if len(strings.Fields(colorStr)) < 3 {
		return def
	}
	r, g, b, a := ParseColor(colorStr)
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: channel(a)}
}

func channel(v float64) uint8 {
	v = min(max(v, 0), 1)
	return uint8(v*255 + 0.5)
}

// HasClass reports whether target is the element's name or one of its
// classes.
func (e *Element) HasClass(target string) bool {
	if e.Name == target {
		return true
	}
	for _, c := range e.Class {
		if c == target {
			return true
		}
	}
	return false
}
