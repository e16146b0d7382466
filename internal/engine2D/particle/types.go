package particle

import "image/color"

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

type Particle struct {
	Position Vec2
	Velocity Vec2
	Radius   float64
	Opacity  float64
}

// Range is a half-open interval [Min, Max) sampled uniformly.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Gold is the page accent colour rgb(212, 167, 90).
var Gold = color.RGBA{R: 212, G: 167, B: 90, A: 255}

// FieldConfig describes a connected particle canvas.
type FieldConfig struct {
	Count  int     `json:"count"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Speed is the span of each velocity component, centred on zero.
	Speed   float64 `json:"speed"`
	Radius  Range   `json:"radius"`
	Opacity Range   `json:"opacity"`

	LinkDistance float64 `json:"linkDistance"`
	LinkOpacity  float64 `json:"linkOpacity"`
	LinkWidth    float64 `json:"linkWidth"`

	Color color.RGBA `json:"-"`
}

// DefaultFieldConfig is the 40-particle map canvas.
func DefaultFieldConfig(width, height float64) FieldConfig {
	return FieldConfig{
		Count:        40,
		Width:        width,
		Height:       height,
		Speed:        0.3,
		Radius:       Range{Min: 0.5, Max: 2.0},
		Opacity:      Range{Min: 0.2, Max: 0.7},
		LinkDistance: 100,
		LinkOpacity:  0.1,
		LinkWidth:    0.5,
		Color:        Gold,
	}
}

// Surface is a 2D drawing target. Alpha is in [0,1] and overrides the alpha
// of the colour.
type Surface interface {
	Clear()
	FillCircle(center Vec2, radius float64, c color.RGBA, alpha float64)
	StrokeLine(from, to Vec2, width float64, c color.RGBA, alpha float64)
}
