package particle

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// Dot is one ambient background particle. Left and Top are percentages of
// its container.
type Dot struct {
	Left, Top float64
	Size      float64
	Period    time.Duration
	Delay     time.Duration
}

type AmbientConfig struct {
	Count  int     `json:"count"`
	Size   Range   `json:"size"`
	Period Range   `json:"period"` // seconds
	Delay  Range   `json:"delay"`  // seconds
	Drift  float64 `json:"drift"`  // peak upward offset in pixels
	Alpha  float64 `json:"alpha"`

	Color color.RGBA `json:"-"`
}

// DefaultAmbientConfig is the 30-dot hero background.
func DefaultAmbientConfig() AmbientConfig {
	return AmbientConfig{
		Count:  30,
		Size:   Range{Min: 1, Max: 4},
		Period: Range{Min: 10, Max: 20},
		Delay:  Range{Min: 0, Max: 5},
		Drift:  20,
		Alpha:  0.6,
		Color:  Gold,
	}
}

// Ambient is a field of dots floating in place on independent cycles.
type Ambient struct {
	Config  AmbientConfig
	Dots    []Dot
	Elapsed time.Duration
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func NewAmbient(cfg AmbientConfig, rng *rand.Rand) *Ambient {
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	a := &Ambient{Config: cfg, Dots: make([]Dot, cfg.Count)}
	for i := range a.Dots {
		a.Dots[i] = Dot{
			Left:   rng.Float64() * 100,
			Top:    rng.Float64() * 100,
			Size:   cfg.Size.sample(rng),
			Period: seconds(cfg.Period.sample(rng)),
			Delay:  seconds(cfg.Delay.sample(rng)),
		}
	}
	return a
}

func (a *Ambient) Advance(dt time.Duration) {
	a.Elapsed += dt
}

// Offset is the vertical float offset of dot i: at rest until its delay has
// passed, then an ease-in-out rise to -Drift and back once per period.
func (a *Ambient) Offset(i int) float64 {
	d := a.Dots[i]
	t := a.Elapsed - d.Delay
	if t <= 0 || d.Period <= 0 {
		return 0
	}
	phase := float64(t%d.Period) / float64(d.Period)
	return -a.Config.Drift * (1 - math.Cos(2*math.Pi*phase)) / 2
}

// Position places dot i inside a container of the given size.
func (a *Ambient) Position(i int, width, height float64) Vec2 {
	d := a.Dots[i]
	return Vec2{
		X: d.Left / 100 * width,
		Y: d.Top/100*height + a.Offset(i),
	}
}

// Render draws every dot into a container of the given size.
func (a *Ambient) Render(s Surface, width, height float64) {
	for i, d := range a.Dots {
		s.FillCircle(a.Position(i, width, height), d.Size/2, a.Config.Color, a.Config.Alpha)
	}
}
