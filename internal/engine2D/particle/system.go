package particle

import (
	"math"
	"math/rand"

	"cinematic-landing/internal/utils"
)

// Field is a fixed set of drifting particles that bounce inside a canvas and
// link to their neighbours.
type Field struct {
	Config    FieldConfig
	Particles []Particle
	Frames    int
	Links     int // connection lines drawn by the last Render
}

// NewField allocates cfg.Count particles with uniformly random state.
func NewField(cfg FieldConfig, rng *rand.Rand) *Field {
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	f := &Field{
		Config:    cfg,
		Particles: make([]Particle, cfg.Count),
	}
	for i := range f.Particles {
		f.Particles[i] = spawn(cfg, rng)
	}
	utils.Debug("Particle field: %d particles on %.0fx%.0f", cfg.Count, cfg.Width, cfg.Height)
	return f
}

// Step integrates one frame. A particle outside [0, dim] on an axis has that
// velocity component negated; its position is left as is.
func (f *Field) Step() {
	w, h := f.Config.Width, f.Config.Height
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Position = p.Position.Add(p.Velocity)

		if p.Position.X < 0 || p.Position.X > w {
			p.Velocity.X = -p.Velocity.X
		}
		if p.Position.Y < 0 || p.Position.Y > h {
			p.Velocity.Y = -p.Velocity.Y
		}
	}
	f.Frames++
}

// Resize changes the canvas bounds and pulls particles back inside them.
func (f *Field) Resize(width, height float64) {
	f.Config.Width, f.Config.Height = width, height
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Position.X = math.Min(math.Max(p.Position.X, 0), width)
		p.Position.Y = math.Min(math.Max(p.Position.Y, 0), height)
	}
}

// LinkOpacity is the alpha of a connection line at distance d: peak at 0,
// falling linearly to 0 at threshold and beyond.
func LinkOpacity(d, threshold, peak float64) float64 {
	if threshold <= 0 || d >= threshold {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return peak * (1 - d/threshold)
}

// EachLink calls fn once for every unordered pair closer than the link
// distance. All pairs are checked; the counts involved do not need an index.
func (f *Field) EachLink(fn func(a, b int, distance float64)) {
	threshold := f.Config.LinkDistance
	for i := 0; i < len(f.Particles); i++ {
		for j := i + 1; j < len(f.Particles); j++ {
			d := f.Particles[i].Position.Sub(f.Particles[j].Position)
			distance := math.Sqrt(d.X*d.X + d.Y*d.Y)
			if distance < threshold {
				fn(i, j, distance)
			}
		}
	}
}
