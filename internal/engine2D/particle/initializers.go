package particle

import "math/rand"

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// spawn places a particle uniformly in the canvas with a velocity in
// (-Speed/2, Speed/2) on each axis.
func spawn(cfg FieldConfig, rng *rand.Rand) Particle {
	return Particle{
		Position: Vec2{
			X: rng.Float64() * cfg.Width,
			Y: rng.Float64() * cfg.Height,
		},
		Velocity: Vec2{
			X: (rng.Float64() - 0.5) * cfg.Speed,
			Y: (rng.Float64() - 0.5) * cfg.Speed,
		},
		Radius:  cfg.Radius.sample(rng),
		Opacity: cfg.Opacity.sample(rng),
	}
}
