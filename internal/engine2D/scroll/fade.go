package scroll

import "time"

// PageFade is the whole-page fade-in after load.
type PageFade struct {
	Delay    time.Duration
	Duration time.Duration
}

func DefaultPageFade() PageFade {
	return PageFade{Delay: 100 * time.Millisecond, Duration: 800 * time.Millisecond}
}

// Alpha is the page opacity at elapsed time since load, with an ease-in
// curve.
func (f PageFade) Alpha(elapsed time.Duration) float64 {
	if elapsed <= f.Delay {
		return 0
	}
	if f.Duration <= 0 {
		return 1
	}
	t := clamp01(float64(elapsed-f.Delay) / float64(f.Duration))
	return easeIn(t)
}

// cubic-bezier(0.42, 0, 1, 1) sampled as a cubic; close enough for a fade
func easeIn(t float64) float64 {
	return t * t * t
}

// RevealMix eases a node from hidden to shown once it is marked visible.
type RevealMix struct {
	value float64
}

// RevealDuration is how long a class-driven reveal takes to settle.
const RevealDuration = 600 * time.Millisecond

// Advance moves the mix toward 1 when visible and returns the eased value.
// Visibility is one-way, so the mix never moves back.
func (m *RevealMix) Advance(visible bool, dt time.Duration) float64 {
	if visible && m.value < 1 {
		m.value = clamp01(m.value + float64(dt)/float64(RevealDuration))
	}
	return easeOut(m.value)
}

func (m *RevealMix) Value() float64 { return easeOut(m.value) }

// approximates cubic-bezier(0.22, 1, 0.36, 1)
func easeOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u*u
}
