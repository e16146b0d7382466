package particle

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
	"time"
)

type circle struct {
	center Vec2
	radius float64
	alpha  float64
}

type line struct {
	from, to Vec2
	width    float64
	alpha    float64
}

type recorder struct {
	clears  int
	circles []circle
	lines   []line
}

func (r *recorder) Clear() { r.clears++ }
func (r *recorder) FillCircle(c Vec2, radius float64, _ color.RGBA, alpha float64) {
	r.circles = append(r.circles, circle{c, radius, alpha})
}
func (r *recorder) StrokeLine(a, b Vec2, width float64, _ color.RGBA, alpha float64) {
	r.lines = append(r.lines, line{a, b, width, alpha})
}

func TestNewFieldRanges(t *testing.T) {
	cfg := DefaultFieldConfig(640, 360)
	f := NewField(cfg, rand.New(rand.NewSource(7)))
	if len(f.Particles) != 40 {
		t.Fatalf("particles = %d, want 40", len(f.Particles))
	}
	for i, p := range f.Particles {
		if p.Position.X < 0 || p.Position.X >= 640 || p.Position.Y < 0 || p.Position.Y >= 360 {
			t.Fatalf("particle %d spawned outside: %+v", i, p.Position)
		}
		if math.Abs(p.Velocity.X) > 0.15 || math.Abs(p.Velocity.Y) > 0.15 {
			t.Fatalf("particle %d too fast: %+v", i, p.Velocity)
		}
		if p.Radius < 0.5 || p.Radius >= 2 {
			t.Fatalf("particle %d radius %v", i, p.Radius)
		}
		if p.Opacity < 0.2 || p.Opacity >= 0.7 {
			t.Fatalf("particle %d opacity %v", i, p.Opacity)
		}
	}
}

func TestStepStaysBoundedAndElastic(t *testing.T) {
	cfg := DefaultFieldConfig(200, 120)
	cfg.Speed = 6 // fast enough to hit the walls often
	f := NewField(cfg, rand.New(rand.NewSource(42)))

	speeds := make([]float64, len(f.Particles))
	for i, p := range f.Particles {
		speeds[i] = math.Hypot(p.Velocity.X, p.Velocity.Y)
	}
	eps := cfg.Speed / 2

	for step := 0; step < 20000; step++ {
		f.Step()
		for i, p := range f.Particles {
			if math.IsNaN(p.Position.X) || math.IsInf(p.Position.X, 0) {
				t.Fatalf("particle %d position not finite", i)
			}
			if p.Position.X < -eps || p.Position.X > cfg.Width+eps ||
				p.Position.Y < -eps || p.Position.Y > cfg.Height+eps {
				t.Fatalf("step %d: particle %d escaped to %+v", step, i, p.Position)
			}
		}
	}
	for i, p := range f.Particles {
		if got := math.Hypot(p.Velocity.X, p.Velocity.Y); math.Abs(got-speeds[i]) > 1e-12 {
			t.Fatalf("particle %d speed changed %v -> %v", i, speeds[i], got)
		}
	}
	if f.Frames != 20000 {
		t.Fatalf("frames = %d", f.Frames)
	}
}

func TestReflectionWithoutClamping(t *testing.T) {
	f := &Field{
		Config:    FieldConfig{Width: 100, Height: 100},
		Particles: []Particle{{Position: Vec2{X: 99.9, Y: 50}, Velocity: Vec2{X: 0.3, Y: 0}}},
	}
	f.Step()
	p := f.Particles[0]
	if p.Position.X <= 100 {
		t.Fatalf("position was clamped: %v", p.Position.X)
	}
	if p.Velocity.X != -0.3 {
		t.Fatalf("velocity not reflected: %v", p.Velocity.X)
	}
	f.Step()
	if f.Particles[0].Position.X >= 100 {
		t.Fatalf("particle did not come back: %v", f.Particles[0].Position.X)
	}
}

func TestLinkOpacity(t *testing.T) {
	if got := LinkOpacity(100, 100, 0.1); got != 0 {
		t.Fatalf("opacity at threshold = %v", got)
	}
	if got := LinkOpacity(150, 100, 0.1); got != 0 {
		t.Fatalf("opacity past threshold = %v", got)
	}
	if got := LinkOpacity(1e-9, 100, 0.1); math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("opacity near zero distance = %v", got)
	}
	prev := math.Inf(1)
	for d := 0.0; d <= 100; d += 0.5 {
		got := LinkOpacity(d, 100, 0.1)
		if got > prev {
			t.Fatalf("opacity increased at d=%v", d)
		}
		prev = got
	}
}

func TestRenderScenario(t *testing.T) {
	cfg := DefaultFieldConfig(300, 300)
	f := &Field{
		Config: cfg,
		Particles: []Particle{
			{Position: Vec2{0, 0}, Radius: 1, Opacity: 0.5},
			{Position: Vec2{50, 0}, Radius: 1.5, Opacity: 0.3},
			{Position: Vec2{250, 250}, Radius: 1, Opacity: 0.2},
		},
	}

	var r recorder
	f.Render(&r)

	if r.clears != 1 || len(r.circles) != 3 {
		t.Fatalf("clears=%d circles=%d", r.clears, len(r.circles))
	}
	if r.circles[1].alpha != 0.3 || r.circles[1].radius != 1.5 {
		t.Fatalf("circle drawn with %+v", r.circles[1])
	}
	if len(r.lines) != 1 || f.Links != 1 {
		t.Fatalf("lines = %d, want exactly one pair", len(r.lines))
	}
	l := r.lines[0]
	if math.Abs(l.alpha-0.05) > 1e-12 || l.width != 0.5 {
		t.Fatalf("line = %+v, want alpha 0.05 width 0.5", l)
	}
	if l.from != (Vec2{0, 0}) || l.to != (Vec2{50, 0}) {
		t.Fatalf("line endpoints %+v -> %+v", l.from, l.to)
	}
}

func TestEachLinkVisitsUnorderedPairsOnce(t *testing.T) {
	cfg := DefaultFieldConfig(10, 10)
	cfg.LinkDistance = 1000
	f := NewField(cfg, rand.New(rand.NewSource(1)))

	seen := map[[2]int]bool{}
	f.EachLink(func(a, b int, _ float64) {
		if a >= b {
			t.Fatalf("pair (%d,%d) not ordered", a, b)
		}
		key := [2]int{a, b}
		if seen[key] {
			t.Fatalf("pair %v visited twice", key)
		}
		seen[key] = true
	})
	if len(seen) != 40*39/2 {
		t.Fatalf("visited %d pairs, want 780", len(seen))
	}
}

func TestResizePullsParticlesIn(t *testing.T) {
	f := NewField(DefaultFieldConfig(800, 600), rand.New(rand.NewSource(3)))
	f.Resize(100, 50)
	for i, p := range f.Particles {
		if p.Position.X < 0 || p.Position.X > 100 || p.Position.Y < 0 || p.Position.Y > 50 {
			t.Fatalf("particle %d outside after resize: %+v", i, p.Position)
		}
	}
}

func TestAmbientFloat(t *testing.T) {
	a := NewAmbient(DefaultAmbientConfig(), rand.New(rand.NewSource(9)))
	if len(a.Dots) != 30 {
		t.Fatalf("dots = %d", len(a.Dots))
	}
	for i, d := range a.Dots {
		if d.Size < 1 || d.Size >= 4 || d.Period < 10*time.Second || d.Period >= 20*time.Second {
			t.Fatalf("dot %d out of range: %+v", i, d)
		}
		if a.Offset(i) != 0 {
			t.Fatalf("dot %d moved before starting", i)
		}
	}

	d := &a.Dots[0]
	d.Delay = time.Second
	d.Period = 10 * time.Second

	a.Advance(time.Second)
	if off := a.Offset(0); off != 0 {
		t.Fatalf("offset at end of delay = %v", off)
	}
	a.Advance(5 * time.Second)
	if off := a.Offset(0); math.Abs(off+20) > 1e-9 {
		t.Fatalf("offset at half period = %v, want -20", off)
	}
	a.Advance(5 * time.Second)
	if off := a.Offset(0); math.Abs(off) > 1e-9 {
		t.Fatalf("offset after a full period = %v", off)
	}

	pos := a.Position(0, 200, 100)
	if math.Abs(pos.X-d.Left*2) > 1e-9 || math.Abs(pos.Y-d.Top) > 1e-9 {
		t.Fatalf("position = %+v for dot %+v", pos, *d)
	}

	var r recorder
	a.Render(&r, 200, 100)
	if len(r.circles) != 30 || r.circles[0].alpha != 0.6 {
		t.Fatalf("ambient render drew %d circles", len(r.circles))
	}
}
