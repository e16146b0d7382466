package engine2D

import (
	"image/color"

	"cinematic-landing/internal/engine2D/particle"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface implements particle.Surface on raylib. Points are scaled then
// offset by Origin. Soft circles fade from their colour to transparent at
// the rim.
type Surface struct {
	Origin rl.Vector2
	Scale  float32
	Soft   bool
}

var _ particle.Surface = (*Surface)(nil)

func (s *Surface) point(v particle.Vec2) rl.Vector2 {
	return rl.NewVector2(s.Origin.X+float32(v.X)*s.Scale, s.Origin.Y+float32(v.Y)*s.Scale)
}

// Clear wipes the current render target; only meaningful inside texture mode.
func (s *Surface) Clear() {
	rl.ClearBackground(rl.Blank)
}

func (s *Surface) FillCircle(center particle.Vec2, radius float64, c color.RGBA, alpha float64) {
	p := s.point(center)
	r := float32(radius) * s.Scale
	col := rl.Fade(c, float32(alpha))
	if s.Soft {
		rl.DrawCircleGradient(int32(p.X), int32(p.Y), r, col, rl.Fade(c, 0))
		return
	}
	rl.DrawCircleV(p, r, col)
}

func (s *Surface) StrokeLine(from, to particle.Vec2, width float64, c color.RGBA, alpha float64) {
	rl.DrawLineEx(s.point(from), s.point(to), float32(width)*s.Scale, rl.Fade(c, float32(alpha)))
}
