package engine2D

import (
	"image/color"
	"time"

	"cinematic-landing/internal/engine2D/particle"
	"cinematic-landing/internal/engine2D/scroll"
	"cinematic-landing/internal/page"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws a page under the scroll engine's viewport.
type Renderer struct {
	Doc        *page.Document
	Textures   map[*page.Element]*rl.Texture2D
	Canvases   []*CanvasLayer
	Ambients   []*AmbientLayer
	Projection scroll.Projection
	BgColor    color.RGBA
	Fade       scroll.PageFade
	Text       *TextCache
}

// CanvasLayer is a connected particle field rendered into its own texture,
// like a canvas element sized to its box.
type CanvasLayer struct {
	Section string
	Rect    scroll.Rect
	Behind  bool
	Field   *particle.Field
	Target  rl.RenderTexture2D
	Surface *Surface
}

// AmbientLayer is a floating-dot field drawn straight onto the window.
type AmbientLayer struct {
	Section string
	Rect    scroll.Rect
	Behind  bool
	Ambient *particle.Ambient
	Surface *Surface
}

// FrameClock measures frame deltas and time since start.
type FrameClock struct {
	start time.Time
	last  time.Time
}
