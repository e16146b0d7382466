package engine2D

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"cinematic-landing/internal/engine2D/particle"
	"cinematic-landing/internal/engine2D/scroll"
	"cinematic-landing/internal/page"
	"cinematic-landing/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultPageWidth is used when a page does not declare its layout width.
const DefaultPageWidth = 1280

// NewRenderer builds the particle layers declared by the page's sections.
// Canvas layers allocate their render textures on the first UpdateViewport.
func NewRenderer(doc *page.Document, textures map[*page.Element]*rl.Texture2D, rng *rand.Rand) (*Renderer, error) {
	p := doc.Page()
	r := &Renderer{
		Doc:        doc,
		Textures:   textures,
		Projection: scroll.Projection{Scale: 1},
		BgColor:    page.RGBA(p.General.ClearColor, rl.NewColor(10, 10, 12, 255)),
		Fade:       scroll.DefaultPageFade(),
		Text:       NewTextCache(p.General.Font),
	}

	for i := range p.Sections {
		s := &p.Sections[i]
		if s.Canvas != nil {
			rect := page.LayerRect(s, s.Canvas)
			cfg, err := s.Canvas.FieldConfig(rect.Width, rect.Height)
			if err != nil {
				return nil, fmt.Errorf("section %s: %w", s.ID, err)
			}
			r.Canvases = append(r.Canvases, &CanvasLayer{
				Section: s.ID,
				Rect:    rect,
				Behind:  s.Canvas.Behind,
				Field:   particle.NewField(cfg, rng),
				Surface: &Surface{Scale: 1},
			})
		}
		if s.Ambient != nil {
			cfg, err := s.Ambient.AmbientConfig()
			if err != nil {
				return nil, fmt.Errorf("section %s: %w", s.ID, err)
			}
			r.Ambients = append(r.Ambients, &AmbientLayer{
				Section: s.ID,
				Rect:    page.LayerRect(s, s.Ambient),
				Behind:  s.Ambient.Behind,
				Ambient: particle.NewAmbient(cfg, rng),
				Surface: &Surface{Soft: true},
			})
		}
	}

	utils.Info("Renderer: %d canvas layers, %d ambient layers, %d textures", len(r.Canvases), len(r.Ambients), len(textures))
	return r, nil
}

func (r *Renderer) pageWidth() float64 {
	if w := r.Doc.Page().General.Width; w > 0 {
		return w
	}
	return DefaultPageWidth
}

// UpdateViewport refits the page to the window and returns the viewport
// height in document units. Canvas fields follow the new pixel size.
func (r *Renderer) UpdateViewport(screenWidth, screenHeight int) float64 {
	proj := scroll.FitWidth(screenWidth, r.pageWidth())
	if proj != r.Projection || !r.canvasesReady() {
		r.Projection = proj
		for _, c := range r.Canvases {
			r.resizeCanvas(c)
		}
	}
	return r.Projection.ViewportHeight(screenHeight)
}

func (r *Renderer) canvasesReady() bool {
	for _, c := range r.Canvases {
		if c.Target.ID == 0 {
			return false
		}
	}
	return true
}

func (r *Renderer) resizeCanvas(c *CanvasLayer) {
	w := int32(math.Round(c.Rect.Width * r.Projection.Scale))
	h := int32(math.Round(c.Rect.Height * r.Projection.Scale))
	if w <= 0 || h <= 0 {
		return
	}
	if c.Target.ID != 0 {
		if c.Target.Texture.Width == w && c.Target.Texture.Height == h {
			return
		}
		rl.UnloadRenderTexture(c.Target)
	}
	c.Target = rl.LoadRenderTexture(w, h)
	c.Field.Resize(float64(w), float64(h))
	utils.Debug("Canvas %s resized to %dx%d", c.Section, w, h)
}

// Update advances reveal transitions and every particle layer by one frame.
func (r *Renderer) Update(dt time.Duration) {
	r.Doc.Advance(dt)
	for _, a := range r.Ambients {
		a.Ambient.Advance(dt)
	}
	for _, c := range r.Canvases {
		if c.Target.ID == 0 {
			continue
		}
		c.tick()
	}
}

func (c *CanvasLayer) tick() {
	utils.Scoped(func() { rl.BeginTextureMode(c.Target) }, rl.EndTextureMode, func() {
		c.Field.Tick(c.Surface)
	})
}

// Render draws the page as seen through vp, elapsed after load.
func (r *Renderer) Render(vp scroll.Viewport, elapsed time.Duration) {
	rl.ClearBackground(r.BgColor)

	p := r.Doc.Page()
	for i := range p.Sections {
		s := &p.Sections[i]
		screen := r.Projection.ToScreen(s.Box, vp)
		if !onScreen(screen) {
			continue
		}
		r.drawSection(s, screen, vp)
	}

	if alpha := r.Fade.Alpha(elapsed); alpha < 1 {
		w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		rl.DrawRectangle(0, 0, w, h, rl.Fade(rl.Black, float32(1-alpha)))
	}
}

// drawSection draws s clipped to its on-screen box.
func (r *Renderer) drawSection(s *page.Section, screen scroll.Rect, vp scroll.Viewport) {
	clip := clipToScreen(screen)
	rl.BeginScissorMode(int32(clip.X), int32(clip.Y), int32(clip.Width), int32(clip.Height))
	defer rl.EndScissorMode()

	if s.Color != "" {
		rl.DrawRectangleRec(rect(screen), page.RGBA(s.Color, r.BgColor))
	}
	r.drawLayers(s.ID, true, vp)
	for _, e := range s.Elements {
		r.drawElement(s, e, vp)
	}
	r.drawLayers(s.ID, false, vp)
}

func (r *Renderer) drawLayers(section string, behind bool, vp scroll.Viewport) {
	for _, c := range r.Canvases {
		if c.Section != section || c.Behind != behind || c.Target.ID == 0 {
			continue
		}
		screen := r.Projection.ToScreen(c.Rect, vp)
		src := rl.NewRectangle(0, 0, float32(c.Target.Texture.Width), -float32(c.Target.Texture.Height))
		rl.DrawTextureRec(c.Target.Texture, src, rl.NewVector2(float32(screen.X), float32(screen.Y)), rl.White)
	}

	for _, a := range r.Ambients {
		if a.Section != section || a.Behind != behind {
			continue
		}
		screen := r.Projection.ToScreen(a.Rect, vp)
		a.Surface.Origin = rl.NewVector2(float32(screen.X), float32(screen.Y))
		a.Surface.Scale = float32(r.Projection.Scale)
		a.Ambient.Render(a.Surface, a.Rect.Width, a.Rect.Height)
	}
}

func (r *Renderer) drawElement(s *page.Section, e *page.Element, vp scroll.Viewport) {
	opacity, tf := e.Effective()
	if opacity <= 0 {
		return
	}

	box := page.ElementRect(s, e)
	box.X += tf.TranslateX
	box.Y += tf.TranslateY
	screen := r.Projection.ToScreen(box, vp)

	// axis rotations have no 2D equivalent; foreshorten instead
	w := screen.Width * tf.Scale * math.Abs(math.Cos(tf.RotateY*math.Pi/180))
	h := screen.Height * tf.Scale * math.Abs(math.Cos(tf.RotateX*math.Pi/180))
	cx := screen.X + screen.Width/2
	cy := screen.Y + screen.Height/2

	radius := math.Hypot(w, h) / 2
	if cx+radius < 0 || cx-radius > float64(rl.GetScreenWidth()) ||
		cy+radius < 0 || cy-radius > float64(rl.GetScreenHeight()) {
		return
	}

	dest := rl.NewRectangle(float32(cx), float32(cy), float32(w), float32(h))
	origin := rl.NewVector2(float32(w)/2, float32(h)/2)
	rotation := float32(tf.Rotate)

	if tex := r.Textures[e]; tex != nil {
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		rl.DrawTexturePro(*tex, src, dest, origin, rotation, rl.Fade(rl.White, float32(opacity)))
	} else if e.Color != "" && e.Text == "" {
		rl.DrawRectanglePro(dest, origin, rotation, rl.Fade(page.RGBA(e.Color, rl.White), float32(opacity)))
	}

	if e.Text != "" {
		size := e.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		size *= r.Projection.Scale * tf.Scale
		tint := rl.Fade(page.RGBA(e.Color, rl.White), float32(opacity))
		r.Text.Draw(e.Text, rl.NewVector2(float32(cx), float32(cy)), float32(size), rotation, tint)
	}
}

func onScreen(r scroll.Rect) bool {
	return r.Y+r.Height >= 0 && r.Y <= float64(rl.GetScreenHeight()) &&
		r.X+r.Width >= 0 && r.X <= float64(rl.GetScreenWidth())
}

func clipToScreen(r scroll.Rect) scroll.Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1 := min(r.X+r.Width, float64(rl.GetScreenWidth()))
	y1 := min(r.Y+r.Height, float64(rl.GetScreenHeight()))
	return scroll.Rect{X: x0, Y: y0, Width: max(x1-x0, 0), Height: max(y1-y0, 0)}
}

func rect(r scroll.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height))
}

// Unload releases GPU resources owned by the renderer.
func (r *Renderer) Unload() {
	for _, c := range r.Canvases {
		if c.Target.ID != 0 {
			rl.UnloadRenderTexture(c.Target)
		}
	}
	// elements sharing an image share the texture
	unloaded := make(map[uint32]bool)
	for e, tex := range r.Textures {
		if !unloaded[tex.ID] {
			rl.UnloadTexture(*tex)
			unloaded[tex.ID] = true
		}
		delete(r.Textures, e)
	}
	r.Text.Unload()
}
