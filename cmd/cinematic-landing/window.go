package main

import (
	"fmt"
	"time"

	"cinematic-landing/internal/audio"
	"cinematic-landing/internal/debug"
	"cinematic-landing/internal/engine2D"
	"cinematic-landing/internal/engine2D/scroll"
	"cinematic-landing/internal/page"
	"cinematic-landing/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	wheelStep = 80.0
	arrowStep = 40.0
	pageStep  = 0.9
)

type Window struct {
	page         *page.Page
	doc          *page.Document
	engine       *scroll.Engine
	renderer     *engine2D.Renderer
	audioManager *audio.AudioManager
	debugOverlay *debug.DebugOverlay
	clock        *engine2D.FrameClock
	coalesce     bool
	elapsed      time.Duration

	scrollY      float64
	screenWidth  int
	screenHeight int
}

func NewWindow(p *page.Page, doc *page.Document, engine *scroll.Engine, renderer *engine2D.Renderer, coalesce bool) *Window {
	window := &Window{
		page:         p,
		doc:          doc,
		engine:       engine,
		renderer:     renderer,
		audioManager: audio.NewAudioManager(),
		debugOverlay: debug.NewDebugOverlay(),
		clock:        engine2D.NewFrameClock(),
		coalesce:     coalesce,
		screenWidth:  rl.GetScreenWidth(),
		screenHeight: rl.GetScreenHeight(),
	}

	if name := p.General.Soundtrack; name != "" {
		data, found, err := p.ReadAsset(name)
		if err != nil {
			utils.Warn("Soundtrack unavailable: %v", err)
		} else {
			window.audioManager.Play(found, data, p.General.Volume.Or(0.5))
		}
	}

	return window
}

func (window *Window) Run() {
	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		window.Draw()
		rl.EndDrawing()
	}
}

// Update runs one frame of input, scroll animation and simulation. A panic
// inside a frame is logged and the loop keeps going.
func (window *Window) Update() {
	utils.Recover("Frame update", window.update)
}

func (window *Window) update() {
	dt, elapsed := window.clock.Tick()
	window.elapsed = elapsed

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}
	overPanel := false
	if utils.ShowDebugUI {
		overPanel = window.debugOverlay.Update()
	}

	if w, h := rl.GetScreenWidth(), rl.GetScreenHeight(); w != window.screenWidth || h != window.screenHeight {
		window.screenWidth, window.screenHeight = w, h
		vh := window.renderer.UpdateViewport(w, h)
		window.engine.OnResize(vh)
		utils.Debug("Window resized to %dx%d, viewport %.0f units", w, h, vh)
		window.scrollTo(window.scrollY)
	}

	window.handleScroll(overPanel)
	window.handleHover(overPanel)

	window.engine.Frame(elapsed)
	window.renderer.Update(dt)
	window.audioManager.Update()
}

func (window *Window) handleScroll(overPanel bool) {
	vh := window.engine.Viewport().Height
	target := window.scrollY

	if !overPanel {
		target -= float64(rl.GetMouseWheelMove()) * wheelStep
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressedRepeat(rl.KeyDown) {
		target += arrowStep
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressedRepeat(rl.KeyUp) {
		target -= arrowStep
	}
	if rl.IsKeyPressed(rl.KeyPageDown) || rl.IsKeyPressed(rl.KeySpace) {
		target += vh * pageStep
	}
	if rl.IsKeyPressed(rl.KeyPageUp) {
		target -= vh * pageStep
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		target = 0
	}
	if rl.IsKeyPressed(rl.KeyEnd) {
		target = window.doc.Height()
	}

	if target != window.scrollY {
		window.scrollTo(target)
	}
}

func (window *Window) handleHover(overPanel bool) {
	inside := rl.IsCursorOnScreen() && !overPanel
	m := rl.GetMousePosition()
	x, y := window.renderer.Projection.ToDocument(float64(m.X), float64(m.Y), window.engine.Viewport())
	window.doc.UpdateHover(x, y, inside)
}

func (window *Window) scrollTo(y float64) {
	y = scroll.ClampScroll(y, window.doc.Height(), window.engine.Viewport().Height)
	if y == window.scrollY && y == window.engine.Viewport().ScrollY {
		return
	}
	window.scrollY = y
	window.engine.OnScroll(y)
}

// Draw renders the frame. A panic is logged and the frame ends as drawn so
// far.
func (window *Window) Draw() {
	utils.Recover("Frame draw", window.draw)
}

func (window *Window) draw() {
	window.renderer.Render(window.engine.Viewport(), window.elapsed)

	if utils.ShowDebugUI {
		window.debugOverlay.Draw(window.scene())
	}
}

func (window *Window) scene() debug.Scene {
	vp := window.engine.Viewport()
	proj := window.renderer.Projection

	s := debug.Scene{
		Viewport:  vp,
		DocHeight: window.doc.Height(),
		Scale:     proj.Scale,
		Coalesce:  window.coalesce,
		Pending:   window.engine.Pending(),
		Passes:    window.engine.Passes(),
		Scheduled: window.engine.Scheduled(),
		Sections:  window.engine.Status(),
		Playing:   window.audioManager.Playing(),
	}

	for _, c := range window.renderer.Canvases {
		s.Layers = append(s.Layers, debug.Layer{
			Name:      c.Section,
			Kind:      "canvas",
			Particles: len(c.Field.Particles),
			Links:     c.Field.Links,
			Frames:    c.Field.Frames,
		})
	}
	for _, a := range window.renderer.Ambients {
		s.Layers = append(s.Layers, debug.Layer{
			Name:      a.Section,
			Kind:      "ambient",
			Particles: len(a.Ambient.Dots),
		})
	}

	for i := range window.page.Sections {
		sec := &window.page.Sections[i]
		s.Boxes = append(s.Boxes, debug.Box{
			Label:   sec.ID,
			Rect:    screenRect(proj.ToScreen(sec.Box, vp)),
			Section: true,
		})
		for _, e := range sec.Elements {
			s.Boxes = append(s.Boxes, debug.Box{
				Label:   elementLabel(e),
				Rect:    screenRect(proj.ToScreen(page.ElementRect(sec, e), vp)),
				Visible: e.State.Visible,
			})
		}
	}
	return s
}

func elementLabel(e *page.Element) string {
	if e.Name != "" {
		return e.Name
	}
	if len(e.Class) > 0 {
		return fmt.Sprintf(".%s", e.Class[0])
	}
	return ""
}

func screenRect(r scroll.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height))
}

func (window *Window) Close() {
	window.audioManager.Close()
	window.debugOverlay.Unload()
}
