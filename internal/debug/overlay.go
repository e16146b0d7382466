package debug

import (
	"math"
	"os"
	"runtime"
	"time"

	"cinematic-landing/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type DebugTab int

const (
	TabSections DebugTab = iota
	TabParticles
	TabPerformance
)

var tabNames = []string{"Sections", "Particles", "Performance"}

// DebugOverlay is the F8 side panel.
type DebugOverlay struct {
	ActiveTab         DebugTab
	ShowBoundingBoxes bool
	ScrollOffset      float64

	fontHeight   int
	lineHeight   int
	tabHeight    int
	sidebarWidth int

	prevLeftMouseButton bool
	mouseX              int
	mouseY              int
	clicked             bool

	uiBuffer          rl.RenderTexture2D
	uiScale           float64
	font              rl.Font
	cachedWidth       int
	cachedHeight      int
	monitorWidth      int
	monitorHeight     int
	bufferInitialized bool

	lastUpdateTime time.Time
	frameCount     int
	fps            float64
	memStats       runtime.MemStats
}

func NewDebugOverlay() *DebugOverlay {
	monitor := rl.GetCurrentMonitor()

	d := &DebugOverlay{
		ActiveTab:      TabSections,
		monitorWidth:   rl.GetMonitorWidth(monitor),
		monitorHeight:  rl.GetMonitorHeight(monitor),
		lastUpdateTime: time.Now(),
	}

	d.updateLayout()

	fontPaths := []string{
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	}

	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			d.font = rl.LoadFontEx(path, 64, nil, 0)
			rl.SetTextureFilter(d.font.Texture, rl.FilterBilinear)
			break
		}
	}

	return d
}

func (d *DebugOverlay) updateLayout() {
	scale := math.Max(1.0, float64(d.monitorHeight)/1080.0)
	d.fontHeight = int(16 * scale)
	d.lineHeight = int(26 * scale)
	d.tabHeight = int(36 * scale)
	d.sidebarWidth = int(460 * scale)
	d.uiScale = scale
}

// Update reads overlay input. It reports whether the mouse is over the
// panel, in which case the wheel belongs to the overlay.
func (d *DebugOverlay) Update() bool {
	d.updateLayout()

	d.frameCount++
	now := time.Now()
	if now.Sub(d.lastUpdateTime) >= time.Second {
		d.fps = float64(d.frameCount) / now.Sub(d.lastUpdateTime).Seconds()
		d.frameCount = 0
		d.lastUpdateTime = now
		runtime.ReadMemStats(&d.memStats)
	}

	mPos := rl.GetMousePosition()
	d.mouseX = int(mPos.X)
	d.mouseY = int(mPos.Y)

	leftPressed := rl.IsMouseButtonDown(rl.MouseLeftButton)
	d.clicked = leftPressed && !d.prevLeftMouseButton
	d.prevLeftMouseButton = leftPressed

	over := d.mouseX < d.sidebarWidth
	if d.clicked && over && d.mouseY < d.tabHeight {
		tabWidth := d.sidebarWidth / len(tabNames)
		d.ActiveTab = DebugTab(min(d.mouseX/tabWidth, len(tabNames)-1))
		d.ScrollOffset = 0
	}

	if over {
		d.ScrollOffset = max(d.ScrollOffset-float64(rl.GetMouseWheelMove())*20, 0)
	}
	return over
}

func (d *DebugOverlay) Draw(scene Scene) {
	sh := rl.GetScreenHeight()

	if !d.bufferInitialized || d.cachedWidth != d.sidebarWidth || d.cachedHeight != sh {
		if d.bufferInitialized {
			rl.UnloadRenderTexture(d.uiBuffer)
		}
		d.uiBuffer = rl.LoadRenderTexture(int32(d.sidebarWidth), int32(sh))
		d.bufferInitialized = true
		d.cachedWidth = d.sidebarWidth
		d.cachedHeight = sh
	}

	if d.ShowBoundingBoxes {
		d.drawBoundingBoxes(scene.Boxes)
	}

	d.drawPanel(scene, sh)

	sourceRec := rl.NewRectangle(0, 0, float32(d.sidebarWidth), -float32(sh))
	destRec := rl.NewRectangle(0, 0, float32(d.sidebarWidth), float32(sh))
	rl.DrawTexturePro(d.uiBuffer.Texture, sourceRec, destRec, rl.NewVector2(0, 0), 0, rl.White)
}

func (d *DebugOverlay) drawPanel(scene Scene, sh int) {
	utils.Scoped(func() { rl.BeginTextureMode(d.uiBuffer) }, rl.EndTextureMode, func() {
		d.drawPanelContent(scene, sh)
	})
}

func (d *DebugOverlay) drawPanelContent(scene Scene, sh int) {
	rl.ClearBackground(rl.Blank)
	rl.DrawRectangle(0, 0, int32(d.sidebarWidth), int32(sh), rl.NewColor(0, 0, 0, 200))

	d.drawTabs()

	contentY := d.tabHeight + d.lineHeight/2 - int(d.ScrollOffset)
	switch d.ActiveTab {
	case TabSections:
		d.drawSections(scene, contentY)
	case TabParticles:
		d.drawParticles(scene, contentY)
	case TabPerformance:
		d.drawPerformance(scene, contentY)
	}
}

func (d *DebugOverlay) drawTabs() {
	tabWidth := d.sidebarWidth / len(tabNames)

	for i, name := range tabNames {
		color := rl.NewColor(100, 100, 100, 255)
		if d.ActiveTab == DebugTab(i) {
			color = rl.NewColor(150, 150, 150, 255)
		}

		x := int32(i * tabWidth)
		rl.DrawRectangle(x, 0, int32(tabWidth), int32(d.tabHeight), color)
		d.DrawText(name, x+10, int32(float64(d.tabHeight)*0.3), int32(d.fontHeight), rl.White)
	}
}

func (d *DebugOverlay) DrawText(text string, x, y int32, fontSize int32, color rl.Color) {
	if d.font.BaseSize > 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(float32(x), float32(y)), float32(fontSize), 1, color)
	} else {
		rl.DrawText(text, x, y, fontSize, color)
	}
}

func (d *DebugOverlay) ui(startY int) *UIContext {
	return NewUIContext(10, startY, d.lineHeight, d.fontHeight, d.font, d.mouseX, d.mouseY, d.clicked)
}

func (d *DebugOverlay) Unload() {
	if d.bufferInitialized {
		rl.UnloadRenderTexture(d.uiBuffer)
		d.bufferInitialized = false
	}
	if d.font.BaseSize > 0 {
		rl.UnloadFont(d.font)
	}
}
