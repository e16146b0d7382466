package debug

import (
	"fmt"
	"runtime"
	"strings"

	"cinematic-landing/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) drawPerformance(scene Scene, startY int) {
	ui := d.ui(startY)

	ui.Header("Timing:")
	ui.IndentLabel(fmt.Sprintf("FPS: %.1f (measured %.1f)", float64(rl.GetFPS()), d.fps), 10)
	ui.IndentLabel(fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000), 10)

	monitor := rl.GetCurrentMonitor()
	ui.IndentLabel(fmt.Sprintf("Refresh Rate: %d Hz", rl.GetMonitorRefreshRate(monitor)), 10)

	ui.Separator()

	ui.Header("Memory Usage:")
	ui.IndentLabel(fmt.Sprintf("Allocated: %.2f MB", float64(d.memStats.Alloc)/1024/1024), 10)
	ui.IndentLabel(fmt.Sprintf("Heap Alloc: %.2f MB", float64(d.memStats.HeapAlloc)/1024/1024), 10)
	ui.IndentLabel(fmt.Sprintf("Process Total: %.2f MB", float64(d.memStats.Sys)/1024/1024), 10)

	ui.Separator()

	ui.Header("System:")
	ui.IndentLabel(fmt.Sprintf("Cores: %d", runtime.NumCPU()), 10)
	ui.IndentLabel(fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()), 10)
	ui.IndentLabel(fmt.Sprintf("OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH), 10)

	ui.Separator()

	ui.Header("Display:")
	ui.IndentLabel(fmt.Sprintf("Monitor: %s", rl.GetMonitorName(monitor)), 10)
	ui.IndentLabel(fmt.Sprintf("Monitor Native: %dx%d", d.monitorWidth, d.monitorHeight), 10)
	ui.IndentLabel(fmt.Sprintf("Window: %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight()), 10)
	if x, y, err := utils.GetGlobalMousePosition(); err == nil {
		ui.IndentLabel(fmt.Sprintf("Pointer (X11): %d, %d", x, y), 10)
	}
	ui.IndentLabel(fmt.Sprintf("UI Scale: %.2fx", d.uiScale), 10)

	ui.Separator()

	ui.Header("Audio:")
	if len(scene.Playing) == 0 {
		ui.IndentLabel("Silent", 10)
	} else {
		ui.IndentLabel(strings.Join(scene.Playing, ", "), 10)
	}
}
