package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) drawSections(scene Scene, startY int) {
	ui := d.ui(startY)

	if ui.Checkbox("Show Bounding Boxes", d.ShowBoundingBoxes) {
		d.ShowBoundingBoxes = !d.ShowBoundingBoxes
	}
	ui.Separator()

	vp := scene.Viewport
	ui.Header("Viewport:")
	ui.IndentLabel(fmt.Sprintf("Scroll: %.0f / %.0f", vp.ScrollY, max(scene.DocHeight-vp.Height, 0)), 10)
	ui.IndentLabel(fmt.Sprintf("Height: %.0f units (scale %.2fx)", vp.Height, scene.Scale), 10)

	mode := "per frame"
	if !scene.Coalesce {
		mode = "per event"
	}
	ui.IndentLabel(fmt.Sprintf("Updates: %s, %d passes", mode, scene.Passes), 10)
	if scene.Pending {
		ui.IndentLabel("Update pending", 10)
	}
	ui.IndentLabel(fmt.Sprintf("Timed reveals queued: %d", scene.Scheduled), 10)
	ui.Separator()

	ui.Header(fmt.Sprintf("Sections (%d):", len(scene.Sections)))
	for _, st := range scene.Sections {
		if !st.Present {
			ui.ColorLabel(fmt.Sprintf("%s (missing)", st.ID), 10, rl.Gray)
			continue
		}
		state := ""
		if st.InView {
			state = " in view"
		}
		ui.Bar(fmt.Sprintf("%s %.2f%s", st.ID, st.Progress, state), st.Progress, 120)
	}
}
