package debug

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) drawBoundingBoxes(boxes []Box) {
	for _, b := range boxes {
		col := rl.NewColor(0, 255, 255, 100)
		switch {
		case b.Section:
			col = rl.NewColor(255, 255, 0, 180)
		case b.Visible:
			col = rl.NewColor(0, 255, 0, 255)
		}
		rl.DrawRectangleLinesEx(b.Rect, 1, col)
		if b.Label != "" {
			d.DrawText(b.Label, int32(b.Rect.X)+4, int32(b.Rect.Y)+4, int32(d.fontHeight), col)
		}
	}
}
