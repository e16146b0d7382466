package debug

import (
	"fmt"
	"sort"
)

func (d *DebugOverlay) drawParticles(scene Scene, startY int) {
	ui := d.ui(startY)

	layers := append([]Layer(nil), scene.Layers...)
	sort.Slice(layers, func(i, j int) bool {
		return layers[i].Name < layers[j].Name
	})

	ui.Header(fmt.Sprintf("Particle Layers (%d)", len(layers)))
	ui.Separator()

	for _, l := range layers {
		ui.Label(fmt.Sprintf("%s (%s, %d particles)", l.Name, l.Kind, l.Particles))
		if l.Kind == "canvas" {
			ui.IndentLabel(fmt.Sprintf("Links: %d", l.Links), 10)
			ui.IndentLabel(fmt.Sprintf("Frames: %d", l.Frames), 10)
		}
		ui.Separator()
	}
}
