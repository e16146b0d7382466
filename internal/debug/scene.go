package debug

import (
	"cinematic-landing/internal/engine2D/scroll"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scene is what the window reports to the overlay each frame.
type Scene struct {
	Viewport  scroll.Viewport
	DocHeight float64
	Scale     float64
	Coalesce  bool
	Pending   bool
	Passes    int
	Scheduled int
	Sections  []scroll.SectionStatus
	Layers    []Layer
	Boxes     []Box
	Playing   []string
}

// Layer summarises one particle layer.
type Layer struct {
	Name      string
	Kind      string
	Particles int
	Links     int
	Frames    int
}

// Box is a screen-space outline drawn when bounding boxes are on.
type Box struct {
	Label   string
	Rect    rl.Rectangle
	Visible bool
	Section bool
}
