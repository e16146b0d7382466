package scroll

// Rect is an axis-aligned box. Layout boxes returned by Geometry are in
// document space; ClientRect shifts them into viewport space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) MiddleY() float64 { return r.Y + r.Height/2 }

// Viewport is the scroll state the engine owns.
type Viewport struct {
	ScrollY float64
	Height  float64
}

// ClientRect converts a document-space box into viewport coordinates.
func (vp Viewport) ClientRect(layout Rect) Rect {
	layout.Y -= vp.ScrollY
	return layout
}

// Geometry answers layout queries for page elements.
type Geometry interface {
	BoundingBox(id string) (Rect, bool)
}

// DefaultThreshold is the visible fraction InView uses when none is given.
const DefaultThreshold = 0.1

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Progress maps a viewport-relative box to [0,1]: 0 with its middle on the
// viewport bottom, 1 with its middle on the top.
func Progress(client Rect, viewportHeight float64) float64 {
	if viewportHeight <= 0 {
		return 0
	}
	return clamp01(1 - client.MiddleY()/viewportHeight)
}

// Visible reports whether at least threshold of the box height lies inside
// the viewport. Boxes without height, or without any visible part, are never
// visible.
func Visible(client Rect, viewportHeight, threshold float64) bool {
	if client.Height <= 0 {
		return false
	}
	visibleHeight := min(client.Bottom(), viewportHeight) - max(client.Top(), 0)
	if visibleHeight <= 0 {
		return false
	}
	return visibleHeight/client.Height >= threshold
}

// ElementProgress returns the progress of element id, or 0 when it is absent.
func ElementProgress(g Geometry, id string, vp Viewport) float64 {
	if g == nil {
		return 0
	}
	layout, ok := g.BoundingBox(id)
	if !ok {
		return 0
	}
	return Progress(vp.ClientRect(layout), vp.Height)
}

// InView reports whether element id is visible past threshold. Absent
// elements are not in view.
func InView(g Geometry, id string, vp Viewport, threshold float64) bool {
	if g == nil {
		return false
	}
	layout, ok := g.BoundingBox(id)
	if !ok {
		return false
	}
	return Visible(vp.ClientRect(layout), vp.Height, threshold)
}
