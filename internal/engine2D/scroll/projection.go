package scroll

// Projection maps document units onto window pixels. Pages are laid out at a
// fixed width and scaled to fill the window horizontally.
type Projection struct {
	Scale   float64
	OffsetX float64
}

// FitWidth scales a page of pageWidth units to fill screenWidth pixels.
func FitWidth(screenWidth int, pageWidth float64) Projection {
	if screenWidth <= 0 || pageWidth <= 0 {
		return Projection{Scale: 1}
	}
	return Projection{Scale: float64(screenWidth) / pageWidth}
}

// ViewportHeight is how many document units a window of screenHeight pixels
// shows.
func (p Projection) ViewportHeight(screenHeight int) float64 {
	if p.Scale <= 0 {
		return float64(screenHeight)
	}
	return float64(screenHeight) / p.Scale
}

// ToScreen converts a document-space box to window pixels under vp.
func (p Projection) ToScreen(layout Rect, vp Viewport) Rect {
	client := vp.ClientRect(layout)
	return Rect{
		X:      p.OffsetX + client.X*p.Scale,
		Y:      client.Y * p.Scale,
		Width:  client.Width * p.Scale,
		Height: client.Height * p.Scale,
	}
}

// ToDocument converts a window pixel position to document coordinates
// under vp.
func (p Projection) ToDocument(x, y float64, vp Viewport) (float64, float64) {
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	return (x - p.OffsetX) / scale, y/scale + vp.ScrollY
}

// ClampScroll keeps a scroll offset inside [0, documentHeight-viewportHeight].
func ClampScroll(scrollY, documentHeight, viewportHeight float64) float64 {
	limit := max(documentHeight-viewportHeight, 0)
	return min(max(scrollY, 0), limit)
}
