package particle

// Render clears the surface, draws every particle, then the connection pass.
func (f *Field) Render(s Surface) {
	s.Clear()

	c := f.Config.Color
	for _, p := range f.Particles {
		s.FillCircle(p.Position, p.Radius, c, p.Opacity)
	}

	f.Links = 0
	f.EachLink(func(a, b int, distance float64) {
		alpha := LinkOpacity(distance, f.Config.LinkDistance, f.Config.LinkOpacity)
		s.StrokeLine(f.Particles[a].Position, f.Particles[b].Position, f.Config.LinkWidth, c, alpha)
		f.Links++
	})
}

// Tick is one display refresh: step then render.
func (f *Field) Tick(s Surface) {
	f.Step()
	f.Render(s)
}
