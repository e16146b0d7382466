package scroll

// Cinematic is the full landing page: hero parallax, app preview, location
// map, group memories and gallery.
func Cinematic() []SectionConfig {
	return []SectionConfig{
		{
			Section: "hero",
			Driver:  DriveScroll,
			Rules: []Rule{
				{Kind: KindMotion, Target: "hero-bg-image", Motion: &Motion{
					TranslateY: ByScroll(0.5),
					Scale:      ByProgress(1, 0.3),
				}},
				{Kind: KindMotion, Target: "hero-overlay", Motion: &Motion{
					Opacity: ByProgress(1, -0.6),
				}},
				{Kind: KindMotion, Target: "fog-layer", Motion: &Motion{
					TranslateY: ByScroll(0.2),
					Opacity:    ByProgress(0.6, -0.4),
				}},
				{Kind: KindMotion, Target: "hero-content-centered", Motion: &Motion{
					TranslateY: ByScroll(0.3),
					Opacity:    ByProgress(1, -1.8),
				}},
			},
		},
		{
			Section: "app-preview",
			Driver:  DriveElement,
			Rules: []Rule{
				{Kind: KindMotion, Target: "phone-mockup", Gate: Gate(0.3), Motion: &Motion{
					Scale:   ByProgress(0.95, 0.05),
					RotateY: ByProgress(0, 8),
				}},
				{Kind: KindReveal, Target: "app-preview-right", Gate: Gate(0.3)},
				{Kind: KindTimed, Target: "feature-block", Gate: Gate(0.4), Settle: true,
					Stagger: Stagger{Step: 0.15}},
			},
		},
		{
			Section: "location",
			Driver:  DriveElement,
			Rules: []Rule{
				{Kind: KindReveal, Target: "section-title", Gate: Gate(0.2)},
				{Kind: KindReveal, Target: "section-subtitle", Gate: Gate(0.2)},
				{Kind: KindReveal, Target: "map-container", Gate: Gate(0.3)},
				{Kind: KindProgress, Target: "map-pin-wrapper", Gate: Gate(0.3),
					Stagger: Stagger{Base: 0.3}},
				{Kind: KindMotion, Target: "pointer-item", Gate: Gate(0.5), Motion: &Motion{
					TranslateY: ByProgress(0, 10),
					Index:      IndexMod{Alternate: true},
				}},
			},
		},
		{
			Section: "group",
			Driver:  DriveElement,
			Rules: []Rule{
				{Kind: KindReveal, Target: "group-text", Gate: Gate(0.3)},
				{Kind: KindReveal, Target: "group-cards-wrapper", Gate: Gate(0.3)},
				{Kind: KindTimed, Target: "memory-card", Gate: Gate(0.4), Settle: true,
					Stagger: Stagger{Step: 0.15}},
			},
		},
		{
			Section: "gallery",
			Driver:  DriveElement,
			Rules: []Rule{
				{Kind: KindReveal, Target: "section-title", Gate: Gate(0.2)},
				{Kind: KindReveal, Target: "section-subtitle", Gate: Gate(0.2)},
				{Kind: KindProgress, Target: "gallery-item", Gate: Gate(0.2), RotationVar: true,
					Stagger: Stagger{Base: 0.1, Step: 0.08}},
				{Kind: KindMotion, Target: "gallery-item", Gate: Gate(0.3), Motion: &Motion{
					Scale:            Const(1),
					TranslateY:       ByProgress(0, 50),
					Index:            IndexMod{Cycle: 3, Step: 0.02},
					DeclaredRotation: true,
				}},
			},
		},
	}
}

// Classic is the lighter page variant: hero parallax and plain fade-in
// reveals, without the device mockup or gallery parallax.
func Classic() []SectionConfig {
	return []SectionConfig{
		{
			Section: "hero",
			Driver:  DriveScroll,
			Rules: []Rule{
				{Kind: KindMotion, Target: "hero-bg-image", Motion: &Motion{
					TranslateY: ByScroll(0.5),
				}},
				{Kind: KindMotion, Target: "hero-content-centered", Motion: &Motion{
					TranslateY: ByScroll(0.3),
					Opacity:    ByProgress(1, -1.5),
				}},
			},
		},
		{
			Section: "app-preview",
			Driver:  DriveElement,
			Rules: []Rule{
				{Kind: KindReveal, Target: "app-preview-right", Gate: Gate(0.2)},
				{Kind: KindProgress, Target: "feature-block", Gate: Gate(0.2), Settle: true,
					Stagger: Stagger{Base: 0.2, Step: 0.1}},
			},
		},
		{
			Section: "gallery",
			Driver:  DriveElement,
			Rules: []Rule{
				{Kind: KindReveal, Target: "section-title", Gate: Gate(0.2)},
				{Kind: KindProgress, Target: "gallery-item", Gate: Gate(0.2), RotationVar: true,
					Stagger: Stagger{Base: 0.1, Step: 0.08}},
			},
		},
	}
}

// Preset looks up a named section configuration.
func Preset(name string) ([]SectionConfig, bool) {
	switch name {
	case "", "cinematic":
		return Cinematic(), true
	case "classic":
		return Classic(), true
	}
	return nil, false
}
