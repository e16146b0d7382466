package page

import (
	"encoding/json"
	"fmt"

	"cinematic-landing/internal/engine2D/particle"
)

// FieldConfig is the connected particle canvas for a layer of the given
// size. Settings are applied over DefaultFieldConfig.
func (l *Layer) FieldConfig(width, height float64) (particle.FieldConfig, error) {
	cfg := particle.DefaultFieldConfig(width, height)
	if len(l.Settings) > 0 {
		if err := json.Unmarshal(l.Settings, &cfg); err != nil {
			return cfg, fmt.Errorf("canvas settings: %w", err)
		}
		cfg.Width, cfg.Height = width, height
	}
	cfg.Color = RGBA(l.Color, cfg.Color)
	return cfg, nil
}

// AmbientConfig is the floating-dot field for a layer, applied over
// DefaultAmbientConfig.
func (l *Layer) AmbientConfig() (particle.AmbientConfig, error) {
	cfg := particle.DefaultAmbientConfig()
	if len(l.Settings) > 0 {
		if err := json.Unmarshal(l.Settings, &cfg); err != nil {
			return cfg, fmt.Errorf("ambient settings: %w", err)
		}
	}
	cfg.Color = RGBA(l.Color, cfg.Color)
	return cfg, nil
}
