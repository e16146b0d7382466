package engine2D

import (
	"os"
	"path/filepath"

	"cinematic-landing/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 24

// TextCache loads one font face per pixel size.
type TextCache struct {
	fontPath string
	fonts    map[int32]rl.Font
}

// NewTextCache uses fontPath when it exists, else the first TTF under
// assets/fonts, else raylib's built-in font.
func NewTextCache(fontPath string) *TextCache {
	if fontPath != "" {
		fontPath = utils.ResolveAssetPath(fontPath)
	}
	if _, err := os.Stat(fontPath); fontPath == "" || err != nil {
		fontPath = ""
		files, _ := filepath.Glob(filepath.Join("assets", "fonts", "*.ttf"))
		if len(files) > 0 {
			fontPath = files[0]
		} else {
			utils.Warn("No fonts found in assets/fonts, using the raylib default")
		}
	}
	return &TextCache{fontPath: fontPath, fonts: make(map[int32]rl.Font)}
}

func (tc *TextCache) font(size int32) rl.Font {
	if tc.fontPath == "" {
		return rl.GetFontDefault()
	}
	if font, ok := tc.fonts[size]; ok {
		return font
	}
	font := rl.LoadFontEx(tc.fontPath, size, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	tc.fonts[size] = font
	return font
}

// Draw renders text centred on center, rotated by rotation degrees.
func (tc *TextCache) Draw(text string, center rl.Vector2, size float32, rotation float32, tint rl.Color) {
	if text == "" {
		return
	}
	if size <= 0 {
		size = defaultFontSize
	}
	font := tc.font(int32(size + 0.5))
	measured := rl.MeasureTextEx(font, text, size, 1)
	origin := rl.NewVector2(measured.X/2, measured.Y/2)
	rl.DrawTextPro(font, text, center, origin, rotation, size, 1, tint)
}

func (tc *TextCache) Unload() {
	for size, font := range tc.fonts {
		rl.UnloadFont(font)
		delete(tc.fonts, size)
	}
}
