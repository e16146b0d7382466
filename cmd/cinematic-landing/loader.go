package main

import (
	"cinematic-landing/internal/convert"
	"cinematic-landing/internal/page"
	"cinematic-landing/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadTextures uploads the artwork of every element that names an image.
// Elements whose image fails to load are drawn as flat boxes.
func loadTextures(p *page.Page) map[*page.Element]*rl.Texture2D {
	textures := make(map[*page.Element]*rl.Texture2D)
	cache := make(map[string]*rl.Texture2D)

	for i := range p.Sections {
		for _, e := range p.Sections[i].Elements {
			if e.Image == "" {
				continue
			}
			if tex, ok := cache[e.Image]; ok {
				if tex != nil {
					textures[e] = tex
				}
				continue
			}

			tex, err := loadTexture(p, e.Image)
			if err != nil {
				utils.Error("Failed to load texture for %s from %s: %v", e.Name, e.Image, err)
			}
			cache[e.Image] = tex
			if tex != nil {
				textures[e] = tex
			}
		}
	}
	return textures
}

func loadTexture(p *page.Page, name string) (*rl.Texture2D, error) {
	data, found, err := p.ReadAsset(name)
	if err != nil {
		return nil, err
	}
	img, err := convert.DecodeImage(found, data)
	if err != nil {
		return nil, err
	}

	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	utils.Debug("Loaded texture %s (%dx%d)", found, tex.Width, tex.Height)
	return &tex, nil
}
