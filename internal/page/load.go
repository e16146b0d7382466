package page

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierrec/lz4/v4"

	"cinematic-landing/internal/convert"
	"cinematic-landing/internal/engine2D/scroll"
	"cinematic-landing/internal/utils"
)

// BundlePage is the entry a page bundle keeps its description under.
const BundlePage = "page.json"

type imageSource interface {
	Open(name string) ([]byte, error)
}

// Parse decodes a page description.
func Parse(data []byte) (*Page, error) {
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	for i, s := range p.Sections {
		if s.ID == "" {
			return nil, fmt.Errorf("parse page: section %d has no id", i)
		}
	}
	return &p, nil
}

// Load reads a page from a .json file, an LZ4-framed .lz4 file or a .pkg
// bundle.
func Load(path string) (*Page, error) {
	utils.Info("Loading page: %s", path)

	var (
		p   *Page
		err error
	)
	switch {
	case strings.HasSuffix(path, ".pkg"):
		p, err = loadBundle(path)
	case strings.HasSuffix(path, ".lz4"):
		p, err = loadCompressed(path)
	default:
		var data []byte
		data, err = os.ReadFile(path)
		if err == nil {
			p, err = Parse(data)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load page %s: %w", path, err)
	}

	p.Dir = filepath.Dir(path)
	utils.Info("Page %q: %d sections", p.General.Title, len(p.Sections))
	return p, nil
}

func loadCompressed(path string) (*Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(lz4.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	return Parse(data)
}

func loadBundle(path string) (*Page, error) {
	b, err := convert.OpenBundle(path)
	if err != nil {
		return nil, err
	}

	entry := BundlePage
	if _, ok := b.Lookup(entry); !ok {
		entry = ""
		for _, n := range b.Names() {
			if strings.HasSuffix(strings.TrimSuffix(n, ".lz4"), ".json") {
				entry = n
				break
			}
		}
		if entry == "" {
			return nil, fmt.Errorf("bundle has no page description")
		}
	}

	data, err := b.Open(entry)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data)
	if err != nil {
		return nil, err
	}
	p.source = b
	return p, nil
}

// SectionConfigs is the page's own animation table, or the preset its
// variant names.
func (p *Page) SectionConfigs() ([]scroll.SectionConfig, error) {
	if p.Animations != nil {
		return p.Animations, nil
	}
	cfg, ok := scroll.Preset(p.General.Variant)
	if !ok {
		return nil, fmt.Errorf("unknown page variant %q", p.General.Variant)
	}
	return cfg, nil
}

// ReadAsset returns the bytes of an image or sound the page refers to, and
// the name they were found under. Bundled pages look inside the bundle
// first.
func (p *Page) ReadAsset(name string) ([]byte, string, error) {
	if p.source != nil {
		if data, err := p.source.Open(name); err == nil {
			return data, name, nil
		}
	}

	path := utils.FindImageFile(name, p.Dir)
	if path == "" {
		candidate := filepath.Join(p.Dir, name)
		if _, err := os.Stat(candidate); err != nil {
			candidate = utils.ResolveAssetPath(name)
		}
		path = candidate
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("asset %s: %w", name, err)
	}
	return data, path, nil
}
