package convert

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/mauserzjeh/dxt"

	"cinematic-landing/internal/utils"
)

const (
	ddsMagic      = "DDS "
	ddsHeaderSize = 128
)

// DecodeImage decodes element artwork by file name: PNG and JPEG through the
// image package, DDS (DXT1/DXT5) through dxt. A trailing .lz4 means the
// payload is an LZ4 frame.
func DecodeImage(name string, data []byte) (image.Image, error) {
	if strings.HasSuffix(name, ".lz4") {
		var err error
		if data, err = DecompressLZ4(data); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		name = strings.TrimSuffix(name, ".lz4")
	}

	if strings.ToLower(filepath.Ext(name)) == ".dds" {
		img, err := decodeDDS(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return img, nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	utils.Debug("Decoded %s image %s (%dx%d)", format, name, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

func decodeDDS(data []byte) (image.Image, error) {
	if len(data) < ddsHeaderSize || string(data[:4]) != ddsMagic {
		return nil, fmt.Errorf("invalid DDS magic")
	}
	height := binary.LittleEndian.Uint32(data[12:16])
	width := binary.LittleEndian.Uint32(data[16:20])
	fourCC := string(data[84:88])
	payload := data[ddsHeaderSize:]

	utils.Debug("    DDS %s, size %dx%d", fourCC, width, height)

	blocks := int((width+3)/4) * int((height+3)/4)
	var pix []byte
	var err error
	switch fourCC {
	case "DXT1":
		if len(payload) < blocks*8 {
			return nil, fmt.Errorf("DXT1 payload too short: %d bytes", len(payload))
		}
		pix, err = dxt.DecodeDXT1(payload, uint(width), uint(height))
	case "DXT5":
		if len(payload) < blocks*16 {
			return nil, fmt.Errorf("DXT5 payload too short: %d bytes", len(payload))
		}
		pix, err = dxt.DecodeDXT5(payload, uint(width), uint(height))
	default:
		return nil, fmt.Errorf("unsupported DDS format %q", fourCC)
	}
	if err != nil {
		return nil, err
	}

	return &image.RGBA{
		Pix:    pix,
		Stride: int(width * 4),
		Rect:   image.Rect(0, 0, int(width), int(height)),
	}, nil
}
