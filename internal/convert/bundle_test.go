package convert

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pierrec/lz4/v4"
)

type bundleFile struct {
	name string
	data []byte
}

func writePkgString(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.WriteString(s)
}

func buildBundle(version string, files ...bundleFile) []byte {
	var buf bytes.Buffer
	writePkgString(&buf, version)
	binary.Write(&buf, binary.LittleEndian, uint32(len(files)))
	var offset uint32
	for _, f := range files {
		writePkgString(&buf, f.name)
		binary.Write(&buf, binary.LittleEndian, offset)
		binary.Write(&buf, binary.LittleEndian, uint32(len(f.data)))
		offset += uint32(len(f.data))
	}
	for _, f := range files {
		buf.Write(f.data)
	}
	return buf.Bytes()
}

func compressLZ4(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestParseBundle(t *testing.T) {
	pageJSON := []byte(`{"general":{"title":"Wayfarian"}}`)
	raw := buildBundle("PKGV0001",
		bundleFile{"page.json", pageJSON},
		bundleFile{"images/hero.txt.lz4", compressLZ4(t, []byte("mountains at dawn"))},
	)

	b, err := ParseBundle(raw)
	if err != nil {
		t.Fatalf("ParseBundle: %v", err)
	}
	if b.Version != "PKGV0001" {
		t.Fatalf("version = %q", b.Version)
	}
	if names := b.Names(); len(names) != 2 || names[0] != "images/hero.txt.lz4" || names[1] != "page.json" {
		t.Fatalf("names = %v", names)
	}

	got, err := b.Open("page.json")
	if err != nil || !bytes.Equal(got, pageJSON) {
		t.Fatalf("Open(page.json) = %q, %v", got, err)
	}
	got, err = b.Open("images/hero.txt")
	if err != nil || string(got) != "mountains at dawn" {
		t.Fatalf("Open(hero) = %q, %v", got, err)
	}
	if _, err := b.Open("missing.png"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing entry error = %v", err)
	}
}

func TestParseBundleRejectsBadInput(t *testing.T) {
	tests := map[string][]byte{
		"empty":     nil,
		"magic":     buildBundle("ZIP1"),
		"truncated": buildBundle("PKGV0001", bundleFile{"a", []byte("abc")})[:30],
		"count":     {4, 0, 0, 0, 'P', 'K', 'G', 'V', 0xF0, 0xFF, 0xFF, 0xFF},
	}
	for name, raw := range tests {
		if _, err := ParseBundle(raw); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestBundleExtract(t *testing.T) {
	raw := buildBundle("PKGV0001",
		bundleFile{"page.json", []byte("{}")},
		bundleFile{"images/a.txt.lz4", compressLZ4(t, []byte("A"))},
	)
	b, err := ParseBundle(raw)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := b.Extract(dir); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "images", "a.txt"))
	if err != nil || string(got) != "A" {
		t.Fatalf("extracted = %q, %v", got, err)
	}

	evil, err := ParseBundle(buildBundle("PKGV0001", bundleFile{"../evil", []byte("x")}))
	if err != nil {
		t.Fatal(err)
	}
	if err := evil.Extract(dir); err == nil {
		t.Fatal("expected path escape to be rejected")
	}
}

func ddsFile(fourCC string, width, height uint32, payload []byte) []byte {
	header := make([]byte, ddsHeaderSize)
	copy(header, ddsMagic)
	binary.LittleEndian.PutUint32(header[4:], 124)
	binary.LittleEndian.PutUint32(header[12:], height)
	binary.LittleEndian.PutUint32(header[16:], width)
	binary.LittleEndian.PutUint32(header[76:], 32)
	copy(header[84:], fourCC)
	return append(header, payload...)
}

func TestDecodeDXT1(t *testing.T) {
	// one block, colour0 = pure red in RGB565, every index 0
	block := []byte{0x00, 0xF8, 0x00, 0x00, 0, 0, 0, 0}
	img, err := DecodeImage("red.dds", ddsFile("DXT1", 4, 4, block))
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, _ := img.At(2, 2).RGBA()
	if r>>8 < 248 || g>>8 > 8 || b>>8 > 8 {
		t.Fatalf("pixel = %d %d %d, want red", r>>8, g>>8, b>>8)
	}
}

func TestDecodeDDSErrors(t *testing.T) {
	if _, err := DecodeImage("x.dds", []byte("nope")); err == nil {
		t.Fatal("expected magic error")
	}
	if _, err := DecodeImage("x.dds", ddsFile("DXT3", 4, 4, make([]byte, 16))); err == nil {
		t.Fatal("expected unsupported format error")
	}
	if _, err := DecodeImage("x.dds", ddsFile("DXT5", 8, 8, make([]byte, 16))); err == nil {
		t.Fatal("expected short payload error")
	}
}

func TestDecodePNGWithLZ4(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.Set(1, 1, color.RGBA{R: 212, G: 167, B: 90, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	img, err := DecodeImage("pin.png.lz4", compressLZ4(t, buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 212 || g>>8 != 167 || b>>8 != 90 {
		t.Fatalf("pixel = %d %d %d", r>>8, g>>8, b>>8)
	}
}
