package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindImageFileTriesExtensions(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "hero.dds")
	if err := os.WriteFile(want, []byte{0}, 0o644); err != nil {
		t.Fatal(err)
	}

	if got := FindImageFile("hero", dir); got != want {
		t.Fatalf("FindImageFile(hero) = %q, want %q", got, want)
	}
	if got := FindImageFile("hero.dds", dir); got != want {
		t.Fatalf("FindImageFile(hero.dds) = %q, want %q", got, want)
	}
	if got := FindImageFile("missing", dir); got != "" {
		t.Fatalf("FindImageFile(missing) = %q, want empty", got)
	}
	if got := FindImageFile("", dir); got != "" {
		t.Fatalf("empty name resolved to %q", got)
	}
}

func TestFindPageFileDirectPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "landing.json")
	if err := os.WriteFile(p, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := FindPageFile(p); got != p {
		t.Fatalf("FindPageFile = %q, want %q", got, p)
	}
	if got := FindPageFile(filepath.Join(dir, "nope.json")); got != "" {
		t.Fatalf("missing page resolved to %q", got)
	}
}

func TestIsImageFile(t *testing.T) {
	cases := map[string]bool{
		"a.png":      true,
		"b.JPG":      true,
		"c.dds":      true,
		"c.dds.lz4":  true,
		"page.json":  false,
		"noext":      false,
		"photo.jpeg": true,
	}
	for in, want := range cases {
		if got := IsImageFile(in); got != want {
			t.Errorf("IsImageFile(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFitWindow(t *testing.T) {
	w, h := FitWindow(1920, 1080, 1280, 720, 0.75)
	if w != 1440 || h != 810 {
		t.Fatalf("FitWindow = %dx%d, want 1440x810", w, h)
	}
	w, h = FitWindow(200, 100, 1280, 720, 0.5)
	if w != 1280 || h != 720 {
		t.Fatalf("tiny screen should fall back, got %dx%d", w, h)
	}
	w, h = FitWindow(1000, 800, 1280, 720, 2)
	if w != 1000 || h != 800 {
		t.Fatalf("fraction > 1 should clamp to screen, got %dx%d", w, h)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]LogLevel{
		"debug": LevelDebug, "INFO": LevelInfo, " warn ": LevelWarn, "warning": LevelWarn, "error": LevelError,
	} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
