package utils

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T, level LogLevel) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLevel := CurrentLevel
	log.SetOutput(&buf)
	CurrentLevel = level
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		CurrentLevel = prevLevel
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLog(t, LevelInfo)

	Debug("hidden %d", 1)
	Info("shown %d", 2)
	Error("failed: %s", "boom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
	if !strings.Contains(out, "[INFO]") || !strings.Contains(out, "shown 2") {
		t.Fatalf("info line missing: %q", out)
	}
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "failed: boom") {
		t.Fatalf("error line missing: %q", out)
	}
}

func TestRaylibLogCallback(t *testing.T) {
	buf := captureLog(t, LevelWarn)

	RaylibLogCallback(3, "TEXTURE: loaded")
	if buf.Len() != 0 {
		t.Fatalf("raylib info should be filtered at warn level: %q", buf.String())
	}

	// percent signs in raylib text must not be treated as verbs
	RaylibLogCallback(4, "FPS at 100%")
	out := buf.String()
	if !strings.Contains(out, "[RAYLIB]") || !strings.Contains(out, "FPS at 100%") {
		t.Fatalf("warning not routed: %q", out)
	}
	if strings.Contains(out, "%!") {
		t.Fatalf("format verb mangled: %q", out)
	}
}
