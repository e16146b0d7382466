package utils

import (
	"strings"
	"testing"
)

func TestRecoverLogsPanic(t *testing.T) {
	buf := captureLog(t, LevelError)

	if !Recover("Frame update", func() {}) {
		t.Fatal("clean run reported as failed")
	}
	if Recover("Frame update", func() { panic("boom") }) {
		t.Fatal("panic reported as success")
	}
	out := buf.String()
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "Frame update failed: boom") {
		t.Fatalf("panic not logged: %q", out)
	}
}

func TestScopedEndsAfterPanic(t *testing.T) {
	captureLog(t, LevelError)

	var calls []string
	begin := func() { calls = append(calls, "begin") }
	end := func() { calls = append(calls, "end") }

	Recover("draw", func() {
		Scoped(begin, end, func() {
			calls = append(calls, "body")
			panic("mid-frame")
		})
	})
	Scoped(begin, end, func() { calls = append(calls, "body") })

	want := "begin body end begin body end"
	if got := strings.Join(calls, " "); got != want {
		t.Fatalf("calls = %q, want %q", got, want)
	}
}
