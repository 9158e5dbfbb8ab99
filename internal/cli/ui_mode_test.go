package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func withTTY(t *testing.T, tty bool) {
	t.Helper()
	prev := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = prev })
}

func TestResolveUIModeAuto(t *testing.T) {
	withTTY(t, true)
	decision, err := resolveUIMode("auto", &bytes.Buffer{})
	if err != nil || !decision.useLive {
		t.Fatalf("expected live on TTY, got %+v err=%v", decision, err)
	}

	withTTY(t, false)
	decision, err = resolveUIMode("", &bytes.Buffer{})
	if err != nil || decision.useLive {
		t.Fatalf("expected plain without TTY, got %+v err=%v", decision, err)
	}
}

func TestResolveUIModeLiveFallsBackWithoutTTY(t *testing.T) {
	withTTY(t, false)

	decision, err := resolveUIMode("live", &bytes.Buffer{})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision.useLive {
		t.Fatalf("live mode must not engage without a TTY")
	}
	if !strings.Contains(decision.warning, "not a TTY") {
		t.Fatalf("expected fallback warning, got %q", decision.warning)
	}
}

func TestResolveUIModePlainIgnoresTTY(t *testing.T) {
	withTTY(t, true)

	decision, err := resolveUIMode("plain", &bytes.Buffer{})

	if err != nil || decision.useLive {
		t.Fatalf("expected plain output, got %+v err=%v", decision, err)
	}
}

func TestResolveUIModeRejectsUnknown(t *testing.T) {
	if _, err := resolveUIMode("fancy", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestDefaultIsTerminal(t *testing.T) {
	if defaultIsTerminal(nil) {
		t.Fatalf("nil writer is not a terminal")
	}
	if defaultIsTerminal(&bytes.Buffer{}) {
		t.Fatalf("buffer is not a terminal")
	}
}
