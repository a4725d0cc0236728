package bot

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCountdownTicksOncePerSecond(t *testing.T) {
	var buf bytes.Buffer
	var slept []time.Duration

	c := NewCountdown(&buf)
	c.sleep = func(d time.Duration) { slept = append(slept, d) }

	c.Wait(3 * time.Second)

	if len(slept) != 3 {
		t.Fatalf("Expected 3 sleeps, got %d", len(slept))
	}
	for _, d := range slept {
		if d != time.Second {
			t.Errorf("Expected 1s sleep, got %v", d)
		}
	}

	out := buf.String()
	for _, want := range []string{
		"Waiting 3 seconds to continue the loop",
		"Waiting 2 seconds to continue the loop",
		"Waiting 1 seconds to continue the loop",
		"Waiting 0 seconds to continue the loop",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got %q", want, out)
		}
	}
}

func TestCountdownZeroReturnsImmediately(t *testing.T) {
	var buf bytes.Buffer
	c := NewCountdown(&buf)
	c.sleep = func(time.Duration) { t.Fatal("Expected no sleep") }

	c.Wait(0)
	c.Wait(500 * time.Millisecond)

	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestPrintBannerWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	PrintBanner(&buf)

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("Expected no ANSI codes with NO_COLOR set")
	}
	if !strings.Contains(out, "TSUBASA BOT") {
		t.Errorf("Expected banner title, got %q", out)
	}
}
