package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestTickWaitsForInterval(t *testing.T) {
	buf := captureLog(t)
	p := NewProfiler(WithInterval(time.Hour))
	for range 10 {
		if p.Tick() {
			t.Fatal("Tick logged before the interval elapsed")
		}
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}

func TestTickAppendsStatus(t *testing.T) {
	buf := captureLog(t)
	calls := 0
	p := NewProfiler(WithInterval(0), WithStatus(func() string {
		calls++
		return "zoom=0.50"
	}))

	if !p.Tick() {
		t.Fatal("Tick did not log with a zero interval")
	}
	if calls != 1 {
		t.Errorf("status called %d times, want 1", calls)
	}
	out := buf.String()
	if !strings.Contains(out, "[Profiler] TPS:") || !strings.Contains(out, "| zoom=0.50") {
		t.Errorf("log line = %q", out)
	}
}
