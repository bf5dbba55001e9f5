package replay

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/config"
	"github.com/Carmen-Shannon/oxy-dolly/engine/camera"
	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

func loadFixture(t *testing.T) *Recording {
	t.Helper()
	rec, err := Load(filepath.Join("testdata", "pinch_and_pan.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return rec
}

func TestLoadFixture(t *testing.T) {
	rec := loadFixture(t)
	if rec.Name != "pinch-and-pan" || len(rec.Frames) != 14 {
		t.Fatalf("recording = %q with %d frames", rec.Name, len(rec.Frames))
	}
	cfg, err := rec.ControllerConfig()
	if err != nil {
		t.Fatalf("ControllerConfig failed: %v", err)
	}
	if !cfg.ScrollZoomEnabled || cfg.MaxForwardOffset != config.DefaultConfig().MaxForwardOffset {
		t.Errorf("config = %+v, want defaults with scroll zoom on", cfg)
	}

	s, err := rec.Frames[1].Sample()
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if s.Count() != 2 || s.Contacts[1].Phase != input.PhaseMoved || s.Contacts[1].PreviousPosition != (mgl32.Vec2{500, 300}) {
		t.Errorf("frame 1 sample = %+v", s)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"malformed", `{"name": `, "failed to parse recording"},
		{"empty viewport", `{"camera": {"forward": [0, 0, 1]}}`, "viewport"},
		{"zero forward", `{"camera": {"width": 10, "height": 10}}`, "forward"},
		{"bad phase", `{"camera": {"forward": [0, 0, 1], "width": 10, "height": 10},
			"frames": [{"dt": 0.1, "contacts": [{"id": 0, "phase": "Hover"}]}]}`, "unknown phase"},
		{"bad config", `{"camera": {"forward": [0, 0, 1], "width": 10, "height": 10},
			"config": {"max_forward_offset": -1}}`, "max_forward_offset"},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.doc))
		if err == nil {
			t.Errorf("%s: Parse succeeded, want error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestRunFixtureHoldsInvariants(t *testing.T) {
	rec := loadFixture(t)
	runner := NewRunner(WithWorkers(2))

	results := runner.Run([]*Recording{rec, rec, rec})
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, res := range results {
		if !res.Passed() {
			t.Fatalf("%s failed: err=%v violations=%v", res.Name, res.Err, res.Violations)
		}
		if res.Ticks != len(rec.Frames) {
			t.Errorf("Ticks = %d, want %d", res.Ticks, len(rec.Frames))
		}
	}
	if results[0].Position != results[2].Position {
		t.Errorf("replays diverged: %v vs %v", results[0].Position, results[2].Position)
	}

	// The pinch dollies forward by 0.4, the scroll backs off by 1.
	if got := results[0].State.TargetZoomOffset; got != 0 {
		t.Errorf("final TargetZoomOffset = %v, want 0", got)
	}

	// The runner reuses its pool.
	if again := runner.Run([]*Recording{rec}); !again[0].Passed() || again[0].Position != results[0].Position {
		t.Errorf("second run = %+v", again[0])
	}
}

func TestRunFlagsRecordingErrors(t *testing.T) {
	bad := &Recording{
		Name:   "bad",
		Camera: CameraSetup{Forward: [3]float32{0, 0, 1}, Width: 10, Height: 10},
		Frames: []Frame{{DeltaTime: 0.1, Contacts: []FrameContact{{Phase: "Hover"}}}},
	}
	res := NewRunner(WithWorkers(1)).Run([]*Recording{bad})[0]
	if res.Err == nil || res.Passed() {
		t.Errorf("result = %+v, want an error", res)
	}
}

func TestCheckTickFlagsViolations(t *testing.T) {
	cfg := config.DefaultConfig()
	tests := []struct {
		name    string
		check   tickCheck
		wantMsg string
	}{
		{
			name: "zoom out of range",
			check: tickCheck{
				after:    camera.CameraState{CurrentZoomOffset: 4},
				position: mgl32.Vec3{0, 1, 0},
			},
			wantMsg: "current zoom offset",
		},
		{
			name:    "position below floor",
			check:   tickCheck{position: mgl32.Vec3{0, 0.1, 0}},
			wantMsg: "below floor",
		},
		{
			name: "panning with two contacts",
			check: tickCheck{
				sample:   input.Sample{Contacts: make([]input.Contact, 2)},
				after:    camera.CameraState{IsPanning: true, TargetZoomOffset: 1},
				position: mgl32.Vec3{0, 1, 0},
			},
			wantMsg: "panning with 2 contacts",
		},
		{
			name: "empty tick moved target",
			check: tickCheck{
				after:    camera.CameraState{TargetZoomOffset: 1},
				position: mgl32.Vec3{0, 1, 0},
			},
			wantMsg: "empty tick changed targets",
		},
	}

	for _, tt := range tests {
		tt.check.cfg = cfg
		violations := checkTick(tt.check)
		found := false
		for _, v := range violations {
			if strings.Contains(v.Message, tt.wantMsg) {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: violations %v do not mention %q", tt.name, violations, tt.wantMsg)
		}
	}
}

func TestRecorderSnapshotReplays(t *testing.T) {
	cam := camera.NewCamera(
		camera.WithPosition(0, 2, 0),
		camera.WithForward(0, -0.6, 0.8),
		camera.WithViewport(800, 600),
	)
	cfg := config.DefaultConfig()
	r, err := NewRecorder("live", cam, cfg)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}

	tracker := input.NewTracker()
	tracker.Press(0, mgl32.Vec2{300, 300})
	tracker.Press(1, mgl32.Vec2{500, 300})
	r.Record(0.016, tracker.Sample())
	tracker.Move(0, mgl32.Vec2{330, 300})
	tracker.Move(1, mgl32.Vec2{470, 300})
	r.Record(0.016, tracker.Sample())
	r.Record(0.016, input.Sample{})

	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}

	path := filepath.Join(t.TempDir(), "live.json")
	if err := r.Snapshot().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	rec, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if rec.Camera.Width != 800 || !near(rec.Camera.FovDegrees, 45) {
		t.Errorf("camera setup = %+v", rec.Camera)
	}

	res := NewRunner(WithWorkers(1)).Run([]*Recording{rec})[0]
	if !res.Passed() {
		t.Fatalf("replay failed: err=%v violations=%v", res.Err, res.Violations)
	}
	if got := res.State.TargetZoomOffset; !near(got, 0.6) {
		t.Errorf("TargetZoomOffset = %v, want 0.6", got)
	}
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-3 && d > -1e-3
}
