package replay

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/config"
	"github.com/Carmen-Shannon/oxy-dolly/engine/camera"
	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

// Recorder captures a live session tick by tick so it can be replayed later.
// Record and Snapshot may be called from different goroutines.
type Recorder struct {
	mu  *sync.Mutex
	rec Recording
}

// NewRecorder starts a recording from the camera's current pose and the controller config.
//
// Parameters:
//   - name: recording name
//   - cam: the camera the session starts from
//   - cfg: the controller config in use; nil records defaults
//
// Returns:
//   - *Recorder: the new recorder
//   - error: error if the config cannot be encoded
func NewRecorder(name string, cam camera.Camera, cfg *config.Config) (*Recorder, error) {
	var raw json.RawMessage
	if cfg != nil {
		data, err := json.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to encode config: %w", err)
		}
		raw = data
	}

	pose := cam.Pose()
	vp := cam.Viewport()
	return &Recorder{
		mu: &sync.Mutex{},
		rec: Recording{
			Name:   name,
			Config: raw,
			Camera: CameraSetup{
				Position:   pose.Position,
				Forward:    pose.Forward,
				FovDegrees: mgl32.RadToDeg(cam.Fov()),
				Width:      vp.Width,
				Height:     vp.Height,
			},
		},
	}, nil
}

// Record appends one tick. Empty ticks are kept since smoothing still advances on them.
//
// Parameters:
//   - deltaTime: elapsed seconds for the tick
//   - sample: the tick input
func (r *Recorder) Record(deltaTime float32, sample input.Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec.Frames = append(r.rec.Frames, NewFrame(deltaTime, sample))
}

// Len returns the number of recorded ticks.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rec.Frames)
}

// Snapshot returns a copy of the recording so far.
//
// Returns:
//   - *Recording: the recording
func (r *Recorder) Snapshot() *Recording {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	return &rec
}
