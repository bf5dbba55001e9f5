// Package replay records gesture sessions to JSON and replays them headlessly
// through fresh camera controllers, checking the controller invariants after every tick.
package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/common"
	"github.com/Carmen-Shannon/oxy-dolly/config"
	"github.com/Carmen-Shannon/oxy-dolly/engine/camera"
	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

// Recording is one gesture session: the camera it started from, an optional
// controller config, and the per-tick input.
type Recording struct {
	Name string `json:"name"`
	// Config is decoded on top of config.DefaultConfig; omitted means defaults.
	Config json.RawMessage `json:"config,omitempty"`
	Camera CameraSetup     `json:"camera"`
	Frames []Frame         `json:"frames"`
}

// CameraSetup describes the starting camera pose and projection.
type CameraSetup struct {
	Position   [3]float32 `json:"position"`
	Forward    [3]float32 `json:"forward"`
	FovDegrees float32    `json:"fov_degrees,omitempty"` // zero means 45
	Width      int        `json:"width"`
	Height     int        `json:"height"`
}

// Frame is the input of a single tick.
type Frame struct {
	DeltaTime float32        `json:"dt"`
	Scroll    float32        `json:"scroll,omitempty"`
	Contacts  []FrameContact `json:"contacts,omitempty"`
}

// FrameContact is a contact point as stored on disk. Phase is a Phase.String name.
type FrameContact struct {
	ID    int     `json:"id"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	PrevX float32 `json:"prev_x"`
	PrevY float32 `json:"prev_y"`
	Phase string  `json:"phase"`
}

const defaultFovDegrees = 45

// Load reads and validates a recording file.
//
// Parameters:
//   - path: path to the JSON recording
//
// Returns:
//   - *Recording: the decoded recording
//   - error: error if the file cannot be read or is not a valid recording
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording %s: %w", path, err)
	}
	rec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("recording %s: %w", path, err)
	}
	return rec, nil
}

// Parse decodes and validates a recording.
//
// Parameters:
//   - data: JSON document
//
// Returns:
//   - *Recording: the decoded recording
//   - error: error if the document is malformed or invalid
func Parse(data []byte) (*Recording, error) {
	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse recording: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Validate checks the camera setup, the embedded config and every frame.
//
// Returns:
//   - error: a joined error describing every problem, or nil
func (r *Recording) Validate() error {
	var errs []error
	if r.Camera.Width <= 0 || r.Camera.Height <= 0 {
		errs = append(errs, fmt.Errorf("camera viewport must be positive, got %dx%d", r.Camera.Width, r.Camera.Height))
	}
	if r.Camera.FovDegrees < 0 || r.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera fov_degrees must be in [0, 180), got %v", r.Camera.FovDegrees))
	}
	if mgl32.Vec3(r.Camera.Forward).Len() == 0 {
		errs = append(errs, errors.New("camera forward must not be zero"))
	}
	if _, err := r.ControllerConfig(); err != nil {
		errs = append(errs, err)
	}
	for i, f := range r.Frames {
		if f.DeltaTime < 0 {
			errs = append(errs, fmt.Errorf("frame %d: negative dt %v", i, f.DeltaTime))
		}
		if _, err := f.Sample(); err != nil {
			errs = append(errs, fmt.Errorf("frame %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// ControllerConfig returns the recording's controller config on top of the defaults.
//
// Returns:
//   - *config.Config: the config to replay with
//   - error: error if the embedded config is malformed or invalid
func (r *Recording) ControllerConfig() (*config.Config, error) {
	if len(r.Config) == 0 {
		return config.DefaultConfig(), nil
	}
	return config.Parse(r.Config)
}

// NewCamera builds the camera described by the setup.
//
// Returns:
//   - camera.Camera: a camera at the recorded pose
func (s CameraSetup) NewCamera() camera.Camera {
	fov := common.Coalesce(s.FovDegrees, defaultFovDegrees)
	return camera.NewCamera(
		camera.WithPosition(s.Position[0], s.Position[1], s.Position[2]),
		camera.WithForward(s.Forward[0], s.Forward[1], s.Forward[2]),
		camera.WithFov(mgl32.DegToRad(fov)),
		camera.WithViewport(s.Width, s.Height),
	)
}

// Sample converts the frame into the controller's input type.
//
// Returns:
//   - input.Sample: the tick input
//   - error: error if a contact carries an unknown phase
func (f Frame) Sample() (input.Sample, error) {
	s := input.Sample{Scroll: f.Scroll}
	for _, c := range f.Contacts {
		phase, ok := input.ParsePhase(c.Phase)
		if !ok {
			return input.Sample{}, fmt.Errorf("contact %d: unknown phase %q", c.ID, c.Phase)
		}
		s.Contacts = append(s.Contacts, input.Contact{
			ID:               c.ID,
			Position:         mgl32.Vec2{c.X, c.Y},
			PreviousPosition: mgl32.Vec2{c.PrevX, c.PrevY},
			Phase:            phase,
		})
	}
	return s, nil
}

// NewFrame converts a tick's input into its on-disk form.
//
// Parameters:
//   - deltaTime: elapsed seconds for the tick
//   - sample: the tick input
//
// Returns:
//   - Frame: the recorded frame
func NewFrame(deltaTime float32, sample input.Sample) Frame {
	f := Frame{DeltaTime: deltaTime, Scroll: sample.Scroll}
	for _, c := range sample.Contacts {
		f.Contacts = append(f.Contacts, FrameContact{
			ID:    c.ID,
			X:     c.Position.X(),
			Y:     c.Position.Y(),
			PrevX: c.PreviousPosition.X(),
			PrevY: c.PreviousPosition.Y(),
			Phase: c.Phase.String(),
		})
	}
	return f
}

// Save writes the recording as indented JSON.
//
// Parameters:
//   - path: destination file
//
// Returns:
//   - error: error if encoding or writing fails
func (r *Recording) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write recording %s: %w", path, err)
	}
	return nil
}
