package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/common"
	"github.com/Carmen-Shannon/oxy-dolly/config"
	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

// Transform is the part of a camera a TouchController reads and writes.
// The controller reads Forward at the start of every tick and writes Position once per tick.
type Transform interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - position: world-space position
	SetPosition(position mgl32.Vec3)

	// Forward returns the unit viewing direction.
	//
	// Returns:
	//   - mgl32.Vec3: world-space forward direction
	Forward() mgl32.Vec3
}

// RayCaster turns a screen point into a world-space ray anchored at the current camera pose.
type RayCaster interface {
	// ScreenPointToRay casts a ray through a screen point.
	//
	// Parameters:
	//   - screen: screen position in pixels, origin at the top-left
	//
	// Returns:
	//   - common.Ray: the world-space ray
	//   - bool: false if no ray can be produced for the current pose
	ScreenPointToRay(screen mgl32.Vec2) (common.Ray, bool)
}

// PinchDirection selects which pinch motion dollies the camera forward.
type PinchDirection int

const (
	// PinchInZoomsIn moves the camera forward when the fingers move together:
	// delta = (previousDistance - currentDistance) * sensitivity.
	PinchInZoomsIn PinchDirection = iota
	// PinchOutZoomsIn moves the camera forward when the fingers spread apart:
	// delta = (currentDistance - previousDistance) * sensitivity.
	PinchOutZoomsIn
)

// CameraState is the full mutable state of a TouchController.
type CameraState struct {
	// DefaultPosition is the anchor captured when the controller was created.
	DefaultPosition mgl32.Vec3

	// CurrentZoomOffset lags TargetZoomOffset; both stay within [0, MaxForwardOffset].
	CurrentZoomOffset float32
	TargetZoomOffset  float32

	// CurrentFocusOffset lags TargetFocusOffset (or zero when zoom is disengaged).
	// Both are horizontal: Y is always zero.
	CurrentFocusOffset mgl32.Vec3
	TargetFocusOffset  mgl32.Vec3

	// IsPanning is the pan activation state.
	IsPanning bool
	// LastPanPoint is the last ground-plane hit used for drag deltas. Only meaningful while IsPanning.
	LastPanPoint mgl32.Vec3
}

// Engaged reports whether either zoom offset exceeds the pan activation threshold.
// Pan and focus effects only apply while engaged.
//
// Parameters:
//   - threshold: the pan activation threshold
//
// Returns:
//   - bool: true if current or target zoom is above the threshold
func (s CameraState) Engaged(threshold float32) bool {
	return s.CurrentZoomOffset > threshold || s.TargetZoomOffset > threshold
}

// TouchController converts pinch and drag gestures into a smoothed, bounded camera position.
// Pinch dollies the camera along its forward axis and re-centers focus under the fingers;
// a single-finger drag pans across the ground plane once zoomed in past the activation threshold.
//
// Tick must be driven from a single goroutine, once per frame.
type TouchController interface {
	// Tick runs one full update pass: pinch and scroll zoom, pan state, smoothing and
	// pose composition. The composed position is written to the Transform and returned.
	//
	// Parameters:
	//   - deltaTime: elapsed seconds since the previous tick (negative values count as zero)
	//   - sample: the gesture input for this tick
	//
	// Returns:
	//   - mgl32.Vec3: the camera position written this tick
	Tick(deltaTime float32, sample input.Sample) mgl32.Vec3

	// State returns a copy of the controller state.
	//
	// Returns:
	//   - CameraState: snapshot of the current state
	State() CameraState

	// Config returns a copy of the tuning in use.
	//
	// Returns:
	//   - config.Config: the controller configuration
	Config() config.Config

	// IsPanning reports whether a single-finger pan is active.
	//
	// Returns:
	//   - bool: the pan activation state
	IsPanning() bool

	// Reset clears all zoom, focus and pan state and moves the camera back to its default position.
	Reset()
}
