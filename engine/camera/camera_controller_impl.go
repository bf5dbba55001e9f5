package camera

import (
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/config"
	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

// touchControllerImpl is the single implementation of TouchController.
// It owns the CameraState exclusively; the components below are stateless
// views of the configuration that read and write it in a fixed order each tick.
type touchControllerImpl struct {
	mu *sync.Mutex

	transform    Transform
	rayCaster    RayCaster
	rayCasterSet bool

	cfg            config.Config
	pinchDirection PinchDirection
	debug          bool

	state CameraState

	projector groundPlaneProjector
	zoom      zoomController
	focus     focusController
	pan       panStateMachine
	pose      poseComposer
}

// Compile-time interface compliance check
var _ TouchController = &touchControllerImpl{}

// NewTouchController creates a controller driving the given transform.
// The transform's current position is captured as the default position.
// Unless WithRayCaster is passed, a transform that also implements RayCaster
// (such as a Camera) is used for ground-plane projection.
//
// Parameters:
//   - transform: the camera transform to drive; must not be nil
//   - options: functional options to configure the controller
//
// Returns:
//   - TouchController: the newly created controller
func NewTouchController(transform Transform, options ...TouchControllerOption) TouchController {
	if transform == nil {
		panic("camera: NewTouchController requires a non-nil Transform")
	}

	tc := &touchControllerImpl{
		mu:             &sync.Mutex{},
		transform:      transform,
		cfg:            *config.DefaultConfig(),
		pinchDirection: PinchInZoomsIn,
	}
	for _, option := range options {
		option(tc)
	}
	if !tc.rayCasterSet {
		if rc, ok := transform.(RayCaster); ok {
			tc.rayCaster = rc
		}
	}

	tc.buildComponents()
	tc.state = CameraState{DefaultPosition: transform.Position()}
	return tc
}

// buildComponents derives the tick components from the final configuration.
func (tc *touchControllerImpl) buildComponents() {
	tc.projector = newGroundPlaneProjector(tc.rayCaster, tc.cfg.FocusPlaneHeight)
	if tc.debug {
		tc.projector.logf = func(format string, args ...any) {
			log.Printf("[TouchController] projection skipped: "+format, args...)
		}
	}

	tc.zoom = zoomController{
		maxForwardOffset:  tc.cfg.MaxForwardOffset,
		pinchSensitivity:  tc.cfg.PinchSensitivity,
		direction:         tc.pinchDirection,
		scrollEnabled:     tc.cfg.ScrollZoomEnabled,
		scrollSensitivity: tc.cfg.ScrollSensitivity,
		lerpSpeed:         tc.cfg.PositionLerpSpeed,
	}
	tc.focus = focusController{
		planeHeight: tc.cfg.FocusPlaneHeight,
		lerpSpeed:   tc.cfg.FocusLerpSpeed,
		boundsX:     tc.cfg.FocusBoundsX,
		boundsZ:     tc.cfg.FocusBoundsZ,
	}
	tc.pan = panStateMachine{
		projector: tc.projector,
		focus:     tc.focus,
		threshold: tc.cfg.PanActivationThreshold,
	}
	tc.pose = poseComposer{
		boundsX: tc.cfg.FocusBoundsX,
		boundsZ: tc.cfg.FocusBoundsZ,
		minY:    tc.cfg.MinYPosition,
	}
}

func (tc *touchControllerImpl) Tick(deltaTime float32, sample input.Sample) mgl32.Vec3 {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if deltaTime < 0 {
		deltaTime = 0
	}
	forward := tc.transform.Forward()
	wasPanning := tc.state.IsPanning

	tc.handlePinch(sample)
	tc.handleScroll(sample)
	tc.pan.evaluate(&tc.state, sample)

	tc.zoom.smooth(&tc.state, deltaTime)
	engaged := tc.state.Engaged(tc.cfg.PanActivationThreshold)
	if !engaged {
		tc.state.IsPanning = false
	}
	tc.focus.smooth(&tc.state, deltaTime, engaged)

	if tc.debug && wasPanning != tc.state.IsPanning {
		log.Printf("[TouchController] panning=%v (contacts=%d, zoom=%.3f/%.3f)",
			tc.state.IsPanning, sample.Count(), tc.state.CurrentZoomOffset, tc.state.TargetZoomOffset)
	}

	position := tc.pose.compose(&tc.state, forward, engaged)
	tc.transform.SetPosition(position)
	return position
}

// handlePinch applies a two-contact pinch: zoom target, focus re-centering on the
// midpoint, and pan preemption. A negligible pinch changes nothing.
// Caller must hold the mutex.
func (tc *touchControllerImpl) handlePinch(sample input.Sample) {
	if sample.Count() != 2 {
		return
	}
	a, b := sample.Contacts[0], sample.Contacts[1]
	if !tc.zoom.apply(&tc.state, tc.zoom.pinchDelta(a, b)) {
		return
	}

	midpoint := a.Position.Add(b.Position).Mul(0.5)
	if point, ok := tc.projector.project(midpoint); ok {
		tc.focus.recenter(&tc.state, point)
	}
	tc.state.IsPanning = false
}

// handleScroll applies the auxiliary scroll axis when scroll zoom is enabled.
// Caller must hold the mutex.
func (tc *touchControllerImpl) handleScroll(sample input.Sample) {
	if tc.zoom.apply(&tc.state, tc.zoom.scrollDelta(sample.Scroll)) {
		tc.state.IsPanning = false
	}
}

func (tc *touchControllerImpl) State() CameraState {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.state
}

func (tc *touchControllerImpl) Config() config.Config {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.cfg
}

func (tc *touchControllerImpl) IsPanning() bool {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.state.IsPanning
}

func (tc *touchControllerImpl) Reset() {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.state = CameraState{DefaultPosition: tc.state.DefaultPosition}
	tc.transform.SetPosition(tc.state.DefaultPosition)
}
