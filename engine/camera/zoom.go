package camera

import (
	"github.com/Carmen-Shannon/oxy-dolly/common"
	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

// zoomController turns pinch and scroll deltas into the forward dolly offset.
type zoomController struct {
	maxForwardOffset  float32
	pinchSensitivity  float32
	direction         PinchDirection
	scrollEnabled     bool
	scrollSensitivity float32
	lerpSpeed         float32
}

// pinchDelta is the zoom change implied by two contacts moving between ticks.
func (z zoomController) pinchDelta(a, b input.Contact) float32 {
	previousDistance := a.PreviousPosition.Sub(b.PreviousPosition).Len()
	currentDistance := a.Position.Sub(b.Position).Len()
	delta := (previousDistance - currentDistance) * z.pinchSensitivity
	if z.direction == PinchOutZoomsIn {
		delta = -delta
	}
	return delta
}

// scrollDelta is the zoom change implied by the scroll axis, or zero when scroll zoom is off.
func (z zoomController) scrollDelta(scroll float32) float32 {
	if !z.scrollEnabled {
		return 0
	}
	return scroll * z.scrollSensitivity
}

// apply adds a delta to the target offset, clamped to [0, maxForwardOffset].
// It reports false, leaving the state untouched, for a negligible delta.
func (z zoomController) apply(state *CameraState, delta float32) bool {
	if common.Approximately(delta, 0) {
		return false
	}
	state.TargetZoomOffset = common.Clamp(state.TargetZoomOffset+delta, 0, z.maxForwardOffset)
	return true
}

// smooth moves the current offset toward the target.
func (z zoomController) smooth(state *CameraState, deltaTime float32) {
	t := common.LerpFactor(z.lerpSpeed, deltaTime)
	current := common.Lerp(state.CurrentZoomOffset, state.TargetZoomOffset, t)
	state.CurrentZoomOffset = common.Clamp(current, 0, z.maxForwardOffset)
}
