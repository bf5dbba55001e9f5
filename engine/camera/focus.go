package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/common"
)

// focusController owns the two write paths into the horizontal focus offset
// and its smoothing.
type focusController struct {
	planeHeight float32
	lerpSpeed   float32
	boundsX     common.Range
	boundsZ     common.Range
}

// recenter points the focus target at a ground-plane point, measured from the default
// position flattened onto the focus plane. Not clamped: a pinch may follow the fingers
// outside the pan bounds.
func (f focusController) recenter(state *CameraState, focusPoint mgl32.Vec3) {
	reference := common.Flatten(state.DefaultPosition, f.planeHeight)
	offset := focusPoint.Sub(reference)
	offset[1] = 0
	state.TargetFocusOffset = offset
}

// drag moves the focus target against the ground-plane movement since the last pan point,
// so the ground appears to stick to the finger, then clamps it to the bounds.
func (f focusController) drag(state *CameraState, point mgl32.Vec3) {
	delta := point.Sub(state.LastPanPoint)
	delta[1] = 0

	target := state.TargetFocusOffset.Sub(delta)
	target[0] = f.boundsX.Clamp(target[0])
	target[1] = 0
	target[2] = f.boundsZ.Clamp(target[2])

	state.TargetFocusOffset = target
	state.LastPanPoint = point
}

// smooth moves the current offset toward the target while engaged, and toward zero otherwise.
func (f focusController) smooth(state *CameraState, deltaTime float32, engaged bool) {
	goal := mgl32.Vec3{}
	if engaged {
		goal = state.TargetFocusOffset
	}
	current := common.LerpVec3(state.CurrentFocusOffset, goal, common.LerpFactor(f.lerpSpeed, deltaTime))
	current[1] = 0
	state.CurrentFocusOffset = current
}
