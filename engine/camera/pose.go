package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/common"
)

// poseComposer combines the smoothed offsets into the final camera position and applies
// the hard safety clamp. It does no smoothing of its own.
type poseComposer struct {
	boundsX common.Range
	boundsZ common.Range
	minY    float32
}

func (p poseComposer) compose(state *CameraState, forward mgl32.Vec3, engaged bool) mgl32.Vec3 {
	horizontal := mgl32.Vec3{}
	if engaged {
		horizontal = state.CurrentFocusOffset
	}

	desired := state.DefaultPosition.
		Add(horizontal).
		Add(forward.Mul(state.CurrentZoomOffset))

	desired[0] = p.boundsX.Clamp(desired[0])
	desired[1] = max(desired[1], p.minY)
	desired[2] = p.boundsZ.Clamp(desired[2])
	return desired
}
