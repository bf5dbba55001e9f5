package replay

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/config"
	"github.com/Carmen-Shannon/oxy-dolly/engine/camera"
	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

// Violation is a controller invariant that did not hold after a tick.
type Violation struct {
	Tick    int
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("tick %d: %s", v.Tick, v.Message)
}

// tickCheck is everything the invariants look at for one tick.
type tickCheck struct {
	tick     int
	cfg      *config.Config
	sample   input.Sample
	before   camera.CameraState
	after    camera.CameraState
	position mgl32.Vec3
}

// checkTick returns every invariant violated by one tick.
func checkTick(c tickCheck) []Violation {
	var out []Violation
	fail := func(format string, args ...any) {
		out = append(out, Violation{Tick: c.tick, Message: fmt.Sprintf(format, args...)})
	}

	maxOffset := c.cfg.MaxForwardOffset
	if z := c.after.CurrentZoomOffset; z < 0 || z > maxOffset {
		fail("current zoom offset %v outside [0, %v]", z, maxOffset)
	}
	if z := c.after.TargetZoomOffset; z < 0 || z > maxOffset {
		fail("target zoom offset %v outside [0, %v]", z, maxOffset)
	}

	if !c.cfg.FocusBoundsX.Contains(c.position.X()) {
		fail("position x %v outside %v", c.position.X(), c.cfg.FocusBoundsX)
	}
	if !c.cfg.FocusBoundsZ.Contains(c.position.Z()) {
		fail("position z %v outside %v", c.position.Z(), c.cfg.FocusBoundsZ)
	}
	if c.position.Y() < c.cfg.MinYPosition {
		fail("position y %v below floor %v", c.position.Y(), c.cfg.MinYPosition)
	}

	if c.after.CurrentFocusOffset.Y() != 0 || c.after.TargetFocusOffset.Y() != 0 {
		fail("focus offset has a vertical component: current %v, target %v",
			c.after.CurrentFocusOffset, c.after.TargetFocusOffset)
	}

	// A single contact can only write the focus target through a drag, which clamps.
	if c.sample.Count() == 1 && c.after.TargetFocusOffset != c.before.TargetFocusOffset {
		target := c.after.TargetFocusOffset
		if !c.cfg.FocusBoundsX.Contains(target.X()) || !c.cfg.FocusBoundsZ.Contains(target.Z()) {
			fail("dragged focus target %v outside bounds", target)
		}
	}

	if c.after.IsPanning {
		if c.sample.Count() != 1 {
			fail("panning with %d contacts", c.sample.Count())
		}
		if !c.after.Engaged(c.cfg.PanActivationThreshold) {
			fail("panning while zoom is disengaged")
		}
	}

	if c.sample.Empty() {
		if c.after.TargetZoomOffset != c.before.TargetZoomOffset || c.after.TargetFocusOffset != c.before.TargetFocusOffset {
			fail("empty tick changed targets")
		}
	}
	return out
}
