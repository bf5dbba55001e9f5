package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/common"
)

// groundPlaneProjector intersects camera rays with the horizontal focus plane.
type groundPlaneProjector struct {
	rayCaster RayCaster
	plane     common.Plane

	// logf reports skipped projections; nil when debug logging is off.
	logf func(format string, args ...any)
}

func newGroundPlaneProjector(rc RayCaster, height float32) groundPlaneProjector {
	return groundPlaneProjector{
		rayCaster: rc,
		plane:     common.HorizontalPlane(height),
	}
}

// available reports whether a ray caster is attached at all.
func (p groundPlaneProjector) available() bool {
	return p.rayCaster != nil
}

// project returns the focus-plane point under a screen position.
// It fails when there is no ray caster, no ray for the current pose, or the ray
// is parallel to or pointing away from the plane.
func (p groundPlaneProjector) project(screen mgl32.Vec2) (mgl32.Vec3, bool) {
	if p.rayCaster == nil {
		return mgl32.Vec3{}, false
	}
	ray, ok := p.rayCaster.ScreenPointToRay(screen)
	if !ok {
		p.log("no ray for screen point (%.1f, %.1f)", screen.X(), screen.Y())
		return mgl32.Vec3{}, false
	}
	point, ok := p.plane.Intersect(ray)
	if !ok {
		p.log("ray through (%.1f, %.1f) misses the focus plane", screen.X(), screen.Y())
		return mgl32.Vec3{}, false
	}
	return point, true
}

func (p groundPlaneProjector) log(format string, args ...any) {
	if p.logf != nil {
		p.logf(format, args...)
	}
}
