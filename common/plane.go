package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line starting at Origin and extending along Direction.
// Direction is expected to be unit length; use NewRay to normalize it.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// NewRay creates a ray with a normalized direction. A zero direction is kept as-is,
// which makes every Plane.Raycast against it fail.
//
// Parameters:
//   - origin: world-space start point
//   - direction: world-space direction, any length
//
// Returns:
//   - Ray: the constructed ray
func NewRay(origin, direction mgl32.Vec3) Ray {
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}
	return Ray{Origin: origin, Direction: direction}
}

// Point returns the point at the given distance along the ray.
//
// Parameters:
//   - distance: distance from the origin along Direction
//
// Returns:
//   - mgl32.Vec3: world-space point
func (r Ray) Point(distance float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(distance))
}

// Plane represents a plane in 3D space using the equation: n·p + d = 0
// where n is the unit normal and d is the signed distance from origin.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// NewPlane creates a plane from a normal and any point lying on it.
//
// Parameters:
//   - normal: plane normal, normalized internally
//   - point: a world-space point on the plane
//
// Returns:
//   - Plane: the constructed plane
func NewPlane(normal, point mgl32.Vec3) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Distance: -n.Dot(point)}
}

// HorizontalPlane returns an upward-facing plane at the given world height.
//
// Parameters:
//   - height: Y coordinate of the plane
//
// Returns:
//   - Plane: plane with normal (0, 1, 0)
func HorizontalPlane(height float32) Plane {
	return NewPlane(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, height, 0})
}

// Raycast intersects a ray with the plane.
// The intersection fails when the ray is parallel to the plane or points away from it.
//
// Parameters:
//   - r: the ray to test
//
// Returns:
//   - float32: distance along the ray to the hit point (only meaningful when ok is true)
//   - bool: true if the ray hits the plane in front of its origin
func (p Plane) Raycast(r Ray) (float32, bool) {
	vdot := r.Direction.Dot(p.Normal)
	ndot := -r.Origin.Dot(p.Normal) - p.Distance
	if Approximately(vdot, 0) {
		return 0, false
	}
	enter := ndot / vdot
	return enter, enter > 0
}

// Intersect returns the world-space hit point of a ray against the plane.
//
// Parameters:
//   - r: the ray to test
//
// Returns:
//   - mgl32.Vec3: the hit point, zero when ok is false
//   - bool: true if the ray hits the plane in front of its origin
func (p Plane) Intersect(r Ray) (mgl32.Vec3, bool) {
	enter, ok := p.Raycast(r)
	if !ok {
		return mgl32.Vec3{}, false
	}
	return r.Point(enter), true
}
