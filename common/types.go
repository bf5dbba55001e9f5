// package common contains common types that are used throughout this module. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types and the scalar helpers shared by the camera and input packages.
package common

import "github.com/go-gl/mathgl/mgl32"

// Up is the world up axis. The ground plane and all focus offsets are horizontal with respect to it.
var Up = mgl32.Vec3{0, 1, 0}

// Pose is a read-only snapshot of where a camera sits and where it faces.
type Pose struct {
	// Position is the world-space camera position.
	Position mgl32.Vec3 `json:"position"`
	// Forward is the unit world-space viewing direction.
	Forward mgl32.Vec3 `json:"forward"`
}

// Viewport describes the pixel dimensions of the screen that touch coordinates refer to.
// Screen coordinates have their origin at the top-left corner, Y growing downward.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Aspect returns width / height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Empty reports whether the viewport has no drawable area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}
