package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/common"
	"github.com/Carmen-Shannon/oxy-dolly/engine/input"
)

const rayEpsilon = 1e-2

func tiltedCamera() Camera {
	return NewCamera(
		WithPosition(0, 2, 0),
		WithForward(0, -0.6, 0.8),
		WithViewport(800, 600),
	)
}

func hitGround(t *testing.T, c Camera, screen mgl32.Vec2) mgl32.Vec3 {
	t.Helper()
	ray, ok := c.ScreenPointToRay(screen)
	if !ok {
		t.Fatalf("ScreenPointToRay(%v) failed", screen)
	}
	point, ok := common.HorizontalPlane(0).Intersect(ray)
	if !ok {
		t.Fatalf("ray %+v through %v misses the ground", ray, screen)
	}
	return point
}

func TestScreenCenterRayFollowsForward(t *testing.T) {
	c := tiltedCamera()
	ray, ok := c.ScreenPointToRay(mgl32.Vec2{400, 300})
	if !ok {
		t.Fatal("ScreenPointToRay failed for the viewport center")
	}
	if !ray.Direction.ApproxEqualThreshold(c.Forward(), 1e-3) {
		t.Errorf("center ray direction = %v, want forward %v", ray.Direction, c.Forward())
	}

	got := hitGround(t, c, mgl32.Vec2{400, 300})
	if want := (mgl32.Vec3{0, 0, 2.0 / 0.6 * 0.8}); !got.ApproxEqualThreshold(want, rayEpsilon) {
		t.Errorf("center hit = %v, want %v", got, want)
	}
}

func TestScreenAxesMapToWorld(t *testing.T) {
	c := tiltedCamera()
	center := hitGround(t, c, mgl32.Vec2{400, 300})

	tests := []struct {
		name   string
		screen mgl32.Vec2
		check  func(p mgl32.Vec3) bool
	}{
		// Looking toward +Z, screen right is world -X.
		{"left of center", mgl32.Vec2{100, 300}, func(p mgl32.Vec3) bool { return p.X() > 0 }},
		{"right of center", mgl32.Vec2{700, 300}, func(p mgl32.Vec3) bool { return p.X() < 0 }},
		{"above center is farther", mgl32.Vec2{400, 250}, func(p mgl32.Vec3) bool { return p.Z() > center.Z() }},
		{"below center is nearer", mgl32.Vec2{400, 500}, func(p mgl32.Vec3) bool { return p.Z() < center.Z() }},
	}

	for _, tt := range tests {
		if p := hitGround(t, c, tt.screen); !tt.check(p) {
			t.Errorf("%s: hit %v", tt.name, p)
		}
	}
}

func TestStraightDownCamera(t *testing.T) {
	c := NewCamera(WithPosition(1, 5, -1), WithForward(0, -1, 0), WithViewport(640, 480))
	got := hitGround(t, c, mgl32.Vec2{320, 240})
	if want := (mgl32.Vec3{1, 0, -1}); !got.ApproxEqualThreshold(want, rayEpsilon) {
		t.Errorf("hit = %v, want %v", got, want)
	}
}

func TestEmptyViewportHasNoRay(t *testing.T) {
	c := tiltedCamera()
	c.SetViewport(0, 0)
	if _, ok := c.ScreenPointToRay(mgl32.Vec2{0, 0}); ok {
		t.Error("ScreenPointToRay succeeded on an empty viewport")
	}
}

func TestRayAboveHorizonMissesGround(t *testing.T) {
	c := NewCamera(WithPosition(0, 2, 0), WithForward(0, 0.2, 1), WithViewport(800, 600))
	ray, ok := c.ScreenPointToRay(mgl32.Vec2{400, 300})
	if !ok {
		t.Fatal("ScreenPointToRay failed")
	}
	if _, ok := common.HorizontalPlane(0).Intersect(ray); ok {
		t.Error("upward ray reported a ground hit")
	}
}

func TestLookAtAndPose(t *testing.T) {
	c := NewCamera(WithPosition(0, 3, 0), WithLookAt(0, 0, 4))
	pose := c.Pose()
	if want := (mgl32.Vec3{0, -0.6, 0.8}); !pose.Forward.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Forward = %v, want %v", pose.Forward, want)
	}

	c.SetForward(mgl32.Vec3{})
	if c.Forward() != pose.Forward {
		t.Errorf("zero SetForward changed forward to %v", c.Forward())
	}
}

func TestControllerDrivesCamera(t *testing.T) {
	c := tiltedCamera()
	tc := NewTouchController(c)

	tc.Tick(0, pinch(400, 300, 200, 150))
	want := mgl32.Vec3{0, 0, 2.0 / 0.6 * 0.8}
	if got := tc.State().TargetFocusOffset; !got.ApproxEqualThreshold(want, rayEpsilon) {
		t.Errorf("TargetFocusOffset = %v, want %v", got, want)
	}

	pos := tc.Tick(1, input.Sample{})
	if c.Position() != pos {
		t.Errorf("camera position = %v, want %v", c.Position(), pos)
	}
	if pos.Z() != 0.5 {
		t.Errorf("position Z = %v, want clamp to 0.5", pos.Z())
	}
}
