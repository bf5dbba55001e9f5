package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-dolly/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	forward  mgl32.Vec3
	up       mgl32.Vec3

	fov      float32
	near     float32
	far      float32
	viewport common.Viewport

	viewMatrix                  mgl32.Mat4
	projectionMatrix            mgl32.Mat4
	viewProjectionMatrix        mgl32.Mat4
	inverseViewProjectionMatrix mgl32.Mat4
	invertible                  bool
}

// Camera defines the interface for the viewing camera.
// The camera holds its pose and perspective settings, keeps view/projection matrices
// in sync with them, and casts rays from screen points into the world.
// It satisfies both Transform and RayCaster, so it can be handed directly to a TouchController.
type Camera interface {
	Transform
	RayCaster

	// SetForward sets the viewing direction. The vector is normalized; a zero vector is ignored.
	//
	// Parameters:
	//   - forward: world-space viewing direction
	SetForward(forward mgl32.Vec3)

	// LookAt points the camera at a world-space target from its current position.
	//
	// Parameters:
	//   - target: world-space point to face
	LookAt(target mgl32.Vec3)

	// Pose returns the position and forward direction as a single snapshot.
	//
	// Returns:
	//   - common.Pose: the current pose
	Pose() common.Pose

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: up vector
	Up() mgl32.Vec3

	// SetUp sets the camera's up vector and recomputes matrices.
	//
	// Parameters:
	//   - up: up vector
	SetUp(up mgl32.Vec3)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// SetFov sets the vertical field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Viewport returns the screen dimensions touch coordinates refer to.
	//
	// Returns:
	//   - common.Viewport: the viewport in pixels
	Viewport() common.Viewport

	// SetViewport sets the screen dimensions and recomputes the aspect ratio.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	SetViewport(width, height int)

	// ViewMatrix returns the current view matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down -Z with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:       &sync.Mutex{},
		position: mgl32.Vec3{0, 0, 0},
		forward:  mgl32.Vec3{0, 0, -1},
		up:       common.Up,
		fov:      45.0 * (math.Pi / 180.0), // radians
		near:     0.1,
		far:      100.0,
		viewport: common.Viewport{Width: 1280, Height: 720},
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
	c.updateMatrices()
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forward
}

func (c *cameraImpl) SetForward(forward mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setForward(forward)
	c.updateMatrices()
}

func (c *cameraImpl) LookAt(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setForward(target.Sub(c.position))
	c.updateMatrices()
}

func (c *cameraImpl) Pose() common.Pose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Pose{Position: c.position, Forward: c.forward}
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
	c.updateMatrices()
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) Viewport() common.Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport
}

func (c *cameraImpl) SetViewport(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = common.Viewport{Width: width, Height: height}
	c.updateMatrices()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

// ScreenPointToRay casts a ray from the near plane through the given screen point.
// Screen coordinates are pixels with the origin at the top-left corner of the viewport.
func (c *cameraImpl) ScreenPointToRay(screen mgl32.Vec2) (common.Ray, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.viewport.Empty() || !c.invertible {
		return common.Ray{}, false
	}

	ndcX := 2*screen.X()/float32(c.viewport.Width) - 1
	ndcY := 1 - 2*screen.Y()/float32(c.viewport.Height)

	nearPoint, ok := c.unproject(ndcX, ndcY, -1)
	if !ok {
		return common.Ray{}, false
	}
	farPoint, ok := c.unproject(ndcX, ndcY, 1)
	if !ok {
		return common.Ray{}, false
	}

	direction := farPoint.Sub(nearPoint)
	if direction.Len() == 0 {
		return common.Ray{}, false
	}
	return common.NewRay(nearPoint, direction), true
}

// unproject maps a normalized device coordinate back into world space.
// Caller must hold the mutex.
func (c *cameraImpl) unproject(ndcX, ndcY, ndcZ float32) (mgl32.Vec3, bool) {
	v := c.inverseViewProjectionMatrix.Mul4x1(mgl32.Vec4{ndcX, ndcY, ndcZ, 1})
	if v.W() == 0 {
		return mgl32.Vec3{}, false
	}
	return v.Vec3().Mul(1 / v.W()), true
}

// setForward normalizes and stores a viewing direction, ignoring zero vectors.
// Caller must hold the mutex.
func (c *cameraImpl) setForward(forward mgl32.Vec3) {
	if forward.Len() == 0 {
		return
	}
	c.forward = forward.Normalize()
}

// updateMatrices recalculates the view, projection, view-projection and inverse view-projection matrices.
// When the forward direction is parallel to the up vector, world -Z is used as the view up
// so that a camera looking straight down still has a well-defined orientation.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	viewUp := c.up
	if c.forward.Cross(viewUp).Len() < 1e-6 {
		viewUp = mgl32.Vec3{0, 0, -1}
	}

	c.viewMatrix = mgl32.LookAtV(c.position, c.position.Add(c.forward), viewUp)
	c.projectionMatrix = mgl32.Perspective(c.fov, c.viewport.Aspect(), c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)

	det := c.viewProjectionMatrix.Det()
	c.invertible = det != 0 && !math.IsNaN(float64(det)) && !math.IsInf(float64(det), 0)
	if c.invertible {
		c.inverseViewProjectionMatrix = c.viewProjectionMatrix.Inv()
	}
}
