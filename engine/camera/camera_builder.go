package camera

import (
	"github.com/dyngine/dyngine/common"
)

type BuilderOption func(*PerspectiveCamera)

// WithPosition sets the camera's world-space position.
//
// Parameters:
//   - position: the camera position
//
// Returns:
//   - BuilderOption: a function that sets the camera's position
func WithPosition(position common.Vec3) BuilderOption {
	return func(c *PerspectiveCamera) {
		c.position = position
	}
}

// WithDirection sets the camera's view direction (unit vector).
//
// Parameters:
//   - direction: the view direction
//
// Returns:
//   - BuilderOption: a function that sets the camera's direction
func WithDirection(direction common.Vec3) BuilderOption {
	return func(c *PerspectiveCamera) {
		c.direction = direction
	}
}

// WithForwardAxis sets the camera's fixed forward axis convention.
//
// Parameters:
//   - forwardAxis: the forward axis (unit vector)
//
// Returns:
//   - BuilderOption: a function that sets the camera's forward axis
func WithForwardAxis(forwardAxis common.Vec3) BuilderOption {
	return func(c *PerspectiveCamera) {
		c.forwardAxis = forwardAxis
	}
}

// WithUpAxis sets the camera's up axis.
//
// Parameters:
//   - upAxis: the up axis (unit vector)
//
// Returns:
//   - BuilderOption: a function that sets the camera's up axis
func WithUpAxis(upAxis common.Vec3) BuilderOption {
	return func(c *PerspectiveCamera) {
		c.upAxis = upAxis
	}
}

// WithFovDegrees sets the vertical field of view from an angle in degrees.
// The camera stores the field of view in radians.
//
// Parameters:
//   - fovDegrees: field of view in degrees
//
// Returns:
//   - BuilderOption: a function that sets the camera's field of view
func WithFovDegrees(fovDegrees float32) BuilderOption {
	return func(c *PerspectiveCamera) {
		c.fov = common.Radians(fovDegrees)
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance (must be > 0)
//
// Returns:
//   - BuilderOption: a function that sets the near plane
func WithNear(near float32) BuilderOption {
	return func(c *PerspectiveCamera) {
		c.near = near
	}
}

// WithFar sets a finite far clipping plane distance.
//
// Parameters:
//   - far: far plane distance (must be > near)
//
// Returns:
//   - BuilderOption: a function that sets the far plane
func WithFar(far float32) BuilderOption {
	return func(c *PerspectiveCamera) {
		c.far = far
		c.hasFar = true
	}
}

// WithInfiniteFar configures the camera to project with an infinite far plane.
//
// Returns:
//   - BuilderOption: a function that clears the finite far plane
func WithInfiniteFar() BuilderOption {
	return func(c *PerspectiveCamera) {
		c.far = 0
		c.hasFar = false
	}
}

// WithAspect sets the aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio
//
// Returns:
//   - BuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) BuilderOption {
	return func(c *PerspectiveCamera) {
		c.aspect = aspect
	}
}
