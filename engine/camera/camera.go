package camera

import (
	"github.com/chewxy/math32"

	"github.com/dyngine/dyngine/common"
)

// ShaderState is the camera uniform block read by the vertex stage: the
// column-major view-projection product as 16 contiguous 32-bit floats.
// The memory layout is bit-stable across frames and matches the shader's
// mat4x4<f32> uniform exactly, so a pointer to it can be reinterpreted as the
// 64-byte upload image via common.StructToBytes.
type ShaderState struct {
	ViewProj [16]float32
}

// PerspectiveCamera is a value-type camera with an explicit dirty flag.
// Setters compare against the current value and only mark the camera dirty on
// a real change, so downstream GPU uploads are gated to actual mutations.
// The camera distinguishes the fixed forward axis (a construction-time
// convention) from the live view direction so rotation composition stays
// coherent under non-standard forward conventions.
//
// PerspectiveCamera is not safe for concurrent use; the owning render node
// serializes access on the frame thread.
type PerspectiveCamera struct {
	position    common.Vec3
	direction   common.Vec3
	right       common.Vec3
	forwardAxis common.Vec3
	upAxis      common.Vec3
	up          common.Vec3

	aspect float32
	fov    float32 // radians
	near   float32
	far    float32
	hasFar bool

	dirty bool

	shaderState ShaderState
}

// New creates a PerspectiveCamera with default settings, then applies the
// given options. The camera starts dirty with an identity shader block; the
// first Update produces the real view-projection.
//
// Defaults: position (0,0,0), direction and forward axis (0,0,1), up axis
// (0,1,0), fov 70 degrees, near 0.01, far 1000, aspect 1.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - PerspectiveCamera: the configured camera value
func New(options ...BuilderOption) PerspectiveCamera {
	c := PerspectiveCamera{
		direction:   common.Vec3{0, 0, 1},
		forwardAxis: common.Vec3{0, 0, 1},
		upAxis:      common.Vec3{0, 1, 0},
		aspect:      1.0,
		fov:         common.Radians(70.0),
		near:        0.01,
		far:         1000.0,
		hasFar:      true,
		dirty:       true,
		shaderState: ShaderState{
			ViewProj: [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1},
		},
	}
	for _, option := range options {
		option(&c)
	}
	c.right = c.upAxis.Cross(c.direction)
	c.up = c.direction.Cross(c.right)
	return c
}

// Update recomputes the shader-state block from the current camera state.
// No-op when the camera is clean. Computes a left-handed look-at view matrix
// and a left-handed perspective projection (finite or infinite far), stores
// projection x view column-major into the shader block, and clears dirty.
func (c *PerspectiveCamera) Update() {
	if !c.dirty {
		return
	}

	var view, proj [16]float32
	common.LookAtLH(view[:], c.position, c.position.Add(c.direction), c.up)

	if c.hasFar {
		common.PerspectiveLH(proj[:], c.fov, c.aspect, c.near, c.far)
	} else {
		common.PerspectiveInfiniteLH(proj[:], c.fov, c.aspect, c.near)
	}

	common.Mul4(c.shaderState.ViewProj[:], proj[:], view[:])
	c.dirty = false
}

// SetPosition sets the camera position. No-op when unchanged.
func (c *PerspectiveCamera) SetPosition(position common.Vec3) {
	if c.position == position {
		return
	}
	c.position = position
	c.dirty = true
}

// SetDirection sets the view direction and re-derives the right and up
// vectors from the up axis. No-op when unchanged.
func (c *PerspectiveCamera) SetDirection(direction common.Vec3) {
	if c.direction == direction {
		return
	}
	c.direction = direction
	c.right = c.upAxis.Cross(c.direction)
	c.up = c.direction.Cross(c.right)
	c.dirty = true
}

// SetUpAxis sets the up axis and re-derives the right and up vectors.
// No-op when unchanged.
func (c *PerspectiveCamera) SetUpAxis(upAxis common.Vec3) {
	if c.upAxis == upAxis {
		return
	}
	c.upAxis = upAxis
	c.right = c.upAxis.Cross(c.direction)
	c.up = c.direction.Cross(c.right)
	c.dirty = true
}

// SetAspect sets the aspect ratio (width / height). No-op when unchanged.
func (c *PerspectiveCamera) SetAspect(aspect float32) {
	if c.aspect == aspect {
		return
	}
	c.aspect = aspect
	c.dirty = true
}

// SetFov sets the vertical field of view in radians. No-op when unchanged.
func (c *PerspectiveCamera) SetFov(fov float32) {
	if c.fov == fov {
		return
	}
	c.fov = fov
	c.dirty = true
}

// SetNear sets the near plane distance. No-op when unchanged.
func (c *PerspectiveCamera) SetNear(near float32) {
	if c.near == near {
		return
	}
	c.near = near
	c.dirty = true
}

// SetFar sets a finite far plane distance. No-op when the camera already has
// this exact finite far plane.
func (c *PerspectiveCamera) SetFar(far float32) {
	if c.hasFar && c.far == far {
		return
	}
	c.far = far
	c.hasFar = true
	c.dirty = true
}

// SetRotation orients the camera from a rotation quaternion: direction becomes
// the rotated forward axis, up the rotated up axis, right their cross product.
// Dirty is raised only if any of the derived vectors actually changed.
func (c *PerspectiveCamera) SetRotation(rotation common.Quat) {
	direction := rotation.Rotate(c.forwardAxis)
	up := rotation.Rotate(c.upAxis)
	right := up.Cross(direction)

	if c.direction != direction || c.up != up || c.right != right {
		c.dirty = true
	}
	c.direction = direction
	c.up = up
	c.right = right
}

// SetRotationEuler orients the view direction from yaw and pitch angles in
// degrees and re-derives the right and up vectors.
func (c *PerspectiveCamera) SetRotationEuler(yawDegrees, pitchDegrees float32) {
	yaw := common.Radians(yawDegrees)
	pitch := common.Radians(pitchDegrees)
	c.direction[0] = math32.Cos(yaw) * math32.Cos(pitch)
	c.direction[1] = math32.Sin(pitch)
	c.direction[2] = math32.Sin(yaw) * math32.Cos(pitch)
	c.right = c.upAxis.Cross(c.direction)
	c.up = c.direction.Cross(c.right)
	c.dirty = true
}

// SetRollEuler rolls the camera by rotating the up axis in the XY plane by the
// given angle in degrees and re-deriving the right and up vectors.
func (c *PerspectiveCamera) SetRollEuler(rollDegrees float32) {
	roll := common.Radians(rollDegrees)
	c.upAxis = common.Vec3{math32.Cos(roll), math32.Sin(roll), 0}
	c.right = c.upAxis.Cross(c.direction)
	c.up = c.direction.Cross(c.right)
	c.dirty = true
}

// Yaw returns the view direction's yaw angle in degrees.
func (c *PerspectiveCamera) Yaw() float32 {
	return math32.Atan2(c.direction[2], c.direction[0]) * (180.0 / math32.Pi)
}

// Pitch returns the view direction's pitch angle in degrees.
func (c *PerspectiveCamera) Pitch() float32 {
	return math32.Asin(c.direction[1]) * (180.0 / math32.Pi)
}

// Roll returns the up axis roll angle in degrees.
func (c *PerspectiveCamera) Roll() float32 {
	return math32.Atan2(c.upAxis[1], c.upAxis[0]) * (180.0 / math32.Pi)
}

// Position returns the camera position.
func (c *PerspectiveCamera) Position() common.Vec3 {
	return c.position
}

// Direction returns the current view direction.
func (c *PerspectiveCamera) Direction() common.Vec3 {
	return c.direction
}

// Right returns the derived right vector.
func (c *PerspectiveCamera) Right() common.Vec3 {
	return c.right
}

// Up returns the derived up vector.
func (c *PerspectiveCamera) Up() common.Vec3 {
	return c.up
}

// UpAxis returns the configured up axis.
func (c *PerspectiveCamera) UpAxis() common.Vec3 {
	return c.upAxis
}

// ForwardAxis returns the configured forward axis.
func (c *PerspectiveCamera) ForwardAxis() common.Vec3 {
	return c.forwardAxis
}

// Aspect returns the aspect ratio.
func (c *PerspectiveCamera) Aspect() float32 {
	return c.aspect
}

// Fov returns the vertical field of view in radians.
func (c *PerspectiveCamera) Fov() float32 {
	return c.fov
}

// Near returns the near plane distance.
func (c *PerspectiveCamera) Near() float32 {
	return c.near
}

// Far returns the far plane distance and whether it is finite.
//
// Returns:
//   - float32: the far plane distance (meaningless when infinite)
//   - bool: false when the camera uses an infinite far plane
func (c *PerspectiveCamera) Far() (float32, bool) {
	return c.far, c.hasFar
}

// Dirty reports whether the camera state has diverged from the shader block.
func (c *PerspectiveCamera) Dirty() bool {
	return c.dirty
}

// ShaderState returns the current shader-state block. The block is
// authoritative only after Update has run on a clean camera.
func (c *PerspectiveCamera) ShaderState() ShaderState {
	return c.shaderState
}
