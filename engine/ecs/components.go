package ecs

import (
	"github.com/dyngine/dyngine/common"
)

// PositionComponent holds an entity's world-space position.
type PositionComponent struct {
	Position common.Vec3
}

// VelocityComponent holds an entity's velocity in world units per second.
type VelocityComponent struct {
	Velocity common.Vec3
}

// RotationComponent holds an entity's orientation. Yaw, Pitch and Roll
// determine Quaternion; the flying-camera system recomputes the quaternion
// from the Euler state every tick, so after its run the two agree.
// Angles are in radians.
type RotationComponent struct {
	Yaw   float32
	Pitch float32
	Roll  float32

	Quaternion common.Quat
}

// CameraComponent holds the camera configuration carried by a camera entity.
type CameraComponent struct {
	// ForwardAxis is the camera's forward axis (not the camera's live forward vector).
	ForwardAxis common.Vec3
	// UpAxis is the camera's up axis (not the camera's live up vector).
	UpAxis common.Vec3
	// FovDegrees is the camera's vertical field of view in degrees.
	FovDegrees float32
}

// FlyingCameraComponent marks an entity as controlled by the flying-camera system.
type FlyingCameraComponent struct{}
