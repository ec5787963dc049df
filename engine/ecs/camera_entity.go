package ecs

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/dyngine/dyngine/common"
	"github.com/dyngine/dyngine/engine/camera"
	"github.com/dyngine/dyngine/engine/scene"
)

// FlyingCameraParams configures a flying-camera entity and its render node.
type FlyingCameraParams struct {
	// Position is the camera's starting world-space position.
	Position common.Vec3
	// Direction is the camera's starting view direction (unit vector).
	Direction common.Vec3
	// ForwardAxis is the camera's fixed forward axis convention (unit vector).
	ForwardAxis common.Vec3
	// UpAxis is the camera's up axis (unit vector).
	UpAxis common.Vec3
	// FovDegrees is the vertical field of view in degrees.
	FovDegrees float32
	// Near is the near plane distance.
	Near float32
	// Far is the far plane distance; a value <= 0 selects an infinite far plane.
	Far float32
	// Aspect is the viewport aspect ratio (width / height).
	Aspect float32
}

// CameraEntity maps an application-side handle onto a camera's ECS entity and
// the camera render node it owns. The entity owns the node handle; the node
// never points back at the entity.
type CameraEntity struct {
	cameraRenderNode scene.RenderNodeHandle
	entity           Entity
}

var _ EntityWrapper = &CameraEntity{}

// AddFlyingCamera creates a flying-camera entity with position, velocity,
// rotation, camera, and flying-camera components, plus a camera render node
// in the scene, and registers the wrapper with the world.
//
// The initial rotation derives from how the view direction relates to the
// forward axis: aligned gives identity, opposed gives a half turn around the
// up axis, anything else an axis-angle rotation about their normalized cross
// product. The Euler state seeds from that rotation's Y-X-Z decomposition.
//
// Parameters:
//   - w: the world to add the entity to
//   - renderScene: the scene to add the render node to
//   - params: the camera configuration
//
// Returns:
//   - EntityHandle: the handle of the new entity
//   - error: error when the render node's GPU resources cannot be created
func AddFlyingCamera(w *World, renderScene *scene.RenderScene, params FlyingCameraParams) (EntityHandle, error) {
	const epsilon = 1.1920929e-07

	var rotation common.Quat
	dot := params.Direction.Dot(params.ForwardAxis)
	switch {
	case math32.Abs(dot-1.0) < epsilon:
		rotation = common.QuatIdentity()
	case math32.Abs(dot+1.0) < epsilon:
		rotation = common.QuatFromAxisAngle(params.UpAxis, math32.Pi)
	default:
		rotAxis := params.ForwardAxis.Cross(params.Direction).Normalize()
		rotation = common.QuatFromAxisAngle(rotAxis, math32.Acos(dot))
	}

	yaw, pitch, roll := rotation.EulerYXZ()

	entity := w.CreateEntity()
	w.Positions().Set(entity, PositionComponent{Position: params.Position})
	w.Velocities().Set(entity, VelocityComponent{})
	w.Rotations().Set(entity, RotationComponent{Quaternion: rotation, Yaw: yaw, Pitch: pitch, Roll: roll})
	w.Cameras().Set(entity, CameraComponent{
		ForwardAxis: params.ForwardAxis,
		UpAxis:      params.UpAxis,
		FovDegrees:  params.FovDegrees,
	})
	w.FlyingCameras().Set(entity, FlyingCameraComponent{})

	cameraOptions := []camera.BuilderOption{
		camera.WithPosition(params.Position),
		camera.WithDirection(params.Direction),
		camera.WithForwardAxis(params.ForwardAxis),
		camera.WithUpAxis(params.UpAxis),
		camera.WithFovDegrees(params.FovDegrees),
		camera.WithNear(params.Near),
		camera.WithAspect(params.Aspect),
	}
	if params.Far > 0 {
		cameraOptions = append(cameraOptions, camera.WithFar(params.Far))
	} else {
		cameraOptions = append(cameraOptions, camera.WithInfiniteFar())
	}

	nodeHandle, err := scene.AddNew(camera.New(cameraOptions...), renderScene)
	if err != nil {
		return 0, fmt.Errorf("failed to create camera render node: %w", err)
	}

	return w.AddEntity(&CameraEntity{cameraRenderNode: nodeHandle, entity: entity}), nil
}

// UpdateRenderNode copies the entity's position, rotation quaternion, and
// field of view onto its camera render node. The node's setters are
// idempotent, so only real changes raise the camera's dirty flag.
func (c *CameraEntity) UpdateRenderNode(w *World, renderScene *scene.RenderScene) {
	position, ok := w.Positions().Get(c.entity)
	if !ok {
		return
	}
	rotation, ok := w.Rotations().Get(c.entity)
	if !ok {
		return
	}
	cam, ok := w.Cameras().Get(c.entity)
	if !ok {
		return
	}

	node, ok := scene.GetNodeAs[*scene.CameraRenderNode](renderScene, c.cameraRenderNode)
	if !ok {
		return
	}

	node.SetPosition(position.Position)
	node.SetRotation(rotation.Quaternion)
	node.SetFov(common.Radians(cam.FovDegrees))
}

// RenderNode returns the handle of the camera render node this entity owns.
func (c *CameraEntity) RenderNode() (scene.RenderNodeHandle, bool) {
	return c.cameraRenderNode, true
}

// ECSEntity returns the underlying ECS entity id.
func (c *CameraEntity) ECSEntity() Entity {
	return c.entity
}
