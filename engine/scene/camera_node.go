package scene

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/dyngine/dyngine/common"
	"github.com/dyngine/dyngine/engine/camera"
)

// CameraRenderNode owns a PerspectiveCamera plus the GPU resources exposing
// its shader state to the pipeline: a uniform buffer holding the 64-byte
// view-projection block and a bind group referencing it at binding 0.
//
// Only one camera in a scene is rendered from at a time; is-active tracks
// whether this node is that camera (used for split screen and camera swaps).
// An inactive camera's buffer contents are considered stale and are not
// refreshed until the node becomes active again.
type CameraRenderNode struct {
	camera camera.PerspectiveCamera

	cameraBuffer    *wgpu.Buffer
	cameraBindGroup *wgpu.BindGroup

	isActiveCamera bool

	dirty bool
}

var _ RenderNode = &CameraRenderNode{}

// AddNew creates a camera render node for the given camera value, allocates
// its GPU resources from the scene's shared context, appends the node's bind
// group layout to the scene's accumulated layouts, and inserts the node into
// the scene.
//
// Resource creation failures are construction failures; they propagate to the
// caller and never occur during steady-state frames.
//
// Parameters:
//   - cam: the camera value the node takes ownership of
//   - s: the scene the node is inserted into
//
// Returns:
//   - RenderNodeHandle: the handle the scene assigned to the node
//   - error: error if any GPU resource creation fails
func AddNew(cam camera.PerspectiveCamera, s *RenderScene) (RenderNodeHandle, error) {
	state := s.State()

	shaderState := cam.ShaderState()
	cameraBuffer, err := state.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "CameraBuffer",
		Size:  uint64(unsafe.Sizeof(shaderState)),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create camera buffer: %w", err)
	}
	if err := state.Queue.WriteBuffer(cameraBuffer, 0, common.StructToBytes(&shaderState)); err != nil {
		return 0, fmt.Errorf("failed to seed camera buffer: %w", err)
	}

	cameraBindGroupLayout, err := state.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "camera_bind_group_layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					HasDynamicOffset: false,
				},
			},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create camera bind group layout: %w", err)
	}

	cameraBindGroup, err := state.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "camera_bind_group",
		Layout: cameraBindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  cameraBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create camera bind group: %w", err)
	}

	state.PushBindGroupLayout(cameraBindGroupLayout)

	node := &CameraRenderNode{
		camera:          cam,
		cameraBuffer:    cameraBuffer,
		cameraBindGroup: cameraBindGroup,
		isActiveCamera:  false,
		dirty:           false,
	}
	return s.AddNode(node), nil
}

// SetActive marks this node as the camera being rendered from. Idempotent;
// a real transition raises node-dirty so the uniform buffer, which may hold
// stale data from when the camera was inactive, is refreshed on the next resolve.
func (n *CameraRenderNode) SetActive() {
	if n.isActiveCamera {
		return
	}
	n.isActiveCamera = true
	n.dirty = true
}

// SetInactive marks this node as not rendered from. Idempotent; a real
// transition raises node-dirty.
func (n *CameraRenderNode) SetInactive() {
	if !n.isActiveCamera {
		return
	}
	n.isActiveCamera = false
	n.dirty = true
}

// IsActive reports whether this node is the camera being rendered from.
func (n *CameraRenderNode) IsActive() bool {
	return n.isActiveCamera
}

func (n *CameraRenderNode) IsDirty() bool {
	return n.dirty || n.camera.Dirty()
}

func (n *CameraRenderNode) Render(_ *StaticRenderState, call *RenderCallState) {
	call.RenderPass.SetBindGroup(0, n.cameraBindGroup, nil)
}

func (n *CameraRenderNode) ResolveDirtyState(state *StaticRenderState) {
	wasCameraDirty := n.camera.Dirty()
	wasNodeDirty := n.dirty
	if wasCameraDirty {
		n.camera.Update()
	}
	n.dirty = false
	if n.isActiveCamera && (wasCameraDirty || wasNodeDirty) {
		// The camera's state changed, or this camera just became active and
		// the buffer still holds some other camera era's data.
		shaderState := n.camera.ShaderState()
		state.Queue.WriteBuffer(n.cameraBuffer, 0, common.StructToBytes(&shaderState))
	}
}

// Camera returns the owned camera for read access.
func (n *CameraRenderNode) Camera() *camera.PerspectiveCamera {
	return &n.camera
}

// SetPosition forwards to the owned camera.
func (n *CameraRenderNode) SetPosition(position common.Vec3) {
	n.camera.SetPosition(position)
}

// SetRotation forwards to the owned camera.
func (n *CameraRenderNode) SetRotation(rotation common.Quat) {
	n.camera.SetRotation(rotation)
}

// SetRotationEuler forwards to the owned camera.
func (n *CameraRenderNode) SetRotationEuler(yawDegrees, pitchDegrees float32) {
	n.camera.SetRotationEuler(yawDegrees, pitchDegrees)
}

// SetRollEuler forwards to the owned camera.
func (n *CameraRenderNode) SetRollEuler(rollDegrees float32) {
	n.camera.SetRollEuler(rollDegrees)
}

// SetAspect forwards to the owned camera.
func (n *CameraRenderNode) SetAspect(aspect float32) {
	n.camera.SetAspect(aspect)
}

// SetFov forwards to the owned camera; fov is in radians.
func (n *CameraRenderNode) SetFov(fov float32) {
	n.camera.SetFov(fov)
}

// SetUpAxis forwards to the owned camera.
func (n *CameraRenderNode) SetUpAxis(upAxis common.Vec3) {
	n.camera.SetUpAxis(upAxis)
}

// SetNear forwards to the owned camera.
func (n *CameraRenderNode) SetNear(near float32) {
	n.camera.SetNear(near)
}

// SetFar forwards to the owned camera.
func (n *CameraRenderNode) SetFar(far float32) {
	n.camera.SetFar(far)
}
