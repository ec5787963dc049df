package scene

import (
	"fmt"
)

// RenderNodeHandle identifies a render node inside one RenderScene instance.
// Handles are allocated from 1, monotonically, and never reused within a
// scene's lifetime; 0 is never a valid handle.
type RenderNodeHandle uint64

// RenderScene is a handle-indexed collection of render nodes sharing one GPU
// context. It tracks which nodes are cameras and which camera is active, and
// orchestrates the per-frame resolve-then-record pass over all nodes.
//
// RenderScene is not safe for concurrent use; the host serializes all access
// on the frame thread.
type RenderScene struct {
	nodes map[RenderNodeHandle]RenderNode
	// order preserves insertion order for the render pass, so nodes inserted
	// first (the camera by convention) bind before nodes that depend on them.
	order      []RenderNodeHandle
	cameras    []RenderNodeHandle
	nextHandle RenderNodeHandle

	state *StaticRenderState
}

// NewRenderScene creates an empty scene over the given shared GPU context.
//
// Parameters:
//   - state: the shared GPU context (must not be nil)
//
// Returns:
//   - *RenderScene: the empty scene with the handle counter at 1
func NewRenderScene(state *StaticRenderState) *RenderScene {
	return &RenderScene{
		nodes:      make(map[RenderNodeHandle]RenderNode),
		nextHandle: 1,
		state:      state,
	}
}

// State returns the scene's shared GPU context.
func (s *RenderScene) State() *StaticRenderState {
	return s.state
}

// AddNode inserts a node under the next handle and returns that handle.
// Camera nodes are additionally appended to the scene's camera list.
//
// Parameters:
//   - node: the node to insert
//
// Returns:
//   - RenderNodeHandle: the handle assigned to the node
func (s *RenderScene) AddNode(node RenderNode) RenderNodeHandle {
	handle := s.nextHandle
	s.nextHandle++
	s.nodes[handle] = node
	s.order = append(s.order, handle)
	if _, ok := node.(*CameraRenderNode); ok {
		s.cameras = append(s.cameras, handle)
	}
	return handle
}

// Node returns the node stored under handle.
//
// Parameters:
//   - handle: the handle to look up
//
// Returns:
//   - RenderNode: the node, or nil
//   - bool: false when the handle is unknown
func (s *RenderScene) Node(handle RenderNodeHandle) (RenderNode, bool) {
	node, ok := s.nodes[handle]
	return node, ok
}

// GetNodeAs returns the node stored under handle downcast to a concrete node
// type. Returns false when the handle is unknown or the node has a different
// concrete type.
//
// Parameters:
//   - s: the scene to look up in
//   - handle: the handle to look up
//
// Returns:
//   - T: the concrete node, or the zero value
//   - bool: whether the lookup and downcast succeeded
func GetNodeAs[T RenderNode](s *RenderScene, handle RenderNodeHandle) (T, bool) {
	node, ok := s.nodes[handle]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := node.(T)
	return typed, ok
}

// Cameras returns the handles of every camera node in insertion order.
// The caller must not mutate the returned slice.
func (s *RenderScene) Cameras() []RenderNodeHandle {
	return s.cameras
}

// SetActiveCamera activates the camera node stored under handle and
// deactivates every other camera in the scene, so at most one camera is
// active at a time. Activation transitions raise node-dirty on the affected
// nodes; the next resolve refreshes the newly active camera's uniform buffer.
//
// Parameters:
//   - handle: the camera node to activate
//
// Returns:
//   - error: error when the handle does not refer to a camera node
func (s *RenderScene) SetActiveCamera(handle RenderNodeHandle) error {
	target, ok := GetNodeAs[*CameraRenderNode](s, handle)
	if !ok {
		return fmt.Errorf("no camera render node under handle %d", handle)
	}
	target.SetActive()
	for _, cameraHandle := range s.cameras {
		if cameraHandle == handle {
			continue
		}
		if other, ok := GetNodeAs[*CameraRenderNode](s, cameraHandle); ok {
			other.SetInactive()
		}
	}
	return nil
}

// Render runs the frame pass over all nodes in insertion order: each dirty
// node is resolved (GPU uploads happen here), then the node records its draw
// commands into the frame's pass.
//
// Parameters:
//   - call: the frame's render call state
func (s *RenderScene) Render(call *RenderCallState) {
	for _, handle := range s.order {
		node := s.nodes[handle]
		if node.IsDirty() {
			node.ResolveDirtyState(s.state)
		}
		node.Render(s.state, call)
	}
}
