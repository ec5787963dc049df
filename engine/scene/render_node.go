package scene

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderNode is the contract every renderable node in a RenderScene implements.
// Nodes track their own dirty state so the scene only pays for updates when
// state actually changed.
type RenderNode interface {
	// IsDirty reports whether the node's state has diverged from its
	// GPU-visible representation and needs resolving before the next draw.
	// A node holding any internal dirty state must report true here; the
	// specific nature of the dirty state is resolved in ResolveDirtyState.
	//
	// Returns:
	//   - bool: true when the node needs a resolve
	IsDirty() bool

	// ResolveDirtyState brings the node out of the dirty state. Potentially
	// expensive; rebuilds or re-uploads the resources affected by the changed
	// state. Must leave the node clean.
	//
	// Parameters:
	//   - state: the scene's shared GPU context
	ResolveDirtyState(state *StaticRenderState)

	// Render records the node's draw commands into the frame's render pass.
	// Performs only the unavoidable per-frame work; must not allocate GPU
	// resources.
	//
	// Parameters:
	//   - state: the scene's shared GPU context
	//   - call: render state specific to this frame
	Render(state *StaticRenderState, call *RenderCallState)
}

// StaticRenderState is the GPU context shared by every node in a scene: the
// device and queue, and the bind group layouts accumulated by nodes during
// scene construction. The layout list is append-only and only grows while the
// scene is being built, so the render pipeline can be created against it once.
type StaticRenderState struct {
	Device Device
	Queue  Queue

	bindGroupLayouts []*wgpu.BindGroupLayout
}

// NewStaticRenderState creates a shared GPU context over the given device and queue.
//
// Parameters:
//   - device: the GPU device (resource creation)
//   - queue: the GPU queue (buffer uploads)
//
// Returns:
//   - *StaticRenderState: the shared context with an empty layout list
func NewStaticRenderState(device Device, queue Queue) *StaticRenderState {
	return &StaticRenderState{
		Device: device,
		Queue:  queue,
	}
}

// PushBindGroupLayout appends a layout to the accumulated list.
func (s *StaticRenderState) PushBindGroupLayout(layout *wgpu.BindGroupLayout) {
	s.bindGroupLayouts = append(s.bindGroupLayouts, layout)
}

// BindGroupLayouts returns the accumulated bind group layouts in push order.
// The caller must not mutate the returned slice.
//
// Returns:
//   - []*wgpu.BindGroupLayout: the accumulated layouts
func (s *StaticRenderState) BindGroupLayouts() []*wgpu.BindGroupLayout {
	return s.bindGroupLayouts
}

// RenderCallState carries the state specific to one render call: the pass
// recorder draw commands are issued against.
type RenderCallState struct {
	RenderPass PassRecorder
}
