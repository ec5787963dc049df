package scene

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Device is the subset of the WebGPU device surface the scene needs: resource
// creation only. *wgpu.Device satisfies it. Keeping the contract this narrow
// lets tests drive dirty resolution and upload gating with in-memory fakes.
type Device interface {
	// CreateBuffer creates a GPU buffer from the descriptor.
	CreateBuffer(descriptor *wgpu.BufferDescriptor) (*wgpu.Buffer, error)

	// CreateBindGroupLayout creates a bind group layout from the descriptor.
	CreateBindGroupLayout(descriptor *wgpu.BindGroupLayoutDescriptor) (*wgpu.BindGroupLayout, error)

	// CreateBindGroup creates a bind group from the descriptor.
	CreateBindGroup(descriptor *wgpu.BindGroupDescriptor) (*wgpu.BindGroup, error)
}

// Queue is the subset of the WebGPU queue the scene needs: buffer writes.
// *wgpu.Queue satisfies it.
type Queue interface {
	// WriteBuffer schedules a write of data into bufferOffset of buffer.
	WriteBuffer(buffer *wgpu.Buffer, bufferOffset uint64, data []byte) error
}

// PassRecorder is the subset of the render-pass encoder render nodes record
// into. *wgpu.RenderPassEncoder satisfies it. Nodes must not allocate GPU
// resources through this interface; recording is binding and drawing only.
type PassRecorder interface {
	// SetBindGroup binds a bind group at the given group index.
	SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32)
}
