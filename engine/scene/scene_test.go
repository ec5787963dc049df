package scene

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyngine/dyngine/common"
	"github.com/dyngine/dyngine/engine/camera"
)

// fakeDevice hands out zero-value GPU objects and records creation calls.
type fakeDevice struct {
	buffers          int
	bindGroupLayouts int
	bindGroups       int

	failBuffer bool
}

func (d *fakeDevice) CreateBuffer(descriptor *wgpu.BufferDescriptor) (*wgpu.Buffer, error) {
	if d.failBuffer {
		return nil, errors.New("out of memory")
	}
	d.buffers++
	return &wgpu.Buffer{}, nil
}

func (d *fakeDevice) CreateBindGroupLayout(descriptor *wgpu.BindGroupLayoutDescriptor) (*wgpu.BindGroupLayout, error) {
	d.bindGroupLayouts++
	return &wgpu.BindGroupLayout{}, nil
}

func (d *fakeDevice) CreateBindGroup(descriptor *wgpu.BindGroupDescriptor) (*wgpu.BindGroup, error) {
	d.bindGroups++
	return &wgpu.BindGroup{}, nil
}

// fakeQueue records every buffer write.
type fakeQueue struct {
	writes [][]byte
}

func (q *fakeQueue) WriteBuffer(buffer *wgpu.Buffer, bufferOffset uint64, data []byte) error {
	copied := make([]byte, len(data))
	copy(copied, data)
	q.writes = append(q.writes, copied)
	return nil
}

// fakePass records bind group indices in call order.
type fakePass struct {
	boundGroups []uint32
}

func (p *fakePass) SetBindGroup(groupIndex uint32, group *wgpu.BindGroup, dynamicOffsets []uint32) {
	p.boundGroups = append(p.boundGroups, groupIndex)
}

func newTestScene() (*RenderScene, *fakeDevice, *fakeQueue) {
	device := &fakeDevice{}
	queue := &fakeQueue{}
	return NewRenderScene(NewStaticRenderState(device, queue)), device, queue
}

func TestAddNewAllocatesResources(t *testing.T) {
	s, device, queue := newTestScene()

	handle, err := AddNew(camera.New(), s)
	require.NoError(t, err)
	assert.Equal(t, RenderNodeHandle(1), handle)

	assert.Equal(t, 1, device.buffers)
	assert.Equal(t, 1, device.bindGroupLayouts)
	assert.Equal(t, 1, device.bindGroups)
	// The buffer is seeded with the 64-byte shader block at creation.
	require.Len(t, queue.writes, 1)
	assert.Len(t, queue.writes[0], 64)
	// The layout is pushed so the pipeline can be built against it.
	assert.Len(t, s.State().BindGroupLayouts(), 1)
}

func TestAddNewPropagatesDeviceFailure(t *testing.T) {
	s, device, _ := newTestScene()
	device.failBuffer = true

	_, err := AddNew(camera.New(), s)
	assert.Error(t, err)
}

func TestHandlesAreMonotonicAndCamerasTracked(t *testing.T) {
	s, _, _ := newTestScene()

	h1, err := AddNew(camera.New(), s)
	require.NoError(t, err)
	h2, err := AddNew(camera.New(), s)
	require.NoError(t, err)

	assert.Equal(t, RenderNodeHandle(1), h1)
	assert.Equal(t, RenderNodeHandle(2), h2)
	assert.Equal(t, []RenderNodeHandle{h1, h2}, s.Cameras())

	node, ok := s.Node(h1)
	assert.True(t, ok)
	assert.NotNil(t, node)
	_, ok = s.Node(RenderNodeHandle(99))
	assert.False(t, ok)
}

func TestGetNodeAs(t *testing.T) {
	s, _, _ := newTestScene()
	handle, err := AddNew(camera.New(), s)
	require.NoError(t, err)

	node, ok := GetNodeAs[*CameraRenderNode](s, handle)
	assert.True(t, ok)
	assert.NotNil(t, node)

	_, ok = GetNodeAs[*CameraRenderNode](s, RenderNodeHandle(42))
	assert.False(t, ok)
}

func TestSetActiveCameraIsExclusive(t *testing.T) {
	s, _, _ := newTestScene()
	h1, _ := AddNew(camera.New(), s)
	h2, _ := AddNew(camera.New(), s)
	h3, _ := AddNew(camera.New(), s)

	require.NoError(t, s.SetActiveCamera(h2))

	n1, _ := GetNodeAs[*CameraRenderNode](s, h1)
	n2, _ := GetNodeAs[*CameraRenderNode](s, h2)
	n3, _ := GetNodeAs[*CameraRenderNode](s, h3)
	assert.False(t, n1.IsActive())
	assert.True(t, n2.IsActive())
	assert.False(t, n3.IsActive())

	// Switching sweeps the previous active camera inactive.
	require.NoError(t, s.SetActiveCamera(h3))
	assert.False(t, n2.IsActive())
	assert.True(t, n3.IsActive())

	assert.Error(t, s.SetActiveCamera(RenderNodeHandle(99)))
}

func TestActiveTransitionsAreIdempotent(t *testing.T) {
	s, _, _ := newTestScene()
	handle, _ := AddNew(camera.New(), s)
	node, _ := GetNodeAs[*CameraRenderNode](s, handle)

	// A fresh node is inactive and clean on the node flag; the camera itself
	// starts dirty.
	node.ResolveDirtyState(s.State())
	assert.False(t, node.IsDirty())

	node.SetInactive()
	assert.False(t, node.IsDirty())

	node.SetActive()
	assert.True(t, node.IsDirty())
	node.SetActive()

	node.ResolveDirtyState(s.State())
	node.SetInactive()
	assert.True(t, node.IsDirty())
}

func TestResolveUploadGating(t *testing.T) {
	s, _, queue := newTestScene()
	handle, _ := AddNew(camera.New(), s)
	node, _ := GetNodeAs[*CameraRenderNode](s, handle)
	seedWrites := len(queue.writes)

	// Camera-dirty but inactive: update runs, no upload.
	assert.True(t, node.IsDirty())
	node.ResolveDirtyState(s.State())
	assert.False(t, node.IsDirty())
	assert.Len(t, queue.writes, seedWrites)

	// Activation raises node-dirty; the camera is clean but the buffer may be
	// stale, so the resolve uploads.
	node.SetActive()
	node.ResolveDirtyState(s.State())
	assert.Len(t, queue.writes, seedWrites+1)

	// Clean and active: nothing to do.
	node.ResolveDirtyState(s.State())
	assert.Len(t, queue.writes, seedWrites+1)

	// Camera mutation while active uploads again.
	node.SetPosition(common.Vec3{1, 0, 0})
	assert.True(t, node.IsDirty())
	node.ResolveDirtyState(s.State())
	assert.Len(t, queue.writes, seedWrites+2)

	// Camera mutation while inactive updates the camera but skips the upload.
	node.SetInactive()
	node.ResolveDirtyState(s.State())
	writesAfterDeactivate := len(queue.writes)
	node.SetPosition(common.Vec3{2, 0, 0})
	node.ResolveDirtyState(s.State())
	assert.False(t, node.IsDirty())
	assert.Len(t, queue.writes, writesAfterDeactivate)
}

func TestRenderResolvesThenRecordsInInsertionOrder(t *testing.T) {
	s, _, queue := newTestScene()
	h1, _ := AddNew(camera.New(), s)
	_, err := AddNew(camera.New(), s)
	require.NoError(t, err)

	require.NoError(t, s.SetActiveCamera(h1))
	seedWrites := len(queue.writes)

	pass := &fakePass{}
	s.Render(&RenderCallState{RenderPass: pass})

	// Both camera nodes bind at group 0, in insertion order; only the active
	// one uploaded.
	assert.Equal(t, []uint32{0, 0}, pass.boundGroups)
	assert.Len(t, queue.writes, seedWrites+1)

	// A second frame with no mutations records without resolving.
	s.Render(&RenderCallState{RenderPass: pass})
	assert.Len(t, queue.writes, seedWrites+1)
}

func TestNodeForwardingSettersReachCamera(t *testing.T) {
	s, _, _ := newTestScene()
	handle, _ := AddNew(camera.New(), s)
	node, _ := GetNodeAs[*CameraRenderNode](s, handle)
	node.ResolveDirtyState(s.State())

	node.SetAspect(16.0 / 9.0)
	assert.True(t, node.IsDirty())
	assert.InDelta(t, 16.0/9.0, node.Camera().Aspect(), 1e-6)

	node.ResolveDirtyState(s.State())
	node.SetFov(common.Radians(70))
	assert.False(t, node.IsDirty())
}
