package engine

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"

	"github.com/dyngine/dyngine/common"
	"github.com/dyngine/dyngine/engine/ecs"
	"github.com/dyngine/dyngine/engine/input"
	"github.com/dyngine/dyngine/engine/scene"
)

// cameraTriangleSource is the canonical WGSL source for the camera debug
// pipeline: a hardcoded triangle transformed by the group 0 binding 0 camera
// uniform and shaded flat red.
//
//go:embed assets/camera_triangle.wgsl
var cameraTriangleSource string

// GPUDevice is the device surface the engine needs: scene resource creation
// plus shader and pipeline construction. Satisfied by *wgpu.Device.
type GPUDevice interface {
	scene.Device

	CreateShaderModule(descriptor *wgpu.ShaderModuleDescriptor) (*wgpu.ShaderModule, error)
	CreatePipelineLayout(descriptor *wgpu.PipelineLayoutDescriptor) (*wgpu.PipelineLayout, error)
	CreateRenderPipeline(descriptor *wgpu.RenderPipelineDescriptor) (*wgpu.RenderPipeline, error)
}

var _ GPUDevice = &wgpu.Device{}

// engineInstance is the implementation of the Engine interface.
// Owns the render scene, the ECS world, the input state, and the render
// pipeline, and bridges host events into per-frame movement input.
type engineInstance struct {
	logger *zap.Logger

	device        GPUDevice
	queue         scene.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
	sampleCount   uint32

	state       *scene.StaticRenderState
	renderScene *scene.RenderScene
	world       *ecs.World

	inputHandler  *input.Handler
	movementInput ecs.MovementInput

	pipeline *wgpu.RenderPipeline

	primaryCamera ecs.EntityHandle
	started       bool
}

// Engine is the main entry point for the engine core. It owns one render
// scene and one ECS world, drives the per-frame simulate-then-render cycle,
// and accepts raw input events from the host.
//
// All methods must be called from the host's frame thread.
type Engine interface {
	// Start builds the engine's scene, world, primary flying camera, and
	// render pipeline. Must be called once before Render.
	//
	// Returns:
	//   - error: error if GPU resource or pipeline creation fails
	Start() error

	// PreRender runs one simulation tick: activates the requested camera,
	// polls held movement keys from the primary keyboard, dispatches the ECS
	// systems, and clears the per-frame input state.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous frame
	//   - cameraHandle: the camera entity to render from this frame
	//
	// Returns:
	//   - error: error when cameraHandle is not a camera entity
	PreRender(deltaTime float64, cameraHandle ecs.EntityHandle) error

	// Render runs one full frame: PreRender, then records the frame's render
	// pass into the encoder. Silently does nothing when the viewport is empty
	// or the engine has not been started.
	//
	// Parameters:
	//   - encoder: the frame's command encoder
	//   - colorView: the surface texture view presented this frame
	//   - msaaView: the multisampled color target; ignored when sample count is 1
	//   - viewport: the region of the surface to render into
	//   - cameraHandle: the camera entity to render from
	//   - deltaTime: seconds since the previous frame
	//
	// Returns:
	//   - error: error from the simulation tick
	Render(encoder *wgpu.CommandEncoder, colorView, msaaView *wgpu.TextureView, viewport common.ViewportRegion, cameraHandle ecs.EntityHandle, deltaTime float64) error

	// Resize propagates a new viewport aspect ratio to every camera entity.
	//
	// Parameters:
	//   - viewport: the new viewport region
	Resize(viewport common.ViewportRegion)

	// HandleKeyState records a key transition from the host.
	//
	// Parameters:
	//   - deviceID: the keyboard reporting the transition
	//   - key: the key that changed state
	//   - pressed: true on press, false on release
	HandleKeyState(deviceID input.DeviceID, key common.Key, pressed bool)

	// HandleMouseButtonEvent records a mouse button transition. Holding the
	// middle button switches mouse motion from yaw/pitch to roll.
	//
	// Parameters:
	//   - deviceID: the pointing device reporting the transition
	//   - button: the button that changed state
	//   - pressed: true on press, false on release
	HandleMouseButtonEvent(deviceID input.DeviceID, button common.MouseButton, pressed bool)

	// HandleMouseMotion accumulates relative mouse motion into the frame's
	// rotation deltas.
	//
	// Parameters:
	//   - deviceID: the pointing device reporting the motion
	//   - dx: horizontal motion in host units (positive = right)
	//   - dy: vertical motion in host units (positive = down)
	HandleMouseMotion(deviceID input.DeviceID, dx, dy float64)

	// HandleMouseWheel accepts scroll wheel input. Currently unmapped; kept so
	// hosts can wire the event unconditionally.
	//
	// Parameters:
	//   - deviceID: the pointing device reporting the scroll
	//   - delta: scroll delta (positive = up)
	//   - phase: where the scroll gesture is in its lifecycle
	HandleMouseWheel(deviceID input.DeviceID, delta float32, phase common.ScrollPhase)

	// World returns the ECS world, or nil before Start.
	World() *ecs.World

	// Scene returns the render scene, or nil before Start.
	Scene() *scene.RenderScene

	// PrimaryCamera returns the handle of the camera entity created by Start.
	//
	// Returns:
	//   - ecs.EntityHandle: the primary camera's handle
	//   - bool: false before Start
	PrimaryCamera() (ecs.EntityHandle, bool)
}

var _ Engine = &engineInstance{}

// New creates an engine over the given GPU context with the provided options.
//
// Parameters:
//   - device: the GPU device
//   - queue: the GPU queue
//   - surfaceConfig: the surface configuration (format, extent)
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the configured engine (not yet started)
func New(device GPUDevice, queue scene.Queue, surfaceConfig *wgpu.SurfaceConfiguration, options ...BuilderOption) Engine {
	e := &engineInstance{
		logger:        zap.NewNop(),
		device:        device,
		queue:         queue,
		surfaceConfig: surfaceConfig,
		sampleCount:   1,
		inputHandler:  input.NewHandler(),
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *engineInstance) Start() error {
	if e.started {
		return fmt.Errorf("engine already started")
	}

	e.state = scene.NewStaticRenderState(e.device, e.queue)
	e.renderScene = scene.NewRenderScene(e.state)
	e.world = ecs.NewWorld()

	aspect := float32(1.0)
	if e.surfaceConfig.Height > 0 {
		aspect = float32(e.surfaceConfig.Width) / float32(e.surfaceConfig.Height)
	}

	cameraHandle, err := ecs.AddFlyingCamera(e.world, e.renderScene, ecs.FlyingCameraParams{
		Position:    common.Vec3{0.0, 0.0, -5.0},
		Direction:   common.Vec3{0.0, 0.0, 1.0},
		ForwardAxis: common.Vec3{0.0, 0.0, 1.0},
		UpAxis:      common.Vec3{0.0, 1.0, 0.0},
		FovDegrees:  70.0,
		Near:        0.01,
		Far:         1000.0,
		Aspect:      aspect,
	})
	if err != nil {
		return fmt.Errorf("failed to create primary camera: %w", err)
	}
	e.primaryCamera = cameraHandle

	if err := e.createRenderPipeline(); err != nil {
		return err
	}

	e.started = true
	e.logger.Info("engine started",
		zap.Uint32("surface_width", e.surfaceConfig.Width),
		zap.Uint32("surface_height", e.surfaceConfig.Height),
		zap.Uint32("sample_count", e.sampleCount),
	)
	return nil
}

// createRenderPipeline builds the camera debug pipeline against the bind
// group layouts the scene accumulated during Start.
func (e *engineInstance) createRenderPipeline() error {
	shaderModule, err := e.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "camera_triangle_shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: cameraTriangleSource},
	})
	if err != nil {
		return fmt.Errorf("failed to create shader module: %w", err)
	}

	pipelineLayout, err := e.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "render_pipeline_layout",
		BindGroupLayouts: e.state.BindGroupLayouts(),
	})
	if err != nil {
		return fmt.Errorf("failed to create pipeline layout: %w", err)
	}

	pipeline, err := e.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "render_pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    e.surfaceConfig.Format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: e.sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create render pipeline: %w", err)
	}

	e.pipeline = pipeline
	return nil
}

func (e *engineInstance) PreRender(deltaTime float64, cameraHandle ecs.EntityHandle) error {
	wrapper, ok := e.world.Entity(cameraHandle)
	if !ok {
		return fmt.Errorf("no entity under handle %d", cameraHandle)
	}
	nodeHandle, ok := wrapper.RenderNode()
	if !ok {
		return fmt.Errorf("entity %d owns no render node", cameraHandle)
	}
	if err := e.renderScene.SetActiveCamera(nodeHandle); err != nil {
		return fmt.Errorf("failed to activate camera: %w", err)
	}

	e.pollMovementKeys()
	e.world.Update(deltaTime, e.movementInput, e.renderScene)
	e.movementInput.NewFrame()
	return nil
}

// pollMovementKeys reads the held movement keys off the primary keyboard into
// the frame's movement input. Held keys re-assert their flags every frame
// since NewFrame cleared them at the end of the previous one.
func (e *engineInstance) pollMovementKeys() {
	keyboard, ok := e.inputHandler.Primary()
	if !ok {
		return
	}
	e.movementInput.Forward = keyboard.IsPressed(common.KeyW)
	e.movementInput.Backward = keyboard.IsPressed(common.KeyS)
	e.movementInput.Left = keyboard.IsPressed(common.KeyA)
	e.movementInput.Right = keyboard.IsPressed(common.KeyD)
	e.movementInput.Up = keyboard.IsPressed(common.KeySpace)
	e.movementInput.Down = keyboard.IsPressed(common.KeyLeftShift)
	e.movementInput.Sprinting = keyboard.IsPressed(common.KeyLeftControl)
}

func (e *engineInstance) Render(encoder *wgpu.CommandEncoder, colorView, msaaView *wgpu.TextureView, viewport common.ViewportRegion, cameraHandle ecs.EntityHandle, deltaTime float64) error {
	if viewport.IsEmpty() || !e.started {
		return nil
	}

	if err := e.PreRender(deltaTime, cameraHandle); err != nil {
		return err
	}

	colorAttachment := wgpu.RenderPassColorAttachment{
		View:       colorView,
		LoadOp:     wgpu.LoadOpClear,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: wgpu.Color{R: 0.0, G: 0.0, B: 0.0, A: 0.0},
	}
	if e.sampleCount > 1 {
		// Draw into the MSAA target and resolve into the surface view; the
		// multisampled contents are dead after the resolve.
		colorAttachment.View = msaaView
		colorAttachment.ResolveTarget = colorView
		colorAttachment.StoreOp = wgpu.StoreOpDiscard
	}

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label:            "frame_render_pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{colorAttachment},
	})

	renderPass.SetViewport(viewport.X, viewport.Y, viewport.Width, viewport.Height, 0.0, 1.0)
	renderPass.SetPipeline(e.pipeline)
	e.renderScene.Render(&scene.RenderCallState{RenderPass: renderPass})
	renderPass.Draw(3, 1, 0, 0)
	renderPass.End()
	return nil
}

func (e *engineInstance) Resize(viewport common.ViewportRegion) {
	if !e.started {
		return
	}
	aspect := viewport.Aspect()
	for _, handle := range e.world.CameraEntities() {
		wrapper, ok := e.world.Entity(handle)
		if !ok {
			continue
		}
		nodeHandle, ok := wrapper.RenderNode()
		if !ok {
			continue
		}
		if node, ok := scene.GetNodeAs[*scene.CameraRenderNode](e.renderScene, nodeHandle); ok {
			node.SetAspect(aspect)
		}
	}
}

func (e *engineInstance) HandleKeyState(deviceID input.DeviceID, key common.Key, pressed bool) {
	e.inputHandler.SetKeyState(deviceID, key, pressed)
}

// Mouse handlers accept the reporting device id but do not register it with
// the keyboard aggregator; a pointing device must never become the primary
// keyboard that movement polling reads from.

func (e *engineInstance) HandleMouseButtonEvent(deviceID input.DeviceID, button common.MouseButton, pressed bool) {
	_ = deviceID
	if button == common.MouseButtonMiddle {
		e.movementInput.ShouldRoll = pressed
	}
}

func (e *engineInstance) HandleMouseMotion(deviceID input.DeviceID, dx, dy float64) {
	_ = deviceID
	e.movementInput.DeltaYaw += float32(dx) / 1000.0
	e.movementInput.DeltaPitch += float32(dy) / 1000.0
}

func (e *engineInstance) HandleMouseWheel(deviceID input.DeviceID, delta float32, phase common.ScrollPhase) {
	// Reserved for camera zoom.
	_, _, _ = deviceID, delta, phase
}

func (e *engineInstance) World() *ecs.World {
	return e.world
}

func (e *engineInstance) Scene() *scene.RenderScene {
	return e.renderScene
}

func (e *engineInstance) PrimaryCamera() (ecs.EntityHandle, bool) {
	if !e.started {
		return 0, false
	}
	return e.primaryCamera, true
}
