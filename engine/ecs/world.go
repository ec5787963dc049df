package ecs

import (
	"runtime"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/dyngine/dyngine/engine/scene"
)

// EntityHandle identifies a wrapped entity inside one World instance.
// Handles are allocated from 1, monotonically, and never reused.
type EntityHandle uint64

// EntityWrapper maps an application-side handle onto an ECS entity and the
// render node it owns, and carries the bridge step that copies ECS state onto
// that node after each dispatch.
type EntityWrapper interface {
	// UpdateRenderNode copies the entity's current component state onto its
	// render node. Called once per tick, after the dispatcher has run.
	//
	// Parameters:
	//   - w: the world the entity lives in
	//   - renderScene: the scene holding the entity's render node
	UpdateRenderNode(w *World, renderScene *scene.RenderScene)

	// RenderNode returns the handle of the render node this entity owns.
	//
	// Returns:
	//   - scene.RenderNodeHandle: the owned node's handle
	//   - bool: false when the entity owns no render node
	RenderNode() (scene.RenderNodeHandle, bool)
}

// World owns the component storages, the frame resources, the fixed
// two-system dispatcher, and the handle-indexed entity wrappers. The system
// pipeline order is fixed: the flying-camera system runs first and
// sequentially (it rewrites the Euler state the integrator's inputs derive
// from), then the Newtonian integrator runs data-parallel across entities on
// the worker pool.
//
// World is not safe for concurrent use; Update is called once per frame on
// the host thread and parallelism stays inside the dispatch.
type World struct {
	positions     *Storage[PositionComponent]
	velocities    *Storage[VelocityComponent]
	rotations     *Storage[RotationComponent]
	cameras       *Storage[CameraComponent]
	flyingCameras *Storage[FlyingCameraComponent]

	deltaTime     float32
	movementInput MovementInput

	wrappers      map[EntityHandle]EntityWrapper
	cameraHandles []EntityHandle
	nextHandle    EntityHandle
	nextEntity    Entity

	// integratorPool manages a bounded set of reusable goroutines for the
	// parallel integration stage. Workers persist across frames, avoiding
	// per-frame goroutine spawn/teardown overhead.
	integratorPool    worker.DynamicWorkerPool
	integratorWorkers int
}

// NewWorld creates an empty world with the fixed system pipeline and a worker
// pool for the parallel integration stage.
//
// Returns:
//   - *World: the empty world with the handle counter at 1
func NewWorld() *World {
	w := &World{
		positions:         NewStorage[PositionComponent](),
		velocities:        NewStorage[VelocityComponent](),
		rotations:         NewStorage[RotationComponent](),
		cameras:           NewStorage[CameraComponent](),
		flyingCameras:     NewStorage[FlyingCameraComponent](),
		wrappers:          make(map[EntityHandle]EntityWrapper),
		nextHandle:        1,
		integratorWorkers: max(runtime.NumCPU()-1, 1),
	}
	// Queue size of 256 accommodates the per-frame chunk fan-out with headroom.
	w.integratorPool = worker.NewDynamicWorkerPool(w.integratorWorkers, 256, 1*time.Second)
	return w
}

// CreateEntity allocates a fresh entity id.
func (w *World) CreateEntity() Entity {
	e := w.nextEntity + 1
	w.nextEntity = e
	return e
}

// Positions returns the position component store.
func (w *World) Positions() *Storage[PositionComponent] { return w.positions }

// Velocities returns the velocity component store.
func (w *World) Velocities() *Storage[VelocityComponent] { return w.velocities }

// Rotations returns the rotation component store.
func (w *World) Rotations() *Storage[RotationComponent] { return w.rotations }

// Cameras returns the camera component store.
func (w *World) Cameras() *Storage[CameraComponent] { return w.cameras }

// FlyingCameras returns the flying-camera marker store.
func (w *World) FlyingCameras() *Storage[FlyingCameraComponent] { return w.flyingCameras }

// AddEntity registers a wrapper under the next handle. Camera entities are
// additionally appended to the world's camera list; the first camera inserted
// becomes the primary camera.
//
// Parameters:
//   - wrapper: the entity wrapper to register
//
// Returns:
//   - EntityHandle: the handle assigned to the entity
func (w *World) AddEntity(wrapper EntityWrapper) EntityHandle {
	if _, ok := wrapper.(*CameraEntity); ok {
		w.cameraHandles = append(w.cameraHandles, w.nextHandle)
	}
	handle := w.nextHandle
	w.wrappers[handle] = wrapper
	w.nextHandle++
	return handle
}

// Entity returns the wrapper registered under handle.
//
// Returns:
//   - EntityWrapper: the wrapper, or nil
//   - bool: false when the handle is unknown
func (w *World) Entity(handle EntityHandle) (EntityWrapper, bool) {
	wrapper, ok := w.wrappers[handle]
	return wrapper, ok
}

// CameraEntities returns the handles of every camera entity in insertion
// order. The caller must not mutate the returned slice.
func (w *World) CameraEntities() []EntityHandle {
	return w.cameraHandles
}

// PrimaryCamera returns the first camera entity inserted into the world.
//
// Returns:
//   - EntityHandle: the primary camera's handle
//   - bool: false when the world has no camera entities
func (w *World) PrimaryCamera() (EntityHandle, bool) {
	if len(w.cameraHandles) == 0 {
		return 0, false
	}
	return w.cameraHandles[0], true
}

// Update runs one ECS tick: stores the frame resources, dispatches the fixed
// system pipeline (flying-camera system, then the parallel integrator, with a
// happens-before edge between them), then runs the bridge step copying entity
// state onto the render nodes the entities own.
//
// Parameters:
//   - deltaTime: the frame's delta time in seconds
//   - movementInput: the frame's movement input resource
//   - renderScene: the scene holding the entities' render nodes
func (w *World) Update(deltaTime float64, movementInput MovementInput, renderScene *scene.RenderScene) {
	w.deltaTime = float32(deltaTime)
	w.movementInput = movementInput

	w.runFlyingCameraSystem()
	w.runIntegratorSystem()

	for _, wrapper := range w.wrappers {
		wrapper.UpdateRenderNode(w, renderScene)
	}
}
