package ecs

import (
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/dyngine/dyngine/common"
)

// runFlyingCameraSystem applies the frame's movement input to every entity
// carrying the flying-camera marker. It runs sequentially and strictly before
// the integrator, which consumes the velocities written here.
//
// Per matched entity: mouse deltas rotate the camera (yaw/pitch normally,
// roll while should-roll is held), the quaternion is recomposed from the
// Euler state, and the movement flags build a velocity along the live basis.
// Opposite flags cancel via XOR pairing, and the resulting direction is not
// renormalized, so diagonal motion is faster than a single axis.
func (w *World) runFlyingCameraSystem() {
	movementInput := &w.movementInput
	deltaYaw := movementInput.DeltaYaw
	deltaPitch := movementInput.DeltaPitch

	for _, e := range w.flyingCameras.Entities() {
		rotation := w.rotations.GetPtr(e)
		velocity := w.velocities.GetPtr(e)
		cam, hasCamera := w.cameras.Get(e)
		if rotation == nil || velocity == nil || !hasCamera {
			continue
		}

		// Rotate the camera.
		if !movementInput.ShouldRoll {
			rotation.Yaw += deltaYaw
			rotation.Pitch += deltaPitch
		} else {
			rotation.Roll += deltaYaw
		}
		rotation.Quaternion = common.QuatFromEulerZYX(rotation.Roll, rotation.Yaw, rotation.Pitch)

		// Add movement input to velocity.
		forward := rotation.Quaternion.Rotate(cam.ForwardAxis)
		up := rotation.Quaternion.Rotate(cam.UpAxis)
		right := up.Cross(forward)

		var moveDir common.Vec3
		if movementInput.Forward != movementInput.Backward {
			if movementInput.Forward {
				moveDir = moveDir.Add(forward)
			} else {
				moveDir = moveDir.Sub(forward)
			}
		}
		if movementInput.Left != movementInput.Right {
			if movementInput.Right {
				moveDir = moveDir.Add(right)
			} else {
				moveDir = moveDir.Sub(right)
			}
		}
		if movementInput.Up != movementInput.Down {
			if movementInput.Up {
				moveDir = moveDir.Add(up)
			} else {
				moveDir = moveDir.Sub(up)
			}
		}

		speed := float32(1.0)
		if movementInput.Sprinting {
			speed = 2.0
		}
		velocity.Velocity = moveDir.Scale(speed)
	}
}

// runIntegratorSystem advances positions by velocity * dt, data-parallel
// across entities. Entities are chunked over the worker pool; a WaitGroup
// provides the per-frame barrier since pool.Wait() blocks until workers
// idle-exit, which is unsuitable for frame-rate workloads. Chunks write
// disjoint dense slots, so no locking is needed.
func (w *World) runIntegratorSystem() {
	entities := w.velocities.Entities()
	if len(entities) == 0 {
		return
	}
	deltaTime := w.deltaTime

	chunk := (len(entities) + w.integratorWorkers - 1) / w.integratorWorkers

	var wg sync.WaitGroup
	taskID := 0
	for start := 0; start < len(entities); start += chunk {
		end := min(start+chunk, len(entities))
		span := entities[start:end]

		wg.Add(1)
		id := taskID
		taskID++
		w.integratorPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()
				for _, e := range span {
					velocity, _ := w.velocities.Get(e)
					if position := w.positions.GetPtr(e); position != nil {
						position.Position = position.Position.Add(velocity.Velocity.Scale(deltaTime))
					}
				}
				return nil, nil
			},
		})
	}
	wg.Wait()
}
