package ecs

// MovementInput is the per-frame movement state fed into the flying-camera
// system: boolean movement flags plus accumulated mouse deltas. It is injected
// as a frame resource rather than read from global state.
type MovementInput struct {
	Forward    bool
	Backward   bool
	Left       bool
	Right      bool
	Up         bool
	Down       bool
	Sprinting  bool
	ShouldRoll bool

	DeltaYaw   float32
	DeltaPitch float32
}

// NewFrame clears the per-frame fields in preparation for the next frame.
// ShouldRoll persists across frames; it follows the middle-mouse hold state
// driven by the button handler, not per-frame accumulation.
func (m *MovementInput) NewFrame() {
	m.Forward = false
	m.Backward = false
	m.Left = false
	m.Right = false
	m.Up = false
	m.Down = false
	m.Sprinting = false
	m.DeltaYaw = 0.0
	m.DeltaPitch = 0.0
}
