package common

// Key is a virtual key code for cross-platform input handling.
// Values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key uint32

const (
	KeyW     Key = 87 // W key (ASCII)
	KeyA     Key = 65 // A key (ASCII)
	KeyS     Key = 83 // S key (ASCII)
	KeyD     Key = 68 // D key (ASCII)
	KeySpace Key = 32 // Spacebar (ASCII)
)

// Additional non-printable keys
const (
	KeyLeftShift   Key = 340 // Left Shift (GLFW)
	KeyLeftControl Key = 341 // Left Control (GLFW)
)

// MouseButton identifies a mouse button in input events.
// Values match GLFW mouse button numbering.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// ScrollPhase describes where a scroll gesture is in its lifecycle. Hosts
// whose wheel events carry no gesture phases report every tick as
// ScrollPhaseMoved.
type ScrollPhase uint8

const (
	ScrollPhaseStarted ScrollPhase = iota
	ScrollPhaseMoved
	ScrollPhaseEnded
	ScrollPhaseCancelled
)
