package input

import (
	"github.com/dyngine/dyngine/common"
)

// DeviceID identifies one physical input device, as reported by the host
// windowing layer.
type DeviceID uint64

// DeviceInputHandler tracks the pressed state of every key seen on a single
// device. Keys never reported are treated as released.
type DeviceInputHandler struct {
	keyStates map[common.Key]bool
}

// NewDeviceInputHandler creates an empty per-device key state tracker.
//
// Returns:
//   - *DeviceInputHandler: the tracker with no keys recorded
func NewDeviceInputHandler() *DeviceInputHandler {
	return &DeviceInputHandler{keyStates: make(map[common.Key]bool)}
}

// SetKeyState records a key transition for this device.
//
// Parameters:
//   - key: the key that changed state
//   - pressed: true on press, false on release
func (d *DeviceInputHandler) SetKeyState(key common.Key, pressed bool) {
	d.keyStates[key] = pressed
}

// IsPressed reports whether key is currently held on this device.
//
// Returns:
//   - bool: true when the key's last recorded transition was a press
func (d *DeviceInputHandler) IsPressed(key common.Key) bool {
	return d.keyStates[key]
}

// Handler owns one DeviceInputHandler per device and designates the first
// device that ever reported an event as the primary keyboard.
type Handler struct {
	devices map[DeviceID]*DeviceInputHandler

	// deviceOrder preserves insertion order; Go maps iterate randomly.
	deviceOrder []DeviceID
}

// NewHandler creates an input handler with no known devices.
//
// Returns:
//   - *Handler: the empty handler
func NewHandler() *Handler {
	return &Handler{devices: make(map[DeviceID]*DeviceInputHandler)}
}

// Device returns the per-device tracker for deviceID, creating it on first
// use. A device becomes known the first time it reports any event.
//
// Parameters:
//   - deviceID: the device to look up
//
// Returns:
//   - *DeviceInputHandler: the device's key state tracker
func (h *Handler) Device(deviceID DeviceID) *DeviceInputHandler {
	device, ok := h.devices[deviceID]
	if !ok {
		device = NewDeviceInputHandler()
		h.devices[deviceID] = device
		h.deviceOrder = append(h.deviceOrder, deviceID)
	}
	return device
}

// SetKeyState records a key transition for the given device, registering the
// device if it has not been seen before.
//
// Parameters:
//   - deviceID: the device reporting the transition
//   - key: the key that changed state
//   - pressed: true on press, false on release
func (h *Handler) SetKeyState(deviceID DeviceID, key common.Key, pressed bool) {
	h.Device(deviceID).SetKeyState(key, pressed)
}

// Primary returns the tracker of the first device that ever reported an
// event. Movement key polling reads from this device.
//
// Returns:
//   - *DeviceInputHandler: the primary device's tracker
//   - bool: false when no device has reported yet
func (h *Handler) Primary() (*DeviceInputHandler, bool) {
	if len(h.deviceOrder) == 0 {
		return nil, false
	}
	return h.devices[h.deviceOrder[0]], true
}
