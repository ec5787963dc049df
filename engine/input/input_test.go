package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyngine/dyngine/common"
)

func TestDeviceKeyStateTransitions(t *testing.T) {
	d := NewDeviceInputHandler()

	// Keys never reported read as released.
	assert.False(t, d.IsPressed(common.KeyW))

	d.SetKeyState(common.KeyW, true)
	assert.True(t, d.IsPressed(common.KeyW))
	assert.False(t, d.IsPressed(common.KeyS))

	d.SetKeyState(common.KeyW, false)
	assert.False(t, d.IsPressed(common.KeyW))
}

func TestHandlerRegistersDevicesOnFirstEvent(t *testing.T) {
	h := NewHandler()

	_, ok := h.Primary()
	assert.False(t, ok)

	h.SetKeyState(DeviceID(7), common.KeyA, true)
	primary, ok := h.Primary()
	require.True(t, ok)
	assert.True(t, primary.IsPressed(common.KeyA))
}

func TestPrimaryIsFirstDeviceSeen(t *testing.T) {
	h := NewHandler()

	h.SetKeyState(DeviceID(2), common.KeyW, true)
	h.SetKeyState(DeviceID(1), common.KeyS, true)

	// The primary keyboard stays the first device that ever reported, even
	// after lower-numbered devices show up.
	primary, ok := h.Primary()
	require.True(t, ok)
	assert.True(t, primary.IsPressed(common.KeyW))
	assert.False(t, primary.IsPressed(common.KeyS))
}

func TestHandlerKeepsDevicesSeparate(t *testing.T) {
	h := NewHandler()

	h.SetKeyState(DeviceID(0), common.KeyD, true)
	h.SetKeyState(DeviceID(1), common.KeyD, false)

	assert.True(t, h.Device(DeviceID(0)).IsPressed(common.KeyD))
	assert.False(t, h.Device(DeviceID(1)).IsPressed(common.KeyD))
}

func TestDeviceReturnsSameTracker(t *testing.T) {
	h := NewHandler()
	assert.Same(t, h.Device(DeviceID(3)), h.Device(DeviceID(3)))
}
