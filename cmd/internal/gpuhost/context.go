// Package gpuhost owns the WebGPU bootstrap shared by the windowed hosts:
// instance, surface, adapter, device, queue, surface configuration, and the
// optional multisampled color target.
package gpuhost

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Context is the host's GPU state for one window surface.
type Context struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceConfig *wgpu.SurfaceConfiguration
	sampleCount   uint32

	// msaaView is the multisampled color target; nil when sampleCount is 1.
	// Recreated on every Configure since its extent must match the surface.
	msaaView *wgpu.TextureView
}

// NewContext creates the full GPU stack over a window surface and configures
// it at the given size.
//
// Parameters:
//   - surfaceDescriptor: the platform surface descriptor from the window
//   - width: initial surface width in pixels
//   - height: initial surface height in pixels
//   - sampleCount: MSAA sample count (1 disables multisampling)
//
// Returns:
//   - *Context: the configured GPU context
//   - error: error when adapter or device acquisition fails
func NewContext(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, sampleCount uint32) (*Context, error) {
	if sampleCount == 0 {
		sampleCount = 1
	}

	c := &Context{
		instance:    wgpu.CreateInstance(nil),
		sampleCount: sampleCount,
	}
	c.surface = c.instance.CreateSurface(surfaceDescriptor)

	adapter, err := c.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: c.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	c.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	c.device = device
	c.queue = device.GetQueue()

	if err := c.Configure(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Device returns the GPU device.
func (c *Context) Device() *wgpu.Device { return c.device }

// Queue returns the GPU queue.
func (c *Context) Queue() *wgpu.Queue { return c.queue }

// Surface returns the window surface.
func (c *Context) Surface() *wgpu.Surface { return c.surface }

// SurfaceConfig returns the current surface configuration.
func (c *Context) SurfaceConfig() *wgpu.SurfaceConfiguration { return c.surfaceConfig }

// MSAAView returns the multisampled color target, or nil when multisampling
// is disabled.
func (c *Context) MSAAView() *wgpu.TextureView { return c.msaaView }

// Configure (re)configures the surface at the given size and rebuilds the
// multisampled color target to match. Called at startup and on every resize.
//
// Parameters:
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - error: error when the multisampled texture cannot be created
func (c *Context) Configure(width, height int) error {
	capabilities := c.surface.GetCapabilities(c.adapter)
	format := capabilities.Formats[0]

	c.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	}
	c.surface.Configure(c.adapter, c.device, c.surfaceConfig)

	if c.msaaView != nil {
		c.msaaView.Release()
		c.msaaView = nil
	}
	if c.sampleCount > 1 {
		msaaTexture, err := c.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Color Target",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   c.sampleCount,
			Dimension:     wgpu.TextureDimension2D,
			Format:        format,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			return fmt.Errorf("failed to create MSAA texture: %w", err)
		}
		msaaView, err := msaaTexture.CreateView(nil)
		if err != nil {
			return fmt.Errorf("failed to create MSAA texture view: %w", err)
		}
		c.msaaView = msaaView
	}
	return nil
}

// AcquireFrame acquires the next surface texture and a view over it.
// The caller owns both and must Release them after presenting.
//
// Returns:
//   - *wgpu.Texture: the acquired surface texture
//   - *wgpu.TextureView: a view over the texture
//   - error: error when acquisition fails (e.g. outdated surface)
func (c *Context) AcquireFrame() (*wgpu.Texture, *wgpu.TextureView, error) {
	surfaceTexture, err := c.surface.GetCurrentTexture()
	if err != nil {
		return nil, nil, err
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return nil, nil, err
	}
	return surfaceTexture, view, nil
}

// Present presents the surface.
func (c *Context) Present() {
	c.surface.Present()
}
