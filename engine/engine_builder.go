package engine

import (
	"go.uber.org/zap"
)

// BuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type BuilderOption func(*engineInstance)

// WithLogger sets the engine's structured logger.
// The engine logs nothing by default.
//
// Parameters:
//   - logger: the logger to use (nil is ignored)
//
// Returns:
//   - BuilderOption: option function to apply
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(e *engineInstance) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithSampleCount sets the MSAA sample count for the render pipeline and the
// frame render pass. A count of 1 disables multisampling (default); counts
// above 1 require the host to supply a multisampled color target to Render.
// Values <= 0 are treated as 1.
//
// Parameters:
//   - sampleCount: MSAA samples per pixel (1, 2, 4, ...)
//
// Returns:
//   - BuilderOption: option function to apply
func WithSampleCount(sampleCount uint32) BuilderOption {
	return func(e *engineInstance) {
		if sampleCount == 0 {
			sampleCount = 1
		}
		e.sampleCount = sampleCount
	}
}
