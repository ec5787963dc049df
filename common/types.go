// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// ViewportRegion describes the rectangle of the render target a frame draws
// into, in pixels. Hosts that render into a sub-region of the window (such as
// an editor viewport) set X/Y to the region's top-left offset.
type ViewportRegion struct {
	// X is the horizontal offset of the region's top-left corner in pixels.
	X float32
	// Y is the vertical offset of the region's top-left corner in pixels.
	Y float32
	// Width is the region width in pixels.
	Width float32
	// Height is the region height in pixels.
	Height float32
}

// IsEmpty reports whether the region has no renderable area.
//
// Returns:
//   - bool: true when either dimension is zero or negative
func (v ViewportRegion) IsEmpty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Aspect returns the region's width/height ratio.
// Returns 1 for an empty region so callers never divide by zero.
//
// Returns:
//   - float32: the aspect ratio
func (v ViewportRegion) Aspect() float32 {
	if v.IsEmpty() {
		return 1
	}
	return v.Width / v.Height
}
