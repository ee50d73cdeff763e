// Package viewport maps viewport coordinates to normalized device coordinates.
//
// # Overview
//
// On HiDPI displays three sizes diverge: the window's logical size in points,
// the frame buffer's physical size in pixels, and the viewport rectangle
// being drawn into. Viewport stores all three, and Transform derives the 2x3
// affine matrix that takes a point in the viewport to the normalized device
// coordinate space of a GPU pipeline.
//
// # Quick Start
//
//	import "github.com/gogpu/viewport"
//
//	v := viewport.Viewport{
//	    Rect:       [4]int32{10, 10, 80, 80},
//	    DrawSize:   [2]uint32{100, 100},
//	    WindowSize: [2]uint32{50, 50},
//	}
//	m := viewport.Transform[float32](v)
//	p := m.TransformPoint(viewport.Pt[float32](20, 20)) // (0, 0)
//
// # Coordinate System
//
// Input points use window coordinates:
//   - Origin (0,0) at top-left of the viewport
//   - X increases right
//   - Y increases down
//
// Output points use normalized device coordinates:
//   - Origin (0,0) at the center
//   - Upper-left corner at (-1, 1), lower-right corner at (1, -1)
//
// # Degenerate Input
//
// Transform never returns an error. Zero rect or window dimensions produce
// infinite or NaN entries. Call Viewport.Validate before, or
// Matrix.IsFinite after, when the sizes come from an untrusted source.
//
// # Integration
//
// FromWindow and FromExtent build viewports from gogpu window providers and
// surface extents. The gpu sub-package applies a Viewport to a render pass
// and uploads the matrix to a vertex shader.
package viewport
