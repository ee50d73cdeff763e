package viewport

import "golang.org/x/exp/constraints"

// Transform computes the matrix that maps viewport coordinates to
// normalized device coordinates.
//
// The renderer is assumed to use a normalized space with the origin at the
// center and corners at (-1, -1) and (1, 1). Input points are measured in
// window points with y growing downward. The upper-left corner of the
// viewport maps to (-1, 1) and the lower-right corner to (1, -1):
//
//	| sx   0  -1 |
//	|  0  sy   1 |
//
//	sx =  2 * (draw width  / window width)  / rect width
//	sy = -2 * (draw height / window height) / rect height
//
// The draw/window ratio accounts for HiDPI frame buffers. The rect's own
// width and height, not the draw or window size, set the denominator, so a
// sub-region of the frame buffer can be targeted.
//
// All arithmetic is done in float64 and converted to T at the end.
// Transform never fails: a zero rect or window dimension yields infinite or
// NaN entries. Use Viewport.Validate or Matrix.IsFinite to detect that.
func Transform[T constraints.Float](v Viewport) Matrix[T] {
	dw, dh := float64(v.DrawSize[0]), float64(v.DrawSize[1])
	ww, wh := float64(v.WindowSize[0]), float64(v.WindowSize[1])
	rw, rh := float64(v.Rect[2]), float64(v.Rect[3])

	sx := 2.0 * (dw / ww) / rw
	sy := -2.0 * (dh / wh) / rh

	return Matrix[T]{
		{T(sx), T(0.0), T(-1.0)},
		{T(0.0), T(sy), T(1.0)},
	}
}
