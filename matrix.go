package viewport

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| m[0][0]  m[0][1]  m[0][2] |
//	| m[1][0]  m[1][1]  m[1][2] |
//
// This represents the transformation:
//
//	x' = m[0][0]*x + m[0][1]*y + m[0][2]
//	y' = m[1][0]*x + m[1][1]*y + m[1][2]
//
// The scalar type T is chosen by the caller. Matrix is a plain value and is
// safe to copy.
type Matrix[T constraints.Float] [2][3]T

// Identity returns the identity transformation matrix.
func Identity[T constraints.Float]() Matrix[T] {
	return Matrix[T]{
		{1, 0, 0},
		{0, 1, 0},
	}
}

// Convert returns m with every entry converted to the scalar type U.
func Convert[U, T constraints.Float](m Matrix[T]) Matrix[U] {
	return Matrix[U]{
		{U(m[0][0]), U(m[0][1]), U(m[0][2])},
		{U(m[1][0]), U(m[1][1]), U(m[1][2])},
	}
}

// FromAff3 converts an x/image affine matrix. Both use the same row-major
// layout, so entries map one to one.
func FromAff3[T constraints.Float](a f64.Aff3) Matrix[T] {
	return Matrix[T]{
		{T(a[0]), T(a[1]), T(a[2])},
		{T(a[3]), T(a[4]), T(a[5])},
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix[T]) Multiply(other Matrix[T]) Matrix[T] {
	return Matrix[T]{
		{
			m[0][0]*other[0][0] + m[0][1]*other[1][0],
			m[0][0]*other[0][1] + m[0][1]*other[1][1],
			m[0][0]*other[0][2] + m[0][1]*other[1][2] + m[0][2],
		},
		{
			m[1][0]*other[0][0] + m[1][1]*other[1][0],
			m[1][0]*other[0][1] + m[1][1]*other[1][1],
			m[1][0]*other[0][2] + m[1][1]*other[1][2] + m[1][2],
		},
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix[T]) TransformPoint(p Point[T]) Point[T] {
	return Point[T]{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix[T]) TransformVector(p Point[T]) Point[T] {
	return Point[T]{
		X: m[0][0]*p.X + m[0][1]*p.Y,
		Y: m[1][0]*p.X + m[1][1]*p.Y,
	}
}

// Invert returns the inverse matrix.
// The second result is false, and the identity matrix is returned, if the
// matrix is singular or has non-finite entries.
func (m Matrix[T]) Invert() (Matrix[T], bool) {
	a, b, c := float64(m[0][0]), float64(m[0][1]), float64(m[0][2])
	d, e, f := float64(m[1][0]), float64(m[1][1]), float64(m[1][2])

	det := a*e - b*d
	if math.Abs(det) < 1e-10 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity[T](), false
	}

	invDet := 1.0 / det
	inv := Matrix[T]{
		{T(e * invDet), T(-b * invDet), T((b*f - c*e) * invDet)},
		{T(-d * invDet), T(a * invDet), T((c*d - a*f) * invDet)},
	}
	return inv, inv.IsFinite()
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix[T]) IsIdentity() bool {
	return m == Identity[T]()
}

// IsFinite reports whether every entry is neither infinite nor NaN.
// Transform of a viewport with a zero-sized rect or window is not finite.
func (m Matrix[T]) IsFinite() bool {
	for _, row := range m {
		for _, v := range row {
			f := float64(v)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return false
			}
		}
	}
	return true
}

// Scale returns the diagonal entries.
func (m Matrix[T]) Scale() (sx, sy T) {
	return m[0][0], m[1][1]
}

// Translation returns the translation column.
func (m Matrix[T]) Translation() (tx, ty T) {
	return m[0][2], m[1][2]
}

// Aff3 returns m as a float64 x/image affine matrix, suitable for
// golang.org/x/image/draw transformers.
func (m Matrix[T]) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m[0][0]), float64(m[0][1]), float64(m[0][2]),
		float64(m[1][0]), float64(m[1][1]), float64(m[1][2]),
	}
}

// Aff3f32 returns m as a float32 x/image affine matrix.
func (m Matrix[T]) Aff3f32() f32.Aff3 {
	return f32.Aff3{
		float32(m[0][0]), float32(m[0][1]), float32(m[0][2]),
		float32(m[1][0]), float32(m[1][1]), float32(m[1][2]),
	}
}
