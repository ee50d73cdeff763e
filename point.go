package viewport

import "golang.org/x/exp/constraints"

// Point represents a 2D point or vector.
type Point[T constraints.Float] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T constraints.Float](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}
