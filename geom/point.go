package geom

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrZeroLength is returned when an operation needs a direction but
// was given a vector of length zero.
var ErrZeroLength = errors.New("zero-length vector")

// Point is a 2D point or vector.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// Mul multiplies both components of p by s.
func (p Point[T]) Mul(s T) Point[T] {
	return Point[T]{X: p.X * s, Y: p.Y * s}
}

// Div divides both components of p by s. It follows Go's division
// rules for T, so integer division truncates and panics if s is zero
// while float division yields infinities.
func (p Point[T]) Div(s T) Point[T] {
	return Point[T]{X: p.X / s, Y: p.Y / s}
}

// FloorDiv divides both components of p by s and rounds the results
// towards negative infinity, regardless of whether T is an integer
// or a floating-point type.
func (p Point[T]) FloorDiv(s T) Point[T] {
	return Point[T]{X: floorDiv(p.X, s), Y: floorDiv(p.Y, s)}
}

func floorDiv[T Scalar](a, b T) T {
	if isFloat[T]() {
		return T(math.Floor(float64(a) / float64(b)))
	}

	q := a / b
	if (q*b != a) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Dot returns the dot product of p and q.
func (p Point[T]) Dot(q Point[T]) T {
	return p.X*q.X + p.Y*q.Y
}

// Len returns the Euclidean length of p.
func (p Point[T]) Len() float64 {
	return math.Hypot(float64(p.X), float64(p.Y))
}

// YX returns p with its components swapped.
func (p Point[T]) YX() Point[T] {
	return Point[T]{X: p.Y, Y: p.X}
}

// Mask zeroes the components of p that lie on axes not in a.
func (p Point[T]) Mask(a Axes) Point[T] {
	if a&AxisX == 0 {
		p.X = 0
	}
	if a&AxisY == 0 {
		p.Y = 0
	}
	return p
}

// In returns true if p lies within r, including its edges.
func (p Point[T]) In(r Rect[T]) bool {
	return (r.Min.X <= p.X) && (p.X <= r.Max.X) &&
		(r.Min.Y <= p.Y) && (p.Y <= r.Max.Y)
}

// IsFinite returns false if either component of p is NaN or infinite.
func (p Point[T]) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite[T Scalar](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Normalize returns a vector with the same direction as p but a
// length of 1. It returns ErrZeroLength if p has no length.
func Normalize[T constraints.Float](p Point[T]) (Point[T], error) {
	l := p.Len()
	if l == 0 {
		return Point[T]{}, ErrZeroLength
	}
	return p.Div(T(l)), nil
}

// Conv converts the components of p to another Scalar type.
func Conv[To, From Scalar](p Point[From]) Point[To] {
	return Point[To]{X: To(p.X), Y: To(p.Y)}
}
