// Package geom provides utilities for manipulating rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// vastly extends their capabilities. Unlike the image package, geom
// uses a y-up coordinate system: a rectangle's top is its Max.Y and
// its bottom is its Min.Y.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	Integer | constraints.Float
}

// Integer is a constraint for any integer type.
type Integer interface {
	constraints.Integer
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight

	EdgesHorizontal = EdgeLeft | EdgeRight
	EdgesVertical   = EdgeTop | EdgeBottom
	EdgesAll        = EdgesHorizontal | EdgesVertical
)

// Axes is a bitmask of the coordinate axes.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY

	AxesBoth = AxisX | AxisY
)

// Axes returns the axes that the edges lie across. EdgeLeft and
// EdgeRight are positions along the x axis, EdgeTop and EdgeBottom
// along the y axis.
func (e Edges) Axes() (a Axes) {
	if e&EdgesHorizontal != 0 {
		a |= AxisX
	}
	if e&EdgesVertical != 0 {
		a |= AxisY
	}
	return a
}

func isFloat[T Scalar]() bool {
	var one T = 1
	return one/2 != 0
}
