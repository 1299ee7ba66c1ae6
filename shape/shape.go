// Package shape implements an algebra of axis-aligned shapes:
// rectangles, path segments, and groups of either.
//
// Every shape can be read and positioned through the named handles of
// package geom, so that, for example,
//
//	small.TranslateTo(shape.Targets{geom.Center: big.TopRight()})
//
// moves small so that its center lands on the top-right corner of
// big. Methods named Translate, TranslateTo, and Stretch return
// modified copies and leave the receiver alone, while Move, MoveTo,
// and StretchInPlace modify the receiver.
//
// Coordinates are y-up, as in package geom.
package shape

import (
	"maps"

	"deedles.dev/shapes/geom"
)

// Point is the coordinate and vector type used by shapes.
type Point = geom.Point[float64]

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}

// Shape is implemented by *Rect, *Segment, and *Group.
type Shape interface {
	// Bounds returns the current extent of the shape. For groups it is
	// recomputed from the children on every call.
	Bounds() geom.Rect[float64]

	// Data returns the user data attached to the shape, which
	// renderers use to look up its style.
	Data() any

	// IsInsideOf reports whether the shape lies entirely within other.
	// Shared edges count as inside.
	IsInsideOf(other Shape) bool

	move(delta Point)
	clone(deep bool) Shape
}

// Style is a set of style properties, such as CSS properties, that
// can be used as a shape's user data. Unlike other user data, a Style
// is duplicated by deep copies.
type Style map[string]string

// Clone returns an independent copy of s.
func (s Style) Clone() Style {
	return maps.Clone(s)
}

// Cloner is implemented by user data that knows how to duplicate
// itself during a deep copy. User data that is neither a Style nor a
// Cloner is shared even by deep copies.
type Cloner interface {
	Clone() any
}

func cloneData(data any) any {
	switch data := data.(type) {
	case Style:
		return data.Clone()
	case Cloner:
		return data.Clone()
	default:
		return data
	}
}

// Must panics if err is not nil and otherwise returns v. It is
// intended for building fixed shapes from constants, such as
//
//	r := shape.Must(shape.FromEdges(0, 0, 4, 6, nil))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// extent returns the bounds of s. It reports false for groups with
// nothing in them, which have no extent at all.
func extent(s Shape) (geom.Rect[float64], bool) {
	if g, ok := s.(*Group); ok {
		return g.bounds()
	}
	return s.Bounds(), true
}

func inside(s, other Shape) bool {
	ob, ok := extent(other)
	if !ok {
		return false
	}
	return s.Bounds().In(ob)
}
