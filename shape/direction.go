package shape

import (
	"fmt"

	"deedles.dev/shapes/geom"
)

// Direction is a direction along one of the coordinate axes.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// DirectionOf returns the direction that v points in. It returns
// geom.ErrZeroLength if v has no length and ErrNotAxisAligned if v is
// not parallel to an axis.
func DirectionOf(v Point) (Direction, error) {
	switch {
	case (v.X == 0) && (v.Y == 0):
		return 0, geom.ErrZeroLength
	case v.X == 0:
		if v.Y > 0 {
			return Up, nil
		}
		return Down, nil
	case v.Y == 0:
		if v.X > 0 {
			return Right, nil
		}
		return Left, nil
	default:
		return 0, fmt.Errorf("vector %v: %w", v, ErrNotAxisAligned)
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Vector returns the unit vector pointing in d.
func (d Direction) Vector() Point {
	switch d {
	case Up:
		return Pt(0, 1)
	case Down:
		return Pt(0, -1)
	case Left:
		return Pt(-1, 0)
	case Right:
		return Pt(1, 0)
	default:
		return Point{}
	}
}

// Mul returns the vector of length n pointing in d.
func (d Direction) Mul(n float64) Point {
	return d.Vector().Mul(n)
}

func (d Direction) IsHorizontal() bool {
	return (d == Left) || (d == Right)
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// StartHandle returns the handle of a rectangle that a segment
// pointing in d starts at. For example, a segment pointing up starts
// at the bottom center of its rectangle.
func (d Direction) StartHandle() geom.Handle {
	return d.EndHandle().Opposite()
}

// EndHandle returns the handle of a rectangle that a segment pointing
// in d ends at.
func (d Direction) EndHandle() geom.Handle {
	switch d {
	case Up:
		return geom.TopCenter
	case Down:
		return geom.BottomCenter
	case Left:
		return geom.CenterLeft
	case Right:
		return geom.CenterRight
	default:
		return geom.Center
	}
}
