package shape_test

import (
	"testing"

	"deedles.dev/shapes/geom"
	"deedles.dev/shapes/shape"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	g, err := shape.Path(2, "wire", shape.Pt(0, 0), shape.Pt(10, 0), shape.Pt(10, 10))
	require.Nil(t, err)
	require.Equal(t, 2, g.Len())
	require.Equal(t, "[0:11, -1:1] (right) wire", g.Shapes[0].(*shape.Segment).String())
	require.Equal(t, "[9:11, -1:10] (up) wire", g.Shapes[1].(*shape.Segment).String())
	require.Equal(t, geom.Rt(0.0, -1, 11, 10), g.Bounds())

	g, err = shape.Path(2, nil, shape.Pt(0, 0), shape.Pt(0, 0), shape.Pt(10, 0), shape.Pt(10, 0))
	require.Nil(t, err)
	require.Equal(t, 1, g.Len())
	require.Equal(t, "[0:10, -1:1] (right)", g.Shapes[0].(*shape.Segment).String())
}

func TestPathVectors(t *testing.T) {
	g, err := shape.PathVectors(0, nil, shape.Pt(1, 1), shape.Pt(0, 4), shape.Pt(-2, 0), shape.Pt(0, -4))
	require.Nil(t, err)
	require.Equal(t, 3, g.Len())

	var dirs []shape.Direction
	for s := range g.All() {
		dirs = append(dirs, s.(*shape.Segment).Dir)
	}
	require.Equal(t, []shape.Direction{shape.Up, shape.Left, shape.Down}, dirs)
	require.Equal(t, shape.Pt(1, 1), g.Shapes[0].(*shape.Segment).Start())
	require.Equal(t, shape.Pt(-1, 1), g.Shapes[2].(*shape.Segment).End())
}

func TestPathErrors(t *testing.T) {
	_, err := shape.Path(1, nil, shape.Pt(0, 0))
	require.ErrorIs(t, err, shape.ErrTooFewPoints)

	_, err = shape.Path(1, nil, shape.Pt(0, 0), shape.Pt(0, 0))
	require.ErrorIs(t, err, shape.ErrTooFewPoints)

	_, err = shape.Path(1, nil, shape.Pt(0, 0), shape.Pt(1, 0), shape.Pt(2, 2))
	require.ErrorIs(t, err, shape.ErrNotAxisAligned)

	_, err = shape.Path(-1, nil, shape.Pt(0, 0), shape.Pt(1, 0))
	require.ErrorIs(t, err, shape.ErrMalformed)
}

func TestPathFromPoints(t *testing.T) {
	var calls [][2]shape.Point
	g := shape.PathFromPoints(
		[]shape.Point{shape.Pt(0, 0), shape.Pt(3, 4), shape.Pt(3, 4), shape.Pt(6, 0)},
		func(from, to shape.Point) shape.Shape {
			calls = append(calls, [2]shape.Point{from, to})
			if from.X == 3 {
				return nil
			}
			return shape.NewRect(geom.Rect[float64]{Min: from, Max: to}, nil)
		},
	)
	require.Equal(t, [][2]shape.Point{
		{shape.Pt(0, 0), shape.Pt(3, 4)},
		{shape.Pt(3, 4), shape.Pt(6, 0)},
	}, calls)
	require.Equal(t, 1, g.Len())
	require.Equal(t, "[0:3, 0:4]", g.Shapes[0].(*shape.Rect).String())
}

func TestPathFromVectors(t *testing.T) {
	g := shape.PathFromVectors(shape.Pt(0, 0), []shape.Point{shape.Pt(5, 0), shape.Pt(0, 5)}, shape.SegmentPath(1, nil))
	require.Equal(t, 2, g.Len())
	require.Equal(t, "[0:5, -0.5:0.5] (right)", g.Shapes[0].(*shape.Segment).String())
	require.Equal(t, "[4.5:5.5, 0:5] (up)", g.Shapes[1].(*shape.Segment).String())

	require.Panics(t, func() {
		shape.PathFromVectors(shape.Pt(0, 0), []shape.Point{shape.Pt(1, 1)}, shape.SegmentPath(1, nil))
	})
}
