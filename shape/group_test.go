package shape_test

import (
	"maps"
	"testing"

	"deedles.dev/shapes/geom"
	"deedles.dev/shapes/shape"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64, data any) *shape.Rect {
	return shape.Must(shape.Slice(shape.To(x, x+size), shape.To(y, y+size), data))
}

func TestGroupBounds(t *testing.T) {
	var g shape.Group
	require.True(t, g.Empty())
	require.Equal(t, geom.Rect[float64]{}, g.Bounds())
	require.Equal(t, "{}", g.String())

	g.Append(square(0, 0, 1, nil), nil, square(1, 1, 1, nil))
	require.Equal(t, 2, g.Len())
	require.Equal(t, "{[0:1, 0:1], [1:2, 1:2]} [0:2, 0:2]", g.String())
	require.Equal(t, 2.0, g.Width())
	require.Equal(t, 2.0, g.Height())
	require.Equal(t, shape.Pt(1, 1), g.Center())
	require.Equal(t, shape.Pt(0, 2), g.At(geom.TopLeft))

	g.Append(new(shape.Group))
	require.Equal(t, geom.Rt(0.0, 0, 2, 2), g.Bounds())

	far := square(-5, 5, 1, nil)
	g.Append(far)
	require.Equal(t, geom.Rt(-5.0, 0, 2, 6), g.Bounds())

	far.Move(shape.Pt(10, 0))
	require.Equal(t, 6.0, g.Right())
	require.Equal(t, 0.0, g.Left())
}

func TestGroupAppendSelf(t *testing.T) {
	g := shape.NewGroup()
	require.Panics(t, func() { g.Append(g) })
}

func TestGroupGrid(t *testing.T) {
	g := new(shape.Group).Grid(2, 2, 10, 10, func(row, col int) shape.Shape {
		return shape.Must(shape.Slice(shape.To(0, 5), shape.To(0, 5), nil))
	})
	require.Equal(t, 4, g.Len())
	require.Equal(t, 15.0, g.Width())
	require.Equal(t, 15.0, g.Height())
	require.Equal(t, "[10:15, 0:5]", g.Shapes[1].(*shape.Rect).String())
	require.Equal(t, "[0:5, 10:15]", g.Shapes[2].(*shape.Rect).String())

	checker := new(shape.Group).Grid(3, 3, 1, -1, func(row, col int) shape.Shape {
		if (row+col)%2 != 0 {
			return nil
		}
		return square(0, 0, 1, nil)
	})
	require.Equal(t, 5, checker.Len())
	require.Equal(t, geom.Rt(0.0, -2, 3, 1), checker.Bounds())
}

func TestGroupLeaves(t *testing.T) {
	own := square(2, 2, 1, "own")
	inner := &shape.Group{UserData: "inner"}
	inner.Append(square(1, 1, 1, nil), own)

	outer := &shape.Group{UserData: "outer"}
	outer.Append(square(0, 0, 1, nil), inner, shape.NewGroup(square(3, 3, 1, nil)))

	var data []any
	for s, d := range outer.Leaves() {
		require.NotNil(t, s)
		data = append(data, d)
	}
	require.Equal(t, []any{"outer", "inner", "own", "outer"}, data)

	var count int
	for range outer.Leaves() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestGroupMove(t *testing.T) {
	child := square(0, 0, 1, nil)
	inner := shape.NewGroup(child)
	outer := shape.NewGroup(inner, square(2, 2, 1, nil))

	err := outer.MoveTo(shape.Targets{geom.TopRight: shape.Pt(0, 0)})
	require.Nil(t, err)
	require.Equal(t, geom.Rt(-3.0, -3, 0, 0), outer.Bounds())
	require.Equal(t, "[-3:-2, -3:-2]", child.String())

	moved := outer.Translate(shape.Pt(3, 3))
	require.Equal(t, geom.Rt(0.0, 0, 3, 3), moved.Bounds())
	require.Equal(t, "[-3:-2, -3:-2]", child.String())

	moved, err = outer.TranslateTo(shape.Targets{geom.Center: shape.Pt(0, 0)})
	require.Nil(t, err)
	require.Equal(t, shape.Pt(0, 0), moved.Center())

	_, err = outer.TranslateTo(shape.Targets{geom.Left: shape.Pt(0, 0), geom.Right: shape.Pt(0, 0)})
	require.ErrorIs(t, err, shape.ErrConflictingTargets)
}

func TestGroupCopy(t *testing.T) {
	style := shape.Style{"background": "red"}
	child := square(0, 0, 1, style)
	g := &shape.Group{UserData: shape.Style{"color": "blue"}}
	g.Append(shape.NewGroup(child))

	shallow := g.Copy()
	shallow.Append(square(5, 5, 1, nil))
	require.Equal(t, 1, g.Len())
	shallow.Move(shape.Pt(1, 0))
	require.Equal(t, 1.0, child.Left())

	deep := g.DeepCopy()
	deep.Move(shape.Pt(1, 0))
	require.Equal(t, 1.0, child.Left())
	require.Equal(t, 2.0, deep.Left())

	for s, d := range deep.Leaves() {
		d.(shape.Style)["background"] = "green"
		require.NotSame(t, child, s)
	}
	require.Equal(t, "red", style["background"])

	deep.UserData.(shape.Style)["color"] = "white"
	require.Equal(t, "blue", g.UserData.(shape.Style)["color"])

	replaced := g.WithData(nil)
	require.Nil(t, replaced.Data())
	require.NotNil(t, g.Data())
}

func TestGroupUpdate(t *testing.T) {
	a := shape.NewGroup(square(0, 0, 1, nil))
	b := shape.NewGroup(square(1, 1, 1, nil), square(2, 2, 1, nil))
	a.Update(b)
	require.Equal(t, 3, a.Len())
	require.Same(t, b.Shapes[1], a.Shapes[2])

	a.Extend(maps.Keys(map[shape.Shape]struct{}{square(3, 3, 1, nil): {}}))
	require.Equal(t, 4, a.Len())
	require.Equal(t, 4.0, a.Width())
}

func TestGroupInside(t *testing.T) {
	g := shape.NewGroup(square(0, 0, 1, nil), square(1, 1, 1, nil))
	outer := square(-1, -1, 4, nil)
	require.True(t, g.IsInsideOf(outer))
	require.True(t, outer.Contains(g))
	require.True(t, g.Contains(square(0.5, 0.5, 1, nil)))

	i := outer.Intersection(g)
	require.NotNil(t, i)
	require.Equal(t, g.Bounds(), i.Rect)
}

func TestGroupEmptyCombine(t *testing.T) {
	r := shape.Must(shape.FromEdges(10, 10, 11, 11, "red"))
	empty := shape.NewGroup(new(shape.Group))
	require.Equal(t, "[10:11, 10:11]", shape.NewGroup(r, empty).Bounds().String())

	u := r.Union(empty)
	require.Equal(t, r.Rect, u.Rect)
	require.Nil(t, u.Data())
	require.NotSame(t, r, u)

	require.Nil(t, r.Intersection(empty))
	require.Nil(t, r.Intersection(new(shape.Group)))
	require.False(t, r.IsInsideOf(empty))
	require.False(t, r.IsInsideOf(new(shape.Group)))

	s := shape.Must(shape.NewSegment(shape.Pt(10, 10), shape.Pt(20, 10), 2, nil))
	su, ok := s.Union(empty).(*shape.Segment)
	require.True(t, ok)
	require.Equal(t, s.Rect, su.Rect)
	require.Equal(t, s.Dir, su.Dir)
	require.Nil(t, s.Intersection(empty))
	require.False(t, s.IsInsideOf(empty))
}

func TestGroupTiles(t *testing.T) {
	g := shape.NewGroup(square(0, 0, 2, "a"), square(2, 0, 1, nil))

	tiles := make(map[geom.Cell]*shape.Group)
	for cell, tile := range g.Tiles(3, shape.Right, 2, shape.Down) {
		tiles[cell] = tile
	}
	require.Len(t, tiles, 6)
	require.Equal(t, g.Bounds(), tiles[geom.Cell{}].Bounds())
	require.Equal(t, geom.Rt(3.0, 0, 6, 2), tiles[geom.Cell{Row: 0, Col: 1}].Bounds())
	require.Equal(t, geom.Rt(0.0, -2, 3, 0), tiles[geom.Cell{Row: 1, Col: 0}].Bounds())
	require.Equal(t, geom.Rt(6.0, -2, 9, 0), tiles[geom.Cell{Row: 1, Col: 2}].Bounds())

	tiles[geom.Cell{Row: 1, Col: 1}].Move(shape.Pt(100, 0))
	require.Equal(t, geom.Rt(0.0, 0, 3, 2), g.Bounds())
}
