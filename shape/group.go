package shape

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"deedles.dev/shapes/geom"
)

// Group is an ordered collection of shapes, which may include other
// groups. Later shapes are drawn on top of earlier ones.
//
// A group's geometry is the bounding box of its children. It is never
// cached, so changes made to a child directly are visible through the
// group immediately. A group with no non-empty children has the zero
// rectangle as its bounds.
//
// A shape should belong to only one group at a time. This is not
// enforced, but a shape shared between groups, such as after a call
// to Copy, is moved by moving either of them.
type Group struct {
	Shapes []Shape

	// UserData is used as the user data of any descendant that has
	// none of its own when rendering.
	UserData any
}

// NewGroup returns a group containing the given shapes.
func NewGroup(shapes ...Shape) *Group {
	return new(Group).Append(shapes...)
}

// Append adds shapes to the end of the group and returns the group.
// Nil shapes are ignored. It panics if asked to add g to itself.
func (g *Group) Append(shapes ...Shape) *Group {
	for _, s := range shapes {
		g.append(s)
	}
	return g
}

func (g *Group) append(s Shape) {
	if s == nil {
		return
	}
	if s, ok := s.(*Group); ok && (s == g) {
		panic("group cannot contain itself")
	}
	g.Shapes = append(g.Shapes, s)
}

// Extend adds every shape yielded by seq to the end of the group and
// returns the group.
func (g *Group) Extend(seq iter.Seq[Shape]) *Group {
	for s := range seq {
		g.append(s)
	}
	return g
}

// Update adds the children of other to the end of g, in order, and
// returns g. The children are shared, not copied.
func (g *Group) Update(other *Group) *Group {
	return g.Extend(other.All())
}

// All yields the direct children of g.
func (g *Group) All() iter.Seq[Shape] {
	return slices.Values(g.Shapes)
}

// Len returns the number of direct children of g.
func (g *Group) Len() int {
	return len(g.Shapes)
}

// Leaves walks the tree rooted at g depth-first and yields every shape
// that is not a group, along with the user data that should be used
// to style it: its own if it has any, or that of the closest
// enclosing group that has some otherwise.
func (g *Group) Leaves() iter.Seq2[Shape, any] {
	return func(yield func(Shape, any) bool) {
		g.leaves(nil, yield)
	}
}

func (g *Group) leaves(inherited any, yield func(Shape, any) bool) bool {
	if g.UserData != nil {
		inherited = g.UserData
	}

	for _, s := range g.Shapes {
		if sub, ok := s.(*Group); ok {
			if !sub.leaves(inherited, yield) {
				return false
			}
			continue
		}

		data := s.Data()
		if data == nil {
			data = inherited
		}
		if !yield(s, data) {
			return false
		}
	}
	return true
}

func (g *Group) bounds() (b geom.Rect[float64], ok bool) {
	for _, s := range g.Shapes {
		sb := s.Bounds()
		if sub, isGroup := s.(*Group); isGroup {
			var nonEmpty bool
			sb, nonEmpty = sub.bounds()
			if !nonEmpty {
				continue
			}
		}

		if !ok {
			b, ok = sb, true
			continue
		}
		b = b.Union(sb)
	}
	return b, ok
}

// Bounds returns the union of the bounds of all of the children of g.
func (g *Group) Bounds() geom.Rect[float64] {
	b, _ := g.bounds()
	return b
}

// Empty reports whether g has no children with any bounds, including
// groups that only contain empty groups.
func (g *Group) Empty() bool {
	_, ok := g.bounds()
	return !ok
}

func (g *Group) Left() float64   { return g.Bounds().Left() }
func (g *Group) Right() float64  { return g.Bounds().Right() }
func (g *Group) Bottom() float64 { return g.Bounds().Bottom() }
func (g *Group) Top() float64    { return g.Bounds().Top() }
func (g *Group) Width() float64  { return g.Bounds().Dx() }
func (g *Group) Height() float64 { return g.Bounds().Dy() }

// X returns the x coordinate of the center of g's bounds.
func (g *Group) X() float64 { return g.Center().X }

// Y returns the y coordinate of the center of g's bounds.
func (g *Group) Y() float64 { return g.Center().Y }

func (g *Group) Center() Point { return g.Bounds().Center() }

// At returns the position of the handle h on g's bounds.
func (g *Group) At(h geom.Handle) Point { return g.Bounds().At(h) }

func (g *Group) Data() any { return g.UserData }

func (g *Group) IsInsideOf(other Shape) bool { return inside(g, other) }

// Contains reports whether other lies entirely within g's bounds.
func (g *Group) Contains(other Shape) bool { return inside(other, g) }

func (g *Group) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, s := range g.Shapes {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprint(&buf, s)
	}
	buf.WriteByte('}')
	if b, ok := g.bounds(); ok {
		buf.WriteByte(' ')
		buf.WriteString(b.String())
	}
	return buf.String()
}

// Copy returns a new group containing the same children as g. Changes
// to the list of children of either group do not affect the other,
// but changes to the children themselves do.
func (g *Group) Copy() *Group {
	return &Group{
		Shapes:   slices.Clone(g.Shapes),
		UserData: g.UserData,
	}
}

// DeepCopy returns a copy of the entire tree rooted at g, including
// nested groups and, where possible, user data. See Cloner.
func (g *Group) DeepCopy() *Group {
	c := Group{
		Shapes:   make([]Shape, 0, len(g.Shapes)),
		UserData: cloneData(g.UserData),
	}
	for _, s := range g.Shapes {
		c.Shapes = append(c.Shapes, s.clone(true))
	}
	return &c
}

// WithData returns a shallow copy of g with its user data replaced.
func (g *Group) WithData(data any) *Group {
	c := g.Copy()
	c.UserData = data
	return c
}

func (g *Group) clone(deep bool) Shape {
	if deep {
		return g.DeepCopy()
	}
	return g.Copy()
}

func (g *Group) move(delta Point) {
	for _, s := range g.Shapes {
		s.move(delta)
	}
}

// Move translates every shape in g by delta in place.
func (g *Group) Move(delta Point) {
	g.move(delta)
}

// MoveTo translates every shape in g in place so that the handles in
// targets, resolved against g's bounds, land on their points.
func (g *Group) MoveTo(targets Targets) error {
	delta, err := targets.delta(g.Bounds())
	if err != nil {
		return err
	}
	g.move(delta)
	return nil
}

// Translate returns a deep copy of g moved by delta.
func (g *Group) Translate(delta Point) *Group {
	c := g.DeepCopy()
	c.Move(delta)
	return c
}

// TranslateTo returns a deep copy of g moved so that the handles in
// targets, resolved against g's bounds, land on their points.
func (g *Group) TranslateTo(targets Targets) (*Group, error) {
	c := g.DeepCopy()
	err := c.MoveTo(targets)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Grid appends rows*cols shapes laid out on a lattice to g and returns
// g. The shape for the cell at row and col is produced by calling
// factory and is then moved by (col*xStep, row*yStep), so a factory
// that builds its shapes around the origin gets them arranged
// relative to the origin of g's coordinate space. Cells are visited in
// row-major order. If factory returns nil, that cell is left empty.
// The group takes ownership of the shapes that factory returns, so it
// must return a new shape for every cell.
func (g *Group) Grid(rows, cols int, xStep, yStep float64, factory func(row, col int) Shape) *Group {
	for cell, offset := range geom.Lattice(rows, cols, Pt(xStep, 0), Pt(0, yStep)) {
		s := factory(cell.Row, cell.Col)
		if s == nil {
			continue
		}
		s.move(offset)
		g.append(s)
	}
	return g
}

// Tiles yields cols*rows deep copies of g laid out edge to edge, the
// first of which is in the same place as g. Each column is placed
// past the previous one in the direction xdir and each row past the
// previous one in the direction ydir. For example,
//
//	g.Tiles(5, shape.Right, 3, shape.Down)
//
// yields copies arranged as
//
//	XOOOO
//	OOOOO
//	OOOOO
//
// where X is at the position of g.
func (g *Group) Tiles(cols int, xdir Direction, rows int, ydir Direction) iter.Seq2[geom.Cell, *Group] {
	return func(yield func(geom.Cell, *Group) bool) {
		b := g.Bounds()
		colStep, rowStep := xdir.Mul(dirExtent(b, xdir)), ydir.Mul(dirExtent(b, ydir))
		for cell, offset := range geom.Lattice(rows, cols, colStep, rowStep) {
			if !yield(cell, g.Translate(offset)) {
				return
			}
		}
	}
}

func dirExtent(r geom.Rect[float64], dir Direction) float64 {
	if dir.IsHorizontal() {
		return r.Dx()
	}
	return r.Dy()
}
