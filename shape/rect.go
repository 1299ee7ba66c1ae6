package shape

import (
	"fmt"

	"deedles.dev/shapes/geom"
)

// Rect is an axis-aligned rectangle with optional user data.
//
// The embedded geom.Rect provides read access to the rectangle's
// edges, size, and handles. It is always canonical when the Rect is
// built or modified by the functions and methods of this package.
type Rect struct {
	geom.Rect[float64]
	UserData any
}

// NewRect returns a Rect covering r.
func NewRect(r geom.Rect[float64], data any) *Rect {
	return &Rect{Rect: r.Canon(), UserData: data}
}

// FromEdges returns a rectangle with the given edges. The edges may
// be given in either order along each axis.
func FromEdges(left, bottom, right, top float64, data any) (*Rect, error) {
	r := geom.Rect[float64]{Min: Pt(left, bottom), Max: Pt(right, top)}
	if !r.IsFinite() {
		return nil, fmt.Errorf("edges %v: %w", r, ErrMalformed)
	}
	return NewRect(r, data), nil
}

// FromSize returns a rectangle of the given size centered on the
// origin.
func FromSize(width, height float64, data any) (*Rect, error) {
	size := Pt(width, height)
	if !size.IsFinite() || (width < 0) || (height < 0) {
		return nil, fmt.Errorf("size %v: %w", size, ErrMalformed)
	}
	return NewRect(geom.FromSize(size).CenterAt(geom.Point[float64]{}), data), nil
}

// Range is the extent of a rectangle along one axis.
type Range struct {
	Lo, Hi float64
}

// To returns the Range from lo to hi.
func To(lo, hi float64) Range {
	return Range{Lo: lo, Hi: hi}
}

// Centered returns a Range of the given length centered on zero.
func Centered(length float64) Range {
	return Range{Lo: -length / 2, Hi: length / 2}
}

// Slice returns a rectangle spanning x horizontally and y vertically.
// For example,
//
//	shape.Slice(shape.To(0, 4), shape.To(0, 6), nil)
//
// spans 0 <= x <= 4 and 0 <= y <= 6, and
//
//	shape.Slice(shape.Centered(100), shape.Centered(100), nil)
//
// is a 100 by 100 square centered on the origin.
func Slice(x, y Range, data any) (*Rect, error) {
	return FromEdges(x.Lo, y.Lo, x.Hi, y.Hi, data)
}

func (r *Rect) String() string {
	if r.UserData == nil {
		return r.Rect.String()
	}
	return fmt.Sprintf("%v %v", r.Rect, r.UserData)
}

func (r *Rect) Bounds() geom.Rect[float64] { return r.Rect }

func (r *Rect) Data() any { return r.UserData }

func (r *Rect) IsInsideOf(other Shape) bool { return inside(r, other) }

// Contains reports whether other lies entirely within r.
func (r *Rect) Contains(other Shape) bool { return inside(other, r) }

// Copy returns a copy of r that shares its user data.
func (r *Rect) Copy() *Rect {
	c := *r
	return &c
}

// DeepCopy returns a copy of r with its user data duplicated if
// possible. See Cloner.
func (r *Rect) DeepCopy() *Rect {
	return &Rect{Rect: r.Rect, UserData: cloneData(r.UserData)}
}

// WithData returns a copy of r with its user data replaced.
func (r *Rect) WithData(data any) *Rect {
	return &Rect{Rect: r.Rect, UserData: data}
}

func (r *Rect) clone(deep bool) Shape {
	if deep {
		return r.DeepCopy()
	}
	return r.Copy()
}

func (r *Rect) move(delta Point) {
	r.Rect = r.Rect.Add(delta)
}

// Move translates r in place by delta.
func (r *Rect) Move(delta Point) {
	r.move(delta)
}

// MoveTo translates r in place so that the handles in targets land on
// their points. The size of r does not change.
func (r *Rect) MoveTo(targets Targets) error {
	delta, err := targets.delta(r.Rect)
	if err != nil {
		return err
	}
	r.move(delta)
	return nil
}

// Translate returns a copy of r moved by delta.
func (r *Rect) Translate(delta Point) *Rect {
	c := r.Copy()
	c.Move(delta)
	return c
}

// TranslateTo returns a copy of r moved so that the handles in
// targets land on their points.
func (r *Rect) TranslateTo(targets Targets) (*Rect, error) {
	c := r.Copy()
	err := c.MoveTo(targets)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// StretchInPlace moves the edges named by targets while holding the
// other edges fixed. If an edge is moved past its opposite, the edges
// swap roles so that the size of r never becomes negative.
func (r *Rect) StretchInPlace(targets Targets) error {
	s, _, err := targets.stretch(r.Rect)
	if err != nil {
		return err
	}
	r.Rect = s.Canon()
	return nil
}

// Stretch returns a copy of r with the edges named by targets moved.
// See StretchInPlace.
func (r *Rect) Stretch(targets Targets) (*Rect, error) {
	c := r.Copy()
	err := c.StretchInPlace(targets)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Grow returns a copy of r with the given edges moved outwards by n,
// or inwards if n is negative.
func (r *Rect) Grow(edges geom.Edges, n float64) *Rect {
	c := r.Copy()
	c.Rect = c.Rect.Grow(edges, n)
	return c
}

// Align returns a copy of r moved so that the given edges line up
// with the same edges of outer. If opposite edges are given, the copy
// is stretched to match outer along that axis. Along an axis with no
// edges given, the copy is centered on outer.
func (r *Rect) Align(outer Shape, edges geom.Edges) *Rect {
	c := r.Copy()
	c.Rect = geom.Align(outer.Bounds(), r.Rect, edges)
	return c
}

// Intersection returns the overlap between r and other, or nil if
// they do not overlap. Shapes that only touch produce a degenerate
// rectangle. An empty group overlaps nothing. The result has no user
// data.
func (r *Rect) Intersection(other Shape) *Rect {
	ob, ok := extent(other)
	if !ok {
		return nil
	}
	i, ok := r.Rect.Intersect(ob)
	if !ok {
		return nil
	}
	return &Rect{Rect: i}
}

// Union returns the smallest rectangle containing both r and other.
// If other is an empty group, that is r itself. The result has no
// user data.
func (r *Rect) Union(other Shape) *Rect {
	ob, ok := extent(other)
	if !ok {
		return &Rect{Rect: r.Rect}
	}
	return &Rect{Rect: r.Rect.Union(ob)}
}
