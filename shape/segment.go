package shape

import (
	"fmt"

	"deedles.dev/shapes/geom"
)

// Segment is an oriented, axis-aligned piece of a path. It is a
// rectangle plus a direction: the side along the direction is the
// segment's length and the other side is its thickness, which is
// fixed when the segment is built.
type Segment struct {
	geom.Rect[float64]
	Dir      Direction
	UserData any
}

// NewSegment returns a segment running from start to end with the
// given thickness. The points must differ along exactly one axis.
func NewSegment(start, end Point, thickness float64, data any) (*Segment, error) {
	if !start.IsFinite() || !end.IsFinite() || !isFinite(thickness) || (thickness < 0) {
		return nil, fmt.Errorf("segment %v to %v of thickness %v: %w", start, end, thickness, ErrMalformed)
	}

	dir, err := DirectionOf(end.Sub(start))
	if err != nil {
		return nil, fmt.Errorf("segment %v to %v: %w", start, end, err)
	}

	r := geom.Rect[float64]{Min: start, Max: end}.Canon()
	if dir.IsHorizontal() {
		r = r.Grow(geom.EdgesVertical, thickness/2)
	} else {
		r = r.Grow(geom.EdgesHorizontal, thickness/2)
	}
	return &Segment{Rect: r, Dir: dir, UserData: data}, nil
}

// SegmentFromRect returns a segment covering r and pointing in dir.
// The segment takes the user data of r.
func SegmentFromRect(r *Rect, dir Direction) *Segment {
	return &Segment{Rect: r.Rect, Dir: dir, UserData: r.UserData}
}

// SegmentFromEdge returns a segment of zero thickness lying along one
// edge of s. Horizontal edges produce segments pointing right and
// vertical edges produce segments pointing up. The handle must lie on
// exactly one edge, such as geom.Top or geom.CenterLeft.
func SegmentFromEdge(s Shape, h geom.Handle) (*Segment, error) {
	b := s.Bounds()

	var start, end Point
	switch h.Edges() {
	case geom.EdgeTop:
		start, end = b.TopLeft(), b.TopRight()
	case geom.EdgeBottom:
		start, end = b.BottomLeft(), b.BottomRight()
	case geom.EdgeLeft:
		start, end = b.BottomLeft(), b.TopLeft()
	case geom.EdgeRight:
		start, end = b.BottomRight(), b.TopRight()
	default:
		return nil, fmt.Errorf("%v is not an edge: %w", h, ErrInvalidHandle)
	}

	dir := Up
	if start.Y == end.Y {
		dir = Right
	}
	return &Segment{
		Rect:     geom.Rect[float64]{Min: start, Max: end},
		Dir:      dir,
		UserData: s.Data(),
	}, nil
}

func (s *Segment) String() string {
	if s.UserData == nil {
		return fmt.Sprintf("%v (%v)", s.Rect, s.Dir)
	}
	return fmt.Sprintf("%v (%v) %v", s.Rect, s.Dir, s.UserData)
}

func (s *Segment) Bounds() geom.Rect[float64] { return s.Rect }

func (s *Segment) Data() any { return s.UserData }

func (s *Segment) IsInsideOf(other Shape) bool { return inside(s, other) }

// Contains reports whether other lies entirely within s.
func (s *Segment) Contains(other Shape) bool { return inside(other, s) }

func (s *Segment) IsHorizontal() bool { return s.Dir.IsHorizontal() }

// Start returns the point that the segment starts at, which is the
// middle of the edge that it points away from.
func (s *Segment) Start() Point { return s.At(s.Dir.StartHandle()) }

// End returns the point that the segment ends at.
func (s *Segment) End() Point { return s.At(s.Dir.EndHandle()) }

// SetStart moves the whole segment so that it starts at p.
func (s *Segment) SetStart(p Point) {
	s.move(s.Delta(s.Dir.StartHandle(), p))
}

// SetEnd moves the whole segment so that it ends at p.
func (s *Segment) SetEnd(p Point) {
	s.move(s.Delta(s.Dir.EndHandle(), p))
}

// Length returns the side of the segment that lies along its
// direction.
func (s *Segment) Length() float64 {
	if s.IsHorizontal() {
		return s.Dx()
	}
	return s.Dy()
}

// Thickness returns the side of the segment perpendicular to its
// direction.
func (s *Segment) Thickness() float64 {
	if s.IsHorizontal() {
		return s.Dy()
	}
	return s.Dx()
}

// ToRect returns the rectangle covered by s without its direction.
// The rectangle shares the user data of s.
func (s *Segment) ToRect() *Rect {
	return &Rect{Rect: s.Rect, UserData: s.UserData}
}

// Copy returns a copy of s that shares its user data.
func (s *Segment) Copy() *Segment {
	c := *s
	return &c
}

// DeepCopy returns a copy of s with its user data duplicated if
// possible. See Cloner.
func (s *Segment) DeepCopy() *Segment {
	c := *s
	c.UserData = cloneData(s.UserData)
	return &c
}

// WithData returns a copy of s with its user data replaced.
func (s *Segment) WithData(data any) *Segment {
	c := *s
	c.UserData = data
	return &c
}

func (s *Segment) clone(deep bool) Shape {
	if deep {
		return s.DeepCopy()
	}
	return s.Copy()
}

func (s *Segment) move(delta Point) {
	s.Rect = s.Rect.Add(delta)
}

// Move translates s in place by delta.
func (s *Segment) Move(delta Point) {
	s.move(delta)
}

// MoveTo translates s in place so that the handles in targets land on
// their points.
func (s *Segment) MoveTo(targets Targets) error {
	delta, err := targets.delta(s.Rect)
	if err != nil {
		return err
	}
	s.move(delta)
	return nil
}

// Translate returns a copy of s moved by delta.
func (s *Segment) Translate(delta Point) *Segment {
	c := s.Copy()
	c.Move(delta)
	return c
}

// TranslateTo returns a copy of s moved so that the handles in
// targets land on their points.
func (s *Segment) TranslateTo(targets Targets) (*Segment, error) {
	c := s.Copy()
	err := c.MoveTo(targets)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// StretchInPlace changes the length of s by moving the edges named by
// targets. Only the edges across the segment's direction may be moved;
// targeting a side edge returns ErrThicknessFixed. If the start and end
// of the segment pass each other, its direction is reversed.
func (s *Segment) StretchInPlace(targets Targets) error {
	r, moved, err := targets.stretch(s.Rect)
	if err != nil {
		return err
	}

	side, inverted := geom.EdgesVertical, r.Min.X > r.Max.X
	if !s.IsHorizontal() {
		side, inverted = geom.EdgesHorizontal, r.Min.Y > r.Max.Y
	}
	if moved&side != 0 {
		return fmt.Errorf("stretch %v segment across: %w", s.Dir, ErrThicknessFixed)
	}

	s.Rect = r.Canon()
	if inverted {
		s.Dir = s.Dir.Reverse()
	}
	return nil
}

// Stretch returns a copy of s with the edges named by targets moved.
// See StretchInPlace.
func (s *Segment) Stretch(targets Targets) (*Segment, error) {
	c := s.Copy()
	err := c.StretchInPlace(targets)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Intersection returns the overlap between s and other, or nil if
// they do not overlap. If other is a segment with the same
// orientation as s, the result is a *Segment pointing in s's
// direction. Otherwise it is a *Rect. The result has no user data.
func (s *Segment) Intersection(other Shape) Shape {
	ob, ok := extent(other)
	if !ok {
		return nil
	}
	i, ok := s.Rect.Intersect(ob)
	if !ok {
		return nil
	}
	return s.combined(other, i)
}

// Union returns the smallest shape containing both s and other,
// following the same rules for the result type as Intersection. The
// union with an empty group is a copy of s without its user data.
func (s *Segment) Union(other Shape) Shape {
	ob, ok := extent(other)
	if !ok {
		return &Segment{Rect: s.Rect, Dir: s.Dir}
	}
	return s.combined(other, s.Rect.Union(ob))
}

func (s *Segment) combined(other Shape, r geom.Rect[float64]) Shape {
	if o, ok := other.(*Segment); ok && (o.IsHorizontal() == s.IsHorizontal()) {
		return &Segment{Rect: r, Dir: s.Dir}
	}
	return &Rect{Rect: r}
}

func isFinite(v float64) bool {
	return Pt(v, 0).IsFinite()
}
