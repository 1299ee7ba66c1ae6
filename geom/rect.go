package geom

import "fmt"

// Rect is an axis-aligned rectangle. A Rect is canonical if Min.X <=
// Max.X and Min.Y <= Max.Y. Most methods assume canonical rectangles.
// Zero-width and zero-height rectangles are valid.
type Rect[T Scalar] struct {
	Min, Max Point[T]
}

// Rt returns the canonical rectangle with corners (x0, y0) and (x1,
// y1).
func Rt[T Scalar](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.Canon()
}

// FromSize returns a rectangle of the given size with its bottom-left
// corner at the origin.
func FromSize[T Scalar](size Point[T]) Rect[T] {
	return Rect[T]{Max: size}.Canon()
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("[%v:%v, %v:%v]", r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}

// Canon returns the canonical version of r.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func (r Rect[T]) Dx() T { return r.Max.X - r.Min.X }

func (r Rect[T]) Dy() T { return r.Max.Y - r.Min.Y }

// Size returns the width and height of r as a Point.
func (r Rect[T]) Size() Point[T] { return Pt(r.Dx(), r.Dy()) }

func (r Rect[T]) Left() T   { return r.Min.X }
func (r Rect[T]) Right() T  { return r.Max.X }
func (r Rect[T]) Bottom() T { return r.Min.Y }
func (r Rect[T]) Top() T    { return r.Max.Y }

// Center returns the point in the middle of r.
func (r Rect[T]) Center() Point[T] {
	return Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

func (r Rect[T]) TopLeft() Point[T]      { return r.At(TopLeft) }
func (r Rect[T]) TopRight() Point[T]     { return r.At(TopRight) }
func (r Rect[T]) BottomLeft() Point[T]   { return r.At(BottomLeft) }
func (r Rect[T]) BottomRight() Point[T]  { return r.At(BottomRight) }
func (r Rect[T]) TopCenter() Point[T]    { return r.At(TopCenter) }
func (r Rect[T]) BottomCenter() Point[T] { return r.At(BottomCenter) }
func (r Rect[T]) CenterLeft() Point[T]   { return r.At(CenterLeft) }
func (r Rect[T]) CenterRight() Point[T]  { return r.At(CenterRight) }

// At returns the position of the handle h on r. The plain edge
// handles return the midpoint of their edge, so At(Top) and
// At(TopCenter) are the same point.
func (r Rect[T]) At(h Handle) Point[T] {
	p := r.Center()
	e := h.Edges()
	switch {
	case e&EdgeLeft != 0:
		p.X = r.Min.X
	case e&EdgeRight != 0:
		p.X = r.Max.X
	}
	switch {
	case e&EdgeBottom != 0:
		p.Y = r.Min.Y
	case e&EdgeTop != 0:
		p.Y = r.Max.Y
	}
	return p
}

// Delta returns the offset that would move the handle h of r onto
// target. Components on axes that h does not constrain are zero.
func (r Rect[T]) Delta(h Handle, target Point[T]) Point[T] {
	return target.Sub(r.At(h)).Mask(h.Axes())
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Sub returns r translated by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Sub(p), Max: r.Max.Sub(p)}
}

// MoveTo returns r translated so that the handle h lands on target.
// The size of r is preserved.
func (r Rect[T]) MoveTo(h Handle, target Point[T]) Rect[T] {
	return r.Add(r.Delta(h, target))
}

// Resize returns a rectangle with the same Min as r but with the
// given size.
func (r Rect[T]) Resize(size Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min, Max: r.Min.Add(size)}
}

// CenterAt returns r translated so that its center is at p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	return r.MoveTo(Center, p)
}

// Stretch moves the given edges of r to the matching coordinate of
// target, leaving the other edges in place. If an edge is moved past
// its opposite edge, the result is re-canonicalized, so the edges swap
// roles instead of producing a negative size.
func (r Rect[T]) Stretch(edges Edges, target Point[T]) Rect[T] {
	if edges&EdgeLeft != 0 {
		r.Min.X = target.X
	}
	if edges&EdgeRight != 0 {
		r.Max.X = target.X
	}
	if edges&EdgeBottom != 0 {
		r.Min.Y = target.Y
	}
	if edges&EdgeTop != 0 {
		r.Max.Y = target.Y
	}
	return r.Canon()
}

// Grow moves the given edges of r outwards, away from its center, by
// n. A negative n moves them inwards. The result is canonical.
func (r Rect[T]) Grow(edges Edges, n T) Rect[T] {
	if edges&EdgeLeft != 0 {
		r.Min.X -= n
	}
	if edges&EdgeRight != 0 {
		r.Max.X += n
	}
	if edges&EdgeBottom != 0 {
		r.Min.Y -= n
	}
	if edges&EdgeTop != 0 {
		r.Max.Y += n
	}
	return r.Canon()
}

// Inset returns r with every edge moved inwards by n. If r is too
// small along an axis, that axis collapses to its center line.
func (r Rect[T]) Inset(n T) Rect[T] {
	c := r.Center()
	if r.Dx() < 2*n {
		r.Min.X, r.Max.X = c.X, c.X
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Dy() < 2*n {
		r.Min.Y, r.Max.Y = c.Y, c.Y
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}

// Intersect returns the largest rectangle contained by both r and s.
// Rectangles that only touch produce a zero-width or zero-height
// intersection. If the rectangles do not overlap on at least one
// axis, the second return value is false.
func (r Rect[T]) Intersect(s Rect[T]) (Rect[T], bool) {
	r.Min.X = max(r.Min.X, s.Min.X)
	r.Min.Y = max(r.Min.Y, s.Min.Y)
	r.Max.X = min(r.Max.X, s.Max.X)
	r.Max.Y = min(r.Max.Y, s.Max.Y)
	if (r.Min.X > r.Max.X) || (r.Min.Y > r.Max.Y) {
		return Rect[T]{}, false
	}
	return r, true
}

// Overlaps reports whether r and s share at least one point.
func (r Rect[T]) Overlaps(s Rect[T]) bool {
	_, ok := r.Intersect(s)
	return ok
}

// Union returns the smallest rectangle that contains both r and s.
func (r Rect[T]) Union(s Rect[T]) Rect[T] {
	r.Min.X = min(r.Min.X, s.Min.X)
	r.Min.Y = min(r.Min.Y, s.Min.Y)
	r.Max.X = max(r.Max.X, s.Max.X)
	r.Max.Y = max(r.Max.Y, s.Max.Y)
	return r
}

// In reports whether every point in r is also in s. Shared edges
// count as inside.
func (r Rect[T]) In(s Rect[T]) bool {
	return (s.Min.X <= r.Min.X) && (r.Max.X <= s.Max.X) &&
		(s.Min.Y <= r.Min.Y) && (r.Max.Y <= s.Max.Y)
}

// Empty reports whether r has zero area.
func (r Rect[T]) Empty() bool {
	return (r.Min.X >= r.Max.X) || (r.Min.Y >= r.Max.Y)
}

// LongSide returns the larger of r's width and height.
func (r Rect[T]) LongSide() T {
	return max(r.Dx(), r.Dy())
}

// ShortSide returns the smaller of r's width and height.
func (r Rect[T]) ShortSide() T {
	return min(r.Dx(), r.Dy())
}

// IsFinite reports whether all of r's coordinates are finite numbers.
func (r Rect[T]) IsFinite() bool {
	return r.Min.IsFinite() && r.Max.IsFinite()
}
