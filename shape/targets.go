package shape

import (
	"fmt"
	"math"

	"deedles.dev/shapes/geom"
)

// Targets maps handles to the points that they should be moved to.
//
// When translating, every handle implies an offset for the whole
// shape along the axes it constrains, and all of those offsets must
// agree. When stretching, every handle moves the edges that it lies
// on, and no edge may be sent to two different places.
type Targets map[geom.Handle]Point

// near reports whether a and b are equal up to rounding error.
func near(a, b float64) bool {
	const eps = 1e-9
	return math.Abs(a-b) <= eps*max(1, math.Abs(a), math.Abs(b))
}

func (t Targets) validate() error {
	for h, p := range t {
		if !h.Valid() {
			return fmt.Errorf("%v: %w", h, ErrInvalidHandle)
		}
		if !p.IsFinite() {
			return fmt.Errorf("%v: target %v: %w", h, p, ErrMalformed)
		}
	}
	return nil
}

// delta resolves the targets into a single offset for a shape with
// the given bounds.
func (t Targets) delta(bounds geom.Rect[float64]) (Point, error) {
	err := t.validate()
	if err != nil {
		return Point{}, err
	}

	var (
		delta Point
		set   geom.Axes
		by    [2]geom.Handle
	)
	for _, h := range geom.Handles() {
		target, ok := t[h]
		if !ok {
			continue
		}

		d := bounds.Delta(h, target)
		axes := h.Axes()
		if axes&geom.AxisX != 0 {
			if (set&geom.AxisX != 0) && !near(delta.X, d.X) {
				return Point{}, fmt.Errorf("%v and %v disagree on x: %w", by[0], h, ErrConflictingTargets)
			}
			delta.X, by[0] = d.X, h
		}
		if axes&geom.AxisY != 0 {
			if (set&geom.AxisY != 0) && !near(delta.Y, d.Y) {
				return Point{}, fmt.Errorf("%v and %v disagree on y: %w", by[1], h, ErrConflictingTargets)
			}
			delta.Y, by[1] = d.Y, h
		}
		set |= axes
	}

	return delta, nil
}

// stretch resolves the targets into new positions for the edges of
// bounds. The returned rectangle is not canonicalized so that callers
// can detect inverted axes.
func (t Targets) stretch(bounds geom.Rect[float64]) (r geom.Rect[float64], moved geom.Edges, err error) {
	err = t.validate()
	if err != nil {
		return bounds, 0, err
	}

	r = bounds
	set := func(edge geom.Edges, dst *float64, v float64, h geom.Handle) error {
		if (moved&edge != 0) && !near(*dst, v) {
			return fmt.Errorf("%v: %w", h, ErrConflictingTargets)
		}
		*dst = v
		moved |= edge
		return nil
	}

	for _, h := range geom.Handles() {
		target, ok := t[h]
		if !ok {
			continue
		}

		edges := h.Edges()
		if edges == geom.EdgeNone {
			return bounds, 0, fmt.Errorf("cannot stretch %v: %w", h, ErrInvalidHandle)
		}

		if edges&geom.EdgeLeft != 0 {
			err = set(geom.EdgeLeft, &r.Min.X, target.X, h)
		}
		if (err == nil) && (edges&geom.EdgeRight != 0) {
			err = set(geom.EdgeRight, &r.Max.X, target.X, h)
		}
		if (err == nil) && (edges&geom.EdgeBottom != 0) {
			err = set(geom.EdgeBottom, &r.Min.Y, target.Y, h)
		}
		if (err == nil) && (edges&geom.EdgeTop != 0) {
			err = set(geom.EdgeTop, &r.Max.Y, target.Y, h)
		}
		if err != nil {
			return bounds, 0, err
		}
	}

	return r, moved, nil
}
