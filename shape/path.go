package shape

import (
	"fmt"
	"slices"

	"deedles.dev/shapes/geom"
)

// PathFactory builds the shape connecting two consecutive points of a
// path. It may return nil to leave that step out.
type PathFactory func(from, to Point) Shape

// PathFromPoints returns a group with one shape for every pair of
// consecutive points, built by factory. Repeated consecutive points
// are skipped.
func PathFromPoints(points []Point, factory PathFactory) *Group {
	var g Group
	for from, to := range geom.Pairwise(slices.Values(points)) {
		if from == to {
			continue
		}
		g.append(factory(from, to))
	}
	return &g
}

// PathFromVectors is like PathFromPoints, but the points are found by
// walking from start along each vector in turn.
func PathFromVectors(start Point, vectors []Point, factory PathFactory) *Group {
	points := slices.Collect(geom.Accumulate(start, slices.Values(vectors)))
	return PathFromPoints(points, factory)
}

// SegmentPath returns a PathFactory that connects points with
// segments of the given thickness. It panics if two consecutive points
// are not aligned along an axis.
func SegmentPath(thickness float64, data any) PathFactory {
	return func(from, to Point) Shape {
		return Must(NewSegment(from, to, thickness, data))
	}
}

// Path returns a group of segments of the given thickness joining the
// points in order. Every pair of consecutive points must be aligned
// along one of the axes. Segments are extended by half the thickness
// where they meet so that the corners of the path are filled in.
// Repeated consecutive points are skipped.
//
//	                 end
//	             +----O----+
//	             |    |    |
//	         +---+----|----|    ---
//	         |   |    |    |     |
//	start -> O--------O----+   thickness
//	         |   |    |    |     |
//	         +--------+----+    ---
func Path(thickness float64, data any, points ...Point) (*Group, error) {
	points = slices.Compact(slices.Clone(points))
	if len(points) < 2 {
		return nil, fmt.Errorf("path of %v distinct points: %w", len(points), ErrTooFewPoints)
	}

	var g Group
	last := len(points) - 2
	i := -1
	for from, to := range geom.Pairwise(slices.Values(points)) {
		i++
		if (from.X != to.X) && (from.Y != to.Y) {
			return nil, fmt.Errorf("step %v from %v to %v: %w", i, from, to, ErrNotAxisAligned)
		}

		dir, err := geom.Normalize(to.Sub(from))
		if err != nil {
			return nil, fmt.Errorf("step %v: %w", i, err)
		}

		pad := dir.Mul(thickness / 2)
		if i > 0 {
			from = from.Sub(pad)
		}
		if i < last {
			to = to.Add(pad)
		}

		s, err := NewSegment(from, to, thickness, data)
		if err != nil {
			return nil, fmt.Errorf("step %v: %w", i, err)
		}
		g.append(s)
	}

	return &g, nil
}

// PathVectors is like Path, but the points are found by walking from
// start along each vector in turn.
func PathVectors(thickness float64, data any, start Point, vectors ...Point) (*Group, error) {
	points := slices.Collect(geom.Accumulate(start, slices.Values(vectors)))
	return Path(thickness, data, points...)
}
