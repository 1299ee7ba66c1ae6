package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally.
func hsplit[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(Pt(w, r.Dy()))
	right = r.Resize(Pt(r.Dx()-w, r.Dy())).Add(Pt(w, 0))
	return left, right
}

// vsplit splits a rectangle into two rectangles arranged vertically,
// the first of which has height h and sits at the top.
func vsplit[T Scalar](r Rect[T], h T) (top, bottom Rect[T]) {
	bottom = r.Resize(Pt(r.Dx(), r.Dy()-h))
	top = r.Resize(Pt(r.Dx(), h)).Add(Pt(0, r.Dy()-h))
	return top, bottom
}

// TiledEvenVertically yields numtiles rectangles that comprise an
// even, vertical splitting of r, starting with the topmost. In other
// words,
//
//	TiledEvenVertically(3, r)
//
// will produce
//
//	----------
//	|   1    |
//	----------
//	|   2    |
//	----------
//	|   3    |
//	----------
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		size := Pt(0, r.Dy()/T(numtiles))
		c, _ := vsplit(r, size.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Sub(size)
		}
	}
}

// TiledEvenHorizontally yields numtiles rectangles that comprise an
// even, horizontal splitting of r, from left to right.
//
//	----------
//	|  |  |  |
//	----------
func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		size := Pt(r.Dx()/T(numtiles), 0)
		c, _ := hsplit(r, size.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(size)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if (numtiles <= 0) || (cols <= 0) {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// Cell identifies a position in a lattice.
type Cell struct {
	Row, Col int
}

// Lattice yields the offsets of the cells of a rows by cols lattice
// in row-major order. The cell at (row, col) is offset from the
// origin by col*colStep + row*rowStep.
func Lattice[T Scalar](rows, cols int, colStep, rowStep Point[T]) iter.Seq2[Cell, Point[T]] {
	return func(yield func(Cell, Point[T]) bool) {
		for row := range rows {
			start := rowStep.Mul(T(row))
			for col := range cols {
				if !yield(Cell{Row: row, Col: col}, start.Add(colStep.Mul(T(col)))) {
					return
				}
			}
		}
	}
}

// Accumulate yields start followed by the running sum of start and
// each of the vectors in turn, thus turning a series of relative
// steps into absolute positions.
func Accumulate[T Scalar](start Point[T], vectors iter.Seq[Point[T]]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		if !yield(start) {
			return
		}
		for v := range vectors {
			start = start.Add(v)
			if !yield(start) {
				return
			}
		}
	}
}

// Pairwise yields every consecutive pair of values from seq. A
// sequence of fewer than two values yields nothing.
func Pairwise[T any](seq iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		var prev T
		for i, v := range xiter.Enumerate(seq) {
			if (i > 0) && !yield(prev, v) {
				return
			}
			prev = v
		}
	}
}

// Stack returns an iterator that yields the rectangle provided and
// then identical copies each shifted by step from the one before,
// thus producing an infinite row, column, or diagonal of rectangles.
func Stack[T Scalar](first Rect[T], step Point[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for {
			if !yield(first) {
				return
			}
			first = first.Add(step)
		}
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Along an axis with no
// specified edges, inner is centered within outer.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.Min.Y, inner.Max.Y = outer.Max.Y-inner.Dy(), outer.Max.Y
		if edges&EdgeBottom != 0 {
			inner.Min.Y = outer.Min.Y
		}
	case edges&EdgeBottom != 0:
		inner.Min.Y, inner.Max.Y = outer.Min.Y, outer.Min.Y+inner.Dy()
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Min.X, inner.Max.X = outer.Min.X, outer.Min.X+inner.Dx()
		if edges&EdgeRight != 0 {
			inner.Max.X = outer.Max.X
		}
	case edges&EdgeRight != 0:
		inner.Min.X, inner.Max.X = outer.Max.X-inner.Dx(), outer.Max.X
	}

	return inner
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
