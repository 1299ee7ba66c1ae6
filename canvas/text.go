package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
	"deedles.dev/shapes/geom"
	"deedles.dev/shapes/shape"
	"golang.org/x/image/colornames"
)

// cellStyle is the colors of a single terminal cell. Nil colors are
// left to the terminal.
type cellStyle struct {
	bg, fg color.Color
}

type cell struct {
	ch rune
	cellStyle
}

// grid is a rows by cols buffer of terminal cells.
type grid struct {
	cols, rows int
	cells      []cell
}

func newGrid(cols, rows int) *grid {
	g := grid{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	for i := range g.cells {
		g.cells[i].ch = ' '
	}
	return &g
}

func (g *grid) at(col, row int) *cell {
	return &g.cells[row*g.cols+col]
}

// span returns the cells covered by r, which is in cell units with
// y-down coordinates, clamped to the grid. Anything that lies in the
// grid covers at least one cell.
func (g *grid) span(r geom.Rect[float64]) (area geom.Rect[int], ok bool) {
	c0, r0 := int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y))
	c1, r1 := max(int(math.Ceil(r.Max.X)), c0+1), max(int(math.Ceil(r.Max.Y)), r0+1)

	area, ok = geom.Rt(c0, r0, c1, r1).Intersect(geom.Rt(0, 0, g.cols, g.rows))
	return area, ok && !area.Empty()
}

func (g *grid) paint(area geom.Rect[int], f func(*cell)) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		for col := area.Min.X; col < area.Max.X; col++ {
			f(g.at(col, row))
		}
	}
}

// render joins the rows of the grid into lines, styling each run of
// cells that share colors with lipgloss.
func (g *grid) render() string {
	lines := make([]string, 0, g.rows)
	for row := range g.rows {
		cells := g.cells[row*g.cols : (row+1)*g.cols]

		var plain strings.Builder
		var ranges []lipgloss.Range
		start := 0
		for i, c := range cells {
			plain.WriteRune(c.ch)
			if (i+1 < len(cells)) && (cells[i+1].cellStyle == c.cellStyle) {
				continue
			}
			if (c.bg != nil) || (c.fg != nil) {
				ranges = append(ranges, lipgloss.NewRange(start, i+1, c.lipgloss()))
			}
			start = i + 1
		}

		lines = append(lines, lipgloss.StyleRanges(plain.String(), ranges...))
	}
	return strings.Join(lines, "\n")
}

func (s cellStyle) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.bg != nil {
		st = st.Background(s.bg)
	}
	if s.fg != nil {
		st = st.Foreground(s.fg)
	}
	return st
}

// Text renders the canvas as cols by rows cells of terminal text, with
// each shape filling the cells that it overlaps with its background
// color. Segments have their direction drawn through them, ending in
// an arrow. The canvas's Scale is not used.
func (c *Canvas) Text(cols, rows int) (string, error) {
	if (cols <= 0) || (rows <= 0) {
		return "", nil
	}
	g := newGrid(cols, rows)

	axis := cell{ch: '·', cellStyle: cellStyle{fg: colornames.Gray}}
	for col := range cols {
		*g.at(col, rows/2) = axis
	}
	for row := range rows {
		*g.at(cols/2, row) = axis
	}

	bounds := c.Bounds()
	sx, sy := float64(cols)/c.Width, float64(rows)/c.Height
	toCells := func(r geom.Rect[float64]) geom.Rect[float64] {
		return geom.Rect[float64]{
			Min: geom.Pt((r.Min.X-bounds.Min.X)*sx, (bounds.Max.Y-r.Max.Y)*sy),
			Max: geom.Pt((r.Max.X-bounds.Min.X)*sx, (bounds.Max.Y-r.Min.Y)*sy),
		}
	}

	err := c.walk(func(s shape.Shape, st style) error {
		area, ok := g.span(toCells(s.Bounds()))
		if !ok {
			return nil
		}

		bg, err := ParseColor(st.body["background"])
		if err != nil {
			return fmt.Errorf("background of %v: %w", s, err)
		}
		if !isTransparent(bg) {
			g.paint(area, func(px *cell) { *px = cell{ch: ' ', cellStyle: cellStyle{bg: bg}} })
		}

		seg, ok := s.(*shape.Segment)
		if !ok {
			return nil
		}
		fg, err := ParseColor(st.line["background"])
		if err != nil {
			return fmt.Errorf("line of %v: %w", s, err)
		}
		drawDirection(g, area, seg.Dir, fg)
		return nil
	})
	if err != nil {
		return "", err
	}

	return g.render(), nil
}

var arrows = map[shape.Direction]rune{
	shape.Up:    '↑',
	shape.Down:  '↓',
	shape.Left:  '←',
	shape.Right: '→',
}

// drawDirection draws a line with an arrow at its end through the
// middle of area, which is in y-down cell coordinates.
func drawDirection(g *grid, area geom.Rect[int], dir shape.Direction, fg color.Color) {
	mid := area.Min.Add(area.Max).Div(2)

	line := area
	ch := '│'
	if dir.IsHorizontal() {
		line.Min.Y, line.Max.Y = mid.Y, mid.Y+1
		ch = '─'
	} else {
		line.Min.X, line.Max.X = mid.X, mid.X+1
	}
	g.paint(line, func(c *cell) {
		c.ch = ch
		c.fg = fg
	})

	var end geom.Point[int]
	switch dir {
	case shape.Up:
		end = geom.Pt(mid.X, line.Min.Y)
	case shape.Down:
		end = geom.Pt(mid.X, line.Max.Y-1)
	case shape.Left:
		end = geom.Pt(line.Min.X, mid.Y)
	case shape.Right:
		end = geom.Pt(line.Max.X-1, mid.Y)
	}
	g.at(end.X, end.Y).ch = arrows[dir]
}
