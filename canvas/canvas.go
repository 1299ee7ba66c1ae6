// Package canvas renders trees of shapes for display, either as HTML,
// as a raster image, or as styled terminal text.
//
// A canvas is centered on the origin, so a canvas of width 100 shows x
// coordinates from -50 to 50. The style of every shape is derived from
// its user data, or from that of the closest enclosing group with some,
// by a StyleFunc. The default StyleFunc accepts a color name as a
// string or a shape.Style of CSS properties.
package canvas

import (
	"errors"
	"fmt"
	"strings"

	"deedles.dev/shapes/geom"
	"deedles.dev/shapes/shape"
)

// ErrStyleLookup is returned when the user data of a shape cannot be
// turned into a style.
var ErrStyleLookup = errors.New("no style for user data")

// StyleFunc turns the user data of a shape into its style. A nil style
// means that the shape should be drawn in the canvas's default colors.
type StyleFunc func(data any) (shape.Style, error)

// DefaultStyle is the StyleFunc used by a canvas that doesn't have one
// set. A string is used as the background color and a shape.Style is
// used as is.
func DefaultStyle(data any) (shape.Style, error) {
	switch data := data.(type) {
	case nil:
		return nil, nil
	case string:
		return shape.Style{"background": data}, nil
	case shape.Style:
		return data, nil
	default:
		return nil, fmt.Errorf("%T: %w", data, ErrStyleLookup)
	}
}

// StyleMap returns a StyleFunc that looks the user data up in m. Data
// that is not in m, including data that is not of type K, gets a nil
// style.
func StyleMap[K comparable](m map[K]shape.Style) StyleFunc {
	return func(data any) (shape.Style, error) {
		key, ok := data.(K)
		if !ok {
			return nil, nil
		}
		return m[key], nil
	}
}

// ColorMap is like StyleMap, but the values of m are background colors.
func ColorMap[K comparable](m map[K]string) StyleFunc {
	return func(data any) (shape.Style, error) {
		key, ok := data.(K)
		if !ok {
			return nil, nil
		}
		c, ok := m[key]
		if !ok {
			return nil, nil
		}
		return shape.Style{"background": c}, nil
	}
}

// Canvas is a surface that shapes can be placed on for rendering.
type Canvas struct {
	// Width and Height are the size of the visible area in shape
	// coordinates.
	Width, Height float64

	// Scale is the number of pixels per unit of shape coordinates.
	Scale float64

	// Style holds extra CSS properties for the canvas itself. Its
	// background is also used by Image.
	Style shape.Style

	// StyleFunc looks up the style of each shape. If it is nil,
	// DefaultStyle is used.
	StyleFunc StyleFunc

	// DefaultColor is the background of shapes without one, and
	// LineColor the color of the direction line drawn through
	// segments.
	DefaultColor string
	LineColor    string

	Shapes []shape.Shape
}

// New returns an empty canvas of the given size with a scale of 1.
func New(width, height float64) *Canvas {
	return &Canvas{
		Width:        width,
		Height:       height,
		Scale:        1,
		DefaultColor: "black",
		LineColor:    "white",
	}
}

// Append adds shapes to be drawn on top of those already on the canvas
// and returns the canvas.
func (c *Canvas) Append(shapes ...shape.Shape) *Canvas {
	for _, s := range shapes {
		if s != nil {
			c.Shapes = append(c.Shapes, s)
		}
	}
	return c
}

// Bounds returns the area of shape coordinates that the canvas shows.
func (c *Canvas) Bounds() geom.Rect[float64] {
	half := geom.Pt(c.Width, c.Height).Div(2)
	return geom.Rect[float64]{Min: half.Neg(), Max: half}
}

// walk calls draw for every drawable shape on the canvas in drawing
// order, along with its resolved style. It stops at the first error.
func (c *Canvas) walk(draw func(shape.Shape, style) error) error {
	for s, data := range shape.NewGroup(c.Shapes...).Leaves() {
		st, err := c.lookup(data)
		if err != nil {
			return err
		}
		err = draw(s, st)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Canvas) lookup(data any) (style, error) {
	f := c.StyleFunc
	if f == nil {
		f = DefaultStyle
	}

	st, err := f(data)
	if err != nil {
		return style{}, fmt.Errorf("style %v: %w", data, err)
	}
	return splitStyle(st, c.DefaultColor, c.LineColor), nil
}

// style is the resolved appearance of a single shape.
type style struct {
	body shape.Style
	line shape.Style
}

const linePrefix = "path"

// splitStyle separates the properties of s that apply to the line
// drawn through segments, which are prefixed by "path-", from the rest.
// A bare "path" property is the line's background.
func splitStyle(s shape.Style, body, line string) style {
	st := style{body: shape.Style{}, line: shape.Style{}}
	for k, v := range s {
		switch {
		case k == linePrefix:
			st.line["background"] = v
		case strings.HasPrefix(k, linePrefix+"-"):
			st.line[strings.TrimPrefix(k, linePrefix+"-")] = v
		default:
			st.body[k] = v
		}
	}

	if _, ok := st.body["background"]; !ok {
		st.body["background"] = body
	}
	if _, ok := st.line["background"]; !ok {
		st.line["background"] = line
	}
	return st
}

// project converts r from shape coordinates to y-up canvas pixels,
// with the origin at the bottom-left corner of the canvas.
func (c *Canvas) project(r geom.Rect[float64]) geom.Rect[float64] {
	half := geom.Pt(c.Width, c.Height).Div(2)
	return geom.Rect[float64]{
		Min: r.Min.Add(half).Mul(c.Scale),
		Max: r.Max.Add(half).Mul(c.Scale),
	}
}

// pixelSize returns the size of the canvas in pixels.
func (c *Canvas) pixelSize() geom.Point[float64] {
	return geom.Pt(c.Width, c.Height).Mul(c.Scale)
}
