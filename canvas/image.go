package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"deedles.dev/shapes/geom"
	"deedles.dev/shapes/raster"
	"deedles.dev/shapes/shape"
	"github.com/disintegration/imaging"
	"golang.org/x/image/colornames"
	"golang.org/x/image/vector"
)

// AxisColor is the color of the dotted axes drawn by Image.
var AxisColor color.Color = colornames.Lightgray

// Image rasterizes the canvas into a new image with the given pixel
// format. The image is transparent apart from the canvas's background,
// if it has one, the axes, and the shapes. Shapes narrower than a
// pixel are widened to one pixel so that they stay visible. Of the
// CSS properties in a shape's style, only background and border are
// used.
func (c *Canvas) Image(f raster.Format) (*raster.Image, error) {
	size := c.pixelSize()
	px := geom.Conv[int](geom.Pt(math.Ceil(size.X), math.Ceil(size.Y)))
	w, h := px.X, px.Y
	img := raster.New(image.Rect(0, 0, w, h), f)

	if bg, ok := c.Style["background"]; ok {
		col, err := ParseColor(bg)
		if err != nil {
			return nil, fmt.Errorf("canvas background: %w", err)
		}
		img.Fill(col)
	}

	for x := 0; x < w; x += 2 {
		img.Set(x, h/2, AxisColor)
	}
	for y := 0; y < h; y += 2 {
		img.Set(w/2, y, AxisColor)
	}

	p := painter{
		dst:    img,
		z:      vector.NewRasterizer(w, h),
		height: float64(h),
	}
	err := c.walk(func(s shape.Shape, st style) error {
		return p.shape(c.project(s.Bounds()), s, st)
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// WritePNG rasterizes the canvas with the RGBA8888 format and writes it
// to w as a PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	img, err := c.Image(raster.RGBA8888)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, imaging.PNG)
}

// SavePNG rasterizes the canvas and saves it to a PNG file at path.
func (c *Canvas) SavePNG(path string) error {
	img, err := c.Image(raster.RGBA8888)
	if err != nil {
		return err
	}
	return imaging.Save(img, path)
}

// painter draws y-up rectangles into a y-down image.
type painter struct {
	dst    *raster.Image
	z      *vector.Rasterizer
	height float64
}

func (p *painter) shape(r geom.Rect[float64], s shape.Shape, st style) error {
	r = hairline(r)

	bg, err := ParseColor(st.body["background"])
	if err != nil {
		return fmt.Errorf("background of %v: %w", s, err)
	}
	p.fill(r, bg)

	if border, ok := st.body["border"]; ok {
		width, col, err := borderOf(border)
		if err != nil {
			return fmt.Errorf("%v: %w", s, err)
		}
		p.outline(r, width, col)
	}

	seg, ok := s.(*shape.Segment)
	if !ok {
		return nil
	}

	lc, err := ParseColor(st.line["background"])
	if err != nil {
		return fmt.Errorf("line of %v: %w", s, err)
	}
	center := r.Center()
	line := r
	if seg.IsHorizontal() {
		line.Min.Y, line.Max.Y = center.Y-1, center.Y+1
	} else {
		line.Min.X, line.Max.X = center.X-1, center.X+1
	}
	p.fill(line, lc)
	return nil
}

func (p *painter) fill(r geom.Rect[float64], col color.Color) {
	if isTransparent(col) || r.Empty() {
		return
	}

	b := p.dst.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	x0, y0 := float32(r.Min.X), float32(p.height-r.Max.Y)
	x1, y1 := float32(r.Max.X), float32(p.height-r.Min.Y)
	p.z.MoveTo(x0, y0)
	p.z.LineTo(x1, y0)
	p.z.LineTo(x1, y1)
	p.z.LineTo(x0, y1)
	p.z.ClosePath()
	p.z.Draw(p.dst, b, image.NewUniform(col), image.Point{})
}

// outline draws a border of the given width just inside of r.
func (p *painter) outline(r geom.Rect[float64], width float64, col color.Color) {
	width = min(width, r.ShortSide()/2)
	top := r
	top.Min.Y = r.Max.Y - width
	bottom := r
	bottom.Max.Y = r.Min.Y + width
	left := r
	left.Min.Y, left.Max.Y = bottom.Max.Y, top.Min.Y
	left.Max.X = r.Min.X + width
	right := left
	right.Min.X, right.Max.X = r.Max.X-width, r.Max.X

	for _, side := range []geom.Rect[float64]{top, bottom, left, right} {
		p.fill(side, col)
	}
}

// hairline widens r to at least one pixel along each axis.
func hairline(r geom.Rect[float64]) geom.Rect[float64] {
	c := r.Center()
	if r.Dx() < 1 {
		r.Min.X, r.Max.X = c.X-0.5, c.X+0.5
	}
	if r.Dy() < 1 {
		r.Min.Y, r.Max.Y = c.Y-0.5, c.Y+0.5
	}
	return r
}
