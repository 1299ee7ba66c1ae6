package raster

import (
	"image"
	"image/color"
)

// Model implements color.Model using a Format.
type Model struct {
	Format Format
}

func (m Model) Convert(c color.Color) color.Color {
	if fc, ok := c.(*Color); ok && (fc.Format == m.Format) {
		return fc
	}

	fc := Color{Format: m.Format}
	r, g, b, a := c.RGBA()
	m.Format.Write(fc.Slice(), r, g, b, a)
	return &fc
}

// Color implements color.Color using a Format.
type Color struct {
	Format Format

	// Data contains the pixel data for the color. Only some bytes of
	// the array are used, dependant on the return value of Format.Size.
	Data [8]byte
}

// Slice returns a slice of Data correctly sized for the color's format.
func (c *Color) Slice() []byte {
	return c.slice(c.Format.Size())
}

func (c *Color) slice(size int) []byte {
	return c.Data[:size:size]
}

func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.Format.Read(c.Slice())
}

// Image is an image with a color format defined by Format.
type Image struct {
	Format Format
	Rect   image.Rectangle
	Pix    []byte
}

// New returns a new, fully transparent image covering r.
func New(r image.Rectangle, f Format) *Image {
	return &Image{
		Format: f,
		Rect:   r,
		Pix:    make([]byte, f.Size()*r.Dx()*r.Dy()),
	}
}

func (img *Image) Bounds() image.Rectangle { return img.Rect }

func (img *Image) ColorModel() color.Model { return Model{Format: img.Format} }

func (img *Image) At(x, y int) color.Color {
	c := Color{Format: img.Format}
	if !(image.Point{x, y}.In(img.Rect)) {
		return &c
	}

	size := img.Format.Size()
	i := img.pixOffset(x, y, img.stride(size), size)
	copy(c.slice(size), img.Pix[i:i+size:i+size])
	return &c
}

// Stride returns the distance in bytes between vertically adjacent
// pixels.
func (img *Image) Stride() int {
	return img.stride(img.Format.Size())
}

func (img *Image) stride(size int) int {
	return size * img.Rect.Dx()
}

// PixOffset returns the index of the first byte of the pixel at (x, y)
// in Pix.
func (img *Image) PixOffset(x, y int) int {
	return img.pixOffset(x, y, img.Stride(), img.Format.Size())
}

func (img *Image) pixOffset(x, y, stride, size int) int {
	x -= img.Rect.Min.X
	y -= img.Rect.Min.Y
	return (stride * y) + (x * size)
}

func (img *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return
	}

	size := img.Format.Size()
	i := img.pixOffset(x, y, img.stride(size), size)
	c1 := img.ColorModel().Convert(c).(*Color)
	copy(img.Pix[i:i+size:i+size], c1.slice(size))
}

// Fill sets every pixel of img to c.
func (img *Image) Fill(c color.Color) {
	size := img.Format.Size()
	c1 := img.ColorModel().Convert(c).(*Color)
	px := c1.slice(size)
	for i := 0; i+size <= len(img.Pix); i += size {
		copy(img.Pix[i:i+size:i+size], px)
	}
}
