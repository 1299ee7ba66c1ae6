package canvas_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"deedles.dev/shapes/canvas"
	"deedles.dev/shapes/raster"
	"deedles.dev/shapes/shape"
	"github.com/stretchr/testify/require"
)

func rgba(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

var (
	red   = color.RGBA{R: 0xFF, A: 0xFF}
	blue  = color.RGBA{B: 0xFF, A: 0xFF}
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	green = color.RGBA{G: 0x80, A: 0xFF}
)

func TestImage(t *testing.T) {
	c := canvas.New(10, 10).Append(shape.Must(shape.FromEdges(-5, -5, 0, 0, "red")))
	img, err := c.Image(raster.RGBA8888)
	require.Nil(t, err)
	require.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
	require.Equal(t, red, rgba(img, 1, 8))
	require.Equal(t, red, rgba(img, 4, 5))
	require.Equal(t, color.RGBA{}, rgba(img, 1, 4))
	require.Equal(t, color.RGBA{}, rgba(img, 8, 1))

	c.Style = shape.Style{"background": "white"}
	img, err = c.Image(raster.XRGB8888)
	require.Nil(t, err)
	require.Equal(t, white, rgba(img, 8, 1))
	require.Equal(t, red, rgba(img, 1, 8))
}

func TestImageScale(t *testing.T) {
	c := canvas.New(10, 10).Append(shape.Must(shape.FromEdges(0, 0, 5, 5, "blue")))
	c.Scale = 2
	img, err := c.Image(raster.RGBA8888)
	require.Nil(t, err)
	require.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())
	require.Equal(t, blue, rgba(img, 15, 5))
	require.Equal(t, color.RGBA{}, rgba(img, 5, 15))
}

func TestImageSegment(t *testing.T) {
	s := shape.Must(shape.NewSegment(shape.Pt(-5, 2), shape.Pt(5, 2), 4, "blue"))
	img, err := canvas.New(10, 10).Append(s).Image(raster.RGBA8888)
	require.Nil(t, err)
	require.Equal(t, white, rgba(img, 3, 3))
	require.Equal(t, blue, rgba(img, 3, 1))
	require.Equal(t, blue, rgba(img, 3, 4))
}

func TestImageBorder(t *testing.T) {
	r := shape.Must(shape.FromEdges(-4, -4, 4, 4, shape.Style{
		"background": "none",
		"border":     "2px solid green",
	}))
	img, err := canvas.New(10, 10).Append(r).Image(raster.RGBA8888)
	require.Nil(t, err)
	require.Equal(t, green, rgba(img, 1, 4))
	require.Equal(t, green, rgba(img, 4, 8))
	require.Equal(t, color.RGBA{}, rgba(img, 3, 3))
}

func TestImageErrors(t *testing.T) {
	_, err := canvas.New(10, 10).Append(rect("notacolor")).Image(raster.RGBA8888)
	require.ErrorIs(t, err, canvas.ErrUnknownColor)

	_, err = canvas.New(10, 10).Append(rect(1.5)).Image(raster.RGBA8888)
	require.ErrorIs(t, err, canvas.ErrStyleLookup)

	c := canvas.New(10, 10)
	c.Style = shape.Style{"background": "#nope"}
	_, err = c.Image(raster.RGBA8888)
	require.ErrorIs(t, err, canvas.ErrUnknownColor)
}

func TestWritePNG(t *testing.T) {
	c := canvas.New(8, 6).Append(shape.Must(shape.FromEdges(-4, -3, 4, 3, "#ff0000")))

	var buf bytes.Buffer
	err := c.WritePNG(&buf)
	require.Nil(t, err)

	img, err := png.Decode(&buf)
	require.Nil(t, err)
	require.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
	require.Equal(t, red, rgba(img, 1, 1))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.Color
	}{
		{"red", red},
		{" Red ", red},
		{"#f00", red},
		{"#FF0000", red},
		{"white", white},
		{"none", color.Transparent},
		{"transparent", color.Transparent},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			c, err := canvas.ParseColor(test.in)
			require.Nil(t, err)
			require.Equal(t, color.RGBAModel.Convert(test.expected), color.RGBAModel.Convert(c))
		})
	}

	for _, bad := range []string{"", "reddish", "#12", "#ggg"} {
		_, err := canvas.ParseColor(bad)
		require.ErrorIs(t, err, canvas.ErrUnknownColor, bad)
	}
}

func BenchmarkImage(b *testing.B) {
	g := new(shape.Group).Grid(10, 10, 10, 10, func(row, col int) shape.Shape {
		return shape.Must(shape.FromSize(8, 8, "red"))
	})
	c := canvas.New(100, 100).Append(g.Translate(shape.Pt(-45, -45)))
	for b.Loop() {
		_, err := c.Image(raster.RGBA8888)
		if err != nil {
			b.Fatal(err)
		}
	}
}
