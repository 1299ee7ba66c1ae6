package raster_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"deedles.dev/shapes/raster"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	var data [4]byte
	raster.ARGB8888.Write(data[:], 0x1111, 0x2222, 0x3333, 0xFFFF)
	require.Equal(t, [...]byte{0x33, 0x22, 0x11, 0xFF}, data)

	r, g, b, a := raster.ARGB8888.Read(data[:])
	require.Equal(t, uint32(0x1111), r)
	require.Equal(t, uint32(0x2222), g)
	require.Equal(t, uint32(0x3333), b)
	require.Equal(t, uint32(0xFFFF), a)

	raster.ARGB8888.Write(data[:], 0, 0, 0, 0)
	require.Equal(t, [4]byte{}, data)

	raster.RGBA8888.Write(data[:], 0x1111, 0x2222, 0x3333, 0xFFFF)
	require.Equal(t, [...]byte{0x11, 0x22, 0x33, 0xFF}, data)
	r, g, b, a = raster.RGBA8888.Read(data[:])
	require.Equal(t, [...]uint32{0x1111, 0x2222, 0x3333, 0xFFFF}, [...]uint32{r, g, b, a})

	raster.XRGB8888.Write(data[:], 0xFFFF, 0, 0, 0)
	_, _, _, a = raster.XRGB8888.Read(data[:])
	require.Equal(t, uint32(0xFFFF), a)
}

func TestFormatHalfAlpha(t *testing.T) {
	var data [4]byte
	raster.ARGB8888.Write(data[:], 0x8080, 0, 0, 0x8080)
	require.Equal(t, [...]byte{0, 0, 0xFF, 0x80}, data)
	r, _, _, a := raster.ARGB8888.Read(data[:])
	require.Equal(t, uint32(0x8080), a)
	require.Equal(t, uint32(0x8080), r)

	raster.RGBA8888.Write(data[:], 0x8080, 0, 0, 0x8080)
	require.Equal(t, [...]byte{0x80, 0, 0, 0x80}, data)

	raster.XRGB8888.Write(data[:], 0x1111, 0x2222, 0x3333, 0x8080)
	require.Equal(t, [...]byte{0x33, 0x22, 0x11, 0xFF}, data)
}

func TestParseFormat(t *testing.T) {
	for _, f := range raster.Formats() {
		parsed, err := raster.ParseFormat(f.String())
		require.Nil(t, err)
		require.Equal(t, f, parsed)
	}

	_, err := raster.ParseFormat("RGB565")
	require.NotNil(t, err)
}

func TestImage(t *testing.T) {
	img := raster.New(image.Rect(1, 1, 4, 3), raster.ARGB8888)
	require.Len(t, img.Pix, 24)
	require.Equal(t, 12, img.Stride())
	require.Equal(t, 20, img.PixOffset(3, 2))

	img.Set(3, 2, color.NRGBA{R: 0xFF, A: 0xFF})
	r, g, b, a := img.At(3, 2).RGBA()
	require.Equal(t, [...]uint32{0xFFFF, 0, 0, 0xFFFF}, [...]uint32{r, g, b, a})
	require.Equal(t, [...]byte{0, 0, 0xFF, 0xFF}, [4]byte(img.Pix[20:24]))

	img.Set(0, 0, color.White)
	_, _, _, a = img.At(0, 0).RGBA()
	require.Equal(t, uint32(0), a)
}

func TestImageFill(t *testing.T) {
	img := raster.New(image.Rect(0, 0, 3, 3), raster.RGBA8888)
	img.Fill(color.White)
	for y := range 3 {
		for x := range 3 {
			require.Equal(t, color.RGBAModel.Convert(color.White), color.RGBAModel.Convert(img.At(x, y)))
		}
	}

	draw.Draw(img, image.Rect(1, 1, 2, 2), image.NewUniform(color.Black), image.Point{}, draw.Src)
	require.Equal(t, color.RGBA{A: 0xFF}, color.RGBAModel.Convert(img.At(1, 1)))
	require.Equal(t, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, color.RGBAModel.Convert(img.At(2, 2)))
}

func TestModel(t *testing.T) {
	m := raster.Model{Format: raster.XRGB8888}
	c := m.Convert(color.Black)
	require.Same(t, c, m.Convert(c))
}

func BenchmarkFill(b *testing.B) {
	img := raster.New(image.Rect(0, 0, 256, 256), raster.ARGB8888)
	for b.Loop() {
		img.Fill(color.Black)
	}
}
