// Package raster provides images backed by raw pixel data in an
// explicit byte layout. They are the render target of the image canvas
// and can be handed directly to anything that expects a draw.Image.
package raster

import "fmt"

// Format is a pixel format for an Image and related types. This
// package contains several predefined formats, such as [ARGB8888].
type Format interface {
	fmt.Stringer

	// Size returns the number of bytes per pixel.
	Size() int

	// Read reads raw pixel data and converts it to alpha-premultiplied
	// RGBA values, similar to color.Color's RGBA method.
	Read([]byte) (r, g, b, a uint32)

	// Write writes alpha-premultiplied RGBA values into buf.
	Write(buf []byte, r, g, b, a uint32)
}

// Various predefined Formats.
var (
	// ARGB8888 is a little-endian uint32 with non-premultiplied
	// channels and alpha in the high byte.
	ARGB8888 Format = packed{name: "ARGB8888", offsets: [4]int{2, 1, 0, 3}, alpha: true}

	// XRGB8888 is ARGB8888 with the alpha byte ignored. Pixels are
	// always opaque.
	XRGB8888 Format = packed{name: "XRGB8888", offsets: [4]int{2, 1, 0, 3}}

	// RGBA8888 has the same layout as image.RGBA.
	RGBA8888 Format = packed{name: "RGBA8888", offsets: [4]int{0, 1, 2, 3}, alpha: true, premultiplied: true}
)

// Formats returns all of the predefined formats.
func Formats() []Format {
	return []Format{ARGB8888, XRGB8888, RGBA8888}
}

// ParseFormat returns the predefined format with the given name, such
// as "ARGB8888".
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if f.String() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown pixel format %q", name)
}

// packed is a four byte format with one byte per channel.
type packed struct {
	name string

	// offsets holds the byte index of the red, green, blue, and alpha
	// channels, in that order.
	offsets [4]int

	// alpha is false if the alpha byte is padding.
	alpha         bool
	premultiplied bool
}

func (f packed) String() string { return f.name }

func (f packed) Size() int { return 4 }

func (f packed) Read(data []byte) (r, g, b, a uint32) {
	data = data[:4:4]

	a = 0xFFFF
	if f.alpha {
		a = uint32(data[f.offsets[3]]) * 0x101
	}

	channel := func(i int) uint32 {
		c := uint32(data[f.offsets[i]])
		if f.premultiplied {
			return c * 0x101
		}
		return c * a / 0xFF
	}
	return channel(0), channel(1), channel(2), a
}

func (f packed) Write(buf []byte, r, g, b, a uint32) {
	buf = buf[:4:4]

	if !f.alpha {
		a = 0xFFFF
	}
	if a == 0 {
		clear(buf)
		return
	}

	channel := func(c uint32) byte {
		if f.premultiplied {
			return byte(c >> 8)
		}
		return byte(c * 0xFF / a)
	}
	buf[f.offsets[0]] = channel(r)
	buf[f.offsets[1]] = channel(g)
	buf[f.offsets[2]] = channel(b)
	if f.premultiplied {
		buf[f.offsets[3]] = byte(a >> 8)
		return
	}
	buf[f.offsets[3]] = byte(a * 0xFF / 0xFFFF)
}
