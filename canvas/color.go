package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned when a CSS color can't be understood.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor converts a CSS color into a color.Color. It understands
// the named CSS colors, hex colors of the forms #rgb and #rrggbb, and
// the keywords "none" and "transparent", which produce
// color.Transparent.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "none", "transparent":
		return color.Transparent, nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrUnknownColor)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
	}

	c, ok := colornames.Map[s]
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, ErrUnknownColor)
	}
	return c, nil
}

// isTransparent reports whether c is fully transparent.
func isTransparent(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0
}

// borderOf extracts the width and color of a CSS border shorthand
// such as "2px solid red". A border without a width is 1 pixel wide.
func borderOf(s string) (width float64, c color.Color, err error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, color.Transparent, nil
	}

	width = 1
	for _, f := range fields[:len(fields)-1] {
		var w float64
		_, err := fmt.Sscanf(f, "%gpx", &w)
		if err == nil {
			width = w
		}
	}

	c, err = ParseColor(fields[len(fields)-1])
	if err != nil {
		return 0, nil, fmt.Errorf("border %q: %w", s, err)
	}
	return width, c, nil
}
