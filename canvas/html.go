package canvas

import (
	"html"
	"maps"
	"slices"
	"strconv"
	"strings"

	"deedles.dev/shapes/geom"
	"deedles.dev/shapes/shape"
)

// element is an HTML element with inline CSS. Properties are written
// in the order that they were set.
type element struct {
	tag   string
	props []string
	vals  map[string]string
}

func div() *element {
	return &element{tag: "div", vals: make(map[string]string)}
}

func (e *element) set(prop, val string) *element {
	if _, ok := e.vals[prop]; !ok {
		e.props = append(e.props, prop)
	}
	e.vals[prop] = val
	return e
}

func (e *element) px(prop string, val float64) *element {
	return e.set(prop, strconv.FormatFloat(val, 'f', -1, 64)+"px")
}

// update sets every property in s, in sorted order.
func (e *element) update(s shape.Style) *element {
	for _, k := range slices.Sorted(maps.Keys(s)) {
		e.set(k, s[k])
	}
	return e
}

func (e *element) open(buf *strings.Builder) {
	buf.WriteString("<")
	buf.WriteString(e.tag)
	buf.WriteString(` style="`)
	for i, p := range e.props {
		if i > 0 {
			buf.WriteString("; ")
		}
		buf.WriteString(html.EscapeString(p))
		buf.WriteString(": ")
		buf.WriteString(html.EscapeString(e.vals[p]))
	}
	buf.WriteString(`">`)
}

func (e *element) close(buf *strings.Builder) {
	buf.WriteString("</")
	buf.WriteString(e.tag)
	buf.WriteString(">")
}

func (e *element) String() string {
	var buf strings.Builder
	e.open(&buf)
	e.close(&buf)
	return buf.String()
}

// HTML renders the canvas as a block of HTML. The canvas is a
// relatively positioned div, divided into quadrants by dotted lines
// through the origin, containing an absolutely positioned div for
// every shape. Segments contain a line showing their direction.
func (c *Canvas) HTML() (string, error) {
	size := c.pixelSize()

	var buf strings.Builder
	container := div().set("position", "relative").px("width", size.X).px("height", size.Y).update(c.Style)
	container.open(&buf)
	buf.WriteByte('\n')

	area := geom.Rect[float64]{Max: size}
	for q := range geom.TiledRows(4, area, 2) {
		axis := div().set("position", "absolute").
			px("left", q.Min.X).px("bottom", q.Min.Y).
			px("width", q.Dx()).px("height", q.Dy()).
			set("border", "1px dotted black").
			set("box-sizing", "border-box")
		buf.WriteString(axis.String())
		buf.WriteByte('\n')
	}

	err := c.walk(func(s shape.Shape, st style) error {
		c.htmlShape(&buf, s, st)
		return nil
	})
	if err != nil {
		return "", err
	}

	container.close(&buf)
	return buf.String(), nil
}

func (c *Canvas) htmlShape(buf *strings.Builder, s shape.Shape, st style) {
	r := c.project(s.Bounds())
	e := div().set("position", "absolute").
		px("left", r.Min.X).px("bottom", r.Min.Y).
		px("width", r.Dx()).px("height", r.Dy()).
		set("box-sizing", "border-box")

	seg, ok := s.(*shape.Segment)
	if !ok {
		e.update(st.body)
		buf.WriteString(e.String())
		buf.WriteByte('\n')
		return
	}

	e.set("display", "flex").
		set("align-items", "center").
		set("justify-content", "center").
		update(st.body)

	line := div()
	if seg.IsHorizontal() {
		line.set("width", "100%").px("height", 2)
	} else {
		line.px("width", 2).set("height", "100%")
	}
	line.update(st.line)

	e.open(buf)
	buf.WriteString(line.String())
	e.close(buf)
	buf.WriteByte('\n')
}
