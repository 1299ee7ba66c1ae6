package geom

import "fmt"

// Handle names a reference position on a rectangle: one of its
// corners, the midpoint of one of its edges, or its center.
//
// Handles are used both to read positions and as targets when moving
// or stretching. As targets, the four plain edge handles, Top,
// Bottom, Left, and Right, only constrain their own axis. All others
// constrain both.
type Handle uint8

const (
	Center Handle = iota
	Top
	Bottom
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	TopCenter
	BottomCenter
	CenterLeft
	CenterRight

	numHandles = iota
)

type handleInfo struct {
	name  string
	edges Edges
	axes  Axes
}

var handles = [numHandles]handleInfo{
	Center:       {"center", EdgeNone, AxesBoth},
	Top:          {"top", EdgeTop, AxisY},
	Bottom:       {"bottom", EdgeBottom, AxisY},
	Left:         {"left", EdgeLeft, AxisX},
	Right:        {"right", EdgeRight, AxisX},
	TopLeft:      {"top_left", EdgeTop | EdgeLeft, AxesBoth},
	TopRight:     {"top_right", EdgeTop | EdgeRight, AxesBoth},
	BottomLeft:   {"bottom_left", EdgeBottom | EdgeLeft, AxesBoth},
	BottomRight:  {"bottom_right", EdgeBottom | EdgeRight, AxesBoth},
	TopCenter:    {"top_center", EdgeTop, AxesBoth},
	BottomCenter: {"bottom_center", EdgeBottom, AxesBoth},
	CenterLeft:   {"center_left", EdgeLeft, AxesBoth},
	CenterRight:  {"center_right", EdgeRight, AxesBoth},
}

// Handles returns every valid Handle in declaration order.
func Handles() []Handle {
	all := make([]Handle, numHandles)
	for i := range all {
		all[i] = Handle(i)
	}
	return all
}

// ParseHandle returns the handle with the given snake_case name, such
// as "top_left".
func ParseHandle(name string) (Handle, bool) {
	for i, info := range handles {
		if info.name == name {
			return Handle(i), true
		}
	}
	return 0, false
}

// Valid reports whether h is one of the defined handles.
func (h Handle) Valid() bool {
	return h < numHandles
}

func (h Handle) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Handle(%d)", uint8(h))
	}
	return handles[h].name
}

// Edges returns the edges of a rectangle that h lies on. Center lies
// on none.
func (h Handle) Edges() Edges {
	if !h.Valid() {
		return EdgeNone
	}
	return handles[h].edges
}

// Axes returns the axes that h constrains when used as a target.
func (h Handle) Axes() Axes {
	if !h.Valid() {
		return 0
	}
	return handles[h].axes
}

// Opposite returns the handle on the other side of the rectangle's
// center. Center is its own opposite.
func (h Handle) Opposite() Handle {
	switch h {
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	case TopLeft:
		return BottomRight
	case TopRight:
		return BottomLeft
	case BottomLeft:
		return TopRight
	case BottomRight:
		return TopLeft
	case TopCenter:
		return BottomCenter
	case BottomCenter:
		return TopCenter
	case CenterLeft:
		return CenterRight
	case CenterRight:
		return CenterLeft
	default:
		return h
	}
}
