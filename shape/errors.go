package shape

import "errors"

var (
	// ErrMalformed is returned when a shape would be built from
	// coordinates that are not finite numbers or from a negative size.
	ErrMalformed = errors.New("malformed coordinates")

	// ErrConflictingTargets is returned when a single call is given
	// targets that cannot all be satisfied at once.
	ErrConflictingTargets = errors.New("conflicting targets")

	// ErrInvalidHandle is returned when a handle cannot be used for the
	// requested operation, such as stretching the center of a shape.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrNotAxisAligned is returned when two points that should lie on
	// a line parallel to one of the coordinate axes do not.
	ErrNotAxisAligned = errors.New("not parallel to a coordinate axis")

	// ErrThicknessFixed is returned when a stretch would change the
	// thickness of a segment.
	ErrThicknessFixed = errors.New("segment thickness is fixed")

	// ErrTooFewPoints is returned when a path is built from fewer than
	// two points.
	ErrTooFewPoints = errors.New("too few points")
)
