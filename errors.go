package iraster

import "errors"

// Configuration errors. Validate and the shader constructors wrap these
// with the offending field, so callers can test them with errors.Is.
var (
	// ErrInvalidSize is returned when width or height is outside [1, MaxSize].
	ErrInvalidSize = errors.New("iraster: invalid framebuffer size")

	// ErrColorRange is returned when a color channel is outside 0..255.
	ErrColorRange = errors.New("iraster: color channel out of range")

	// ErrCoordRange is returned when a triangle vertex coordinate is outside 0..255.
	ErrCoordRange = errors.New("iraster: vertex coordinate out of range")

	// ErrLightRange is returned when a light component does not fit a signed 8-bit lane.
	ErrLightRange = errors.New("iraster: light component out of range")

	// ErrZeroLight is returned when the light direction is the zero vector.
	ErrZeroLight = errors.New("iraster: light direction is zero")

	// ErrRadiusRange is returned when the sphere radius is negative or above MaxSize.
	ErrRadiusRange = errors.New("iraster: sphere radius out of range")

	// ErrAmbientRange is returned when the ambient floor is outside 0..255.
	ErrAmbientRange = errors.New("iraster: ambient floor out of range")

	// ErrNegativeMargin is returned when the triangle margin is negative.
	ErrNegativeMargin = errors.New("iraster: negative margin")

	// ErrDegenerateTriangle is returned when the triangle vertices are collinear.
	ErrDegenerateTriangle = errors.New("iraster: degenerate triangle")

	// ErrUnknownScene is returned by ParseScene for unrecognized names.
	ErrUnknownScene = errors.New("iraster: unknown scene")
)
