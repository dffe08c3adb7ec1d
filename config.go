package iraster

import (
	"errors"
	"fmt"
)

// MaxSize bounds framebuffer dimensions and the sphere radius so every
// intermediate product stays inside 32-bit integers.
const MaxSize = 4096

// RGB is a color given as three integers in 0..255.
// It is encoded in JSON as an array: [15, 15, 100].
type RGB [3]int

// Vec4 packs the color with W = 0. Channels are masked to 8 bits; call
// Config.Validate first to reject out-of-range values.
func (c RGB) Vec4() Vec4 {
	return U8(uint8(c[0]), uint8(c[1]), uint8(c[2]), 0)
}

func (c RGB) valid() bool {
	for _, v := range c {
		if v < 0 || v > 255 {
			return false
		}
	}
	return true
}

// Point is an integer 2-D position, [x, y] in JSON.
type Point [2]int

// Direction is an unnormalized 3-D direction, [x, y, z] in JSON.
// Components must fit a signed 8-bit lane.
type Direction [3]int

// Config holds the immutable scene parameters of a render.
//
// The zero value is not usable; start from DefaultConfig or NewConfig.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Background RGB `json:"background_color"`

	SphereColor    RGB       `json:"sphere_color"`
	SphereRadius   int       `json:"sphere_radius"`
	LightDirection Direction `json:"light_direction"`
	// AmbientFloor is the minimum intensity of any lit sphere pixel.
	AmbientFloor int `json:"ambient_floor"`
	// DisplayNormals replaces lighting with the surface normal mapped to
	// [0, 255] per lane. Diagnostic only.
	DisplayNormals bool `json:"display_normals"`

	// Margin places the default triangle vertices inset from the borders.
	Margin int `json:"margin"`
	// TriangleVertices overrides the margin layout when set.
	TriangleVertices *[3]Point `json:"triangle_vertices,omitempty"`
	TriangleColors   [3]RGB    `json:"triangle_colors"`

	// BinaryOutput selects P6 instead of P3 for PPM output.
	BinaryOutput bool `json:"binary_output"`

	// Primitives overrides DefaultPrimitives for this render.
	Primitives Primitives `json:"-"`
}

// DefaultConfig returns the reference scene: a 256x256 frame, a red sphere
// of radius 80 lit from (10,-1,20) over a dark blue background, and a
// red/green/blue triangle inset by 25 pixels.
func DefaultConfig() Config {
	return Config{
		Width:          256,
		Height:         256,
		Background:     RGB{15, 15, 100},
		SphereColor:    RGB{200, 50, 50},
		SphereRadius:   80,
		LightDirection: Direction{10, -1, 20},
		AmbientFloor:   50,
		Margin:         25,
		TriangleColors: [3]RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}},
		BinaryOutput:   true,
	}
}

// Vertices returns the triangle vertices: TriangleVertices when set,
// otherwise the margin layout (M, H-1-M), (W-1-M, H-1-M), ((W-1)/2, M).
//
// Vertex coordinates must fit an 8-bit lane, so the margin layout only
// works for frames of at most 256+M pixels on each side. Larger frames
// need explicit TriangleVertices.
func (c Config) Vertices() [3]Point {
	if c.TriangleVertices != nil {
		return *c.TriangleVertices
	}
	m := c.Margin
	return [3]Point{
		{m, c.Height - 1 - m},
		{c.Width - 1 - m, c.Height - 1 - m},
		{(c.Width - 1) / 2, m},
	}
}

func (c Config) primitives() Primitives {
	if c.Primitives != nil {
		return c.Primitives
	}
	return DefaultPrimitives()
}

// Validate checks the fields shared by every scene and reports all
// problems at once. Scene-specific checks (zero light, collinear
// vertices) are made by NewSphereShader and NewTriangleRasterizer.
func (c Config) Validate() error {
	var errs []error
	if c.Width < 1 || c.Width > MaxSize || c.Height < 1 || c.Height > MaxSize {
		errs = append(errs, fmt.Errorf("%w: %dx%d (max %d)", ErrInvalidSize, c.Width, c.Height, MaxSize))
	}
	if !c.Background.valid() {
		errs = append(errs, fmt.Errorf("%w: background_color %v", ErrColorRange, c.Background))
	}
	if !c.SphereColor.valid() {
		errs = append(errs, fmt.Errorf("%w: sphere_color %v", ErrColorRange, c.SphereColor))
	}
	for i, col := range c.TriangleColors {
		if !col.valid() {
			errs = append(errs, fmt.Errorf("%w: triangle_colors[%d] %v", ErrColorRange, i, col))
		}
	}
	if c.SphereRadius < 0 || c.SphereRadius > MaxSize {
		errs = append(errs, fmt.Errorf("%w: %d", ErrRadiusRange, c.SphereRadius))
	}
	for i, v := range c.LightDirection {
		if v < -128 || v > 127 {
			errs = append(errs, fmt.Errorf("%w: light_direction[%d] = %d", ErrLightRange, i, v))
		}
	}
	if c.AmbientFloor < 0 || c.AmbientFloor > 255 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrAmbientRange, c.AmbientFloor))
	}
	if c.Margin < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrNegativeMargin, c.Margin))
	}
	return errors.Join(errs...)
}

// Option configures a Config built by NewConfig.
//
// Example:
//
//	cfg := iraster.NewConfig(
//	    iraster.WithSize(200, 150),
//	    iraster.WithLight(0, 0, 1),
//	)
type Option func(*Config)

// NewConfig returns DefaultConfig with opts applied in order.
func NewConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSize sets the framebuffer dimensions.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithBackground sets the color of pixels outside the primitive.
func WithBackground(col RGB) Option {
	return func(c *Config) {
		c.Background = col
	}
}

// WithSphere sets the sphere base color and radius.
func WithSphere(col RGB, radius int) Option {
	return func(c *Config) {
		c.SphereColor = col
		c.SphereRadius = radius
	}
}

// WithLight sets the unnormalized light direction.
func WithLight(x, y, z int) Option {
	return func(c *Config) {
		c.LightDirection = Direction{x, y, z}
	}
}

// WithAmbientFloor sets the minimum lit intensity.
func WithAmbientFloor(ka int) Option {
	return func(c *Config) {
		c.AmbientFloor = ka
	}
}

// WithMargin sets the inset of the default triangle layout.
func WithMargin(m int) Option {
	return func(c *Config) {
		c.Margin = m
	}
}

// WithTriangle sets explicit triangle vertices and their colors.
func WithTriangle(vertices [3]Point, colors [3]RGB) Option {
	return func(c *Config) {
		v := vertices
		c.TriangleVertices = &v
		c.TriangleColors = colors
	}
}

// WithDisplayNormals toggles the normal visualization of the sphere.
func WithDisplayNormals(on bool) Option {
	return func(c *Config) {
		c.DisplayNormals = on
	}
}

// WithBinaryOutput selects P6 (true) or P3 (false) PPM output.
func WithBinaryOutput(on bool) Option {
	return func(c *Config) {
		c.BinaryOutput = on
	}
}

// WithPrimitives overrides the primitive implementation for one config.
func WithPrimitives(p Primitives) Option {
	return func(c *Config) {
		c.Primitives = p
	}
}
