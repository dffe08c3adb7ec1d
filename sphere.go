package iraster

import (
	"fmt"

	"github.com/gogpu/iraster/internal/fixed"
)

// SphereShader shades an orthographically projected sphere centered in
// the frame, lit by a single directional light with a Lambert term and an
// ambient floor.
//
// There is no specular term: it needs an exponent, which integer-only
// targets cannot afford.
type SphereShader struct {
	prims Primitives

	width, height int

	radius  int32
	radius2 int32

	light      Vec4 // signed, normalized to the 127 scale
	color      Vec4
	background Vec4
	ambient    int32
	normals    bool
}

// NewSphereShader validates cfg and normalizes the light direction.
func NewSphereShader(cfg Config) (*SphereShader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := cfg.LightDirection
	lx, ly, lz, ok := fixed.Normalize127(int32(l[0]), int32(l[1]), int32(l[2]))
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrZeroLight, l)
	}
	r := int32(cfg.SphereRadius)
	return &SphereShader{
		prims:      cfg.primitives(),
		width:      cfg.Width,
		height:     cfg.Height,
		radius:     r,
		radius2:    r * r,
		light:      I8(lx, ly, lz, 0),
		color:      cfg.SphereColor.Vec4(),
		background: cfg.Background.Vec4(),
		ambient:    int32(cfg.AmbientFloor),
		normals:    cfg.DisplayNormals,
	}, nil
}

// Light returns the normalized light direction in signed lanes.
func (s *SphereShader) Light() Vec4 {
	return s.light
}

// Shade returns the color of framebuffer pixel (px, py). The sphere is
// centered at (Width/2, Height/2).
func (s *SphereShader) Shade(px, py int) Vec4 {
	return s.ShadeCentered(int32(px-s.width/2), int32(py-s.height/2))
}

// ShadeCentered returns the color at screen position (x, y) relative to
// the sphere center. Pixels with x²+y² <= r² belong to the sphere,
// including the silhouette.
func (s *SphereShader) ShadeCentered(x, y int32) Vec4 {
	dist2 := x*x + y*y
	if s.radius == 0 || dist2 > s.radius2 {
		return s.background
	}

	n := s.normal(x, y, dist2)
	if s.normals {
		return U8(uint8(int32(n.SX())+127), uint8(int32(n.SY())+127), uint8(int32(n.SZ())+127), 0)
	}

	// Both operands carry the 127 scale; drop one of them.
	dot := s.prims.Dot3(n, s.light) / fixed.One
	if dot < 0 {
		dot = 0
	}
	intensity := fixed.Clamp(dot*255/fixed.One, s.ambient, 255)
	return s.prims.Lerp(Black, s.color, uint8(intensity))
}

// normal reconstructs the unit surface normal on the visible hemisphere.
func (s *SphereShader) normal(x, y, dist2 int32) Vec4 {
	r := s.radius
	nz := fixed.Isqrt(s.radius2 - dist2)

	// Per-axis scaling does not preserve length under truncation, so the
	// vector is normalized again.
	nx, ny, nzz, ok := fixed.Normalize127(x*fixed.One/r, y*fixed.One/r, nz*fixed.One/r)
	if !ok {
		return I8(0, 0, fixed.One, 0)
	}
	return I8(nx, ny, nzz, 0)
}
