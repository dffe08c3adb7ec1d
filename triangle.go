package iraster

import "fmt"

// TriangleRasterizer fills one triangle with colors blended from its
// vertices using barycentric weights.
//
// Colors are blended with two nested lerps, c0→c1 by w1 and then toward c2
// by w2, instead of the three-term weighted sum. The result equals true
// barycentric interpolation at the vertices and along the c0–c1 edge but
// is biased toward c0 elsewhere. It is kept because it needs only the
// single Lerp primitive.
type TriangleRasterizer struct {
	prims Primitives

	v          [3]Point
	c          [3]Vec4
	denom      int32
	background Vec4
}

// NewTriangleRasterizer validates cfg, checks the vertices are inside
// 0..255 and rejects collinear vertices.
func NewTriangleRasterizer(cfg Config) (*TriangleRasterizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	v := cfg.Vertices()
	for i, p := range v {
		if p[0] < 0 || p[0] > 255 || p[1] < 0 || p[1] > 255 {
			if cfg.TriangleVertices == nil {
				return nil, fmt.Errorf("%w: vertex %d at %v from margin layout of %dx%d frame; set triangle_vertices",
					ErrCoordRange, i, p, cfg.Width, cfg.Height)
			}
			return nil, fmt.Errorf("%w: vertex %d at %v", ErrCoordRange, i, p)
		}
	}

	t := &TriangleRasterizer{
		prims:      cfg.primitives(),
		v:          v,
		background: cfg.Background.Vec4(),
	}
	for i, col := range cfg.TriangleColors {
		t.c[i] = col.Vec4()
	}

	// Twice the signed area; the sign encodes the winding.
	x0, y0 := int32(v[0][0]), int32(v[0][1])
	x1, y1 := int32(v[1][0]), int32(v[1][1])
	x2, y2 := int32(v[2][0]), int32(v[2][1])
	t.denom = (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if t.denom == 0 {
		return nil, fmt.Errorf("%w: %v", ErrDegenerateTriangle, v)
	}
	return t, nil
}

// Area2 returns twice the signed area of the triangle. It is the sum of
// the three barycentric weights at any pixel.
func (t *TriangleRasterizer) Area2() int32 {
	return t.denom
}

// Weights returns the unnormalized barycentric weights of (x, y).
// w0+w1+w2 == Area2().
func (t *TriangleRasterizer) Weights(x, y int) (w0, w1, w2 int32) {
	px, py := int32(x), int32(y)
	x0, y0 := int32(t.v[0][0]), int32(t.v[0][1])
	x1, y1 := int32(t.v[1][0]), int32(t.v[1][1])
	x2, y2 := int32(t.v[2][0]), int32(t.v[2][1])

	w0 = (y1-y2)*(px-x2) + (x2-x1)*(py-y2)
	w1 = (y2-y0)*(px-x2) + (x0-x2)*(py-y2)
	w2 = t.denom - w0 - w1
	return w0, w1, w2
}

// Inside reports whether (x, y) is inside the triangle. Pixels on an edge
// (any weight zero) are inside.
func (t *TriangleRasterizer) Inside(x, y int) bool {
	w0, w1, w2 := t.Weights(x, y)
	return t.inside(w0, w1, w2)
}

func (t *TriangleRasterizer) inside(w0, w1, w2 int32) bool {
	if t.denom > 0 {
		return w0 >= 0 && w1 >= 0 && w2 >= 0
	}
	return w0 <= 0 && w1 <= 0 && w2 <= 0
}

// Shade returns the color of pixel (x, y), origin at the top-left.
func (t *TriangleRasterizer) Shade(x, y int) Vec4 {
	w0, w1, w2 := t.Weights(x, y)
	if !t.inside(w0, w1, w2) {
		return t.background
	}
	// Same sign as denom, so both factors land in 0..255.
	t1 := uint8(w1 * 255 / t.denom)
	t2 := uint8(w2 * 255 / t.denom)
	c01 := t.prims.Lerp(t.c[0], t.c[1], t1)
	return t.prims.Lerp(c01, t.c[2], t2)
}
