package iraster

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/gogpu/iraster/internal/parallel"
)

// Shader computes the color of a single framebuffer pixel.
//
// Shade must be a pure function of (x, y): Render may call it from several
// goroutines and in any order.
type Shader interface {
	Shade(x, y int) Vec4
}

// Scene selects which primitive a render draws.
type Scene int

const (
	// SceneSphere is the lit sphere, origin at the frame center.
	SceneSphere Scene = iota
	// SceneTriangle is the vertex-colored triangle, origin at the top-left.
	SceneTriangle
)

// String returns the scene name accepted by ParseScene.
func (s Scene) String() string {
	switch s {
	case SceneSphere:
		return "sphere"
	case SceneTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("Scene(%d)", int(s))
	}
}

// ParseScene returns the scene with the given name ("sphere", "triangle").
func ParseScene(name string) (Scene, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sphere":
		return SceneSphere, nil
	case "triangle", "raster":
		return SceneTriangle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
}

// NewShader builds the shader for scene from cfg.
func NewShader(cfg Config, scene Scene) (Shader, error) {
	switch scene {
	case SceneSphere:
		s, err := NewSphereShader(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case SceneTriangle:
		t, err := NewTriangleRasterizer(cfg)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownScene, scene)
	}
}

// RenderOption configures Render.
type RenderOption func(*renderOptions)

type renderOptions struct {
	workers     int
	rowsPerBand int
}

// WithWorkers sets the number of goroutines used by Render. 1, the
// default, renders serially on the calling goroutine; n <= 0 uses
// GOMAXPROCS.
func WithWorkers(n int) RenderOption {
	return func(o *renderOptions) {
		o.workers = n
	}
}

// WithRowsPerBand sets how many rows one unit of parallel work covers.
func WithRowsPerBand(n int) RenderOption {
	return func(o *renderOptions) {
		o.rowsPerBand = n
	}
}

// Render writes every pixel of fb exactly once with s.Shade. The result
// does not depend on the worker count.
func Render(fb *Framebuffer, s Shader, opts ...RenderOption) {
	o := renderOptions{workers: 1, rowsPerBand: 16}
	for _, opt := range opts {
		opt(&o)
	}

	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.workers == 1 {
		renderBand(fb, s, parallel.Band{Y0: 0, Y1: fb.height})
		return
	}

	bands := parallel.SplitRows(fb.height, o.rowsPerBand)
	Logger().Debug("render bands", "bands", len(bands), "workers", o.workers)

	pool := parallel.NewPool(o.workers)
	pool.Run(bands, func(b parallel.Band) { renderBand(fb, s, b) })
	pool.Close()
	Logger().Debug("render bands done", "stolen", pool.Stolen())
}

func renderBand(fb *Framebuffer, s Shader, b parallel.Band) {
	for y := b.Y0; y < b.Y1; y++ {
		row := fb.Row(y)
		for x := range row {
			row[x] = s.Shade(x, y)
		}
	}
}

// RenderScene validates cfg, builds the shader for scene, allocates a
// framebuffer of cfg.Width x cfg.Height and renders into it.
func RenderScene(cfg Config, scene Scene, opts ...RenderOption) (*Framebuffer, error) {
	s, err := NewShader(cfg, scene)
	if err != nil {
		return nil, err
	}

	fb := NewFramebuffer(cfg.Width, cfg.Height)
	start := time.Now()
	Render(fb, s, opts...)

	Logger().Info("scene rendered",
		"scene", scene.String(),
		"width", cfg.Width,
		"height", cfg.Height,
		"primitives", cfg.primitives().Name(),
		"elapsed", time.Since(start))
	return fb, nil
}
