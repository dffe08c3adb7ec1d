package iraster

import (
	"errors"
	"testing"
)

func TestParseScene(t *testing.T) {
	tests := []struct {
		in   string
		want Scene
	}{
		{"sphere", SceneSphere},
		{" Triangle ", SceneTriangle},
		{"raster", SceneTriangle},
	}
	for _, tt := range tests {
		got, err := ParseScene(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseScene(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseScene("cube"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("ParseScene(cube) error = %v, want ErrUnknownScene", err)
	}
}

func TestNewShaderUnknownScene(t *testing.T) {
	if _, err := NewShader(DefaultConfig(), Scene(42)); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("NewShader() error = %v, want ErrUnknownScene", err)
	}
	if Scene(42).String() != "Scene(42)" {
		t.Errorf("String() = %q", Scene(42).String())
	}
}

func TestRenderParallelMatchesSerial(t *testing.T) {
	for _, scene := range []Scene{SceneSphere, SceneTriangle} {
		t.Run(scene.String(), func(t *testing.T) {
			serial, err := RenderScene(DefaultConfig(), scene)
			if err != nil {
				t.Fatalf("RenderScene() = %v", err)
			}
			par, err := RenderScene(DefaultConfig(), scene, WithWorkers(4), WithRowsPerBand(7))
			if err != nil {
				t.Fatalf("RenderScene(parallel) = %v", err)
			}
			for i := range serial.Words() {
				if serial.Words()[i] != par.Words()[i] {
					t.Fatalf("pixel %d differs: serial %v, parallel %v", i, serial.Words()[i], par.Words()[i])
				}
			}
		})
	}
}

// countingShader records how many times each pixel is shaded.
type countingShader struct {
	width int
	hits  []int
}

func (c *countingShader) Shade(x, y int) Vec4 {
	c.hits[y*c.width+x]++
	return U8(uint8(x), uint8(y), 0, 0)
}

func TestRenderWritesEachPixelOnce(t *testing.T) {
	fb := NewFramebuffer(13, 9)
	s := &countingShader{width: 13, hits: make([]int, 13*9)}
	Render(fb, s, WithWorkers(3), WithRowsPerBand(2))

	for i, h := range s.hits {
		if h != 1 {
			t.Fatalf("pixel %d shaded %d times", i, h)
		}
	}
	if got := fb.Pixel(12, 8); got != U8(12, 8, 0, 0) {
		t.Errorf("Pixel(12,8) = %v", got)
	}
}

func TestRenderSceneInvalidConfig(t *testing.T) {
	_, err := RenderScene(NewConfig(WithSize(0, 0)), SceneSphere)
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("RenderScene() error = %v, want ErrInvalidSize", err)
	}
}

func BenchmarkRenderSphere(b *testing.B) {
	s, err := NewSphereShader(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	fb := NewFramebuffer(256, 256)
	b.ReportAllocs()
	for b.Loop() {
		Render(fb, s)
	}
}

func BenchmarkRenderTriangle(b *testing.B) {
	tr, err := NewTriangleRasterizer(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	fb := NewFramebuffer(256, 256)
	b.ReportAllocs()
	for b.Loop() {
		Render(fb, tr)
	}
}

func BenchmarkRenderSphereParallel(b *testing.B) {
	s, err := NewSphereShader(DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	fb := NewFramebuffer(256, 256)
	for b.Loop() {
		Render(fb, s, WithWorkers(0))
	}
}
