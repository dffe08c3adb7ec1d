package main

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/iraster"
	"github.com/gogpu/iraster/imageio"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("parseLevel(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := parseLevel("verbose"); err == nil {
		t.Error("parseLevel(verbose) should fail")
	}
}

func TestParseFlagsDefaults(t *testing.T) {
	o, err := parseFlags(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if o.scene != "all" || o.sphereOut != "sphere.ppm" || o.rasterOut != "raster.ppm" || o.accel != "lut" {
		t.Errorf("unexpected defaults: %+v", o)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	if _, err := parseFlags([]string{"-h"}, &bytes.Buffer{}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h error = %v, want flag.ErrHelp", err)
	}
	if _, err := parseFlags([]string{"extra"}, &bytes.Buffer{}); err == nil {
		t.Error("positional argument should fail")
	}
}

func TestScenesFor(t *testing.T) {
	all, err := scenesFor("all")
	if err != nil || len(all) != 2 {
		t.Fatalf("scenesFor(all) = %v, %v", all, err)
	}
	one, err := scenesFor("raster")
	if err != nil || len(one) != 1 || one[0] != iraster.SceneTriangle {
		t.Errorf("scenesFor(raster) = %v, %v", one, err)
	}
	if _, err := scenesFor("cube"); !errors.Is(err, iraster.ErrUnknownScene) {
		t.Errorf("scenesFor(cube) error = %v", err)
	}
}

func TestPrimitivesFor(t *testing.T) {
	p, err := primitivesFor("lut")
	if err != nil || p.Name() != "lut" {
		t.Errorf("primitivesFor(lut) = %v, %v", p, err)
	}
	p, err = primitivesFor("reference")
	if err != nil || p.Name() != "reference" {
		t.Errorf("primitivesFor(reference) = %v, %v", p, err)
	}
	if _, err := primitivesFor("simd"); err == nil {
		t.Error("primitivesFor(simd) should fail")
	}
}

func TestRunWritesBothScenes(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	if err := run([]string{"-dir", dir, "-log-level", "info"}, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}
	for _, name := range []string{"sphere.ppm", "raster.ppm"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.HasPrefix(data, []byte("P6 256 256 255\n")) {
			t.Errorf("%s header = %q", name, data[:16])
		}
	}
	if !strings.Contains(stderr.String(), "scene rendered") {
		t.Errorf("expected render log, got:\n%s", stderr.String())
	}
}

func TestRunCompare(t *testing.T) {
	dir := t.TempDir()
	dump := filepath.Join(dir, "sphere.bin.zst")
	args := []string{"-scene", "sphere", "-dir", dir, "-sphere-out", "sphere.bin.zst", "-accel", "reference"}
	if err := run(args, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}

	if err := run([]string{"-scene", "sphere", "-compare", dump}, &bytes.Buffer{}); err != nil {
		t.Errorf("compare with matching dump: %v", err)
	}

	fb, err := imageio.LoadRaw(dump, 256, 256)
	if err != nil {
		t.Fatalf("LoadRaw: %v", err)
	}
	fb.SetPixel(3, 4, iraster.U8(1, 2, 3, 4))
	bad := filepath.Join(dir, "bad.bin")
	if err := imageio.Save(bad, fb, imageio.Options{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	err = run([]string{"-scene", "sphere", "-compare", bad}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "1 pixels differ, first at (3,4)") {
		t.Errorf("compare with bad dump error = %v", err)
	}

	if err := run([]string{"-compare", bad}, &bytes.Buffer{}); err == nil {
		t.Error("-compare with -scene all should fail")
	}
}

func TestRunSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := run([]string{"-save-config", path, "-ascii", "-normals"}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	cfg, err := iraster.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BinaryOutput || !cfg.DisplayNormals {
		t.Errorf("saved config = %+v", cfg)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"width": 0}`), 0o600); err != nil {
		t.Fatal(err)
	}
	err := run([]string{"-config", path, "-dir", t.TempDir()}, &bytes.Buffer{})
	if !errors.Is(err, iraster.ErrInvalidSize) {
		t.Errorf("run error = %v, want ErrInvalidSize", err)
	}
}
