// Command iraster renders the integer-only sphere and triangle scenes and
// writes them as images.
//
// Usage:
//
//	iraster [flags]
//
// With no flags it renders both scenes with the default configuration and
// writes sphere.ppm and raster.ppm to the current directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/iraster"
	"github.com/gogpu/iraster/accel"
	"github.com/gogpu/iraster/imageio"
	"github.com/gogpu/iraster/internal/shader"
)

type options struct {
	scene      string
	configPath string
	saveConfig string
	dir        string
	sphereOut  string
	rasterOut  string
	ascii      bool
	normals    bool
	accel      string
	workers    int
	logLevel   string
	spirvOut   string
	compare    string
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "iraster: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("iraster", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.scene, "scene", "all", "scene to render: sphere, triangle or all")
	fs.StringVar(&o.configPath, "config", "", "JSON config file (defaults apply to missing fields)")
	fs.StringVar(&o.saveConfig, "save-config", "", "write the effective config as JSON and exit")
	fs.StringVar(&o.dir, "dir", ".", "output directory")
	fs.StringVar(&o.sphereOut, "sphere-out", "sphere.ppm", "sphere output file (.ppm, .png, .bmp, .tiff, .bin, .bin.zst)")
	fs.StringVar(&o.rasterOut, "raster-out", "raster.ppm", "triangle output file (.ppm, .png, .bmp, .tiff, .bin, .bin.zst)")
	fs.BoolVar(&o.ascii, "ascii", false, "write ASCII (P3) PPM instead of binary (P6)")
	fs.BoolVar(&o.normals, "normals", false, "render sphere normals instead of shading")
	fs.StringVar(&o.accel, "accel", "lut", "primitive implementation: lut or reference")
	fs.IntVar(&o.workers, "workers", 0, "render workers (0 = GOMAXPROCS, 1 = serial)")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&o.spirvOut, "spirv", "", "also compile the primitives kernel and write SPIR-V to this file")
	fs.StringVar(&o.compare, "compare", "", "compare the rendered scene against a raw dump (.bin or .bin.zst); needs a single -scene")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return o, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

func scenesFor(name string) ([]iraster.Scene, error) {
	if strings.EqualFold(name, "all") {
		return []iraster.Scene{iraster.SceneSphere, iraster.SceneTriangle}, nil
	}
	s, err := iraster.ParseScene(name)
	if err != nil {
		return nil, err
	}
	return []iraster.Scene{s}, nil
}

func primitivesFor(name string) (iraster.Primitives, error) {
	switch strings.ToLower(name) {
	case "lut":
		if a := iraster.Accelerator(); a != nil && a.Name() == "lut" {
			return a, nil
		}
		return accel.New(), nil
	case "reference":
		return iraster.Reference, nil
	default:
		return nil, fmt.Errorf("unknown primitives %q (want lut or reference)", name)
	}
}

func loadConfig(o options) (iraster.Config, error) {
	cfg := iraster.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = iraster.LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.ascii {
		cfg.BinaryOutput = false
	}
	if o.normals {
		cfg.DisplayNormals = true
	}
	return cfg, cfg.Validate()
}

func run(args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level, err := parseLevel(o.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	iraster.SetLogger(logger)

	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	if o.saveConfig != "" {
		return iraster.SaveConfig(o.saveConfig, cfg)
	}

	prims, err := primitivesFor(o.accel)
	if err != nil {
		return err
	}
	cfg.Primitives = prims

	scenes, err := scenesFor(o.scene)
	if err != nil {
		return err
	}
	if o.compare != "" && len(scenes) != 1 {
		return errors.New("-compare needs a single -scene")
	}

	if o.spirvOut != "" {
		if err := writeSPIRV(o.spirvOut); err != nil {
			return err
		}
		logger.Info("spirv written", "path", o.spirvOut)
	}

	var g errgroup.Group
	for _, scene := range scenes {
		g.Go(func() error {
			return renderOne(cfg, scene, o, logger)
		})
	}
	return g.Wait()
}

func renderOne(cfg iraster.Config, scene iraster.Scene, o options, logger *slog.Logger) error {
	fb, err := iraster.RenderScene(cfg, scene, iraster.WithWorkers(o.workers))
	if err != nil {
		return fmt.Errorf("%s: %w", scene, err)
	}

	if o.compare != "" {
		return compareDump(fb, o.compare, logger)
	}

	name := o.sphereOut
	if scene == iraster.SceneTriangle {
		name = o.rasterOut
	}
	path := filepath.Join(o.dir, name)
	if err := imageio.Save(path, fb, imageio.Options{BinaryPPM: cfg.BinaryOutput}); err != nil {
		return fmt.Errorf("%s: %w", scene, err)
	}
	return nil
}

func compareDump(fb *iraster.Framebuffer, path string, logger *slog.Logger) error {
	dump, err := imageio.LoadRaw(path, fb.Width(), fb.Height())
	if err != nil {
		return err
	}
	n, x, y, err := imageio.Diff(fb, dump)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%s: %d pixels differ, first at (%d,%d): got %v, want %v",
			path, n, x, y, dump.Pixel(x, y), fb.Pixel(x, y))
	}
	logger.Info("dump matches", "path", path, "pixels", fb.Width()*fb.Height())
	return nil
}

func writeSPIRV(path string) error {
	code, err := shader.CompileSPIRV()
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create spirv file: %w", err)
	}
	if err := shader.WriteSPIRV(f, code); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
