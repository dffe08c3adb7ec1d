// Package iraster renders simple shaded scenes into a packed-word
// framebuffer using integer arithmetic only.
//
// # Overview
//
// iraster targets processors without floating-point hardware. Colors and
// directions are four 8-bit lanes packed into one 32-bit word (Vec4), unit
// vectors use a 127 scale, and square roots are integer Newton iterations.
// Two scenes are provided:
//
//   - SceneSphere: an orthographic sphere with per-pixel Lambert lighting
//     and an ambient floor (SphereShader)
//   - SceneTriangle: a triangle filled with vertex colors blended by
//     barycentric weights (TriangleRasterizer)
//
// # Quick Start
//
//	cfg := iraster.DefaultConfig()
//	fb, err := iraster.RenderScene(cfg, iraster.SceneSphere)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	f, err := os.Create("sphere.ppm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//	if err := ppm.Encode(f, fb, cfg.BinaryOutput); err != nil {
//	    log.Fatal(err)
//	}
//
// # Primitives
//
// Every per-pixel blend and dot product goes through the Primitives
// interface. Reference is the plain integer implementation; an accelerator
// registered with RegisterAccelerator (for example by importing
// github.com/gogpu/iraster/accel) replaces it. Accelerated implementations
// must match Reference bit for bit, so a render never depends on which one
// ran.
//
// # Coordinate System
//
// Framebuffer origin (0,0) is the top-left pixel, X increases right and Y
// increases down. The sphere is centered at (Width/2, Height/2); the
// triangle uses framebuffer coordinates directly.
//
// # Concurrency
//
// Pixels are independent. Render can split the frame into row bands and
// shade them on a worker pool (WithWorkers); the output is identical to a
// serial render.
package iraster
