package iraster

import (
	"errors"
	"sync"
)

// Primitives is the per-pixel arithmetic the shaders are built on.
//
// Both methods are the substitution point for accelerated instructions. An
// implementation must be a pure function of its arguments, with no effect
// other than the returned value, and must match the integer reference
// bit for bit over the whole input domain. The packed word layout is the
// one documented on Vec4.
type Primitives interface {
	// Name returns the implementation name (e.g. "reference", "lut").
	Name() string

	// Lerp blends each unsigned lane of a toward b by t/255.
	Lerp(a, b Vec4, t uint8) Vec4

	// Dot3 returns the signed dot product of the X, Y and Z lanes.
	// W is ignored.
	Dot3(a, b Vec4) int32
}

// Lerp is the integer reference blend. For every lane c it returns
//
//	a.c + t*(b.c-a.c)/255
//
// computed in 32-bit signed arithmetic with truncating division, so
// Lerp(a, b, 0) == a and Lerp(a, b, 255) == b exactly. The result of every
// lane lies between a.c and b.c and always fits in 8 bits.
func Lerp(a, b Vec4, t uint8) Vec4 {
	return U8(
		lerpLane(a.X(), b.X(), t),
		lerpLane(a.Y(), b.Y(), t),
		lerpLane(a.Z(), b.Z(), t),
		lerpLane(a.W(), b.W(), t),
	)
}

func lerpLane(a, b, t uint8) uint8 {
	ai := int32(a)
	return uint8(ai + int32(t)*(int32(b)-ai)/255)
}

// Dot3 is the integer reference dot product over the signed X, Y, Z lanes.
func Dot3(a, b Vec4) int32 {
	return int32(a.SX())*int32(b.SX()) +
		int32(a.SY())*int32(b.SY()) +
		int32(a.SZ())*int32(b.SZ())
}

type referencePrimitives struct{}

func (referencePrimitives) Name() string                 { return "reference" }
func (referencePrimitives) Lerp(a, b Vec4, t uint8) Vec4 { return Lerp(a, b, t) }
func (referencePrimitives) Dot3(a, b Vec4) int32         { return Dot3(a, b) }

// Reference is the plain integer implementation of Primitives.
// It is used whenever no accelerator is registered.
var Reference Primitives = referencePrimitives{}

// PrimitiveAccelerator is an optional replacement for Reference.
//
// Implementations are provided by accelerator packages and enabled with a
// blank import:
//
//	import _ "github.com/gogpu/iraster/accel" // table-driven primitives
type PrimitiveAccelerator interface {
	Primitives

	// Init prepares the accelerator. Called once during registration.
	Init() error

	// Close releases resources held by the accelerator.
	Close()
}

var (
	accelMu sync.RWMutex
	accel   PrimitiveAccelerator
)

// RegisterAccelerator makes a the active primitive implementation.
//
// Only one accelerator can be registered. Subsequent calls replace the
// previous one, which is closed. If a.Init fails the accelerator is not
// registered and the error is returned.
func RegisterAccelerator(a PrimitiveAccelerator) error {
	if a == nil {
		return errors.New("iraster: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()

	propagateLogger(a, Logger())
	if old != nil {
		Logger().Warn("replacing primitive accelerator", "old", old.Name(), "new", a.Name())
		old.Close()
	}
	return nil
}

// UnregisterAccelerator removes and closes the registered accelerator, if
// any. Rendering falls back to Reference.
func UnregisterAccelerator() {
	accelMu.Lock()
	old := accel
	accel = nil
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
}

// Accelerator returns the registered accelerator, or nil if none.
func Accelerator() PrimitiveAccelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// DefaultPrimitives returns the registered accelerator, or Reference.
func DefaultPrimitives() Primitives {
	if a := Accelerator(); a != nil {
		return a
	}
	return Reference
}
