// Package accel provides table-driven implementations of the iraster
// primitives.
//
// Importing the package registers LUT as the active accelerator:
//
//	import _ "github.com/gogpu/iraster/accel"
//
// LUT trades per-pixel multiplication and division for table lookups,
// the same shape of work a fixed-function blend unit performs. Results
// are bit-identical to iraster.Reference.
package accel

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/iraster"
)

// lerpTable[t][d+255] holds t*d/255 truncated toward zero, for lane
// differences d in [-255, 255]. 256*511 entries, ~256KB.
var lerpTable [256][511]int16

// mulTable[a][b] holds int8(a)*int8(b). 256*256 entries, 128KB.
var mulTable [256][256]int16

var tablesOnce sync.Once

func buildTables() {
	for t := range 256 {
		for d := -255; d <= 255; d++ {
			//nolint:gosec // G115: |t*d/255| <= 255
			lerpTable[t][d+255] = int16(t * d / 255)
		}
	}
	for a := range 256 {
		for b := range 256 {
			//nolint:gosec // G115: products of two int8 fit int16
			mulTable[a][b] = int16(int(int8(a)) * int(int8(b)))
		}
	}
}

// LUT implements iraster.PrimitiveAccelerator with lookup tables.
type LUT struct {
	logger atomic.Pointer[slog.Logger]
}

// New returns a LUT with its tables built.
func New() *LUT {
	tablesOnce.Do(buildTables)
	return &LUT{}
}

// Name returns "lut".
func (l *LUT) Name() string { return "lut" }

// Init builds the tables if they are not built yet.
func (l *LUT) Init() error {
	tablesOnce.Do(buildTables)
	l.log().Debug("accel: lookup tables ready",
		"lerp_entries", len(lerpTable)*len(lerpTable[0]),
		"mul_entries", len(mulTable)*len(mulTable[0]))
	return nil
}

// Close is a no-op; the tables are shared and immutable.
func (l *LUT) Close() {}

// SetLogger sets the logger used for diagnostics.
func (l *LUT) SetLogger(lg *slog.Logger) {
	l.logger.Store(lg)
}

func (l *LUT) log() *slog.Logger {
	if lg := l.logger.Load(); lg != nil {
		return lg
	}
	return iraster.Logger()
}

// Lerp blends each lane of a toward b by t/255.
func (l *LUT) Lerp(a, b iraster.Vec4, t uint8) iraster.Vec4 {
	row := &lerpTable[t]
	lane := func(a, b uint8) uint8 {
		return uint8(int16(a) + row[int(b)-int(a)+255])
	}
	return iraster.U8(
		lane(a.X(), b.X()),
		lane(a.Y(), b.Y()),
		lane(a.Z(), b.Z()),
		lane(a.W(), b.W()),
	)
}

// Dot3 returns the signed dot product of the X, Y and Z lanes.
func (l *LUT) Dot3(a, b iraster.Vec4) int32 {
	return int32(mulTable[a.X()][b.X()]) +
		int32(mulTable[a.Y()][b.Y()]) +
		int32(mulTable[a.Z()][b.Z()])
}

func init() {
	if err := iraster.RegisterAccelerator(New()); err != nil {
		iraster.Logger().Warn("accel: registration failed", "err", err)
	}
}
