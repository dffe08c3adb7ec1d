package iraster

import "fmt"

// Vec4 is four 8-bit lanes packed into one 32-bit word, X in the most
// significant byte:
//
//	bits [31:24]=X [23:16]=Y [15:8]=Z [7:0]=W
//
// The same word is read two ways. Colors and screen positions use the
// unsigned reading (X, Y, Z, W), each lane 0..255. Directions and normals
// use the signed reading (SX, SY, SZ, SW), each lane a two's-complement
// value in [-128, 127]. For directions W is unused and kept at zero; the
// 127 scale stands for 1.0.
//
// This layout is the word exchanged with accelerated primitives and must
// not change.
type Vec4 uint32

// U8 packs four unsigned lanes.
func U8(x, y, z, w uint8) Vec4 {
	return Vec4(uint32(x)<<24 | uint32(y)<<16 | uint32(z)<<8 | uint32(w))
}

// I8 packs four signed lanes. Each value is masked to 8 bits before
// packing so a negative value cannot spill into its neighbours. Values
// outside [-128, 127] wrap; callers clamp first when that matters.
func I8(x, y, z, w int32) Vec4 {
	return Vec4(uint32(x&0xFF)<<24 | uint32(y&0xFF)<<16 | uint32(z&0xFF)<<8 | uint32(w&0xFF))
}

// X returns the unsigned X lane.
func (v Vec4) X() uint8 { return uint8(v >> 24) }

// Y returns the unsigned Y lane.
func (v Vec4) Y() uint8 { return uint8(v >> 16) }

// Z returns the unsigned Z lane.
func (v Vec4) Z() uint8 { return uint8(v >> 8) }

// W returns the unsigned W lane.
func (v Vec4) W() uint8 { return uint8(v) }

// SX returns the signed X lane.
func (v Vec4) SX() int8 { return int8(v.X()) }

// SY returns the signed Y lane.
func (v Vec4) SY() int8 { return int8(v.Y()) }

// SZ returns the signed Z lane.
func (v Vec4) SZ() int8 { return int8(v.Z()) }

// SW returns the signed W lane.
func (v Vec4) SW() int8 { return int8(v.W()) }

// Lanes returns the unsigned lanes in X, Y, Z, W order.
func (v Vec4) Lanes() [4]uint8 {
	return [4]uint8{v.X(), v.Y(), v.Z(), v.W()}
}

// String formats the unsigned reading, e.g. "(200,50,50,0)".
func (v Vec4) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", v.X(), v.Y(), v.Z(), v.W())
}

// Black is the all-zero color.
const Black Vec4 = 0
