// Package cbor is a minimalistic streaming codec for Concise Binary Object
// Representation (RFC 8949) aimed at constrained environments. Callers drive
// the decoder and encoder item-by-item over a caller-owned byte region; the
// package performs no dynamic allocation beyond what Go's escape analysis
// forces on it, and keeps no state beyond what a Cursor or Encoder carries.
//
// The decoder additionally understands packed CBOR (draft-ietf-cbor-packed):
// tables of shared items and references into them, opt-in per Cursor and
// bounded by a fixed recursion depth and a fixed number of active tables.
package cbor

// MajorType identifies one of the eight CBOR major types.
type MajorType uint8

const (
	MajorUint  MajorType = 0 // unsigned integer
	MajorNint  MajorType = 1 // negative integer
	MajorBytes MajorType = 2 // byte string
	MajorText  MajorType = 3 // text string (UTF-8)
	MajorArray MajorType = 4 // array
	MajorMap   MajorType = 5 // map
	MajorTag   MajorType = 6 // semantic tag
	MajorFloat MajorType = 7 // float / simple / break
)

func (m MajorType) String() string {
	switch m {
	case MajorUint:
		return "uint"
	case MajorNint:
		return "nint"
	case MajorBytes:
		return "bytes"
	case MajorText:
		return "text"
	case MajorArray:
		return "array"
	case MajorMap:
		return "map"
	case MajorTag:
		return "tag"
	case MajorFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Additional-information values (low 5 bits of the initial byte).
const (
	addInfoDirectMax  = 23 // 0..23 encode the argument inline
	addInfoUint8      = 24
	addInfoUint16     = 25
	addInfoUint32     = 26
	addInfoUint64     = 27
	addInfoIndefinite = 31
)

// Simple values and the break marker, all under major type 7.
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31
)

// Named tag numbers. Decimal fraction and packed table have dedicated decode
// support; the self-describe tag, like every other tag, passes through as a
// plain 32-bit tag number ahead of the tagged item.
const (
	tagDecimalFraction = 4
	tagSelfDescribe    = 55799
	tagPackedTable     = 113
)

// Compile-time configuration constants (spec §6). These mirror the
// build-time knobs of the original C library; here they are plain Go
// constants rather than preprocessor defines, but serve the same role of
// bounding worst-case stack usage on untrusted input.
const (
	// DefaultRecursionLimit bounds the depth of Skip's descent into nested
	// containers/tags and of the packed-CBOR engine's reference chasing.
	DefaultRecursionLimit = 16

	// MaxActiveTables bounds how many packed-CBOR tables may be active on
	// a single cursor's table stack at once.
	MaxActiveTables = 4
)

func makeByte(major MajorType, addInfo uint8) byte {
	return byte(uint8(major)<<5 | addInfo)
}

func splitByte(b byte) (MajorType, uint8) {
	return MajorType(b >> 5), b & 0x1f
}
