package cbor

import (
	"encoding/binary"
	"math"
)

// Encoder formats CBOR items into a caller-supplied buffer. It never
// allocates and never grows the destination: Len always reports the total
// number of bytes that would be written, even once the buffer's capacity
// is exhausted, so that a caller can encode once against a nil or
// zero-length buffer purely to discover the required size, then encode
// again into a buffer of that size.
type Encoder struct {
	buf []byte // destination; fixed capacity, never reallocated
	len int    // total bytes formatted so far, including any that didn't fit
}

// NewEncoder creates an Encoder that writes into buf. buf may be nil or
// shorter than the eventual encoding; see Encoder's doc comment.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Len returns the total number of bytes formatted so far.
func (e *Encoder) Len() int { return e.len }

// fits accounts for n additional bytes and reports whether they fit in the
// remaining destination capacity, mirroring the C library's _fits: the
// length counter always advances, the copy only happens when there is room.
func (e *Encoder) fits(n int) bool {
	e.len += n
	return e.len <= len(e.buf)
}

func (e *Encoder) putByte(b byte) {
	if e.fits(1) {
		e.buf[e.len-1] = b
	}
}

func (e *Encoder) putBytes(b []byte) {
	if e.fits(len(b)) {
		copy(e.buf[e.len-len(b):], b)
	}
}

// putHeader writes major/argument in the shortest form that represents
// num, exactly as nanocbor's encoder does: 0..23 inline, then the smallest
// of 1/2/4/8 trailing bytes that holds num.
func (e *Encoder) putHeader(major MajorType, num uint64) {
	switch {
	case num <= addInfoDirectMax:
		e.putByte(makeByte(major, uint8(num)))
	case num <= math.MaxUint8:
		e.putByte(makeByte(major, addInfoUint8))
		e.putByte(uint8(num))
	case num <= math.MaxUint16:
		e.putByte(makeByte(major, addInfoUint16))
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(num))
		e.putBytes(tmp[:])
	case num <= math.MaxUint32:
		e.putByte(makeByte(major, addInfoUint32))
		var tmp [4]byte
		binary.BigEndian.PutUint32(tmp[:], uint32(num))
		e.putBytes(tmp[:])
	default:
		e.putByte(makeByte(major, addInfoUint64))
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], num)
		e.putBytes(tmp[:])
	}
}

// appendArgument is putHeader's allocation-based counterpart, used where a
// plain []byte is being built up rather than written through an Encoder
// (the packed engine's external-table synthesis).
func appendArgument(dst []byte, major MajorType, num uint64) []byte {
	var tmp [9]byte
	e := Encoder{buf: tmp[:]}
	e.putHeader(major, num)
	return append(dst, tmp[:e.Len()]...)
}

// PutUint writes an unsigned integer (major type 0).
func (e *Encoder) PutUint(num uint64) { e.putHeader(MajorUint, num) }

// PutInt writes a signed integer, choosing major type 0 for non-negative
// values and major type 1 (encoded as -1-num) for negative ones.
func (e *Encoder) PutInt(num int64) {
	if num < 0 {
		e.putHeader(MajorNint, uint64(-1-num))
		return
	}
	e.putHeader(MajorUint, uint64(num))
}

// PutTag writes a tag header; the tagged item itself must be written by a
// following call.
func (e *Encoder) PutTag(num uint64) { e.putHeader(MajorTag, num) }

// PutBytesHeader writes a byte-string header for a payload of the given
// length; the caller writes the payload separately with PutRaw.
func (e *Encoder) PutBytesHeader(length int) { e.putHeader(MajorBytes, uint64(length)) }

// PutTextHeader writes a text-string header for a payload of the given
// length; the caller writes the payload separately with PutRaw.
func (e *Encoder) PutTextHeader(length int) { e.putHeader(MajorText, uint64(length)) }

// PutBytes writes a complete byte string (header and payload).
func (e *Encoder) PutBytes(b []byte) {
	e.PutBytesHeader(len(b))
	e.putBytes(b)
}

// PutText writes a complete text string (header and payload).
func (e *Encoder) PutText(s string) {
	e.PutTextHeader(len(s))
	e.putBytes([]byte(s))
}

// PutRaw copies b directly into the destination, advancing the length
// counter accordingly. It is used to write a string payload after its
// header, or to splice in an already-encoded sub-item.
func (e *Encoder) PutRaw(b []byte) { e.putBytes(b) }

// PutArrayHeader writes a definite-length array header for length items.
func (e *Encoder) PutArrayHeader(length int) { e.putHeader(MajorArray, uint64(length)) }

// PutMapHeader writes a definite-length map header for length pairs.
func (e *Encoder) PutMapHeader(length int) { e.putHeader(MajorMap, uint64(length)) }

// PutArrayIndefinite writes an indefinite-length array header; terminate
// with PutBreak.
func (e *Encoder) PutArrayIndefinite() { e.putByte(makeByte(MajorArray, addInfoIndefinite)) }

// PutMapIndefinite writes an indefinite-length map header; terminate with
// PutBreak.
func (e *Encoder) PutMapIndefinite() { e.putByte(makeByte(MajorMap, addInfoIndefinite)) }

// PutBreak writes the break marker that ends an indefinite-length array,
// map, byte string, or text string.
func (e *Encoder) PutBreak() { e.putByte(makeByte(MajorFloat, addInfoIndefinite)) }

// PutNull writes the null simple value.
func (e *Encoder) PutNull() { e.putByte(makeByte(MajorFloat, simpleNull)) }

// PutUndefined writes the undefined simple value.
func (e *Encoder) PutUndefined() { e.putByte(makeByte(MajorFloat, simpleUndefined)) }

// PutBool writes a boolean.
func (e *Encoder) PutBool(v bool) {
	if v {
		e.putByte(makeByte(MajorFloat, simpleTrue))
		return
	}
	e.putByte(makeByte(MajorFloat, simpleFalse))
}

// PutSimple writes a generic simple value. Values 0..23 use the inline
// form; values 32..255 use the one-byte extended form. Values 24..31 are
// reserved and not accepted.
func (e *Encoder) PutSimple(v uint8) error {
	switch {
	case v <= addInfoDirectMax:
		e.putByte(makeByte(MajorFloat, v))
	case v >= 32:
		e.putByte(makeByte(MajorFloat, addInfoUint8))
		e.putByte(v)
	default:
		return ErrInvalidType
	}
	return nil
}

// PutFloat32 writes a single-precision float. Encoding to a half-precision
// width is intentionally not attempted (the reference implementation this
// library follows carries that path dead in its source); every float32 is
// written at full width.
func (e *Encoder) PutFloat32(v float32) {
	e.putByte(makeByte(MajorFloat, simpleFloat32))
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], math.Float32bits(v))
	e.putBytes(tmp[:])
}

// PutFloat64 writes a double-precision float at full width.
func (e *Encoder) PutFloat64(v float64) {
	e.putByte(makeByte(MajorFloat, simpleFloat64))
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], math.Float64bits(v))
	e.putBytes(tmp[:])
}

// PutDecimalFraction writes a decimal-fraction item (tag 4 wrapping
// [exponent, mantissa]), the encoder-side symmetric counterpart of
// Cursor.GetDecimalFraction.
func (e *Encoder) PutDecimalFraction(exponent, mantissa int32) {
	e.PutTag(tagDecimalFraction)
	e.PutArrayHeader(2)
	e.PutInt(int64(exponent))
	e.PutInt(int64(mantissa))
}
