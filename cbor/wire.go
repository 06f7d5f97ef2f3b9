package cbor

import "encoding/binary"

// decodeArgument reads the additional-information argument of the item at
// buf[0], requiring it to belong to wantMajor, and returns the argument
// value widened to uint64, the number of bytes the whole prefix occupies
// (1 plus however many length bytes followed), and an error.
//
// maxWidth restricts how large an argument-length byte may be accepted
// (addInfoUint8..addInfoUint64); callers that only need a 32-bit result
// pass addInfoUint32 so that a declared 8-byte argument is rejected with
// ErrOverflow before ever being read, exactly as nanocbor's _get_uint64
// takes a max parameter for the same purpose.
func decodeArgument(buf []byte, wantMajor MajorType, maxWidth uint8) (value uint64, width int, err error) {
	if len(buf) == 0 {
		return 0, 0, ErrEndOfInput
	}
	major, addInfo := splitByte(buf[0])
	if major != wantMajor {
		return 0, 0, TypeError{Want: wantMajor, Got: major}
	}
	if addInfo <= addInfoDirectMax {
		return uint64(addInfo), 1, nil
	}
	var n int
	switch addInfo {
	case addInfoUint8:
		n = 1
	case addInfoUint16:
		n = 2
	case addInfoUint32:
		n = 4
	case addInfoUint64:
		n = 8
	default:
		// The indefinite-length marker (31), or one of the reserved
		// additional-information values (28..30), presented where a
		// definite argument was required.
		return 0, 0, ErrInvalidType
	}
	if addInfo > maxWidth {
		return 0, 0, ErrOverflow
	}
	if len(buf) < 1+n {
		return 0, 0, ErrEndOfInput
	}
	var wide [8]byte
	copy(wide[8-n:], buf[1:1+n])
	return binary.BigEndian.Uint64(wide[:]), 1 + n, nil
}

// peekMajor reports the major type of buf[0], or an error if buf is empty.
// Unlike decodeArgument it does not require a particular major type.
func peekMajor(buf []byte) (MajorType, uint8, error) {
	if len(buf) == 0 {
		return 0, 0, ErrEndOfInput
	}
	major, addInfo := splitByte(buf[0])
	return major, addInfo, nil
}

func isIndefinite(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	_, addInfo := splitByte(buf[0])
	return addInfo == addInfoIndefinite
}
