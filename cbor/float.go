package cbor

import (
	"math"

	"github.com/x448/float16"
)

// GetFloat32 reads a half or single precision float, widening a half to
// single. A double-precision encoding is rejected with ErrInvalidType; use
// GetFloat64 for an item that might be any of the three widths.
func (c *Cursor) GetFloat32() (float32, error) {
	resolved, err := c.decodeResolved()
	if err != nil {
		return 0, err
	}
	major, addInfo, err := peekMajor(resolved)
	if err != nil {
		return 0, err
	}
	if major != MajorFloat {
		return 0, TypeError{Want: MajorFloat, Got: major}
	}

	var value float32
	switch addInfo {
	case simpleFloat16:
		bits, _, err := decodeArgument(resolved, MajorFloat, addInfoUint64)
		if err != nil {
			return 0, err
		}
		value = float16.Frombits(uint16(bits)).Float32()
	case simpleFloat32:
		bits, _, err := decodeArgument(resolved, MajorFloat, addInfoUint64)
		if err != nil {
			return 0, err
		}
		value = math.Float32frombits(uint32(bits))
	default:
		return 0, ErrInvalidType
	}
	if err := c.advancePastItem(); err != nil {
		return 0, err
	}
	return value, nil
}

// GetFloat64 reads a half, single, or double precision float, widening a
// half or single to double.
func (c *Cursor) GetFloat64() (float64, error) {
	resolved, err := c.decodeResolved()
	if err != nil {
		return 0, err
	}
	major, addInfo, err := peekMajor(resolved)
	if err != nil {
		return 0, err
	}
	if major != MajorFloat {
		return 0, TypeError{Want: MajorFloat, Got: major}
	}

	var value float64
	switch addInfo {
	case simpleFloat16:
		bits, _, err := decodeArgument(resolved, MajorFloat, addInfoUint64)
		if err != nil {
			return 0, err
		}
		value = float64(float16.Frombits(uint16(bits)).Float32())
	case simpleFloat32:
		bits, _, err := decodeArgument(resolved, MajorFloat, addInfoUint64)
		if err != nil {
			return 0, err
		}
		value = float64(math.Float32frombits(uint32(bits)))
	case simpleFloat64:
		bits, _, err := decodeArgument(resolved, MajorFloat, addInfoUint64)
		if err != nil {
			return 0, err
		}
		value = math.Float64frombits(bits)
	default:
		return 0, ErrInvalidType
	}
	if err := c.advancePastItem(); err != nil {
		return 0, err
	}
	return value, nil
}
