package cbor

import "math"

// decodeResolved returns the byte slice to decode the next item from: c.buf
// itself when packed support is off or the item is not a packed form, or
// the packed engine's resolved target otherwise. It never mutates c.
func (c *Cursor) decodeResolved() ([]byte, error) {
	if !c.packed {
		return c.buf, nil
	}
	resolved, _, err := c.resolvePacked(c.buf, DefaultRecursionLimit)
	return resolved, err
}

// advancePastItem advances c past the single item at c.buf, computed with
// the packed-agnostic rawSkip - the literal span of whatever reference or
// ordinary item sits at c.buf, regardless of what it resolved to for
// decoding purposes.
func (c *Cursor) advancePastItem() error {
	n, err := rawSkip(c.buf, DefaultRecursionLimit)
	if err != nil {
		return err
	}
	c.advance(n)
	return nil
}

// GetUint64 reads an unsigned integer, accepting major type 0 only.
func (c *Cursor) GetUint64() (uint64, error) { return c.getUint(64) }

// GetUint32 reads an unsigned integer truncated to 32 bits.
func (c *Cursor) GetUint32() (uint32, error) {
	v, err := c.getUint(32)
	return uint32(v), err
}

// GetUint16 reads an unsigned integer truncated to 16 bits.
func (c *Cursor) GetUint16() (uint16, error) {
	v, err := c.getUint(16)
	return uint16(v), err
}

// GetUint8 reads an unsigned integer truncated to 8 bits.
func (c *Cursor) GetUint8() (uint8, error) {
	v, err := c.getUint(8)
	return uint8(v), err
}

func (c *Cursor) getUint(bits int) (uint64, error) {
	resolved, err := c.decodeResolved()
	if err != nil {
		return 0, err
	}
	v, _, err := decodeArgument(resolved, MajorUint, addInfoUint64)
	if err != nil {
		return 0, err
	}
	var max uint64
	switch bits {
	case 8:
		max = math.MaxUint8
	case 16:
		max = math.MaxUint16
	case 32:
		max = math.MaxUint32
	default:
		max = math.MaxUint64
	}
	if v > max {
		return 0, OverflowError{Value: int64(v), Bits: bits}
	}
	if err := c.advancePastItem(); err != nil {
		return 0, err
	}
	return v, nil
}

// GetInt64 reads a signed integer from major type 0 or 1. Unlike the
// 8/16/32-bit variants it accepts the full int64 range, including the
// most-negative value.
func (c *Cursor) GetInt64() (int64, error) { return c.getInt(64) }

// GetInt32 reads a signed integer truncated to 32 bits. The most-negative
// representable value (math.MinInt32) is rejected with OverflowError so that
// the accepted range is symmetric around zero.
func (c *Cursor) GetInt32() (int32, error) {
	v, err := c.getInt(32)
	return int32(v), err
}

// GetInt16 reads a signed integer truncated to 16 bits, with the same
// most-negative-value restriction as GetInt32.
func (c *Cursor) GetInt16() (int16, error) {
	v, err := c.getInt(16)
	return int16(v), err
}

// GetInt8 reads a signed integer truncated to 8 bits, with the same
// most-negative-value restriction as GetInt32.
func (c *Cursor) GetInt8() (int8, error) {
	v, err := c.getInt(8)
	return int8(v), err
}

func (c *Cursor) getInt(bits int) (int64, error) {
	resolved, err := c.decodeResolved()
	if err != nil {
		return 0, err
	}
	var posBound, negBound uint64
	switch bits {
	case 8:
		posBound = math.MaxInt8
	case 16:
		posBound = math.MaxInt16
	case 32:
		posBound = math.MaxInt32
	default:
		posBound = math.MaxInt64
	}
	if bits == 64 {
		negBound = math.MaxInt64
	} else {
		negBound = posBound - 1 // exclude the most-negative value, for symmetry
	}

	major, _, err := peekMajor(resolved)
	if err != nil {
		return 0, err
	}
	var value int64
	switch major {
	case MajorUint:
		v, _, err := decodeArgument(resolved, MajorUint, addInfoUint64)
		if err != nil {
			return 0, err
		}
		if v > posBound {
			return 0, OverflowError{Value: int64(v), Bits: bits}
		}
		value = int64(v)
	case MajorNint:
		v, _, err := decodeArgument(resolved, MajorNint, addInfoUint64)
		if err != nil {
			return 0, err
		}
		if v > negBound {
			return 0, OverflowError{Value: -1 - int64(v), Bits: bits}
		}
		value = -1 - int64(v)
	default:
		return 0, TypeError{Want: MajorUint, Got: major}
	}
	if err := c.advancePastItem(); err != nil {
		return 0, err
	}
	return value, nil
}

// GetBytes reads a definite-length byte string, returning a slice into the
// Cursor's own input (or a packed table's input) with no copy.
func (c *Cursor) GetBytes() ([]byte, error) {
	return c.getString(MajorBytes)
}

// GetText reads a definite-length text string, returning a zero-copy string
// aliasing the Cursor's input. It does not validate UTF-8; callers that
// need validity checking can pass the result through ValidUTF8.
func (c *Cursor) GetText() (string, error) {
	b, err := c.getString(MajorText)
	if err != nil {
		return "", err
	}
	return unsafeString(b), nil
}

func (c *Cursor) getString(major MajorType) ([]byte, error) {
	resolved, err := c.decodeResolved()
	if err != nil {
		return nil, err
	}
	length, width, err := decodeArgument(resolved, major, addInfoUint64)
	if err != nil {
		return nil, err
	}
	if length > uint64(len(resolved)-width) {
		return nil, ErrEndOfInput
	}
	payload := resolved[width : width+int(length)]
	if err := c.advancePastItem(); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetTag reads a tag number (major type 6) and positions the cursor at the
// tagged item; it does not consume the tagged item itself. Tag numbers that
// do not fit in 32 bits fail with ErrOverflow.
//
// If packed-CBOR support is enabled and the tag is itself a shared-item
// reference or table definition, the cursor is repositioned onto whatever
// the reference resolved to - which may be a wholly separate table buffer -
// so that the caller's next read proceeds against the resolved content.
func (c *Cursor) GetTag() (uint32, error) {
	resolved, scope, err := c.resolveHead()
	if err != nil {
		return 0, err
	}
	v, width, err := decodeArgument(resolved, MajorTag, addInfoUint64)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, ErrOverflow
	}
	c.buf = resolved[width:]
	c.tables = scope
	if c.remaining > 0 {
		c.remaining--
	}
	return uint32(v), nil
}

// resolveHead is decodeResolved's counterpart for operations that continue
// reading from the resolved position afterwards (GetTag, EnterArray,
// EnterMap, GetDecimalFraction): it also returns the table-stack scope that
// should apply to any further resolution at that position.
func (c *Cursor) resolveHead() ([]byte, tableStack, error) {
	if !c.packed {
		return c.buf, c.tables, nil
	}
	return c.resolvePacked(c.buf, DefaultRecursionLimit)
}

// GetNull consumes a null item (major 7, argument 22).
func (c *Cursor) GetNull() error { return c.getNamedSimple(simpleNull) }

// GetUndefined consumes an undefined item (major 7, argument 23).
func (c *Cursor) GetUndefined() error { return c.getNamedSimple(simpleUndefined) }

func (c *Cursor) getNamedSimple(want uint8) error {
	resolved, err := c.decodeResolved()
	if err != nil {
		return err
	}
	major, addInfo, err := peekMajor(resolved)
	if err != nil {
		return err
	}
	if major != MajorFloat || addInfo != want {
		return ErrInvalidType
	}
	return c.advancePastItem()
}

// GetBool reads a boolean (major 7, argument 20 or 21).
func (c *Cursor) GetBool() (bool, error) {
	resolved, err := c.decodeResolved()
	if err != nil {
		return false, err
	}
	major, addInfo, err := peekMajor(resolved)
	if err != nil {
		return false, err
	}
	if major != MajorFloat || (addInfo != simpleFalse && addInfo != simpleTrue) {
		return false, ErrInvalidType
	}
	if err := c.advancePastItem(); err != nil {
		return false, err
	}
	return addInfo == simpleTrue, nil
}

// GetSimple reads a generic simple value (major 7), accepting both the
// inline 0..23 form and the one-byte extended form (32..255). The reserved
// additional-information values 24 with an out-of-range byte, 25..30, and
// 31 (break) are rejected with ErrInvalidType.
func (c *Cursor) GetSimple() (uint8, error) {
	resolved, err := c.decodeResolved()
	if err != nil {
		return 0, err
	}
	major, addInfo, err := peekMajor(resolved)
	if err != nil {
		return 0, err
	}
	if major != MajorFloat {
		return 0, ErrInvalidType
	}
	var value uint8
	switch {
	case addInfo <= addInfoDirectMax:
		value = addInfo
	case addInfo == addInfoUint8:
		if len(resolved) < 2 {
			return 0, ErrEndOfInput
		}
		if resolved[1] < 32 {
			return 0, ErrInvalidType
		}
		value = resolved[1]
	default:
		return 0, ErrInvalidType
	}
	if err := c.advancePastItem(); err != nil {
		return 0, err
	}
	return value, nil
}

// GetDecimalFraction reads a decimal-fraction item (tag 4 wrapping a
// two-element array [exponent, mantissa]) and returns the two signed
// 32-bit members. Errors from decoding either member propagate unchanged.
func (c *Cursor) GetDecimalFraction() (exponent, mantissa int32, err error) {
	resolved, scope, err := c.resolveHead()
	if err != nil {
		return 0, 0, err
	}
	tagNum, width, err := decodeArgument(resolved, MajorTag, addInfoUint64)
	if err != nil {
		return 0, 0, err
	}
	if tagNum != tagDecimalFraction {
		return 0, 0, ErrInvalidType
	}

	// Walk the content with a cursor continuing at the tag's content,
	// inheriting whatever table scope resolution landed it in.
	inner := &Cursor{buf: resolved[width:], packed: c.packed, tables: scope}
	arr, err := inner.EnterArray()
	if err != nil {
		return 0, 0, err
	}
	if exponent, err = arr.GetInt32(); err != nil {
		return 0, 0, err
	}
	if mantissa, err = arr.GetInt32(); err != nil {
		return 0, 0, err
	}
	if !arr.AtEnd() {
		return 0, 0, ErrInvalidType
	}
	if err := c.advancePastItem(); err != nil {
		return 0, 0, err
	}
	return exponent, mantissa, nil
}
