package cbor

import "math"

const flagSharedItem flag = 1 << 2

// EnterArray begins iterating the array item at the cursor, returning a new
// Cursor scoped to the array's elements. The receiver is not advanced; call
// LeaveContainer with the returned Cursor once done to advance it.
func (c *Cursor) EnterArray() (*Cursor, error) {
	return c.enterContainer(MajorArray)
}

// EnterMap begins iterating the map item at the cursor the same way as
// EnterArray, except the returned Cursor's item count is doubled (each map
// pair is two items: key then value).
func (c *Cursor) EnterMap() (*Cursor, error) {
	return c.enterContainer(MajorMap)
}

func (c *Cursor) enterContainer(want MajorType) (*Cursor, error) {
	shared := c.packed && isReferenceForm(c.buf)

	src, tables, err := c.resolveHead()
	if err != nil {
		return nil, err
	}

	child := &Cursor{packed: c.packed, tables: tables}

	major, addInfo, err := peekMajor(src)
	if err != nil {
		return nil, err
	}
	if major != want {
		return nil, TypeError{Want: want, Got: major}
	}

	if addInfo == addInfoIndefinite {
		child.buf = src[1:]
		child.flags = flagContainer | flagIndefinite
	} else {
		count, width, err := decodeArgument(src, want, addInfoUint32)
		if err != nil {
			return nil, err
		}
		if want == MajorMap {
			if count > math.MaxUint32/2 {
				return nil, ErrOverflow
			}
			count *= 2
		}
		child.buf = src[width:]
		child.flags = flagContainer
		child.remaining = uint32(count)
	}

	if shared {
		child.flags |= flagSharedItem
	}
	return child, nil
}

// LeaveContainer advances the parent cursor past the container represented
// by child. child must be at the end of its items (AtEnd must return true)
// and must have been produced by an Enter call on the same cursor.
//
// If child carries the is-shared-item flag - it was produced by following a
// packed-CBOR reference - its bytes are not part of the parent's own stream,
// so the parent is instead advanced past the single reference item that
// produced it, using Skip.
func (c *Cursor) LeaveContainer(child *Cursor) error {
	if child.flags&flagContainer == 0 || !child.AtEnd() {
		return ErrInvalidType
	}
	if child.flags&flagSharedItem != 0 {
		return c.Skip()
	}
	c.buf = child.buf
	if c.flags&flagContainer != 0 {
		if c.remaining > 0 {
			c.remaining--
		}
	}
	return nil
}

// isReferenceForm reports whether buf begins with a packed-CBOR reference
// form (a simple-value reference or a tag-6 reference), as opposed to a
// table definition or an ordinary item.
func isReferenceForm(buf []byte) bool {
	major, addInfo, err := peekMajor(buf)
	if err != nil {
		return false
	}
	if major == MajorFloat && addInfo <= simpleRefMax {
		return true
	}
	if major == MajorTag {
		tagNum, _, err := decodeArgument(buf, MajorTag, addInfoUint64)
		if err == nil && tagNum == tagRefNumber {
			return true
		}
	}
	return false
}
