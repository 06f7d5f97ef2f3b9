package cbor

// Skip consumes exactly one CBOR item, recursively, without ever consulting
// the packed-CBOR engine: a packed reference or table definition is skipped
// as whatever it literally is on the wire (a simple value, or a tag and its
// content), not as whatever it would resolve to. This is deliberate - it is
// what lets the packed engine itself use Skip to step over table elements
// and to advance the host cursor past a resolved reference without ever
// walking into the table the reference points at.
func (c *Cursor) Skip() error {
	n, err := rawSkip(c.buf, DefaultRecursionLimit)
	if err != nil {
		return err
	}
	c.advance(n)
	return nil
}

// rawSkip computes the byte length of the single CBOR item at the head of
// buf, recursing into containers and tagged items up to limit levels deep.
// It performs no packed-CBOR resolution and allocates nothing.
func rawSkip(buf []byte, limit int) (int, error) {
	if limit <= 0 {
		return 0, ErrRecursion
	}
	if len(buf) == 0 {
		return 0, ErrEndOfInput
	}
	major, addInfo := splitByte(buf[0])

	switch major {
	case MajorUint, MajorNint, MajorFloat:
		return rawSkipSimple(buf)

	case MajorBytes, MajorText:
		if addInfo == addInfoIndefinite {
			return rawSkipIndefiniteString(buf)
		}
		length, width, err := decodeArgument(buf, major, addInfoUint64)
		if err != nil {
			return 0, err
		}
		total := width + int(length)
		if total > len(buf) {
			return 0, ErrEndOfInput
		}
		return total, nil

	case MajorArray, MajorMap:
		return rawSkipContainer(buf, major, limit)

	case MajorTag:
		_, width, err := decodeArgument(buf, MajorTag, addInfoUint64)
		if err != nil {
			return 0, err
		}
		if width >= len(buf) {
			return 0, ErrEndOfInput
		}
		contentLen, err := rawSkip(buf[width:], limit-1)
		if err != nil {
			return 0, err
		}
		return width + contentLen, nil
	}
	return 0, ErrInvalidType
}

// rawSkipSimple consumes an item whose entire content is its argument: an
// unsigned or negative integer, or a float/simple/break value under major 7.
func rawSkipSimple(buf []byte) (int, error) {
	major, _ := splitByte(buf[0])
	_, width, err := decodeArgument(buf, major, addInfoUint64)
	if err != nil {
		return 0, err
	}
	return width, nil
}

func rawSkipIndefiniteString(buf []byte) (int, error) {
	major, _ := splitByte(buf[0])
	pos := 1
	for {
		if pos >= len(buf) {
			return 0, ErrEndOfInput
		}
		if buf[pos] == 0xff {
			return pos + 1, nil
		}
		chunkMajor, chunkAddInfo := splitByte(buf[pos])
		if chunkMajor != major || chunkAddInfo == addInfoIndefinite {
			return 0, ErrInvalidType
		}
		length, width, err := decodeArgument(buf[pos:], major, addInfoUint64)
		if err != nil {
			return 0, err
		}
		pos += width + int(length)
	}
}

func rawSkipContainer(buf []byte, major MajorType, limit int) (int, error) {
	if isIndefinite(buf) {
		pos := 1
		for {
			if pos >= len(buf) {
				return 0, ErrEndOfInput
			}
			if buf[pos] == 0xff {
				return pos + 1, nil
			}
			n, err := rawSkip(buf[pos:], limit-1)
			if err != nil {
				return 0, err
			}
			pos += n
		}
	}

	count, width, err := decodeArgument(buf, major, addInfoUint64)
	if err != nil {
		return 0, err
	}
	if major == MajorMap {
		if count > (1<<63)/2 {
			return 0, ErrOverflow
		}
		count *= 2
	}
	pos := width
	for i := uint64(0); i < count; i++ {
		if pos > len(buf) {
			return 0, ErrEndOfInput
		}
		n, err := rawSkip(buf[pos:], limit-1)
		if err != nil {
			return 0, err
		}
		pos += n
	}
	return pos, nil
}
