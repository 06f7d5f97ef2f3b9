package cbor

// peekType returns the major type of the item starting at b[0] without
// consuming anything. It does not resolve packed-CBOR references; callers
// that need packed-aware peeking go through Cursor.Type instead.
func peekType(b []byte) (MajorType, error) {
	if len(b) == 0 {
		return 0, ErrEndOfInput
	}
	major, _ := splitByte(b[0])
	return major, nil
}

// isBreak reports whether b[0] is the break byte (0xFF) that terminates an
// indefinite-length array, map, byte string, or text string.
func isBreak(b []byte) bool {
	return len(b) > 0 && b[0] == 0xff
}
