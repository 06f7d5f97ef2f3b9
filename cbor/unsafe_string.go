package cbor

import "unsafe"

// unsafeString returns a string that aliases the same underlying memory as
// b, with no copy. Decoded text strings use this so that reading a CBOR
// text item costs nothing beyond bounds-checking (GetText does not validate
// UTF-8); the
// returned string is only valid as long as the caller does not mutate the
// buffer the Cursor was created from.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}
