package cbor

import "unicode/utf8"

// isUTF8Valid validates UTF-8 for a byte slice. It can be overridden by
// architecture-specific, SIMD-accelerated implementations via build tags.
var isUTF8Valid = func(b []byte) bool { return utf8.Valid(b) }

// ValidUTF8 reports whether b holds well-formed UTF-8. GetText itself does
// not validate its result - zero-copy decoding of a text string is valid
// regardless of its content - so callers that must reject malformed text
// (the decoder's own safe-refusal stance does not extend to string
// contents) run it through ValidUTF8 explicitly.
func ValidUTF8(b []byte) bool { return isUTF8Valid(b) }
