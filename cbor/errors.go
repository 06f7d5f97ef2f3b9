package cbor

import "strconv"

const resumableDefault = false

var (
	// ErrEndOfInput is returned when an operation would read past the end
	// of the input slice, or past a container's declared item count.
	ErrEndOfInput error = errEndOfInput{}

	// ErrRecursion is returned when the depth limit for Skip or for
	// packed-CBOR reference resolution is exhausted. This bounds both
	// adversarially deep nesting and self-referential packed reference
	// chains to a fixed amount of stack.
	ErrRecursion error = errRecursion{}

	// ErrPackedMemory is returned when installing a packed-CBOR table
	// would exceed the fixed active-table stack bound (MaxActiveTables).
	ErrPackedMemory error = errPackedMemory{}

	// ErrNotFound is returned when a map key lookup reaches the end of
	// the map without a match. It is the one error after which the
	// cursor remains well-defined, positioned just past the searched map.
	ErrNotFound error = errNotFound{}

	// ErrPackedFormat is returned when a packed-CBOR construct is
	// malformed: a table definition whose content is not a two-element
	// array, or a table element list that is not an array.
	ErrPackedFormat error = errPackedFormat{}

	// ErrPackedUndefinedReference is returned when a packed reference
	// index exceeds the combined size of every table currently in scope.
	ErrPackedUndefinedReference error = errPackedUndefinedReference{}

	// ErrInvalidType is returned when an item's major type or
	// additional-information value does not match what the caller's
	// operation requires - a mismatched simple-value form, a reserved
	// additional-info value, or a container entered where one was not
	// present - and no more specific TypeError applies.
	ErrInvalidType error = errInvalidType{}

	// ErrOverflow is returned when a decoded argument does not fit the
	// width the caller restricted it to, before any OverflowError detail
	// (the decoded value itself) is available - for example a tag number
	// wider than 32 bits, or a length byte wider than the caller allows.
	ErrOverflow error = errOverflow{}
)

// Error is the interface satisfied by all of the errors that originate
// from this package.
type Error interface {
	error

	// Resumable reports whether the cursor is still in a well-defined
	// position after this error. Per the package's error model only
	// ErrNotFound is resumable; every other error leaves the cursor
	// parked at the point of failure and unsafe to continue reading.
	Resumable() bool
}

// contextError allows errors to be enhanced with additional context about
// where in a larger structure they occurred.
type contextError interface {
	Error

	// withContext must not modify the error instance - it must clone and
	// return a new error with the context added.
	withContext(ctx string) error
}

// Cause returns the underlying cause of an error that has been wrapped
// with additional context.
func Cause(e error) error {
	if e, ok := e.(errWrapped); ok && e.cause != nil {
		return e.cause
	}
	return e
}

// Resumable returns whether e leaves the cursor in a well-defined state.
// Errors that do not implement Error are treated as non-resumable.
func Resumable(e error) bool {
	if e, ok := e.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

// WrapError wraps an error with additional context identifying which part
// of a decoded structure caused it. The underlying cause can be recovered
// with Cause.
func WrapError(err error, ctx ...any) error {
	switch e := err.(type) {
	case contextError:
		return e.withContext(ctxString(ctx))
	default:
		return errWrapped{cause: err, ctx: ctxString(ctx)}
	}
}

func addCtx(ctx, add string) string {
	if ctx != "" {
		return add + "/" + ctx
	}
	return add
}

type errWrapped struct {
	cause error
	ctx   string
}

func (e errWrapped) Error() string {
	if e.ctx != "" {
		return e.cause.Error() + " at " + e.ctx
	}
	return e.cause.Error()
}

func (e errWrapped) Resumable() bool {
	if e, ok := e.cause.(Error); ok {
		return e.Resumable()
	}
	return resumableDefault
}

func (e errWrapped) Unwrap() error { return e.cause }

type errEndOfInput struct{}

func (errEndOfInput) Error() string   { return "cbor: too few bytes left to decode item" }
func (errEndOfInput) Resumable() bool { return false }

type errRecursion struct{}

func (errRecursion) Error() string   { return "cbor: recursion limit reached" }
func (errRecursion) Resumable() bool { return false }

type errPackedMemory struct{}

func (errPackedMemory) Error() string   { return "cbor: packed-cbor active table stack exhausted" }
func (errPackedMemory) Resumable() bool { return false }

type errNotFound struct{}

func (errNotFound) Error() string   { return "cbor: key not found" }
func (errNotFound) Resumable() bool { return true }

type errPackedFormat struct{}

func (errPackedFormat) Error() string   { return "cbor: malformed packed-cbor construct" }
func (errPackedFormat) Resumable() bool { return false }

type errPackedUndefinedReference struct{}

func (errPackedUndefinedReference) Error() string { return "cbor: undefined packed-cbor reference" }
func (errPackedUndefinedReference) Resumable() bool {
	return false
}

type errInvalidType struct{}

func (errInvalidType) Error() string   { return "cbor: unexpected major type or form" }
func (errInvalidType) Resumable() bool { return false }

type errOverflow struct{}

func (errOverflow) Error() string   { return "cbor: value does not fit requested width" }
func (errOverflow) Resumable() bool { return false }

// OverflowError is returned when a decoded integer does not fit the
// requested target width.
type OverflowError struct {
	Value int64 // the value that did not fit, widened to int64
	Bits  int   // the bit size requested
	ctx   string
}

func (e OverflowError) Error() string {
	out := "cbor: " + strconv.FormatInt(e.Value, 10) + " overflows int" + strconv.Itoa(e.Bits)
	if e.ctx != "" {
		out += " at " + e.ctx
	}
	return out
}

// Resumable is always false, as for every error other than ErrNotFound. The
// cursor is not advanced past the item that did not fit.
func (e OverflowError) Resumable() bool { return false }

func (e OverflowError) withContext(ctx string) error { e.ctx = addCtx(e.ctx, ctx); return e }

// TypeError is returned when a typed reader is used against an item whose
// major type does not match what the reader requires.
type TypeError struct {
	Want MajorType
	Got  MajorType
	ctx  string
}

func (e TypeError) Error() string {
	out := "cbor: expected major type " + e.Want.String() + " but got " + e.Got.String()
	if e.ctx != "" {
		out += " at " + e.ctx
	}
	return out
}

func (e TypeError) Resumable() bool { return false }

func (e TypeError) withContext(ctx string) error { e.ctx = addCtx(e.ctx, ctx); return e }

func ctxString(ctx []any) string {
	if len(ctx) == 0 {
		return ""
	}
	out := ""
	for i, c := range ctx {
		if i > 0 {
			out += "/"
		}
		switch v := c.(type) {
		case string:
			out += v
		case int:
			out += strconv.Itoa(v)
		default:
			out += "?"
		}
	}
	return out
}
