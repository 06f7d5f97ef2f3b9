package cbor

// Cursor decodes a sequence of CBOR data items from a byte slice. The zero
// value is not usable; create one with NewCursor or NewPackedCursor.
//
// A Cursor never allocates on the decode path: typed readers either copy a
// fixed-size scalar out or return a sub-slice of buf, and container entry
// produces a new Cursor value by copying the (small, fixed-size) struct.
// The one exception is the packed-CBOR table stack, which is a fixed-size
// array embedded in the struct rather than a slice, so that copying a
// Cursor by value (as EnterArray/EnterMap do) carries the active tables
// along for free.
type Cursor struct {
	buf       []byte // remaining input; buf[0] is the next byte to decode
	remaining uint32 // items left in the enclosing container, if any
	flags     flag

	packed bool // true: consult tables when resolving references
	tables tableStack
}

type flag uint8

const (
	flagContainer  flag = 1 << iota // cursor is iterating a container
	flagIndefinite                  // that container has indefinite length
)

// flagBreakSeen records that AtEnd has consumed an indefinite container's
// break byte.
const flagBreakSeen flag = 1 << 3

// NewCursor creates a Cursor over buf with packed-CBOR support disabled.
// Shared-item references and table-definition tags are not interpreted by
// such a Cursor: they read as what they literally are on the wire, a simple
// value (GetSimple) or a tag (GetTag) followed by its content.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewPackedCursor creates a Cursor over buf with packed-CBOR decoding
// enabled (draft-ietf-cbor-packed). A tag-113 table definition encountered
// in buf is in scope while its rump is resolved; up to MaxActiveTables
// tables may be active at once, and exceeding that bound is
// ErrPackedMemory. An external,
// pre-shared table (fully decoded by the caller ahead of time, e.g.
// distributed out of band) may be supplied via WithExternalTable.
func NewPackedCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf, packed: true}
}

// WithExternalTable installs table as the outermost packed-CBOR table,
// below any tag-113 tables defined within buf itself. It must be called
// before any decoding and only on a Cursor created with NewPackedCursor.
// items holds the table's shared items in index order, each as the raw
// encoding of one CBOR item.
func (c *Cursor) WithExternalTable(items [][]byte) error {
	if !c.packed {
		return ErrInvalidType
	}
	return c.tables.pushExternal(items)
}

// Len returns the number of bytes remaining in the Cursor's window,
// including any bytes belonging to items nested inside the current
// container that have not yet been read or skipped.
func (c *Cursor) Len() int { return len(c.buf) }

// Type returns the major type of the next item without consuming it. If
// the item is a packed-CBOR reference, Type resolves it (without
// mutating the Cursor) and reports the major type of the referenced item.
func (c *Cursor) Type() (MajorType, error) {
	if len(c.buf) == 0 {
		return 0, ErrEndOfInput
	}
	if isBreak(c.buf) {
		return MajorFloat, nil
	}
	if c.packed {
		resolved, _, err := c.resolvePacked(c.buf, DefaultRecursionLimit)
		if err != nil {
			return 0, err
		}
		return peekType(resolved)
	}
	return peekType(c.buf)
}

// AtEnd reports whether the current container has no more items, or, for
// a Cursor not inside a container, whether the input is exhausted. Inside
// an indefinite-length container AtEnd consumes the break byte itself
// once it is reached, mirroring how a definite container's item count
// reaching zero requires no further input; later calls keep returning true.
func (c *Cursor) AtEnd() bool {
	if c.flags&flagContainer == 0 {
		return len(c.buf) == 0
	}
	if c.flags&flagIndefinite == 0 {
		return c.remaining == 0 || len(c.buf) == 0
	}
	if c.flags&flagBreakSeen != 0 {
		return true
	}
	if isBreak(c.buf) {
		c.buf = c.buf[1:]
		c.flags |= flagBreakSeen
		return true
	}
	return len(c.buf) == 0
}

func (c *Cursor) advance(n int) {
	c.buf = c.buf[n:]
	if c.remaining > 0 {
		c.remaining--
	}
}
