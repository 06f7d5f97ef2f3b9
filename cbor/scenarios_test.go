package cbor

import (
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// TestS1IndefiniteArray covers scenario S1: an indefinite-length array of
// three uints.
func TestS1IndefiniteArray(t *testing.T) {
	buf := mustHex(t, "9F010203FF")
	c := NewCursor(buf)
	arr, err := c.EnterArray()
	if err != nil {
		t.Fatalf("EnterArray: %v", err)
	}
	for _, want := range []uint64{1, 2, 3} {
		v, err := arr.GetUint64()
		if err != nil {
			t.Fatalf("GetUint64: %v", err)
		}
		if v != want {
			t.Fatalf("got %d want %d", v, want)
		}
	}
	if !arr.AtEnd() {
		t.Fatalf("expected array exhausted")
	}
	if err := c.LeaveContainer(arr); err != nil {
		t.Fatalf("LeaveContainer: %v", err)
	}
	if !c.AtEnd() {
		t.Fatalf("expected top-level cursor at end")
	}
}

// TestS2MapWithNestedEmptyArrays covers scenario S2.
func TestS2MapWithNestedEmptyArrays(t *testing.T) {
	buf := mustHex(t, "A501020380049FFF059FFF06F6")
	c := NewCursor(buf)
	m, err := c.EnterMap()
	if err != nil {
		t.Fatalf("EnterMap: %v", err)
	}

	key, err := m.GetUint64()
	if err != nil || key != 1 {
		t.Fatalf("key1: %v %v", key, err)
	}
	val, err := m.GetUint64()
	if err != nil || val != 2 {
		t.Fatalf("val1: %v %v", val, err)
	}

	key, err = m.GetUint64()
	if err != nil || key != 3 {
		t.Fatalf("key2: %v %v", key, err)
	}
	arr, err := m.EnterArray()
	if err != nil {
		t.Fatalf("EnterArray empty definite: %v", err)
	}
	if !arr.AtEnd() {
		t.Fatalf("expected empty definite array")
	}
	if err := m.LeaveContainer(arr); err != nil {
		t.Fatalf("leave definite array: %v", err)
	}

	key, err = m.GetUint64()
	if err != nil || key != 4 {
		t.Fatalf("key3: %v %v", key, err)
	}
	arr, err = m.EnterArray()
	if err != nil {
		t.Fatalf("EnterArray empty indefinite 1: %v", err)
	}
	if !arr.AtEnd() {
		t.Fatalf("expected empty indefinite array")
	}
	if err := m.LeaveContainer(arr); err != nil {
		t.Fatalf("leave indefinite array 1: %v", err)
	}

	key, err = m.GetUint64()
	if err != nil || key != 5 {
		t.Fatalf("key4: %v %v", key, err)
	}
	arr, err = m.EnterArray()
	if err != nil {
		t.Fatalf("EnterArray empty indefinite 2: %v", err)
	}
	if !arr.AtEnd() {
		t.Fatalf("expected empty indefinite array")
	}
	if err := m.LeaveContainer(arr); err != nil {
		t.Fatalf("leave indefinite array 2: %v", err)
	}

	key, err = m.GetUint64()
	if err != nil || key != 6 {
		t.Fatalf("key5: %v %v", key, err)
	}
	if err := m.GetNull(); err != nil {
		t.Fatalf("GetNull: %v", err)
	}

	if !m.AtEnd() {
		t.Fatalf("expected map exhausted")
	}
	if err := c.LeaveContainer(m); err != nil {
		t.Fatalf("LeaveContainer: %v", err)
	}
	if !c.AtEnd() {
		t.Fatalf("expected top-level cursor at end")
	}
}

// TestS3TagChain covers scenario S3: tag 55799 (self-describe) then tag
// 1380536148 then a 3-byte byte string.
func TestS3TagChain(t *testing.T) {
	buf := mustHex(t, "D9D9F7DA52494F5443424F52")
	c := NewCursor(buf)

	tag, err := c.GetTag()
	if err != nil {
		t.Fatalf("GetTag 1: %v", err)
	}
	if tag != tagSelfDescribe {
		t.Fatalf("tag1 got %d want %d", tag, tagSelfDescribe)
	}

	tag, err = c.GetTag()
	if err != nil {
		t.Fatalf("GetTag 2: %v", err)
	}
	if tag != 1380536148 {
		t.Fatalf("tag2 got %d want 1380536148", tag)
	}

	b, err := c.GetBytes()
	if err != nil {
		t.Fatalf("GetBytes: %v", err)
	}
	want := []byte{0x42, 0x4F, 0x52}
	if len(b) != len(want) {
		t.Fatalf("bytes len got %d want %d", len(b), len(want))
	}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("bytes[%d] got %x want %x", i, b[i], want[i])
		}
	}
	if !c.AtEnd() {
		t.Fatalf("expected top-level cursor at end")
	}
}

// TestS4DecimalFraction covers scenario S4.
func TestS4DecimalFraction(t *testing.T) {
	buf := mustHex(t, "C48221196AB3")
	c := NewCursor(buf)
	exp, mant, err := c.GetDecimalFraction()
	if err != nil {
		t.Fatalf("GetDecimalFraction: %v", err)
	}
	if exp != -2 {
		t.Fatalf("exponent got %d want -2", exp)
	}
	if mant != 27315 {
		t.Fatalf("mantissa got %d want 27315", mant)
	}
}

// TestS5PackedFollowBySimple covers scenario S5: resolution against an
// externally supplied table.
func TestS5PackedFollowBySimple(t *testing.T) {
	buf := mustHex(t, "E0E1")
	c := NewPackedCursor(buf)
	if err := c.WithExternalTable([][]byte{{0xF5}, {0xF4}}); err != nil {
		t.Fatalf("WithExternalTable: %v", err)
	}

	v, err := c.GetBool()
	if err != nil {
		t.Fatalf("GetBool 1: %v", err)
	}
	if v != true {
		t.Fatalf("got %v want true", v)
	}

	v, err = c.GetBool()
	if err != nil {
		t.Fatalf("GetBool 2: %v", err)
	}
	if v != false {
		t.Fatalf("got %v want false", v)
	}

	if !c.AtEnd() {
		t.Fatalf("expected cursor at end")
	}
}

// TestS6PackedTableDefinition covers scenario S6: an in-band tag-113 table
// definition whose rump is a reference into its own second entry.
func TestS6PackedTableDefinition(t *testing.T) {
	buf := mustHex(t, "D871828261616162E1")
	c := NewPackedCursor(buf)
	s, err := c.GetText()
	if err != nil {
		t.Fatalf("GetText: %v", err)
	}
	if s != "b" {
		t.Fatalf("got %q want %q", s, "b")
	}
}

// TestS7PackedReferenceLoop covers scenario S7: a self-referential table
// must fail with ErrRecursion rather than diverge.
func TestS7PackedReferenceLoop(t *testing.T) {
	buf := mustHex(t, "E0")
	c := NewPackedCursor(buf)
	if err := c.WithExternalTable([][]byte{{0xE0}, {0xE2}, {0xE1}}); err != nil {
		t.Fatalf("WithExternalTable: %v", err)
	}
	if _, err := c.GetBool(); err != ErrRecursion {
		t.Fatalf("got %v want ErrRecursion", err)
	}
}

// TestS8PackedUndefinedReference covers scenario S8: a reference into an
// empty table.
func TestS8PackedUndefinedReference(t *testing.T) {
	buf := mustHex(t, "D8718280E0")
	c := NewPackedCursor(buf)
	if _, err := c.GetBool(); err != ErrPackedUndefinedReference {
		t.Fatalf("got %v want ErrPackedUndefinedReference", err)
	}
}
