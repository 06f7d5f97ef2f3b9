package cbor

import "testing"

func TestSkipAdvancesExactly(t *testing.T) {
	// A 2-element array [1, "ab"] followed by a trailing marker byte.
	buf := mustHex(t, "820162616200")
	c := NewCursor(buf)
	if err := c.Skip(); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if len(c.buf) != 1 {
		t.Fatalf("expected 1 trailing byte, got %d", len(c.buf))
	}
	if c.buf[0] != 0x00 {
		t.Fatalf("skip consumed wrong span")
	}
}

func TestSkipTruncatedInput(t *testing.T) {
	// Array header declares 2 elements but only one is present.
	buf := mustHex(t, "8201")
	c := NewCursor(buf)
	if err := c.Skip(); err != ErrEndOfInput {
		t.Fatalf("got %v want ErrEndOfInput", err)
	}
}

func TestSkipRecursionLimit(t *testing.T) {
	// A chain of nested single-element arrays deeper than the recursion
	// limit: 0x81 repeated, terminated by a scalar.
	deep := make([]byte, 0, DefaultRecursionLimit+4)
	for i := 0; i < DefaultRecursionLimit+2; i++ {
		deep = append(deep, 0x81)
	}
	deep = append(deep, 0x00)
	c := NewCursor(deep)
	if err := c.Skip(); err != ErrRecursion {
		t.Fatalf("got %v want ErrRecursion", err)
	}
}

func TestSkipIndefiniteTextString(t *testing.T) {
	// Indefinite text string made of two chunks "ab" + "c", then break.
	buf := mustHex(t, "7F6261626163FF")
	c := NewCursor(buf)
	if err := c.Skip(); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if !c.AtEnd() {
		t.Fatalf("expected cursor exhausted")
	}
}

func TestEnablingPackedWithNoPackedFormsMatchesPlain(t *testing.T) {
	buf := mustHex(t, "A501020380049FFF059FFF06F6")

	plain := NewCursor(buf)
	packed := NewPackedCursor(buf)

	pm, err := plain.EnterMap()
	if err != nil {
		t.Fatalf("plain EnterMap: %v", err)
	}
	km, err := packed.EnterMap()
	if err != nil {
		t.Fatalf("packed EnterMap: %v", err)
	}

	readUint := func(label string, p, k *Cursor) {
		pv, err := p.GetUint64()
		if err != nil {
			t.Fatalf("%s: plain GetUint64: %v", label, err)
		}
		kv, err := k.GetUint64()
		if err != nil {
			t.Fatalf("%s: packed GetUint64: %v", label, err)
		}
		if pv != kv {
			t.Fatalf("%s: value mismatch: plain %d packed %d", label, pv, kv)
		}
	}
	readEmptyArray := func(label string, p, k *Cursor) {
		pa, err := p.EnterArray()
		if err != nil {
			t.Fatalf("%s: plain EnterArray: %v", label, err)
		}
		ka, err := k.EnterArray()
		if err != nil {
			t.Fatalf("%s: packed EnterArray: %v", label, err)
		}
		if pa.AtEnd() != ka.AtEnd() {
			t.Fatalf("%s: at-end mismatch", label)
		}
		if err := p.LeaveContainer(pa); err != nil {
			t.Fatalf("%s: leave plain array: %v", label, err)
		}
		if err := k.LeaveContainer(ka); err != nil {
			t.Fatalf("%s: leave packed array: %v", label, err)
		}
	}

	readUint("key1", pm, km)
	readUint("val1", pm, km)
	readUint("key3", pm, km)
	readEmptyArray("val3", pm, km)
	readUint("key4", pm, km)
	readEmptyArray("val4", pm, km)
	readUint("key5", pm, km)
	readEmptyArray("val5", pm, km)
	readUint("key6", pm, km)

	if err := pm.GetNull(); err != nil {
		t.Fatalf("plain GetNull: %v", err)
	}
	if err := km.GetNull(); err != nil {
		t.Fatalf("packed GetNull: %v", err)
	}
	if pm.AtEnd() != km.AtEnd() {
		t.Fatalf("map at-end mismatch")
	}
}
