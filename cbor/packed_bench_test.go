package cbor

import "testing"

// BenchmarkPackedResolveSimpleRef measures the hot path of resolving a
// simple-value shared-item reference against a small external table, the
// packed engine's most frequently exercised operation in a constrained
// environment streaming many repeated small values.
func BenchmarkPackedResolveSimpleRef(b *testing.B) {
	wire := []byte{0xE2} // simple-value reference to table index 2
	items := [][]byte{{0x01}, {0x02}, {0x03}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewPackedCursor(wire)
		if err := c.WithExternalTable(items); err != nil {
			b.Fatalf("WithExternalTable: %v", err)
		}
		if _, err := c.GetUint64(); err != nil {
			b.Fatalf("GetUint64: %v", err)
		}
	}
}

// BenchmarkPackedTableDefinition measures installing a tag-113 table and
// resolving one reference into it, repeated per iteration.
func BenchmarkPackedTableDefinition(b *testing.B) {
	wire := []byte{0xD8, 0x71, 0x82, 0x82, 0x61, 0x61, 0x61, 0x62, 0xE1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewPackedCursor(wire)
		if _, err := c.GetText(); err != nil {
			b.Fatalf("GetText: %v", err)
		}
	}
}

// BenchmarkPlainUint64 establishes a baseline (non-packed) decode cost for
// comparison against the packed-resolution benchmarks above.
func BenchmarkPlainUint64(b *testing.B) {
	wire := []byte{0x02}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewCursor(wire)
		if _, err := c.GetUint64(); err != nil {
			b.Fatalf("GetUint64: %v", err)
		}
	}
}
