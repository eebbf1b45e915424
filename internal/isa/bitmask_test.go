package isa

import "testing"

func TestEncodeBitmaskRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		value uint64
		is64  bool
	}{
		{"single-bit-32", 0x1, false},
		{"all-but-one-32", 0xFFFFFFFE, false},
		{"alternating-32", 0x55555555, false},
		{"byte-repeat-32", 0x01010101, false},
		{"single-bit-64", 0x1, true},
		{"high-run-64", 0xFFFF000000000000, true},
		{"alternating-64", 0x5555555555555555, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			n, immr, imms, ok := EncodeBitmask(c.value, c.is64)
			if !ok {
				t.Fatalf("EncodeBitmask(%#x, is64=%v) reported not representable", c.value, c.is64)
			}
			got, ok := DecodeBitmask(n, immr, imms, c.is64)
			if !ok {
				t.Fatalf("DecodeBitmask(n=%d, immr=%d, imms=%d) reported not representable", n, immr, imms)
			}
			want := c.value
			if !c.is64 {
				want &= 0xFFFFFFFF
			}
			if got != want {
				t.Fatalf("round trip mismatch: want %#x, got %#x", want, got)
			}
		})
	}
}

func TestEncodeBitmaskRejectsAllZerosAndAllOnes(t *testing.T) {
	if _, _, _, ok := EncodeBitmask(0, true); ok {
		t.Fatal("all-zero value must not be representable as a bitmask immediate")
	}
	if _, _, _, ok := EncodeBitmask(0xFFFFFFFFFFFFFFFF, true); ok {
		t.Fatal("all-one 64-bit value must not be representable")
	}
	if _, _, _, ok := EncodeBitmask(0xFFFFFFFF, false); ok {
		t.Fatal("all-one 32-bit value must not be representable")
	}
}

func TestEncodeBitmaskRejectsNonRepeatingPattern(t *testing.T) {
	// 0b1011 (two separate runs of ones, not repeated) isn't a single
	// contiguous rotated run within any power-of-two element size that
	// evenly divides 32.
	if _, _, _, ok := EncodeBitmask(0x0000000B, false); ok {
		t.Fatal("non-repeating, non-run pattern must not be representable")
	}
}
