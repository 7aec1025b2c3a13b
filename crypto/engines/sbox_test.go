package engines

import "testing"

func TestSboxCompactMatchesLUT(t *testing.T) {
	for a := 0; a < 256; a++ {
		lut := sbox(byte(a))
		compact := sboxCompact(byte(a))
		if lut != compact {
			t.Errorf("sboxCompact(0x%02X) = 0x%02X, sbox(LUT) = 0x%02X", a, compact, lut)
		}
	}
}

func TestSboxInvolution(t *testing.T) {
	for a := 0; a < 256; a++ {
		got := sbox(sbox(byte(a)))
		if got != byte(a) {
			t.Errorf("sbox(sbox(0x%02X)) = 0x%02X, want 0x%02X", a, got, a)
		}
	}
}
