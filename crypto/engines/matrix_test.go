package engines

import "testing"

func TestMatrixInvolution(t *testing.T) {
	x := [8]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	orig := x

	matrixIMul(&x)
	matrixIMul(&x)

	if x != orig {
		t.Errorf("matrix_mul(matrix_mul(x)) = %x, want %x", x, orig)
	}
}

func TestMatrixInvolutionAllSingleBytes(t *testing.T) {
	for pos := 0; pos < 8; pos++ {
		for v := 0; v < 256; v += 17 {
			var x [8]byte
			x[pos] = byte(v)
			orig := x

			matrixIMul(&x)
			matrixIMul(&x)

			if x != orig {
				t.Errorf("matrix_mul(matrix_mul(x)) = %x, want %x (pos=%d v=0x%02X)", x, orig, pos, v)
			}
		}
	}
}
