package engines

// matrixMul applies the involutional 8x8 Khazad diffusion matrix H to in,
// writing the result to out. Each output byte out[i^k] accumulates
// coeff(k)*in[i] for k in {0..7}, where the coefficients {1,3,4,5,6,7,8,B}
// are derived from in[i] itself via mul2 rather than stored as a literal
// 8x8 table.
// Reference: original_source/khazad-min.c, khazad_matrix_mul.
//
// Derivation, from the comment preserved in the C source:
//
//	k  coeff  derivation
//	0    1    v
//	1    3    2v ^ v
//	2    4    4v
//	3    5    4v ^ v
//	4    6    4v ^ 2v
//	5    8    8v
//	6    B    8v ^ 2v ^ v
//	7    7    4v ^ 2v ^ v
func matrixMul(out, in *[8]byte) {
	for i := range out {
		out[i] = 0
	}

	for i, v1 := range in {
		out[i] ^= v1

		v2 := mul2(v1)
		v4 := mul2(v2)
		out[i^2] ^= v4

		v6 := v4 ^ v2
		out[i^4] ^= v6
		out[i^7] ^= v6 ^ v1

		out[i^3] ^= v4 ^ v1

		v8 := mul2(v4)
		out[i^5] ^= v8

		v3 := v2 ^ v1
		out[i^1] ^= v3
		out[i^6] ^= v8 ^ v3
	}
}

// matrixIMul applies matrixMul to block in place. H is an involution, so
// matrixIMul(matrixIMul(x)) == x for all x.
func matrixIMul(block *[8]byte) {
	var tmp [8]byte
	matrixMul(&tmp, block)
	*block = tmp
}
