package modes

// Table8 holds the 8-bit table-driven multiply state for a single Galois
// key: one precomputed partial product per nonzero byte value.
// Reference: original_source/gcm_64.h, gcm_64_mul_table8_t.
type Table8 struct {
	keyData [255][8]byte
}

// PrepareTable8 builds t from key, for later use with MulTable8.
// Reference: original_source/gcm_64.c, gcm_64_mul_prepare_table8.
func PrepareTable8(t *Table8, key *[8]byte) {
	*t = Table8{}

	for iBit := uint(0x80); iBit != 0; iBit >>= 1 {
		var block [8]byte
		block[0] = byte(iBit)
		Mul(&block, key)

		for j := uint(255); j != 0; j-- {
			if j&iBit != 0 {
				xorBlock(&t.keyData[j-1], &block)
			}
		}
	}
}

// MulTable8 computes block = block * key in GF(2^64), using a table
// prepared by PrepareTable8. This is the fastest of the three multiply
// strategies in this package, at the cost of a 255*8-byte table built per
// key.
// Reference: original_source/gcm_64.c, gcm_64_mul_table8.
func MulTable8(block *[8]byte, t *Table8) {
	var result [8]byte

	for i := GCM64BlockSize - 1; ; i-- {
		blockMul256(&result)
		if block[i] != 0 {
			xorBlock(&result, &t.keyData[block[i]-1])
		}
		if i == 0 {
			break
		}
	}

	*block = result
}

// Table4 holds the 4-bit table-driven multiply state for a single Galois
// key: nibble-indexed partial products, split into high- and low-nibble
// tables.
// Reference: original_source/gcm_64.h, gcm_64_mul_table4_t.
type Table4 struct {
	keyDataHi [15][8]byte
	keyDataLo [15][8]byte
}

// PrepareTable4 builds t from key, for later use with MulTable4.
// Reference: original_source/gcm_64.c, gcm_64_mul_prepare_table4.
func PrepareTable4(t *Table4, key *[8]byte) {
	*t = Table4{}

	for iBit := uint(0x80); iBit != 0; iBit >>= 1 {
		var block [8]byte
		block[0] = byte(iBit)
		Mul(&block, key)

		if iBit >= 0x10 {
			for j := uint(15); j != 0; j-- {
				if j&(iBit>>4) != 0 {
					xorBlock(&t.keyDataHi[j-1], &block)
				}
			}
		} else {
			for j := uint(15); j != 0; j-- {
				if j&iBit != 0 {
					xorBlock(&t.keyDataLo[j-1], &block)
				}
			}
		}
	}
}

// MulTable4 computes block = block * key in GF(2^64), using a table
// prepared by PrepareTable4. Slower than MulTable8 but needs a much
// smaller table.
// Reference: original_source/gcm_64.c, gcm_64_mul_table4.
func MulTable4(block *[8]byte, t *Table4) {
	var result [8]byte

	for i := GCM64BlockSize - 1; ; i-- {
		blockMul256(&result)

		hi := (block[i] >> 4) & 0xF
		if hi != 0 {
			xorBlock(&result, &t.keyDataHi[hi-1])
		}
		lo := block[i] & 0xF
		if lo != 0 {
			xorBlock(&result, &t.keyDataLo[lo-1])
		}

		if i == 0 {
			break
		}
	}

	*block = result
}

// blockMul256 multiplies p by 2^8 in GF(2^64) in place: a one-byte shift of
// the block with reduction applied via a precomputed table, equivalent to
// 8 applications of u64Struct.mul2 but far cheaper. Operates byte-wise so
// it needs no assumption about native integer byte order.
// Reference: original_source/gcm_64.c, block_mul256 (portable #if 1 form).
func blockMul256(p *[8]byte) {
	reduce := reduceTable[p[7]]
	copy(p[1:], p[0:7])
	p[0] = byte(reduce >> 8)
	p[1] ^= byte(reduce)
}
