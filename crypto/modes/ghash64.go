// Package modes implements Galois field multiplication over GF(2^64), the
// core primitive of a 64-bit-block GCM mode (NIST SP 800-38D's GHASH,
// specialized to an 8-byte block instead of the usual 16).
package modes

import "github.com/cmcqueen/khazad-min/util"

// GCM64BlockSize is the block size, in bytes, of the 64-bit Galois field
// used by this package.
const GCM64BlockSize = 8

// u64Struct represents a 64-bit Galois field element as two 32-bit
// big-endian limbs, the layout produced by u64FromBytes. Multiplication
// here uses the "GCM bit-reversed" convention: byte 0 holds the
// lowest-degree coefficients (bit 7 of byte 0 is the x^0 coefficient, so
// 80 00 00 00 00 00 00 00 is the identity), and bit 0 of each byte is the
// highest-degree coefficient within that byte, so a field doubling is an
// ordinary rightward bit shift of this structure plus a conditional XOR of
// the reduction polynomial.
// Reference: original_source/gcm_64.h, gcm_u64_struct_t / gcm_u64_element_t.
type u64Struct struct {
	elem [2]uint32
}

func u64FromBytes(b *[8]byte) u64Struct {
	return u64Struct{elem: [2]uint32{
		util.BigEndianToUint32(b[:], 0),
		util.BigEndianToUint32(b[:], 4),
	}}
}

func (p *u64Struct) toBytes(b *[8]byte) {
	util.Uint32ToBigEndian(p.elem[0], b[:], 0)
	util.Uint32ToBigEndian(p.elem[1], b[:], 4)
}

func (p *u64Struct) xor(q *u64Struct) {
	p.elem[0] ^= q.elem[0]
	p.elem[1] ^= q.elem[1]
}

// mul2 doubles p in GF(2^64) under the GCM-64 reduction polynomial
// x^64+x^4+x^3+x+1 (0xD8, GCM bit-reversed convention), using a mask
// instead of a conditional branch so execution time doesn't depend on p's
// value.
// Reference: original_source/gcm_64.c, uint64_struct_mul2.
func (p *u64Struct) mul2() {
	mask := -(p.elem[1] & 1)
	carry := (uint32(0xD8) << 24) & mask
	nextCarry := (p.elem[0] & 1) << 31
	p.elem[0] = (p.elem[0] >> 1) ^ carry
	p.elem[1] = (p.elem[1] >> 1) ^ nextCarry
}

// Mul computes block = block * key in GF(2^64) under the GCM-64 reduction
// polynomial, using a bit-by-bit shift-and-add multiply. This is the
// slowest of the three multiply strategies in this package, but needs no
// table precomputed from the key.
// Reference: original_source/gcm_64.c, gcm_64_mul.
func Mul(block *[8]byte, key *[8]byte) {
	a := u64FromBytes(key)
	var result u64Struct

	for i := GCM64BlockSize - 1; ; i-- {
		for jBit := byte(1); jBit != 0; jBit <<= 1 {
			result.mul2()
			if block[i]&jBit != 0 {
				result.xor(&a)
			}
		}
		if i == 0 {
			break
		}
	}

	result.toBytes(block)
}

func xorBlock(dst, src *[8]byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
