// Package khazad provides the Khazad block cipher and a 64-bit-block GHASH
// multiplier: the primitives needed to build a Khazad-based GCM mode.
//
// Two Khazad implementations are exposed through crypto/engines, both
// implementing crypto.BlockCipher in the style of a BouncyCastle-derived
// engine:
//
//   - KhazadEngine uses a precomputed, materialized 72-byte key schedule.
//   - KhazadOTFKSEngine derives round keys on the fly from a 16-byte
//     rolling state, trading a small amount of per-block recomputation for
//     not having to store the full schedule.
//
// GHASH-64 multiplication over GF(2^64), the building block of a 64-bit
// GCM mode, lives in crypto/modes, with bit-by-bit (Mul), 4-bit table
// (PrepareTable4/MulTable4), and 8-bit table (PrepareTable8/MulTable8)
// implementations.
//
// # Block Encryption Example
//
//	import (
//	    "github.com/cmcqueen/khazad-min/crypto/engines"
//	    "github.com/cmcqueen/khazad-min/crypto/params"
//	)
//
//	engine := engines.NewKhazadEngine()
//	engine.Init(true, params.NewKeyParameter(key))
//	engine.ProcessBlock(plaintext, 0, ciphertext, 0)
//
// # GHASH-64 Example
//
//	import "github.com/cmcqueen/khazad-min/crypto/modes"
//
//	modes.Mul(&block, &key)
package khazad
