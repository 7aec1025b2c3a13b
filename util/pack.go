// Package util provides byte-packing and array utilities shared by the
// engine and mode packages.
package util

import "encoding/binary"

// Pack provides byte packing and unpacking utilities.
// Reference: org.bouncycastle.util.Pack (bc-java)

// BigEndianToUint32 unpacks a uint32 from big-endian bytes
func BigEndianToUint32(bs []byte, off int) uint32 {
	return binary.BigEndian.Uint32(bs[off:])
}

// Uint32ToBigEndian packs a uint32 into big-endian bytes
func Uint32ToBigEndian(n uint32, bs []byte, off int) {
	binary.BigEndian.PutUint32(bs[off:], n)
}

