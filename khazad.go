package khazad

import (
	"errors"

	"github.com/cmcqueen/khazad-min/crypto/engines"
	"github.com/cmcqueen/khazad-min/crypto/params"
	"github.com/cmcqueen/khazad-min/util"
)

// KeySize is the Khazad key size in bytes.
const KeySize = engines.KhazadKeySize

// BlockSize is the Khazad block size in bytes.
const BlockSize = engines.KhazadBlockSize

// EncryptBlock encrypts a single 8-byte block with a 16-byte key, building
// a fresh precomputed key schedule. For encrypting many blocks under the
// same key, build an engines.KhazadEngine directly instead so the schedule
// is built only once.
func EncryptBlock(key, block []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, errors.New("khazad: key must be 16 bytes")
	}
	if len(block) != BlockSize {
		return nil, errors.New("khazad: block must be 8 bytes")
	}

	engine := engines.NewKhazadEngine()
	engine.Init(true, params.NewKeyParameter(key))

	out := make([]byte, BlockSize)
	engine.ProcessBlock(block, 0, out, 0)
	return out, nil
}

// BlocksEqual reports whether a and b are equal, comparing in constant
// time so the comparison itself doesn't leak how many leading bytes
// matched. Intended for comparing a computed GHASH-64 tag against an
// expected one.
func BlocksEqual(a, b []byte) bool {
	return util.ConstantTimeAreEqual(a, b)
}

// DecryptBlock decrypts a single 8-byte block with a 16-byte key, building
// a fresh precomputed key schedule.
func DecryptBlock(key, block []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, errors.New("khazad: key must be 16 bytes")
	}
	if len(block) != BlockSize {
		return nil, errors.New("khazad: block must be 8 bytes")
	}

	engine := engines.NewKhazadEngine()
	engine.Init(false, params.NewKeyParameter(key))

	out := make([]byte, BlockSize)
	engine.ProcessBlock(block, 0, out, 0)
	return out, nil
}
