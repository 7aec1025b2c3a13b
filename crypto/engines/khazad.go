package engines

import (
	"github.com/cmcqueen/khazad-min/crypto"
	"github.com/cmcqueen/khazad-min/crypto/params"
	"github.com/cmcqueen/khazad-min/util"
)

// KhazadEngine implements the Khazad block cipher with a precomputed,
// materialized key schedule (as opposed to KhazadOTFKSEngine, which
// recomputes round keys on the fly from a small rolling state).
//
// Khazad is an involutional cipher: encryption and decryption share the
// same round structure, differing only in key ordering and a small
// post/pre transform. That gives two ways to decrypt with a precomputed
// schedule:
//
//   - Build the schedule with keySchedule and decrypt with the dedicated
//     decrypt function. This uses one schedule for both directions, at the
//     cost of carrying both encrypt() and decrypt() in the program image.
//   - Build the schedule with decryptKeySchedule and decrypt by calling
//     encrypt() on it. This uses a single crypt function for both
//     directions, at the cost of a second schedule-construction routine.
//
// KhazadEngine defaults to the first (unifiedCrypt false); NewKhazadCryptEngine
// selects the second.
// Reference: original_source/khazad-min.h's module comment, and sm-go-bc's
// engines.NewSM4Engine()/crypto.BlockCipher shape (crypto/interfaces.go).
type KhazadEngine struct {
	schedule      *khazadSchedule
	forEncryption bool
	unifiedCrypt  bool // true: always call encrypt(), with a decrypt-built schedule for decryption
	initialised   bool
}

// NewKhazadEngine creates a Khazad engine that uses a single key schedule
// for both directions, dispatching to the dedicated decrypt() function when
// initialised for decryption.
func NewKhazadEngine() *KhazadEngine {
	return &KhazadEngine{}
}

// NewKhazadCryptEngine creates a Khazad engine that always runs the
// encryption round structure (the "crypt" function), using a specially
// transformed schedule (decryptKeySchedule) to decrypt.
func NewKhazadCryptEngine() *KhazadEngine {
	return &KhazadEngine{unifiedCrypt: true}
}

// Init initializes the engine for encryption or decryption.
//
// params must be a *params.KeyParameter holding a 16-byte Khazad key.
func (e *KhazadEngine) Init(forEncryption bool, p crypto.CipherParameters) {
	keyParam, ok := p.(*params.KeyParameter)
	if !ok {
		panic("Khazad engine requires a *params.KeyParameter")
	}

	key := keyParam.GetKey()
	if len(key) != KhazadKeySize {
		panic("Khazad requires a 128 bit (16 byte) key")
	}

	e.forEncryption = forEncryption
	karr := keyFromBytes(key)

	if e.unifiedCrypt && !forEncryption {
		e.schedule = decryptKeySchedule(karr)
	} else {
		e.schedule = keySchedule(karr)
	}
	e.initialised = true
}

// GetAlgorithmName returns the algorithm name.
func (e *KhazadEngine) GetAlgorithmName() string {
	return "Khazad"
}

// GetBlockSize returns the Khazad block size (8 bytes).
func (e *KhazadEngine) GetBlockSize() int {
	return KhazadBlockSize
}

// ProcessBlock encrypts or decrypts a single 8-byte block in place from
// in[inOff:inOff+8] into out[outOff:outOff+8] (in and out may be the same
// slice at the same offset). Returns the number of bytes processed.
func (e *KhazadEngine) ProcessBlock(in []byte, inOff int, out []byte, outOff int) int {
	if !e.initialised {
		panic("Khazad engine not initialised")
	}
	if inOff+KhazadBlockSize > len(in) || outOff+KhazadBlockSize > len(out) {
		panic("Khazad: input or output buffer too short")
	}

	var block [8]byte
	copy(block[:], in[inOff:inOff+KhazadBlockSize])

	if e.forEncryption || e.unifiedCrypt {
		encrypt(&block, e.schedule)
	} else {
		decrypt(&block, e.schedule)
	}

	copy(out[outOff:outOff+KhazadBlockSize], block[:])
	return KhazadBlockSize
}

// Reset wipes the engine's key schedule before dropping it. The engine
// must be Init'd again before further use.
func (e *KhazadEngine) Reset() {
	if e.schedule != nil {
		for i := range e.schedule {
			util.Clear(e.schedule[i][:])
		}
	}
	e.schedule = nil
	e.initialised = false
}

var _ crypto.BlockCipher = (*KhazadEngine)(nil)
