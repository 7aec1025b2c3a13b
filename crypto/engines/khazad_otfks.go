package engines

import (
	"github.com/cmcqueen/khazad-min/crypto"
	"github.com/cmcqueen/khazad-min/crypto/params"
	"github.com/cmcqueen/khazad-min/util"
)

// calcOTFKS advances the on-the-fly key schedule state held in buf for
// round numbers start through stop inclusive. buf is addressed as two
// adjacent 8-byte slots (Ka, Kb); the slot roles swap after each round
// rather than physically moving bytes, so a single in-place XOR per round
// is all that's needed to advance the Khazad recurrence
// Kr = ks_round(Kr-1, r) ^ Kr-2.
// Reference: original_source/khazad-min.c, khazad_otfks_calc_key.
func calcOTFKS(buf *[16]byte, start, stop int) {
	lo := (*[8]byte)(buf[0:8])
	hi := (*[8]byte)(buf[8:16])

	for round := start; ; round++ {
		keyTemp := *hi
		keyScheduleRound(&keyTemp, round)
		addBlock(lo, &keyTemp)

		if round >= stop {
			break
		}
		lo, hi = hi, lo
	}
}

// encryptStartKey computes, in place, the starting key state needed for
// otfksEncrypt(): buf must hold the raw 16-byte Khazad key on
// entry; on return it holds (K0, K1).
func encryptStartKey(buf *[16]byte) {
	calcOTFKS(buf, 0, 1)
}

// decryptStartKey computes, in place, the starting key state needed for
// otfksDecrypt(): buf must hold the raw 16-byte Khazad key on
// entry.
func decryptStartKey(buf *[16]byte) {
	calcOTFKS(buf, 0, KhazadNumRounds)
}

// decryptFromEncryptStartKey computes the decrypt start state from an
// already-computed encrypt start state, rather than from the raw key.
func decryptFromEncryptStartKey(buf *[16]byte) {
	calcOTFKS(buf, 2, KhazadNumRounds)
}

// otfksEncrypt encrypts block in place, using buf as the rolling
// (Kr-2, Kr-1) key-schedule state. buf must have been initialised by
// encryptStartKey. buf is destroyed by this call; it must be re-derived
// before the next use.
// Reference: original_source/khazad-min.c, khazad_otfks_encrypt.
func otfksEncrypt(block *[8]byte, buf *[16]byte) {
	lo := (*[8]byte)(buf[0:8])
	hi := (*[8]byte)(buf[8:16])

	addBlock(block, lo)
	for round := 2; ; round++ {
		encryptRound(block, hi)

		keyTemp := *hi
		keyScheduleRound(&keyTemp, round)
		addBlock(lo, &keyTemp)

		if round >= KhazadNumRounds {
			break
		}
		lo, hi = hi, lo
	}
	sboxApplyBlock(block)
	addBlock(block, lo)
}

// otfksDecrypt decrypts block in place, using buf as the rolling
// (Kr-2, Kr-1) key-schedule state, walked backward. buf must have been
// initialised by decryptStartKey or decryptFromEncryptStartKey. buf is
// destroyed by this call.
// Reference: original_source/khazad-min.c, khazad_otfks_decrypt.
func otfksDecrypt(block *[8]byte, buf *[16]byte) {
	lo := (*[8]byte)(buf[0:8])
	hi := (*[8]byte)(buf[8:16])

	addBlock(block, lo)
	sboxApplyBlock(block)
	for round := KhazadNumRounds; ; round-- {
		decryptRound(block, hi)

		keyTemp := *hi
		keyScheduleRound(&keyTemp, round)
		addBlock(lo, &keyTemp)

		if round <= 2 {
			break
		}
		lo, hi = hi, lo
	}
	addBlock(block, lo)
}

// KhazadOTFKSEngine implements the Khazad block cipher with an on-the-fly
// key schedule: round keys are derived from a 16-byte rolling state
// instead of a materialized 72-byte schedule, at the cost of the state
// buffer being consumed by exactly one ProcessBlock call.
// Reference: original_source/khazad-min.c; §4.3 of SPEC_FULL.md.
type KhazadOTFKSEngine struct {
	forEncryption bool
	key           [KhazadKeySize]byte
	initialised   bool
}

// NewKhazadOTFKSEngine creates a Khazad engine that derives round keys on
// the fly rather than materializing a full key schedule.
func NewKhazadOTFKSEngine() *KhazadOTFKSEngine {
	return &KhazadOTFKSEngine{}
}

// Init initializes the engine for encryption or decryption. params must be
// a *params.KeyParameter holding a 16-byte Khazad key. The start-key state
// is re-derived from the raw key on every ProcessBlock call, so Init need
// only be called once per key even though the rolling buffer is consumed
// per-block.
func (e *KhazadOTFKSEngine) Init(forEncryption bool, p crypto.CipherParameters) {
	keyParam, ok := p.(*params.KeyParameter)
	if !ok {
		panic("Khazad OTFKS engine requires a *params.KeyParameter")
	}
	key := keyParam.GetKey()
	if len(key) != KhazadKeySize {
		panic("Khazad requires a 128 bit (16 byte) key")
	}

	e.forEncryption = forEncryption
	copy(e.key[:], key)
	e.initialised = true
}

// GetAlgorithmName returns the algorithm name.
func (e *KhazadOTFKSEngine) GetAlgorithmName() string {
	return "Khazad-OTFKS"
}

// GetBlockSize returns the Khazad block size (8 bytes).
func (e *KhazadOTFKSEngine) GetBlockSize() int {
	return KhazadBlockSize
}

// ProcessBlock encrypts or decrypts a single 8-byte block in place. Each
// call derives a fresh rolling key state from the key supplied to Init, so
// concurrent or repeated calls are each self-contained.
func (e *KhazadOTFKSEngine) ProcessBlock(in []byte, inOff int, out []byte, outOff int) int {
	if !e.initialised {
		panic("Khazad OTFKS engine not initialised")
	}
	if inOff+KhazadBlockSize > len(in) || outOff+KhazadBlockSize > len(out) {
		panic("Khazad: input or output buffer too short")
	}

	var block [8]byte
	copy(block[:], in[inOff:inOff+KhazadBlockSize])

	state := e.key
	if e.forEncryption {
		encryptStartKey(&state)
		otfksEncrypt(&block, &state)
	} else {
		decryptStartKey(&state)
		otfksDecrypt(&block, &state)
	}

	copy(out[outOff:outOff+KhazadBlockSize], block[:])
	return KhazadBlockSize
}

// Reset wipes the stored key. Init must be called again before further use.
func (e *KhazadOTFKSEngine) Reset() {
	util.Clear(e.key[:])
	e.initialised = false
}

var _ crypto.BlockCipher = (*KhazadOTFKSEngine)(nil)
