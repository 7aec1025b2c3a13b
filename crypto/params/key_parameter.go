// Package params provides cryptographic parameter types.
package params

import (
	"github.com/cmcqueen/khazad-min/crypto"
	"github.com/cmcqueen/khazad-min/util"
)

// KeyParameter holds a symmetric key.
// Reference: org.bouncycastle.crypto.params.KeyParameter
type KeyParameter struct {
	key []byte
}

// NewKeyParameter creates a new key parameter, defensively copying key.
func NewKeyParameter(key []byte) *KeyParameter {
	return &KeyParameter{key: util.Clone(key)}
}

// GetKey returns the key bytes.
func (kp *KeyParameter) GetKey() []byte {
	return kp.key
}

// IsCipherParameters implements the CipherParameters marker interface.
func (kp *KeyParameter) IsCipherParameters() bool {
	return true
}

// Ensure KeyParameter implements CipherParameters
var _ crypto.CipherParameters = (*KeyParameter)(nil)
