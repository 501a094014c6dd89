package security

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
)

// NewTestTokenProvider returns a TokenProvider backed by a freshly generated
// ECDSA P-256 key pair. For unit tests only.
func NewTestTokenProvider() (*TokenProvider, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}
	return NewTokenProvider(key, &key.PublicKey, "test-issuer"), nil
}
