// Package envelope derives a symmetric encryption key from a
// protocol-carried KEK and performs authenticated encryption of caller
// payloads under that key.
//
// The AEAD key is derived deterministically from the KEK's canonical
// bytes via domain-separated SHAKE256, so it is never stored: it is
// recomputed from the KEK whenever needed. Ciphertexts are
// ChaCha20-Poly1305 with the nonce prefixed, and carry no header or
// version tag; any versioning is an application concern.
package envelope

import (
	"fmt"
	"math/big"

	"golang.org/x/crypto/chacha20poly1305"

	shamir3pass "github.com/BackendStack21/shamir3pass-go"
	"github.com/BackendStack21/shamir3pass-go/codec"
	"github.com/BackendStack21/shamir3pass-go/utils"
)

// DomainEnvelopeKey is the KDF context label for deriving the AEAD key
// from a KEK. Each KEK is independently random, so the fixed label never
// causes key reuse across unrelated KEKs.
const DomainEnvelopeKey = "shamir3pass-env-key-v1"

const (
	// KeySize is the length of the derived AEAD key.
	KeySize = chacha20poly1305.KeySize

	// NonceSize is the length of the nonce prefixed to every ciphertext.
	NonceSize = chacha20poly1305.NonceSize
)

// EncryptWithRandomKEK draws a fresh KEK uniformly from [0, p), derives an
// AEAD key from it, and encrypts plaintext under that key with a fresh
// random nonce. The returned ciphertext is nonce || sealed data.
//
// The KEK is returned alongside the ciphertext so the caller can
// protocol-lock it; it is never locked or persisted here.
func EncryptWithRandomKEK(p *big.Int, plaintext []byte) (*shamir3pass.EncryptionResult, error) {
	if p == nil || p.Sign() <= 0 {
		return nil, fmt.Errorf("envelope: modulus must be a positive integer: %w",
			shamir3pass.ErrInvalidModulus)
	}
	kek, err := utils.RandomBigIntBelow(p)
	if err != nil {
		return nil, fmt.Errorf("envelope: KEK sampling: %v: %w", err, shamir3pass.ErrGeneration)
	}

	key := deriveKey(kek)
	defer utils.Zeroize(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("envelope: cipher setup: %v: %w", err, shamir3pass.ErrEncryptionFailure)
	}
	nonce, err := utils.SecureRandomBytes(NonceSize)
	if err != nil {
		return nil, fmt.Errorf("envelope: nonce sampling: %v: %w", err, shamir3pass.ErrGeneration)
	}

	ciphertext := make([]byte, 0, NonceSize+len(plaintext)+aead.Overhead())
	ciphertext = append(ciphertext, nonce...)
	ciphertext = aead.Seal(ciphertext, nonce, plaintext, nil)

	return &shamir3pass.EncryptionResult{
		Ciphertext: ciphertext,
		KEK:        kek,
	}, nil
}

// DecryptWithKey recomputes the AEAD key from kek, extracts the embedded
// nonce, and authenticated-decrypts. It fails with ErrDecryptionFailure on
// any authentication failure — tampered ciphertext, wrong KEK, or wrong
// nonce — and never returns partial plaintext.
func DecryptWithKey(ciphertext []byte, kek *big.Int) ([]byte, error) {
	if kek == nil || kek.Sign() < 0 {
		return nil, fmt.Errorf("envelope: KEK must be a non-negative integer: %w",
			shamir3pass.ErrDecryptionFailure)
	}

	key := deriveKey(kek)
	defer utils.Zeroize(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("envelope: cipher setup: %v: %w", err, shamir3pass.ErrDecryptionFailure)
	}
	if len(ciphertext) < NonceSize+aead.Overhead() {
		return nil, fmt.Errorf("envelope: ciphertext too short: %w", shamir3pass.ErrDecryptionFailure)
	}

	nonce, sealed := ciphertext[:NonceSize], ciphertext[NonceSize:]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("envelope: authentication failed: %w", shamir3pass.ErrDecryptionFailure)
	}
	return plaintext, nil
}

// deriveKey maps a KEK to its fixed-length AEAD key.
func deriveKey(kek *big.Int) []byte {
	return utils.Shake256WithDomain(DomainEnvelopeKey, codec.CanonicalBytes(kek), KeySize)
}
