// Package codec provides the canonical transport encoding for the big
// integers that cross storage and transport boundaries: the modulus,
// lock-key exponents, and locked values.
//
// The encoding is deterministic, padding-free base64url over the integer's
// minimal big-endian byte representation. Every integer has exactly one
// encoding, and Decode rejects anything that is not the canonical encoding
// of some integer.
package codec

import (
	"encoding/base64"
	"fmt"
	"math/big"

	shamir3pass "github.com/BackendStack21/shamir3pass-go"
)

var encoding = base64.RawURLEncoding.Strict()

// CanonicalBytes returns the minimal big-endian byte representation of a
// non-negative integer: no leading zero bytes, except a single zero byte
// for the value zero. This form is shared by the codec and the envelope
// key derivation.
func CanonicalBytes(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0}
	}
	return n.Bytes()
}

// Encode produces the canonical transport string for a non-negative
// integer. It is injective: distinct integers yield distinct strings.
func Encode(n *big.Int) (string, error) {
	if n == nil {
		return "", fmt.Errorf("codec: nil integer: %w", shamir3pass.ErrEncoding)
	}
	if n.Sign() < 0 {
		return "", fmt.Errorf("codec: negative integer: %w", shamir3pass.ErrEncoding)
	}
	return encoding.EncodeToString(CanonicalBytes(n)), nil
}

// Decode is the exact inverse of Encode. It fails on any input that is not
// the canonical encoding of some integer: characters outside the alphabet,
// padding, non-zero trailing bits, or a non-minimal byte form.
func Decode(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("codec: empty input: %w", shamir3pass.ErrEncoding)
	}
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("codec: %v: %w", err, shamir3pass.ErrEncoding)
	}
	if len(raw) > 1 && raw[0] == 0 {
		return nil, fmt.Errorf("codec: non-minimal byte form: %w", shamir3pass.ErrEncoding)
	}
	return new(big.Int).SetBytes(raw), nil
}
