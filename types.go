package shamir3pass

import "math/big"

// WARNING: the arithmetic in this library is NOT constant-time. Exponents
// and group elements may leak through timing side channels. Do not use it
// where an attacker can measure operation latency.

// LockKeyPair is a commuting exponent pair (e, d) over a modulus p,
// satisfying e*d = 1 (mod p-1). E is the add-lock exponent, D its modular
// inverse, the remove-lock exponent.
//
// A pair is meaningless without the modulus it was generated against, and
// must never be transmitted: whichever party generated it owns it
// exclusively.
type LockKeyPair struct {
	E *big.Int
	D *big.Int
}

// EncryptionResult is the output of an envelope encryption: the
// authenticated ciphertext (nonce-prefixed) and the fresh KEK it was
// sealed under. The caller is expected to protocol-lock the KEK before
// persisting or transmitting it; the envelope layer never does this
// automatically.
type EncryptionResult struct {
	Ciphertext []byte
	KEK        *big.Int
}
