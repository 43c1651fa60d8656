// Package shamir3pass implements the Shamir 3-pass commutative-encryption
// protocol over a shared prime modulus. Two parties jointly lock and unlock
// a secret value using commuting modular-exponentiation transforms, without
// either party transmitting the secret in the clear or learning the other's
// private exponent.
package shamir3pass

// Re-export commonly used types through the root package.
// Users import the sub-packages directly for the operations themselves.

// Version of the shamir3pass Go implementation.
const Version = "1.0.0"

// API summary:
//
// Modulus generation:
//   - group.Generate(bits) - Generate a probable-prime modulus p
//   - group.Validate(p, minBits) - Size-only modulus check
//
// Commutative lock engine:
//   - lock.New(p) - Construct an engine over p
//   - engine.GenerateLockKeys() - Generate a commuting exponent pair (e, d)
//   - engine.AddLock(x, e) - x^e mod p
//   - engine.RemoveLock(x, d) - x^d mod p
//   - engine.RandomElement() - Uniform group element, e.g. a fresh KEK
//
// Key envelope:
//   - envelope.EncryptWithRandomKEK(p, plaintext) - AEAD-encrypt under a fresh KEK
//   - envelope.DecryptWithKey(ciphertext, kek) - Recover the plaintext
//
// Transport encoding:
//   - codec.Encode(n) / codec.Decode(s) - Canonical big-integer strings
