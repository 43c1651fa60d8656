package shamir3pass

import "errors"

// Configuration errors indicate a caller supplied unusable parameters.
var (
	// ErrInvalidModulus indicates p fails the minimum-size check or is too
	// small to admit a usable group (p <= 3).
	ErrInvalidModulus = errors.New("invalid modulus")

	// ErrInvalidKey indicates an exponent is out of range for the given
	// modulus, or an exponent pair fails the inverse relation.
	ErrInvalidKey = errors.New("invalid lock key")
)

// Environmental errors are transient and may succeed on retry.
var (
	// ErrGeneration indicates the random source failed or was exhausted
	// during modulus or key generation.
	ErrGeneration = errors.New("random source failure")
)

// Data-integrity errors indicate the input itself must be rejected.
var (
	// ErrEncryptionFailure indicates the authenticated cipher reported a
	// setup error during encryption.
	ErrEncryptionFailure = errors.New("encryption failure")

	// ErrDecryptionFailure indicates an authentication-tag mismatch:
	// tampered ciphertext, wrong key, or wrong nonce.
	ErrDecryptionFailure = errors.New("decryption failure")

	// ErrEncoding indicates a transport string is not the canonical
	// encoding of any integer.
	ErrEncoding = errors.New("invalid encoding")
)
