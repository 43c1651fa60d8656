// Package group provides generation and validation of the shared public
// modulus p for the commutative-encryption group Z_p*.
package group

import (
	"crypto/rand"
	"fmt"
	"math/big"

	shamir3pass "github.com/BackendStack21/shamir3pass-go"
	"github.com/BackendStack21/shamir3pass-go/utils"
)

const (
	// MinGenerateBits is the smallest bit length Generate accepts.
	MinGenerateBits = 8

	// DefaultMinBits is the modulus-size floor applied by lock.New.
	// A 256-bit modulus is accepted but unsafe for production use.
	DefaultMinBits = 256

	// RecommendedBits is the minimum modulus size recommended for
	// production use.
	RecommendedBits = 2048
)

// primalityRounds is the number of Miller-Rabin rounds used to confirm a
// candidate. The error probability is at most 4^-40.
const primalityRounds = 40

// Generate produces a probable prime p with exactly bits significant bits,
// suitable as the shared public modulus. It consumes entropy from the
// process-wide random source and fails with ErrGeneration if that source
// is unavailable.
//
// This is the only path that establishes primality. A caller-supplied
// modulus is checked for size only (see Validate); passing a composite
// silently breaks the protocol's confidentiality.
func Generate(bits int) (*big.Int, error) {
	if bits < MinGenerateBits {
		return nil, fmt.Errorf("group: bit length %d below minimum %d: %w",
			bits, MinGenerateBits, shamir3pass.ErrInvalidModulus)
	}
	for {
		p, err := rand.Prime(utils.RandReader, bits)
		if err != nil {
			return nil, fmt.Errorf("group: prime generation: %v: %w", err, shamir3pass.ErrGeneration)
		}
		if p.ProbablyPrime(primalityRounds) {
			return p, nil
		}
	}
}

// Validate checks that p is a positive integer of at least minBits
// significant bits. It deliberately does not test primality: the split
// between generate-with-proof and construct-with-size-check-only is part
// of the contract.
func Validate(p *big.Int, minBits int) error {
	if p == nil || p.Sign() <= 0 {
		return fmt.Errorf("group: modulus must be a positive integer: %w", shamir3pass.ErrInvalidModulus)
	}
	if p.BitLen() < minBits {
		return fmt.Errorf("group: modulus is %d bits, minimum is %d: %w",
			p.BitLen(), minBits, shamir3pass.ErrInvalidModulus)
	}
	return nil
}
