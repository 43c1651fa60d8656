// Package utils provides the shared random-source, hashing, and memory
// hygiene helpers for the shamir3pass library.
package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// RandReader is the process-wide cryptographically secure random source.
// It defaults to crypto/rand.Reader; tests replace it to exercise
// random-source failure paths.
var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(RandReader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// RandomBigIntBelow returns a uniform random integer in [0, max).
// max must be positive.
func RandomBigIntBelow(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, errors.New("max must be positive")
	}
	return rand.Int(RandReader, max)
}

// RandomBigIntInRange returns a uniform random integer in [lo, hi).
// Requires lo < hi.
func RandomBigIntInRange(lo, hi *big.Int) (*big.Int, error) {
	if lo == nil || hi == nil || lo.Cmp(hi) >= 0 {
		return nil, errors.New("empty range")
	}
	width := new(big.Int).Sub(hi, lo)
	r, err := rand.Int(RandReader, width)
	if err != nil {
		return nil, err
	}
	return r.Add(r, lo), nil
}
