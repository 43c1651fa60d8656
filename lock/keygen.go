package lock

import (
	"fmt"
	"math/big"

	shamir3pass "github.com/BackendStack21/shamir3pass-go"
	"github.com/BackendStack21/shamir3pass-go/utils"
)

// maxKeyAttempts bounds the rejection-sampling loop in GenerateLockKeys.
// For a prime modulus the per-draw rejection probability is small, so the
// cap is unreachable in practice; it exists to keep the loop bounded.
const maxKeyAttempts = 256

// GenerateLockKeys produces a fresh commuting exponent pair (e, d) for
// this engine's modulus: e drawn uniformly from [2, p-2] with
// gcd(e, p-1) = 1, and d = e^-1 mod (p-1) via the extended Euclidean
// algorithm.
//
// A draw that is not coprime with p-1 is resampled rather than adjusted,
// preserving uniformity over the valid exponent space. Fails with
// ErrGeneration if the random source fails or the attempt cap is reached.
func (en *Engine) GenerateLockKeys() (*shamir3pass.LockKeyPair, error) {
	hi := new(big.Int).Sub(en.p, one) // exclusive bound: e <= p-2
	gcd := new(big.Int)
	for i := 0; i < maxKeyAttempts; i++ {
		e, err := utils.RandomBigIntInRange(two, hi)
		if err != nil {
			return nil, fmt.Errorf("lock: exponent sampling: %v: %w", err, shamir3pass.ErrGeneration)
		}
		if gcd.GCD(nil, nil, e, en.order).Cmp(one) != 0 {
			continue
		}
		d := new(big.Int).ModInverse(e, en.order)
		if d == nil { // cannot happen once gcd(e, p-1) = 1
			continue
		}
		return &shamir3pass.LockKeyPair{E: e, D: d}, nil
	}
	return nil, fmt.Errorf("lock: no coprime exponent after %d attempts: %w",
		maxKeyAttempts, shamir3pass.ErrGeneration)
}
