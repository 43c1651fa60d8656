// Package lock implements the commutative lock engine at the core of the
// Shamir 3-pass protocol: the add-lock and remove-lock
// modular-exponentiation transforms and the generation of commuting
// exponent pairs over a shared prime modulus.
//
// Every operation is a pure function of its inputs. An Engine carries only
// the modulus and its derived group order, both immutable after
// construction, so any number of goroutines may share one engine without
// coordination.
package lock

import (
	"fmt"
	"math/big"

	shamir3pass "github.com/BackendStack21/shamir3pass-go"
	"github.com/BackendStack21/shamir3pass-go/codec"
	"github.com/BackendStack21/shamir3pass-go/group"
	"github.com/BackendStack21/shamir3pass-go/utils"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Engine performs the commutative lock transforms over a fixed modulus p.
type Engine struct {
	p       *big.Int
	order   *big.Int // p - 1, the exponent-arithmetic modulus
	minBits int
}

// New constructs an engine over p, enforcing the group.DefaultMinBits
// size floor. The modulus is checked for size only, never primality;
// callers who did not obtain p from group.Generate take responsibility
// for its primality.
func New(p *big.Int) (*Engine, error) {
	return NewWithMinBits(p, group.DefaultMinBits)
}

// NewWithMinBits constructs an engine over p with a caller-chosen
// minimum bit length. Moduli below group.RecommendedBits are unsafe for
// production use.
func NewWithMinBits(p *big.Int, minBits int) (*Engine, error) {
	if err := group.Validate(p, minBits); err != nil {
		return nil, err
	}
	if p.Cmp(three) <= 0 {
		return nil, fmt.Errorf("lock: group too small to admit a usable exponent: %w",
			shamir3pass.ErrInvalidModulus)
	}
	pc := new(big.Int).Set(p)
	return &Engine{
		p:       pc,
		order:   new(big.Int).Sub(pc, one),
		minBits: minBits,
	}, nil
}

// NewFromEncoded constructs an engine from a transport-string modulus.
func NewFromEncoded(s string) (*Engine, error) {
	p, err := codec.Decode(s)
	if err != nil {
		return nil, err
	}
	return New(p)
}

// AddLock applies a party's lock: x^e mod p. The base must lie in [0, p)
// and the exponent must be a valid lock-key member for this modulus.
//
// The engine checks numeric range only. Callers exposing AddLock to
// untrusted input are responsible for any additional subgroup checks.
func (en *Engine) AddLock(x, e *big.Int) (*big.Int, error) {
	if err := en.checkElement(x); err != nil {
		return nil, err
	}
	if err := en.checkExponent(e); err != nil {
		return nil, err
	}
	return new(big.Int).Exp(x, e, en.p), nil
}

// RemoveLock reverses a party's lock: x^d mod p. The math is identical to
// AddLock; the names reflect the role the exponent plays, not the
// operation. RemoveLock(AddLock(x, e), d) == x for any pair returned by
// GenerateLockKeys.
func (en *Engine) RemoveLock(x, d *big.Int) (*big.Int, error) {
	if err := en.checkElement(x); err != nil {
		return nil, err
	}
	if err := en.checkExponent(d); err != nil {
		return nil, err
	}
	return new(big.Int).Exp(x, d, en.p), nil
}

// ValidateKeyPair checks that both exponents are in range for this modulus
// and satisfy the inverse relation e*d = 1 (mod p-1).
func (en *Engine) ValidateKeyPair(kp *shamir3pass.LockKeyPair) error {
	if kp == nil {
		return fmt.Errorf("lock: nil key pair: %w", shamir3pass.ErrInvalidKey)
	}
	if err := en.checkExponent(kp.E); err != nil {
		return err
	}
	if err := en.checkExponent(kp.D); err != nil {
		return err
	}
	prod := new(big.Int).Mul(kp.E, kp.D)
	prod.Mod(prod, en.order)
	if prod.Cmp(one) != 0 {
		return fmt.Errorf("lock: exponents are not inverses mod p-1: %w", shamir3pass.ErrInvalidKey)
	}
	return nil
}

// RandomElement returns a uniform random group element in [0, p), e.g. a
// fresh KEK to be protocol-locked.
func (en *Engine) RandomElement() (*big.Int, error) {
	r, err := utils.RandomBigIntBelow(en.p)
	if err != nil {
		return nil, fmt.Errorf("lock: element sampling: %v: %w", err, shamir3pass.ErrGeneration)
	}
	return r, nil
}

// Modulus returns a copy of the engine's modulus.
func (en *Engine) Modulus() *big.Int {
	return new(big.Int).Set(en.p)
}

// MinBits returns the minimum modulus bit length this engine was
// constructed with.
func (en *Engine) MinBits() int {
	return en.minBits
}

func (en *Engine) checkElement(x *big.Int) error {
	if x == nil || x.Sign() < 0 || x.Cmp(en.p) >= 0 {
		return fmt.Errorf("lock: value out of range [0, p): %w", shamir3pass.ErrInvalidKey)
	}
	return nil
}

func (en *Engine) checkExponent(e *big.Int) error {
	if e == nil || e.Cmp(one) <= 0 || e.Cmp(en.order) >= 0 {
		return fmt.Errorf("lock: exponent out of range (1, p-1): %w", shamir3pass.ErrInvalidKey)
	}
	return nil
}
