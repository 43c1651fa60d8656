package lock

import (
	"errors"
	"math/big"
	"testing"

	shamir3pass "github.com/BackendStack21/shamir3pass-go"
	"github.com/BackendStack21/shamir3pass-go/codec"
	"github.com/BackendStack21/shamir3pass-go/group"
	"github.com/BackendStack21/shamir3pass-go/utils"
)

func testEngine(t *testing.T, bits int) *Engine {
	t.Helper()
	p, err := group.Generate(bits)
	if err != nil {
		t.Fatalf("Generate(%d) failed: %v", bits, err)
	}
	en, err := NewWithMinBits(p, bits)
	if err != nil {
		t.Fatalf("NewWithMinBits failed: %v", err)
	}
	return en
}

func TestNew_RejectsSmallModulus(t *testing.T) {
	p, err := group.Generate(128)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := New(p); !errors.Is(err, shamir3pass.ErrInvalidModulus) {
		t.Errorf("New(128-bit) below default floor: got %v, want ErrInvalidModulus", err)
	}
	if _, err := NewWithMinBits(p, 128); err != nil {
		t.Errorf("NewWithMinBits(128-bit, 128) failed: %v", err)
	}
}

func TestNew_RejectsTinyGroup(t *testing.T) {
	for _, p := range []int64{1, 2, 3} {
		if _, err := NewWithMinBits(big.NewInt(p), 1); !errors.Is(err, shamir3pass.ErrInvalidModulus) {
			t.Errorf("NewWithMinBits(%d): got %v, want ErrInvalidModulus", p, err)
		}
	}
	// The smallest workable group.
	if _, err := NewWithMinBits(big.NewInt(5), 1); err != nil {
		t.Errorf("NewWithMinBits(5) failed: %v", err)
	}
}

func TestNewFromEncoded(t *testing.T) {
	p, err := group.Generate(256)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	s, err := codec.Encode(p)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	en, err := NewFromEncoded(s)
	if err != nil {
		t.Fatalf("NewFromEncoded failed: %v", err)
	}
	if en.Modulus().Cmp(p) != 0 {
		t.Error("NewFromEncoded modulus mismatch")
	}

	if _, err := NewFromEncoded("not!valid"); !errors.Is(err, shamir3pass.ErrEncoding) {
		t.Errorf("NewFromEncoded(malformed): got %v, want ErrEncoding", err)
	}
}

func TestGenerateLockKeys_Bounds(t *testing.T) {
	en := testEngine(t, 64)
	pMinusOne := new(big.Int).Sub(en.Modulus(), big.NewInt(1))
	gcd := new(big.Int)

	for i := 0; i < 100; i++ {
		kp, err := en.GenerateLockKeys()
		if err != nil {
			t.Fatalf("GenerateLockKeys failed: %v", err)
		}
		// e must never be 0, 1, or p-1.
		if kp.E.Cmp(big.NewInt(2)) < 0 || kp.E.Cmp(pMinusOne) >= 0 {
			t.Fatalf("e = %v out of [2, p-2]", kp.E)
		}
		if gcd.GCD(nil, nil, kp.E, pMinusOne).Cmp(big.NewInt(1)) != 0 {
			t.Fatalf("gcd(e, p-1) = %v, want 1", gcd)
		}
		if err := en.ValidateKeyPair(kp); err != nil {
			t.Fatalf("generated pair failed validation: %v", err)
		}
	}
}

func TestCommutativity(t *testing.T) {
	en := testEngine(t, 512)

	kp1, err := en.GenerateLockKeys()
	if err != nil {
		t.Fatalf("GenerateLockKeys failed: %v", err)
	}
	kp2, err := en.GenerateLockKeys()
	if err != nil {
		t.Fatalf("GenerateLockKeys failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		x, err := en.RandomElement()
		if err != nil {
			t.Fatalf("RandomElement failed: %v", err)
		}

		a, err := en.AddLock(x, kp1.E)
		if err != nil {
			t.Fatalf("AddLock failed: %v", err)
		}
		ab, err := en.AddLock(a, kp2.E)
		if err != nil {
			t.Fatalf("AddLock failed: %v", err)
		}

		b, err := en.AddLock(x, kp2.E)
		if err != nil {
			t.Fatalf("AddLock failed: %v", err)
		}
		ba, err := en.AddLock(b, kp1.E)
		if err != nil {
			t.Fatalf("AddLock failed: %v", err)
		}

		if ab.Cmp(ba) != 0 {
			t.Fatal("lock order changed the result")
		}
	}
}

func TestInverse(t *testing.T) {
	en := testEngine(t, 512)
	kp, err := en.GenerateLockKeys()
	if err != nil {
		t.Fatalf("GenerateLockKeys failed: %v", err)
	}

	pMinusOne := new(big.Int).Sub(en.Modulus(), big.NewInt(1))
	values := []*big.Int{big.NewInt(0), big.NewInt(1), big.NewInt(2), pMinusOne}
	for i := 0; i < 10; i++ {
		x, err := en.RandomElement()
		if err != nil {
			t.Fatalf("RandomElement failed: %v", err)
		}
		values = append(values, x)
	}

	for _, x := range values {
		locked, err := en.AddLock(x, kp.E)
		if err != nil {
			t.Fatalf("AddLock(%v) failed: %v", x, err)
		}
		unlocked, err := en.RemoveLock(locked, kp.D)
		if err != nil {
			t.Fatalf("RemoveLock failed: %v", err)
		}
		if unlocked.Cmp(x) != 0 {
			t.Fatalf("RemoveLock(AddLock(x)) = %v, want %v", unlocked, x)
		}
	}
}

func TestAddLock_RangeChecks(t *testing.T) {
	en := testEngine(t, 64)
	kp, err := en.GenerateLockKeys()
	if err != nil {
		t.Fatalf("GenerateLockKeys failed: %v", err)
	}
	p := en.Modulus()
	pMinusOne := new(big.Int).Sub(p, big.NewInt(1))

	// Out-of-range base values.
	for _, x := range []*big.Int{nil, big.NewInt(-1), p, new(big.Int).Add(p, big.NewInt(7))} {
		if _, err := en.AddLock(x, kp.E); !errors.Is(err, shamir3pass.ErrInvalidKey) {
			t.Errorf("AddLock(x=%v): got %v, want ErrInvalidKey", x, err)
		}
	}

	// Out-of-range exponents.
	for _, e := range []*big.Int{nil, big.NewInt(0), big.NewInt(1), pMinusOne, p} {
		if _, err := en.AddLock(big.NewInt(2), e); !errors.Is(err, shamir3pass.ErrInvalidKey) {
			t.Errorf("AddLock(e=%v): got %v, want ErrInvalidKey", e, err)
		}
		if _, err := en.RemoveLock(big.NewInt(2), e); !errors.Is(err, shamir3pass.ErrInvalidKey) {
			t.Errorf("RemoveLock(d=%v): got %v, want ErrInvalidKey", e, err)
		}
	}
}

func TestValidateKeyPair(t *testing.T) {
	en := testEngine(t, 64)
	kp, err := en.GenerateLockKeys()
	if err != nil {
		t.Fatalf("GenerateLockKeys failed: %v", err)
	}

	if err := en.ValidateKeyPair(kp); err != nil {
		t.Errorf("valid pair rejected: %v", err)
	}
	if err := en.ValidateKeyPair(nil); !errors.Is(err, shamir3pass.ErrInvalidKey) {
		t.Errorf("ValidateKeyPair(nil): got %v, want ErrInvalidKey", err)
	}

	// Break the inverse relation.
	bad := &shamir3pass.LockKeyPair{E: kp.E, D: new(big.Int).Add(kp.D, big.NewInt(1))}
	if err := en.ValidateKeyPair(bad); !errors.Is(err, shamir3pass.ErrInvalidKey) {
		t.Errorf("broken pair: got %v, want ErrInvalidKey", err)
	}

	// A pair generated against a different modulus must not validate
	// against this one (except with negligible probability).
	other := testEngine(t, 64)
	otherKP, err := other.GenerateLockKeys()
	if err != nil {
		t.Fatalf("GenerateLockKeys failed: %v", err)
	}
	if err := en.ValidateKeyPair(otherKP); err == nil {
		t.Skip("foreign pair happened to validate; statistically possible")
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestGenerateLockKeys_RandomSourceFailure(t *testing.T) {
	en := testEngine(t, 64)

	orig := utils.RandReader
	utils.RandReader = failReader{}
	defer func() { utils.RandReader = orig }()

	if _, err := en.GenerateLockKeys(); !errors.Is(err, shamir3pass.ErrGeneration) {
		t.Errorf("GenerateLockKeys with failing source: got %v, want ErrGeneration", err)
	}
	if _, err := en.RandomElement(); !errors.Is(err, shamir3pass.ErrGeneration) {
		t.Errorf("RandomElement with failing source: got %v, want ErrGeneration", err)
	}
}

func TestEngine_Immutable(t *testing.T) {
	p, err := group.Generate(64)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	en, err := NewWithMinBits(p, 64)
	if err != nil {
		t.Fatalf("NewWithMinBits failed: %v", err)
	}

	// Mutating the caller's p or the returned modulus must not affect the
	// engine.
	p.SetInt64(7)
	m := en.Modulus()
	m.SetInt64(9)
	if en.Modulus().Cmp(big.NewInt(9)) == 0 || en.Modulus().Cmp(big.NewInt(7)) == 0 {
		t.Error("engine modulus aliased caller memory")
	}
}
