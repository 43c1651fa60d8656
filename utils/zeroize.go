package utils

import (
	"math/big"
	"runtime"
)

// Zeroize overwrites a byte slice with zeros.
// This is used to clear sensitive data from memory.
// Uses runtime.KeepAlive to prevent compiler optimization from eliminating
// the stores.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ZeroizeBig overwrites the internal words of a big integer with zeros and
// resets its value to zero. Best effort: earlier intermediate values the
// big-integer library allocated during arithmetic are not reachable.
func ZeroizeBig(n *big.Int) {
	if n == nil {
		return
	}
	words := n.Bits()
	for i := range words {
		words[i] = 0
	}
	runtime.KeepAlive(words)
	n.SetInt64(0)
}
