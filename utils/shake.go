package utils

import (
	"sync"

	"golang.org/x/crypto/sha3"
)

var shake256Pool = sync.Pool{
	New: func() interface{} {
		return sha3.NewShake256()
	},
}

// Shake256WithDomain computes the SHAKE256 extendable output function with
// domain separation. The data is prefixed with the length of the domain
// string and the domain string itself, preventing collisions between
// different uses of the function. Panics if domain is longer than 255 bytes.
func Shake256WithDomain(domain string, data []byte, outputLen int) []byte {
	domainBytes := []byte(domain)
	if len(domainBytes) > 255 {
		panic("domain string must be at most 255 bytes")
	}

	h := shake256Pool.Get().(sha3.ShakeHash)
	defer func() {
		h.Reset()
		shake256Pool.Put(h)
	}()

	h.Write([]byte{byte(len(domainBytes))})
	h.Write(domainBytes)
	h.Write(data)
	output := make([]byte, outputLen)
	_, _ = h.Read(output)
	return output
}

// SHA3256 computes the SHA3-256 cryptographic hash of the input.
// It returns a 32-byte hash.
func SHA3256(input []byte) []byte {
	h := sha3.New256()
	h.Write(input)
	return h.Sum(nil)
}
