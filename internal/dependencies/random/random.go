package random

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// Random supplies pool shuffles and session IDs
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// UUID returns a new random identifier in canonical UUID form
	UUID() string
}

// CryptoRandom draws from crypto/rand so session IDs cannot be guessed
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a uniformly random int in [0, n), or 0 when n <= 0
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails if the OS source is broken
		panic(err)
	}
	return int(v.Int64())
}

// UUID returns a version 4 UUID string
func (r *CryptoRandom) UUID() string {
	return uuid.NewString()
}
