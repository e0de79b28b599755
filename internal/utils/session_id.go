package utils

import (
	"math/rand/v2"

	"github.com/MKhiriev/go-face-register/models"
)

const (
	sessionIDMin  = -32768
	sessionIDSpan = 65535 // results fall in [-32768, 32767)
)

// SessionIDGenerator produces upload session identifiers. It is not
// cryptographically secure and collisions between sessions are possible.
type SessionIDGenerator struct {
	intN func(n int) int
}

// NewSessionIDGenerator returns a generator backed by the global
// math/rand/v2 source.
func NewSessionIDGenerator() *SessionIDGenerator {
	return &SessionIDGenerator{intN: rand.IntN}
}

// NewSeededSessionIDGenerator returns a deterministic generator, useful in
// tests.
func NewSeededSessionIDGenerator(seed1, seed2 uint64) *SessionIDGenerator {
	r := rand.New(rand.NewPCG(seed1, seed2))
	return &SessionIDGenerator{intN: r.IntN}
}

// Generate returns one identifier in [-32768, 32767).
func (g *SessionIDGenerator) Generate() models.SessionID {
	return models.SessionID(g.intN(sessionIDSpan) + sessionIDMin)
}
