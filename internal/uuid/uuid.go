// Package uuid puts ID generation behind an interface so services can
// take a deterministic generator in tests.
package uuid

import "github.com/google/uuid"

// Generator produces unique string IDs.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator is the default Generator, producing random v4
// UUIDs.
type GoogleUUIDGenerator struct{}

var _ Generator = (*GoogleUUIDGenerator)(nil)

// NewGoogleUUIDGenerator creates the default generator.
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// New returns a fresh random UUID string.
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}
