package testutil

import (
	"fmt"
	"sync"
)

// FixedIDGenerator returns order ids from a deterministic sequence.
//
// This enables deterministic test execution and golden snapshot
// comparison: the same scenario always produces byte-identical order
// records. Implements checkout.IDGenerator.
//
// Thread-safety: safe for concurrent use via internal mutex.
type FixedIDGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewFixedIDGenerator creates a generator producing
// "<prefix>-0001", "<prefix>-0002", ...
//
// If prefix is empty, "test-order" is used.
func NewFixedIDGenerator(prefix string) *FixedIDGenerator {
	if prefix == "" {
		prefix = "test-order"
	}
	return &FixedIDGenerator{prefix: prefix}
}

// Generate returns the next id in the sequence.
func (g *FixedIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}

// Reset restarts the sequence. After Reset, the next Generate returns
// "<prefix>-0001" again.
func (g *FixedIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n = 0
}
