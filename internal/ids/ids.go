// Package ids generates item identifiers for list-backed resume sections.
package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// Strategy names accepted by New
const (
	StrategyUUID    = "uuid"
	StrategyCounter = "counter"
)

// Generator produces item identifiers. Uniqueness is only required within one list;
// editors retry when a generated id is already taken.
type Generator interface {
	Next() string
}

// Counter is a deterministic Generator yielding prefix-1, prefix-2, ...
// It is not safe for concurrent use.
type Counter struct {
	prefix string
	n      int
}

// NewCounter creates a Counter. An empty prefix yields "item".
func NewCounter(prefix string) *Counter {
	if prefix == "" {
		prefix = "item"
	}
	return &Counter{prefix: prefix}
}

// Next returns the next identifier
func (c *Counter) Next() string {
	c.n++
	return fmt.Sprintf("%s-%d", c.prefix, c.n)
}

// UUID is a Generator backed by random (v4) UUIDs
type UUID struct{}

// Next returns a new random UUID string
func (UUID) Next() string {
	return uuid.NewString()
}

// New returns the generator for a named strategy: "uuid" (default) or "counter".
func New(strategy string) (Generator, error) {
	switch strategy {
	case "", StrategyUUID:
		return UUID{}, nil
	case StrategyCounter:
		return NewCounter("item"), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q (want uuid or counter)", strategy)
	}
}
