package main

import (
	"math/rand"
	"sync"
	"time"
)

// randSource is the slice of math/rand the synthesis engines draw from.
// It is injected at construction so tests can seed it and assert exact
// outputs.
type randSource interface {
	Float64() float64
	Intn(n int) int
}

// lockedSource guards a *rand.Rand with a mutex so one engine instance
// can be shared across concurrent gin handlers.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// newLockedSource seeds from the clock when seed is 0.
func newLockedSource(seed int64) *lockedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
