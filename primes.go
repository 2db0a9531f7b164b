package bitstab

import (
	"fmt"
	"sync"

	"github.com/fxtlabs/primes"
)

// DefaultPrimeBound is the exclusive sieve limit of the default pool.
// Primes below 10002 give 1229 entries, enough for every default demo.
const DefaultPrimeBound = 10002

// PrimeSource supplies the first n primes in ascending order.
// Implementations must return the same sequence for the same n.
type PrimeSource interface {
	FirstN(n int) ([]int, error)
}

// SievePool is a PrimeSource backed by the fxtlabs/primes sieve.
//
// The sieve runs once, on first use, and the pool is immutable afterwards.
type SievePool struct {
	bound  int
	once   sync.Once
	primes []int
}

// NewSievePool creates a pool holding every prime below bound.
func NewSievePool(bound int) *SievePool {
	return &SievePool{bound: bound}
}

var defaultPool = NewSievePool(DefaultPrimeBound)

// DefaultPrimes returns the process-wide pool used by CascadeProduct.
func DefaultPrimes() *SievePool {
	return defaultPool
}

func (s *SievePool) load() []int {
	s.once.Do(func() {
		s.primes = PrimesBelow(s.bound)
	})
	return s.primes
}

// Len returns the number of primes in the pool.
func (s *SievePool) Len() int {
	return len(s.load())
}

// Bound returns the exclusive upper limit of the sieve.
func (s *SievePool) Bound() int {
	return s.bound
}

// FirstN returns a copy of the n smallest primes.
func (s *SievePool) FirstN(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("first %d primes: %w", n, ErrInvalidRange)
	}

	pool := s.load()
	if n > len(pool) {
		return nil, &InsufficientPrimesError{Requested: n, Available: len(pool)}
	}

	out := make([]int, n)
	copy(out, pool[:n])
	return out, nil
}

// PrimesBelow returns all primes p with 2 <= p < bound, ascending.
func PrimesBelow(bound int) []int {
	if bound <= 2 {
		return []int{}
	}
	// primes.Sieve is inclusive of its limit.
	return primes.Sieve(bound - 1)
}
