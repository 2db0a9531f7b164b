package bitstab

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientPrimes is returned when a cascade asks for more primes
	// than the prime pool holds.
	ErrInsufficientPrimes = errors.New("insufficient primes")

	// ErrEmptyInput is returned by comparators that need at least one value.
	ErrEmptyInput = errors.New("empty input")

	// ErrDomain is returned when an argument lies outside a function's domain.
	ErrDomain = errors.New("domain error")

	// ErrInvalidRange is returned for malformed scan ranges and configs.
	ErrInvalidRange = errors.New("invalid range")
)

// InsufficientPrimesError reports how many primes were requested and how
// many the pool could supply.
type InsufficientPrimesError struct {
	Requested int
	Available int
}

func (e *InsufficientPrimesError) Error() string {
	return fmt.Sprintf("insufficient primes: requested %d, pool holds %d", e.Requested, e.Available)
}

func (e *InsufficientPrimesError) Unwrap() error { return ErrInsufficientPrimes }

// DomainError reports the operation and the offending argument.
type DomainError struct {
	Op    string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: argument %g outside domain", e.Op, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrDomain }
