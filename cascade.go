package bitstab

import (
	"fmt"
	"math"
)

// TermFunc maps an input value and a prime to one cascade factor.
type TermFunc func(z float64, p int) float64

// ResonanceTerm is the canonical resonance factor:
//
//	R(z, p) = sin(π/p) · cos(π/(2p)) · sin(π/p)
//
// z does not enter the formula. Every cascade value for a fixed n is
// therefore independent of z.
func ResonanceTerm(z float64, p int) float64 {
	fp := float64(p)
	return math.Sin(math.Pi/fp) * math.Cos(math.Pi/(2*fp)) * math.Sin(math.Pi/fp)
}

// Cascade evaluates running products of a term over ascending primes:
//
//	C_n(z) = Π_{k=1..n} R(z, p_k)
type Cascade struct {
	Primes PrimeSource
	Term   TermFunc
}

// NewCascade returns a cascade over the default prime pool and ResonanceTerm.
func NewCascade() *Cascade {
	return &Cascade{
		Primes: DefaultPrimes(),
		Term:   ResonanceTerm,
	}
}

func (c *Cascade) source() PrimeSource {
	if c.Primes == nil {
		return DefaultPrimes()
	}
	return c.Primes
}

func (c *Cascade) term() TermFunc {
	if c.Term == nil {
		return ResonanceTerm
	}
	return c.Term
}

// Product returns C_n(z). Factors are multiplied left to right in
// increasing prime order, so results are bit-reproducible.
func (c *Cascade) Product(z float64, n int) (float64, error) {
	if n < 1 {
		return 0, &DomainError{Op: "cascade length", Value: float64(n)}
	}

	primes, err := c.source().FirstN(n)
	if err != nil {
		return 0, fmt.Errorf("cascade C_%d(%g): %w", n, z, err)
	}

	f := c.term()
	product := 1.0
	for _, p := range primes {
		product *= f(z, p)
	}

	return product, nil
}

// Series returns C_n(z) for every n in [nStart, nEnd] in one pass.
// Element i holds C_{nStart+i}(z) and is bit-identical to Product(z, nStart+i).
func (c *Cascade) Series(z float64, nStart, nEnd int) ([]float64, error) {
	if nStart < 1 {
		return nil, &DomainError{Op: "cascade length", Value: float64(nStart)}
	}
	if nEnd < nStart {
		return nil, fmt.Errorf("cascade series [%d, %d]: %w", nStart, nEnd, ErrInvalidRange)
	}

	primes, err := c.source().FirstN(nEnd)
	if err != nil {
		return nil, fmt.Errorf("cascade series [%d, %d]: %w", nStart, nEnd, err)
	}

	f := c.term()
	series := make([]float64, 0, nEnd-nStart+1)
	product := 1.0
	for k, p := range primes {
		product *= f(z, p)
		if k+1 >= nStart {
			series = append(series, product)
		}
	}

	return series, nil
}

// CascadeProduct returns C_n(z) using the default cascade.
func CascadeProduct(z float64, n int) (float64, error) {
	return NewCascade().Product(z, n)
}
