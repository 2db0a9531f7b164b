package bitstab

import (
	"fmt"
	"math"
)

// PredictStableBits is the empirical stability law: given an output
// perturbation of size epsilon, at least
//
//	64 - ⌊log₂(1/ε)⌋
//
// leading bits are expected to survive. ε = 0 predicts all 64 bits.
//
// The result is a heuristic bound, not clamped to [0, 64]: large ε give
// values above 64 and tiny ε give negative values.
//
// Negative, NaN and infinite ε lie outside the law's domain, as does an ε
// so small that 1/ε overflows.
func PredictStableBits(epsilon float64) (int, error) {
	if epsilon < 0 || math.IsNaN(epsilon) || math.IsInf(epsilon, 0) {
		return 0, &DomainError{Op: "predict stable bits", Value: epsilon}
	}
	if epsilon == 0 {
		return BitWidth, nil
	}

	inv := 1 / epsilon
	if math.IsInf(inv, 0) {
		return 0, &DomainError{Op: "predict stable bits", Value: epsilon}
	}

	return BitWidth - int(math.Floor(math.Log2(inv))), nil
}

// LawCheck compares an observed common prefix against the law's prediction.
type LawCheck struct {
	Epsilon   float64 // Output perturbation |a - b|
	Observed  int     // Measured common leading bits
	Predicted int     // PredictStableBits(Epsilon)
	Headroom  int     // Observed - Predicted
	Holds     bool    // Observed >= Predicted
}

// CheckLaw evaluates the stability law for one observation.
func CheckLaw(observed int, epsilon float64) (LawCheck, error) {
	if observed < 0 || observed > BitWidth {
		return LawCheck{}, fmt.Errorf("observed prefix %d outside [0, %d]: %w", observed, BitWidth, ErrInvalidRange)
	}

	predicted, err := PredictStableBits(epsilon)
	if err != nil {
		return LawCheck{}, fmt.Errorf("check law: %w", err)
	}

	return LawCheck{
		Epsilon:   epsilon,
		Observed:  observed,
		Predicted: predicted,
		Headroom:  observed - predicted,
		Holds:     observed >= predicted,
	}, nil
}

// String renders the verdict in one line.
func (c LawCheck) String() string {
	verdict := "holds"
	if !c.Holds {
		verdict = "violated"
	}
	return fmt.Sprintf("law %s: observed %d bits, predicted ≥ %d (headroom %+d, ε=%g)",
		verdict, c.Observed, c.Predicted, c.Headroom, c.Epsilon)
}
