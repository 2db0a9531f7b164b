package bitstab

import (
	"math"
	"testing"
)

// AssertionConfig contains thresholds for bit stability properties.
type AssertionConfig struct {
	// Repeat count for determinism checks
	Repeats int

	// Minimum common prefix a cascade scan must keep
	MinPrefix int
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Repeats:   8,
		MinPrefix: 0,
	}
}

// AssertDeterministic verifies C_n(z) is bit-identical across repeated calls.
func AssertDeterministic(t *testing.T, c *Cascade, z float64, n int, cfg AssertionConfig) {
	t.Helper()

	first, err := c.Product(z, n)
	if err != nil {
		t.Fatalf("C_%d(%g) failed: %v", n, z, err)
	}

	for i := 1; i < cfg.Repeats; i++ {
		v, err := c.Product(z, n)
		if err != nil {
			t.Fatalf("C_%d(%g) repeat %d failed: %v", n, z, i, err)
		}
		if math.Float64bits(v) != math.Float64bits(first) {
			t.Errorf("C_%d(%g) not deterministic: repeat %d gave %s, first gave %s",
				n, z, i, Encode(v), Encode(first))
			return
		}
	}

	t.Logf("✓ C_%d(%g) bit-identical over %d calls", n, z, cfg.Repeats)
}

// AssertPrefixMonotone verifies that growing a value set one element at a
// time never lengthens its common prefix.
func AssertPrefixMonotone(t *testing.T, values []float64) {
	t.Helper()

	if len(values) == 0 {
		t.Fatalf("no values to check")
	}

	prev := BitWidth
	for i := 1; i <= len(values); i++ {
		prefix, err := CommonPrefixLength(values[:i]...)
		if err != nil {
			t.Fatalf("prefix of first %d values: %v", i, err)
		}
		if prefix > prev {
			t.Errorf("prefix grew from %d to %d when adding value %d (%v)", prev, prefix, i, values[i-1])
		}
		prev = prefix
	}

	t.Logf("✓ Prefix monotone over %d values (final %d bits)", len(values), prev)
}

// AssertHammingSymmetric verifies bounds, symmetry and reflexivity of
// HammingDistance for one pair.
func AssertHammingSymmetric(t *testing.T, x, y float64) {
	t.Helper()

	d := HammingDistance(x, y)
	if d < 0 || d > BitWidth {
		t.Errorf("hamming(%v, %v) = %d outside [0, %d]", x, y, d, BitWidth)
	}
	if r := HammingDistance(y, x); r != d {
		t.Errorf("hamming not symmetric: (%v, %v) = %d, reversed = %d", x, y, d, r)
	}
	if s := HammingDistance(x, x); s != 0 {
		t.Errorf("hamming(%v, %v) = %d, want 0", x, x, s)
	}
}

// AssertLawHolds verifies the stability law's prediction for a perturbation
// result does not exceed the observed prefix.
func AssertLawHolds(t *testing.T, res PerturbationResult) {
	t.Helper()

	if !res.Law.Holds {
		t.Errorf("❌ %s", res.Law)
		return
	}
	t.Logf("✓ %s", res.Law)
}

// AssertStablePrefix verifies a sequence extension kept at least
// cfg.MinPrefix leading bits.
func AssertStablePrefix(t *testing.T, res ExtensionResult, cfg AssertionConfig) {
	t.Helper()

	if res.PrefixLength < cfg.MinPrefix {
		t.Errorf("❌ Prefix %d bits over n=%d..%d (min: %d)",
			res.PrefixLength, res.Config.NStart, res.Config.NEnd, cfg.MinPrefix)
		return
	}
	t.Logf("✓ Prefix %d bits over n=%d..%d", res.PrefixLength, res.Config.NStart, res.Config.NEnd)
}

// PrintStabilityReport outputs a sequence extension to the test log.
func PrintStabilityReport(t *testing.T, res ExtensionResult) {
	t.Helper()

	t.Logf("\n=== Bit Stability Report ===")
	t.Logf("z = %v, n = %d..%d", res.Config.Z, res.Config.NStart, res.Config.NEnd)
	t.Logf("Common prefix: %d bits", res.PrefixLength)
	t.Logf("  n    value                    sign exponent    mantissa")
	for _, s := range res.Samples {
		t.Logf("  %-4d %-24v %s", s.N, s.Value, s.Bits.Fields())
	}
}
