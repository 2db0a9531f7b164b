// Package bitstab explores the bit-level stability of a prime-indexed
// trigonometric product.
//
// # Overview
//
// The resonance cascade multiplies one trigonometric factor per prime:
//
//	R(z, p)  = sin(π/p) · cos(π/(2p)) · sin(π/p)
//	C_n(z)   = R(z, 2) · R(z, 3) · R(z, 5) · ... · R(z, p_n)
//
// bitstab measures how many leading bits of the IEEE-754 binary64
// encoding of C_n(z) stay fixed as n grows and as z is perturbed, and
// compares that with the empirical stability law
//
//	stable bits ≥ 64 - ⌊log₂(1/ε)⌋
//
// where ε is the output perturbation.
//
// # Quick Start
//
//	v, err := bitstab.CascadeProduct(0.5, 15)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(bitstab.Encode(v))
//
// Run both demonstrations with their default parameters:
//
//	e := bitstab.NewExplorer(bitstab.NewConsoleReporter(os.Stdout), slog.Default())
//	if err := e.RunDefaults(); err != nil {
//	    log.Fatal(err)
//	}
//
// Headless use records results instead of printing them:
//
//	rec := &bitstab.Recorder{}
//	e := bitstab.NewExplorer(rec, nil)
//	_, _ = e.SequenceExtension(bitstab.DefaultExtensionConfig())
//
// # Errors
//
// Failures are usage errors and are never retried:
//
//   - ErrInsufficientPrimes: cascade longer than the prime pool
//   - ErrEmptyInput:         common prefix of zero values
//   - ErrDomain:             negative ε, or any cascade length < 1
//                            (CascadeProduct, Series and every demo config)
//   - ErrInvalidRange:       scan range with nEnd < nStart, malformed bit string
//
// # Testing
//
//	func TestMyCascade(t *testing.T) {
//	    bitstab.AssertDeterministic(t, bitstab.NewCascade(), 0.5, 30, bitstab.DefaultAssertionConfig())
//	}
package bitstab
