package bitstab

import (
	"fmt"
	"log/slog"
	"math"
)

// ExtensionConfig controls the sequence extension demo.
type ExtensionConfig struct {
	Z      float64 // Input value
	NStart int     // First cascade length
	NEnd   int     // Last cascade length (inclusive)
}

// DefaultExtensionConfig returns z=0.5 scanned over n = 3..30.
func DefaultExtensionConfig() ExtensionConfig {
	return ExtensionConfig{
		Z:      0.5,
		NStart: 3,
		NEnd:   30,
	}
}

// Validate checks 1 <= NStart <= NEnd.
func (c ExtensionConfig) Validate() error {
	if c.NStart < 1 {
		return &DomainError{Op: "cascade length", Value: float64(c.NStart)}
	}
	if c.NEnd < c.NStart {
		return fmt.Errorf("extension range [%d, %d]: %w", c.NStart, c.NEnd, ErrInvalidRange)
	}
	return nil
}

// PerturbationConfig controls the input perturbation demo.
type PerturbationConfig struct {
	Z     float64 // Base input value
	N     int     // Cascade length
	Delta float64 // Input perturbation added to Z
}

// DefaultPerturbationConfig returns z=0.5, n=15, δ=1e-6.
func DefaultPerturbationConfig() PerturbationConfig {
	return PerturbationConfig{
		Z:     0.5,
		N:     15,
		Delta: 1e-6,
	}
}

// Validate checks N >= 1.
func (c PerturbationConfig) Validate() error {
	if c.N < 1 {
		return &DomainError{Op: "cascade length", Value: float64(c.N)}
	}
	return nil
}

// SweepConfig repeats the perturbation demo over several deltas.
type SweepConfig struct {
	Z      float64
	N      int
	Deltas []float64
}

// DefaultSweepConfig returns z=0.5, n=15 and δ from 1e-3 down to 1e-12.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Z:      0.5,
		N:      15,
		Deltas: []float64{1e-3, 1e-6, 1e-9, 1e-12},
	}
}

// Validate checks N >= 1 and at least one delta.
func (c SweepConfig) Validate() error {
	if c.N < 1 {
		return &DomainError{Op: "cascade length", Value: float64(c.N)}
	}
	if len(c.Deltas) == 0 {
		return fmt.Errorf("sweep deltas: %w", ErrEmptyInput)
	}
	return nil
}

// Sample is one point of a cascade scan.
type Sample struct {
	N     int
	Value float64
	Bits  BitString
}

// ExtensionResult holds everything the sequence extension demo reports.
type ExtensionResult struct {
	Config       ExtensionConfig
	Samples      []Sample // One per n, ascending
	PrefixLength int      // Common leading bits across all samples
}

// Values returns the sample values in scan order.
func (r ExtensionResult) Values() []float64 {
	values := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		values[i] = s.Value
	}
	return values
}

// PerturbationResult holds everything the input perturbation demo reports.
type PerturbationResult struct {
	Config          PerturbationConfig
	Base            float64 // C_n(z)
	Perturbed       float64 // C_n(z + δ)
	PrefixLength    int     // Common leading bits of Base and Perturbed
	HammingDistance int     // Differing bits of Base and Perturbed
	Difference      float64 // |Base - Perturbed|
	Predicted       int     // PredictStableBits(Difference)
	Law             LawCheck
}

// SweepResult holds one PerturbationResult per delta, in config order.
type SweepResult struct {
	Config SweepConfig
	Points []PerturbationResult
}

// Explorer runs the demonstrations and hands finished results to a Reporter.
// Every number of a demonstration is computed before its report call.
type Explorer struct {
	Cascade  *Cascade
	Reporter Reporter
	Logger   *slog.Logger
}

// NewExplorer creates an explorer over the default cascade.
// A nil reporter discards reports; a nil logger uses slog.Default().
func NewExplorer(reporter Reporter, logger *slog.Logger) *Explorer {
	return &Explorer{
		Cascade:  NewCascade(),
		Reporter: reporter,
		Logger:   logger,
	}
}

func (e *Explorer) cascade() *Cascade {
	if e.Cascade == nil {
		return NewCascade()
	}
	return e.Cascade
}

func (e *Explorer) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

func (e *Explorer) reporter() Reporter {
	if e.Reporter == nil {
		return Discard
	}
	return e.Reporter
}

// ComputeExtension evaluates C_n(z) for every n in range and the common
// bit prefix of the whole set. It has no side effects.
func (e *Explorer) ComputeExtension(cfg ExtensionConfig) (ExtensionResult, error) {
	if err := cfg.Validate(); err != nil {
		return ExtensionResult{}, err
	}

	series, err := e.cascade().Series(cfg.Z, cfg.NStart, cfg.NEnd)
	if err != nil {
		return ExtensionResult{}, fmt.Errorf("sequence extension: %w", err)
	}

	samples := make([]Sample, len(series))
	for i, v := range series {
		samples[i] = Sample{N: cfg.NStart + i, Value: v, Bits: Encode(v)}
	}

	prefix, err := CommonPrefixLength(series...)
	if err != nil {
		return ExtensionResult{}, fmt.Errorf("sequence extension: %w", err)
	}

	return ExtensionResult{
		Config:       cfg,
		Samples:      samples,
		PrefixLength: prefix,
	}, nil
}

// ComputePerturbation compares C_n(z) with C_n(z + δ). It has no side effects.
func (e *Explorer) ComputePerturbation(cfg PerturbationConfig) (PerturbationResult, error) {
	if err := cfg.Validate(); err != nil {
		return PerturbationResult{}, err
	}

	c := e.cascade()
	base, err := c.Product(cfg.Z, cfg.N)
	if err != nil {
		return PerturbationResult{}, fmt.Errorf("input perturbation: %w", err)
	}
	perturbed, err := c.Product(cfg.Z+cfg.Delta, cfg.N)
	if err != nil {
		return PerturbationResult{}, fmt.Errorf("input perturbation: %w", err)
	}

	prefix, err := CommonPrefixLength(base, perturbed)
	if err != nil {
		return PerturbationResult{}, fmt.Errorf("input perturbation: %w", err)
	}

	diff := math.Abs(base - perturbed)
	law, err := CheckLaw(prefix, diff)
	if err != nil {
		return PerturbationResult{}, fmt.Errorf("input perturbation: %w", err)
	}

	return PerturbationResult{
		Config:          cfg,
		Base:            base,
		Perturbed:       perturbed,
		PrefixLength:    prefix,
		HammingDistance: HammingDistance(base, perturbed),
		Difference:      diff,
		Predicted:       law.Predicted,
		Law:             law,
	}, nil
}

// ComputeSweep runs ComputePerturbation once per delta.
func (e *Explorer) ComputeSweep(cfg SweepConfig) (SweepResult, error) {
	if err := cfg.Validate(); err != nil {
		return SweepResult{}, err
	}

	points := make([]PerturbationResult, 0, len(cfg.Deltas))
	for _, delta := range cfg.Deltas {
		p, err := e.ComputePerturbation(PerturbationConfig{Z: cfg.Z, N: cfg.N, Delta: delta})
		if err != nil {
			return SweepResult{}, fmt.Errorf("sweep δ=%g: %w", delta, err)
		}
		points = append(points, p)
	}

	return SweepResult{Config: cfg, Points: points}, nil
}

// SequenceExtension computes and reports the sequence extension demo.
func (e *Explorer) SequenceExtension(cfg ExtensionConfig) (ExtensionResult, error) {
	res, err := e.ComputeExtension(cfg)
	if err != nil {
		return ExtensionResult{}, err
	}

	e.logger().Info("sequence extension computed",
		"z", cfg.Z,
		"n_start", cfg.NStart,
		"n_end", cfg.NEnd,
		"prefix_bits", res.PrefixLength)

	if err := e.reporter().ReportExtension(res); err != nil {
		return res, fmt.Errorf("report sequence extension: %w", err)
	}
	return res, nil
}

// InputPerturbation computes and reports the input perturbation demo.
func (e *Explorer) InputPerturbation(cfg PerturbationConfig) (PerturbationResult, error) {
	res, err := e.ComputePerturbation(cfg)
	if err != nil {
		return PerturbationResult{}, err
	}

	e.logger().Info("input perturbation computed",
		"z", cfg.Z,
		"n", cfg.N,
		"delta", cfg.Delta,
		"prefix_bits", res.PrefixLength,
		"hamming", res.HammingDistance,
		"predicted_bits", res.Predicted)

	if err := e.reporter().ReportPerturbation(res); err != nil {
		return res, fmt.Errorf("report input perturbation: %w", err)
	}
	return res, nil
}

// PerturbationSweep computes and reports a perturbation sweep.
func (e *Explorer) PerturbationSweep(cfg SweepConfig) (SweepResult, error) {
	res, err := e.ComputeSweep(cfg)
	if err != nil {
		return SweepResult{}, err
	}

	violations := 0
	for _, p := range res.Points {
		if !p.Law.Holds {
			violations++
		}
	}
	e.logger().Info("perturbation sweep computed",
		"z", cfg.Z,
		"n", cfg.N,
		"deltas", len(cfg.Deltas),
		"law_violations", violations)

	if err := e.reporter().ReportSweep(res); err != nil {
		return res, fmt.Errorf("report perturbation sweep: %w", err)
	}
	return res, nil
}

// RunDefaults runs the sequence extension and input perturbation demos
// with their default parameters, in that order.
func (e *Explorer) RunDefaults() error {
	if _, err := e.SequenceExtension(DefaultExtensionConfig()); err != nil {
		return err
	}
	if _, err := e.InputPerturbation(DefaultPerturbationConfig()); err != nil {
		return err
	}
	return nil
}
