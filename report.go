package bitstab

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Reporter consumes finished demonstration results. The numeric core only
// hands over plain data, so any target (console, file, test harness) fits.
type Reporter interface {
	ReportExtension(ExtensionResult) error
	ReportPerturbation(PerturbationResult) error
	ReportSweep(SweepResult) error
}

type discard struct{}

func (discard) ReportExtension(ExtensionResult) error       { return nil }
func (discard) ReportPerturbation(PerturbationResult) error { return nil }
func (discard) ReportSweep(SweepResult) error               { return nil }

// Discard is a Reporter that drops everything.
var Discard Reporter = discard{}

// Recorder keeps every report in memory, in arrival order.
type Recorder struct {
	Extensions    []ExtensionResult
	Perturbations []PerturbationResult
	Sweeps        []SweepResult
}

func (r *Recorder) ReportExtension(res ExtensionResult) error {
	r.Extensions = append(r.Extensions, res)
	return nil
}

func (r *Recorder) ReportPerturbation(res PerturbationResult) error {
	r.Perturbations = append(r.Perturbations, res)
	return nil
}

func (r *Recorder) ReportSweep(res SweepResult) error {
	r.Sweeps = append(r.Sweeps, res)
	return nil
}

// ConsoleReporter prints human-readable summaries and a log-scale plot.
type ConsoleReporter struct {
	out     io.Writer
	plot    PlotOptions
	heading lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
}

// NewConsoleReporter writes to out. Colour is chosen from out's terminal
// capabilities, so buffers and pipes get plain text.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	r := lipgloss.NewRenderer(out)
	return &ConsoleReporter{
		out:     out,
		plot:    DefaultPlotOptions(),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		good:    r.NewStyle().Foreground(lipgloss.Color("10")),
		bad:     r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// WithPlotOptions replaces the plot settings.
func (c *ConsoleReporter) WithPlotOptions(opts PlotOptions) *ConsoleReporter {
	c.plot = opts
	return c
}

func (c *ConsoleReporter) verdict(law LawCheck) string {
	if law.Holds {
		return c.good.Render("✓ " + law.String())
	}
	return c.bad.Render("✗ " + law.String())
}

// ReportExtension prints the prefix length, every sample and the plot.
func (c *ConsoleReporter) ReportExtension(res ExtensionResult) error {
	var b strings.Builder

	fmt.Fprintln(&b, c.heading.Render("=== Bitwise Stability: Sequence Extension Demo ==="))
	fmt.Fprintf(&b, "Common bit prefix for Cn(z) as n goes from %d to %d: %d bits\n",
		res.Config.NStart, res.Config.NEnd, res.PrefixLength)
	for _, s := range res.Samples {
		fmt.Fprintf(&b, "n=%d, Cn(z)=%v, bits=%s\n", s.N, s.Value, s.Bits)
	}
	fmt.Fprintln(&b)

	if _, err := io.WriteString(c.out, b.String()); err != nil {
		return err
	}
	return RenderLogPlot(c.out, PointsFromSamples(res.Samples), c.plot)
}

// ReportPerturbation prints the base/perturbed comparison.
func (c *ConsoleReporter) ReportPerturbation(res PerturbationResult) error {
	var b strings.Builder

	fmt.Fprintln(&b, c.heading.Render("=== Bitwise Stability: Input Perturbation Demo ==="))
	fmt.Fprintf(&b, "Base: %v, Perturbed: %v\n", res.Base, res.Perturbed)
	fmt.Fprintf(&b, "Common bit prefix: %d bits\n", res.PrefixLength)
	fmt.Fprintf(&b, "Hamming distance: %d\n", res.HammingDistance)
	fmt.Fprintf(&b, "Difference: %v\n", res.Difference)
	fmt.Fprintf(&b, "Empirical law predicts ≥ %d stable bits\n", res.Predicted)
	fmt.Fprintln(&b, c.verdict(res.Law))

	_, err := io.WriteString(c.out, b.String())
	return err
}

// ReportSweep prints one table row per delta.
func (c *ConsoleReporter) ReportSweep(res SweepResult) error {
	var b strings.Builder

	fmt.Fprintln(&b, c.heading.Render("=== Bitwise Stability: Perturbation Sweep ==="))
	fmt.Fprintf(&b, "z=%v, n=%d\n", res.Config.Z, res.Config.N)
	fmt.Fprintf(&b, "  %-10s %-8s %-8s %-12s %-10s %s\n", "delta", "prefix", "hamming", "difference", "predicted", "law")
	fmt.Fprintf(&b, "  %-10s %-8s %-8s %-12s %-10s %s\n", "-----", "------", "-------", "----------", "---------", "---")
	for _, p := range res.Points {
		law := c.good.Render("holds")
		if !p.Law.Holds {
			law = c.bad.Render("violated")
		}
		fmt.Fprintf(&b, "  %-10g %-8d %-8d %-12g %-10d %s\n",
			p.Config.Delta, p.PrefixLength, p.HammingDistance, p.Difference, p.Predicted, law)
	}

	_, err := io.WriteString(c.out, b.String())
	return err
}
