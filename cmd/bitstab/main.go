// Command bitstab runs the bit stability demonstrations with their
// default parameters.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alexshd/bitstab"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}),
	))
}

func main() {
	if err := newRootCmd(os.Stdout, slog.Default()).Execute(); err != nil {
		slog.Error("bitstab failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer, logger *slog.Logger) *cobra.Command {
	explorer := bitstab.NewExplorer(bitstab.NewConsoleReporter(out), logger)

	root := &cobra.Command{
		Use:   "bitstab",
		Short: "Bitwise stability of the prime resonance cascade",
		Long: `Run the sequence extension demo (z=0.5, n=3..30) followed by the
input perturbation demo (z=0.5, n=15, delta=1e-6).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return explorer.RunDefaults()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "extension",
			Short: "Common bit prefix of C_n(z) for n = 3..30",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := explorer.SequenceExtension(bitstab.DefaultExtensionConfig())
				return err
			},
		},
		&cobra.Command{
			Use:   "perturbation",
			Short: "Compare C_15(0.5) with C_15(0.5 + 1e-6)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := explorer.InputPerturbation(bitstab.DefaultPerturbationConfig())
				return err
			},
		},
		&cobra.Command{
			Use:   "sweep",
			Short: "Check the stability law for delta = 1e-3 .. 1e-12",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := explorer.PerturbationSweep(bitstab.DefaultSweepConfig())
				return err
			},
		},
	)

	return root
}
