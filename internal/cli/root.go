// Package cli wires the strata subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries what every subcommand shares.
type app struct {
	verbose bool
	logger  *zap.Logger
}

// Execute runs the strata command tree against os.Args and exits with
// status 1 on any error. Cobra has already printed the error by then.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree.
//
// Steps:
//  1. Start from a no-op logger so subcommands never see nil.
//  2. Before any subcommand runs, build a production zap logger, switched
//     to debug level by --verbose.
//  3. After it returns, flush the logger.
//  4. Register run, calibrate and check.
func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "strata",
		Short: "Bayesian dating of stratified radiocarbon sequences",
		Long: `strata calibrates radiocarbon determinations against a calibration curve
and samples the joint posterior of context dates and phase boundaries
under the stratigraphic order of an excavation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log chain progress at debug level")
	cmd.AddCommand(a.runCmd(), a.calibrateCmd(), a.checkCmd())

	return cmd
}
