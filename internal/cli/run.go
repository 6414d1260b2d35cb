package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/strata/config"
	"github.com/katalvlaran/strata/dataio"
	"github.com/katalvlaran/strata/hpd"
	"github.com/katalvlaran/strata/mcmc"
)

type runFlags struct {
	config     string
	hpdOut     string
	samplesOut string
	moves      bool
	diagnose   bool
	binWidth   float64
	run        config.Run
}

func (a *app) runCmd() *cobra.Command {
	f := runFlags{run: config.Default()}

	c := &cobra.Command{
		Use:   "run",
		Short: "Sample the posterior of a model and write its HPD table",
		Long: `Loads the curve and the model, runs the sampler (restarting on poor mixing)
and writes the HPD intervals of every context date and phase boundary.

Flags override the values of --config.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := f.settings(cmd)
			if err != nil {
				return err
			}

			return a.execute(cmd, f, run)
		},
	}

	fs := c.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "run file (YAML)")
	fs.StringVar(&f.run.Curve, "curve", "", "calibration curve CSV")
	fs.StringVarP(&f.run.Model, "model", "m", "", "model YAML")
	fs.IntVar(&f.run.Horizon.Young, "young", f.run.Horizon.Young, "youngest year of the horizon (Cal BP)")
	fs.IntVar(&f.run.Horizon.Old, "old", f.run.Horizon.Old, "oldest year of the horizon, exclusive (Cal BP)")
	fs.IntVarP(&f.run.ChainLength, "iterations", "n", f.run.ChainLength, "chain length")
	fs.IntVar(&f.run.BurnIn, "burn-in", f.run.BurnIn, "iterations discarded before the HPD")
	fs.Float64Var(&f.run.Level, "level", f.run.Level, "HPD probability level")
	fs.Int64Var(&f.run.Seed, "seed", f.run.Seed, "random seed")
	fs.Float64Var(&f.run.Acceptance.Low, "accept-low", f.run.Acceptance.Low, "lowest acceptable acceptance rate")
	fs.Float64Var(&f.run.Acceptance.High, "accept-high", f.run.Acceptance.High, "highest acceptable acceptance rate")
	fs.IntVar(&f.run.MaxRestarts, "max-restarts", f.run.MaxRestarts, "restarts allowed on poor mixing")
	fs.Float64Var(&f.binWidth, "bin-width", hpd.DefaultBinWidth, "HPD histogram bin width in years")
	fs.StringVarP(&f.hpdOut, "out", "o", "-", "HPD table destination ('-' for stdout)")
	fs.StringVar(&f.samplesOut, "samples", "", "also write the sample histories to this CSV")
	fs.BoolVar(&f.moves, "moves", false, "write per-move instead of per-iteration samples")
	fs.BoolVar(&f.diagnose, "diagnose", false, "run two chains and report the Gelman-Rubin statistic")

	return c
}

// settings merges the run file with explicitly set flags.
func (f *runFlags) settings(cmd *cobra.Command) (config.Run, error) {
	if f.config == "" {
		if err := f.run.Validate(); err != nil {
			return config.Run{}, err
		}
		return f.run, nil
	}

	run, err := config.Load(f.config)
	if err != nil {
		return config.Run{}, err
	}
	set := cmd.Flags().Changed
	if set("curve") {
		run.Curve = f.run.Curve
	}
	if set("model") {
		run.Model = f.run.Model
	}
	if set("young") {
		run.Horizon.Young = f.run.Horizon.Young
	}
	if set("old") {
		run.Horizon.Old = f.run.Horizon.Old
	}
	if set("iterations") {
		run.ChainLength = f.run.ChainLength
	}
	if set("burn-in") {
		run.BurnIn = f.run.BurnIn
	}
	if set("level") {
		run.Level = f.run.Level
	}
	if set("seed") {
		run.Seed = f.run.Seed
	}
	if set("accept-low") {
		run.Acceptance.Low = f.run.Acceptance.Low
	}
	if set("accept-high") {
		run.Acceptance.High = f.run.Acceptance.High
	}
	if set("max-restarts") {
		run.MaxRestarts = f.run.MaxRestarts
	}

	return run, run.Validate()
}

// execute performs one run.
//
// Steps:
//  1. Require a curve and a model and a positive bin width (config.ErrInvalid).
//  2. Load both inputs.
//  3. Build the sampler from the run settings plus logging and progress
//     options; per-move histories are kept only when --moves will write them.
//  4. Sample once, or run two chains under --diagnose and report R-hat on
//     stderr, continuing with the first chain.
//  5. Write the HPD table, then the sample histories if requested.
func (a *app) execute(cmd *cobra.Command, f runFlags, run config.Run) error {
	if run.Curve == "" || run.Model == "" {
		return fmt.Errorf("both a curve and a model are required: %w", config.ErrInvalid)
	}
	if !(f.binWidth > 0) {
		return fmt.Errorf("bin width %v: %w", f.binWidth, config.ErrInvalid)
	}
	curve, err := loadCurve(run.Curve)
	if err != nil {
		return err
	}
	m, err := loadModel(run.Model)
	if err != nil {
		return err
	}

	opts := append(run.Options(),
		mcmc.WithLogger(a.logger),
		mcmc.WithProgress(mcmc.DefaultProgressEvery, func(p mcmc.Progress) {
			a.logger.Debug("progress",
				zap.Int("attempt", p.Attempt), zap.Int("iteration", p.Iteration), zap.Int("length", p.Length))
		}),
	)
	if f.samplesOut == "" || !f.moves {
		opts = append(opts, mcmc.WithoutMoveHistory())
	}
	s, err := mcmc.NewSampler(m, curve, run.Horizon.Young, run.Horizon.Old, opts...)
	if err != nil {
		return err
	}

	var res *mcmc.Result
	if f.diagnose {
		d, err := s.Diagnose()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "R-hat: max %.4f (%s), converged %t\n", d.MaxRHat, d.Worst, d.Converged)
		res = d.Chains[0]
	} else if res, err = s.Run(); err != nil {
		return err
	}

	rows, err := res.HPD(run.BurnIn, run.Level, hpd.WithBinWidth(f.binWidth))
	if err != nil {
		return err
	}
	if err := writeTo(cmd, f.hpdOut, func(w io.Writer) error { return dataio.WriteHPDCSV(w, rows) }); err != nil {
		return err
	}
	if f.samplesOut != "" {
		return writeTo(cmd, f.samplesOut, func(w io.Writer) error {
			return dataio.WriteSamplesCSV(w, res, !f.moves)
		})
	}

	return nil
}
