package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/strata/calib"
	"github.com/katalvlaran/strata/config"
	"github.com/katalvlaran/strata/dataio"
)

func (a *app) calibrateCmd() *cobra.Command {
	var (
		curvePath  string
		out        string
		age, sigma float64
		horizon    = config.Default().Horizon
	)

	c := &cobra.Command{
		Use:   "calibrate",
		Short: "Calibrate a single determination and write its density",
		RunE: func(cmd *cobra.Command, _ []string) error {
			curve, err := loadCurve(curvePath)
			if err != nil {
				return err
			}
			t, err := calib.Likelihood(age, sigma, horizon.Young, horizon.Old, curve)
			if err != nil {
				return err
			}
			a.logger.Debug("calibrated",
				zap.Float64("age", age), zap.Float64("error", sigma),
				zap.Float64("lo", t.Lo()), zap.Float64("hi", t.Hi()), zap.Int("points", t.Len()))

			return writeTo(cmd, out, func(w io.Writer) error { return dataio.WriteLikelihoodCSV(w, t) })
		},
	}

	fs := c.Flags()
	fs.StringVar(&curvePath, "curve", "", "calibration curve CSV (required)")
	fs.Float64Var(&age, "age", 0, "radiocarbon age BP (required)")
	fs.Float64Var(&sigma, "error", 0, "1-sigma measurement error (required)")
	fs.IntVar(&horizon.Young, "young", horizon.Young, "youngest year of the horizon (Cal BP)")
	fs.IntVar(&horizon.Old, "old", horizon.Old, "oldest year of the horizon, exclusive (Cal BP)")
	fs.StringVarP(&out, "out", "o", "-", "destination ('-' for stdout)")
	_ = c.MarkFlagRequired("curve")
	_ = c.MarkFlagRequired("age")
	_ = c.MarkFlagRequired("error")

	return c
}
