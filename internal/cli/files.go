package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strata/calib"
	"github.com/katalvlaran/strata/dataio"
	"github.com/katalvlaran/strata/model"
)

func loadCurve(path string) (*calib.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curve: %w", err)
	}
	defer f.Close()

	c, err := dataio.ReadCurveCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

func loadModel(path string) (*model.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer f.Close()

	m, err := dataio.ReadModelYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// writeTo runs fn against path, or against the command's stdout for "-".
func writeTo(cmd *cobra.Command, path string, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
