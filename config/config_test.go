package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strata/config"
	"github.com/katalvlaran/strata/mcmc"
)

func TestParse_Defaults(t *testing.T) {
	run, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), run)
	assert.Equal(t, mcmc.DefaultChainLength, run.ChainLength)
	assert.Equal(t, 1000, run.BurnIn)
	assert.Equal(t, 0.95, run.Level)
	assert.Equal(t, 0.01, run.Acceptance.Low)
	assert.Equal(t, 0.70, run.Acceptance.High)
	assert.Len(t, run.Options(), 4)
}

func TestParse_Overrides(t *testing.T) {
	run, err := config.Parse(strings.NewReader(`
horizon: {young: 2000, old: 4000}
chain_length: 5000
seed: 7
acceptance: {high: 0.8}
`))
	require.NoError(t, err)
	assert.Equal(t, config.Horizon{Young: 2000, Old: 4000}, run.Horizon)
	assert.Equal(t, 5000, run.ChainLength)
	assert.Equal(t, int64(7), run.Seed)
	assert.Equal(t, 0.01, run.Acceptance.Low, "unset nested keys keep defaults")
	assert.Equal(t, 0.8, run.Acceptance.High)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty horizon": "horizon: {young: 3000, old: 3000}",
		"no iterations": "chain_length: 0",
		"burn-in":       "chain_length: 100\nburn_in: 100",
		"level":         "level: 1.5",
		"acceptance":    "acceptance: {low: 0.5, high: 0.4}",
		"restarts":      "max_restarts: -1",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(src))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse(strings.NewReader("chain_lenght: 10"))
	assert.Error(t, err, "misspelt keys are rejected")
}

func TestLoad_ResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("curve: intcal.csv\nmodel: /abs/model.yaml\n"), 0o600))

	run, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "intcal.csv"), run.Curve)
	assert.Equal(t, "/abs/model.yaml", run.Model)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
