// SPDX-License-Identifier: MIT
// Package config: run file loading.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strata/mcmc"
)

// Defaults for settings a run file may omit.
const (
	DefaultBurnIn = 1000
	DefaultLevel  = 0.95
	DefaultYoung  = 0
	DefaultOld    = 50000
)

// Horizon is the working interval [Young, Old) in Cal BP.
type Horizon struct {
	Young int `yaml:"young"`
	Old   int `yaml:"old"`
}

// Acceptance bounds the per-parameter acceptance rate.
type Acceptance struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// Run is one complete set of run settings.
type Run struct {
	Curve       string     `yaml:"curve"`
	Model       string     `yaml:"model"`
	Horizon     Horizon    `yaml:"horizon"`
	ChainLength int        `yaml:"chain_length"`
	BurnIn      int        `yaml:"burn_in"`
	Level       float64    `yaml:"level"`
	Seed        int64      `yaml:"seed"`
	Acceptance  Acceptance `yaml:"acceptance"`
	MaxRestarts int        `yaml:"max_restarts"`
}

// Default returns the settings used when no run file is given.
func Default() Run {
	o := mcmc.DefaultOptions()

	return Run{
		Horizon:     Horizon{Young: DefaultYoung, Old: DefaultOld},
		ChainLength: o.ChainLength,
		BurnIn:      DefaultBurnIn,
		Level:       DefaultLevel,
		Seed:        o.Seed,
		Acceptance:  Acceptance{Low: o.AcceptLow, High: o.AcceptHigh},
		MaxRestarts: o.MaxRestarts,
	}
}

// Load reads a run file, applies it over Default and validates the result.
// Curve and Model paths are made relative to the file's directory.
func Load(path string) (Run, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("read run file: %w", err)
	}
	run, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return Run{}, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	run.Curve = resolve(dir, run.Curve)
	run.Model = resolve(dir, run.Model)

	return run, nil
}

// Parse decodes a run file from r over Default and validates it. An empty
// document yields Default.
func Parse(r io.Reader) (Run, error) {
	run := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&run); err != nil && !errors.Is(err, io.EOF) {
		return Run{}, fmt.Errorf("parse run file: %w", err)
	}
	if err := run.Validate(); err != nil {
		return Run{}, err
	}

	return run, nil
}

// Validate checks that the settings can drive a run. Input paths are not
// checked; the command reports missing files when it opens them.
func (r Run) Validate() error {
	switch {
	case r.Horizon.Young >= r.Horizon.Old:
		return fmt.Errorf("horizon [%d, %d) is empty: %w", r.Horizon.Young, r.Horizon.Old, ErrInvalid)
	case r.ChainLength < 1:
		return fmt.Errorf("chain_length %d: %w", r.ChainLength, ErrInvalid)
	case r.BurnIn < 0 || r.BurnIn >= r.ChainLength:
		return fmt.Errorf("burn_in %d with chain_length %d: %w", r.BurnIn, r.ChainLength, ErrInvalid)
	case !(r.Level > 0 && r.Level <= 1):
		return fmt.Errorf("level %v: %w", r.Level, ErrInvalid)
	case !(0 <= r.Acceptance.Low && r.Acceptance.Low < r.Acceptance.High && r.Acceptance.High <= 1):
		return fmt.Errorf("acceptance [%v, %v]: %w", r.Acceptance.Low, r.Acceptance.High, ErrInvalid)
	case r.MaxRestarts < 0:
		return fmt.Errorf("max_restarts %d: %w", r.MaxRestarts, ErrInvalid)
	}

	return nil
}

// Options translates the sampler settings into mcmc options.
func (r Run) Options() []mcmc.Option {
	return []mcmc.Option{
		mcmc.WithSeed(r.Seed),
		mcmc.WithChainLength(r.ChainLength),
		mcmc.WithAcceptanceBounds(r.Acceptance.Low, r.Acceptance.High),
		mcmc.WithMaxRestarts(r.MaxRestarts),
	}
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}
