// SPDX-License-Identifier: MIT
// Package mcmc: chain driver and convergence monitor.

package mcmc

import (
	"errors"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/strata/model"
)

// Run samples the posterior.
//
// Implementation:
//   - Stage 1: draw an initial state and evaluate the joint posterior.
//   - Stage 2: iterate ChainLength times; each iteration runs the date,
//     boundary, shift and scale moves in that order and records every
//     parameter after each move and after the iteration.
//   - Stage 3: check every parameter's acceptance rate against
//     [AcceptLow, AcceptHigh]. A rate at or beyond a bound (or a failed
//     initial state) discards the chain and restarts on a fresh stream.
//
// Each attempt k draws from deriveSeed(Seed, k), so runs are reproducible.
//
// Errors: *ConvergenceError (matching ErrNotConverged) once MaxRestarts
// restarts have failed.
//
// Complexity: O(ChainLength · N · deg) time, O(ChainLength · (N+K)) memory.
func (s *Sampler) Run() (*Result, error) {
	return s.run(s.opts.Seed)
}

func (s *Sampler) run(seed int64) (*Result, error) {
	var last *ConvergenceError
	for attempt := 0; attempt <= s.opts.MaxRestarts; attempt++ {
		streamSeed := deriveSeed(seed, uint64(attempt))
		log := s.log.With(zap.Int("attempt", attempt), zap.Int64("seed", streamSeed))

		res, err := s.chain(rngFromSeed(streamSeed), attempt)
		if err != nil {
			if !errors.Is(err, ErrInconsistentModel) {
				return nil, err
			}
			log.Warn("initial state failed, restarting", zap.Error(err))
			last = &ConvergenceError{Attempts: attempt + 1, Cause: err}

			continue
		}

		if t, ok := s.offending(res); ok {
			log.Warn("acceptance rate out of bounds, restarting",
				zap.String("parameter", t.Label),
				zap.Float64("rate", t.Rate()),
				zap.Float64("low", s.opts.AcceptLow),
				zap.Float64("high", s.opts.AcceptHigh))
			last = &ConvergenceError{Attempts: attempt + 1, Parameter: t.Label, Rate: t.Rate()}

			continue
		}

		res.Restarts = attempt
		res.Seed = streamSeed
		log.Info("chain converged", zap.Int("iterations", res.Iterations))

		return res, nil
	}

	s.log.Error("restart budget exhausted", zap.Int("max_restarts", s.opts.MaxRestarts))

	return nil, last
}

// offending returns the first trace whose acceptance rate lies outside the
// open interval (AcceptLow, AcceptHigh).
func (s *Sampler) offending(res *Result) (*Trace, bool) {
	for _, t := range res.Params() {
		r := t.Rate()
		if r <= s.opts.AcceptLow || r >= s.opts.AcceptHigh {
			return t, true
		}
	}

	return nil, false
}

// chain runs one attempt to completion.
func (s *Sampler) chain(rng *rand.Rand, attempt int) (*Result, error) {
	st, err := s.initialState(rng)
	if err != nil {
		return nil, err
	}
	n := s.opts.ChainLength
	s.log.Debug("chain started", zap.Int("attempt", attempt), zap.Int("length", n))

	res := s.newResult(n)
	params := res.Params()
	sp := s.newStepper(st, rng)

	for it := 0; it < n; it++ {
		for m := moveDate; m < numMoves; m++ {
			o := sp.step(st, m)
			if o.param >= 0 {
				params[o.param].Proposed++
				if o.accepted {
					params[o.param].Kept++
				}
			}
			if s.opts.RecordMoves {
				s.record(st, params, true)
			}
		}
		s.record(st, params, false)

		if s.opts.Progress != nil && (it+1)%s.opts.ProgressEvery == 0 {
			s.opts.Progress(Progress{Attempt: attempt, Iteration: it + 1, Length: n})
		}
	}
	res.Iterations = n

	return res, nil
}

// newResult allocates traces with their final capacity. Groups point into
// Boundaries, so a shared parameter has a single trace.
func (s *Sampler) newResult(n int) *Result {
	moves := 0
	if s.opts.RecordMoves {
		moves = n * int(numMoves)
	}
	alloc := func(label string) Trace {
		return Trace{
			Label:    label,
			Accepted: make([]float64, 0, n),
			Moves:    make([]float64, 0, moves),
		}
	}

	res := &Result{
		Contexts:   make([]Trace, len(s.ctx)),
		Boundaries: make([]Trace, len(s.bounds)),
		Groups:     make([]GroupTrace, len(s.groups)),
		contextAt:  make(map[model.ContextID]int, len(s.ctx)),
		groupAt:    make(map[model.GroupID]int, len(s.groups)),
	}
	for i := range s.ctx {
		res.Contexts[i] = alloc(string(s.ctx[i].id))
		res.contextAt[s.ctx[i].id] = i
	}
	for k := range s.bounds {
		res.Boundaries[k] = alloc(s.bounds[k].label)
	}
	for g := range s.groups {
		res.Groups[g] = GroupTrace{
			ID:    s.groups[g].id,
			Alpha: &res.Boundaries[s.groups[g].alpha],
			Beta:  &res.Boundaries[s.groups[g].beta],
		}
		res.groupAt[s.groups[g].id] = g
	}

	return res
}

// record appends the current state to every trace.
func (s *Sampler) record(st *State, params []*Trace, move bool) {
	nc := len(st.Theta)
	for i, t := range params {
		var v float64
		if i < nc {
			v = st.Theta[i]
		} else {
			v = st.Phi[i-nc]
		}
		if move {
			t.Moves = append(t.Moves, v)
		} else {
			t.Accepted = append(t.Accepted, v)
		}
	}
}
