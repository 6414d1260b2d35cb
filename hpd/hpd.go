// SPDX-License-Identifier: MIT
// Package hpd: interval extraction.

package hpd

import (
	"fmt"
	"math"
	"sort"
)

// DefaultBinWidth is one calendar year.
const DefaultBinWidth = 1.0

// Options configures Interval.
type Options struct {
	// BinWidth is the nominal bin width; the span is split into
	// ceil(span/BinWidth) equal bins (at least one).
	BinWidth float64

	// MergeGap joins two selected bins whose gap is below MergeGap·width.
	MergeGap float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns one-year bins merged across gaps below half a bin.
func DefaultOptions() Options {
	return Options{BinWidth: DefaultBinWidth, MergeGap: 0.5}
}

// WithBinWidth sets the nominal bin width. Panics if w <= 0.
func WithBinWidth(w float64) Option {
	if !(w > 0) {
		panic("hpd: WithBinWidth(w<=0)")
	}

	return func(o *Options) { o.BinWidth = w }
}

// Row is one labelled line of an HPD table.
type Row struct {
	Label     string
	Intervals []float64
}

// Width returns the summed length of the row's intervals.
func (r Row) Width() float64 { return Width(r.Intervals) }

// Trim drops the first burnIn samples.
//
// Errors: ErrTooFewSamples if burnIn is negative or leaves nothing.
func Trim(samples []float64, burnIn int) ([]float64, error) {
	if burnIn < 0 || burnIn >= len(samples) {
		return nil, fmt.Errorf("burn-in %d of %d samples: %w", burnIn, len(samples), ErrTooFewSamples)
	}

	return samples[burnIn:], nil
}

// Interval returns the HPD region of samples at the given level as a flat,
// ascending [l1, u1, l2, u2, …] slice.
//
// Implementation:
//   - Stage 1: split [min, max] into ceil((max−min)/BinWidth) equal bins
//     (at least one) and count the samples per bin.
//   - Stage 2: stable-sort bins by count, descending, and take bins until
//     their share of the samples reaches level.
//   - Stage 3: sort the chosen bins by position and merge neighbours whose
//     gap is below MergeGap bin widths.
//
// A constant sample set yields the degenerate interval [x, x].
//
// Errors: ErrTooFewSamples, ErrBadLevel, ErrBadSample.
//
// Complexity: O(n + B log B) for n samples and B bins.
func Interval(samples []float64, level float64, opts ...Option) ([]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(samples) == 0 {
		return nil, ErrTooFewSamples
	}
	if !(level > 0 && level <= 1) {
		return nil, fmt.Errorf("level %v: %w", level, ErrBadLevel)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range samples {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("sample %v: %w", x, ErrBadSample)
		}
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	if lo == hi {
		return []float64{lo, hi}, nil
	}

	// Stage 1: histogram.
	nb := int(math.Ceil((hi - lo) / o.BinWidth))
	if nb < 1 {
		nb = 1
	}
	width := (hi - lo) / float64(nb)
	counts := make([]int, nb)
	for _, x := range samples {
		b := int((x - lo) / width)
		if b >= nb {
			b = nb - 1
		}
		counts[b]++
	}

	// Stage 2: greedy selection by density.
	order := make([]int, nb)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })

	need := level * float64(len(samples))
	var (
		chosen []int
		got    int
	)
	for _, b := range order {
		if counts[b] == 0 {
			break
		}
		chosen = append(chosen, b)
		got += counts[b]
		if float64(got) >= need-1e-9 {
			break
		}
	}
	sort.Ints(chosen)

	// Stage 3: merge.
	out := make([]float64, 0, 2*len(chosen))
	for _, b := range chosen {
		l, u := lo+float64(b)*width, lo+float64(b+1)*width
		if b == nb-1 {
			u = hi
		}
		if n := len(out); n > 0 && l-out[n-1] < o.MergeGap*width {
			out[n-1] = u
			continue
		}
		out = append(out, l, u)
	}

	return out, nil
}

// Width returns the summed length of a flat interval list.
func Width(intervals []float64) float64 {
	var w float64
	for i := 0; i+1 < len(intervals); i += 2 {
		w += intervals[i+1] - intervals[i]
	}

	return w
}

// Table computes one row per label, in the order of labels. Samples are
// trimmed by burnIn first.
//
// Errors: the first Trim or Interval error, prefixed with the label.
func Table(labels []string, samples [][]float64, burnIn int, level float64, opts ...Option) ([]Row, error) {
	if len(labels) != len(samples) {
		return nil, fmt.Errorf("%d labels for %d series: %w", len(labels), len(samples), ErrTooFewSamples)
	}
	rows := make([]Row, len(labels))
	for i, label := range labels {
		kept, err := Trim(samples[i], burnIn)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		iv, err := Interval(kept, level, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		rows[i] = Row{Label: label, Intervals: iv}
	}

	return rows, nil
}
