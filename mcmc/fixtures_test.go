package mcmc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strata/calib"
	"github.com/katalvlaran/strata/mcmc"
	"github.com/katalvlaran/strata/model"
)

// identityCurve maps calendar year y to carbon age y with no curve error, so
// a determination t±e calibrates to N(t, e) on the calendar axis.
func identityCurve(t *testing.T) *calib.Curve {
	t.Helper()
	c, err := calib.NewCurve([]calib.Point{
		{Year: 0, CarbonYear: 0},
		{Year: 6000, CarbonYear: 6000},
	})
	require.NoError(t, err)

	return c
}

// dated builds a context; above lists its older neighbours.
func dated(id, group string, age, err float64, typ model.ContextType, above ...string) model.Context {
	c := model.Context{
		ID:    model.ContextID(id),
		Group: model.GroupID(group),
		Date:  model.Determination{Age: age, Error: err},
		Type:  typ,
	}
	for _, a := range above {
		c.Above = append(c.Above, model.ContextID(a))
	}

	return c
}

// phase builds a group with its relationships to the previous and next group.
func phase(id string, prev, next model.Relationship) model.Group {
	return model.Group{ID: model.GroupID(id), Prev: prev, Next: next}
}

func prepared(t *testing.T, contexts []model.Context, groups []model.Group) *model.Model {
	t.Helper()
	m := &model.Model{Contexts: contexts, Groups: groups}
	require.NoError(t, m.Prepare())

	return m
}

// twins: one phase, two unrelated contexts with identical determinations.
func twins(t *testing.T) *model.Model {
	return prepared(t,
		[]model.Context{
			dated("x", "p", 2500, 30, model.Normal),
			dated("y", "p", 2500, 30, model.Normal),
		},
		[]model.Group{phase("p", model.Start, model.End)},
	)
}

// pair: one phase, "young" lies directly on "old"; distinct point estimates
// whose errors overlap heavily.
func pair(t *testing.T) *model.Model {
	return prepared(t,
		[]model.Context{
			dated("old", "p", 2550, 50, model.Normal),
			dated("young", "p", 2450, 50, model.Normal, "old"),
		},
		[]model.Group{phase("p", model.Start, model.End)},
	)
}

// hairline: twins with measurement errors far below a calendar year.
func hairline(t *testing.T) *model.Model {
	return prepared(t,
		[]model.Context{
			dated("x", "p", 2500, 0.5, model.Normal),
			dated("y", "p", 2500, 0.5, model.Normal),
		},
		[]model.Group{phase("p", model.Start, model.End)},
	)
}

// overlapThenGap: g1 overlaps g2, which is followed by a gap. The last
// group must lie under the youngest date of both g1 and g2.
func overlapThenGap(t *testing.T) *model.Model {
	return prepared(t,
		[]model.Context{
			dated("x", "g1", 2500, 50, model.Normal),
			dated("y", "g2", 2600, 50, model.Normal),
			dated("z", "g3", 2500, 50, model.Normal),
		},
		[]model.Group{
			phase("g1", model.Start, model.Overlap),
			phase("g2", model.Overlap, model.Gap),
			phase("g3", model.Gap, model.End),
		},
	)
}

// sequence exercises every relationship and both relaxed context types:
//
//	early  (start, gap)       a1 < a2
//	middle (gap, abutting)    b1, b2, b3 residual
//	late   (abutting, overlap) c1, c2 intrusive
//	final  (overlap, end)     d1, d2
func sequence(t *testing.T) *model.Model {
	return prepared(t,
		[]model.Context{
			dated("a1", "early", 3200, 40, model.Normal),
			dated("a2", "early", 3150, 40, model.Normal, "a1"),
			dated("b1", "middle", 2900, 40, model.Normal, "a2"),
			dated("b2", "middle", 2850, 40, model.Normal, "b1"),
			dated("b3", "middle", 2400, 40, model.Residual, "b1"),
			dated("c1", "late", 2650, 40, model.Normal, "b2"),
			dated("c2", "late", 2750, 40, model.Intrusive, "c1"),
			dated("d1", "final", 2550, 40, model.Normal),
			dated("d2", "final", 2450, 40, model.Normal, "d1"),
		},
		[]model.Group{
			phase("early", model.Start, model.Gap),
			phase("middle", model.Gap, model.Abutting),
			phase("late", model.Abutting, model.Overlap),
			phase("final", model.Overlap, model.End),
		},
	)
}

// loose keeps the convergence monitor out of the way of property tests.
func loose() mcmc.Option { return mcmc.WithAcceptanceBounds(0, 1) }

func sampler(t *testing.T, m *model.Model, a, p int, opts ...mcmc.Option) *mcmc.Sampler {
	t.Helper()
	s, err := mcmc.NewSampler(m, identityCurve(t), a, p, opts...)
	require.NoError(t, err)

	return s
}

// checkState asserts every ordering and boundary constraint of st.
func checkState(t *testing.T, s *mcmc.Sampler, st *mcmc.State) {
	t.Helper()
	for c, theta := range st.Theta {
		lo, hi := s.OrderBoundsForTest(st, c)
		require.True(t, lo <= theta && theta <= hi, "context %d: %v not in [%v, %v]", c, theta, lo, hi)
	}
	for k, phi := range st.Phi {
		lo, hi := s.BoundaryLimitsForTest(st, k)
		require.True(t, lo <= phi && phi <= hi, "boundary %d: %v not in [%v, %v]", k, phi, lo, hi)
	}
}

func clone(st *mcmc.State) *mcmc.State {
	return &mcmc.State{
		Theta: append([]float64(nil), st.Theta...),
		Phi:   append([]float64(nil), st.Phi...),
		Terms: append([]float64(nil), st.Terms...),
	}
}

func mean(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s / float64(len(xs))
}
