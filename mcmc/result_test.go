package mcmc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strata/mcmc"
	"github.com/katalvlaran/strata/model"
)

// TestResult_Lookup resolves every context and group of a sampled result by
// id, and falls back to a scan for results built by hand.
func TestResult_Lookup(t *testing.T) {
	m := sequence(t)
	s := sampler(t, m, 2000, 3600, loose(), mcmc.WithChainLength(50), mcmc.WithoutMoveHistory())
	res, err := s.Run()
	require.NoError(t, err)

	for i, c := range m.Contexts {
		tr, ok := res.Context(c.ID)
		require.True(t, ok, c.ID)
		assert.Same(t, &res.Contexts[i], tr)
	}
	for i, g := range m.Groups {
		gt, ok := res.Group(g.ID)
		require.True(t, ok, g.ID)
		assert.Equal(t, res.Groups[i], gt)
	}
	_, ok := res.Context("nowhere")
	assert.False(t, ok)
	_, ok = res.Group("nowhere")
	assert.False(t, ok)

	manual := &mcmc.Result{
		Contexts: []mcmc.Trace{{Label: "a"}, {Label: "b"}},
		Groups:   []mcmc.GroupTrace{{ID: "g"}},
	}
	tr, ok := manual.Context(model.ContextID("b"))
	require.True(t, ok)
	assert.Same(t, &manual.Contexts[1], tr)
	_, ok = manual.Group("g")
	assert.True(t, ok)
}
