package mcmc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/strata/mcmc"
)

// TestDiagnose_TwoChains runs the parallel diagnostic and checks that both
// chains finish, differ, and leave no goroutine behind.
func TestDiagnose_TwoChains(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := sampler(t, pair(t), 2000, 3000, mcmc.WithSeed(8), mcmc.WithChainLength(4000))
	d, err := s.Diagnose()
	require.NoError(t, err)
	require.NotNil(t, d.Chains[0])
	require.NotNil(t, d.Chains[1])
	assert.NotEqual(t, d.Chains[0].Seed, d.Chains[1].Seed)

	assert.Len(t, d.RHat, len(d.Chains[0].Params()))
	for label, r := range d.RHat {
		assert.False(t, math.IsNaN(r), label)
	}
	assert.Contains(t, d.RHat, d.Worst)
	assert.Equal(t, d.RHat[d.Worst], d.MaxRHat)
	assert.Less(t, d.MaxRHat, 2.0)
}

// TestDiagnose_PropagatesFailure surfaces a chain's convergence error.
func TestDiagnose_PropagatesFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := sampler(t, pair(t), 2000, 3000,
		mcmc.WithAcceptanceBounds(0.99, 1), mcmc.WithMaxRestarts(0), mcmc.WithChainLength(100))
	_, err := s.Diagnose()
	assert.ErrorIs(t, err, mcmc.ErrNotConverged)
}

// TestGelmanRubin covers the closed-form edge cases.
func TestGelmanRubin(t *testing.T) {
	assert.Equal(t, 1.0, mcmc.GelmanRubin([]float64{3, 3, 3}, []float64{3, 3, 3}))
	assert.True(t, math.IsInf(mcmc.GelmanRubin([]float64{1, 1}, []float64{2, 2}), 1))
	assert.True(t, math.IsNaN(mcmc.GelmanRubin([]float64{1, 2})))
	assert.True(t, math.IsNaN(mcmc.GelmanRubin([]float64{1, 2}, []float64{1})))

	// same spread, same centre: close to 1
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	b := []float64{8, 7, 6, 5, 4, 3, 2, 1}
	assert.InDelta(t, math.Sqrt(7.0/8), mcmc.GelmanRubin(a, b), 1e-12)

	// shifted chains inflate the statistic
	c := []float64{11, 12, 13, 14, 15, 16, 17, 18}
	assert.Greater(t, mcmc.GelmanRubin(a, c), 2.0)
}
