package mcmc

// Test bridge: white-box access to the chain internals for package mcmc_test.
// It compiles only with the tests and widens nothing in production builds.

// Move identifiers in iteration order.
const (
	MoveDate     = int(moveDate)
	MoveBoundary = int(moveBoundary)
	MoveShift    = int(moveShift)
	MoveScale    = int(moveScale)
)

// InitialStateForTest draws a starting state from the given seed.
func (s *Sampler) InitialStateForTest(seed int64) (*State, error) {
	return s.initialState(rngFromSeed(seed))
}

// OrderBoundsForTest exposes the ordering window of context c.
func (s *Sampler) OrderBoundsForTest(st *State, c int) (lo, hi float64) {
	return s.orderBounds(st, c)
}

// BoundaryLimitsForTest exposes the limit-table interval of boundary k.
func (s *Sampler) BoundaryLimitsForTest(st *State, k int) (lo, hi float64) {
	return s.boundaryLimits(st, k)
}

// ContributionForTest exposes the posterior term of context c.
func (s *Sampler) ContributionForTest(st *State, c int) (lik, term float64) {
	return s.contribution(st, c)
}

// GroupBoundsForTest returns the boundary indices of group g.
func (s *Sampler) GroupBoundsForTest(g int) (alpha, beta int) {
	return s.groups[g].alpha, s.groups[g].beta
}

// Mover runs individual moves against a state.
type Mover struct{ sp *stepper }

// MoverForTest returns a Mover with its own stream.
func (s *Sampler) MoverForTest(st *State, seed int64) *Mover {
	return &Mover{sp: s.newStepper(st, rngFromSeed(seed))}
}

// Step runs one move and reports the targeted parameter (−1 for global
// moves) and whether the proposal was kept.
func (m *Mover) Step(st *State, mv int) (param int, accepted bool) {
	o := m.sp.step(st, move(mv))

	return o.param, o.accepted
}

// DeriveSeedForTest exposes the stream derivation.
var DeriveSeedForTest = deriveSeed
