// nest/walk.go
package nest

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultWalkSteps is the walk length when the caller passes steps <= 0.
const defaultWalkSteps = 25

// WalkSampler replaces the worst live point with the end state of a
// constrained Gaussian random walk started from a random surviving live
// point. Steps that fall below the likelihood constraint are rejected in
// place; the step scale adapts toward a balanced acceptance rate. Cheaper
// than rejection sampling once the constrained region is small, at the cost
// of correlated replacements.
type WalkSampler struct {
	population
	rng   *rand.Rand
	steps int
	scale float64
}

// NewWalkSampler seeds nlive live points from the prior. The walk needs at
// least 2 live points so a surviving walk start always exists after the
// worst point is removed. steps <= 0 selects defaultWalkSteps.
func NewWalkSampler(problem Problem, nlive int, steps int, prng *PartitionedRNG) (*WalkSampler, error) {
	if problem.Dim <= 0 {
		return nil, fmt.Errorf("walk sampler: problem dimension must be positive, got %d", problem.Dim)
	}
	if nlive < 2 {
		return nil, fmt.Errorf("walk sampler: at least 2 live points required, got %d", nlive)
	}
	if steps <= 0 {
		steps = defaultWalkSteps
	}
	s := &WalkSampler{
		population: newPopulation(problem, nlive),
		rng:        prng.ForSubsystem(SubsystemProposal),
		steps:      steps,
		scale:      0.1,
	}
	s.seedLive(prng.ForSubsystem(SubsystemSeedPoints))
	return s, nil
}

// Next removes the worst live point and walks a replacement from a random
// survivor under the constraint LogL > worst.LogL. If every step is
// rejected the walk stays at its start, duplicating a surviving live point;
// that still satisfies the constraint.
func (s *WalkSampler) Next() (Point, error) {
	worst := s.popWorst()
	cur := s.live[s.rng.Intn(len(s.live))]
	accepted := 0
	for k := 0; k < s.steps; k++ {
		u := make([]float64, len(cur.U))
		for i := range u {
			u[i] = reflectUnit(cur.U[i] + s.rng.NormFloat64()*s.scale)
		}
		pt := s.evaluate(u)
		if pt.LogL > worst.LogL {
			cur = pt
			accepted++
		}
	}
	s.scale *= math.Exp(float64(accepted)/float64(s.steps) - 0.5)
	s.insert(cur)
	return worst, nil
}

// reflectUnit folds v back into [0,1] by reflection at the boundaries.
func reflectUnit(v float64) float64 {
	for v < 0 || v > 1 {
		if v < 0 {
			v = -v
		}
		if v > 1 {
			v = 2 - v
		}
	}
	return v
}
