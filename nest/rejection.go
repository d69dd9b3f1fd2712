// nest/rejection.go
package nest

import (
	"fmt"
	"math/rand"
)

// RejectionSampler replaces the worst live point by drawing fresh unit-cube
// prior points until one beats the likelihood constraint. Exact but
// increasingly expensive as the constrained volume shrinks; the reference
// variant for calibration runs.
type RejectionSampler struct {
	population
	rng *rand.Rand
}

// NewRejectionSampler seeds nlive live points from the prior using the
// seedpoints RNG stream and draws replacements from the proposal stream.
func NewRejectionSampler(problem Problem, nlive int, prng *PartitionedRNG) (*RejectionSampler, error) {
	if problem.Dim <= 0 {
		return nil, fmt.Errorf("rejection sampler: problem dimension must be positive, got %d", problem.Dim)
	}
	if nlive <= 0 {
		return nil, fmt.Errorf("rejection sampler: live-point count must be positive, got %d", nlive)
	}
	s := &RejectionSampler{
		population: newPopulation(problem, nlive),
		rng:        prng.ForSubsystem(SubsystemProposal),
	}
	s.seedLive(prng.ForSubsystem(SubsystemSeedPoints))
	return s, nil
}

// Next removes the worst live point, rejection-samples a replacement with
// strictly higher likelihood, and returns the removed point.
func (s *RejectionSampler) Next() (Point, error) {
	worst := s.popWorst()
	for {
		u := make([]float64, s.problem.Dim)
		for i := range u {
			u[i] = s.rng.Float64()
		}
		pt := s.evaluate(u)
		if pt.LogL > worst.LogL {
			s.insert(pt)
			return worst, nil
		}
	}
}
