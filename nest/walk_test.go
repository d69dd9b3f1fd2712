package nest

import (
	"math"
	"sort"
	"testing"
)

func TestWalkSampler_ConstraintAndOrdering(t *testing.T) {
	problem := GaussianProblem(2, 0.5, 0.2)
	s, err := NewWalkSampler(problem, 20, 10, NewPartitionedRNG(NewRunKey(3)))
	if err != nil {
		t.Fatalf("NewWalkSampler: %v", err)
	}

	prev := math.Inf(-1)
	for i := 0; i < 40; i++ {
		pt, err := s.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if pt.LogL < prev {
			t.Fatalf("draw %d: LogL %v below previous %v", i, pt.LogL, prev)
		}
		prev = pt.LogL

		live := s.Remainder()
		if len(live) != 20 {
			t.Fatalf("draw %d: live set size %d, want 20", i, len(live))
		}
		if !sort.SliceIsSorted(live, func(a, b int) bool { return live[a].LogL < live[b].LogL }) {
			t.Fatalf("draw %d: live set not ascending", i)
		}
		if live[0].LogL <= pt.LogL {
			t.Fatalf("draw %d: replacement did not beat the constraint", i)
		}
	}
}

func TestWalkSampler_WalkCostIsFixedPerDraw(t *testing.T) {
	const nlive, steps = 10, 15
	problem := GaussianProblem(1, 0.5, 0.3)
	s, err := NewWalkSampler(problem, nlive, steps, NewPartitionedRNG(NewRunKey(8)))
	if err != nil {
		t.Fatalf("NewWalkSampler: %v", err)
	}

	before := s.NumDraws()
	if before != nlive {
		t.Fatalf("seeding cost %d draws, want %d", before, nlive)
	}
	for i := 0; i < 5; i++ {
		if _, err := s.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	// Every walk evaluates exactly steps proposals.
	if got := s.NumDraws() - before; got != 5*steps {
		t.Errorf("5 draws cost %d evaluations, want %d", got, 5*steps)
	}
}

func TestNewWalkSampler_RejectsTooFewLivePoints(t *testing.T) {
	// Removing the worst point must leave a walk start behind, so a
	// single-point live set is a configuration error, not a panic waiting
	// in Next.
	problem := GaussianProblem(1, 0.5, 0.3)
	for _, nlive := range []int{-1, 0, 1} {
		if _, err := NewWalkSampler(problem, nlive, 5, NewPartitionedRNG(NewRunKey(1))); err == nil {
			t.Errorf("nlive=%d: expected a configuration error", nlive)
		}
	}
	if _, err := NewWalkSampler(Problem{}, 10, 5, NewPartitionedRNG(NewRunKey(1))); err == nil {
		t.Error("zero-dimensional problem: expected a configuration error")
	}
}

func TestWalkSampler_DefaultSteps(t *testing.T) {
	problem := GaussianProblem(1, 0.5, 0.3)
	s, err := NewWalkSampler(problem, 5, 0, NewPartitionedRNG(NewRunKey(1)))
	if err != nil {
		t.Fatalf("NewWalkSampler: %v", err)
	}
	if s.steps != defaultWalkSteps {
		t.Errorf("steps = %d, want default %d", s.steps, defaultWalkSteps)
	}
}

func TestReflectUnit(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-0.25, 0.25},
		{1.25, 0.75},
		{2.5, 0.5},
		{-1.5, 0.5},
	}
	for _, tc := range cases {
		if got := reflectUnit(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("reflectUnit(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
