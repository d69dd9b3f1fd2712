// nest/remainder.go
package nest

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// bootstrapRounds is the number of with-replacement resamples of the live
// set used for the bootstrap error estimate.
const bootstrapRounds = 20

// RemainderEstimate reports the evidence contribution still held by the
// live-point set, together with three error views of the total evidence.
type RemainderEstimate struct {
	// RemainderLogZ is the point estimate of the live set's own mass.
	RemainderLogZ float64
	// RemainderErr is the bracket width logZup - logZlo.
	RemainderErr float64
	// TotalLogZ is the evidence with the live set folded in (mid estimate).
	TotalLogZ float64
	// TotalErr is the bracket width plus the statistical term sqrt(H/N).
	TotalErr float64
	// TotalErrBootstrap is the bootstrap spread plus sqrt(H/N).
	TotalErrBootstrap float64
}

// bracketSums computes the upper and lower step-function integrals of a
// rebased live-likelihood ladder. The upper bound takes every step at its
// higher edge and double-counts the top entry; the lower bound takes every
// step at its lower edge and double-counts the bottom entry. ls holds the
// rebased likelihoods ascending, lsMax is identical except the top entry is
// the rebased global maximum.
func bracketSums(ls, lsMax []float64) (upper, lower float64) {
	n := len(ls)
	upper = floats.Sum(lsMax[1:]) + lsMax[n-1]
	lower = floats.Sum(ls[:n-1]) + ls[0]
	return upper, lower
}

// gather copies the entries of src selected by idx, in idx order.
func gather(src []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}
	return out
}

// IntegrateRemainder estimates the evidence mass still held by the live
// points. live must be ascending by LogL and non-empty; logWidth is the
// current per-point log-volume slice, logZ and H the accumulator state,
// maxLogL the global maximum observed log-likelihood, nlive the live-set
// size. rng drives the bootstrap resampling.
//
// All likelihoods are rebased to the highest live likelihood before any
// exp(), so the sums cannot overflow. The upper bound substitutes maxLogL
// for the best live point, guaranteeing the bound cannot underestimate the
// contribution of the as-yet-unseen best sample.
func IntegrateRemainder(live []Point, logWidth, logZ, H, maxLogL float64, nlive int, rng *rand.Rand) RemainderEstimate {
	n := len(live)
	l0 := live[n-1].LogL
	ls := make([]float64, n)
	for i, p := range live {
		ls[i] = math.Exp(p.LogL - l0)
	}
	lsMax := make([]float64, n)
	copy(lsMax, ls)
	lsMax[n-1] = math.Exp(maxLogL - l0)

	upper, lower := bracketSums(ls, lsMax)
	logLmid := math.Log(floats.Sum(ls)) + l0

	logZmid := logAddExp(logZ, logWidth+logLmid)
	logZup := logAddExp(logZ, logWidth+math.Log(upper)+l0)
	logZlo := logAddExp(logZ, logWidth+math.Log(lower)+l0)
	logZerr := logZup - logZlo

	// Bootstrap: resample the index set with replacement, re-sort so the
	// edge structure of the bracket survives, and collect both bounds.
	collected := make([]float64, 0, 2*bootstrapRounds)
	idx := make([]int, n)
	for round := 0; round < bootstrapRounds; round++ {
		for j := range idx {
			idx[j] = rng.Intn(n)
		}
		sort.Ints(idx)
		up, lo := bracketSums(gather(ls, idx), gather(lsMax, idx))
		collected = append(collected,
			logAddExp(logZ, logWidth+math.Log(up)+l0),
			logAddExp(logZ, logWidth+math.Log(lo)+l0))
	}
	bootstrapErr := floats.Max(collected) - floats.Min(collected)

	statErr := math.Sqrt(H / float64(nlive))
	return RemainderEstimate{
		RemainderLogZ:     logWidth + logLmid,
		RemainderErr:      logZerr,
		TotalLogZ:         logZmid,
		TotalErr:          logZerr + statErr,
		TotalErrBootstrap: bootstrapErr + statErr,
	}
}
