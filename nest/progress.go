// nest/progress.go
package nest

import (
	"math"

	"github.com/montanaflynn/stats"
)

// ProgressSnapshot is one per-iteration view of the integration, delivered
// through the Integrator's Progress callback. The integrator never renders
// anything; callers decide whether and how to display these.
type ProgressSnapshot struct {
	Iteration    int
	NumDraws     int     // cumulative likelihood evaluations
	TotalLogZ    float64 // evidence with the latest remainder estimate folded in
	LogZerr      float64 // statistical error term sqrt(H/N)
	RemainderErr float64 // bracket width of the latest remainder estimate
	LogL         float64 // log-likelihood of the point recorded this iteration

	// ExpectedIterations is a median-smoothed forecast of the total
	// iteration count needed to reach tolerance. NaN until a finite
	// forecast has been observed.
	ExpectedIterations float64
}

// ForecastIterations extrapolates the iteration count at which the evidence
// error should reach tolerance: the not-yet-integrated mass is bounded by
// exp(maxLogL) times the remaining volume, and volume shrinks by 1/nlive
// per iteration. Returns +Inf or NaN when the trend carries no signal yet.
func ForecastIterations(logZ, statErr, maxLogL, tolerance float64, nlive int) float64 {
	gap := math.Max(tolerance-statErr, statErr/100)
	return -float64(nlive) * (-maxLogL + logZ + math.Log(math.Expm1(gap)))
}

// forecastWindow is the number of recent forecasts the median filter keeps.
const forecastWindow = 10

// iterationForecaster damps the raw per-iteration forecasts with a rolling
// median so single noisy estimates do not whipsaw the reported ETA.
type iterationForecaster struct {
	recent []float64
}

// observe records a raw forecast (non-finite values are discarded) and
// returns the current smoothed value.
func (f *iterationForecaster) observe(v float64) float64 {
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		f.recent = append(f.recent, v)
		if len(f.recent) > forecastWindow {
			f.recent = f.recent[1:]
		}
	}
	if len(f.recent) == 0 {
		return math.NaN()
	}
	m, err := stats.Median(f.recent)
	if err != nil {
		return math.NaN()
	}
	return m
}
