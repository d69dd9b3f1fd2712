// nest/integrator.go
package nest

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// remainderEvery is the iteration stride between remainder re-estimates
// once the loop is past the first nlive iterations.
const remainderEvery = 10

// IntegratorConfig groups the convergence-control parameters.
type IntegratorConfig struct {
	Tolerance            float64 // target uncertainty in logZ (must be > 0)
	MaxSamples           int     // stop once this many likelihood evaluations were spent (0 = unlimited)
	NeedSmallRemainder   bool    // gate the tolerance stop on the remainder being a small evidence fraction
	MaxRemainder         float64 // remainder fraction threshold for NeedSmallRemainder
	RobustRemainderError bool    // gate on the bootstrap error and report max(bracket, bootstrap)
}

// DefaultIntegratorConfig mirrors the conventional defaults: 1% tolerance,
// no draw budget, remainder must be below 10% of the evidence.
func DefaultIntegratorConfig() IntegratorConfig {
	return IntegratorConfig{
		Tolerance:          0.01,
		NeedSmallRemainder: true,
		MaxRemainder:       0.1,
	}
}

// Result is the finalized outcome of an integration run. A run that stopped
// on the draw budget is not an error; it is distinguished from a converged
// run by LogZerr exceeding the requested tolerance.
type Result struct {
	LogZ        float64        // log evidence, remainder folded in
	LogZerr     float64        // reported uncertainty in LogZ
	Samples     []Point        // sampler evaluation history, passed through
	Weights     []WeightRecord // posterior raw material, in draw order
	Information float64        // information statistic H
	Niterations int            // nested sampling iterations performed
	NumDraws    int            // likelihood evaluations spent
}

// Integrator drives the nested sampling loop: one point per iteration from
// the Sampler, volume shrinkage, evidence merge, periodic remainder
// estimation, and the stopping rules.
type Integrator struct {
	sampler  Sampler
	cfg      IntegratorConfig
	rng      *rand.Rand // bootstrap resampling stream
	forecast iterationForecaster

	// Progress, when set, receives one snapshot per iteration. Optional;
	// purely a side channel, never gates the loop.
	Progress func(ProgressSnapshot)
}

// NewIntegrator validates the configuration and binds the integrator to a
// sampler. prng supplies the bootstrap resampling stream.
func NewIntegrator(sampler Sampler, cfg IntegratorConfig, prng *PartitionedRNG) (*Integrator, error) {
	if sampler == nil {
		return nil, fmt.Errorf("integrator: sampler must not be nil")
	}
	if sampler.NLive() <= 0 {
		return nil, fmt.Errorf("integrator: sampler live-point count must be positive, got %d", sampler.NLive())
	}
	if cfg.Tolerance <= 0 {
		return nil, fmt.Errorf("integrator: tolerance must be positive, got %g", cfg.Tolerance)
	}
	if cfg.MaxSamples < 0 {
		return nil, fmt.Errorf("integrator: max samples must not be negative, got %d", cfg.MaxSamples)
	}
	if cfg.NeedSmallRemainder && cfg.MaxRemainder <= 0 {
		return nil, fmt.Errorf("integrator: max remainder fraction must be positive, got %g", cfg.MaxRemainder)
	}
	if prng == nil {
		return nil, fmt.Errorf("integrator: rng must not be nil")
	}
	return &Integrator{
		sampler: sampler,
		cfg:     cfg,
		rng:     prng.ForSubsystem(SubsystemBootstrap),
	}, nil
}

// Run performs the integration until a stopping rule fires, then folds the
// remaining live points into the evidence and the weight sequence so the
// posterior has no gap at the highest-likelihood region.
func (ni *Integrator) Run() (*Result, error) {
	nlive := ni.sampler.NLive()
	logVolRemaining := 0.0
	logWidth := math.Log(1 - math.Exp(-1/float64(nlive)))
	var weights []WeightRecord

	pt, err := ni.sampler.Next()
	if err != nil {
		return nil, fmt.Errorf("sampler: %w", err)
	}
	logZ, H := SeedState(logWidth, pt.LogL)

	var est RemainderEstimate
	i := 0
	for {
		i++
		logWidth, logVolRemaining = ShrinkVolume(logVolRemaining, nlive)
		weights = append(weights, WeightRecord{Point: pt, LogWidth: logWidth})

		statErr := math.Sqrt(H / float64(nlive))

		if i == 1 || (i > nlive && i%remainderEvery == 1) {
			est = IntegrateRemainder(ni.sampler.Remainder(), logWidth, logZ, H,
				ni.sampler.MaxLogL(), nlive, ni.rng)
		}

		// Stopping rules are meaningless before the live set has turned
		// over once, so they arm only past nlive iterations.
		if i > nlive {
			if ni.cfg.MaxSamples > 0 && ni.sampler.NumDraws() >= ni.cfg.MaxSamples {
				logrus.Infof("maximum number of samples reached: %d draws after %d iterations",
					ni.sampler.NumDraws(), i)
				break
			}
			if est.TotalErr < ni.cfg.Tolerance &&
				(!ni.cfg.NeedSmallRemainder || est.RemainderLogZ < est.TotalLogZ+math.Log(ni.cfg.MaxRemainder)) &&
				(!ni.cfg.RobustRemainderError || est.TotalErrBootstrap < ni.cfg.Tolerance) {
				logrus.Infof("tolerance on error reached: total=%.4f (bootstrap %.4f) stat=%.4f remainder=%.4f",
					est.TotalErr, est.TotalErrBootstrap, statErr, est.RemainderErr)
				break
			}
			if est.RemainderErr < statErr/10 {
				logrus.Infof("tolerance will not improve: remainder error (%.4f) is much smaller than the statistical error (%.4f)",
					est.RemainderErr, statErr)
				break
			}
		}

		if ni.Progress != nil {
			ni.Progress(ProgressSnapshot{
				Iteration:    i,
				NumDraws:     ni.sampler.NumDraws(),
				TotalLogZ:    est.TotalLogZ,
				LogZerr:      statErr,
				RemainderErr: est.RemainderErr,
				LogL:         pt.LogL,
				ExpectedIterations: ni.forecast.observe(ForecastIterations(
					logZ, statErr, ni.sampler.MaxLogL(), ni.cfg.Tolerance, nlive)),
			})
		}

		pt, err = ni.sampler.Next()
		if err != nil {
			return nil, fmt.Errorf("sampler: %w", err)
		}
		logZ, H = MergePoint(logZ, H, logWidth, pt.LogL)
	}

	// Final remainder fold. Not needed for the integral alone, but the live
	// points must enter the weight sequence or the posterior would have a
	// hole in the most likely parameter ranges.
	est = IntegrateRemainder(ni.sampler.Remainder(), logWidth, logZ, H,
		ni.sampler.MaxLogL(), nlive, ni.rng)
	for _, lp := range ni.sampler.Remainder() {
		weights = append(weights, WeightRecord{Point: lp, LogWidth: logWidth})
	}

	logZerr := est.TotalErr
	if ni.cfg.RobustRemainderError {
		logZerr = math.Max(logZerr, est.TotalErrBootstrap)
	}
	return &Result{
		LogZ:        est.TotalLogZ,
		LogZerr:     logZerr,
		Samples:     ni.sampler.Samples(),
		Weights:     weights,
		Information: H,
		Niterations: i,
		NumDraws:    ni.sampler.NumDraws(),
	}, nil
}
