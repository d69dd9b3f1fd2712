// nest/problem.go
package nest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Problem defines an inference problem over the unit-cube prior.
type Problem struct {
	// Dim is the number of parameters.
	Dim int
	// Transform maps unit-cube coordinates to physical parameters.
	Transform func(u []float64) []float64
	// LogLikelihood evaluates the natural-log likelihood at a physical
	// parameter vector.
	LogLikelihood func(x []float64) float64
}

// identityTransform copies u; the physical space IS the unit cube.
func identityTransform(u []float64) []float64 {
	x := make([]float64, len(u))
	copy(x, u)
	return x
}

// GaussianProblem is an independent Normal(mean, sigma) likelihood per
// dimension over the unit-cube prior. Its evidence is known analytically
// (see GaussianEvidence), which makes it the standard calibration scenario.
func GaussianProblem(dim int, mean, sigma float64) Problem {
	norm := distuv.Normal{Mu: mean, Sigma: sigma}
	return Problem{
		Dim:       dim,
		Transform: identityTransform,
		LogLikelihood: func(x []float64) float64 {
			ll := 0.0
			for _, xi := range x {
				ll += norm.LogProb(xi)
			}
			return ll
		},
	}
}

// GaussianEvidence returns the analytic log-evidence of GaussianProblem:
// per dimension, the integral of the Normal density over [0,1].
func GaussianEvidence(dim int, mean, sigma float64) float64 {
	norm := distuv.Normal{Mu: mean, Sigma: sigma}
	return float64(dim) * math.Log(norm.CDF(1)-norm.CDF(0))
}

// ShellProblem is a thin Gaussian shell of the given radius and width
// centered in the unit cube, a common hard benchmark: most prior volume is
// far from the shell, so the live set has to tunnel onto it.
func ShellProblem(dim int, radius, width float64) Problem {
	shell := distuv.Normal{Mu: radius, Sigma: width}
	return Problem{
		Dim:       dim,
		Transform: identityTransform,
		LogLikelihood: func(x []float64) float64 {
			r2 := 0.0
			for _, xi := range x {
				d := xi - 0.5
				r2 += d * d
			}
			return shell.LogProb(math.Sqrt(r2))
		},
	}
}
