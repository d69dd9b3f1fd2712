// nest/accumulator.go
package nest

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// logAddExp combines two log-space masses without leaving log-space.
func logAddExp(a, b float64) float64 {
	return floats.LogSumExp([]float64{a, b})
}

// MergePoint folds one drawn point into the running evidence estimate.
// logZ and H are the current evidence and information, logWidth the log
// prior-volume slice assigned to the point, logL its log-likelihood.
// Returns the updated (logZ, H).
//
// logZ is non-decreasing under this merge: the new mass logWidth+logL is
// added through log-sum-exp and can never remove evidence. A point whose
// mass is -Inf is the identity element and leaves both outputs unchanged.
func MergePoint(logZ, H, logWidth, logL float64) (float64, float64) {
	w := logWidth + logL
	if math.IsInf(w, -1) {
		return logZ, H
	}
	logZnew := logAddExp(logZ, w)
	Hnew := math.Exp(w-logZnew)*logL + math.Exp(logZ-logZnew)*(H+logZ) - logZnew
	return logZnew, Hnew
}

// SeedState initializes the integration state from the very first drawn
// point: the whole first volume slice is attributed to it.
func SeedState(logWidth, logL float64) (logZ, H float64) {
	logZ = logWidth + logL
	H = logL - logZ
	return logZ, H
}
