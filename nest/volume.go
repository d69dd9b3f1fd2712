// nest/volume.go
package nest

import "math"

// ShrinkVolume advances the prior-volume bookkeeping by one iteration under
// the standard N-live-point shrinkage model. Given the remaining log-volume
// before the step, it returns the log-width of the shell consumed by this
// iteration and the remaining log-volume after the step:
//
//	logWidth = log(1 - exp(-1/N)) + logVolRemaining
//	next     = logVolRemaining - 1/N
//
// For nlive > 0 both sequences are strictly monotonic: widths and remaining
// volume decrease every iteration. The tracker is a pure step function with
// no state beyond its arguments.
func ShrinkVolume(logVolRemaining float64, nlive int) (logWidth, next float64) {
	shrink := 1.0 / float64(nlive)
	logWidth = math.Log(1-math.Exp(-shrink)) + logVolRemaining
	next = logVolRemaining - shrink
	return logWidth, next
}
