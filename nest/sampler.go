// nest/sampler.go
package nest

// Sampler supplies points of strictly increasing likelihood from a shrinking
// prior-volume shell. The integrator consumes it through this capability set
// only; live-point maintenance and the proposal strategy are the Sampler's
// business.
type Sampler interface {
	// NLive returns the fixed size of the live-point set. Must be > 0.
	NLive() int

	// MaxLogL returns the maximum log-likelihood observed so far across all
	// evaluations.
	MaxLogL() float64

	// NumDraws returns the cumulative number of likelihood evaluations
	// performed, including rejected proposals.
	NumDraws() int

	// Samples returns the full evaluation history. The integrator passes it
	// through to the Result untouched.
	Samples() []Point

	// Next produces the next accepted point: the current worst live point is
	// removed, a replacement with higher likelihood is found internally, and
	// the removed point is returned. May block arbitrarily long. An error is
	// fatal to the integration.
	Next() (Point, error)

	// Remainder returns the current live-point set, ascending by LogL.
	Remainder() []Point
}
