package nest

// Point is a single accepted sample. U is the position in unit-cube prior
// coordinates, X the transformed (physical) parameter vector, LogL the
// natural-log likelihood. Points are produced by a Sampler and never mutated
// afterwards.
type Point struct {
	U    []float64
	X    []float64
	LogL float64
}

// WeightRecord annotates a Point with the log of the prior-volume slice it
// represents. Records are appended in draw order; the order reconstructs the
// posterior weights and is never rewritten.
type WeightRecord struct {
	Point
	LogWidth float64
}
