// nest/liveset.go
package nest

import (
	"math"
	"math/rand"
	"sort"
)

// population holds the state shared by the concrete Samplers: the sorted
// live set, the evaluation history, and the draw accounting. Concrete
// samplers differ only in how they find a replacement point (Next).
type population struct {
	problem Problem
	nlive   int
	live    []Point // ascending by LogL
	samples []Point
	maxLogL float64
	ndraws  int
}

func newPopulation(problem Problem, nlive int) population {
	return population{problem: problem, nlive: nlive, maxLogL: math.Inf(-1)}
}

// evaluate transforms u, evaluates the likelihood, and records the draw.
func (p *population) evaluate(u []float64) Point {
	x := p.problem.Transform(u)
	pt := Point{U: u, X: x, LogL: p.problem.LogLikelihood(x)}
	p.ndraws++
	p.samples = append(p.samples, pt)
	if pt.LogL > p.maxLogL {
		p.maxLogL = pt.LogL
	}
	return pt
}

// seedLive fills the live set with nlive draws from the unit-cube prior.
func (p *population) seedLive(rng *rand.Rand) {
	for len(p.live) < p.nlive {
		u := make([]float64, p.problem.Dim)
		for i := range u {
			u[i] = rng.Float64()
		}
		p.insert(p.evaluate(u))
	}
}

// insert places pt into the live set keeping ascending LogL order.
func (p *population) insert(pt Point) {
	i := sort.Search(len(p.live), func(j int) bool { return p.live[j].LogL > pt.LogL })
	p.live = append(p.live, Point{})
	copy(p.live[i+1:], p.live[i:])
	p.live[i] = pt
}

// popWorst removes and returns the lowest-likelihood live point.
func (p *population) popWorst() Point {
	worst := p.live[0]
	p.live = p.live[1:]
	return worst
}

func (p *population) NLive() int       { return p.nlive }
func (p *population) MaxLogL() float64 { return p.maxLogL }
func (p *population) NumDraws() int    { return p.ndraws }
func (p *population) Samples() []Point { return p.samples }

// Remainder returns a copy of the live set, ascending by LogL.
func (p *population) Remainder() []Point {
	out := make([]Point, len(p.live))
	copy(out, p.live)
	return out
}
