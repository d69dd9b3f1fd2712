// Package nest implements the Nested Sampling evidence integrator.
//
// # Reading Guide
//
// Start with these three files to understand the integration kernel:
//   - accumulator.go: log-sum-exp merge of evidence (logZ) and information (H)
//   - remainder.go: bracket + bootstrap estimate of the live-point contribution
//   - integrator.go: the convergence loop, stopping rules, and final fold
//
// # Architecture
//
// The integrator consumes points of strictly increasing likelihood from a
// Sampler and assigns each one a prior-volume slice under the standard
// N-live-point shrinkage model (volume.go). Everything numeric happens in
// log-space; likelihoods are rebased before any exp() so the loop cannot
// overflow regardless of the likelihood scale.
//
// # Key Interfaces
//
// The extension point is the Sampler contract (sampler.go): live-point
// maintenance and proposal strategy live entirely behind it. Two concrete
// variants ship with the package:
//   - RejectionSampler: draws replacements from the unit-cube prior until the
//     likelihood constraint is met (rejection.go)
//   - WalkSampler: constrained Gaussian random walk from a surviving live
//     point (walk.go)
//
// Problem definitions (transform + log-likelihood) are plain structs, see
// problem.go. Progress reporting is a pure side channel (progress.go); the
// integrator never renders anything itself.
package nest
