package cmd

import (
	"math"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nested-sim/nested-sim/nest"
)

var (
	// CLI flags for the convergence controller
	seed                 int64   // Seed for all random draws (live points, proposals, bootstrap)
	logLevel             string  // Log verbosity level
	tolerance            float64 // Target uncertainty in logZ
	maxSamples           int     // Likelihood evaluation budget (0 = unlimited)
	needSmallRemainder   bool    // Gate tolerance stop on the remainder fraction
	maxRemainder         float64 // Remainder fraction threshold
	robustRemainderError bool    // Gate on and report the bootstrap error

	// CLI flags for the sampler
	nlive       int    // Live-point set size
	samplerName string // "rejection" or "walk"
	walkSteps   int    // Walk length for the walk sampler

	// CLI flags for the problem scenario
	problemsFile string // YAML scenario file
	problemName  string // Scenario name within the file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "nested-sim",
	Short: "Nested sampling evidence integrator",
}

// runCmd integrates one problem scenario using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the nested sampling integration",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec, err := FindProblem(problemsFile, problemName)
		if err != nil {
			logrus.Fatalf("Unable to load problem scenario: %v", err)
		}
		problem, err := spec.Build()
		if err != nil {
			logrus.Fatalf("Invalid problem scenario %q: %v", problemName, err)
		}

		logrus.Infof("Starting integration of %q (dim=%d) with nlive=%d, tolerance=%g, sampler=%s",
			problemName, problem.Dim, nlive, tolerance, samplerName)

		prng := nest.NewPartitionedRNG(nest.NewRunKey(seed))
		var sampler nest.Sampler
		switch samplerName {
		case "rejection":
			sampler, err = nest.NewRejectionSampler(problem, nlive, prng)
		case "walk":
			sampler, err = nest.NewWalkSampler(problem, nlive, walkSteps, prng)
		default:
			logrus.Fatalf("Unknown sampler %q (want rejection or walk)", samplerName)
		}
		if err != nil {
			logrus.Fatalf("Invalid sampler configuration: %v", err)
		}

		cfg := nest.IntegratorConfig{
			Tolerance:            tolerance,
			MaxSamples:           maxSamples,
			NeedSmallRemainder:   needSmallRemainder,
			MaxRemainder:         maxRemainder,
			RobustRemainderError: robustRemainderError,
		}
		integrator, err := nest.NewIntegrator(sampler, cfg, prng)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		integrator.Progress = func(p nest.ProgressSnapshot) {
			logrus.Debugf("iter=%d draws=%d lnZ=%.4f +- %.4f + %.4f L=%.4f eta=%.0f",
				p.Iteration, p.NumDraws, p.TotalLogZ, p.LogZerr, p.RemainderErr, p.LogL, p.ExpectedIterations)
		}

		startTime := time.Now()
		result, err := integrator.Run()
		if err != nil {
			logrus.Fatalf("Integration failed: %v", err)
		}

		logrus.Infof("lnZ = %.4f +- %.4f (H=%.4f, %d iterations, %d draws) in %s",
			result.LogZ, result.LogZerr, result.Information, result.Niterations, result.NumDraws,
			time.Since(startTime).Round(time.Millisecond))
		if spec.Family == "gaussian" {
			analytic := nest.GaussianEvidence(spec.Dim, spec.Mean, spec.Sigma)
			logrus.Infof("analytic lnZ = %.4f (deviation %.4f)", analytic, math.Abs(result.LogZ-analytic))
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for all random draws")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Convergence controller configs
	runCmd.Flags().Float64Var(&tolerance, "tolerance", 0.01, "Target uncertainty in logZ")
	runCmd.Flags().IntVar(&maxSamples, "max-samples", 0, "Likelihood evaluation budget (0 = unlimited)")
	runCmd.Flags().BoolVar(&needSmallRemainder, "need-small-remainder", true, "Require the live-point remainder to be a small evidence fraction before stopping")
	runCmd.Flags().Float64Var(&maxRemainder, "max-remainder", 0.1, "Remainder fraction threshold for --need-small-remainder")
	runCmd.Flags().BoolVar(&robustRemainderError, "robust-remainder-error", false, "Gate on the bootstrap error and report the larger of both estimates")

	// Sampler configs
	runCmd.Flags().IntVar(&nlive, "nlive", 400, "Number of live points")
	runCmd.Flags().StringVar(&samplerName, "sampler", "rejection", "Sampling strategy (rejection, walk)")
	runCmd.Flags().IntVar(&walkSteps, "walk-steps", 25, "Number of steps per constrained random walk")

	// Problem scenario configs
	runCmd.Flags().StringVar(&problemsFile, "problems", "examples/problems.yaml", "YAML file with problem scenarios")
	runCmd.Flags().StringVar(&problemName, "problem", "gauss-1d", "Scenario name within the problems file")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
