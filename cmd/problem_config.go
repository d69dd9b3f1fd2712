package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nested-sim/nested-sim/nest"
)

// Define struct for YAML
type ProblemsConfig struct {
	Problems []ProblemSpec `yaml:"problems"`
	Version  string        `yaml:"version"`
}

// ProblemSpec describes one named problem scenario.
type ProblemSpec struct {
	Name   string  `yaml:"name"`
	Family string  `yaml:"family"` // "gaussian" or "shell"
	Dim    int     `yaml:"dim"`
	Mean   float64 `yaml:"mean"`   // gaussian: per-dimension likelihood mean
	Sigma  float64 `yaml:"sigma"`  // gaussian: per-dimension likelihood stddev
	Radius float64 `yaml:"radius"` // shell: shell radius around the cube center
	Width  float64 `yaml:"width"`  // shell: shell thickness
}

// LoadProblems reads and parses a YAML scenario file.
func LoadProblems(path string) (*ProblemsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problems file: %w", err)
	}
	var cfg ProblemsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse problems file %s: %w", path, err)
	}
	return &cfg, nil
}

// FindProblem loads the scenario file and returns the spec with the given name.
func FindProblem(path, name string) (*ProblemSpec, error) {
	cfg, err := LoadProblems(path)
	if err != nil {
		return nil, err
	}
	for i := range cfg.Problems {
		if cfg.Problems[i].Name == name {
			return &cfg.Problems[i], nil
		}
	}
	return nil, fmt.Errorf("no problem named %q in %s", name, path)
}

// Build constructs the nest.Problem described by the spec.
func (s *ProblemSpec) Build() (nest.Problem, error) {
	if s.Dim <= 0 {
		return nest.Problem{}, fmt.Errorf("dim must be positive, got %d", s.Dim)
	}
	switch s.Family {
	case "gaussian":
		if s.Sigma <= 0 {
			return nest.Problem{}, fmt.Errorf("gaussian sigma must be positive, got %g", s.Sigma)
		}
		return nest.GaussianProblem(s.Dim, s.Mean, s.Sigma), nil
	case "shell":
		if s.Width <= 0 || s.Radius <= 0 {
			return nest.Problem{}, fmt.Errorf("shell radius and width must be positive, got radius=%g width=%g", s.Radius, s.Width)
		}
		return nest.ShellProblem(s.Dim, s.Radius, s.Width), nil
	}
	return nest.Problem{}, fmt.Errorf("unknown problem family %q", s.Family)
}
