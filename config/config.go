package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration validation and loading.
var (
	// ErrBudget is returned when a count or duration knob is not positive.
	ErrBudget = errors.New("config: non-positive budget")

	// ErrRatio is returned when ResumeRatio falls outside [0,1].
	ErrRatio = errors.New("config: resume ratio outside [0,1]")

	// ErrDuration is returned when a duration field cannot be parsed.
	ErrDuration = errors.New("config: bad duration")
)

// Config bundles every tuning knob. Treat values as immutable once
// constructed; components receive Config by value.
type Config struct {
	// Orchestration.
	MaxWorkers  int `yaml:"max_workers" json:"max_workers"`
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts"`

	// Oracle tuning, forwarded opaquely to the configured oracle.
	Reps     int     `yaml:"reps" json:"reps"`
	Penalty  float64 `yaml:"penalty" json:"penalty"`
	MaxIter  int     `yaml:"max_iter" json:"max_iter"`
	Shots    int     `yaml:"shots" json:"shots"`
	OptLevel int     `yaml:"opt_level" json:"opt_level"`
	BondDim  int     `yaml:"bond_dim" json:"bond_dim"`
	Seed     uint64  `yaml:"seed" json:"seed"`

	// Partitioning.
	MaxSubgraphSize int `yaml:"max_subgraph_size" json:"max_subgraph_size"`

	// Benchmark driver.
	Timeout         Duration `yaml:"timeout" json:"timeout"`
	FallbackTimeout Duration `yaml:"fallback_timeout" json:"fallback_timeout"`
	MaxNodes        int      `yaml:"max_nodes" json:"max_nodes"`
	EdgeTrigger     int      `yaml:"edge_trigger" json:"edge_trigger"`
	NodeTrigger     int      `yaml:"node_trigger" json:"node_trigger"`
	ResumeRatio     float64  `yaml:"resume_ratio" json:"resume_ratio"`

	// Paths.
	InstanceDir  string `yaml:"instance_dir" json:"instance_dir"`
	SolutionDir  string `yaml:"solution_dir" json:"solution_dir"`
	GeneratedDir string `yaml:"generated_dir" json:"generated_dir"`
	OutputCSV    string `yaml:"output_csv" json:"output_csv"`
}

// Default returns the reference benchmark configuration.
func Default() Config {
	return Config{
		MaxWorkers:      max(1, runtime.NumCPU()-1),
		MaxAttempts:     12,
		Reps:            2,
		Penalty:         1.5,
		MaxIter:         50,
		Shots:           1024,
		OptLevel:        1,
		BondDim:         16,
		Seed:            42,
		MaxSubgraphSize: 100,
		Timeout:         Duration(2 * time.Hour),
		FallbackTimeout: Duration(3 * time.Hour),
		MaxNodes:        1000,
		EdgeTrigger:     5000,
		NodeTrigger:     120,
		ResumeRatio:     0.90,
		InstanceDir:     "instances",
		SolutionDir:     "solutions",
		GeneratedDir:    "solutionstemp",
		OutputCSV:       "benchmark_stats_all.csv",
	}
}

// Load overlays the YAML file at path onto Default and validates the
// result. An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects knob values no component can honor.
func (c Config) Validate() error {
	positives := map[string]int{
		"max_workers":       c.MaxWorkers,
		"max_attempts":      c.MaxAttempts,
		"reps":              c.Reps,
		"max_iter":          c.MaxIter,
		"shots":             c.Shots,
		"max_subgraph_size": c.MaxSubgraphSize,
		"max_nodes":         c.MaxNodes,
	}
	for name, v := range positives {
		if v < 1 {
			return fmt.Errorf("%w: %s = %d", ErrBudget, name, v)
		}
	}
	if c.Penalty <= 0 {
		return fmt.Errorf("%w: penalty = %g", ErrBudget, c.Penalty)
	}
	if c.Timeout <= 0 || c.FallbackTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrBudget)
	}
	if c.OptLevel < 0 || c.BondDim < 0 || c.EdgeTrigger < 0 || c.NodeTrigger < 0 {
		return fmt.Errorf("%w: negative knob", ErrBudget)
	}
	if c.ResumeRatio < 0 || c.ResumeRatio > 1 {
		return fmt.Errorf("%w: %g", ErrRatio, c.ResumeRatio)
	}
	return nil
}
