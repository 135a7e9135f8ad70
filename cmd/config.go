package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/disk-sim/sim"
	"github.com/inference-sim/disk-sim/sim/trace"
)

// Output formats accepted by --format.
const (
	FormatText  = "text"
	FormatTable = "table"
)

var validFormats = map[string]bool{"": true, FormatText: true, FormatTable: true}

// RunConfig holds the knobs of a simulation run, loadable from a YAML file.
// CLI flags that are explicitly set override values from the file.
type RunConfig struct {
	Scheduler string `yaml:"scheduler"`  // policy name or letter (i, j, s, c, f)
	Verbose   bool   `yaml:"verbose"`    // print add/issue/finish events
	DumpQueue bool   `yaml:"dump_queue"` // print the pending set at each dispatch
	Format    string `yaml:"format"`     // "text" (default) or "table"
	Stats     bool   `yaml:"stats"`      // print wait/turnaround percentiles
	Trace     string `yaml:"trace"`      // "none", "events" or "full"; empty follows the log level
}

// LoadRunConfig reads and parses a YAML run configuration file.
// Uses strict field checking: typos must cause errors.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration and returns the canonical policy name.
func (c *RunConfig) Validate() (string, error) {
	if c.Scheduler == "" {
		return "", fmt.Errorf("scheduling policy not provided")
	}
	policy, err := sim.ParsePolicy(c.Scheduler)
	if err != nil {
		return "", err
	}
	if !validFormats[c.Format] {
		return "", fmt.Errorf("unknown output format %q; valid: text, table", c.Format)
	}
	if !trace.IsValidTraceLevel(c.Trace) {
		return "", fmt.Errorf("unknown trace level %q; valid: none, events, full", c.Trace)
	}
	return policy, nil
}
