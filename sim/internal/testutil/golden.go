// Package testutil provides shared test infrastructure for the disk simulator.
// It consolidates golden dataset types and assertion helpers used across
// sim/ and its sub-package tests.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of testdata/goldendataset.yaml.
type GoldenDataset struct {
	Tests []GoldenTestCase `yaml:"tests"`
}

// GoldenTestCase is one request file and its expected results under the listed policies.
type GoldenTestCase struct {
	Name     string        `yaml:"name"`
	Policies []string      `yaml:"policies"`
	Input    string        `yaml:"input"`
	Metrics  GoldenMetrics `yaml:"metrics"`
	Requests [][]int64     `yaml:"requests"` // [id, arrival, start, end]
}

// GoldenMetrics represents the expected summary of a golden test case.
type GoldenMetrics struct {
	Elapsed       int64   `yaml:"elapsed"`
	Movement      int64   `yaml:"movement"`
	AvgTurnaround float64 `yaml:"avg_turnaround"` // rounded to 2 decimals
	AvgWait       float64 `yaml:"avg_wait"`       // rounded to 2 decimals
	MaxWait       int64   `yaml:"max_wait"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := yaml.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with absolute tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, absTol float64) {
	t.Helper()
	if diff := math.Abs(want - got); diff > absTol {
		t.Errorf("%s: got %v, want %v (diff=%v)", name, got, want, diff)
	}
}
