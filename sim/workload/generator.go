package workload

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/disk-sim/sim"
)

// GeneratorSpec configures synthetic request generation.
// Loaded from YAML via LoadGeneratorSpec(path).
type GeneratorSpec struct {
	Seed        int64       `yaml:"seed"`
	NumRequests int         `yaml:"num_requests"`
	Arrival     ArrivalSpec `yaml:"arrival"`
	Tracks      TrackSpec   `yaml:"tracks"`
}

// ArrivalSpec controls the gaps between consecutive arrivals.
type ArrivalSpec struct {
	Process string  `yaml:"process"`  // "poisson" (default) or "constant"
	MeanGap float64 `yaml:"mean_gap"` // mean ticks between arrivals; 0 puts every request at tick 0
}

// TrackSpec controls where requests land on the disk.
type TrackSpec struct {
	Distribution string  `yaml:"distribution"` // "uniform" (default) or "hotspot"
	Max          int     `yaml:"max"`          // highest track number (inclusive)
	Hotspot      int     `yaml:"hotspot,omitempty"`
	Spread       float64 `yaml:"spread,omitempty"` // stddev around Hotspot, in tracks
}

var validArrivalProcesses = map[string]bool{"": true, "poisson": true, "constant": true}

var validTrackDistributions = map[string]bool{"": true, "uniform": true, "hotspot": true}

// LoadGeneratorSpec reads a generator spec with strict field checking.
func LoadGeneratorSpec(path string) (*GeneratorSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading generator spec: %w", err)
	}
	var spec GeneratorSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing generator spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *GeneratorSpec) Validate() error {
	if s.NumRequests < 0 {
		return fmt.Errorf("num_requests must be non-negative, got %d", s.NumRequests)
	}
	if !validArrivalProcesses[s.Arrival.Process] {
		return fmt.Errorf("unknown arrival process %q; valid: poisson, constant", s.Arrival.Process)
	}
	if s.Arrival.MeanGap < 0 || math.IsNaN(s.Arrival.MeanGap) || math.IsInf(s.Arrival.MeanGap, 0) {
		return fmt.Errorf("arrival.mean_gap must be a non-negative finite number, got %f", s.Arrival.MeanGap)
	}
	if !validTrackDistributions[s.Tracks.Distribution] {
		return fmt.Errorf("unknown track distribution %q; valid: uniform, hotspot", s.Tracks.Distribution)
	}
	if s.Tracks.Max < 0 {
		return fmt.Errorf("tracks.max must be non-negative, got %d", s.Tracks.Max)
	}
	if s.Tracks.Distribution == "hotspot" {
		if s.Tracks.Hotspot < 0 || s.Tracks.Hotspot > s.Tracks.Max {
			return fmt.Errorf("tracks.hotspot must be within [0, %d], got %d", s.Tracks.Max, s.Tracks.Hotspot)
		}
		if s.Tracks.Spread < 0 {
			return fmt.Errorf("tracks.spread must be non-negative, got %f", s.Tracks.Spread)
		}
	}
	return nil
}

// GenerateArrivals produces NumRequests arrivals sorted by arrival time.
// The same spec (including Seed) always yields the same arrivals.
func GenerateArrivals(spec *GeneratorSpec) ([]sim.Arrival, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	rng := newPartitionedRNG(spec.Seed)
	gaps, tracks := rng.forStream(streamArrivals), rng.forStream(streamTracks)

	arrivals := make([]sim.Arrival, 0, spec.NumRequests)
	var clock int64
	for i := 0; i < spec.NumRequests; i++ {
		if i > 0 {
			clock += sampleGap(gaps, spec.Arrival)
		}
		arrivals = append(arrivals, sim.Arrival{ArrivalTime: clock, Track: sampleTrack(tracks, spec.Tracks)})
	}
	logrus.Debugf("generated %d arrivals over %d ticks (seed %d)", len(arrivals), clock, spec.Seed)
	return arrivals, nil
}

func sampleGap(rng *rand.Rand, a ArrivalSpec) int64 {
	if a.MeanGap == 0 {
		return 0
	}
	if a.Process == "constant" {
		return int64(math.Round(a.MeanGap))
	}
	return int64(math.Round(rng.ExpFloat64() * a.MeanGap))
}

func sampleTrack(rng *rand.Rand, t TrackSpec) int {
	if t.Distribution != "hotspot" {
		return rng.Intn(t.Max + 1)
	}
	track := int(math.Round(float64(t.Hotspot) + rng.NormFloat64()*t.Spread))
	return min(max(track, 0), t.Max)
}
