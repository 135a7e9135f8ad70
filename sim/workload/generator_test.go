package workload

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGenerateArrivals_Deterministic(t *testing.T) {
	spec := &GeneratorSpec{Seed: 7, NumRequests: 50, Arrival: ArrivalSpec{MeanGap: 4}, Tracks: TrackSpec{Max: 199}}
	a, err := GenerateArrivals(spec)
	require.NoError(t, err)
	b, err := GenerateArrivals(spec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 50)
}

func TestGenerateArrivals_SortedAndInRange(t *testing.T) {
	spec := &GeneratorSpec{
		Seed:        1,
		NumRequests: 200,
		Arrival:     ArrivalSpec{Process: "poisson", MeanGap: 3},
		Tracks:      TrackSpec{Distribution: "hotspot", Max: 99, Hotspot: 95, Spread: 10},
	}
	arrivals, err := GenerateArrivals(spec)
	require.NoError(t, err)

	assert.True(t, sort.SliceIsSorted(arrivals, func(i, j int) bool {
		return arrivals[i].ArrivalTime < arrivals[j].ArrivalTime
	}))
	for _, a := range arrivals {
		assert.GreaterOrEqual(t, a.Track, 0)
		assert.LessOrEqual(t, a.Track, 99)
	}
	assert.Equal(t, int64(0), arrivals[0].ArrivalTime)
}

func TestGenerateArrivals_ConstantGap(t *testing.T) {
	spec := &GeneratorSpec{NumRequests: 4, Arrival: ArrivalSpec{Process: "constant", MeanGap: 5}, Tracks: TrackSpec{Max: 10}}
	arrivals, err := GenerateArrivals(spec)
	require.NoError(t, err)
	for i, a := range arrivals {
		assert.Equal(t, int64(5*i), a.ArrivalTime)
	}
}

func TestGenerateArrivals_ZeroGap_AllAtTickZero(t *testing.T) {
	spec := &GeneratorSpec{NumRequests: 3, Tracks: TrackSpec{Max: 0}}
	arrivals, err := GenerateArrivals(spec)
	require.NoError(t, err)
	for _, a := range arrivals {
		assert.Equal(t, int64(0), a.ArrivalTime)
		assert.Equal(t, 0, a.Track)
	}
}

func TestGeneratorSpec_Validate_Errors(t *testing.T) {
	tests := map[string]GeneratorSpec{
		"negative count":  {NumRequests: -1},
		"unknown process": {Arrival: ArrivalSpec{Process: "bursty"}},
		"negative gap":    {Arrival: ArrivalSpec{MeanGap: -2}},
		"unknown dist":    {Tracks: TrackSpec{Distribution: "zipf"}},
		"negative max":    {Tracks: TrackSpec{Max: -1}},
		"hotspot oob":     {Tracks: TrackSpec{Distribution: "hotspot", Max: 10, Hotspot: 11}},
		"negative spread": {Tracks: TrackSpec{Distribution: "hotspot", Max: 10, Hotspot: 5, Spread: -1}},
	}
	for name, spec := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, spec.Validate())
		})
	}
}

func TestLoadGeneratorSpec_ValidYAML(t *testing.T) {
	path := writeTempYAML(t, `
seed: 11
num_requests: 20
arrival:
  process: constant
  mean_gap: 2
tracks:
  distribution: hotspot
  max: 50
  hotspot: 25
  spread: 3.5
`)
	spec, err := LoadGeneratorSpec(path)
	require.NoError(t, err)
	assert.Equal(t, int64(11), spec.Seed)
	assert.Equal(t, 20, spec.NumRequests)
	assert.Equal(t, "constant", spec.Arrival.Process)
	assert.Equal(t, 25, spec.Tracks.Hotspot)
	assert.Equal(t, 3.5, spec.Tracks.Spread)
	assert.NoError(t, spec.Validate())
}

func TestLoadGeneratorSpec_UnknownField_ReturnsError(t *testing.T) {
	path := writeTempYAML(t, "seed: 1\nnum_request: 5\n")
	_, err := LoadGeneratorSpec(path)
	assert.Error(t, err)
}

func TestGenerateArrivals_TrackDistributionDoesNotShiftArrivals(t *testing.T) {
	// GIVEN two specs that differ only in track distribution
	uniform := &GeneratorSpec{Seed: 3, NumRequests: 40, Arrival: ArrivalSpec{MeanGap: 6}, Tracks: TrackSpec{Max: 500}}
	hotspot := *uniform
	hotspot.Tracks = TrackSpec{Distribution: "hotspot", Max: 500, Hotspot: 250, Spread: 5}

	// WHEN both are generated
	a, err := GenerateArrivals(uniform)
	require.NoError(t, err)
	b, err := GenerateArrivals(&hotspot)
	require.NoError(t, err)

	// THEN arrival times are identical
	for i := range a {
		assert.Equal(t, a[i].ArrivalTime, b[i].ArrivalTime, "arrival %d", i)
	}
}

func TestPartitionedRNG_StreamsAreCachedAndIsolated(t *testing.T) {
	p := newPartitionedRNG(42)
	assert.Same(t, p.forStream(streamArrivals), p.forStream(streamArrivals))
	assert.NotSame(t, p.forStream(streamArrivals), p.forStream(streamTracks))

	q := newPartitionedRNG(42)
	assert.Equal(t, p.forStream(streamTracks).Int63(), q.forStream(streamTracks).Int63())
}
