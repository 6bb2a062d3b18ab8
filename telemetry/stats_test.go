package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/bluenoise/kernel"
)

func TestComputeSpacingStatsUniformGrid(t *testing.T) {
	// Four points on a regular grid: every nearest-neighbor distance is 0.5.
	points := []kernel.Vec2[float64]{
		{X: 0.25, Y: 0.25},
		{X: 0.75, Y: 0.25},
		{X: 0.25, Y: 0.75},
		{X: 0.75, Y: 0.75},
	}

	stats := ComputeSpacingStats(points)

	if stats.Count != 4 {
		t.Errorf("Count = %d, want 4", stats.Count)
	}
	if math.Abs(stats.Min-0.5) > 1e-9 {
		t.Errorf("Min = %v, want 0.5", stats.Min)
	}
	if math.Abs(stats.Mean-0.5) > 1e-9 {
		t.Errorf("Mean = %v, want 0.5", stats.Mean)
	}
	if math.Abs(stats.StdDev) > 1e-9 {
		t.Errorf("StdDev = %v, want 0", stats.StdDev)
	}
	if math.Abs(stats.P50-0.5) > 1e-9 {
		t.Errorf("P50 = %v, want 0.5", stats.P50)
	}
}

func TestComputeSpacingStatsSeamPair(t *testing.T) {
	// Nearest-neighbor distance must be measured across the seam.
	points := []kernel.Vec2[float64]{
		{X: 0.02, Y: 0.5},
		{X: 0.98, Y: 0.5},
	}

	stats := ComputeSpacingStats(points)

	if math.Abs(stats.Min-0.04) > 1e-9 {
		t.Errorf("Min = %v, want 0.04 (seam distance)", stats.Min)
	}
	if math.Abs(stats.Mean-0.04) > 1e-9 {
		t.Errorf("Mean = %v, want 0.04", stats.Mean)
	}
}

func TestComputeSpacingStatsDegenerate(t *testing.T) {
	empty := ComputeSpacingStats([]kernel.Vec2[float64]{})
	if empty.Count != 0 || empty.Min != 0 || empty.Mean != 0 {
		t.Errorf("empty set stats = %+v, want zeros", empty)
	}

	single := ComputeSpacingStats([]kernel.Vec2[float64]{{X: 0.5, Y: 0.5}})
	if single.Count != 1 || single.Min != 0 || single.Mean != 0 {
		t.Errorf("single-point stats = %+v, want Count 1 and zero distances", single)
	}
}

func TestComputeSpacingStatsFloat32(t *testing.T) {
	points := []kernel.Vec2[float32]{
		{X: 0.1, Y: 0.5},
		{X: 0.3, Y: 0.5},
		{X: 0.6, Y: 0.5},
	}

	stats := ComputeSpacingStats(points)

	// Nearest distances: 0.2, 0.2, 0.3.
	if math.Abs(stats.Min-0.2) > 1e-6 {
		t.Errorf("Min = %v, want 0.2", stats.Min)
	}
	wantMean := (0.2 + 0.2 + 0.3) / 3
	if math.Abs(stats.Mean-wantMean) > 1e-6 {
		t.Errorf("Mean = %v, want %v", stats.Mean, wantMean)
	}
}
