// Package telemetry computes quality metrics for generated point sets and
// writes structured run output.
package telemetry

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/bluenoise/kernel"
)

// SpacingStats summarizes toroidal nearest-neighbor spacing for a point
// set. For a Poisson-disk set every value is at least the configured
// minimum distance; Min dipping below it means the generator is broken.
type SpacingStats struct {
	Count  int     `csv:"count"`
	Min    float64 `csv:"nn_min"`
	Mean   float64 `csv:"nn_mean"`
	StdDev float64 `csv:"nn_stddev"`
	P10    float64 `csv:"nn_p10"`
	P50    float64 `csv:"nn_p50"`
	P90    float64 `csv:"nn_p90"`
}

// ComputeSpacingStats measures each point's nearest-neighbor distance on
// the unit torus and summarizes the distribution. Brute-force pairwise;
// this runs once per generation, not in the sampling loop.
func ComputeSpacingStats[T kernel.Float](points []kernel.Vec2[T]) SpacingStats {
	n := len(points)
	if n < 2 {
		return SpacingStats{Count: n}
	}

	nearest := make([]float64, n)
	for i := range nearest {
		nearest[i] = math.Inf(1)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Sqrt(float64(kernel.ToroidalDistSq(points[i], points[j])))
			if d < nearest[i] {
				nearest[i] = d
			}
			if d < nearest[j] {
				nearest[j] = d
			}
		}
	}

	slices.Sort(nearest)

	return SpacingStats{
		Count:  n,
		Min:    nearest[0],
		Mean:   stat.Mean(nearest, nil),
		StdDev: stat.StdDev(nearest, nil),
		P10:    stat.Quantile(0.1, stat.Empirical, nearest, nil),
		P50:    stat.Quantile(0.5, stat.Empirical, nearest, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, nearest, nil),
	}
}
