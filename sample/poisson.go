// Package sample implements Poisson-disk sampling over the toroidal unit
// square: Bridson dart throwing with a uniform occupancy grid accelerating
// the minimum-distance rejection test. Opposite edges of the square are
// identified, so generated sets tile seamlessly.
package sample

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/pthm-cable/bluenoise/kernel"
)

// Sampler generates Poisson-disk point sets. It owns the RNG driving the
// generation loop and a worker pool for scoring large probe batches.
type Sampler[T kernel.Float] struct {
	rng  *rand.Rand
	pool *probePool[T]
}

// NewSampler creates a sampler. seed == 0 draws a time-based seed.
func NewSampler[T kernel.Float](seed int64) *Sampler[T] {
	return NewSamplerWorkers[T](seed, 0)
}

// NewSamplerWorkers creates a sampler with an explicit probe worker count.
// workers <= 0 uses GOMAXPROCS.
func NewSamplerWorkers[T kernel.Float](seed int64, workers int) *Sampler[T] {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Sampler[T]{
		rng:  rand.New(rand.NewPCG(uint64(seed), 0)),
		pool: newProbePool[T](seed, workers),
	}
}

// Close stops the probe workers. The sampler must not be used afterwards.
func (s *Sampler[T]) Close() {
	s.pool.stopWorkers()
}

// PoissonSquare fills k with a Poisson-disk set whose minimum distance is
// derived from the kernel capacity as 1/sqrt(size*sqrt(2)), approximating
// even coverage of the unit square by size points. Returns the number of
// points placed.
func (s *Sampler[T]) PoissonSquare(k kernel.Kernel[T], numProbes int) int {
	minDist := T(1 / math.Sqrt(float64(k.Size())*math.Sqrt2))
	return s.PoissonSquareDist(k, minDist, numProbes)
}

// PoissonSquareDist fills k with points pairwise at least minDist apart on
// the unit torus, scoring numProbes candidates per active point per
// iteration. Returns the number of points placed, in [1, k.Size()]; a run
// can saturate before the kernel fills. Panics if k.Depth() != 1.
func (s *Sampler[T]) PoissonSquareDist(k kernel.Kernel[T], minDist T, numProbes int) int {
	if k.Depth() != 1 {
		panic("sample: poisson square requires a single-layer kernel")
	}

	grid := NewOccupancyGrid(minDist)

	placed := 0
	k.Set(placed, kernel.Vec2[T]{X: 0.5, Y: 0.5})
	grid.Mask(k.At(placed), placed)

	actives := make([]int, 1, k.Size())
	actives[0] = placed

	probes := make([]probe[T], numProbes)

	for len(actives) > 0 && placed < k.Size()-1 {
		pick := s.rng.IntN(len(actives))
		active := k.At(actives[pick])

		s.evalAll(probes, active, minDist, grid, k)

		// Arg-min over valid candidates; first-encountered wins ties.
		best := -1
		var bestDist T
		for i := range probes {
			d := probes[i].distSq
			if d < 0 || (best >= 0 && bestDist <= d) {
				continue
			}
			best = i
			bestDist = d
		}

		if best < 0 {
			// Neighborhood exhausted: retire the active point. Identity
			// lives in kernel indices, not list order, so swap-remove.
			actives[pick] = actives[len(actives)-1]
			actives = actives[:len(actives)-1]
			continue
		}

		placed++
		k.Set(placed, probes[best].pos)
		actives = append(actives, placed)
		grid.Mask(probes[best].pos, placed)
	}

	return placed + 1
}
