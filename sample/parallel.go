package sample

import (
	"math"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/pthm-cable/bluenoise/kernel"
)

// parallelThreshold is the minimum probe count to use parallel evaluation.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 64

// probe is one scored candidate point.
type probe[T kernel.Float] struct {
	pos    kernel.Vec2[T]
	distSq T // squared distance to the active point; negative when masked
}

// probeChunk is a range of probe slots for one worker to fill.
type probeChunk struct {
	start, end int
}

// probeScratch holds per-worker state. Each worker draws from its own RNG
// stream, so probe evaluation needs no synchronization.
type probeScratch struct {
	rng *rand.Rand
}

// probePool fans probe evaluation out across persistent worker goroutines.
// Per-batch inputs are published before chunks are dispatched and read-only
// while workers run; the completion count is the barrier.
type probePool[T kernel.Float] struct {
	numWorkers int
	scratches  []probeScratch

	workChan chan probeChunk
	doneChan chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup
	running  bool

	// Current batch, valid between dispatch and completion.
	active  kernel.Vec2[T]
	minDist T
	grid    *OccupancyGrid[T]
	kern    kernel.Kernel[T]
	probes  []probe[T]
}

func newProbePool[T kernel.Float](seed int64, workers int) *probePool[T] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	scratches := make([]probeScratch, workers)
	for i := range scratches {
		scratches[i].rng = rand.New(rand.NewPCG(uint64(seed), uint64(i)+1))
	}

	return &probePool[T]{
		numWorkers: workers,
		scratches:  scratches,
	}
}

// startWorkers launches the persistent worker goroutines.
func (p *probePool[T]) startWorkers() {
	if p.running {
		return
	}

	p.workChan = make(chan probeChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *probePool[T]) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, filling probe chunks until stopped.
func (p *probePool[T]) worker(id int) {
	defer p.wg.Done()
	scratch := &p.scratches[id]

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			evalProbes(p.probes[chunk.start:chunk.end], p.active, p.minDist, p.grid, p.kern, scratch.rng)
			p.doneChan <- struct{}{}
		}
	}
}

// dispatch splits the probe buffer into chunks, hands them to the workers
// and blocks until every chunk is done.
func (p *probePool[T]) dispatch(probes []probe[T], active kernel.Vec2[T], minDist T, grid *OccupancyGrid[T], k kernel.Kernel[T]) {
	if !p.running {
		p.startWorkers()
	}

	p.active = active
	p.minDist = minDist
	p.grid = grid
	p.kern = k
	p.probes = probes

	n := len(probes)
	chunkSize := (n + p.numWorkers - 1) / p.numWorkers

	dispatched := 0
	for w := 0; w < p.numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		p.workChan <- probeChunk{start: start, end: end}
		dispatched++
	}

	for i := 0; i < dispatched; i++ {
		<-p.doneChan
	}
}

// evalAll scores one batch of candidates around the active point. Small
// batches run on the caller's goroutine; larger ones fan out to the pool.
func (s *Sampler[T]) evalAll(probes []probe[T], active kernel.Vec2[T], minDist T, grid *OccupancyGrid[T], k kernel.Kernel[T]) {
	if len(probes) < parallelThreshold || s.pool.numWorkers < 2 {
		evalProbes(probes, active, minDist, grid, k, s.rng)
		return
	}
	s.pool.dispatch(probes, active, minDist, grid, k)
}

// evalProbes generates and scores one candidate per slot of dst. Offsets
// are drawn uniformly from the annulus between minDist and 2*minDist around
// the active point, which is what produces blue-noise spacing.
func evalProbes[T kernel.Float](dst []probe[T], active kernel.Vec2[T], minDist T, grid *OccupancyGrid[T], k kernel.Kernel[T], rng *rand.Rand) {
	for i := range dst {
		r := float64(minDist) * (1 + rng.Float64())
		a := rng.Float64() * 2 * math.Pi

		pos := kernel.Vec2[T]{
			X: wrapUnit(active.X + T(r*math.Cos(a))),
			Y: wrapUnit(active.Y + T(r*math.Sin(a))),
		}

		if grid.Masked(pos, k) {
			dst[i] = probe[T]{pos: pos, distSq: -1}
			continue
		}

		dx := pos.X - active.X
		dy := pos.Y - active.Y
		dst[i] = probe[T]{pos: pos, distSq: dx*dx + dy*dy}
	}
}

// wrapUnit wraps v into [0,1). Probe offsets exceed one full period when
// minDist is large, so wrap repeatedly; clamping or rejecting would break
// tileability.
func wrapUnit[T kernel.Float](v T) T {
	for v < 0 {
		v += 1
	}
	for v >= 1 {
		v -= 1
	}
	return v
}
