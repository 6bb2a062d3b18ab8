// Package kernel provides the fixed-capacity point containers that sampling
// strategies fill. A kernel owns its storage up front; samplers write
// sequentially by index and report how many slots they filled.
package kernel

// Float constrains coordinate precision. Samplers are generic over it so
// callers pick single or double precision per kernel.
type Float interface {
	~float32 | ~float64
}

// Vec2 is a 2D coordinate. Generated points lie in the half-open unit
// square [0,1)x[0,1).
type Vec2[T Float] struct {
	X, Y T
}

// Kernel is the container surface samplers consume: randomly indexable,
// fixed capacity, with a layer count. 2D samplers require Depth() == 1.
type Kernel[T Float] interface {
	Size() int
	Depth() int
	At(i int) Vec2[T]
	Set(i int, p Vec2[T])
}

// Kernel2D is a flat preallocated arena holding a single 2D layer.
type Kernel2D[T Float] struct {
	pts []Vec2[T]
}

// New2D allocates a single-layer kernel with capacity for size points.
func New2D[T Float](size int) *Kernel2D[T] {
	return &Kernel2D[T]{pts: make([]Vec2[T], size)}
}

// Size returns the kernel's capacity.
func (k *Kernel2D[T]) Size() int { return len(k.pts) }

// Depth returns the number of layers, always 1 for Kernel2D.
func (k *Kernel2D[T]) Depth() int { return 1 }

// At returns the point at index i.
func (k *Kernel2D[T]) At(i int) Vec2[T] { return k.pts[i] }

// Set writes the point at index i.
func (k *Kernel2D[T]) Set(i int, p Vec2[T]) { k.pts[i] = p }

// Points exposes the backing slice. Slots past a sampler's returned count
// are unset.
func (k *Kernel2D[T]) Points() []Vec2[T] { return k.pts }

// ToroidalDelta returns the shortest path delta from a to b on the unit
// torus. Each component is in [-0.5, 0.5].
func ToroidalDelta[T Float](a, b Vec2[T]) (dx, dy T) {
	dx = b.X - a.X
	dy = b.Y - a.Y

	if dx > 0.5 {
		dx -= 1
	} else if dx < -0.5 {
		dx += 1
	}
	if dy > 0.5 {
		dy -= 1
	} else if dy < -0.5 {
		dy += 1
	}

	return dx, dy
}

// ToroidalDistSq returns the squared toroidal distance between a and b.
func ToroidalDistSq[T Float](a, b Vec2[T]) T {
	dx, dy := ToroidalDelta(a, b)
	return dx*dx + dy*dy
}
