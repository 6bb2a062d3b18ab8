package sample

import (
	"fmt"
	"math"

	"github.com/pthm-cable/bluenoise/kernel"
)

// emptyCell marks an unoccupied grid cell.
const emptyCell = -1

// OccupancyGrid is a uniform grid over the unit square used to reject
// candidate points that fall within the minimum distance of an accepted
// point. Cell size is chosen so any two points closer than minDist land in
// the same or a directly neighboring (within 2 cells) cell, and so no cell
// can hold more than one accepted point.
type OccupancyGrid[T kernel.Float] struct {
	side   int
	distSq T
	cells  []int32 // kernel index per cell, emptyCell when vacant
}

// NewOccupancyGrid creates a grid sized for the given minimum distance:
// side = ceil(sqrt(2) / minDist).
func NewOccupancyGrid[T kernel.Float](minDist T) *OccupancyGrid[T] {
	side := int(math.Ceil(math.Sqrt2 / float64(minDist)))

	cells := make([]int32, side*side)
	for i := range cells {
		cells[i] = emptyCell
	}

	return &OccupancyGrid[T]{
		side:   side,
		distSq: minDist * minDist,
		cells:  cells,
	}
}

// Side returns the grid resolution per axis.
func (g *OccupancyGrid[T]) Side() int { return g.side }

// Mask records index as the occupant of the cell containing p. Masking an
// already-occupied cell means two accepted points share a cell, which the
// proximity checks rule out; it indicates a generator bug, so panic rather
// than corrupt later queries.
func (g *OccupancyGrid[T]) Mask(p kernel.Vec2[T], index int) {
	s := g.side
	o := int(p.Y*T(s))*s + int(p.X*T(s))

	if g.cells[o] != emptyCell {
		panic(fmt.Sprintf("sample: occupancy cell %d already masked by point %d", o, g.cells[o]))
	}

	g.cells[o] = int32(index)
}

// Masked reports whether probe lies within the minimum distance of any
// accepted point in k. The search covers the 5x5 cell neighborhood around
// the probe's cell minus its 4 outer corners, which the grid sizing puts
// beyond minDist. Neighbor cells that wrap across an edge have their
// occupant shifted by ±1 on that axis, so the distance math itself stays
// wrap-agnostic.
func (g *OccupancyGrid[T]) Masked(probe kernel.Vec2[T], k kernel.Kernel[T]) bool {
	s := g.side

	cx := int(probe.X * T(s))
	cy := int(probe.Y * T(s))

	for j := cy - 2; j <= cy+2; j++ {
		for i := cx - 2; i <= cx+2; i++ {
			if (j == cy-2 || j == cy+2) && (i == cx-2 || i == cx+2) {
				continue
			}

			wi := ((i % s) + s) % s
			wj := ((j % s) + s) % s

			occ := g.cells[wj*s+wi]
			if occ == emptyCell {
				continue
			}

			p := k.At(int(occ))
			if i < 0 {
				p.X -= 1
			} else if i >= s {
				p.X += 1
			}
			if j < 0 {
				p.Y -= 1
			} else if j >= s {
				p.Y += 1
			}

			dx := p.X - probe.X
			dy := p.Y - probe.Y
			if dx*dx+dy*dy < g.distSq {
				return true
			}
		}
	}

	return false
}
