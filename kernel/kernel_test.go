package kernel

import (
	"math"
	"testing"
)

func TestKernel2D(t *testing.T) {
	k := New2D[float64](8)

	if k.Size() != 8 {
		t.Errorf("Size() = %d, want 8", k.Size())
	}
	if k.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", k.Depth())
	}

	p := Vec2[float64]{X: 0.25, Y: 0.75}
	k.Set(3, p)

	if got := k.At(3); got != p {
		t.Errorf("At(3) = %v, want %v", got, p)
	}
	if got := k.Points()[3]; got != p {
		t.Errorf("Points()[3] = %v, want %v", got, p)
	}
	if got := k.At(0); got != (Vec2[float64]{}) {
		t.Errorf("At(0) = %v, want zero value", got)
	}
}

func TestToroidalDelta(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2[float64]
		wantDX float64
		wantDY float64
	}{
		{"same point", Vec2[float64]{0.5, 0.5}, Vec2[float64]{0.5, 0.5}, 0, 0},
		{"no wrap", Vec2[float64]{0.2, 0.3}, Vec2[float64]{0.4, 0.6}, 0.2, 0.3},
		{"wrap x seam", Vec2[float64]{0.02, 0.5}, Vec2[float64]{0.98, 0.5}, -0.04, 0},
		{"wrap y seam", Vec2[float64]{0.5, 0.95}, Vec2[float64]{0.5, 0.05}, 0, 0.1},
		{"wrap both", Vec2[float64]{0.9, 0.9}, Vec2[float64]{0.1, 0.1}, 0.2, 0.2},
		{"half width", Vec2[float64]{0.0, 0.0}, Vec2[float64]{0.5, 0.0}, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := ToroidalDelta(tt.a, tt.b)
			if math.Abs(dx-tt.wantDX) > 1e-12 || math.Abs(dy-tt.wantDY) > 1e-12 {
				t.Errorf("ToroidalDelta(%v, %v) = (%v, %v), want (%v, %v)",
					tt.a, tt.b, dx, dy, tt.wantDX, tt.wantDY)
			}
		})
	}
}

func TestToroidalDistSq(t *testing.T) {
	a := Vec2[float64]{X: 0.02, Y: 0.5}
	b := Vec2[float64]{X: 0.98, Y: 0.5}

	// Distance across the seam is 0.04, not 0.96.
	want := 0.04 * 0.04
	if got := ToroidalDistSq(a, b); math.Abs(got-want) > 1e-12 {
		t.Errorf("ToroidalDistSq = %v, want %v", got, want)
	}
}
