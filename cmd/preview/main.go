// Poisson-disk preview tool - interactive point set visualization.
//
// Usage: go run ./cmd/preview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bluenoise/kernel"
	"github.com/pthm-cable/bluenoise/sample"
	"github.com/pthm-cable/bluenoise/telemetry"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

// previewParams holds the generation parameters driven by the panel.
type previewParams struct {
	Count  float32
	Probes float32
	Seed   int64
	Tiled  bool
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Poisson-Disk Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := previewParams{
		Count:  1024,
		Probes: 30,
		Seed:   1,
		Tiled:  true,
	}

	points, placed, stats := regenerate(params)
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			points, placed, stats = regenerate(params)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawPoints(points, placed, params.Tiled)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		// Stats under the preview pane
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Placed: %d / %d", placed, int(params.Count)), 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("NN min: %.4f  mean: %.4f  p50: %.4f", stats.Min, stats.Mean, stats.P50), 15, statsY+20, 16, rl.DarkGray)

		// Control panel
		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Poisson-Disk Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Count slider
		rl.DrawText("Count (target points)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCount := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"16", "8192",
			params.Count, 16, 8192,
		)
		rl.DrawText(fmt.Sprintf("%d", int(params.Count)), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newCount) != int(params.Count) {
			params.Count = newCount
			needsRegen = true
		}
		panelY += 35

		// Probes slider
		rl.DrawText("Probes (candidates per active point)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newProbes := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"5", "120",
			params.Probes, 5, 120,
		)
		rl.DrawText(fmt.Sprintf("%d", int(params.Probes)), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int(newProbes) != int(params.Probes) {
			params.Probes = newProbes
			needsRegen = true
		}
		panelY += 35

		// Tiled toggle: draws the set 2x2 to show seam-free wraparound
		newTiled := gui.CheckBox(
			rl.Rectangle{X: panelX, Y: panelY, Width: 20, Height: 20},
			"Tile 2x2 (show wraparound)",
			params.Tiled,
		)
		if newTiled != params.Tiled {
			params.Tiled = newTiled
		}
		panelY += 35

		// Reseed button
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 100, Height: 28}, "Reseed") {
			params.Seed++
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

// regenerate runs the sampler with the current parameters.
func regenerate(params previewParams) ([]kernel.Vec2[float32], int, telemetry.SpacingStats) {
	k := kernel.New2D[float32](int(params.Count))

	s := sample.NewSampler[float32](params.Seed)
	defer s.Close()

	placed := s.PoissonSquare(k, int(params.Probes))
	stats := telemetry.ComputeSpacingStats(k.Points()[:placed])

	return k.Points(), placed, stats
}

// drawPoints renders the set into the preview pane, either once or tiled
// 2x2 at half scale so the toroidal seams are visible as seamless.
func drawPoints(points []kernel.Vec2[float32], placed int, tiled bool) {
	if tiled {
		half := float32(previewSize) / 2
		for ty := 0; ty < 2; ty++ {
			for tx := 0; tx < 2; tx++ {
				ox := 10 + float32(tx)*half
				oy := 10 + float32(ty)*half
				for _, p := range points[:placed] {
					rl.DrawCircleV(rl.Vector2{X: ox + p.X*half, Y: oy + p.Y*half}, 1.5, rl.DarkBlue)
				}
			}
		}
		rl.DrawLine(10+int32(half), 10, 10+int32(half), 10+previewSize, rl.LightGray)
		rl.DrawLine(10, 10+int32(half), 10+previewSize, 10+int32(half), rl.LightGray)
		return
	}

	for _, p := range points[:placed] {
		rl.DrawCircleV(rl.Vector2{X: 10 + p.X*previewSize, Y: 10 + p.Y*previewSize}, 2, rl.DarkBlue)
	}
}
