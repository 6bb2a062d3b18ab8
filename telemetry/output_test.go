package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/bluenoise/kernel"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") returned error: %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// Nil receiver must be a no-op, not a crash.
	if err := om.WriteRun(RunRecord{}); err != nil {
		t.Errorf("nil WriteRun returned error: %v", err)
	}
	if err := om.WritePoints(nil); err != nil {
		t.Errorf("nil WritePoints returned error: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close returned error: %v", err)
	}
}

func TestOutputManagerWriteRun(t *testing.T) {
	dir := t.TempDir()

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	rec := RunRecord{Seed: 1, Requested: 10, Placed: 9, Probes: 30, MinDist: 0.1}
	if err := om.WriteRun(rec); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}
	rec.Seed = 2
	if err := om.WriteRun(rec); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "runs.csv"))
	if err != nil {
		t.Fatalf("reading runs.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("runs.csv has %d lines, want header + 2 records", len(lines))
	}
	if !strings.Contains(lines[0], "seed") || !strings.Contains(lines[0], "nn_min") {
		t.Errorf("header missing expected columns: %q", lines[0])
	}
	// Header must appear exactly once.
	if strings.Contains(lines[1], "seed") || strings.Contains(lines[2], "seed") {
		t.Error("header repeated in record rows")
	}
}

func TestOutputManagerWritePoints(t *testing.T) {
	dir := t.TempDir()

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	points := []kernel.Vec2[float32]{
		{X: 0.5, Y: 0.5},
		{X: 0.25, Y: 0.75},
		{X: 0, Y: 0}, // past the placed count, must not be written
	}

	if err := om.WritePoints(PointRecords(points, 2)); err != nil {
		t.Fatalf("WritePoints: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "points.csv"))
	if err != nil {
		t.Fatalf("reading points.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("points.csv has %d lines, want header + 2 records", len(lines))
	}
}

func TestPointRecords(t *testing.T) {
	points := []kernel.Vec2[float64]{
		{X: 0.1, Y: 0.2},
		{X: 0.3, Y: 0.4},
	}

	records := PointRecords(points, 2)

	if len(records) != 2 {
		t.Fatalf("len = %d, want 2", len(records))
	}
	if records[0].Index != 0 || records[1].Index != 1 {
		t.Error("indices not sequential")
	}
	if records[1].X != 0.3 || records[1].Y != 0.4 {
		t.Errorf("record 1 = %+v, want X 0.3 Y 0.4", records[1])
	}
}
