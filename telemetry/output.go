package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/bluenoise/config"
	"github.com/pthm-cable/bluenoise/kernel"
)

// RunRecord is one row of runs.csv: the parameters of a generation run and
// the spacing metrics of its result.
type RunRecord struct {
	Seed       int64   `csv:"seed"`
	Requested  int     `csv:"requested"`
	Placed     int     `csv:"placed"`
	Probes     int     `csv:"probes"`
	MinDist    float64 `csv:"min_dist"`
	DurationMs float64 `csv:"duration_ms"`
	SpacingStats
}

// PointRecord is one row of points.csv.
type PointRecord struct {
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
}

// PointRecords converts the filled prefix of a point slice to CSV rows.
func PointRecords[T kernel.Float](points []kernel.Vec2[T], placed int) []PointRecord {
	records := make([]PointRecord, placed)
	for i := 0; i < placed; i++ {
		records[i] = PointRecord{
			Index: i,
			X:     float64(points[i].X),
			Y:     float64(points[i].Y),
		}
	}
	return records
}

// OutputManager handles structured run output with CSV logging. All methods
// are safe on a nil receiver, so callers need no output-enabled branches.
type OutputManager struct {
	dir      string
	runsFile *os.File

	// Track if headers have been written
	runsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	runsPath := filepath.Join(dir, "runs.csv")
	f, err := os.Create(runsPath)
	if err != nil {
		return nil, fmt.Errorf("creating runs.csv: %w", err)
	}
	om.runsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteRun appends a run record to runs.csv.
func (om *OutputManager) WriteRun(rec RunRecord) error {
	if om == nil {
		return nil
	}

	records := []RunRecord{rec}

	if !om.runsHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.runsFile); err != nil {
			return fmt.Errorf("writing run record: %w", err)
		}
		om.runsHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.runsFile); err != nil {
			return fmt.Errorf("writing run record: %w", err)
		}
	}

	return nil
}

// WritePoints writes the generated set to points.csv, replacing any
// previous contents.
func (om *OutputManager) WritePoints(records []PointRecord) error {
	if om == nil {
		return nil
	}

	pointsPath := filepath.Join(om.dir, "points.csv")
	f, err := os.Create(pointsPath)
	if err != nil {
		return fmt.Errorf("creating points.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing points: %w", err)
	}

	return nil
}

// Close flushes and closes open output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.runsFile.Close()
}
