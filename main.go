package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/bluenoise/config"
	"github.com/pthm-cable/bluenoise/kernel"
	"github.com/pthm-cable/bluenoise/sample"
	"github.com/pthm-cable/bluenoise/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	count := flag.Int("count", 0, "Target point count (0 = use config)")
	minDist := flag.Float64("min-dist", -1, "Minimum spacing (-1 = use config, 0 = derive from count)")
	probes := flag.Int("probes", 0, "Candidates per active point (0 = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = use config, then time-based)")
	workers := flag.Int("workers", -1, "Probe evaluation workers (-1 = use config, 0 = GOMAXPROCS)")
	precision := flag.String("precision", "", "Coordinate precision: float32 or float64 (empty = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Apply CLI overrides on top of the loaded config
	if *count > 0 {
		cfg.Sample.Count = *count
	}
	if *minDist >= 0 {
		cfg.Sample.MinDist = *minDist
	}
	if *probes > 0 {
		cfg.Sample.Probes = *probes
	}
	if *seed != 0 {
		cfg.Sample.Seed = *seed
	}
	if *workers >= 0 {
		cfg.Sample.Workers = *workers
	}
	if *precision != "" {
		cfg.Sample.Precision = *precision
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	cfg.ComputeDerived()

	// Resolve the seed here so logs and run records carry the actual value
	if cfg.Sample.Seed == 0 {
		cfg.Sample.Seed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var err error
	switch cfg.Sample.Precision {
	case "float32":
		err = run[float32](cfg)
	default:
		err = run[float64](cfg)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// run generates one point set at the configured precision, logs spacing
// metrics, and writes CSV output when enabled.
func run[T kernel.Float](cfg *config.Config) error {
	k := kernel.New2D[T](cfg.Sample.Count)

	s := sample.NewSamplerWorkers[T](cfg.Sample.Seed, cfg.Sample.Workers)
	defer s.Close()

	slog.Info("generating",
		"count", cfg.Sample.Count,
		"min_dist", cfg.Derived.MinDist,
		"probes", cfg.Sample.Probes,
		"seed", cfg.Sample.Seed,
		"precision", cfg.Sample.Precision,
	)

	start := time.Now()
	var placed int
	if cfg.Sample.MinDist > 0 {
		placed = s.PoissonSquareDist(k, T(cfg.Sample.MinDist), cfg.Sample.Probes)
	} else {
		placed = s.PoissonSquare(k, cfg.Sample.Probes)
	}
	elapsed := time.Since(start)

	stats := telemetry.ComputeSpacingStats(k.Points()[:placed])

	slog.Info("generation complete",
		"placed", placed,
		"requested", cfg.Sample.Count,
		"duration", elapsed.Round(time.Microsecond),
		"nn_min", stats.Min,
		"nn_mean", stats.Mean,
		"nn_p50", stats.P50,
	)

	om, err := telemetry.NewOutputManager(cfg.Output.Dir)
	if err != nil {
		return err
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		return err
	}
	if err := om.WritePoints(telemetry.PointRecords(k.Points(), placed)); err != nil {
		return err
	}
	return om.WriteRun(telemetry.RunRecord{
		Seed:         cfg.Sample.Seed,
		Requested:    cfg.Sample.Count,
		Placed:       placed,
		Probes:       cfg.Sample.Probes,
		MinDist:      cfg.Derived.MinDist,
		DurationMs:   float64(elapsed) / float64(time.Millisecond),
		SpacingStats: stats,
	})
}
