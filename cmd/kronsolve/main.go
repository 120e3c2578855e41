package main

import (
	"flag"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/sparsegrid/kronbatch/batch"
	"github.com/sparsegrid/kronbatch/dispatch"
	"github.com/sparsegrid/kronbatch/grid"
	"github.com/sparsegrid/kronbatch/pde"
	"github.com/sparsegrid/kronbatch/tensor"
	"github.com/sparsegrid/kronbatch/timestep"
)

func main() {
	// .env is optional; the environment and flags take precedence
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("KRONSOLVE", &cfg); err != nil {
		slog.Error("Failed to read environment", "error", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Equation, "pde", cfg.Equation, "Equation to solve")
	flag.IntVar(&cfg.Level, "level", cfg.Level, "Grid refinement level")
	flag.IntVar(&cfg.Degree, "degree", cfg.Degree, "Basis functions per cell")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "Time steps to take")
	flag.Float64Var(&cfg.CFL, "cfl", cfg.CFL, "Time step as a fraction of the cell width")
	flag.IntVar(&cfg.Chunks, "chunks", cfg.Chunks, "Element chunks per operator application")
	flag.Parse()

	if err := ValidateConfig(&cfg); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, nil)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	var err error
	if cfg.Precision == "single" {
		err = run[float32](cfg, logger)
	} else {
		err = run[float64](cfg, logger)
	}
	if err != nil {
		logger.Error("Solve failed", "error", err)
		os.Exit(1)
	}
}

func run[T tensor.Scalar](cfg Config, logger *slog.Logger) error {
	p, err := pde.New[T](cfg.Equation, cfg.Level, cfg.Degree)
	if err != nil {
		return err
	}
	table, err := grid.NewTable(cfg.Level, p.NumDims(), grid.FullGrid)
	if err != nil {
		return err
	}
	chunks, err := grid.Split(table, cfg.Chunks)
	if err != nil {
		return err
	}

	elemSize := 1
	for d := 0; d < p.NumDims(); d++ {
		elemSize *= p.Degree()
	}
	rank := batch.NewRankWorkspace[T](p, table.Size(), chunks)
	host := timestep.NewHostWorkspace[T](table.Size() * elemSize)
	copy(host.X.Data(), p.InitialAt(table).Data())
	sources := p.SourceVectors(table)

	dt := p.Dt() * cfg.CFL
	be := dispatch.Default[T]()

	logger.Info("Solver starting",
		"pde", p.Name(), "dims", p.NumDims(), "level", cfg.Level,
		"degree", cfg.Degree, "elements", table.Size(),
		"unknowns", host.X.Len(), "dt", dt, "precision", cfg.Precision)

	now := 0.0
	for step := 1; step <= cfg.Steps; step++ {
		start := time.Now()
		timestep.ExplicitAdvance(be, p, table, sources, host, rank, chunks, now, dt)
		host.Swap()
		now += dt

		logger.Info("Step complete",
			"step", step, "time", now,
			"norm", norm2(host.X), "elapsed", time.Since(start))
	}

	if p.HasExact() {
		exact := p.ExactAt(table, now)
		logger.Info("Solution error vs analytic", "rmse", rmse(host.X, exact))
	}
	return nil
}

func norm2[T tensor.Scalar](v *tensor.Vector[T]) float64 {
	sum := 0.0
	for _, x := range v.Data() {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func rmse[T tensor.Scalar](got, want *tensor.Vector[T]) float64 {
	sum := 0.0
	for i, x := range got.Data() {
		d := float64(x) - float64(want.At(i))
		sum += d * d
	}
	return math.Sqrt(sum / float64(got.Len()))
}
