package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sheikhrachel/termlife/model"
	"github.com/sheikhrachel/termlife/utils"
)

// game is the state owned by the driver loop
type game struct {
	config     utils.Config
	grid       *model.Grid
	pool       *model.GridPool
	stepper    *model.Stepper
	renderer   *model.TerminalRenderer
	stats      *utils.Stats
	cycles     *utils.CycleDetector
	logger     *slog.Logger
	generation int
	period     int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer, logger *slog.Logger) (*game, error) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	cycles, err := utils.NewCycleDetector(config.CycleWindow)
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := &game{
		config:   config,
		grid:     model.NewRandomGrid(config.Rows, config.Cols, config.AliveProbability, rng),
		pool:     pool,
		stepper:  &model.Stepper{Workers: config.Workers, Pool: pool},
		renderer: model.NewTerminalRenderer(out, config.Margin),
		stats:    utils.NewStats(),
		cycles:   cycles,
		logger:   logger,
	}

	logger.Info("game initialized",
		"rows", config.Rows,
		"cols", config.Cols,
		"margin", config.Margin,
		"seed", seed,
		"living", g.grid.CountLivingCells(),
	)
	return g, nil
}

// observe updates stats and cycle detection for the current generation
func (g *game) observe(frameDuration time.Duration) {
	living := g.grid.CountLivingCells()
	g.stats.Update(g.generation, living, frameDuration)

	if g.cycles == nil {
		return
	}
	period, ok := g.cycles.Observe(g.grid.Hash(), g.generation)
	if ok && period != g.period {
		g.logger.Debug("cycle detected", "generation", g.generation, "period", period)
	}
	if !ok {
		period = 0
	}
	g.period = period
}

// statusLine formats the current game status
func (g *game) statusLine() string {
	living := g.grid.CountLivingCells()
	density := 0.0
	if cells := g.grid.Rows() * g.grid.Cols(); cells > 0 {
		density = float64(living) / float64(cells) * 100
	}

	status := "Active"
	if g.period > 0 {
		status = fmt.Sprintf("Cycle (period %d)", g.period)
	}
	if living == 0 {
		status = "Extinct"
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | %.1f gen/sec | Status: %s",
		g.generation, living, density, g.stats.GenerationsPerSecond, status)
}

// advance replaces the grid with its next generation
func (g *game) advance() {
	next := g.stepper.Next(g.grid)

	// Return old grid to pool if using memory pooling
	model.GridToPool(g.grid, g.pool)
	g.grid = next
	g.generation++
}

// run drives the render, step, delay loop until ctx is cancelled or the
// configured generation limit is reached
func run(ctx context.Context, config utils.Config, out io.Writer, logger *slog.Logger) error {
	g, err := initializeGame(config, out, logger)
	if err != nil {
		return err
	}

	g.renderer.Start()
	defer g.renderer.Close()

	lastFrameTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down",
				"generations", g.generation,
				"runtime", time.Since(g.stats.StartTime).Round(time.Millisecond),
			)
			return nil
		default:
		}

		frameStart := time.Now()
		g.observe(frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		status := ""
		if config.ShowStatus {
			status = g.statusLine()
		}
		if err = g.renderer.Display(g.grid, status); err != nil {
			return err
		}

		if config.MaxGenerations > 0 && g.generation >= config.MaxGenerations {
			logger.Info("reached generation limit", "generations", g.generation)
			return nil
		}

		g.advance()

		if sleepContext(ctx, config.FrameDelay.Std()) {
			g.renderer.Clear()
		}
	}
}

// sleepContext waits for d and reports whether it elapsed before ctx was done
func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
