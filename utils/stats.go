package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// CycleDetector remembers the hashes of recent generations and reports
// when one comes back. It only observes; it never changes the game.
type CycleDetector struct {
	seen *lru.Cache[string, int]
}

// NewCycleDetector returns a detector that remembers the last window generations.
// A window of zero or less disables detection and returns nil.
func NewCycleDetector(window int) (*CycleDetector, error) {
	if window <= 0 {
		return nil, nil
	}
	seen, err := lru.New[string, int](window)
	if err != nil {
		return nil, err
	}
	return &CycleDetector{seen: seen}, nil
}

// Observe records hash for generation and returns the period when the same
// state was seen before within the window. A nil detector never reports.
func (d *CycleDetector) Observe(hash string, generation int) (period int, ok bool) {
	if d == nil {
		return 0, false
	}
	if prev, found := d.seen.Get(hash); found && prev < generation {
		period, ok = generation-prev, true
	}
	d.seen.Add(hash, generation)
	return period, ok
}
