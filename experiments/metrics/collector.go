package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes one completed move search.
type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	FullPlayouts int
	Cutoff       int
}

// MoveMetric ties a search to its position in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates counters from concurrently running simulations.
type Collector interface {
	Start(goroutines, cutoff int)
	AddEpisode()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	cutoff       int
	startTime    time.Time
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(goroutines, cutoff int) {
	c.startTime = time.Now()
	c.goroutines = goroutines
	c.cutoff = cutoff
	c.episodes.Store(0)
	c.fullPlayouts.Store(0)
}

func (c *collector) AddEpisode() {
	c.episodes.Add(1)
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   c.goroutines,
		Duration:     time.Since(c.startTime),
		Episodes:     int(c.episodes.Load()),
		FullPlayouts: int(c.fullPlayouts.Load()),
		Cutoff:       c.cutoff,
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for searches
// where metric overhead is unwanted.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(goroutines, cutoff int) {}
func (dummyCollector) AddEpisode()                  {}
func (dummyCollector) AddFullPlayout()              {}
func (dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
