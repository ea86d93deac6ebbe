package metrics

import (
	"sync/atomic"
	"time"

	"ludo/game"
)

type SearchMetric struct {
	Goroutines   int
	Duration     time.Duration
	Episodes     int
	Cutoff       int
	Evaluate     game.Evaluate
	FullPlayouts int // episodes played until the game ended
	Candidates   int // legal moves searched
}

type MoveMetric struct {
	Step     int // moves made before this one
	Roll     int // rolls made before this one
	Color    game.Color
	Dice     int
	Piece    int
	Legal    int // number of legal moves
	Captured bool
	Arrived  bool
	Hash     uint64 // board after the move
	SearchMetric
}

type GameMetric struct {
	Starting   game.Color
	Ranking    []game.Color
	Completed  bool // false if the turn limit was reached first
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalRolls int
	TotalMoves int
}

// Winner is the first color in the ranking.
func (g GameMetric) Winner() (game.Color, bool) {
	if len(g.Ranking) == 0 {
		return 0, false
	}
	return g.Ranking[0], true
}

// Place is the 1-based rank of color c, or 0 if c was not ranked.
func (g GameMetric) Place(c game.Color) int {
	for i, r := range g.Ranking {
		if r == c {
			return i + 1
		}
	}
	return 0
}

type Collector interface {
	Start(goroutines, cutoff int, evaluate game.Evaluate)
	SetCandidates(n int)
	AddFullPlayout()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	goroutines   int
	cutoff       int
	evaluate     game.Evaluate
	startTime    time.Time
	candidates   atomic.Int32
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, cutoff int, evaluate game.Evaluate) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.evaluate = evaluate
	m.candidates.Store(0)
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) SetCandidates(n int) {
	m.candidates.Store(int32(n))
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoff:       m.cutoff,
		Evaluate:     m.evaluate,
		Candidates:   int(m.candidates.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, cutoff int, evaluate game.Evaluate) {}
func (m *dummyCollector) SetCandidates(n int)                                  {}
func (m *dummyCollector) AddFullPlayout()                                      {}
func (m *dummyCollector) AddEpisode()                                          {}
func (m *dummyCollector) Complete() SearchMetric                               { return SearchMetric{} }
