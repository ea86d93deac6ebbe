package agent

import "ludo/game"

// Weights are the magnitudes of the heuristic terms. Penalties are given as
// positive numbers and subtracted.
type Weights struct {
	Arrival         int
	CaptureBase     int
	CaptureProgress int // per hop the victim had made
	Exit            int
	Pair            int
	PairOnStart     int // on top of Pair when the pair sits on an opponent's start
	Safe            int
	Progress        int // per hop the mover has made
	RiskBase        int
	RiskProgress    int // per hop the mover has made
	BreakPair       int
	LeaveSafe       int
	Laggard         int
}

func DefaultWeights() Weights {
	return Weights{
		Arrival:         1000,
		CaptureBase:     500,
		CaptureProgress: 3,
		Exit:            400,
		Pair:            50,
		PairOnStart:     100,
		Safe:            120,
		Progress:        5,
		RiskBase:        300,
		RiskProgress:    5,
		BreakPair:       150,
		LeaveSafe:       500,
		Laggard:         50,
	}
}

// candidate is a legal move resolved against the board it is played on.
type candidate struct {
	color  game.Color
	id     int
	before game.Board
	after  game.Board
	from   game.Position
	to     game.Position
	result game.Result
}

func (m candidate) landsOnSafe() bool {
	return m.to.OnTrack() && m.to.IsSafe()
}

type term struct {
	name  string
	value func(w Weights, m candidate) int
}

// Term names as reported in a Score breakdown.
const (
	TermArrival   = "arrival"
	TermCapture   = "capture"
	TermExit      = "exit"
	TermPair      = "pair"
	TermSafe      = "safe"
	TermProgress  = "progress"
	TermRisk      = "risk"
	TermBreakPair = "break-pair"
	TermLeaveSafe = "leave-safe"
	TermLaggard   = "laggard"
)

var terms = []term{
	{TermArrival, arrival},
	{TermCapture, capture},
	{TermExit, exit},
	{TermPair, pair},
	{TermSafe, safe},
	{TermProgress, progress},
	{TermRisk, risk},
	{TermBreakPair, breakPair},
	{TermLeaveSafe, leaveSafe},
	{TermLaggard, laggard},
}

func arrival(w Weights, m candidate) int {
	if m.result.Arrived {
		return w.Arrival
	}
	return 0
}

// capture is scored for the first victim only; further victims on the same
// square are a side effect.
func capture(w Weights, m candidate) int {
	if !m.result.Captured {
		return 0
	}
	victim := m.result.Victims[0]
	return w.CaptureBase + w.CaptureProgress*game.Progress(victim.Position, victim.Color)
}

func exit(w Weights, m candidate) int {
	if m.from.IsBase() {
		return w.Exit
	}
	return 0
}

// pair rewards joining exactly one own piece on a track square that is not
// safe, or that is the start square of an opponent still in the game.
func pair(w Weights, m candidate) int {
	if !m.to.OnTrack() || m.before.Count(m.color, m.to) != 1 {
		return 0
	}
	owner, isStart := game.StartOwner(m.to.Square())
	onRivalStart := isStart && owner != m.color && m.before.Active(owner)
	if m.to.IsSafe() && !onRivalStart {
		return 0
	}
	if onRivalStart {
		return w.Pair + w.PairOnStart
	}
	return w.Pair
}

func safe(w Weights, m candidate) int {
	if m.landsOnSafe() {
		return w.Safe
	}
	return 0
}

func progress(w Weights, m candidate) int {
	if !m.from.InPlay() {
		return 0
	}
	return w.Progress * game.Progress(m.from, m.color)
}

// risk penalizes landing where an opponent can strike next roll. A piece
// that is the only one of its color on the track has no alternative and is
// not penalized, unless it is the one leaving the base.
func risk(w Weights, m candidate) int {
	if !m.to.OnTrack() || !game.Threatened(m.after, m.to.Square(), m.color) {
		return 0
	}
	if !m.from.IsBase() && m.before.CountKind(m.color, game.KindTrack) <= 1 {
		return 0
	}
	return -(w.RiskBase + w.RiskProgress*game.Progress(m.from, m.color))
}

func breakPair(w Weights, m candidate) int {
	if !m.from.InPlay() || m.result.Arrived || m.result.Captured {
		return 0
	}
	if m.before.Count(m.color, m.from) >= 2 {
		return -w.BreakPair
	}
	return 0
}

func leaveSafe(w Weights, m candidate) int {
	if !m.from.OnTrack() || !m.from.IsSafe() {
		return 0
	}
	if m.result.Arrived || m.result.Captured || m.landsOnSafe() {
		return 0
	}
	return -w.LeaveSafe
}

// laggard rewards moving the in-play piece that is furthest from home when
// more than one piece is in play.
func laggard(w Weights, m candidate) int {
	if !m.from.InPlay() {
		return 0
	}
	inPlay, furthest := 0, 0
	for _, p := range m.before.Pieces(m.color) {
		if !p.Position.InPlay() {
			continue
		}
		inPlay++
		furthest = max(furthest, game.DistanceToHome(p.Position, m.color))
	}
	if inPlay > 1 && game.DistanceToHome(m.from, m.color) == furthest {
		return w.Laggard
	}
	return 0
}
