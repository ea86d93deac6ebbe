package experiments

import (
	"ludo/experiments/metrics"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

type seatKey struct {
	matchup int
	agent   int
}

// Summarize aggregates places, wins and game lengths per agent and
// matchup. Colors left unranked by an abandoned game share last place.
func Summarize(records []metrics.GameRecord) []metrics.Summary {
	places := map[seatKey][]float64{}
	rolls := map[seatKey][]float64{}
	wins := map[seatKey]int{}
	var keys []seatKey

	for _, r := range records {
		for i, c := range r.Colors {
			key := seatKey{matchup: r.Matchup, agent: r.Seats[i]}
			if _, ok := places[key]; !ok {
				keys = append(keys, key)
			}
			place := r.Place(c)
			if place == 0 {
				place = len(r.Colors)
			}
			if place == 1 {
				wins[key]++
			}
			places[key] = append(places[key], float64(place))
			rolls[key] = append(rolls[key], float64(r.TotalRolls))
		}
	}

	slices.SortFunc(keys, func(a, b seatKey) int {
		if a.matchup != b.matchup {
			return a.matchup - b.matchup
		}
		return a.agent - b.agent
	})

	summaries := make([]metrics.Summary, 0, len(keys))
	for _, key := range keys {
		p := places[key]
		mean, std := stat.MeanStdDev(p, nil)
		if len(p) < 2 {
			std = 0
		}
		summaries = append(summaries, metrics.Summary{
			Matchup:   key.matchup,
			Agent:     key.agent,
			Games:     len(p),
			Wins:      wins[key],
			WinRate:   float64(wins[key]) / float64(len(p)),
			MeanPlace: mean,
			StdPlace:  std,
			MeanRolls: stat.Mean(rolls[key], nil),
		})
	}
	return summaries
}
