// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines the Monte Carlo searcher uses.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes per searched move.
const EPISODES = 200

// WITH_CUTOFF defines how many rolls a rollout plays before the board is evaluated.
const WITH_CUTOFF = 60

// MAX_TURNS defines how many rolls a match may take before it is abandoned.
const MAX_TURNS = 2000

// NUM_GAMES defines the number of games per matchup in an experiment.
const NUM_GAMES = 20

// SEED defines the default seed for dice and random agents.
const SEED = 1
