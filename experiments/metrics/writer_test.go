package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ludo/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 3, Kind: "montecarlo", Goroutines: 4, Duration: 10 * time.Millisecond, Cutoff: 60}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "id", rows[0][0])
		require.Equal(t, []string{"3", "montecarlo", "4", "10ms", "0", "60", "0", ""}, rows[1])
	})

	t.Run("game records", func(t *testing.T) {
		record := GameRecord{
			ID:      1,
			Matchup: 2,
			Seats:   []int{5, 6},
			Colors:  []game.Color{game.Red, game.Yellow},
			GameMetric: GameMetric{
				Starting:   game.Red,
				Ranking:    []game.Color{game.Yellow, game.Red},
				Completed:  true,
				TotalRolls: 120,
				TotalMoves: 90,
			},
		}
		require.NoError(t, w.WriteGameRecords([]GameRecord{record}))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "2", "5|6", "red|yellow", "red", "yellow|red", "6", "true", "120", "90"}, rows[1][:10])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 0, Color: game.Red, Dice: 6, Legal: 4, Hash: 255}},
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Color: game.Yellow, Dice: 6, Captured: true}},
		}
		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, "ff", rows[1][9])
		require.Equal(t, "true", rows[2][7])
	})

	t.Run("summaries", func(t *testing.T) {
		require.NoError(t, w.WriteSummaries([]Summary{{Matchup: 1, Agent: 2, Games: 4, Wins: 3, WinRate: 0.75, MeanPlace: 1.25}}))

		rows := readCSV(t, filepath.Join(w.Dir(), "summary.csv"))
		require.Equal(t, []string{"1", "2", "4", "3", "0.7500", "1.2500", "0.0000", "0.0"}, rows[1])
	})
}

func TestGameRecord(t *testing.T) {
	record := GameRecord{Seats: []int{5, 6}, Colors: []game.Color{game.Green, game.Blue}}
	require.Zero(t, record.WinnerAgent(), "No winner before anyone finishes")

	record.Ranking = []game.Color{game.Blue}
	require.Equal(t, 6, record.WinnerAgent())
	require.Equal(t, 1, record.Place(game.Blue))
	require.Zero(t, record.Place(game.Green))

	row := NewGameRow(record)
	require.Equal(t, "green|blue", row.Colors)
	require.Equal(t, int32(6), row.WinnerAgent)
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(4, 30, nil)
	c.SetCandidates(3)
	c.AddEpisode()
	c.AddEpisode()
	c.AddFullPlayout()

	m := c.Complete()
	require.Equal(t, 4, m.Goroutines)
	require.Equal(t, 30, m.Cutoff)
	require.Equal(t, 3, m.Candidates)
	require.Equal(t, 2, m.Episodes)
	require.Equal(t, 1, m.FullPlayouts)

	c.Start(1, 0, nil)
	require.Zero(t, c.Complete().Episodes, "Start should reset the counters")

	require.Zero(t, NewDummyCollector().Complete().Episodes)
}
