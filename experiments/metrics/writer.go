package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ludo/game"
)

// AgentConfig describes one competitor of an experiment.
type AgentConfig struct {
	ID          int           `yaml:"id"`
	Kind        string        `yaml:"kind"` // heuristic, random, montecarlo or training
	Goroutines  int           `yaml:"goroutines"`
	Duration    time.Duration `yaml:"duration"`
	Episodes    int           `yaml:"episodes"`
	Cutoff      int           `yaml:"cutoff"`
	Temperature float64       `yaml:"temperature"`
	Evaluate    string        `yaml:"evaluate"` // progress or exposure
}

type GameRecord struct {
	ID      int
	Matchup int
	Seats   []int // AgentConfig.ID per color, in turn order
	Colors  []game.Color
	GameMetric
}

// WinnerAgent is the AgentConfig.ID of the winner, or 0 if nobody finished.
func (r GameRecord) WinnerAgent() int {
	winner, ok := r.Winner()
	if !ok {
		return 0
	}
	for i, c := range r.Colors {
		if c == winner {
			return r.Seats[i]
		}
	}
	return 0
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Summary aggregates the results of one agent in one matchup.
type Summary struct {
	Matchup   int
	Agent     int
	Games     int
	Wins      int
	WinRate   float64
	MeanPlace float64
	StdPlace  float64
	MeanRolls float64
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "goroutines", "duration", "episodes", "cutoff", "temperature", "evaluate"}
	rows := make([][]string, len(configs))
	for i, config := range configs {
		rows[i] = []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Goroutines),
			config.Duration.String(),
			strconv.Itoa(config.Episodes),
			strconv.Itoa(config.Cutoff),
			strconv.FormatFloat(config.Temperature, 'f', -1, 64),
			config.Evaluate,
		}
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "seats", "colors", "starting", "ranking", "winner_agent",
		"completed", "rolls", "moves", "start_time", "end_time", "duration"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Matchup),
			joinInts(record.Seats),
			joinColors(record.Colors),
			record.Starting.String(),
			joinColors(record.Ranking),
			strconv.Itoa(record.WinnerAgent()),
			strconv.FormatBool(record.Completed),
			strconv.Itoa(record.TotalRolls),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "roll", "color", "dice", "piece", "legal", "captured", "arrived",
		"hash", "duration", "episodes", "full_playouts"}
	rows := make([][]string, len(records))
	for i, record := range records {
		rows[i] = []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Roll),
			record.Color.String(),
			strconv.Itoa(record.Dice),
			strconv.Itoa(record.Piece),
			strconv.Itoa(record.Legal),
			strconv.FormatBool(record.Captured),
			strconv.FormatBool(record.Arrived),
			strconv.FormatUint(record.Hash, 16),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
		}
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"matchup", "agent", "games", "wins", "win_rate", "mean_place", "std_place", "mean_rolls"}
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			strconv.Itoa(s.Matchup),
			strconv.Itoa(s.Agent),
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			strconv.FormatFloat(s.WinRate, 'f', 4, 64),
			strconv.FormatFloat(s.MeanPlace, 'f', 4, 64),
			strconv.FormatFloat(s.StdPlace, 'f', 4, 64),
			strconv.FormatFloat(s.MeanRolls, 'f', 1, 64),
		}
	}
	return w.writeCSV("summary.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	// Write each row
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "|")
}

func joinColors(colors []game.Color) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = c.String()
	}
	return strings.Join(parts, "|")
}
