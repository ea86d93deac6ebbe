package metrics

import (
	"fmt"
	"path/filepath"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// GameRow is the columnar form of a GameRecord.
type GameRow struct {
	GameID      int32  `parquet:"name=game_id, type=INT32"`
	Matchup     int32  `parquet:"name=matchup, type=INT32"`
	Seats       string `parquet:"name=seats, type=BYTE_ARRAY, convertedtype=UTF8"`
	Colors      string `parquet:"name=colors, type=BYTE_ARRAY, convertedtype=UTF8"`
	Starting    string `parquet:"name=starting, type=BYTE_ARRAY, convertedtype=UTF8"`
	Ranking     string `parquet:"name=ranking, type=BYTE_ARRAY, convertedtype=UTF8"`
	WinnerAgent int32  `parquet:"name=winner_agent, type=INT32"`
	Completed   bool   `parquet:"name=completed, type=BOOLEAN"`
	Rolls       int32  `parquet:"name=rolls, type=INT32"`
	Moves       int32  `parquet:"name=moves, type=INT32"`
	DurationUs  int64  `parquet:"name=duration_us, type=INT64"`
}

// MoveRow is the columnar form of a MoveRecord.
type MoveRow struct {
	GameID       int32  `parquet:"name=game_id, type=INT32"`
	Step         int32  `parquet:"name=step, type=INT32"`
	Roll         int32  `parquet:"name=roll, type=INT32"`
	Color        string `parquet:"name=color, type=BYTE_ARRAY, convertedtype=UTF8"`
	Dice         int32  `parquet:"name=dice, type=INT32"`
	Piece        int32  `parquet:"name=piece, type=INT32"`
	Legal        int32  `parquet:"name=legal, type=INT32"`
	Captured     bool   `parquet:"name=captured, type=BOOLEAN"`
	Arrived      bool   `parquet:"name=arrived, type=BOOLEAN"`
	Hash         int64  `parquet:"name=hash, type=INT64"`
	DurationUs   int64  `parquet:"name=duration_us, type=INT64"`
	Episodes     int32  `parquet:"name=episodes, type=INT32"`
	FullPlayouts int32  `parquet:"name=full_playouts, type=INT32"`
}

func NewGameRow(r GameRecord) GameRow {
	return GameRow{
		GameID:      int32(r.ID),
		Matchup:     int32(r.Matchup),
		Seats:       joinInts(r.Seats),
		Colors:      joinColors(r.Colors),
		Starting:    r.Starting.String(),
		Ranking:     joinColors(r.Ranking),
		WinnerAgent: int32(r.WinnerAgent()),
		Completed:   r.Completed,
		Rolls:       int32(r.TotalRolls),
		Moves:       int32(r.TotalMoves),
		DurationUs:  r.Duration.Microseconds(),
	}
}

func NewMoveRow(r MoveRecord) MoveRow {
	return MoveRow{
		GameID:       int32(r.Game),
		Step:         int32(r.Step),
		Roll:         int32(r.MoveMetric.Roll),
		Color:        r.Color.String(),
		Dice:         int32(r.Dice),
		Piece:        int32(r.Piece),
		Legal:        int32(r.Legal),
		Captured:     r.Captured,
		Arrived:      r.Arrived,
		Hash:         int64(r.Hash),
		DurationUs:   r.Duration.Microseconds(),
		Episodes:     int32(r.Episodes),
		FullPlayouts: int32(r.FullPlayouts),
	}
}

// ParquetParallel is the number of goroutines the parquet writer uses.
const ParquetParallel = 4

func (w *Writer) WriteGameParquet(records []GameRecord) error {
	rows := make([]GameRow, len(records))
	for i, r := range records {
		rows[i] = NewGameRow(r)
	}
	return writeParquet(filepath.Join(w.baseDir, "game_records.parquet"), rows)
}

func (w *Writer) WriteMoveParquet(records []MoveRecord) error {
	rows := make([]MoveRow, len(records))
	for i, r := range records {
		rows[i] = NewMoveRow(r)
	}
	return writeParquet(filepath.Join(w.baseDir, "move_records.parquet"), rows)
}

func writeParquet[T any](path string, rows []T) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(T), ParquetParallel)
	if err != nil {
		fileWriter.Close()
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range rows {
		if err := parquetWriter.Write(row); err != nil {
			fileWriter.Close()
			return fmt.Errorf("failed to write parquet row: %w", err)
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		fileWriter.Close()
		return fmt.Errorf("failed to finish %s: %w", path, err)
	}
	return fileWriter.Close()
}
