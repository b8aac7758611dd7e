package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment records as CSV files under a timestamped
// subdirectory of the chosen root.
type Writer struct {
	baseDir string
}

func NewWriter(root string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{
		{"id", "depth", "winner", "moves", "total_nodes", "duration_ms"},
	}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Depth),
			r.Winner,
			strconv.Itoa(r.Moves),
			strconv.Itoa(r.TotalNodes),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		})
	}
	return w.writeFile("games.csv", rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := [][]string{
		{"game", "step", "player", "depth", "nodes", "cutoffs", "best_score", "duration_us"},
	}
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			strconv.Itoa(r.Depth),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Cutoffs),
			strconv.Itoa(int(r.BestScore)),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
		})
	}
	return w.writeFile("moves.csv", rows)
}

func (w *Writer) writeFile(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
