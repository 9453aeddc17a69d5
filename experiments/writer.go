package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists experiment results as CSV files under a timestamped run
// directory.
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

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			c.Name,
			c.Rollout,
			strconv.Itoa(c.Iterations),
			c.Duration.String(),
			strconv.FormatFloat(c.Exploration, 'f', -1, 64),
			strconv.FormatUint(c.Seed, 10),
		})
	}
	header := []string{"name", "rollout", "iterations", "duration", "exploration", "seed"}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Run,
			strconv.Itoa(r.Game),
			r.AgentX,
			r.AgentO,
			r.Winner,
			strconv.Itoa(r.Moves),
			r.Duration.String(),
		})
	}
	header := []string{"run", "game", "agent_x", "agent_o", "winner", "moves", "duration"}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
