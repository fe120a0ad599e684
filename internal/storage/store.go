package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/splitsim/internal/engine"
	"github.com/san-kum/splitsim/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID             string             `json:"id"`
	Timestamp      time.Time          `json:"timestamp"`
	Seed           int64              `json:"seed"`
	Ticks          int                `json:"ticks"`
	Gravity        float64            `json:"gravity"`
	BoundaryRadius float64            `json:"boundary_radius"`
	SplitForce     float64            `json:"split_force"`
	FinalBalls     int                `json:"final_balls"`
	Metrics        map[string]float64 `json:"metrics"`
}

// Save writes a run directory with metadata.json and the per-tick series as
// series.csv, returning the generated run id.
func (s *Store) Save(seed int64, ticks int, p engine.Params, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("balls_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:             runID,
		Timestamp:      time.Now(),
		Seed:           seed,
		Ticks:          ticks,
		Gravity:        p.Gravity,
		BoundaryRadius: p.BoundaryRadius,
		SplitForce:     p.SplitForce,
		FinalBalls:     result.FinalCount,
		Metrics:        result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"tick", "balls", "energy", "splits"}); err != nil {
		return "", err
	}

	for i := range result.Ticks {
		row := []string{
			strconv.FormatFloat(result.Ticks[i], 'f', 0, 64),
			strconv.FormatFloat(result.Counts[i], 'f', 0, 64),
			strconv.FormatFloat(result.Energy[i], 'f', 6, 64),
			strconv.FormatFloat(result.Splits[i], 'f', 0, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads series.csv back into a Result. Metrics and FinalCount
// come from metadata.json so a reloaded run round-trips completely.
func (s *Store) LoadSeries(runID string) (*sim.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	result := &sim.Result{
		FinalCount: meta.FinalBalls,
		Metrics:    meta.Metrics,
	}
	if len(records) < 2 {
		return result, nil
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}

		tick, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		balls, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		energy, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		splits, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}

		result.Ticks = append(result.Ticks, tick)
		result.Counts = append(result.Counts, balls)
		result.Energy = append(result.Energy, energy)
		result.Splits = append(result.Splits, splits)
	}

	return result, nil
}
