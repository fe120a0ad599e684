package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/splitsim/internal/engine"
	"github.com/san-kum/splitsim/internal/sim"
)

type ExportData struct {
	Seed           int64              `json:"seed"`
	Ticks          int                `json:"ticks"`
	Gravity        float64            `json:"gravity"`
	BoundaryRadius float64            `json:"boundary_radius"`
	SplitForce     float64            `json:"split_force"`
	FinalBalls     int                `json:"final_balls"`
	TickSeries     []float64          `json:"tick_series"`
	BallCounts     []float64          `json:"ball_counts"`
	Energy         []float64          `json:"energy"`
	Splits         []float64          `json:"splits"`
	Metrics        map[string]float64 `json:"metrics"`
}

func exportData(seed int64, ticks int, p engine.Params, result *sim.Result) ExportData {
	return ExportData{
		Seed:           seed,
		Ticks:          ticks,
		Gravity:        p.Gravity,
		BoundaryRadius: p.BoundaryRadius,
		SplitForce:     p.SplitForce,
		FinalBalls:     result.FinalCount,
		TickSeries:     result.Ticks,
		BallCounts:     result.Counts,
		Energy:         result.Energy,
		Splits:         result.Splits,
		Metrics:        result.Metrics,
	}
}

func writeJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, seed int64, ticks int, p engine.Params, result *sim.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeJSON(file, exportData(seed, ticks, p, result))
}

func ExportJSONStdout(seed int64, ticks int, p engine.Params, result *sim.Result) error {
	return writeJSON(os.Stdout, exportData(seed, ticks, p, result))
}
