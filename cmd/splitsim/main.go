package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/splitsim/internal/analysis"
	"github.com/san-kum/splitsim/internal/config"
	"github.com/san-kum/splitsim/internal/engine"
	"github.com/san-kum/splitsim/internal/export"
	"github.com/san-kum/splitsim/internal/gui"
	"github.com/san-kum/splitsim/internal/metrics"
	"github.com/san-kum/splitsim/internal/sim"
	"github.com/san-kum/splitsim/internal/storage"
	"github.com/san-kum/splitsim/internal/viz"
)

var (
	dataDir string

	ticks          int
	seed           int64
	gravity        float64
	maxSpeed       float64
	boundaryRadius float64
	minRadius      float64
	initialRadius  float64
	splitForce     float64
	splitAngle     float64
	shrinkFactor   float64
	bounceFactor   float64

	configFile string
	preset     string

	outPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "splitsim",
		Short: "bouncing ball split simulation lab",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the GUI when no command given
			w := engine.NewWorld(engine.DefaultParams(), time.Now().UnixNano())
			w.SpawnInitial()
			gui.Run(w)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".splitsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless simulation",
		RunE:  runSimulation,
	}
	addPhysicsFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run simulation with interactive GUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildParams(cmd)
			if err != nil {
				return err
			}
			w := engine.NewWorld(p, seed)
			w.SpawnInitial()
			gui.Run(w)
			return nil
		},
	}
	addPhysicsFlags(guiCmd)
	guiCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	guiCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with terminal visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildParams(cmd)
			if err != nil {
				return err
			}
			w := engine.NewWorld(p, seed)
			w.SpawnInitial()
			return viz.Run(w)
		},
	}
	addPhysicsFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of the ball count series",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSONRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSVRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%-10s gravity=%.2f split_force=%.1f ticks=%d\n",
					name, cfg.Gravity, cfg.SplitForce, cfg.Ticks)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the engine",
		RunE:  benchEngine,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render an SVG snapshot after N ticks",
		RunE:  renderSnapshot,
	}
	addPhysicsFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&outPath, "out", "snapshot.svg", "output file")

	rootCmd.AddCommand(runCmd, guiCmd, liveCmd, listCmd, plotCmd, analyzeCmd,
		exportJSONCmd, exportCSVCmd, presetsCmd, benchCmd, snapshotCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPhysicsFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "simulation length in ticks")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().Float64Var(&gravity, "gravity", engine.DefaultGravity, "gravity per tick")
	cmd.Flags().Float64Var(&maxSpeed, "max-speed", engine.DefaultMaxSpeed, "speed clamp")
	cmd.Flags().Float64Var(&boundaryRadius, "boundary", engine.DefaultBoundaryRadius, "boundary circle radius")
	cmd.Flags().Float64Var(&minRadius, "min-radius", engine.DefaultMinBallRadius, "smallest splittable radius")
	cmd.Flags().Float64Var(&initialRadius, "initial-radius", engine.DefaultInitialBallRadius, "spawn radius")
	cmd.Flags().Float64Var(&splitForce, "split-force", engine.DefaultSplitForce, "child launch speed")
	cmd.Flags().Float64Var(&splitAngle, "split-angle", engine.DefaultSplitAngleDeg, "child angle offset (degrees)")
	cmd.Flags().Float64Var(&shrinkFactor, "shrink", engine.DefaultShrinkFactor, "radius divisor per split")
	cmd.Flags().Float64Var(&bounceFactor, "bounce", engine.DefaultBounceFactor, "post-bounce speed factor")
}

// buildParams resolves the effective configuration: preset, then config
// file, with explicitly set CLI flags overriding both.
func buildParams(cmd *cobra.Command) (engine.Params, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return engine.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return engine.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if !cmd.Flags().Changed("ticks") {
		ticks = cfg.Ticks
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}
	if !cmd.Flags().Changed("gravity") {
		gravity = cfg.Gravity
	}
	if !cmd.Flags().Changed("max-speed") {
		maxSpeed = cfg.MaxSpeed
	}
	if !cmd.Flags().Changed("boundary") {
		boundaryRadius = cfg.BoundaryRadius
	}
	if !cmd.Flags().Changed("min-radius") {
		minRadius = cfg.MinBallRadius
	}
	if !cmd.Flags().Changed("initial-radius") {
		initialRadius = cfg.InitialBallRadius
	}
	if !cmd.Flags().Changed("split-force") {
		splitForce = cfg.SplitForce
	}
	if !cmd.Flags().Changed("split-angle") {
		splitAngle = cfg.SplitAngle
	}
	if !cmd.Flags().Changed("shrink") {
		shrinkFactor = cfg.ShrinkFactor
	}
	if !cmd.Flags().Changed("bounce") {
		bounceFactor = cfg.BounceFactor
	}

	effective := &config.Config{
		Ticks:             ticks,
		Seed:              seed,
		Gravity:           gravity,
		MaxSpeed:          maxSpeed,
		BoundaryRadius:    boundaryRadius,
		MinBallRadius:     minRadius,
		InitialBallRadius: initialRadius,
		SplitForce:        splitForce,
		SplitAngle:        splitAngle,
		ShrinkFactor:      shrinkFactor,
		BounceFactor:      bounceFactor,
	}
	return effective.EngineParams()
}

func newRunner(p engine.Params) (*sim.Runner, *engine.World) {
	w := engine.NewWorld(p, seed)
	w.SpawnInitial()

	r := sim.New(w)
	for _, m := range metrics.Standard() {
		r.AddMetric(m)
	}
	return r, w
}

func runSimulation(cmd *cobra.Command, args []string) error {
	p, err := buildParams(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner, _ := newRunner(p)

	fmt.Printf("running %d ticks...\n", ticks)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{Ticks: ticks, Seed: seed})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(seed, ticks, p, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("final balls: %d\n", result.FinalCount)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tTICKS\tGRAVITY\tFORCE\tBALLS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.1f\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Gravity,
			run.SplitForce,
			run.FinalBalls,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	result, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(result.Counts) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(result.Counts))

	fmt.Println(asciigraph.Plot(result.Counts,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("ball count"),
	))
	fmt.Println()

	fmt.Println(asciigraph.Plot(result.Energy,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("kinetic energy"),
	))
	fmt.Println()

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	result, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(result.Counts) == 0 {
		return fmt.Errorf("no data")
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)

	ps := analysis.PowerSpectrum(analysis.Detrend(result.Counts))
	plotData := ps
	if len(plotData) > len(ps)/4 && len(ps) >= 8 {
		plotData = ps[:len(ps)/4]
	}

	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (ball count)"),
	))
	fmt.Println()

	// The simulation presents at 60 ticks per second.
	freq := analysis.DominantFrequency(result.Counts, 60)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func exportJSONRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	result, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	p := engine.DefaultParams()
	p.Gravity = meta.Gravity
	p.BoundaryRadius = meta.BoundaryRadius
	p.SplitForce = meta.SplitForce

	return storage.ExportJSONStdout(meta.Seed, meta.Ticks, p, result)
}

func exportCSVRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	result, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(result.Ticks) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"tick", "balls", "energy", "splits"}); err != nil {
		return err
	}
	for i := range result.Ticks {
		row := []string{
			strconv.FormatFloat(result.Ticks[i], 'f', 0, 64),
			strconv.FormatFloat(result.Counts[i], 'f', 0, 64),
			strconv.FormatFloat(result.Energy[i], 'f', 6, 64),
			strconv.FormatFloat(result.Splits[i], 'f', 0, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func benchEngine(cmd *cobra.Command, args []string) error {
	tickCounts := []int{600, 3600, 36000}

	fmt.Println("benchmarking engine")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICKS\tBALLS\tTIME\tTICKS/SEC")

	for _, n := range tickCounts {
		world := engine.NewWorld(engine.DefaultParams(), 42)
		world.SpawnInitial()
		runner := sim.New(world)

		start := time.Now()
		result, err := runner.Run(context.Background(), sim.Config{Ticks: n, Seed: 42})
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n",
			n, result.FinalCount, elapsed, float64(n)/elapsed.Seconds())
	}

	return w.Flush()
}

func renderSnapshot(cmd *cobra.Command, args []string) error {
	p, err := buildParams(cmd)
	if err != nil {
		return err
	}

	w := engine.NewWorld(p, seed)
	w.SpawnInitial()
	for i := 0; i < ticks; i++ {
		w.Step(nil)
	}

	svg := export.SnapshotToSVG(w.Snapshot(), p)
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d balls after %d ticks)\n", outPath, w.Count(), ticks)
	return nil
}
