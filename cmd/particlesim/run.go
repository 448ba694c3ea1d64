package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/particlesim/internal/config"
	"github.com/san-kum/particlesim/internal/export"
	"github.com/san-kum/particlesim/internal/metrics"
	"github.com/san-kum/particlesim/internal/sim"
	"github.com/san-kum/particlesim/internal/storage"
	"github.com/san-kum/particlesim/internal/world"
	"github.com/spf13/cobra"
)

func simConfig(cfg *config.Config) sim.Config {
	sc := sim.Config{Frames: cfg.Frames, ValidateState: true}
	if realtime {
		sc.FPS = cfg.FPS
	}
	return sc
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if ensemble > 1 {
		return runEnsemble(ctx, cfg)
	}

	w, err := world.New(cfg.Width, cfg.Height, cfg.WorldOptions()...)
	if err != nil {
		return err
	}

	runner := sim.New(w, nil)
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}

	fmt.Printf("running %d bodies in %gx%g (seed %d)...\n", w.Len(), cfg.Width, cfg.Height, cfg.Seed)
	start := time.Now()
	result, err := runner.Run(ctx, simConfig(cfg))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Printf("collisions: %d  wall hits: %d  pointer hits: %d\n", result.Collisions, result.WallHits, result.PointerHits)
	printMetrics(result.Metrics)

	if len(result.Energy) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(downsample(result.Energy, 80),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic energy"),
		))
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(storage.RunMetadata{
			Preset: presetName(),
			Seed:   cfg.Seed,
			Bodies: w.Len(),
			Width:  cfg.Width,
			Height: cfg.Height,
		}, result)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	if svgOut != "" {
		doc := export.SeriesToSVG(result.Energy, 800, 200, "#00ffff")
		if err := export.WriteFile(svgOut, doc); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}

	if len(result.Errors) > 0 {
		return errors.Join(result.Errors...)
	}
	return nil
}

func runEnsemble(ctx context.Context, cfg *config.Config) error {
	build := func(s int64) (*world.World, error) {
		c := *cfg
		c.Seed = s
		return world.New(c.Width, c.Height, c.WorldOptions()...)
	}

	fmt.Printf("running %d worlds of %d bodies (seeds %d..%d)...\n", ensemble, cfg.Bodies, cfg.Seed, cfg.Seed+int64(ensemble-1))
	start := time.Now()
	results, err := sim.NewEnsemble(build, metrics.Defaults, ensemble, cfg.Seed).Run(ctx, simConfig(cfg))
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	names := metricNames(results[0].Metrics)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "SEED\tFRAMES\tCOLLISIONS")
	for _, n := range names {
		fmt.Fprintf(w, "\t%s", n)
	}
	fmt.Fprintln(w)

	var errs []error
	for i, res := range results {
		fmt.Fprintf(w, "%d\t%d\t%d", cfg.Seed+int64(i), res.Frames, res.Collisions)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.4f", res.Metrics[n])
		}
		fmt.Fprintln(w)
		errs = append(errs, res.Errors...)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

func metricNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printMetrics(m map[string]float64) {
	if len(m) == 0 {
		return
	}
	fmt.Println("\nmetrics:")
	for _, name := range metricNames(m) {
		fmt.Printf("  %s: %.6f\n", name, m[name])
	}
}

// downsample keeps at most n evenly spaced points so long runs still plot
// at a readable width.
func downsample(data []float64, n int) []float64 {
	if len(data) <= n {
		return data
	}
	out := make([]float64, n)
	step := float64(len(data)-1) / float64(n-1)
	for i := range out {
		out[i] = data[int(float64(i)*step)]
	}
	return out
}

func benchWorld(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	counts := []int{100, 200, 400, 800}
	fmt.Printf("benchmarking %d frames in %gx%g\n\n", cfg.Frames, cfg.Width, cfg.Height)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tFRAMES\tTIME\tFRAMES/SEC\tCOLLISIONS/FRAME")
	for _, n := range counts {
		c := *cfg
		c.Bodies = n
		wld, err := world.New(c.Width, c.Height, c.WorldOptions()...)
		if err != nil {
			return err
		}

		collisions := 0
		start := time.Now()
		for i := 0; i < c.Frames; i++ {
			collisions += wld.Step(nil).Collisions
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%v\t%.1f\t%.2f\n",
			n, c.Frames, elapsed.Round(time.Millisecond),
			float64(c.Frames)/elapsed.Seconds(),
			float64(collisions)/float64(c.Frames),
		)
	}
	return w.Flush()
}

func snapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if braille {
		return snapshotBraille(cfg)
	}

	w, err := world.New(cfg.Width, cfg.Height, cfg.WorldOptions()...)
	if err != nil {
		return err
	}
	svg := export.NewSVG(export.DefaultBackground)
	for i := 0; i < cfg.Frames; i++ {
		w.Step(svg)
	}
	if err := export.WriteFile(snapshotOut, svg.String()); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bodies, frame %d)\n", snapshotOut, svg.Len(), w.Frame())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tBODIES\tVIEWPORT\tSEED")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		s := "random"
		if p.Seed != 0 {
			s = fmt.Sprint(p.Seed)
		}
		fmt.Fprintf(w, "%s\t%d\t%gx%g\t%s\n", name, p.Bodies, p.Width, p.Height, s)
	}
	return w.Flush()
}
