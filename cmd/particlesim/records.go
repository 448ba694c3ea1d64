package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/particlesim/internal/analysis"
	"github.com/san-kum/particlesim/internal/config"
	"github.com/san-kum/particlesim/internal/export"
	"github.com/san-kum/particlesim/internal/metrics"
	"github.com/san-kum/particlesim/internal/storage"
	"github.com/san-kum/particlesim/internal/viz"
	"github.com/san-kum/particlesim/internal/world"
	"github.com/spf13/cobra"
)

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
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tBODIES\tFRAMES\tCOLLISIONS\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Bodies,
			run.Frames,
			run.Collisions,
			run.Seed,
		)
	}
	return w.Flush()
}

func loadRun(runID string) (*storage.RunMetadata, []storage.Sample, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load run: %w", err)
	}
	samples, err := st.LoadSeries(runID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load series: %w", err)
	}
	return meta, samples, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("bodies: %d  viewport: %gx%g  seed: %d\n", meta.Bodies, meta.Width, meta.Height, meta.Seed)
	fmt.Printf("frames: %d\n\n", len(samples))

	collisions := make([]float64, len(samples))
	for i, s := range samples {
		collisions[i] = float64(s.Collisions)
	}

	series := []struct {
		caption string
		data    []float64
	}{
		{"kinetic energy", storage.Energies(samples)},
		{"collisions per frame", collisions},
	}
	for _, s := range series {
		if len(s.data) < 2 {
			continue
		}
		fmt.Println(asciigraph.Plot(downsample(s.data, 80),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		))
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return storage.ExportJSON(out, meta, samples)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	meta, samples, err := loadRun(args[0])
	if err != nil {
		return err
	}
	if len(samples) < 4 {
		return fmt.Errorf("run %s: need at least 4 frames, have %d", meta.ID, len(samples))
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("bodies: %d\n\n", meta.Bodies)

	collisions := make([]float64, len(samples))
	walls := make([]float64, len(samples))
	for i, s := range samples {
		collisions[i] = float64(s.Collisions)
		walls[i] = float64(s.WallHits)
	}

	ps := analysis.PowerSpectrum(collisions)
	if len(ps) > 1 {
		fmt.Println(asciigraph.Plot(downsample(ps[1:], 80),
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (collisions)"),
		))
		fmt.Println()
	}

	report := func(name string, series []float64) {
		if p := analysis.DominantPeriod(series); p > 0 {
			fmt.Printf("%s: dominant period %.1f frames\n", name, p)
			return
		}
		fmt.Printf("%s: no periodic component\n", name)
	}
	report("collisions", collisions)
	report("wall hits", walls)
	return nil
}

func divergeWorld(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w, err := world.New(cfg.Width, cfg.Height, cfg.WorldOptions()...)
	if err != nil {
		return err
	}

	const perturbation = 1e-9
	res, err := analysis.Divergence(w, perturbation, cfg.Frames)
	if err != nil {
		return err
	}

	fmt.Printf("divergence of %d bodies (seed %d, offset %g)\n\n", w.Len(), cfg.Seed, perturbation)
	if len(res.Separation) > 1 {
		fmt.Println(asciigraph.Plot(downsample(res.Separation, 80),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("separation"),
		))
		fmt.Println()
	}
	fmt.Printf("exponent: %.4f per frame\n", res.Exponent)
	if res.Frames < len(res.Separation) {
		fmt.Printf("decorrelated after %d frames\n", res.Frames)
	} else {
		fmt.Println("never decorrelated")
	}
	return nil
}

func sweepBodies(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	counts := []int{25, 50, 100, 200, 400}
	if len(args) > 0 {
		counts = counts[:0]
		for _, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid body count: %q", a)
			}
			counts = append(counts, n)
		}
	}

	build := func(n int) (*world.World, error) {
		c := *cfg
		c.Bodies = n
		return world.New(c.Width, c.Height, c.WorldOptions()...)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	points, err := analysis.SweepBodies(ctx, counts, build, metrics.Defaults, simConfig(cfg))
	if err != nil {
		return err
	}

	names := metricNames(points[0].Metrics)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "BODIES")
	for _, n := range names {
		fmt.Fprintf(w, "\t%s", n)
	}
	fmt.Fprintln(w)
	for _, p := range points {
		fmt.Fprintf(w, "%d", p.Bodies)
		for _, n := range names {
			fmt.Fprintf(w, "\t%.4f", p.Metrics[n])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if best, ok := analysis.Best(points, "energy_drift"); ok {
		fmt.Printf("\nsteadiest energy: %d bodies (drift %.4f)\n", best.Bodies, best.Metrics["energy_drift"])
	}
	return nil
}

// snapshotBraille renders through the terminal canvas, so the picture shows
// exactly what the live view would.
func snapshotBraille(cfg *config.Config) error {
	canvas := viz.CanvasFor(cfg.Width, cfg.Height, cfg.Scale)
	vw, vh := canvas.Viewport()

	w, err := world.New(vw, vh, cfg.WorldOptions()...)
	if err != nil {
		return err
	}
	for i := 0; i < cfg.Frames; i++ {
		w.Step(canvas)
	}

	if err := export.WriteFile(snapshotOut, export.CanvasToSVG(canvas, 4)); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d cells, frame %d)\n", snapshotOut, canvas.Width, canvas.Height, w.Frame())
	return nil
}
