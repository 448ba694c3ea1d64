package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/san-kum/particlesim/internal/automation"
	"github.com/san-kum/particlesim/internal/metrics"
	"github.com/san-kum/particlesim/internal/storage"
	"github.com/spf13/cobra"
)

func runScenario(cmd *cobra.Command, args []string) error {
	base, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Println(sc.Description)
	}
	results, err := automation.RunScenario(ctx, sc, base, metrics.Defaults, st, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tBODIES\tFRAMES\tCOLLISIONS\tENERGY_DRIFT\tRUN")
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.4f\t%s\n",
			i+1,
			r.Config.Bodies,
			r.Result.Frames,
			r.Result.Collisions,
			r.Result.Metrics["energy_drift"],
			r.RunID,
		)
	}
	return w.Flush()
}

func runTrials(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", trials)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("running %d trials of %d bodies for %d frames (seeds from %d)\n", trials, cfg.Bodies, cfg.Frames, cfg.Seed)
	stable, unstable, err := automation.MonteCarlo(ctx, cfg, trials)
	if err != nil {
		return err
	}
	fmt.Printf("stable: %d  unstable: %d\n", stable, unstable)
	return nil
}
