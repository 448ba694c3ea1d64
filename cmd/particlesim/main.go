package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/san-kum/particlesim/internal/config"
	"github.com/san-kum/particlesim/internal/gui"
	"github.com/san-kum/particlesim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	envFile    string
	preset     string
	logFile    string
	// Population and viewport overrides
	numBodies int
	seed      int64
	width     float64
	height    float64
	frameRate int
	frames    int
	scale     float64
	theme     string
	// run
	ensemble int
	realtime bool
	saveRun  bool
	svgOut   string
	// export / snapshot
	exportOut   string
	snapshotOut string
	braille     bool
	// live
	gifPath string
	// gui
	menu  bool
	sound bool
	// trials
	trials int
)

// main registers the commands and runs the live terminal view when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "particlesim",
		Short:         "bouncing bodies with elastic collisions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".particlesim", "data directory for saved runs")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&envFile, "env", ".env", "dotenv file with PARTICLESIM_* overrides")
	pf.StringVar(&preset, "preset", "", "start from a preset (see presets)")
	pf.StringVar(&logFile, "log", "", "write diagnostics to this file")
	pf.IntVar(&numBodies, "bodies", config.DefaultBodies, "number of bodies")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.Float64Var(&width, "width", config.DefaultWidth, "viewport width")
	pf.Float64Var(&height, "height", config.DefaultHeight, "viewport height")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.IntVar(&frames, "frames", config.DefaultFrames, "frames for headless commands")
	pf.Float64Var(&scale, "scale", config.DefaultScale, "world units per terminal dot")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	for _, c := range []*cobra.Command{rootCmd, liveCmd} {
		c.Flags().StringVar(&gifPath, "gif", "particlesim.gif", "where the g key saves recordings")
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "pick a preset interactively, then run it in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := requireTerminal(); err != nil {
				return err
			}
			closeLog, err := setupLogging()
			if err != nil {
				return err
			}
			defer closeLog()
			return viz.RunInteractive(cfg)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the simulation in a native window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg, menu, sound)
		},
	}
	guiCmd.Flags().BoolVar(&menu, "menu", false, "open on the preset menu")
	guiCmd.Flags().BoolVar(&sound, "sound", false, "sonify speed and collisions")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&ensemble, "ensemble", 1, "number of seeds to run concurrently")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames at --fps")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save the run under --data")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the energy series as SVG")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	divergeCmd := &cobra.Command{
		Use:   "diverge",
		Short: "measure how fast a perturbed twin world drifts apart",
		Args:  cobra.NoArgs,
		RunE:  divergeWorld,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [counts...]",
		Short: "compare metrics across population sizes",
		RunE:  sweepBodies,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "measure frames per second for several population sizes",
		Args:  cobra.NoArgs,
		RunE:  benchWorld,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "write the world after --frames frames as SVG",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "snapshot.svg", "output file")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "render through the terminal canvas")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of headless runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "run many seeds and count the ones that stayed finite",
		Args:  cobra.NoArgs,
		RunE:  runTrials,
	}
	trialsCmd.Flags().IntVar(&trials, "trials", 20, "number of seeds")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "particlesim.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(liveCmd, tuiCmd, guiCmd, runCmd, listCmd, plotCmd, exportCmd, analyzeCmd, divergeCmd, sweepCmd, benchCmd, snapshotCmd, scenarioCmd, trialsCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig layers defaults, the preset, the config file, PARTICLESIM_*
// environment variables and finally any flag set on the command line. A zero seed is replaced by a fresh one so
// every run can be reproduced from its report.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		fileCfg, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	if err := config.LoadEnv(envFile); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}
	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("bodies") {
		cfg.Bodies = numBodies
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func presetName() string {
	if preset == "" {
		return "custom"
	}
	return preset
}
