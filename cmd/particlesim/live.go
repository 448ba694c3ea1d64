package main

import (
	"errors"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/particlesim/internal/viz"
	"github.com/san-kum/particlesim/internal/world"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("the live view needs a terminal; use run for headless output")

func requireTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}
	return nil
}

// setupLogging points the standard logger at --log. The terminal belongs to
// the live view, so without --log diagnostics are discarded.
func setupLogging() (func(), error) {
	if logFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(logFile, "particlesim")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}

func runLive(cmd *cobra.Command, args []string) error {
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

	w, err := world.New(cfg.Width, cfg.Height, cfg.WorldOptions()...)
	if err != nil {
		return err
	}
	log.Printf("live: %d bodies, %gx%g, seed %d", w.Len(), cfg.Width, cfg.Height, cfg.Seed)

	m := viz.NewModel(w, viz.Options{
		Title:   presetName(),
		Scale:   cfg.Scale,
		FPS:     cfg.FPS,
		Theme:   cfg.Theme,
		GIFPath: gifPath,
	})
	return viz.Run(m)
}
