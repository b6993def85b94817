package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/frameplay/internal/config"
	"github.com/olivier-w/frameplay/internal/sampler"
	"github.com/olivier-w/frameplay/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("frameplay", flag.ContinueOnError)
	configPath := fs.String("config", "frameplay.yaml", "path to a YAML config file")
	screen := fs.String("screen", "", "open a screen directly (explicit, simulator, compare, vectors)")
	function := fs.String("function", "", "initial function family of the explicit screen")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if os.Getenv("FRAMEPLAY_DEBUG") != "" {
		f, err := tea.LogToFile("frameplay-debug.log", "frameplay")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model, err := buildModel(*configPath, *screen, *function)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	return err
}

// buildModel loads the configuration and applies the command-line
// overrides.
func buildModel(configPath, screen, function string) (appModel, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return appModel{}, err
	}
	if function != "" {
		k, err := sampler.ParseKind(function)
		if err != nil {
			return appModel{}, fmt.Errorf("%w (supported: %s)", err, kindList())
		}
		cfg.Explicit.Function = k.String()
	}
	log.Printf("config %s: max safe frames %d, tick %v", configPath, cfg.MaxSafeFrames, cfg.TickInterval)

	if screen == "" {
		return newAppModel(cfg), nil
	}
	s, err := ui.ParseScreen(screen)
	if err != nil {
		return appModel{}, err
	}
	return newAppModelAt(cfg, s), nil
}

func kindList() string {
	s := ""
	for i, k := range sampler.Kinds() {
		if i > 0 {
			s += ", "
		}
		s += k.String()
	}
	return s
}
