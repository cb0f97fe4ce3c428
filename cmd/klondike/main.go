package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/klondike/internal/config"
	"github.com/palemoky/klondike/internal/logger"
	"github.com/palemoky/klondike/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the config file")
	seed := flag.Uint64("seed", 0, "deal seed, 0 deals a random game")
	ascii := flag.Bool("ascii", false, "render suits as letters instead of glyphs")
	flag.Parse()

	if err := logger.Init(); err != nil {
		log.Printf("Debug log unavailable: %v", err)
	}
	defer logger.Close()

	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			fmt.Fprintf(os.Stderr, "klondike crashed: %v\nsee %s for details\n", r, logger.GetLogPath())
			os.Exit(1)
		}
	}()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.LogInfo("config not loaded, using defaults: %v", err)
		cfg = config.Default()
	}

	// Flags win over the config file and the environment.
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *ascii {
		cfg.Display.ASCII = true
	}

	p := tea.NewProgram(ui.NewGameModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.LogError("program exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "error running klondike: %v\n", err)
		os.Exit(1)
	}
}
