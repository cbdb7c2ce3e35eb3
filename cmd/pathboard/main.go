package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jusunglee/pathboard/internal/config"
	"github.com/jusunglee/pathboard/internal/feed"
	"github.com/jusunglee/pathboard/internal/logging"
	"github.com/jusunglee/pathboard/internal/ui"
)

func main() {
	var (
		configFile = flag.String("config", "config.json", "Config JSON file")
		station    = flag.String("station", "", "Station code override")
	)
	flag.Parse()

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logging.Error("Failed to load config", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *station != "" {
		cfg.Station = *station
	}

	logging.Info("pathboard starting", "station", cfg.Station)

	manager := feed.NewManager(cfg)
	program := tea.NewProgram(ui.New(cfg), tea.WithAltScreen())

	// Forward poller events into the UI context. program.Send is safe
	// from any goroutine and preserves delivery order.
	go func() {
		for ev := range manager.Events() {
			if ev.Err != nil {
				program.Send(ui.FetchFailedMsg{Err: ev.Err.Error()})
				continue
			}
			program.Send(ui.SnapshotMsg{Snapshot: ev.Snapshot})
		}
	}()

	manager.Start()

	if _, err := program.Run(); err != nil {
		logging.Error("UI error", "error", err)
	}

	manager.Stop()
	logging.Info("pathboard stopped")
}
