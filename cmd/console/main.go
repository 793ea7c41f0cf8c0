package main

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akinizer/adventure-of-textland/internal/api"
	"github.com/akinizer/adventure-of-textland/internal/config"
	"github.com/akinizer/adventure-of-textland/internal/logger"
	"github.com/akinizer/adventure-of-textland/internal/session"
	"github.com/akinizer/adventure-of-textland/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, cleanup, err := logger.Setup(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}
	client := api.NewClient(httpClient, cfg.APIBaseURL)
	store := session.NewStore(cfg.SessionFile)

	log.Info("starting console client", "api_base_url", cfg.APIBaseURL)

	p := tea.NewProgram(ui.New(cfg, client, store, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
