// Command taskdeck is the interactive terminal client for the taskdeck API.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/taskdeck/taskdeck/internal/client"
	"github.com/taskdeck/taskdeck/internal/tui"
)

const defaultServerURL = "http://localhost:8080"

func main() {
	// Local .env files are a convenience for development; absence is fine.
	_ = godotenv.Load()

	serverURL := os.Getenv("TASKDECK_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}

	apiClient := client.New(serverURL)
	model := tui.NewModel(apiClient)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run UI: %v\n", err)
		os.Exit(1)
	}
}
