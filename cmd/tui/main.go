package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"runway-analyzer/internal/tui"
)

func main() {
	p := tea.NewProgram(tui.NewApp(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
