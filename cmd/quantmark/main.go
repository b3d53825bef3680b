package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	savePath := "circuit.txt"
	if len(os.Args) > 1 {
		savePath = os.Args[1]
	}

	p := tea.NewProgram(initialModel(savePath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
