// Command demo runs an interactive terminal visualization of the URL
// pattern analyzer: it streams synthetic request lines through the
// clusterer and renders the inferred patterns and compression live.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
