package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	server := flag.String("server", "http://localhost:8080", "arena backend base URL")
	models := flag.String("models", "o3-mini,claude-3-7-sonnet-20250219", "comma-separated model ids")
	numProblems := flag.Int("problems", 5, "number of problems (1-10)")
	flag.Parse()

	modelIDs := strings.Split(*models, ",")
	if len(modelIDs) == 0 {
		fmt.Println("Please provide at least one model via the -models flag.")
		os.Exit(1)
	}

	client := newApiClient(*server)
	compID, err := client.createComp(*numProblems, modelIDs)
	if err != nil {
		fmt.Printf("Error creating competition: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(client, compID))
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
