package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/ethanbaker/taskboard/internal/seed"
	"github.com/ethanbaker/taskboard/pkg/board"
	"github.com/ethanbaker/taskboard/pkg/utils"
)

func main() {
	// Find env file
	envFile := ".env"
	if os.Getenv("ENV_FILE") != "" {
		envFile = os.Getenv("ENV_FILE")
	}

	// Load global config
	cfg := utils.NewConfigFromEnv(envFile)

	searchMode, err := board.ParseSearchMode(cfg.Get("BOARD_SEARCH_MODE"))
	if err != nil {
		log.Fatalf("[COMMANDLINE]: Invalid BOARD_SEARCH_MODE: %v", err)
	}
	sortOrder, err := board.ParseSortOrder(cfg.Get("BOARD_DEFAULT_SORT"))
	if err != nil {
		log.Fatalf("[COMMANDLINE]: Invalid BOARD_DEFAULT_SORT: %v", err)
	}

	engine := board.NewEngine(&board.Options{SearchMode: searchMode, SortOrder: sortOrder})

	// Start from the board template if one is configured
	name := "Task board"
	if path := cfg.Get("BOARD_SEED_FILE"); path != "" {
		template, err := seed.Load(path)
		if err != nil {
			log.Fatalf("[COMMANDLINE]: Failed to load board template: %v", err)
		}
		if err := template.Apply(engine); err != nil {
			log.Fatalf("[COMMANDLINE]: Failed to apply board template: %v", err)
		}
		if template.Name != "" {
			name = template.Name
		}
	}

	if err := startInteractiveSession(newShell(name, engine, os.Stdout)); err != nil {
		log.Fatalf("[COMMANDLINE]: %v", err)
	}
}

// startInteractiveSession reads commands from stdin until exit or EOF
func startInteractiveSession(sh *shell) error {
	fmt.Fprintf(sh.out, "%s started with %d task(s). Type 'help' for commands or 'exit' to quit.\n", sh.name, sh.engine.Len())

	scanner := bufio.NewScanner(os.Stdin)
	for !sh.done {
		fmt.Fprint(sh.out, "\n> ")
		if !scanner.Scan() {
			break
		}

		if err := sh.execute(scanner.Text()); err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	fmt.Fprintln(sh.out, "Goodbye!")
	return nil
}
