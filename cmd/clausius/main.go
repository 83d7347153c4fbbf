package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/clausius/internal/cli"
	"github.com/alexanderramin/clausius/internal/db"
	"github.com/alexanderramin/clausius/internal/repository"
	"github.com/alexanderramin/clausius/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.clausius/clausius.db
	dbPath := os.Getenv("CLAUSIUS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".clausius", "clausius.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	substanceRepo := repository.NewSQLiteSubstanceRepo(database)

	app := &cli.App{
		Substances: service.NewSubstanceService(substanceRepo),
		Diagrams:   service.NewDiagramService(substanceRepo),
	}

	// Detect interactive terminal for the entry form and spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
