package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/akyairhashvil/dealgrid/internal/config"
	"github.com/akyairhashvil/dealgrid/internal/database"
	"github.com/akyairhashvil/dealgrid/internal/tui"
	"github.com/akyairhashvil/dealgrid/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "dealgrid needs an interactive terminal")
		os.Exit(1)
	}

	ctx := context.Background()

	dbPath := resolveDBPath()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Open(ctx, dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.SeedIfEmpty(ctx); err != nil {
		util.LogError("seed demo deals", err)
	}

	model := tui.NewMainModel(ctx, db)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

// resolveDBPath returns the database location, honoring the DEALGRID_DB
// override for tests and portable setups.
func resolveDBPath() string {
	if p := os.Getenv("DEALGRID_DB"); p != "" {
		return p
	}
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}
