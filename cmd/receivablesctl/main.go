// Package main is the operator CLI for running reconciliation and dunning
// passes outside the HTTP server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ledgerline/receivables/config"
	"github.com/ledgerline/receivables/internal/infra/db"
	"github.com/ledgerline/receivables/internal/infra/dependency"
)

var Version = "dev"

func main() {
	_ = godotenv.Load()

	// Logs go to stderr so stdout stays machine-readable JSON
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := newRootCmd(openPostgres).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openPostgres wires the application against the configured database.
func openPostgres(cfg *config.Config) (*dependency.Injector, func(), error) {
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() { _ = database.Close() }

	if err := database.Migrate(); err != nil {
		closeDB()
		return nil, nil, err
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), nil, nil)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return injector, closeDB, nil
}
