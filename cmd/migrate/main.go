package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/forgo/places/api/internal/config"
	"github.com/forgo/places/api/internal/database"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run applies migrations and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", "./migrations", "Directory containing .surql migrations")
	dryRun := fs.Bool("dry-run", false, "List migrations without applying them")
	timeout := fs.Duration("timeout", time.Minute, "Overall timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(stderr, nil)))

	if *dryRun {
		migrations, err := database.LoadMigrations(*dir)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading migrations: %v\n", err)
			return 1
		}
		for _, m := range migrations {
			fmt.Fprintf(stdout, "%s (%d bytes)\n", m.Name, len(m.Statements))
		}
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})
	if err := db.Connect(ctx); err != nil {
		fmt.Fprintf(stderr, "Error connecting to database: %v\n", err)
		return 1
	}
	defer func() { _ = db.Close() }()

	if err := database.Migrate(ctx, db, *dir); err != nil {
		fmt.Fprintf(stderr, "Migration failed: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, "Migrations applied")
	return 0
}
