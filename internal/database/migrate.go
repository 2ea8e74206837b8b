package database

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadMigrations reads the .surql files in dir, sorted by name.
// seed.surql is skipped.
func LoadMigrations(dir string) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading migrations dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasSuffix(name, ".surql") && name != "seed.surql" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		migrations = append(migrations, Migration{Name: name, Statements: string(content)})
	}
	return migrations, nil
}

// Migration is one schema file
type Migration struct {
	Name       string
	Statements string
}

// Migrate applies every migration in dir. Migrations must be idempotent
// (DEFINE ... IF NOT EXISTS); there is no applied-migrations table.
func Migrate(ctx context.Context, db Database, dir string) error {
	migrations, err := LoadMigrations(dir)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if err := db.Execute(ctx, m.Statements, nil); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.Name, err)
		}
		slog.InfoContext(ctx, "applied migration", slog.String("name", m.Name))
	}
	return nil
}
