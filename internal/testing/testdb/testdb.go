// Package testdb provides isolated SurrealDB databases for integration tests.
//
// Each TestDB gets a unique namespace with the migrations applied. When no
// SurrealDB server is reachable the calling test is skipped, so unit test
// runs do not need one.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    repo := repository.NewPlaceRepository(tdb.DB)
//	}
package testdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/forgo/places/api/internal/database"
)

// TestDB provides an isolated database environment for testing.
type TestDB struct {
	DB        database.Database
	Namespace string
	t         *testing.T
}

var (
	counterMu sync.Mutex
	counter   int64
)

// getTestConfig returns database config from environment or defaults
func getTestConfig() database.Config {
	return database.Config{
		Host:     envOr("TEST_DB_HOST", "localhost"),
		Port:     envOr("TEST_DB_PORT", "8000"),
		User:     envOr("TEST_DB_USER", "root"),
		Password: envOr("TEST_DB_PASSWORD", "root"),
		Database: "test",
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// uniqueNamespace generates a unique namespace for test isolation
func uniqueNamespace() string {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return fmt.Sprintf("test_%d_%d", time.Now().UnixNano(), counter)
}

// migrationsDir walks up from the working directory to find migrations/
func migrationsDir() string {
	if root := os.Getenv("PLACES_ROOT"); root != "" {
		return filepath.Join(root, "migrations")
	}
	for _, p := range []string{"migrations", "../migrations", "../../migrations", "../../../migrations"} {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			return p
		}
	}
	return ""
}

// New creates a new isolated test database with migrations applied.
func New(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("testdb: skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := getTestConfig()
	cfg.Namespace = uniqueNamespace()

	db := database.NewSurrealDB(cfg)
	if err := db.Connect(ctx); err != nil {
		t.Skipf("testdb: SurrealDB not available: %v", err)
	}

	dir := migrationsDir()
	if dir == "" {
		_ = db.Close()
		t.Fatal("testdb: could not find migrations directory")
	}
	if err := database.Migrate(ctx, db, dir); err != nil {
		_ = db.Close()
		t.Fatalf("testdb: %v", err)
	}

	return &TestDB{DB: db, Namespace: cfg.Namespace, t: t}
}

// Close removes the test namespace and closes the connection.
func (tdb *TestDB) Close() {
	if tdb.DB == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = tdb.DB.Execute(ctx, fmt.Sprintf("REMOVE NAMESPACE %s", tdb.Namespace), nil)
	_ = tdb.DB.Close()
}

// Count returns the number of records in table.
func (tdb *TestDB) Count(table string) int {
	tdb.t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := tdb.DB.QueryOne(ctx, fmt.Sprintf("SELECT count() AS count FROM %s GROUP ALL", table), nil)
	if err != nil {
		// GROUP ALL on an empty table yields no rows
		return 0
	}
	row, ok := result.(map[string]interface{})
	if !ok {
		tdb.t.Fatalf("testdb: unexpected count result %T", result)
	}
	switch c := row["count"].(type) {
	case uint64:
		return int(c)
	case int64:
		return int(c)
	case float64:
		return int(c)
	case int:
		return c
	}
	return 0
}
