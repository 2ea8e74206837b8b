package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/forgo/places/api/internal/database"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

const (
	placeTable = "place"
	userTable  = "user"
)

// recordKey extracts the bare key of a record id, dropping the table prefix
func recordKey(id interface{}) string {
	switch v := id.(type) {
	case string:
		return stripTable(v)
	case models.RecordID:
		return fmt.Sprint(v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprint(v.ID)
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if key, ok := v["id"]; ok {
			return recordKey(key)
		}
	}
	return ""
}

// stripTable turns "place:⟨abc⟩" or "place:abc" into "abc"
func stripTable(s string) string {
	if i := strings.Index(s, ":"); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimPrefix(s, "⟨")
	s = strings.TrimSuffix(s, "⟩")
	return strings.Trim(s, "`")
}

// extractQueryResults extracts the rows of the first statement of a query
func extractQueryResults(result []interface{}) []interface{} {
	if len(result) == 0 {
		return nil
	}
	if first, ok := result[0].(map[string]interface{}); ok {
		if _, wrapped := first["status"]; wrapped {
			if rows, ok := first["result"].([]interface{}); ok {
				return rows
			}
			return nil
		}
	}
	// Direct array format
	return result
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getFloat extracts a numeric value from a map
func getFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}

// getMap extracts a nested object from a map
func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

// getKeySlice extracts a list of record links as bare keys
func getKeySlice(m map[string]interface{}, key string) []string {
	v, ok := m[key].([]interface{})
	if !ok {
		return []string{}
	}
	keys := make([]string, 0, len(v))
	for _, item := range v {
		if k := recordKey(item); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// getTime extracts a time value from a map
func getTime(m map[string]interface{}, key string) time.Time {
	switch t := m[key].(type) {
	case time.Time:
		return t
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// now returns the current time in the store's datetime encoding
func now() models.CustomDateTime {
	return models.CustomDateTime{Time: time.Now().UTC()}
}

// statement is one query of a multi-statement transaction
type statement struct {
	query string
	vars  map[string]interface{}
}

// inTransaction runs stmts in one database transaction. Nothing is written
// unless every statement succeeds.
func inTransaction(ctx context.Context, db database.Database, stmts ...statement) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	for _, st := range stmts {
		if err := tx.Execute(ctx, st.query, st.vars); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
