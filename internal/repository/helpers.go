package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// lastQueryRecord extracts the record produced by the last
// record-bearing statement of a multi-statement query (the CREATE
// inside a counter transaction; LET and RETURN NONE statements yield
// nothing and are skipped).
func lastQueryRecord(results []interface{}) (map[string]interface{}, error) {
	for i := len(results) - 1; i >= 0; i-- {
		resp, ok := results[i].(map[string]interface{})
		if !ok {
			continue
		}
		result := resp["result"]
		if arr, ok := result.([]interface{}); ok {
			if len(arr) == 0 {
				continue
			}
			result = arr[0]
		}
		if record, ok := result.(map[string]interface{}); ok {
			return record, nil
		}
	}
	return nil, fmt.Errorf("no record in query results")
}

// asRecord unwraps a QueryOne result into a field map.
func asRecord(result interface{}) (map[string]interface{}, error) {
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, fmt.Errorf("empty result")
		}
		result = arr[0]
	}
	record, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected result format %T", result)
	}
	return record, nil
}

// recordNumericID extracts the numeric part of a SurrealDB record ID
// such as planner:7 or event:12. The Go client may surface the ID as a
// RecordID, a map, or a plain string depending on the decode path.
func recordNumericID(id interface{}) (int64, error) {
	switch v := id.(type) {
	case models.RecordID:
		return numericIDPart(v.ID)
	case *models.RecordID:
		if v != nil {
			return numericIDPart(v.ID)
		}
	case string:
		if i := strings.LastIndex(v, ":"); i >= 0 {
			v = v[i+1:]
		}
		return strconv.ParseInt(v, 10, 64)
	case map[string]interface{}:
		if idPart, ok := v["id"]; ok {
			return numericIDPart(idPart)
		}
		if idPart, ok := v["ID"]; ok {
			return numericIDPart(idPart)
		}
	}
	return 0, fmt.Errorf("cannot extract numeric id from %T (%v)", id, id)
}

// numericIDPart converts the ID portion of a record ID to int64.
func numericIDPart(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case uint64:
		return int64(n), nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	}
	return 0, fmt.Errorf("cannot convert %T to numeric id", v)
}

// getString extracts a string value from a record field map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt64 extracts an integer value from a record field map
func getInt64(m map[string]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case int64:
		return v
	case uint64:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}
