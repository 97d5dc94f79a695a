package query

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// keys consumed by pagination/sorting, never treated as filters
var reservedParamKeys = map[string]bool{
	"page":       true,
	"limit":      true,
	"sort_by":    true,
	"sort_order": true,
}

var (
	integerPattern = regexp.MustCompile(`^-?\d+$`)
	decimalPattern = regexp.MustCompile(`^-?\d+\.\d+$`)
	// date or date-time, with optional fraction and zone
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?)?$`)
)

// ParseFromQueryParams extracts a filter mapping from flat string key/value
// pairs. Types are inferred from the raw string; an `_in` suffix splits a
// comma-separated value into an array (inference per element). Keys outside
// allowedFields and reserved pagination/sort keys are silently excluded.
func ParseFromQueryParams(params map[string]string, allowedFields []string) map[string]interface{} {
	filters := make(map[string]interface{})
	for key, raw := range params {
		if reservedParamKeys[key] {
			continue
		}
		field, isList := key, false
		// a key only acts as a list suffix when it is not itself a field
		// (check_in is a column, status_in is a list filter on status)
		if stripped, ok := strings.CutSuffix(key, "_in"); ok && !exactField(key, allowedFields) {
			field, isList = stripped, true
		}
		if !fieldAllowed(field, allowedFields) {
			continue
		}
		if isList {
			parts := strings.Split(raw, ",")
			values := make([]interface{}, 0, len(parts))
			for _, part := range parts {
				values = append(values, inferValue(strings.TrimSpace(part)))
			}
			filters[field] = values
			continue
		}
		filters[field] = inferValue(raw)
	}
	return filters
}

func exactField(field string, allowedFields []string) bool {
	for _, allowed := range allowedFields {
		if field == allowed {
			return true
		}
	}
	return false
}

// a key matches when it equals an allowed field or extends one with a suffix
// (range/search extensions like check_in_from)
func fieldAllowed(field string, allowedFields []string) bool {
	for _, allowed := range allowedFields {
		if field == allowed || strings.HasPrefix(field, allowed+"_") {
			return true
		}
	}
	return false
}

func inferValue(raw string) interface{} {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if integerPattern.MatchString(raw) {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	if decimalPattern.MatchString(raw) {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	if timestampPattern.MatchString(raw) {
		if t, ok := parseTimestamp(raw); ok {
			return t.UTC()
		}
	}
	return raw
}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ReduceSpecialKeys consumes range/search extension keys (field_from,
// field_to, field_search, field_contains) into explicit conditions and
// returns the remaining plain filters as a NEW map. The caller's map is
// never mutated.
func ReduceSpecialKeys(filters map[string]interface{}) (map[string]interface{}, []Condition) {
	reduced := make(map[string]interface{}, len(filters))
	var conditions []Condition

	for key, value := range filters {
		if value == nil {
			continue
		}
		switch {
		case strings.HasSuffix(key, "_from"):
			field := strings.TrimSuffix(key, "_from")
			conditions = append(conditions, Condition{Field: field, Operator: OpGte, Value: value})
		case strings.HasSuffix(key, "_to"):
			field := strings.TrimSuffix(key, "_to")
			conditions = append(conditions, Condition{Field: field, Operator: OpLte, Value: value})
		case strings.HasSuffix(key, "_search"):
			field := strings.TrimSuffix(key, "_search")
			if s, ok := value.(string); ok && s != "" {
				conditions = append(conditions, Condition{Field: field, Operator: OpIlike, Value: "%" + s + "%"})
			}
		case strings.HasSuffix(key, "_contains"):
			field := strings.TrimSuffix(key, "_contains")
			conditions = append(conditions, Condition{Field: field, Operator: OpContains, Value: value})
		default:
			reduced[key] = value
		}
	}
	return reduced, conditions
}
