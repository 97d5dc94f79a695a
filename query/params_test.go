package query

import (
	"testing"
	"time"
)

func TestParseFromQueryParamsTypeInference(t *testing.T) {
	params := map[string]string{
		"guest_id":  "42",
		"is_active": "true",
		"amount":    "12.5",
		"status":    "confirmed",
		"notes":     "null",
	}
	filters := ParseFromQueryParams(params, []string{"guest_id", "is_active", "amount", "status", "notes"})

	if v, ok := filters["guest_id"].(int); !ok || v != 42 {
		t.Fatalf("guest_id: got %#v", filters["guest_id"])
	}
	if v, ok := filters["is_active"].(bool); !ok || !v {
		t.Fatalf("is_active: got %#v", filters["is_active"])
	}
	if v, ok := filters["amount"].(float64); !ok || v != 12.5 {
		t.Fatalf("amount: got %#v", filters["amount"])
	}
	if v, ok := filters["status"].(string); !ok || v != "confirmed" {
		t.Fatalf("status: got %#v", filters["status"])
	}
	if v, present := filters["notes"]; !present || v != nil {
		t.Fatalf("notes should be present and nil, got %#v", v)
	}
}

func TestParseFromQueryParamsTimestamp(t *testing.T) {
	filters := ParseFromQueryParams(map[string]string{
		"check_in": "2026-03-15",
	}, []string{"check_in"})

	ts, ok := filters["check_in"].(time.Time)
	if !ok {
		t.Fatalf("check_in: got %#v", filters["check_in"])
	}
	if ts.Year() != 2026 || ts.Month() != time.March || ts.Day() != 15 {
		t.Fatalf("unexpected date: %v", ts)
	}
}

func TestParseFromQueryParamsInSuffix(t *testing.T) {
	filters := ParseFromQueryParams(map[string]string{
		"status_in": "confirmed, booked,cancelled",
	}, []string{"status"})

	values, ok := filters["status"].([]interface{})
	if !ok {
		t.Fatalf("status: got %#v", filters["status"])
	}
	if len(values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(values))
	}
	if values[1] != "booked" {
		t.Fatalf("whitespace not trimmed: %#v", values[1])
	}
}

func TestParseFromQueryParamsFieldEndingInIn(t *testing.T) {
	filters := ParseFromQueryParams(map[string]string{
		"check_in":  "2026-03-15",
		"status_in": "confirmed,booked",
	}, []string{"check_in", "status"})

	// check_in is a whitelisted column, not a list filter on "check"
	if _, ok := filters["check_in"].(time.Time); !ok {
		t.Fatalf("check_in: got %#v", filters["check_in"])
	}
	if _, present := filters["check"]; present {
		t.Fatalf("check should not exist: %#v", filters)
	}
	values, ok := filters["status"].([]interface{})
	if !ok || len(values) != 2 {
		t.Fatalf("status: got %#v", filters["status"])
	}
}

func TestParseFromQueryParamsSkipsReservedAndUnknown(t *testing.T) {
	filters := ParseFromQueryParams(map[string]string{
		"page":       "3",
		"limit":      "50",
		"sort_by":    "id",
		"sort_order": "desc",
		"password":   "secret",
		"status":     "confirmed",
	}, []string{"status"})

	if len(filters) != 1 {
		t.Fatalf("expected only status, got %#v", filters)
	}
	if filters["status"] != "confirmed" {
		t.Fatalf("status: got %#v", filters["status"])
	}
}

func TestReduceSpecialKeys(t *testing.T) {
	original := map[string]interface{}{
		"status":        "confirmed",
		"check_in_from": "2026-01-01",
		"check_in_to":   "2026-01-31",
		"name_search":   "smith",
		"tags_contains": "{vip}",
		"floor":         2,
	}
	reduced, conds := ReduceSpecialKeys(original)

	if len(reduced) != 2 {
		t.Fatalf("expected 2 plain filters, got %#v", reduced)
	}
	if len(conds) != 4 {
		t.Fatalf("expected 4 special conditions, got %+v", conds)
	}

	byField := make(map[string]Condition)
	for _, c := range conds {
		byField[c.Field+"/"+string(c.Operator)] = c
	}
	if _, ok := byField["check_in/gte"]; !ok {
		t.Fatalf("missing gte condition: %+v", conds)
	}
	if _, ok := byField["check_in/lte"]; !ok {
		t.Fatalf("missing lte condition: %+v", conds)
	}
	if c, ok := byField["name/ilike"]; !ok || c.Value != "%smith%" {
		t.Fatalf("search condition wrong: %+v", conds)
	}
	if _, ok := byField["tags/cs"]; !ok {
		t.Fatalf("missing contains condition: %+v", conds)
	}

	// caller's map untouched
	if len(original) != 6 {
		t.Fatalf("input map was mutated: %#v", original)
	}
}
