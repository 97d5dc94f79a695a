package utils

import (
	"testing"
	"time"
)

func TestUniqueSlice(t *testing.T) {
	got := UniqueSlice([]int{3, 1, 3, 2, 1})
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	// first occurrence order preserved
	if got[0] != 3 || got[1] != 1 || got[2] != 2 {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestDereferencePtr(t *testing.T) {
	v := 7
	if DereferencePtr(&v) != 7 {
		t.Fatal("pointer value lost")
	}
	if DereferencePtr[int](nil) != 0 {
		t.Fatal("nil pointer must yield zero value")
	}
	if DereferencePtr[int](nil, 42) != 42 {
		t.Fatal("nil pointer must yield default")
	}
}

func TestConvertToDate(t *testing.T) {
	ts := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)

	utcDate, err := ConvertToDate(ts, "")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if utcDate.Year() != 2026 || utcDate.Month() != time.March || utcDate.Day() != 15 {
		t.Fatalf("utc date: %v", utcDate)
	}
	if utcDate.Hour() != 0 || utcDate.Minute() != 0 {
		t.Fatalf("not truncated: %v", utcDate)
	}

	// late UTC evening is already the next day further east
	yangonDate, err := ConvertToDate(ts, "Asia/Yangon")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if yangonDate.Day() != 16 {
		t.Fatalf("timezone not applied: %v", yangonDate)
	}

	if _, err := ConvertToDate(ts, "Not/AZone"); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestExecTemplate(t *testing.T) {
	sql, err := ExecTemplate("SELECT 1 {{- if .flag }} WHERE x = @x {{- end }}", map[string]interface{}{"flag": 1})
	if err != nil {
		t.Fatalf("exec template: %v", err)
	}
	if sql != "SELECT 1 WHERE x = @x" {
		t.Fatalf("got %q", sql)
	}

	sql, err = ExecTemplate("SELECT 1 {{- if .flag }} WHERE x = @x {{- end }}", map[string]interface{}{"flag": 0})
	if err != nil {
		t.Fatalf("exec template: %v", err)
	}
	if sql != "SELECT 1" {
		t.Fatalf("got %q", sql)
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		err   bool
	}{
		{"national format", "(202) 555-0147", "+12025550147", false},
		{"already e164", "+12025550147", "+12025550147", false},
		{"too short", "12345", "", true},
	}
	for _, tc := range cases {
		got, err := NormalizePhoneNumber(tc.input, "")
		if tc.err {
			if err == nil {
				t.Fatalf("%s: expected error, got %q", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
