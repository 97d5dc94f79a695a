package query

import "testing"

func TestToRange(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		from, to    int
	}{
		{"first page", 1, 20, 0, 19},
		{"second page", 2, 20, 20, 39},
		{"limit one", 3, 1, 2, 2},
		{"odd limit", 4, 7, 21, 27},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ToRange(tc.page, tc.limit)
			if r.From != tc.from || r.To != tc.to {
				t.Fatalf("ToRange(%d, %d) = [%d, %d], want [%d, %d]",
					tc.page, tc.limit, r.From, r.To, tc.from, tc.to)
			}
		})
	}
}

func TestToRangeContiguousPages(t *testing.T) {
	limit := 13
	prev := ToRange(1, limit)
	if prev.From != 0 {
		t.Fatalf("first page must start at 0, got %d", prev.From)
	}
	for page := 2; page <= 10; page++ {
		r := ToRange(page, limit)
		if r.From != prev.To+1 {
			t.Fatalf("page %d starts at %d, previous ended at %d", page, r.From, prev.To)
		}
		if r.To-r.From+1 != limit {
			t.Fatalf("page %d spans %d rows, want %d", page, r.To-r.From+1, limit)
		}
		prev = r
	}
}
