package query

// Range is an inclusive zero-based row range.
type Range struct {
	From int
	To   int
}

// ToRange converts a 1-based (page, limit) pair into an inclusive row range.
// Callers must pass page >= 1 and limit >= 1; inputs are not validated here.
func ToRange(page, limit int) Range {
	from := (page - 1) * limit
	return Range{From: from, To: from + limit - 1}
}
