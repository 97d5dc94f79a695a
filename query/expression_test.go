package query

import (
	"reflect"
	"testing"
)

func TestSQLOrEncoderGroupsConditions(t *testing.T) {
	var enc OrEncoder = SQLOrEncoder{}

	sql, args := enc.EncodeOr([]Condition{
		{Field: "status", Operator: OpEq, Value: "confirmed"},
		{Field: "floor", Operator: OpGte, Value: 2},
	})
	want := "(status = ? OR floor >= ?)"
	if sql != want {
		t.Fatalf("got %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"confirmed", 2}) {
		t.Fatalf("args: got %#v", args)
	}
}

func TestSQLOrEncoderSkipsUnknownOperators(t *testing.T) {
	sql, args := SQLOrEncoder{}.EncodeOr([]Condition{
		{Field: "status", Operator: "bogus", Value: "x"},
		{Field: "floor", Operator: OpLt, Value: 3},
	})
	if sql != "(floor < ?)" {
		t.Fatalf("got %q", sql)
	}
	if len(args) != 1 || args[0] != 3 {
		t.Fatalf("args: got %#v", args)
	}
}

func TestSQLOrEncoderEmpty(t *testing.T) {
	sql, args := SQLOrEncoder{}.EncodeOr(nil)
	if sql != "" || args != nil {
		t.Fatalf("got %q %#v", sql, args)
	}
}

func TestPostgRESTEncoderPlainConditions(t *testing.T) {
	var enc OrEncoder = PostgRESTEncoder{}

	got, args := enc.EncodeOr([]Condition{
		{Field: "status", Operator: OpEq, Value: "confirmed"},
		{Field: "floor", Operator: OpGte, Value: 2},
	})
	want := "status.eq.confirmed,floor.gte.2"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if args != nil {
		t.Fatalf("values ride inline, args must be nil: %#v", args)
	}
}

func TestPostgRESTEncoderWildcardSwitchesToLike(t *testing.T) {
	got, _ := PostgRESTEncoder{}.EncodeOr([]Condition{
		{Field: "name", Operator: OpEq, Value: "smith%"},
	})
	want := "name.like.smith*"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPostgRESTEncoderWildcardKeepsExplicitOperator(t *testing.T) {
	// an operator other than eq is preserved; only the wildcard is translated
	got, _ := PostgRESTEncoder{}.EncodeOr([]Condition{
		{Field: "name", Operator: OpIlike, Value: "%smith%"},
	})
	want := "name.ilike.*smith*"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPostgRESTEncoderNullValue(t *testing.T) {
	got, _ := PostgRESTEncoder{}.EncodeOr([]Condition{
		{Field: "assigned_to", Operator: OpIs, Value: nil},
	})
	want := "assigned_to.is.null"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPostgRESTEncoderArrayValue(t *testing.T) {
	got, _ := PostgRESTEncoder{}.EncodeOr([]Condition{
		{Field: "id", Operator: OpIn, Value: []int{3, 5, 8}},
	})
	want := "id.in.(3,5,8)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
