package query

import (
	"fmt"
	"reflect"
	"strings"
)

// OrEncoder serializes a disjunctive condition set into the expression its
// backing store consumes, plus bind arguments where the dialect uses them.
// Apply consults it for every OR composition, so swapping the store's
// dialect never touches call sites.
type OrEncoder interface {
	EncodeOr(conds []Condition) (string, []interface{})
}

// SQLOrEncoder renders a parenthesized OR group with `?` placeholders.
// It is the default encoder for the gorm-backed store.
type SQLOrEncoder struct{}

func (SQLOrEncoder) EncodeOr(conds []Condition) (string, []interface{}) {
	parts := make([]string, 0, len(conds))
	var args []interface{}
	for _, cond := range conds {
		sql, condArgs := conditionSQL(cond)
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, condArgs...)
	}
	if len(parts) == 0 {
		return "", nil
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

// PostgRESTEncoder speaks the `field.operator.value` comma-joined dialect
// used by PostgREST-style stores for OR filters. Values ride inline, so the
// argument slice is always nil.
type PostgRESTEncoder struct{}

func (PostgRESTEncoder) EncodeOr(conds []Condition) (string, []interface{}) {
	parts := make([]string, 0, len(conds))
	for _, cond := range conds {
		op := cond.Operator
		value := cond.Value
		// wildcard values switch the operator to the store's pattern matcher
		if s, ok := value.(string); ok && strings.Contains(s, "%") {
			value = strings.ReplaceAll(s, "%", "*")
			if op == OpEq {
				op = OpLike
			}
		}
		parts = append(parts, cond.Field+"."+string(op)+"."+formatExprValue(value))
	}
	return strings.Join(parts, ","), nil
}

func formatExprValue(value interface{}) string {
	if value == nil {
		return "null"
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elems := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elems = append(elems, formatExprValue(rv.Index(i).Interface()))
		}
		return "(" + strings.Join(elems, ",") + ")"
	}
	return fmt.Sprint(value)
}
