package query

import (
	"sort"

	"gorm.io/gorm"
)

// Operator is a predicate operator understood by the backing store.
type Operator string

const (
	OpEq        Operator = "eq"
	OpNeq       Operator = "neq"
	OpGt        Operator = "gt"
	OpGte       Operator = "gte"
	OpLt        Operator = "lt"
	OpLte       Operator = "lte"
	OpLike      Operator = "like"
	OpIlike     Operator = "ilike"
	OpIs        Operator = "is"
	OpIn        Operator = "in"
	OpContains  Operator = "cs"
	OpContained Operator = "cd"
)

// Condition is one field/operator/value predicate contributed to a query.
type Condition struct {
	Field    string
	Operator Operator
	Value    interface{}
}

// Config bundles conditions with the composition mode.
// MatchAny=false folds conditions with AND; true builds one OR expression
// through Or (SQLOrEncoder when unset).
type Config struct {
	Conditions []Condition
	MatchAny   bool
	Or         OrEncoder
}

// Build turns a field=>value mapping into conditions with the default operator.
// Entries whose value is nil or an empty string are dropped rather than
// becoming wildcard-match predicates. Field order is deterministic (sorted).
func Build(filters map[string]interface{}, defaultOp Operator) []Condition {
	if defaultOp == "" {
		defaultOp = OpEq
	}
	fields := make([]string, 0, len(filters))
	for field := range filters {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	conditions := make([]Condition, 0, len(filters))
	for _, field := range fields {
		value := filters[field]
		if value == nil {
			continue
		}
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		conditions = append(conditions, Condition{Field: field, Operator: defaultOp, Value: value})
	}
	return conditions
}

// Apply adds cfg's predicates to the query. Zero conditions is the identity.
// Single-condition OR mode degrades to AND mode.
func Apply(db *gorm.DB, cfg Config) *gorm.DB {
	if len(cfg.Conditions) == 0 {
		return db
	}
	if cfg.MatchAny && len(cfg.Conditions) > 1 {
		return applyOr(db, cfg)
	}
	for _, cond := range cfg.Conditions {
		db = applyCondition(db, cond)
	}
	return db
}

func applyCondition(db *gorm.DB, cond Condition) *gorm.DB {
	sql, args := conditionSQL(cond)
	if sql == "" {
		return db
	}
	return db.Where(sql, args...)
}

func applyOr(db *gorm.DB, cfg Config) *gorm.DB {
	encoder := cfg.Or
	if encoder == nil {
		encoder = SQLOrEncoder{}
	}
	expr, args := encoder.EncodeOr(cfg.Conditions)
	if expr == "" {
		return db
	}
	return db.Where(expr, args...)
}

func conditionSQL(cond Condition) (string, []interface{}) {
	args := []interface{}{cond.Value}
	switch cond.Operator {
	case OpEq:
		return cond.Field + " = ?", args
	case OpNeq:
		return cond.Field + " <> ?", args
	case OpGt:
		return cond.Field + " > ?", args
	case OpGte:
		return cond.Field + " >= ?", args
	case OpLt:
		return cond.Field + " < ?", args
	case OpLte:
		return cond.Field + " <= ?", args
	case OpLike:
		return cond.Field + " LIKE ?", args
	case OpIlike:
		return cond.Field + " ILIKE ?", args
	case OpIs:
		if cond.Value == nil {
			return cond.Field + " IS NULL", nil
		}
		return cond.Field + " IS ?", args
	case OpIn:
		return cond.Field + " IN ?", args
	case OpContains:
		return cond.Field + " @> ?", args
	case OpContained:
		return cond.Field + " <@ ?", args
	default:
		return "", nil
	}
}
