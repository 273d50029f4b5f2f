package engine

import (
	"fmt"
	"strconv"
	"strings"

	"alcyxob/adaptive-coach/internal/domain"
)

// ConditionField is the closed set of values a rule condition may reference.
type ConditionField string

const (
	FieldCompletionRate   ConditionField = "completion_rate"
	FieldConsistencyScore ConditionField = "consistency_score"
	FieldAverageRPE       ConditionField = "average_rpe"
	FieldAverageRating    ConditionField = "average_rating"
	FieldWeekNumber       ConditionField = "week_number"
)

// Comparator is the closed set of comparison operators.
type Comparator string

const (
	OpGT  Comparator = ">"
	OpGTE Comparator = ">="
	OpLT  Comparator = "<"
	OpLTE Comparator = "<="
	OpEQ  Comparator = "=="
)

var validFields = map[ConditionField]bool{
	FieldCompletionRate:   true,
	FieldConsistencyScore: true,
	FieldAverageRPE:       true,
	FieldAverageRating:    true,
	FieldWeekNumber:       true,
}

var validOps = map[Comparator]bool{
	OpGT: true, OpGTE: true, OpLT: true, OpLTE: true, OpEQ: true,
}

// Condition is the parsed form of a rule condition string such as
// "completion_rate > 90%". Conditions are parsed once at template load;
// anything that does not fit the field/comparator/threshold form is a
// malformed template.
type Condition struct {
	Field     ConditionField
	Op        Comparator
	Threshold float64
}

// ConditionEnv supplies the values a condition is evaluated against. Analysis
// may be nil for weekly triggers.
type ConditionEnv struct {
	WeekNumber int
	Analysis   *domain.WeekCompletionAnalysis
}

// ParseCondition parses a condition string into its closed AST form.
// Percent-suffixed thresholds are normalized to the 0..1 scale used by
// completion rates.
func ParseCondition(raw string) (Condition, error) {
	parts := strings.Fields(strings.TrimSpace(raw))
	if len(parts) != 3 {
		return Condition{}, fmt.Errorf("condition %q: expected \"<field> <op> <value>\"", raw)
	}

	field := ConditionField(parts[0])
	if !validFields[field] {
		return Condition{}, fmt.Errorf("condition %q: unknown field %q", raw, parts[0])
	}

	op := Comparator(parts[1])
	if !validOps[op] {
		return Condition{}, fmt.Errorf("condition %q: unknown comparator %q", raw, parts[1])
	}

	valueStr := parts[2]
	percent := strings.HasSuffix(valueStr, "%")
	valueStr = strings.TrimSuffix(valueStr, "%")
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return Condition{}, fmt.Errorf("condition %q: invalid threshold %q", raw, parts[2])
	}
	if percent {
		value /= 100
	}

	return Condition{Field: field, Op: op, Threshold: value}, nil
}

// RequiresAnalysis reports whether evaluating the condition needs a prior
// week's completion analysis.
func (c Condition) RequiresAnalysis() bool {
	return c.Field != FieldWeekNumber
}

// Evaluate applies the condition to the environment. A condition that needs
// analysis evaluates to false when none is available.
func (c Condition) Evaluate(env ConditionEnv) bool {
	var actual float64
	switch c.Field {
	case FieldWeekNumber:
		actual = float64(env.WeekNumber)
	case FieldCompletionRate:
		if env.Analysis == nil {
			return false
		}
		actual = env.Analysis.CompletionRate
	case FieldConsistencyScore:
		if env.Analysis == nil {
			return false
		}
		actual = float64(env.Analysis.ConsistencyScore)
	case FieldAverageRPE:
		if env.Analysis == nil {
			return false
		}
		actual = env.Analysis.AverageRPE
	case FieldAverageRating:
		if env.Analysis == nil {
			return false
		}
		actual = env.Analysis.AverageRating
	default:
		return false
	}

	switch c.Op {
	case OpGT:
		return actual > c.Threshold
	case OpGTE:
		return actual >= c.Threshold
	case OpLT:
		return actual < c.Threshold
	case OpLTE:
		return actual <= c.Threshold
	case OpEQ:
		return actual == c.Threshold
	default:
		return false
	}
}
