package achievements

import (
	"fmt"

	"go.uber.org/multierr"
)

// Evaluation is the outcome of checking one condition against one
// statistics snapshot.
type Evaluation struct {
	IsMet          bool     `json:"is_met"`
	ProgressValue  float64  `json:"progress_value"`
	ProgressTarget float64  `json:"progress_target"`
	Percentage     float64  `json:"percentage"`
	Errors         []string `json:"errors,omitempty"`
}

// statKey resolves the statistics map key for a condition: the metric name,
// scoped by the exercise filter when present, with a type-specific prefix
// for best-value metrics.
func statKey(c Condition) string {
	metric := c.Metric
	if c.Filters != nil && c.Filters.Exercise != "" {
		metric = fmt.Sprintf("%s_%s", c.Filters.Exercise, metric)
	}
	switch c.Type {
	case ConditionStreak:
		return "current_streak"
	case ConditionMax:
		return "max_" + metric
	case ConditionPR, ConditionDistanceOnce:
		return "best_" + metric
	default:
		return metric
	}
}

// Evaluate checks one declarative condition against aggregated user
// statistics. Dispatch is a closed match over the whitelisted condition
// types - there is deliberately no expression language here, and a
// malformed document comes back as a failed evaluation with an error list,
// never as a panic or an aborted batch.
func Evaluate(condition Condition, stats map[string]float64) Evaluation {
	if err := condition.Validate(); err != nil {
		eval := Evaluation{IsMet: false}
		for _, e := range multierr.Errors(err) {
			eval.Errors = append(eval.Errors, e.Error())
		}
		return eval
	}

	value := stats[statKey(condition)]

	switch condition.Type {
	case ConditionSum, ConditionCount, ConditionMax, ConditionStreak,
		ConditionPR, ConditionCountDistinct, ConditionVariety:
		target := *targetOf(condition)
		return Evaluation{
			IsMet:          value >= target,
			ProgressValue:  value,
			ProgressTarget: target,
			Percentage:     ratioPercentage(value, target),
		}
	case ConditionDistanceOnce:
		if condition.TargetLt != nil {
			// lower is better; a zero value means no attempt recorded yet
			target := *condition.TargetLt
			return Evaluation{
				IsMet:          value > 0 && value <= target,
				ProgressValue:  value,
				ProgressTarget: target,
				Percentage:     invertedPercentage(value, target),
			}
		}
		target := *targetOf(condition)
		return Evaluation{
			IsMet:          value >= target,
			ProgressValue:  value,
			ProgressTarget: target,
			Percentage:     ratioPercentage(value, target),
		}
	}

	// unreachable: Validate rejects unknown types
	return Evaluation{IsMet: false, Errors: []string{fmt.Sprintf("unknown condition type: %q", condition.Type)}}
}

func targetOf(c Condition) *float64 {
	if c.Target != nil {
		return c.Target
	}
	if c.TargetGte != nil {
		return c.TargetGte
	}
	return c.TargetLt
}

func ratioPercentage(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := value / target * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// invertedPercentage rates lower-is-better metrics: at or below the target
// is 100%, no recorded value is 0%.
func invertedPercentage(value, target float64) float64 {
	if value <= 0 {
		return 0
	}
	if value <= target {
		return 100
	}
	return target / value * 100
}
