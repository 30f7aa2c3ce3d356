package achievements

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// ConditionType is the closed set of evaluation strategies. Conditions are
// data, never code: anything outside this whitelist is rejected at
// validation time and is never executed.
type ConditionType string

const (
	ConditionSum           ConditionType = "sum"
	ConditionCount         ConditionType = "count"
	ConditionMax           ConditionType = "max"
	ConditionStreak        ConditionType = "streak"
	ConditionPR            ConditionType = "pr"
	ConditionDistanceOnce  ConditionType = "distance_once"
	ConditionCountDistinct ConditionType = "count_distinct"
	ConditionVariety       ConditionType = "variety"
)

func (ct ConditionType) IsValid() bool {
	switch ct {
	case ConditionSum, ConditionCount, ConditionMax, ConditionStreak,
		ConditionPR, ConditionDistanceOnce, ConditionCountDistinct, ConditionVariety:
		return true
	default:
		return false
	}
}

// Filters optionally scope a condition; an exercise filter makes the metric
// lookup key "{exercise}_{metric}".
type Filters struct {
	Exercise   string  `json:"exercise,omitempty"`
	DistanceKm float64 `json:"distance_km,omitempty"`
}

// Condition is an externally authored, declarative achievement condition
// document. Exactly one of Target / TargetLt / TargetGte must be set;
// TargetLt marks a lower-is-better metric (e.g. a time over a distance).
type Condition struct {
	Type      ConditionType `json:"type"`
	Metric    string        `json:"metric,omitempty"`
	Filters   *Filters      `json:"filters,omitempty"`
	Target    *float64      `json:"target,omitempty"`
	TargetLt  *float64      `json:"target_lt,omitempty"`
	TargetGte *float64      `json:"target_gte,omitempty"`
}

// Validate collects every fault of the document instead of stopping at the
// first one, so config authors see the full picture at once.
func (c Condition) Validate() error {
	var err error

	if !c.Type.IsValid() {
		err = multierr.Append(err, fmt.Errorf("unknown condition type: %q", c.Type))
	}

	targetsSet := 0
	for _, t := range []*float64{c.Target, c.TargetLt, c.TargetGte} {
		if t != nil {
			targetsSet++
		}
	}
	if targetsSet == 0 {
		err = multierr.Append(err, errors.New("condition needs target, target_lt or target_gte"))
	}
	if targetsSet > 1 {
		err = multierr.Append(err, errors.New("condition takes only one of target, target_lt, target_gte"))
	}

	if c.TargetLt != nil && c.Type != ConditionDistanceOnce {
		err = multierr.Append(err, fmt.Errorf("target_lt is only valid for %s conditions", ConditionDistanceOnce))
	}

	if c.Metric == "" && c.Type != ConditionStreak {
		err = multierr.Append(err, fmt.Errorf("condition type %s needs a metric", c.Type))
	}

	for _, t := range []*float64{c.Target, c.TargetLt, c.TargetGte} {
		if t != nil && *t <= 0 {
			err = multierr.Append(err, fmt.Errorf("target must be positive, got %v", *t))
		}
	}

	return err
}

// Definition ties a condition to an unlockable achievement.
type Definition struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DescriptionEn string    `json:"description_en"`
	DescriptionHe string    `json:"description_he"`
	Condition     Condition `json:"condition"`
	Points        int       `json:"points"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// Progress is the per-user, per-condition progress record. It reflects the
// current statistics snapshot; monotonicity is a property of the stats, not
// something the evaluator enforces.
type Progress struct {
	UserID         string    `json:"user_id"`
	AchievementID  string    `json:"achievement_id"`
	ProgressValue  float64   `json:"progress_value"`
	ProgressTarget float64   `json:"progress_target"`
	Percentage     float64   `json:"percentage"`
	Met            bool      `json:"met"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Unlock is a permanent unlock event.
type Unlock struct {
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
