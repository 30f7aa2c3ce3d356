package achievements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestConditionType_IsValid(t *testing.T) {
	for _, ct := range []ConditionType{
		ConditionSum, ConditionCount, ConditionMax, ConditionStreak,
		ConditionPR, ConditionDistanceOnce, ConditionCountDistinct, ConditionVariety,
	} {
		assert.True(t, ct.IsValid(), "expected %q to be valid", ct)
	}
	assert.False(t, ConditionType("eval").IsValid())
	assert.False(t, ConditionType("").IsValid())
}

func TestCondition_Validate(t *testing.T) {
	testCases := []struct {
		name       string
		condition  Condition
		wantErrors []string
	}{
		{
			name:      "valid sum",
			condition: Condition{Type: ConditionSum, Metric: "total_distance_km", Target: target(100)},
		},
		{
			name:      "valid streak without metric",
			condition: Condition{Type: ConditionStreak, Target: target(14)},
		},
		{
			name:      "valid lower-is-better",
			condition: Condition{Type: ConditionDistanceOnce, Metric: "time_for_5k_sec", TargetLt: target(1800)},
		},
		{
			name:       "unknown type",
			condition:  Condition{Type: "webhook", Metric: "x", Target: target(1)},
			wantErrors: []string{"unknown condition type"},
		},
		{
			name:       "no target at all",
			condition:  Condition{Type: ConditionSum, Metric: "x"},
			wantErrors: []string{"needs target"},
		},
		{
			name:       "two targets",
			condition:  Condition{Type: ConditionDistanceOnce, Metric: "x", Target: target(1), TargetLt: target(2)},
			wantErrors: []string{"only one of target"},
		},
		{
			name:       "target_lt outside distance_once",
			condition:  Condition{Type: ConditionSum, Metric: "x", TargetLt: target(10)},
			wantErrors: []string{"target_lt is only valid"},
		},
		{
			name:       "missing metric",
			condition:  Condition{Type: ConditionCount, Target: target(5)},
			wantErrors: []string{"needs a metric"},
		},
		{
			name:       "non-positive target",
			condition:  Condition{Type: ConditionSum, Metric: "x", Target: target(-3)},
			wantErrors: []string{"target must be positive"},
		},
		{
			name:      "all faults collected at once",
			condition: Condition{Type: "webhook"},
			wantErrors: []string{
				"unknown condition type",
				"needs target",
				"needs a metric",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.condition.Validate()
			if len(tc.wantErrors) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			errs := multierr.Errors(err)
			require.Len(t, errs, len(tc.wantErrors))
			for i, want := range tc.wantErrors {
				assert.Contains(t, errs[i].Error(), want)
			}
		})
	}
}
