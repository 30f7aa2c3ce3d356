package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpleyOneRepMax(t *testing.T) {
	// 100 kg x 10 reps -> 100 * (1 + 10/30) = 133.33
	assert.InDelta(t, 133.333, epleyOneRepMax(100, 10), 0.001)
	assert.InDelta(t, 103.333, epleyOneRepMax(100, 1), 0.001)
}

func TestCalculateStrength_BodyweightReps(t *testing.T) {
	activity := Activity{
		Sets:          2,
		RepsPerSet:    []int{12, 10},
		WeightsPerSet: []float64{0, 0},
	}

	res := calculateStrength("push_up", activity, UserContext{})

	// 22 reps * 0.05 * 100 = 110
	assert.InDelta(t, 110, res.Components.BasePoints, 0.001)
	assert.InDelta(t, 110, res.Components.RepsComponent, 0.001)
	assert.Zero(t, res.Components.WeightComponent)
	// no weighted set, no weight bonus
	assert.Zero(t, res.Bonuses.Weight)
	assert.InDelta(t, 4, res.Bonuses.SetCompletion, 0.001)
}

func TestCalculateStrength_WeightedPullUp(t *testing.T) {
	// weighted sets on a bodyweight exercise take the weighted formula
	activity := Activity{
		Sets:          2,
		RepsPerSet:    []int{8, 8},
		WeightsPerSet: []float64{20, 20},
	}

	res := calculateStrength("pull_up", activity, UserContext{})

	// (20*8 + 20*8) * 0.1 = 32
	assert.InDelta(t, 32, res.Components.BasePoints, 0.001)
	assert.InDelta(t, 30, res.Bonuses.Weight, 0.001)
}

func TestCalculateStrength_ProgressiveOverload(t *testing.T) {
	fourWeekAvg := 1000.0
	activity := Activity{
		Sets:          3,
		RepsPerSet:    []int{10, 10, 10},
		WeightsPerSet: []float64{40, 40, 40},
	}

	res := calculateStrength("squat", activity, UserContext{FourWeekAvgVolume: &fourWeekAvg})

	// raw volume 1200 kg beats the 1000 kg average, bonus is 10% of base
	assert.InDelta(t, 120, res.Components.BasePoints, 0.001)
	assert.InDelta(t, 12, res.Bonuses.ProgressiveOverload, 0.001)
	assert.Contains(t, res.AppliedBonuses, "progressive_overload")

	// below the average there is no bonus
	higherAvg := 1500.0
	res = calculateStrength("squat", activity, UserContext{FourWeekAvgVolume: &higherAvg})
	assert.Zero(t, res.Bonuses.ProgressiveOverload)
}

func TestCalculateStrength_PRBonus(t *testing.T) {
	previous := 120.0
	activity := Activity{
		Sets:          1,
		RepsPerSet:    []int{8},
		WeightsPerSet: []float64{100},
	}

	// epley: 100 * (1 + 8/30) = 126.67 > 120
	res := calculateStrength("bench_press", activity, UserContext{PreviousOneRepMax: &previous})
	assert.InDelta(t, 15, res.Bonuses.PR, 0.001)
	assert.Contains(t, res.AppliedBonuses, "pr")

	stronger := 130.0
	res = calculateStrength("bench_press", activity, UserContext{PreviousOneRepMax: &stronger})
	assert.Zero(t, res.Bonuses.PR)
}

func TestCalculateStrength_RPEBonus(t *testing.T) {
	activity := Activity{
		Sets:          3,
		RepsPerSet:    []int{5, 5, 5},
		WeightsPerSet: []float64{100, 100, 100},
		RPEPerSet:     []float64{7, 8, 9.5},
	}

	res := calculateStrength("deadlift", activity, UserContext{})
	// two sets at RPE >= 8
	assert.InDelta(t, 2, res.Bonuses.RPE, 0.001)
	assert.Contains(t, res.AppliedBonuses, "rpe")
}

func TestApplyCapPair(t *testing.T) {
	t.Run("soft then hard", func(t *testing.T) {
		res := familyResult{
			Subtotal: 560,
			Caps:     Caps{SoftCapThreshold: 300, HardCap: 400},
		}
		applyCapPair(&res)
		assert.InDelta(t, 400, res.Subtotal, 0.001)
		assert.InDelta(t, 160, res.Caps.ReductionApplied, 0.001)
		assert.Len(t, res.Warnings, 2)
	})

	t.Run("soft only", func(t *testing.T) {
		res := familyResult{
			Subtotal: 300,
			Caps:     Caps{SoftCapThreshold: 250, HardCap: 350},
		}
		applyCapPair(&res)
		// 50 above the soft threshold discounted by half
		assert.InDelta(t, 275, res.Subtotal, 0.001)
		assert.InDelta(t, 25, res.Caps.ReductionApplied, 0.001)
		assert.Len(t, res.Warnings, 1)
	})

	t.Run("under both caps untouched", func(t *testing.T) {
		res := familyResult{
			Subtotal: 174,
			Caps:     Caps{SoftCapThreshold: 250, HardCap: 350},
		}
		applyCapPair(&res)
		assert.InDelta(t, 174, res.Subtotal, 0.001)
		assert.Zero(t, res.Caps.ReductionApplied)
		assert.Empty(t, res.Warnings)
	})

	t.Run("no soft tier", func(t *testing.T) {
		res := familyResult{
			Subtotal: 300,
			Caps:     Caps{HardCap: 250},
		}
		applyCapPair(&res)
		assert.InDelta(t, 250, res.Subtotal, 0.001)
		assert.Len(t, res.Warnings, 1)
	})
}
