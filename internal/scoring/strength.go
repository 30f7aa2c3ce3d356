package scoring

import "fmt"

const (
	strengthSoftCap = 250.0
	strengthHardCap = 350.0

	volumePerKgRep       = 0.1
	bodyweightRepPoints  = 0.05 * 100 // 70 kg baseline proxy
	setCompletionMinReps = 5
	setCompletionPoints  = 2.0
	weightedBonusPoints  = 30.0
	overloadBonusRate    = 0.1
	prBonusPoints        = 15.0
	rpeBonusThreshold    = 8.0
	rpeBonusPerSet       = 1.0
)

// epleyOneRepMax estimates the one-rep max for a single set: weight * (1 + reps/30).
func epleyOneRepMax(weightKg float64, reps int) float64 {
	return weightKg * (1 + float64(reps)/30)
}

// calculateStrength scores a strength activity: per-set volume base, the
// family bonuses, and the soft/hard cap pair. The caller has already
// validated the array lengths against the set count.
func calculateStrength(exerciseKey string, activity Activity, userCtx UserContext) familyResult {
	res := familyResult{
		Caps: Caps{
			SoftCapThreshold: strengthSoftCap,
			HardCap:          strengthHardCap,
		},
	}

	var base, weightedVolume, bodyweightVolume, rawVolumeKg float64
	anyWeighted := false
	for i := 0; i < activity.Sets; i++ {
		reps := activity.RepsPerSet[i]
		weight := activity.WeightsPerSet[i]
		if weight > 0 {
			setPoints := weight * float64(reps) * volumePerKgRep
			weightedVolume += setPoints
			rawVolumeKg += weight * float64(reps)
			anyWeighted = true
		} else if IsBodyweight(exerciseKey) {
			bodyweightVolume += float64(reps) * bodyweightRepPoints
		}
	}
	base = weightedVolume + bodyweightVolume

	res.Components.BasePoints = base
	res.Components.WeightComponent = weightedVolume
	res.Components.RepsComponent = bodyweightVolume
	res.Components.SetsComponent = float64(activity.Sets)

	completedSets := 0
	for _, reps := range activity.RepsPerSet {
		if reps >= setCompletionMinReps {
			completedSets++
		}
	}
	if completedSets > 0 {
		res.Bonuses.SetCompletion = float64(completedSets) * setCompletionPoints
		res.AppliedBonuses = append(res.AppliedBonuses, "set_completion")
	}

	if anyWeighted {
		res.Bonuses.Weight = weightedBonusPoints
		res.AppliedBonuses = append(res.AppliedBonuses, "weight")
	}

	if userCtx.FourWeekAvgVolume != nil && rawVolumeKg > *userCtx.FourWeekAvgVolume {
		res.Bonuses.ProgressiveOverload = base * overloadBonusRate
		res.AppliedBonuses = append(res.AppliedBonuses, "progressive_overload")
	}

	if userCtx.PreviousOneRepMax != nil {
		var maxEstimate float64
		for i := 0; i < activity.Sets; i++ {
			if est := epleyOneRepMax(activity.WeightsPerSet[i], activity.RepsPerSet[i]); est > maxEstimate {
				maxEstimate = est
			}
		}
		if maxEstimate > *userCtx.PreviousOneRepMax {
			res.Bonuses.PR = prBonusPoints
			res.AppliedBonuses = append(res.AppliedBonuses, "pr")
		}
	}

	hardSets := 0
	for _, rpe := range activity.RPEPerSet {
		if rpe >= rpeBonusThreshold {
			hardSets++
		}
	}
	if hardSets > 0 {
		res.Bonuses.RPE = float64(hardSets) * rpeBonusPerSet
		res.AppliedBonuses = append(res.AppliedBonuses, "rpe")
	}

	res.Bonuses.Total = res.Bonuses.SetCompletion + res.Bonuses.Weight +
		res.Bonuses.ProgressiveOverload + res.Bonuses.PR + res.Bonuses.RPE
	res.Subtotal = base + res.Bonuses.Total

	applyCapPair(&res)
	return res
}

// applyCapPair discounts points above the soft cap by 50%, then enforces the
// hard ceiling; every reduction is recorded and surfaced as a warning.
func applyCapPair(res *familyResult) {
	if res.Caps.SoftCapThreshold > 0 && res.Subtotal > res.Caps.SoftCapThreshold {
		reduction := (res.Subtotal - res.Caps.SoftCapThreshold) * 0.5
		res.Subtotal -= reduction
		res.Caps.ReductionApplied += reduction
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"soft cap %.0f exceeded, %.1f points discounted", res.Caps.SoftCapThreshold, reduction,
		))
	}
	if res.Subtotal > res.Caps.HardCap {
		excess := res.Subtotal - res.Caps.HardCap
		res.Subtotal = res.Caps.HardCap
		res.Caps.ReductionApplied += excess
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"hard cap %.0f reached, %.1f points dropped", res.Caps.HardCap, excess,
		))
	}
}
