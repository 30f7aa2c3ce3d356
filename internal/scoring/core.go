package scoring

const (
	coreHardCap = 250.0

	holdPointsPerSec = 0.1
	corePointsPerRep = 0.2
	durationPRBonus  = 10.0
)

// calculateCore scores a core activity: duration-based (static holds) or
// reps-based, with a single hard cap and no soft tier.
func calculateCore(activity Activity, userCtx UserContext) familyResult {
	res := familyResult{
		Caps: Caps{
			HardCap: coreHardCap,
		},
	}

	if activity.DurationSec > 0 {
		base := activity.DurationSec * holdPointsPerSec
		res.Components.BasePoints = base
		res.Components.DurationComponent = activity.DurationSec

		if userCtx.BestDurationSec != nil && activity.DurationSec > *userCtx.BestDurationSec {
			res.Bonuses.PR = durationPRBonus
			res.AppliedBonuses = append(res.AppliedBonuses, "pr")
		}
	} else {
		res.Components.BasePoints = float64(activity.Reps) * corePointsPerRep
		res.Components.RepsComponent = float64(activity.Reps)
	}

	res.Bonuses.Total = res.Bonuses.PR
	res.Subtotal = res.Components.BasePoints + res.Bonuses.Total

	applyCapPair(&res)
	return res
}
