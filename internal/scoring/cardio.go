package scoring

const (
	runningSoftCap = 300.0
	runningHardCap = 400.0
	cyclingSoftCap = 350.0
	cyclingHardCap = 450.0

	referenceRunPaceSecKm = 360.0
	minPaceFactor         = 0.6
	maxPaceFactor         = 1.4
	runPointsPerKm        = 40.0
	runElevationStepM     = 50.0

	referenceCyclingKmh = 25.0
	minSpeedFactor      = 0.7
	maxSpeedFactor      = 1.3
	cyclingPointsPerKm  = 5.0
	cycleElevationStepM = 100.0

	zoneModeratePoints = 10.0 // avg HR in [120, 160]
	zoneVigorousPoints = 15.0 // avg HR in (160, 180]
	milestonePoints    = 10.0 // first >= 10 km run of the week
	longRunKm          = 10.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// calculateCardio scores a cardio activity. Cycling has its own speed-based
// formula; running, walking and burpee all share the pace-based one. The
// shared path for walking and burpee is a deliberate simplification kept for
// compatibility with existing totals.
func calculateCardio(exerciseKey string, activity Activity, userCtx UserContext) familyResult {
	if exerciseKey == "cycling" {
		return calculateCycling(activity)
	}
	return calculateRunning(activity, userCtx)
}

func calculateRunning(activity Activity, userCtx UserContext) familyResult {
	res := familyResult{
		Caps: Caps{
			SoftCapThreshold: runningSoftCap,
			HardCap:          runningHardCap,
		},
	}

	paceSecPerKm := activity.DurationSec / activity.DistanceKm
	paceFactor := clamp(referenceRunPaceSecKm/paceSecPerKm, minPaceFactor, maxPaceFactor)
	base := activity.DistanceKm * paceFactor * runPointsPerKm

	res.Components.BasePoints = base
	res.Components.DistanceComponent = activity.DistanceKm
	res.Components.PaceFactor = paceFactor
	res.Components.DurationComponent = activity.DurationSec

	if activity.ElevationGainM > 0 {
		res.Components.ElevationComponent = float64(int(activity.ElevationGainM / runElevationStepM))
	}

	if hr := activity.AvgHeartRate; hr >= 120 && hr <= 160 {
		res.Bonuses.Zone = zoneModeratePoints
		res.AppliedBonuses = append(res.AppliedBonuses, "zone")
	} else if hr > 160 && hr <= 180 {
		res.Bonuses.Zone = zoneVigorousPoints
		res.AppliedBonuses = append(res.AppliedBonuses, "zone")
	}

	if userCtx.FirstLongRunOfWeek && activity.DistanceKm >= longRunKm {
		res.Bonuses.Milestone = milestonePoints
		res.AppliedBonuses = append(res.AppliedBonuses, "milestone")
	}

	res.Bonuses.Total = res.Bonuses.Zone + res.Bonuses.Milestone
	res.Subtotal = base + res.Components.ElevationComponent + res.Bonuses.Total

	applyCapPair(&res)
	return res
}

func calculateCycling(activity Activity) familyResult {
	res := familyResult{
		Caps: Caps{
			SoftCapThreshold: cyclingSoftCap,
			HardCap:          cyclingHardCap,
		},
	}

	speedKmh := activity.DistanceKm / (activity.DurationSec / 3600)
	speedFactor := clamp(speedKmh/referenceCyclingKmh, minSpeedFactor, maxSpeedFactor)
	base := activity.DistanceKm * cyclingPointsPerKm * speedFactor

	res.Components.BasePoints = base
	res.Components.DistanceComponent = activity.DistanceKm
	res.Components.PaceFactor = speedFactor
	res.Components.DurationComponent = activity.DurationSec

	if activity.ElevationGainM > 0 {
		res.Components.ElevationComponent = float64(int(activity.ElevationGainM / cycleElevationStepM))
	}

	res.Subtotal = base + res.Components.ElevationComponent

	applyCapPair(&res)
	return res
}
