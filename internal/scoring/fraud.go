package scoring

import "fmt"

// Plausibility bounds. Values above the "flag" bounds make an activity
// invalid; the "warn" bounds only produce informational warnings.
const (
	maxPlausibleWeightKg = 500.0
	maxPlausibleSets     = 20
	warnRepsPerSet       = 100

	maxPlausibleDistanceKm    = 200.0
	maxPlausibleDurationHours = 8.0
	minPlausibleRunPaceSecKm  = 150.0
	warnSlowRunPaceSecKm      = 900.0
	warnElevationPerKm        = 100.0

	maxPlausibleHoldSec = 3600.0
	warnHoldSec         = 600.0
	maxPlausibleReps    = 1000
	warnCoreReps        = 500
)

// FraudResult is the outcome of a plausibility check. Flags make the
// activity invalid; warnings are informational and never block scoring.
type FraudResult struct {
	IsValid  bool     `json:"is_valid"`
	Warnings []string `json:"warnings"`
	Flags    []string `json:"flags"`
}

func (fr *FraudResult) flag(format string, args ...any) {
	fr.Flags = append(fr.Flags, fmt.Sprintf(format, args...))
	fr.IsValid = false
}

func (fr *FraudResult) warn(format string, args ...any) {
	fr.Warnings = append(fr.Warnings, fmt.Sprintf(format, args...))
}

// CheckActivity runs the family-specific plausibility checks over the raw
// activity fields. It is a pure function and never fails - implausible input
// comes back as flags, suspicious input as warnings.
func CheckActivity(family ExerciseFamily, exerciseKey string, activity Activity) FraudResult {
	res := FraudResult{IsValid: true}
	switch family {
	case FamilyStrength:
		checkStrength(exerciseKey, activity, &res)
	case FamilyCardio:
		checkCardio(exerciseKey, activity, &res)
	case FamilyCore:
		checkCore(activity, &res)
	}
	return res
}

func checkStrength(exerciseKey string, activity Activity, res *FraudResult) {
	if activity.Sets > maxPlausibleSets {
		res.flag("implausible number of sets: %d (max %d)", activity.Sets, maxPlausibleSets)
	}
	for i, weight := range activity.WeightsPerSet {
		if weight > maxPlausibleWeightKg {
			res.flag("implausible weight in set %d: %.1f kg (max %.0f kg)", i+1, weight, maxPlausibleWeightKg)
		}
	}
	for i, reps := range activity.RepsPerSet {
		if reps > warnRepsPerSet {
			res.warn("unusually high reps in set %d: %d", i+1, reps)
		}
	}
	if !IsBodyweight(exerciseKey) {
		allZero := len(activity.WeightsPerSet) > 0
		for _, weight := range activity.WeightsPerSet {
			if weight > 0 {
				allZero = false
				break
			}
		}
		if allZero {
			res.warn("zero weight on a weighted exercise: %s", exerciseKey)
		}
	}
}

func checkCardio(exerciseKey string, activity Activity, res *FraudResult) {
	if activity.DistanceKm > maxPlausibleDistanceKm {
		res.flag("implausible distance: %.1f km (max %.0f km)", activity.DistanceKm, maxPlausibleDistanceKm)
	}
	durationHours := activity.DurationSec / 3600
	if durationHours > maxPlausibleDurationHours {
		res.flag("implausible duration: %.1f hours (max %.0f hours)", durationHours, maxPlausibleDurationHours)
	}

	if exerciseKey == "running" && activity.DistanceKm > 0 {
		pace := activity.DurationSec / activity.DistanceKm
		if pace < minPlausibleRunPaceSecKm {
			res.flag("implausible running pace: %.0f sec/km (min %.0f sec/km)", pace, minPlausibleRunPaceSecKm)
		} else if pace > warnSlowRunPaceSecKm {
			res.warn("very slow running pace: %.0f sec/km", pace)
		}
	}

	if activity.DistanceKm > 0 && activity.ElevationGainM/activity.DistanceKm > warnElevationPerKm {
		res.warn(
			"unusually high elevation gain: %.0f m over %.1f km",
			activity.ElevationGainM, activity.DistanceKm,
		)
	}
}

func checkCore(activity Activity, res *FraudResult) {
	if activity.DurationSec > maxPlausibleHoldSec {
		res.flag("implausible hold duration: %.0f sec (max %.0f sec)", activity.DurationSec, maxPlausibleHoldSec)
	} else if activity.DurationSec > warnHoldSec {
		res.warn("unusually long hold: %.0f sec", activity.DurationSec)
	}
	if activity.Reps > maxPlausibleReps {
		res.flag("implausible rep count: %d (max %d)", activity.Reps, maxPlausibleReps)
	} else if activity.Reps > warnCoreReps {
		res.warn("unusually high rep count: %d", activity.Reps)
	}
}

// CheckOverlap flags the activity as a duplicate when its time window exactly
// matches or overlaps any of the caller-supplied recent activities. Windows
// are half-open intervals; zero-duration activities compare by start time.
func CheckOverlap(activity Activity, recent []StoredActivity) FraudResult {
	res := FraudResult{IsValid: true}
	if activity.StartedAt.IsZero() {
		return res
	}

	start := activity.StartedAt
	end := start.Add(durationOf(activity))

	for _, existing := range recent {
		exStart := existing.StartedAt
		exEnd := exStart.Add(durationOf(Activity{DurationSec: existing.DurationSec}))

		if start.Equal(exStart) && end.Equal(exEnd) {
			res.flag("duplicate activity: exact time window match with %s at %s", existing.ExerciseKey, exStart.Format("2006-01-02 15:04:05"))
			continue
		}
		if start.Before(exEnd) && exStart.Before(end) {
			res.flag("overlapping activity: time window overlaps %s at %s", existing.ExerciseKey, exStart.Format("2006-01-02 15:04:05"))
		}
	}
	return res
}
