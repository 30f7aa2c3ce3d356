package scoring

const (
	varietyMinDistinct = 3
	varietyBonusPoints = 5.0
	earlyBirdHour      = 7
	nightOwlHour       = 22
	timeOfDayPoints    = 10.0
	synergyBonusPoints = 5.0
)

// crossExerciseBonuses computes the family-agnostic bonuses from the
// behavioral context: exercise variety over the day, time of day, and the
// strength/cardio synergy of a balanced session. They are added to the
// family subtotal before any multiplier. Time of day has no dedicated
// breakdown field; it shows up in the total and in applied_bonuses.
func crossExerciseBonuses(userCtx UserContext, breakdown *PointsBreakdown) {
	distinct := make(map[string]bool)
	families := make(map[ExerciseFamily]bool)
	for _, key := range userCtx.ExercisesToday {
		distinct[key] = true
		if family, ok := FamilyOf(key); ok {
			families[family] = true
		}
	}

	var added float64

	if len(distinct) >= varietyMinDistinct {
		breakdown.Bonuses.Variety = varietyBonusPoints
		breakdown.AppliedBonuses = append(breakdown.AppliedBonuses, "variety")
		added += varietyBonusPoints
	}

	if families[FamilyStrength] && families[FamilyCardio] {
		breakdown.Bonuses.Synergy = synergyBonusPoints
		breakdown.AppliedBonuses = append(breakdown.AppliedBonuses, "synergy")
		added += synergyBonusPoints
	}

	// early bird and night owl are mutually exclusive, at most one applies
	if userCtx.WorkoutHour < earlyBirdHour {
		breakdown.AppliedBonuses = append(breakdown.AppliedBonuses, "early_bird")
		added += timeOfDayPoints
	} else if userCtx.WorkoutHour >= nightOwlHour {
		breakdown.AppliedBonuses = append(breakdown.AppliedBonuses, "night_owl")
		added += timeOfDayPoints
	}

	breakdown.Bonuses.Total += added
	breakdown.Subtotal += added
}
