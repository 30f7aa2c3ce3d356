package scoring

const (
	totalMultiplierCap = 1.25

	challengeMultiplierMin = 1.05
	challengeMultiplierMax = 1.15
	seasonalMultiplierMin  = 1.05
	seasonalMultiplierMax  = 1.10
)

func streakMultiplier(streakDays int) float64 {
	switch {
	case streakDays >= 14:
		return 1.10
	case streakDays >= 7:
		return 1.05
	case streakDays >= 3:
		return 1.02
	default:
		return 1.00
	}
}

// stackMultipliers converts the user context into the three independent
// multipliers and their capped product. Each challenge multiplier is clamped
// to its allowed range before entering the product, the seasonal one
// likewise; the stacked total never exceeds 1.25.
func stackMultipliers(userCtx UserContext) (Multipliers, []string) {
	var applied []string

	m := Multipliers{
		Streak:    streakMultiplier(userCtx.StreakDays),
		Challenge: 1.00,
		Seasonal:  1.00,
	}
	if m.Streak > 1.00 {
		applied = append(applied, "streak")
	}

	for _, challenge := range userCtx.ActiveChallenges {
		m.Challenge *= clamp(challenge.Multiplier, challengeMultiplierMin, challengeMultiplierMax)
	}
	if len(userCtx.ActiveChallenges) > 0 {
		applied = append(applied, "challenge")
	}

	if userCtx.SeasonalEvent != nil {
		m.Seasonal = clamp(userCtx.SeasonalEvent.Multiplier, seasonalMultiplierMin, seasonalMultiplierMax)
		applied = append(applied, "seasonal")
	}

	m.Total = m.Streak * m.Challenge * m.Seasonal
	if m.Total > totalMultiplierCap {
		m.Total = totalMultiplierCap
		m.CapApplied = true
	}

	return m, applied
}
