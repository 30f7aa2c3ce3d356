package scoring

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/endlessblink/sweatbot/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Engine orchestrates one calculation: fraud gate, family calculator,
// cross-exercise bonuses, multiplier stacking. It holds no mutable state
// and is safe for concurrent use; construct one per process and pass it
// around explicitly.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Calculate turns a logged activity plus user context into a CalculationResult.
// It never fails with an error value - malformed input and fraud flags come
// back as a typed result with status error/flagged and zero points.
func (e *Engine) Calculate(
	ctx context.Context,
	userID, exerciseKey string,
	activity Activity,
	userCtx UserContext,
) CalculationResult {
	_, span := tracing.GlobalTracer.Start(ctx, "engine.points.calculate")
	defer span.End()
	span.SetAttributes(attribute.String("exercise_key", exerciseKey))

	started := time.Now()
	result := CalculationResult{
		ID:              uuid.NewString(),
		UserID:          userID,
		ExerciseKey:     exerciseKey,
		CalculationTime: started,
		Status:          StatusCompleted,
	}
	result.Breakdown.ExerciseKey = exerciseKey
	result.Breakdown.Multipliers = Multipliers{Streak: 1, Challenge: 1, Seasonal: 1, Total: 1}

	family, known := FamilyOf(exerciseKey)
	if !known {
		return e.finish(&result, started, StatusError, fmt.Sprintf("unknown exercise: %s", exerciseKey))
	}

	if err := validateShape(family, activity); err != nil {
		return e.finish(&result, started, StatusError, err.Error())
	}

	fraud := CheckActivity(family, exerciseKey, activity)
	result.Breakdown.Warnings = append(result.Breakdown.Warnings, fraud.Warnings...)
	if !fraud.IsValid {
		span.SetAttributes(attribute.Int("fraud_flags", len(fraud.Flags)))
		return e.finish(&result, started, StatusFlagged, fraud.Flags...)
	}

	var familyRes familyResult
	switch family {
	case FamilyStrength:
		familyRes = calculateStrength(exerciseKey, activity, userCtx)
	case FamilyCardio:
		familyRes = calculateCardio(exerciseKey, activity, userCtx)
	case FamilyCore:
		familyRes = calculateCore(activity, userCtx)
	}

	result.Breakdown.Components = familyRes.Components
	result.Breakdown.Bonuses = familyRes.Bonuses
	result.Breakdown.Caps = familyRes.Caps
	result.Breakdown.Subtotal = familyRes.Subtotal
	result.Breakdown.AppliedBonuses = familyRes.AppliedBonuses
	result.Breakdown.Warnings = append(result.Breakdown.Warnings, familyRes.Warnings...)

	crossExerciseBonuses(userCtx, &result.Breakdown)

	// cross-exercise points can push the subtotal past the family ceiling
	// again, in which case the hard cap wins
	if result.Breakdown.Subtotal > result.Breakdown.Caps.HardCap {
		excess := result.Breakdown.Subtotal - result.Breakdown.Caps.HardCap
		result.Breakdown.Subtotal = result.Breakdown.Caps.HardCap
		result.Breakdown.Caps.ReductionApplied += excess
	}

	multipliers, appliedMultipliers := stackMultipliers(userCtx)
	result.Breakdown.Multipliers = multipliers
	result.Breakdown.AppliedMultipliers = appliedMultipliers

	result.Breakdown.TotalPoints = int(math.Floor(result.Breakdown.Subtotal * multipliers.Total))
	result.TotalPoints = result.Breakdown.TotalPoints

	result.Breakdown.DisplayTextEn = displayTextEn(&result.Breakdown)
	result.Breakdown.DisplayTextHe = displayTextHe(&result.Breakdown)

	span.SetAttributes(attribute.Int("total_points", result.TotalPoints))
	return *e.seal(&result, started)
}

// Flag builds a flagged zero-point result out of a failed plausibility check
// that happened outside the engine, e.g. the duplicate/overlap check over
// stored history.
func (e *Engine) Flag(userID, exerciseKey string, fraud FraudResult) CalculationResult {
	started := time.Now()
	result := CalculationResult{
		ID:              uuid.NewString(),
		UserID:          userID,
		ExerciseKey:     exerciseKey,
		CalculationTime: started,
		Status:          StatusFlagged,
	}
	result.Breakdown.ExerciseKey = exerciseKey
	result.Breakdown.Multipliers = Multipliers{Streak: 1, Challenge: 1, Seasonal: 1, Total: 1}
	result.Breakdown.Warnings = append(result.Breakdown.Warnings, fraud.Warnings...)
	return e.finish(&result, started, StatusFlagged, fraud.Flags...)
}

// finish closes a result that short-circuited before scoring.
func (e *Engine) finish(result *CalculationResult, started time.Time, status Status, errs ...string) CalculationResult {
	result.Status = status
	result.Errors = append(result.Errors, errs...)
	result.TotalPoints = 0
	result.Breakdown.TotalPoints = 0
	return *e.seal(result, started)
}

func (e *Engine) seal(result *CalculationResult, started time.Time) *CalculationResult {
	result.Breakdown.Status = result.Status
	result.Breakdown.CalculationTimeMs = float64(time.Since(started).Microseconds()) / 1000
	if result.Breakdown.Warnings == nil {
		result.Breakdown.Warnings = []string{}
	}
	if result.Breakdown.AppliedBonuses == nil {
		result.Breakdown.AppliedBonuses = []string{}
	}
	if result.Breakdown.AppliedMultipliers == nil {
		result.Breakdown.AppliedMultipliers = []string{}
	}
	return result
}

// validateShape rejects structurally inconsistent activity input before any
// formula runs.
func validateShape(family ExerciseFamily, activity Activity) error {
	switch family {
	case FamilyStrength:
		if activity.Sets <= 0 {
			return fmt.Errorf("strength activity needs at least one set")
		}
		if len(activity.RepsPerSet) != activity.Sets || len(activity.WeightsPerSet) != activity.Sets {
			return fmt.Errorf(
				"set arrays mismatch: sets=%d, reps_per_set=%d, weights_per_set=%d",
				activity.Sets, len(activity.RepsPerSet), len(activity.WeightsPerSet),
			)
		}
		if len(activity.RPEPerSet) > 0 && len(activity.RPEPerSet) != activity.Sets {
			return fmt.Errorf("rpe_per_set length %d does not match sets %d", len(activity.RPEPerSet), activity.Sets)
		}
	case FamilyCardio:
		if activity.DistanceKm <= 0 || activity.DurationSec <= 0 {
			return fmt.Errorf("cardio activity needs positive distance and duration")
		}
	case FamilyCore:
		if activity.DurationSec > 0 && activity.Reps > 0 {
			return fmt.Errorf("core activity takes duration or reps, not both")
		}
		if activity.DurationSec <= 0 && activity.Reps <= 0 {
			return fmt.Errorf("core activity needs duration or reps")
		}
	}
	return nil
}
