package scoring

import "time"

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFlagged   Status = "flagged"
	StatusError     Status = "error"
)

// Components holds the named numeric terms a base value was built from.
type Components struct {
	BasePoints         float64 `json:"base_points"`
	RepsComponent      float64 `json:"reps_component"`
	SetsComponent      float64 `json:"sets_component"`
	WeightComponent    float64 `json:"weight_component"`
	DistanceComponent  float64 `json:"distance_component"`
	PaceFactor         float64 `json:"pace_factor"`
	DurationComponent  float64 `json:"duration_component"`
	ElevationComponent float64 `json:"elevation_component"`
}

type Bonuses struct {
	SetCompletion       float64 `json:"set_completion"`
	Weight              float64 `json:"weight"`
	ProgressiveOverload float64 `json:"progressive_overload"`
	Variety             float64 `json:"variety"`
	PR                  float64 `json:"pr"`
	RPE                 float64 `json:"rpe"`
	Zone                float64 `json:"zone"`
	Milestone           float64 `json:"milestone"`
	Synergy             float64 `json:"synergy"`
	Total               float64 `json:"total"`
}

type Multipliers struct {
	Streak     float64 `json:"streak"`
	Challenge  float64 `json:"challenge"`
	Seasonal   float64 `json:"seasonal"`
	Total      float64 `json:"total"`
	CapApplied bool    `json:"cap_applied"`
}

type Caps struct {
	SoftCapThreshold float64 `json:"soft_cap_threshold"`
	HardCap          float64 `json:"hard_cap"`
	ReductionApplied float64 `json:"reduction_applied"`
}

// PointsBreakdown is the immutable audit record of one calculation: every
// named component, bonus and multiplier that contributed to the total, in a
// stable JSON shape that is persisted and returned to clients verbatim.
type PointsBreakdown struct {
	ExerciseKey        string      `json:"exercise_key"`
	Components         Components  `json:"components"`
	Bonuses            Bonuses     `json:"bonuses"`
	Subtotal           float64     `json:"subtotal"`
	Multipliers        Multipliers `json:"multipliers"`
	Caps               Caps        `json:"caps"`
	AppliedBonuses     []string    `json:"applied_bonuses"`
	AppliedMultipliers []string    `json:"applied_multipliers"`
	Warnings           []string    `json:"warnings"`
	TotalPoints        int         `json:"total_points"`
	DisplayTextEn      string      `json:"display_text_en"`
	DisplayTextHe      string      `json:"display_text_he"`
	CalculationTimeMs  float64     `json:"calculation_time_ms"`
	Status             Status      `json:"status"`
}

// CalculationResult is constructed once per activity and never mutated after
// being returned; the history store persists it verbatim.
type CalculationResult struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	ExerciseKey     string          `json:"exercise_key"`
	TotalPoints     int             `json:"total_points"`
	Breakdown       PointsBreakdown `json:"breakdown"`
	CalculationTime time.Time       `json:"calculation_time"`
	Status          Status          `json:"status"`
	Errors          []string        `json:"errors,omitempty"`
}

// familyResult is what a single family calculator produces: the base and
// family-specific bonuses, already soft/hard capped, before cross-exercise
// bonuses and multipliers are applied.
type familyResult struct {
	Components     Components
	Bonuses        Bonuses
	AppliedBonuses []string
	Caps           Caps
	Warnings       []string
	Subtotal       float64
}
