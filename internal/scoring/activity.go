package scoring

import "time"

// ExerciseFamily routes an activity to its calculator.
type ExerciseFamily string

const (
	FamilyStrength ExerciseFamily = "strength"
	FamilyCardio   ExerciseFamily = "cardio"
	FamilyCore     ExerciseFamily = "core"
)

func (f ExerciseFamily) String() string {
	return string(f)
}

var strengthExercises = map[string]bool{
	"squat":          true,
	"deadlift":       true,
	"bench_press":    true,
	"overhead_press": true,
	"barbell_row":    true,
	"pull_up":        true,
	"push_up":        true,
	"lunge":          true,
}

// bodyweight strength exercises are valid with zero added weight
var bodyweightExercises = map[string]bool{
	"pull_up": true,
	"push_up": true,
	"lunge":   true,
}

var cardioExercises = map[string]bool{
	"running": true,
	"cycling": true,
	"walking": true,
	"burpee":  true,
}

var coreExercises = map[string]bool{
	"plank":     true,
	"crunch":    true,
	"sit_up":    true,
	"leg_raise": true,
}

// FamilyOf returns the exercise family for a known exercise key.
func FamilyOf(exerciseKey string) (ExerciseFamily, bool) {
	switch {
	case strengthExercises[exerciseKey]:
		return FamilyStrength, true
	case cardioExercises[exerciseKey]:
		return FamilyCardio, true
	case coreExercises[exerciseKey]:
		return FamilyCore, true
	default:
		return "", false
	}
}

// IsBodyweight tells whether the strength exercise is done without added weight by default.
func IsBodyweight(exerciseKey string) bool {
	return bodyweightExercises[exerciseKey]
}

// Activity is the raw measurement payload of a single logged activity.
// Which fields are meaningful depends on the exercise family:
//   - strength: sets, reps_per_set, weights_per_set, optional rpe_per_set
//   - cardio: distance_km, duration_sec, elevation_gain_m, optional avg_hr
//   - core: duration_sec xor reps
type Activity struct {
	Sets          int       `json:"sets,omitempty"`
	RepsPerSet    []int     `json:"reps_per_set,omitempty"`
	WeightsPerSet []float64 `json:"weights_per_set,omitempty"`
	RPEPerSet     []float64 `json:"rpe_per_set,omitempty"`

	DistanceKm     float64 `json:"distance_km,omitempty"`
	DurationSec    float64 `json:"duration_sec,omitempty"`
	ElevationGainM float64 `json:"elevation_gain_m,omitempty"`
	AvgHeartRate   float64 `json:"avg_hr,omitempty"`

	Reps int `json:"reps,omitempty"`

	StartedAt time.Time `json:"started_at,omitempty"`
}

type ActiveChallenge struct {
	ChallengeID string  `json:"challenge_id"`
	Multiplier  float64 `json:"multiplier"`
}

type SeasonalEvent struct {
	EventID    string  `json:"event_id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// UserContext is a read-only snapshot of the user state relevant for one
// calculation. The engine never fetches anything on its own - every value
// here is resolved by the caller beforehand.
type UserContext struct {
	StreakDays       int               `json:"streak_days"`
	ExercisesToday   []string          `json:"exercises_today"`
	ActiveChallenges []ActiveChallenge `json:"active_challenges,omitempty"`
	SeasonalEvent    *SeasonalEvent    `json:"seasonal_event,omitempty"`
	WorkoutHour      int               `json:"workout_hour"`

	// historical baselines, absent when the user has no history yet
	FourWeekAvgVolume *float64 `json:"user_4week_avg_volume,omitempty"`
	PreviousOneRepMax *float64 `json:"user_previous_1rm,omitempty"`
	BestDurationSec   *float64 `json:"user_best_duration,omitempty"`

	// caller-flagged milestone: first run of >= 10 km this week
	FirstLongRunOfWeek bool `json:"first_long_run_of_week,omitempty"`
}

// StoredActivity is the minimal view of an already persisted activity,
// used by the duplicate/overlap fraud check.
type StoredActivity struct {
	ExerciseKey string    `json:"exercise_key"`
	StartedAt   time.Time `json:"started_at"`
	DurationSec float64   `json:"duration_sec"`
}

func durationOf(activity Activity) time.Duration {
	return time.Duration(activity.DurationSec * float64(time.Second))
}
