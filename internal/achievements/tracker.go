package achievements

import (
	"context"
	"fmt"
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/endlessblink/sweatbot/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=achievements_test

type achievementsRepo interface {
	ActiveDefinitions(ctx context.Context) ([]Definition, error)
	UnlockedIDs(ctx context.Context, userID string) (map[string]bool, error)
	RecordUnlock(ctx context.Context, unlock Unlock) (newlyUnlocked bool, err error)
	UpsertProgress(ctx context.Context, progress Progress) error
}

// RecheckResult reports one pass over all active achievement definitions.
type RecheckResult struct {
	NewlyUnlocked []Definition `json:"newly_unlocked"`
	Progress      []Progress   `json:"progress"`
	Errors        []string     `json:"errors,omitempty"`
}

// Tracker re-evaluates achievement conditions whenever a user's aggregated
// statistics change, recording unlocks permanently and keeping the
// per-(user, achievement) progress rows current.
type Tracker struct {
	repo achievementsRepo
	now  func() time.Time
}

func NewTracker(repo achievementsRepo) *Tracker {
	return &Tracker{
		repo: repo,
		now:  time.Now,
	}
}

// Recheck evaluates every active, not yet unlocked definition against the
// given statistics snapshot. Already unlocked achievements are skipped and
// never re-evaluated, so calling this twice with unchanged stats cannot
// double-unlock anything; a malformed condition is reported and the batch
// continues.
func (t *Tracker) Recheck(ctx context.Context, userID string, stats map[string]float64) (_ *RecheckResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.achievements.recheck")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	definitions, err := t.repo.ActiveDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active definitions: %w", err)
	}

	unlocked, err := t.repo.UnlockedIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list unlocked achievements: %w", err)
	}

	result := &RecheckResult{
		NewlyUnlocked: make([]Definition, 0),
		Progress:      make([]Progress, 0),
	}

	for _, def := range definitions {
		if unlocked[def.ID] {
			continue
		}

		eval := Evaluate(def.Condition, stats)
		if len(eval.Errors) > 0 {
			log.Errorf("achievement %s has an invalid condition: %v", def.ID, eval.Errors)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", def.ID, eval.Errors))
			continue
		}

		progress := Progress{
			UserID:         userID,
			AchievementID:  def.ID,
			ProgressValue:  eval.ProgressValue,
			ProgressTarget: eval.ProgressTarget,
			Percentage:     eval.Percentage,
			Met:            eval.IsMet,
			UpdatedAt:      t.now(),
		}
		if err := t.repo.UpsertProgress(ctx, progress); err != nil {
			return nil, fmt.Errorf("upsert progress for %s: %w", def.ID, err)
		}
		result.Progress = append(result.Progress, progress)

		if !eval.IsMet {
			continue
		}

		newlyUnlocked, err := t.repo.RecordUnlock(ctx, Unlock{
			UserID:        userID,
			AchievementID: def.ID,
			UnlockedAt:    t.now(),
		})
		if err != nil {
			return nil, fmt.Errorf("record unlock for %s: %w", def.ID, err)
		}
		if newlyUnlocked {
			log.Debugf("achievement unlocked for [%s]: %s", userID, def.ID)
			result.NewlyUnlocked = append(result.NewlyUnlocked, def)
		}
	}

	span.SetAttributes(attribute.Int("newly_unlocked", len(result.NewlyUnlocked)))
	return result, nil
}

// ETA is a rough completion estimate for an in-progress achievement.
type ETA struct {
	EtaDays          int  `json:"eta_days"`
	NoRecentProgress bool `json:"no_recent_progress"`
}

// etaRateWindowDays is the window the recent delta is averaged over.
const etaRateWindowDays = 14

// EstimateETA projects when an achievement will be met, assuming the linear
// rate of the recent window continues. A non-positive rate is reported as
// "no recent progress" instead of an absurd day count.
func EstimateETA(current, target, recentDelta float64) ETA {
	if current >= target {
		return ETA{EtaDays: 0}
	}
	rate := recentDelta / etaRateWindowDays
	if rate <= 0 {
		return ETA{EtaDays: -1, NoRecentProgress: true}
	}
	return ETA{
		EtaDays: int(math.Ceil((target - current) / rate)),
	}
}
