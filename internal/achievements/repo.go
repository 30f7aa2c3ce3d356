package achievements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/endlessblink/sweatbot/internal/telemetry/tracing"
	"github.com/endlessblink/sweatbot/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrDefinitionExists = errors.New("achievement definition already exists")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddDefinition(ctx context.Context, def Definition) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.adddefinition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("achievement.id", def.ID))

	if err := def.Condition.Validate(); err != nil {
		return fmt.Errorf("invalid condition for %s: %w", def.ID, err)
	}

	conditionJson, err := json.Marshal(def.Condition)
	if err != nil {
		return fmt.Errorf("marshal condition: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO achievement_definition
				(id, name, description_en, description_he, condition, points, active, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		def.ID, def.Name, def.DescriptionEn, def.DescriptionHe, conditionJson, def.Points, def.Active, def.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrDefinitionExists
		}
		return fmt.Errorf("insert achievement definition: %w", err)
	}
	return nil
}

func (r *Repo) ActiveDefinitions(ctx context.Context) (_ []Definition, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.activedefinitions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description_en, description_he, condition, points, active, created_at
			FROM achievement_definition
			WHERE active IS TRUE
			ORDER BY created_at;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2definitions(rows)
}

func (r *Repo) UnlockedIDs(ctx context.Context, userID string) (_ map[string]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.unlockedids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT achievement_id FROM achievement_unlock WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	unlocked := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		unlocked[id] = true
	}
	return unlocked, nil
}

// RecordUnlock inserts a permanent unlock event. Idempotency lives at the
// unique (user_id, achievement_id) key: a repeated unlock is a no-op and is
// reported as not newly unlocked.
func (r *Repo) RecordUnlock(ctx context.Context, unlock Unlock) (newlyUnlocked bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.recordunlock")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", unlock.UserID))
	span.SetAttributes(attribute.String("achievement.id", unlock.AchievementID))

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO achievement_unlock (user_id, achievement_id, unlocked_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, achievement_id) DO NOTHING;`,
		unlock.UserID, unlock.AchievementID, unlock.UnlockedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpsertProgress is the atomic insert-or-update by (user, achievement) key,
// so concurrent activity submissions cannot lose progress updates.
func (r *Repo) UpsertProgress(ctx context.Context, progress Progress) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.upsertprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", progress.UserID))
	span.SetAttributes(attribute.String("achievement.id", progress.AchievementID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO achievement_progress
				(user_id, achievement_id, progress_value, progress_target, percentage, met, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id, achievement_id) DO UPDATE SET
				progress_value = EXCLUDED.progress_value,
				progress_target = EXCLUDED.progress_target,
				percentage = EXCLUDED.percentage,
				met = EXCLUDED.met,
				updated_at = EXCLUDED.updated_at;`,
		progress.UserID, progress.AchievementID, progress.ProgressValue,
		progress.ProgressTarget, progress.Percentage, progress.Met, progress.UpdatedAt,
	)
	return err
}

func (r *Repo) ListProgress(ctx context.Context, userID string) (_ []Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.listprogress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT user_id, achievement_id, progress_value, progress_target, percentage, met, updated_at
			FROM achievement_progress
			WHERE user_id = $1
			ORDER BY achievement_id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	progress := make([]Progress, 0)
	for rows.Next() {
		var p Progress
		if err := rows.Scan(
			&p.UserID, &p.AchievementID, &p.ProgressValue,
			&p.ProgressTarget, &p.Percentage, &p.Met, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, nil
}

func (r *Repo) rows2definitions(rows pgx.Rows) ([]Definition, error) {
	var definitions []Definition
	for rows.Next() {
		var def Definition
		var conditionBytes []byte
		if err := rows.Scan(
			&def.ID, &def.Name, &def.DescriptionEn, &def.DescriptionHe,
			&conditionBytes, &def.Points, &def.Active, &def.CreatedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(conditionBytes, &def.Condition); err != nil {
			return nil, fmt.Errorf("unmarshal condition for achievement %s: %w", def.ID, err)
		}

		definitions = append(definitions, def)
	}

	if definitions == nil {
		definitions = make([]Definition, 0)
	}
	return definitions, nil
}
