package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/endlessblink/sweatbot/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrResultNotFound = errors.New("calculation result not found")

// StoredResult is a persisted CalculationResult row together with the
// activity time window used by the overlap check.
type StoredResult struct {
	CalculationResult
	StartedAt   time.Time `json:"started_at"`
	DurationSec float64   `json:"duration_sec"`
}

type ListParams struct {
	UserID      string
	ExerciseKey string
	From        *time.Time
	To          *time.Time
	Page        int
	Size        int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, result CalculationResult, activity Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scoring.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("result.id", result.ID))

	breakdownJson, err := json.Marshal(result.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO scoring_result
				(id, user_id, exercise_key, total_points, status, breakdown, started_at, duration_sec, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		result.ID, result.UserID, result.ExerciseKey, result.TotalPoints, result.Status,
		breakdownJson, activity.StartedAt, activity.DurationSec, result.CalculationTime,
	)
	if err != nil {
		return fmt.Errorf("insert scoring result: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *StoredResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scoring.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise_key, total_points, status, breakdown, started_at, duration_sec, created_at
			FROM scoring_result
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	results, err := r.rows2results(rows)
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, ErrResultNotFound
	}
	return &results[0], nil
}

// List returns one page of stored results, newest first.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []StoredResult, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scoring.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", params.UserID))
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	countAll, err := r.Count(ctx, params)
	if err != nil {
		return nil, -1, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	if countAll <= limit {
		limit = countAll
		offset = 0
	}
	if countAll-offset < limit {
		offset = countAll - limit
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise_key, total_points, status, breakdown, started_at, duration_sec, created_at
			FROM scoring_result
			WHERE ($1::text = '' OR user_id = $1)
			AND ($2::text = '' OR exercise_key = $2)
			AND ($3::timestamp IS NULL OR created_at >= $3)
			AND ($4::timestamp IS NULL OR created_at <= $4)
			ORDER BY created_at DESC
			LIMIT $5
			OFFSET $6;`,
		params.UserID, params.ExerciseKey, params.From, params.To,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	results, err := r.rows2results(rows)
	if err != nil {
		return nil, -1, err
	}
	return results, countAll, nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scoring.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM scoring_result
			WHERE ($1::text = '' OR user_id = $1)
			AND ($2::text = '' OR exercise_key = $2)
			AND ($3::timestamp IS NULL OR created_at >= $3)
			AND ($4::timestamp IS NULL OR created_at <= $4);`,
		params.UserID, params.ExerciseKey, params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get results count")
}

// ListRecentActivities returns the activity time windows of a user since the
// given moment, for the duplicate/overlap fraud check.
func (r *Repo) ListRecentActivities(ctx context.Context, userID string, since time.Time) (_ []StoredActivity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.scoring.listrecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT exercise_key, started_at, duration_sec
			FROM scoring_result
			WHERE user_id = $1 AND started_at >= $2 AND status = 'completed'
			ORDER BY started_at DESC;`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	activities := make([]StoredActivity, 0)
	for rows.Next() {
		var a StoredActivity
		if err := rows.Scan(&a.ExerciseKey, &a.StartedAt, &a.DurationSec); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, nil
}

func (r *Repo) rows2results(rows pgx.Rows) ([]StoredResult, error) {
	var results []StoredResult
	for rows.Next() {
		var res StoredResult
		var breakdownBytes []byte
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.ExerciseKey, &res.TotalPoints, &res.Status,
			&breakdownBytes, &res.StartedAt, &res.DurationSec, &res.CalculationTime,
		); err != nil {
			return nil, err
		}

		if len(breakdownBytes) > 0 {
			if err := json.Unmarshal(breakdownBytes, &res.Breakdown); err != nil {
				return nil, fmt.Errorf("unmarshal breakdown for result %s: %w", res.ID, err)
			}
		}

		results = append(results, res)
	}

	if results == nil {
		results = make([]StoredResult, 0)
	}
	return results, nil
}
