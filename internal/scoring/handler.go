package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/endlessblink/sweatbot/internal/telemetry/metrics"
	"github.com/endlessblink/sweatbot/internal/telemetry/tracing"
	"github.com/endlessblink/sweatbot/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=scoring_test

// overlapLookback bounds how far back the duplicate/overlap check reaches.
const overlapLookback = 24 * time.Hour

type historyRepo interface {
	Add(ctx context.Context, result CalculationResult, activity Activity) error
	Get(ctx context.Context, id string) (*StoredResult, error)
	List(ctx context.Context, params ListParams) (_ []StoredResult, total int, err error)
	ListRecentActivities(ctx context.Context, userID string, since time.Time) ([]StoredActivity, error)
}

type challengeSource interface {
	ActiveChallenges(ctx context.Context) ([]ActiveChallenge, *SeasonalEvent, error)
}

type CalculateRequest struct {
	UserID      string      `json:"user_id"`
	ExerciseKey string      `json:"exercise_key"`
	Activity    Activity    `json:"activity"`
	Context     UserContext `json:"context"`
}

type HistoryResponse struct {
	Results []StoredResult `json:"results"`
	Total   int            `json:"total"`
}

type Handler struct {
	engine     *Engine
	repo       historyRepo
	challenges challengeSource
	metrics    *metrics.Manager
}

func NewHandler(
	engine *Engine,
	repo historyRepo,
	challenges challengeSource,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		engine:     engine,
		repo:       repo,
		challenges: challenges,
		metrics:    metricsManager,
	}
}

func (handler *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.points.calculate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("calculate points, unmarshal json params: %s", err)
		http.Error(w, "calculate points failed", http.StatusBadRequest)
		return
	}

	if req.UserID == "" || req.ExerciseKey == "" {
		http.Error(w, "error, user id or exercise key empty", http.StatusBadRequest)
		return
	}

	// resolve active challenges and seasonal event when the client did not
	// send a snapshot of its own
	if req.Context.ActiveChallenges == nil && handler.challenges != nil {
		challenges, seasonal, err := handler.challenges.ActiveChallenges(ctx)
		if err != nil {
			// scoring proceeds without the multipliers, just log it
			log.Errorf("failed to resolve active challenges for %s: %s", req.UserID, err)
		} else {
			req.Context.ActiveChallenges = challenges
			if req.Context.SeasonalEvent == nil {
				req.Context.SeasonalEvent = seasonal
			}
		}
	}

	result := handler.calculateChecked(ctx, req)

	if err := handler.repo.Add(ctx, result, req.Activity); err != nil {
		log.Errorf("failed to persist calculation result %s: %s", result.ID, err)
		http.Error(w, "error, failed to store calculation result", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterCalculations.WithLabelValues(string(result.Status)).Inc()
	if result.Status == StatusFlagged {
		handler.metrics.CounterFlaggedActivities.Inc()
		reqIp, _ := pkg.ReadUserIP(r)
		log.Warnf("flagged activity [%s] from [%s] by %s: %v", req.ExerciseKey, reqIp, req.UserID, result.Breakdown.Warnings)
	}
	handler.metrics.HistCalculationDuration.Observe(result.Breakdown.CalculationTimeMs / 1000)

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal calculation result: %s", err)
		http.Error(w, "error, failed to marshal calculation result", http.StatusInternalServerError)
		return
	}

	log.Debugf("points calculated for [%s] [%s]: %d (%s)", req.UserID, req.ExerciseKey, result.TotalPoints, result.Status)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusCreated)
}

// calculateChecked runs the duplicate/overlap gate over stored history and
// then the engine itself.
func (handler *Handler) calculateChecked(ctx context.Context, req CalculateRequest) CalculationResult {
	if !req.Activity.StartedAt.IsZero() {
		since := req.Activity.StartedAt.Add(-overlapLookback)
		recent, err := handler.repo.ListRecentActivities(ctx, req.UserID, since)
		if err != nil {
			// the overlap gate is best effort, a failed lookup must not
			// block scoring
			log.Errorf("failed to list recent activities for %s: %s", req.UserID, err)
		} else if overlap := CheckOverlap(req.Activity, recent); !overlap.IsValid {
			return handler.engine.Flag(req.UserID, req.ExerciseKey, overlap)
		}
	}
	return handler.engine.Calculate(ctx, req.UserID, req.ExerciseKey, req.Activity, req.Context)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.points.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	result, err := handler.repo.Get(ctx, id)
	if err != nil {
		log.Errorf("failed to get calculation result %s: %s", id, err)
		http.Error(w, "calculation result not found", http.StatusNotFound)
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal calculation result: %s", err)
		http.Error(w, "failed to marshal calculation result", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.points.history")
	defer span.End()

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle points history, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle points history, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 || size < 1 {
		http.Error(w, "invalid page or size (have to be non-zero values)", http.StatusBadRequest)
		return
	}

	results, total, err := handler.repo.List(ctx, ListParams{
		UserID:      r.URL.Query().Get("user_id"),
		ExerciseKey: r.URL.Query().Get("exercise_key"),
		Page:        page,
		Size:        size,
	})
	if err != nil {
		log.Errorf("list calculation results error: %s", err)
		http.Error(w, "failed to get calculation history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(HistoryResponse{
		Results: results,
		Total:   total,
	})
	if err != nil {
		log.Errorf("marshal calculation history error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}
