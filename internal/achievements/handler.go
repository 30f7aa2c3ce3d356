package achievements

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/endlessblink/sweatbot/internal/telemetry/metrics"
	"github.com/endlessblink/sweatbot/internal/telemetry/tracing"
	"github.com/endlessblink/sweatbot/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=achievements_test

type progressRepo interface {
	ListProgress(ctx context.Context, userID string) ([]Progress, error)
}

type tracker interface {
	Recheck(ctx context.Context, userID string, stats map[string]float64) (*RecheckResult, error)
}

type EvaluateRequest struct {
	Stats map[string]float64 `json:"stats"`
}

type ProgressResponse struct {
	Progress []Progress `json:"progress"`
}

type Handler struct {
	tracker tracker
	repo    progressRepo
	metrics *metrics.Manager
}

func NewHandler(tracker tracker, repo progressRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		tracker: tracker,
		repo:    repo,
		metrics: metricsManager,
	}
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.progress")
	defer span.End()

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	progress, err := handler.repo.ListProgress(ctx, userID)
	if err != nil {
		log.Errorf("failed to list achievement progress for %s: %s", userID, err)
		http.Error(w, "failed to get achievement progress", http.StatusInternalServerError)
		return
	}

	progressJson, err := json.Marshal(ProgressResponse{Progress: progress})
	if err != nil {
		log.Errorf("failed to marshal achievement progress: %s", err)
		http.Error(w, "failed to marshal achievement progress", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, progressJson, http.StatusOK)
}

func (handler *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.evaluate")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	userID := vars["userId"]
	if userID == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("evaluate achievements, unmarshal json params: %s", err)
		http.Error(w, "evaluate achievements failed", http.StatusBadRequest)
		return
	}

	result, err := handler.tracker.Recheck(ctx, userID, req.Stats)
	if err != nil {
		log.Errorf("failed to recheck achievements for %s: %s", userID, err)
		http.Error(w, "failed to evaluate achievements", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterAchievementUnlocks.Add(float64(len(result.NewlyUnlocked)))

	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Errorf("failed to marshal recheck result: %s", err)
		http.Error(w, "failed to marshal recheck result", http.StatusInternalServerError)
		return
	}

	log.Debugf("achievements rechecked for [%s]: %d newly unlocked", userID, len(result.NewlyUnlocked))
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resultJson, http.StatusOK)
}
