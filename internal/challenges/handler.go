package challenges

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/endlessblink/sweatbot/internal/telemetry/tracing"
	"github.com/endlessblink/sweatbot/pkg"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.challenges.active")
	defer span.End()

	snapshot := handler.service.ActiveSnapshot(ctx)

	snapshotJson, err := json.Marshal(snapshot)
	if err != nil {
		log.Errorf("failed to marshal challenges snapshot: %s", err)
		http.Error(w, "failed to get active challenges", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, snapshotJson, http.StatusOK)
}
