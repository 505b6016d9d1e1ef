package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"venuehub/internal/storage"
	"venuehub/pkg/httputil"
	"venuehub/pkg/logger"
)

type HealthHandler struct {
	snap storage.Snapshotter
	log  *logger.Logger
}

func NewHealthHandler(snap storage.Snapshotter, log *logger.Logger) *HealthHandler {
	return &HealthHandler{snap: snap, log: log}
}

func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		h.log.Error("failed to write health response", "error", err)
	}
}

// Ready additionally checks that the snapshot backend is reachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if _, err := h.snap.Load(r.Context()); err != nil {
		h.log.Warn("Readiness check failed", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		}); writeErr != nil {
			h.log.Error("failed to write readiness response", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"}); err != nil {
		h.log.Error("failed to write readiness response", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
