package catalog

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/httputil"
	"venuehub/pkg/logger"
)

type Handler struct {
	catalog *Catalog
	log     *logger.Logger
}

func NewHandler(catalog *Catalog, log *logger.Logger) *Handler {
	return &Handler{catalog: catalog, log: log}
}

func (h *Handler) ListVenues(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	venues := h.catalog.Venues()
	if err := httputil.WriteList(w, venues, int64(len(venues))); err != nil {
		h.log.Error("failed to write venue list", "error", err)
	}
}

func (h *Handler) GetVenue(w http.ResponseWriter, _ *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	venue, ok := h.catalog.Venue(id)
	if !ok {
		if err := httputil.WriteError(w, apperrors.NotFoundWithID("Venue", id)); err != nil {
			h.log.Error("failed to write error response", "handler", "GetVenue", "error", err)
		}
		return
	}

	if err := httputil.WriteSuccess(w, venue); err != nil {
		h.log.Error("failed to write venue response", "error", err)
	}
}

func (h *Handler) ListSlots(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	slots := h.catalog.Slots()
	if err := httputil.WriteList(w, slots, int64(len(slots))); err != nil {
		h.log.Error("failed to write slot list", "error", err)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/venues", h.ListVenues)
	router.GET("/api/v1/venues/:id", h.GetVenue)
	router.GET("/api/v1/slots", h.ListSlots)
}
