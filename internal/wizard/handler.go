package wizard

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/httputil"
	"venuehub/pkg/logger"
	"venuehub/pkg/middleware"
)

type Handler struct {
	manager *Manager
	log     *logger.Logger
}

func NewHandler(manager *Manager, log *logger.Logger) *Handler {
	return &Handler{manager: manager, log: log}
}

type selectRequest struct {
	VenueID    string `json:"venue_id"`
	Date       string `json:"date"`
	TimeSlotID string `json:"time_slot_id"`
}

// stateResponse pairs the state with its derived step so clients do not
// have to re-derive it.
type stateResponse struct {
	Step  Step  `json:"step"`
	State State `json:"state"`
}

func (h *Handler) Current(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actor := middleware.ActorFromContext(r.Context())
	state := h.manager.Current(actor.Username)
	h.writeState(w, "Current", state)
}

func (h *Handler) SelectVenue(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, ok := h.decodeSelect(w, r, "SelectVenue")
	if !ok {
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	state, err := h.manager.SelectVenue(actor.Username, req.VenueID)
	if err != nil {
		h.writeError(w, "SelectVenue", err)
		return
	}
	h.writeState(w, "SelectVenue", state)
}

func (h *Handler) SelectDate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, ok := h.decodeSelect(w, r, "SelectDate")
	if !ok {
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	state, err := h.manager.SelectDate(actor.Username, req.Date)
	if err != nil {
		h.writeError(w, "SelectDate", err)
		return
	}
	h.writeState(w, "SelectDate", state)
}

func (h *Handler) SelectSlot(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	req, ok := h.decodeSelect(w, r, "SelectSlot")
	if !ok {
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	state, err := h.manager.SelectSlot(r.Context(), actor.Username, req.TimeSlotID)
	if err != nil {
		h.writeError(w, "SelectSlot", err)
		return
	}
	h.writeState(w, "SelectSlot", state)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form SubmitForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		h.writeError(w, "Submit", apperrors.InvalidInput("Invalid request body"))
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	booking, state, err := h.manager.Submit(r.Context(), actor.Username, form, actor)
	if err != nil {
		h.writeError(w, "Submit", err)
		return
	}

	if err := httputil.WriteCreated(w, map[string]any{
		"booking": booking,
		"step":    state.Step(),
		"state":   state,
	}); err != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "error", err)
	}
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actor := middleware.ActorFromContext(r.Context())
	state := h.manager.Reset(actor.Username)
	h.writeState(w, "Reset", state)
}

func (h *Handler) decodeSelect(w http.ResponseWriter, r *http.Request, name string) (selectRequest, bool) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, name, apperrors.InvalidInput("Invalid request body"))
		return selectRequest{}, false
	}
	return req, true
}

func (h *Handler) writeState(w http.ResponseWriter, name string, state State) {
	if err := httputil.WriteSuccess(w, stateResponse{Step: state.Step(), State: state}); err != nil {
		h.log.Error("failed to write success response", "handler", name, "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/wizard", h.Current)
	router.POST("/api/v1/wizard/venue", h.SelectVenue)
	router.POST("/api/v1/wizard/date", h.SelectDate)
	router.POST("/api/v1/wizard/slot", h.SelectSlot)
	router.POST("/api/v1/wizard/submit", h.Submit)
	router.POST("/api/v1/wizard/reset", h.Reset)
}
