package session

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	apperrors "venuehub/pkg/errors"
	"venuehub/pkg/httputil"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
)

type Handler struct {
	store *Store
	log   *logger.Logger
}

func NewHandler(store *Store, log *logger.Logger) *Handler {
	return &Handler{store: store, log: log}
}

type loginRequest struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
}

type sessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	Username      string     `json:"username,omitempty"`
	Role          model.Role `json:"role,omitempty"`
}

// Login starts a session for the given identity. There is no credential
// check here: authentication happens upstream and this service only
// records the resulting flags.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Login", apperrors.InvalidInput("Invalid request body"))
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		h.writeError(w, "Login", apperrors.InvalidInput("username is required"))
		return
	}
	if !req.Role.Valid() {
		h.writeError(w, "Login", apperrors.InvalidInput("role must be one of student, staff, department_head"))
		return
	}

	token := h.store.Start(req.Username, req.Role)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.log.Info("Session started", "username", req.Username, "role", req.Role)
	if err := httputil.WriteSuccess(w, sessionResponse{
		Authenticated: true,
		Username:      req.Username,
		Role:          req.Role,
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "error", err)
	}
}

// Logout clears the authenticated, username and role flags together and
// expires the cookie. Logging out without a session is a no-op.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cookie, err := r.Cookie(CookieName); err == nil {
		h.store.End(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err := httputil.WriteSuccess(w, sessionResponse{Authenticated: false}); err != nil {
		h.log.Error("failed to write success response", "handler", "Logout", "error", err)
	}
}

// Current reports the flags for the request's session, if any.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	resp := sessionResponse{Authenticated: false}
	if actor, ok := h.store.Resolve(r); ok {
		resp = sessionResponse{Authenticated: true, Username: actor.Username, Role: actor.Role}
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "Current", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handlerName, "error", writeErr)
	}
}

func (h *Handler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/session/login", h.Login)
	router.POST("/api/v1/session/logout", h.Logout)
	router.GET("/api/v1/session", h.Current)
}
