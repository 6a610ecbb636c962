// Package api exposes HTTP handlers for the extracurricular roster service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/extracurricular/internal/domain"
	"example.com/extracurricular/internal/observability"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
}

// NewHandler builds a Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires endpoints to the mux. The static asset handler and
// /metrics are registered by the caller.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.activities)
	mux.HandleFunc("/activities/", h.activityAction)
	mux.HandleFunc("/healthz", healthz)
	mux.HandleFunc("/", root)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the bare path to the front-end bundle. Anything else that
// falls through to this pattern is an unknown route.
func root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "Not Found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) activities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}
	h.listActivities(w, r)
}

// activityAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The mux hands us an already URL-decoded
// path, so names containing spaces resolve without extra work.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		writeError(w, http.StatusNotFound, "not_found", "Not Found")
		return
	}

	name := rest[:idx]
	action := rest[idx+1:]

	switch {
	case action == "signup" && r.Method == http.MethodPost:
		h.signup(w, r, name)
	case action == "unregister" && r.Method == http.MethodDelete:
		h.unregister(w, r, name)
	case action == "signup" || action == "unregister":
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
	default:
		writeError(w, http.StatusNotFound, "not_found", "Not Found")
	}
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")

	if err := h.service.Signup(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejection("signup", "activity_not_found")
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrAlreadyRegistered):
			observability.RecordRejection("signup", "already_registered")
			writeError(w, http.StatusBadRequest, "already_registered", "Student is already signed up")
		case errors.Is(err, domain.ErrEmailRequired):
			observability.RecordRejection("signup", "email_missing")
			writeError(w, http.StatusBadRequest, "validation_failed", "email is required")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	observability.RecordSignup(name)
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")

	if err := h.service.Unregister(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			observability.RecordRejection("unregister", "activity_not_found")
			writeError(w, http.StatusNotFound, "not_found", "Activity not found")
		case errors.Is(err, domain.ErrNotRegistered):
			observability.RecordRejection("unregister", "not_registered")
			writeError(w, http.StatusBadRequest, "not_registered", "Student is not registered for this activity")
		case errors.Is(err, domain.ErrEmailRequired):
			observability.RecordRejection("unregister", "email_missing")
			writeError(w, http.StatusBadRequest, "validation_failed", "email is required")
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	observability.RecordUnregister(name)
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// MessageResponse confirms a successful roster mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]string{"type": code, "detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
