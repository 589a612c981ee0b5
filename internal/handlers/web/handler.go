package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/smashcrew/teambalance/internal/services/tournament"
)

const (
	// sessionName is the admin session cookie
	sessionName = "teambalance-admin-session"

	// sessionAuthKey marks an authenticated admin session
	sessionAuthKey = "authenticated"

	// sessionMaxAge is how long an admin session lasts
	sessionMaxAge = 60 * 60 * 24
)

// Config holds configuration for the web handler
type Config struct {
	// Service handles all tournament operations
	Service tournament.Service

	// AdminPassword guards the admin endpoints
	AdminPassword string

	// SessionSecret signs the admin session cookie
	SessionSecret string

	// Logger for request failures
	Logger *zap.Logger
}

// Handler serves the participant and admin JSON API
type Handler struct {
	service  tournament.Service
	store    *sessions.CookieStore
	password string
	log      *zap.Logger
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if cfg.AdminPassword == "" {
		return nil, errors.New("admin password cannot be empty")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("session secret cannot be empty")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Handler{
		service:  cfg.Service,
		store:    store,
		password: cfg.AdminPassword,
		log:      logger,
	}, nil
}

// requireAdmin rejects requests without an authenticated admin session
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, _ := h.store.Get(r, sessionName)

		if isAuth, _ := session.Values[sessionAuthKey].(bool); !isAuth {
			h.respondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// respondJSON writes a JSON body with the given status
func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("failed to encode response", zap.Error(err))
	}
}

// respondError writes a JSON error body with the given status
func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, &errorResponse{Error: message})
}

// respondInternalError logs the failure and writes a generic 500
func (h *Handler) respondInternalError(w http.ResponseWriter, op string, err error) {
	h.log.Error(op, zap.Error(err))
	h.respondError(w, http.StatusInternalServerError, "internal server error")
}

// decodeJSON reads a JSON request body into dst
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
