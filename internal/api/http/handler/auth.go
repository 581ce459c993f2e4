package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/plantnet/plantnet-server/internal/api/http/httpctx"
	"github.com/plantnet/plantnet-server/internal/api/http/middleware"
	"github.com/plantnet/plantnet-server/internal/logger"
	"github.com/plantnet/plantnet-server/internal/model"
)

// AuthService defines session issue and profile upsert operations.
type AuthService interface {
	Login(ctx context.Context, email, name, image string) (string, model.User, error)
	RefreshProfile(ctx context.Context, email, name, image string) (model.User, error)
}

// Auth handles session and user profile endpoints.
type Auth struct {
	authService AuthService
	production  bool
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler. The production flag selects the
// strict cookie policy (Secure, SameSite=None).
func NewAuth(authService AuthService, production bool, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		production:  production,
		logger:      logger,
	}
}

type loginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Login issues a session credential for the given identity and sets it
// as the session cookie.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateEmail(req.Email); err != nil {
		handleError(w, err)
		return
	}

	token, _, err := h.authService.Login(r.Context(), req.Email, req.Name, req.Image)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, 0))
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Logout clears the session cookie.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// UpsertUser refreshes the authenticated user's profile. The profile key
// is always the session's email claim.
func (h *Auth) UpsertUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpctx.Claims(r.Context())
	if !ok {
		handleError(w, model.ErrUnauthenticated)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.RefreshProfile(r.Context(), claims.Email, req.Name, req.Image)
	if err != nil {
		h.logger.Error("Auth handler: profile upsert failed",
			"email", claims.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Auth) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.production,
		SameSite: http.SameSiteStrictMode,
	}
	if h.production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

func validateEmail(email string) error {
	if email == "" {
		return model.NewValidationError("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return model.NewValidationError("email is not valid")
	}
	return nil
}
