package middleware

import (
	"net/http"

	"github.com/plantnet/plantnet-server/internal/api/http/httpctx"
	"github.com/plantnet/plantnet-server/internal/logger"
	"github.com/plantnet/plantnet-server/internal/model"
)

// SessionCookieName is the cookie carrying the signed session credential.
const SessionCookieName = "token"

// Authenticate validates the session cookie and injects the verified
// claims into the request context. The response never discloses why
// verification failed.
type Authenticate struct {
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, logger: logger}
}

// Handle gates the wrapped handler behind cookie verification.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			writeUnauthorized(w)
			return
		}

		claims, err := m.tokenManager.ParseSessionToken(cookie.Value)
		if err != nil {
			m.logger.Debug("Authenticate middleware: rejected session token",
				"error", err.Error())
			writeUnauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(httpctx.SetClaims(r.Context(), claims)))
	})
}

// RequireRole gates the wrapped handler behind a role check. It must run
// after Authenticate.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := httpctx.Claims(r.Context())
			if !ok {
				writeUnauthorized(w)
				return
			}
			if claims.Role != role {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"message":"forbidden"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"message":"unauthorized access"}`))
}
