package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"crowdbridge/internal/core"
	"crowdbridge/pkg/jwt"

	"go.uber.org/zap"
)

const sessionKey contextKey = "session"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionValidator . SessionValidator
type SessionValidator interface {
	Session(token string) (jwt.TokenInfo, error)
}

// AuthMiddleware admits requests carrying a session token for the role a
// route requires.
type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	sessions SessionValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, sessions SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		sessions: sessions,
	}
}

func (m *AuthMiddleware) RequireRole(role core.Role, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := RequestIDFrom(r.Context())

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			deny(w, http.StatusUnauthorized, "session token is required")
			m.logs.Warnw("missing session token", "path", r.URL.Path, "request_id", requestID)
			return
		}

		session, err := m.sessions.Session(token)
		if err != nil {
			msg := "session token is not valid"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "session expired, open a new one"
			}
			deny(w, http.StatusUnauthorized, msg)
			m.logs.Warnw("session rejected", "error", err, "path", r.URL.Path, "request_id", requestID)
			return
		}

		if session.Role != string(role) {
			deny(w, http.StatusForbidden, "this action requires the "+string(role)+" role")
			m.logs.Warnw("role not allowed",
				"role", session.Role,
				"required", role,
				"address", session.Address,
				"request_id", requestID)
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, session)
		next(w, r.WithContext(ctx))
	}
}

// SessionFrom returns the session RequireRole admitted the request with.
func SessionFrom(ctx context.Context) (jwt.TokenInfo, bool) {
	session, ok := ctx.Value(sessionKey).(jwt.TokenInfo)
	return session, ok
}

func deny(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
