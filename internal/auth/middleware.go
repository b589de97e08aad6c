package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/kina-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

const SessionCookieName = "kina_session"

type contextKey string

const sessionClaimsKey contextKey = "session_claims"

var ErrNoSession = errors.New("no session in context")

// SessionMiddleware attaches the caller's session to the request context,
// starting a new session when the request carries no valid token.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		claims, err := claimsFromRequest(r)
		if err != nil {
			claims, err = startSession(w)
			if err != nil {
				log.WithError(err).Error("Failed to start session")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			log.WithField("session_id", claims.SessionID).Debug("Started new session")
		} else if needsRenewal(claims) {
			// Sliding expiry: an active session keeps its id and its state.
			if renewed, err := issueSession(w, claims.SessionID); err != nil {
				log.WithError(err).Warn("Failed to renew session token")
			} else {
				claims = renewed
				log.WithField("session_id", claims.SessionID).Debug("Renewed session token")
			}
		}

		ctx := context.WithValue(r.Context(), sessionClaimsKey, claims)
		ctx = config.WithLogFields(ctx, logrus.Fields{"session_id": claims.SessionID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFromRequest(r *http.Request) (*SessionClaims, error) {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return ValidateJWT(strings.TrimPrefix(header, "Bearer "))
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, err
	}
	return ValidateJWT(cookie.Value)
}

func startSession(w http.ResponseWriter) (*SessionClaims, error) {
	return issueSession(w, uuid.NewString())
}

// needsRenewal reports whether less than half of the token lifetime is left.
func needsRenewal(claims *SessionClaims) bool {
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Until(claims.ExpiresAt.Time) < tokenTTL/2
}

func issueSession(w http.ResponseWriter, sessionID string) (*SessionClaims, error) {
	token, err := GenerateJWT(sessionID, tokenTTL)
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	w.Header().Set("X-Session-Token", token)

	return &SessionClaims{SessionID: sessionID}, nil
}

func GetSessionClaimsFromContext(ctx context.Context) (*SessionClaims, error) {
	claims, ok := ctx.Value(sessionClaimsKey).(*SessionClaims)
	if !ok || claims == nil {
		return nil, ErrNoSession
	}
	return claims, nil
}

func SessionIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, err := GetSessionClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, ErrInvalidSession
	}
	return id, nil
}

// ContextWithSession is used by tests and background callers that already
// know the session they act for.
func ContextWithSession(ctx context.Context, sessionID uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionClaimsKey, &SessionClaims{SessionID: sessionID.String()})
}
