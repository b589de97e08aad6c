package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/saulo-duarte/kina-lambda/internal/config"
)

type Handler struct {
	forget []func(uuid.UUID)
}

// NewHandler takes the callbacks that discard per-session state on logout.
func NewHandler(forget ...func(uuid.UUID)) *Handler {
	return &Handler{forget: forget}
}

// Logout drops the session cookie and its in-memory state; the next request
// starts a fresh session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionID, err := SessionIDFromContext(r.Context()); err == nil {
		for _, f := range h.forget {
			f(sessionID)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "session ended",
	})
}
