package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/kina-lambda/internal/auth"
)

func captureSession(t *testing.T, req *http.Request) (uuid.UUID, *httptest.ResponseRecorder) {
	t.Helper()

	var got uuid.UUID
	h := auth.SessionMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := auth.SessionIDFromContext(r.Context())
		if err != nil {
			t.Fatalf("no session in context: %v", err)
		}
		got = id
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return got, rec
}

func TestSessionMiddleware(t *testing.T) {
	auth.Init(testSecret, time.Hour)

	t.Run("StartsSessionWithoutToken", func(t *testing.T) {
		id, rec := captureSession(t, httptest.NewRequest(http.MethodGet, "/", nil))

		if id == uuid.Nil {
			t.Fatal("expected a new session id")
		}
		if rec.Header().Get("X-Session-Token") == "" {
			t.Error("expected the new token in X-Session-Token")
		}

		var found bool
		for _, c := range rec.Result().Cookies() {
			if c.Name == auth.SessionCookieName && c.Value != "" {
				found = true
			}
		}
		if !found {
			t.Error("expected session cookie to be set")
		}
	})

	t.Run("ReusesCookieSession", func(t *testing.T) {
		sessionID := uuid.New()
		token, err := auth.GenerateJWT(sessionID.String(), time.Hour)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})

		id, rec := captureSession(t, req)
		if id != sessionID {
			t.Errorf("expected session %s, got %s", sessionID, id)
		}
		if rec.Header().Get("X-Session-Token") != "" {
			t.Error("did not expect a new token for a valid session")
		}
	})

	t.Run("ReusesBearerSession", func(t *testing.T) {
		sessionID := uuid.New()
		token, _ := auth.GenerateJWT(sessionID.String(), time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		id, _ := captureSession(t, req)
		if id != sessionID {
			t.Errorf("expected session %s, got %s", sessionID, id)
		}
	})

	t.Run("RenewsAgingTokenForSameSession", func(t *testing.T) {
		sessionID := uuid.New()
		token, err := auth.GenerateJWT(sessionID.String(), 10*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		id, rec := captureSession(t, req)
		if id != sessionID {
			t.Fatalf("renewal must keep session %s, got %s", sessionID, id)
		}

		renewed := rec.Header().Get("X-Session-Token")
		if renewed == "" {
			t.Fatal("expected a renewed token in X-Session-Token")
		}
		claims, err := auth.ValidateJWT(renewed)
		if err != nil {
			t.Fatalf("renewed token invalid: %v", err)
		}
		if claims.SessionID != sessionID.String() {
			t.Errorf("renewed token carries %s, want %s", claims.SessionID, sessionID)
		}
		if left := time.Until(claims.ExpiresAt.Time); left < 50*time.Minute {
			t.Errorf("renewed token should get the full ttl, has %v left", left)
		}
	})

	t.Run("ReplacesInvalidToken", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "garbage"})

		id, rec := captureSession(t, req)
		if id == uuid.Nil || rec.Header().Get("X-Session-Token") == "" {
			t.Error("expected a fresh session for an invalid token")
		}
	})
}
