package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dosada05/tournament-draws/middleware"
	"github.com/golang-jwt/jwt/v4"
)

const secret = "middleware-secret"

func token(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func protected(roles ...string) http.Handler {
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, err := middleware.GetSubjectFromContext(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusTeapot)
			return
		}
		w.Header().Set("X-Subject", sub)
		w.WriteHeader(http.StatusNoContent)
	})
	return middleware.Authenticate(secret)(middleware.Authorize(roles...)(final))
}

func TestAuthenticateAndAuthorize(t *testing.T) {
	valid := func(role string) jwt.MapClaims {
		return jwt.MapClaims{"sub": "referee", "role": role, "exp": time.Now().Add(time.Hour).Unix()}
	}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"wrong key", "Bearer " + token(t, jwt.SigningMethodHS256, []byte("other"), valid("organizer")), http.StatusUnauthorized},
		{"expired", "Bearer " + token(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
			"sub": "referee", "role": "organizer", "exp": time.Now().Add(-time.Minute).Unix(),
		}), http.StatusUnauthorized},
		{"no role claim", "Bearer " + token(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{"sub": "referee"}), http.StatusUnauthorized},
		{"wrong role", "Bearer " + token(t, jwt.SigningMethodHS256, []byte(secret), valid("viewer")), http.StatusForbidden},
		{"organizer", "Bearer " + token(t, jwt.SigningMethodHS256, []byte(secret), valid("organizer")), http.StatusNoContent},
		{"admin", "Bearer " + token(t, jwt.SigningMethodHS256, []byte(secret), valid("admin")), http.StatusNoContent},
	}

	h := protected("organizer", "admin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/draws", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}
			if tt.want == http.StatusNoContent && rec.Header().Get("X-Subject") != "referee" {
				t.Errorf("subject = %q", rec.Header().Get("X-Subject"))
			}
			if tt.want != http.StatusNoContent && rec.Header().Get("Content-Type") != "application/json" {
				t.Errorf("content type = %q", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRejectsNoneAlgorithm(t *testing.T) {
	s := token(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{"sub": "referee", "role": "admin"})
	req := httptest.NewRequest(http.MethodPost, "/draws", nil)
	req.Header.Set("Authorization", "Bearer "+s)
	rec := httptest.NewRecorder()
	protected("admin").ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRoleFromContextWithoutClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := middleware.GetUserRoleFromContext(req.Context()); err == nil {
		t.Fatal("expected error without claims")
	}
}
