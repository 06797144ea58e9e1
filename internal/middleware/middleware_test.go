package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SchoolPulse/SP-Backend/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

// callWithToken wraps a simple 200-OK inner handler in AdminMiddleware,
// optionally setting the X-Admin-Token header, and returns the recorded response.
func callWithToken(t *testing.T, token string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.AdminMiddleware(inner)
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	if token != "" {
		req.Header.Set("X-Admin-Token", token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestAdminMiddleware_NotConfigured verifies that requests are rejected with 403
// when no ADMIN_TOKEN_HASH is set, rather than letting everything through.
func TestAdminMiddleware_NotConfigured(t *testing.T) {
	t.Setenv("ADMIN_TOKEN_HASH", "")

	rec := callWithToken(t, "anything")

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not configured") {
		t.Errorf("expected body to mention missing configuration, got: %q", rec.Body.String())
	}
}

// TestAdminMiddleware_MissingToken verifies that a request with no X-Admin-Token
// header receives a 401 response.
func TestAdminMiddleware_MissingToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	t.Setenv("ADMIN_TOKEN_HASH", string(hash))

	rec := callWithToken(t, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestAdminMiddleware_WrongToken verifies that a token that does not match the
// configured bcrypt hash receives a 403 response.
func TestAdminMiddleware_WrongToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	t.Setenv("ADMIN_TOKEN_HASH", string(hash))

	rec := callWithToken(t, "wrong-token")

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

// TestAdminMiddleware_ValidToken verifies that the correct token reaches the
// inner handler and receives a 200 response.
func TestAdminMiddleware_ValidToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("letmein"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	t.Setenv("ADMIN_TOKEN_HASH", string(hash))

	rec := callWithToken(t, "letmein")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

// TestCORSMiddleware_AllowedOrigin verifies that an allow-listed origin is echoed
// back and that preflight requests short-circuit with 204.
func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.CORSMiddleware(inner)

	req := httptest.NewRequest(http.MethodOptions, "/survey/summary", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
}

// TestCORSMiddleware_UnknownOrigin verifies that an unknown origin gets no
// Access-Control-Allow-Origin header.
func TestCORSMiddleware_UnknownOrigin(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.CORSMiddleware(inner)

	req := httptest.NewRequest(http.MethodGet, "/survey/summary", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow-origin header, got %q", got)
	}
}
