package middleware

import (
	"net/http"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

var allowed = map[string]struct{}{
	"http://localhost:5173":                {},
	"http://localhost:8501":                {},
	"https://schoolpulse.github.io":        {},
	"https://dashboard.schoolpulse.in":     {},
	"https://sp-backend.onrender.com":      {},
	"https://dashboard-dev.schoolpulse.in": {},
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Echo the origin back only if it’s on our allow-list
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin") // important for caches
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods",
				"GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, X-Admin-Token")
		}

		w.Header().Set("Access-Control-Expose-Headers", "X-Data-Status, Retry-After, Cache-Control")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware applies a shared token bucket to every request.
// Tuned via RATE_LIMIT_RPS; the whole pipeline is recomputed at most once
// per cache window, so the default is generous.
func RateLimitMiddleware() func(http.Handler) http.Handler {
	rps := 50
	if s := os.Getenv("RATE_LIMIT_RPS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			rps = n
		}
	}
	limiter := rate.NewLimiter(rate.Limit(rps), rps*2)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminMiddleware guards mutating routes (cache refresh) with a shared token.
// ADMIN_TOKEN_HASH holds a bcrypt hash so the plaintext token never lives in
// the environment.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hash := os.Getenv("ADMIN_TOKEN_HASH")
		if hash == "" {
			http.Error(w, "Admin access is not configured", http.StatusForbidden)
			return
		}

		token := r.Header.Get("X-Admin-Token")
		if token == "" {
			http.Error(w, "Unauthorized: missing admin token", http.StatusUnauthorized)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
			http.Error(w, "Forbidden: admin access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
