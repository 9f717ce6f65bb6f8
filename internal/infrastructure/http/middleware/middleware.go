// Package middleware provides HTTP middleware components
// following the Chain of Responsibility pattern
package middleware

import (
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/vitabox/v1/internal/infrastructure/config"
)

// Logger provides structured request logging
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			// Health checks are too chatty to log.
			if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
				return
			}

			fields := []zap.Field{
				zap.String("request_id", chimiddleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("ip", r.RemoteAddr),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("user_agent", r.UserAgent()),
			}

			switch {
			case ww.Status() >= 500:
				logger.Error("Server error", fields...)
			case ww.Status() >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request", fields...)
			}
		})
	}
}

// CORS handles cross-origin requests for the configured origins.
// An empty origin list allows any origin.
func CORS(cfg *config.Config) func(http.Handler) http.Handler {
	allowed := cfg.Server.AllowedOrigins
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && originAllowed(origin, allowed) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}

// JSONOnly forces JSON content negotiation on API routes.
func JSONOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit applies a token-bucket limit across all requests.
func RateLimit(cfg *config.Config) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(
		rate.Limit(cfg.RateLimit.RequestsPerMin)/60,
		cfg.RateLimit.BurstSize,
	)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.RateLimit.Enable && !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":{"code":"TOO_MANY_REQUESTS","message":"Rate limit exceeded"}}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
