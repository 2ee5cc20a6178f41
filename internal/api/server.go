// Package api exposes the optimization pipeline over HTTP.
package api

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Server wraps HTTP routing. It carries no state beyond the mux: every
// request builds its own nurses/patients/weights and its own solver
// worker pool, so nothing here is shared across requests.
type Server struct {
	mux *http.ServeMux
}

// NewServer wires the route table.
func NewServer() *Server {
	mux := http.NewServeMux()
	srv := &Server{mux: mux}

	mux.HandleFunc("GET /", srv.healthHandler)
	mux.HandleFunc("GET /test", srv.testHandler)
	mux.HandleFunc("POST /optimize", srv.optimizeHandler)

	return srv
}

// Handler returns the root HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return corsMiddleware(loggingMiddleware(s.mux))
}

// loggingMiddleware tags every request with a UUID so a caller's support
// ticket can be correlated with a single log line.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s %s %dms", requestID, r.Method, r.URL.Path, r.RemoteAddr, time.Since(start).Milliseconds())
	})
}

// corsMiddleware mirrors the reference backend's permissive-by-default CORS
// handling; this service has no cookie-based auth so a wildcard origin is
// safe unless the operator overrides it.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigin := os.Getenv("CORS_ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
	if allowedMethods == "" {
		allowedMethods = "GET,POST,OPTIONS"
	}
	allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
	if allowedHeaders == "" {
		allowedHeaders = "Content-Type"
	}
	maxAge := os.Getenv("CORS_MAX_AGE")
	if maxAge == "" {
		maxAge = "3600"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
		w.Header().Set("Access-Control-Max-Age", maxAge)

		if r.Method == http.MethodOptions {
			status := http.StatusNoContent
			if v, err := strconv.Atoi(maxAge); err == nil && v == 0 {
				status = http.StatusOK
			}
			w.WriteHeader(status)
			return
		}

		next.ServeHTTP(w, r)
	})
}
