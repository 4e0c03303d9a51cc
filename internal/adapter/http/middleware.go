package adapthttp

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"taskhub/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// authMiddleware is the gateway in front of every protected route. A
// request with no Authorization header is unauthenticated (401); a
// request whose bearer token fails verification presented an identity
// that cannot be trusted (403). The two are distinct failure classes.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		identity, err := s.tokens.Verify(token)
		if err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identityFrom returns the identity the gateway attached to the request.
func identityFrom(r *http.Request) (domain.Identity, bool) {
	id, ok := r.Context().Value(identityContextKey).(domain.Identity)
	return id, ok
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs method, path, status and duration per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
