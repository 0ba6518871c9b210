// Package middleware holds the small HTTP middlewares every route shares:
// request id assignment and the request-scoped clock.
package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"murima/pkg/requestcontext"
)

// RequestID assigns a fresh request id unless the caller supplied one via
// X-Request-ID, and echoes it back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", reqID)
		ctx := requestcontext.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestTime captures the current time at the start of the request and stores
// it in the context, so every operation in the request observes the same now.
// The registration trend aggregate derives its "current year" from this.
func RequestTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
