package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/juanchoclasses/CursorWorkshop/internal/handlers/reqctx"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware keeps the caller's X-Request-ID or generates a new one,
// echoes it in the response and stores it in the request context
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > 128 {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(reqctx.New(r.Context(), id)))
		})
	}
}
