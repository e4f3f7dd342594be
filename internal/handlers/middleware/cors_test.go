package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCORSMiddleware(t *testing.T) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	do := func(origins []string, method, origin string, preflight bool) *httptest.ResponseRecorder {
		reached = false
		req := httptest.NewRequest(method, "/api/accounts", nil)
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		if preflight {
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		}
		rec := httptest.NewRecorder()
		CORSMiddleware(origins)(next).ServeHTTP(rec, req)
		return rec
	}

	t.Run("wildcard", func(t *testing.T) {
		rec := do([]string{"*"}, http.MethodGet, "http://example.com", false)

		require.True(t, reached)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin echoed", func(t *testing.T) {
		rec := do([]string{"http://localhost:3000"}, http.MethodGet, "http://localhost:3000", false)

		require.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "Origin", rec.Header().Get("Vary"))
	})

	t.Run("unlisted origin not allowed", func(t *testing.T) {
		rec := do([]string{"http://localhost:3000"}, http.MethodGet, "http://evil.com", false)

		require.True(t, reached, "request still served, browser enforces the policy")
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight answered", func(t *testing.T) {
		rec := do([]string{"*"}, http.MethodOptions, "http://example.com", true)

		require.False(t, reached, "preflight should not reach handler")
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, corsAllowMethods, rec.Header().Get("Access-Control-Allow-Methods"))
		require.Equal(t, corsAllowHeaders, rec.Header().Get("Access-Control-Allow-Headers"))
	})
}
