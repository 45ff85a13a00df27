package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantAllowed bool
	}{
		{"allowed origin", []string{"https://app.example.com/"}, http.MethodGet, "https://app.example.com", false, http.StatusTeapot, true},
		{"other origin", []string{"https://app.example.com"}, http.MethodGet, "https://evil.example.com", false, http.StatusTeapot, false},
		{"wildcard", []string{"*"}, http.MethodGet, "https://any.example.com", false, http.StatusTeapot, true},
		{"preflight allowed", []string{"https://app.example.com"}, http.MethodOptions, "https://app.example.com", true, http.StatusNoContent, true},
		{"preflight rejected", []string{"https://app.example.com"}, http.MethodOptions, "https://evil.example.com", true, http.StatusNoContent, false},
		{"no origin", []string{"*"}, http.MethodGet, "", false, http.StatusTeapot, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/weddings/latest", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			}
			rr := httptest.NewRecorder()
			CORS(tt.allowed, next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rr.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
			if tt.preflight && tt.wantAllowed {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
			}
		})
	}
}
