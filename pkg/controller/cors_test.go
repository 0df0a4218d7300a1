package controller_test

import (
	"bus2ride/pkg/controller"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		status      int
		called      bool
		allowOrigin string
		credentials string
	}{
		{"preflight any origin", nil, http.MethodOptions, "https://blog.example", http.StatusNoContent, false, "*", ""},
		{"get any origin", nil, http.MethodGet, "https://blog.example", http.StatusTeapot, true, "*", ""},
		{"listed origin", []string{"https://bus2ride.com"}, http.MethodPost, "https://bus2ride.com", http.StatusTeapot, true, "https://bus2ride.com", "true"},
		{"unlisted origin", []string{"https://bus2ride.com"}, http.MethodGet, "https://evil.example", http.StatusTeapot, true, "", ""},
		{"unlisted preflight", []string{"https://bus2ride.com"}, http.MethodOptions, "https://evil.example", http.StatusNoContent, false, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			h := controller.WithCORS(tc.origins, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			}))

			req := httptest.NewRequest(tc.method, "/v1/leads", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rec.Code)
			}
			if called != tc.called {
				t.Fatalf("expected next called=%v, got %v", tc.called, called)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.allowOrigin {
				t.Errorf("expected allow origin %q, got %q", tc.allowOrigin, got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != tc.credentials {
				t.Errorf("expected allow credentials %q, got %q", tc.credentials, got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Headers"); !strings.Contains(got, "Authorization") {
				t.Errorf("expected Authorization in allow headers, got %q", got)
			}
			if got := rec.Header().Get("Access-Control-Expose-Headers"); got != controller.RequestIDHeader {
				t.Errorf("expected expose headers %q, got %q", controller.RequestIDHeader, got)
			}
		})
	}
}
