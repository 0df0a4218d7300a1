package controller_test

import (
	"bus2ride/pkg/controller"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPprof(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(controller.PprofPrefix, controller.Pprof())

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{http.MethodGet, "/debug/pprof/", http.StatusOK, "goroutine"},
		{http.MethodGet, "/debug/pprof/cmdline", http.StatusOK, ""},
		{http.MethodGet, "/debug/pprof/goroutine?debug=1", http.StatusOK, "goroutine profile"},
		{http.MethodGet, "/debug/pprof/symbol", http.StatusOK, "num_symbols"},
		{http.MethodPost, "/debug/pprof/symbol", http.StatusOK, "num_symbols"},
		{http.MethodGet, "/debug/pprof/missing", http.StatusNotFound, ""},
		{http.MethodDelete, "/debug/pprof/cmdline", http.StatusMethodNotAllowed, ""},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.status {
			t.Fatalf("%s %s: expected status %d, got %d", tc.method, tc.path, tc.status, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tc.body) {
			t.Errorf("%s %s: expected body to contain %q", tc.method, tc.path, tc.body)
		}
	}
}
