package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	cases := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantMethods string
		wantVary    string
	}{
		{
			name:        "configured origin is echoed",
			allowed:     []string{" https://tracker.example.com ", ""},
			method:      http.MethodGet,
			origin:      "https://tracker.example.com",
			wantStatus:  http.StatusOK,
			wantOrigin:  "https://tracker.example.com",
			wantMethods: "GET,POST,PUT,DELETE,OPTIONS",
			wantVary:    "Origin",
		},
		{
			name:        "wildcard preflight",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "https://tracker.example.com",
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "*",
			wantMethods: "GET,POST,PUT,DELETE,OPTIONS",
		},
		{
			name:       "unconfigured origin gets no headers",
			allowed:    []string{"https://allowed.example.com"},
			method:     http.MethodPut,
			origin:     "https://not-allowed.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "same-origin request passes through",
			allowed:    []string{"*"},
			method:     http.MethodOptions,
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(tc.method, "/v1/sessions/abc/league", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tc.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); got != tc.wantMethods {
				t.Fatalf("unexpected Access-Control-Allow-Methods: %q", got)
			}
			if got := rec.Header().Get("Vary"); got != tc.wantVary {
				t.Fatalf("unexpected Vary: %q", got)
			}
		})
	}
}
