package errors_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	errorsfeature "github.com/dalemusser/coophub/internal/app/features/errors"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func TestRouterFallbacks(t *testing.T) {
	h := errorsfeature.NewHandler(zap.NewNop())
	r := chi.NewRouter()
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
	r.Get("/api/things", func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		method, path string
		status       int
		message      string
	}{
		{"GET", "/api/nope", http.StatusNotFound, "Route /api/nope not found"},
		{"DELETE", "/api/things", http.StatusMethodNotAllowed, "Method DELETE not allowed on /api/things"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Code != tt.status {
			t.Errorf("%s %s: status %d, want %d", tt.method, tt.path, rec.Code, tt.status)
		}
		var env struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.Success || env.Message != tt.message {
			t.Errorf("%s %s: envelope %+v", tt.method, tt.path, env)
		}
	}
}
