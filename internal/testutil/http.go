package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/coophub/internal/app/system/auth"
	"github.com/dalemusser/coophub/internal/domain/models"
)

// WithUser attaches u to the request context, bypassing token checks.
func WithUser(r *http.Request, u models.User) *http.Request {
	return r.WithContext(auth.WithUser(r.Context(), &u))
}

// NewJSONRequest builds a request whose body is body encoded as JSON. A
// string body is sent verbatim.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// Envelope mirrors the API response body with data left raw.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t testing.TB, expected int) {
	t.Helper()
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d (body: %s)", r.Code, expected, r.Body.String())
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t testing.TB, expected string) {
	t.Helper()
	if !strings.Contains(r.Body.String(), expected) {
		t.Errorf("response body does not contain %q: %s", expected, r.Body.String())
	}
}

// Envelope decodes the body. When v is non-nil, data is decoded into it.
func (r *ResponseRecorder) Envelope(t testing.TB, v any) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(r.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, r.Body.String())
	}
	if v != nil {
		if err := json.Unmarshal(env.Data, v); err != nil {
			t.Fatalf("decode data: %v (%s)", err, string(env.Data))
		}
	}
	return env
}

// NewTokens returns a token issuer for tests.
func NewTokens(t testing.TB) *auth.Tokens {
	t.Helper()
	tokens, err := auth.NewTokens("test-secret", time.Hour, "coophub-test")
	if err != nil {
		t.Fatalf("NewTokens: %v", err)
	}
	return tokens
}

// Bearer sets an Authorization header carrying a token for u.
func Bearer(t testing.TB, r *http.Request, tokens *auth.Tokens, u models.User) *http.Request {
	t.Helper()
	tok, err := tokens.Issue(u.ID.Hex())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	r.Header.Set("Authorization", "Bearer "+tok)
	return r
}
