package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestOK(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.OK(rec, "done", map[string]string{"a": "b"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	body := decode(t, rec)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if body["message"] != "done" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestList_EmptySliceNotNull(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.List[int](rec, nil)

	body := decode(t, rec)
	data, ok := body["data"].([]any)
	if !ok {
		t.Fatalf("data should be an array, got %T", body["data"])
	}
	if len(data) != 0 {
		t.Errorf("len(data) = %d", len(data))
	}
	if body["count"] != float64(0) {
		t.Errorf("count = %v", body["count"])
	}
}

func TestError_MapsKinds(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	rec := httptest.NewRecorder()
	respond.Error(rec, req, zap.NewNop(), apperr.Validation("Validation failed",
		apperr.FieldError{Field: "name", Message: "name is required"}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decode(t, rec)
	if body["success"] != false {
		t.Errorf("success = %v", body["success"])
	}
	errs, _ := body["errors"].([]any)
	if len(errs) != 1 {
		t.Errorf("errors = %v", body["errors"])
	}

	rec = httptest.NewRecorder()
	respond.Error(rec, req, zap.NewNop(), fmt.Errorf("wrapped: %w", apperr.NotFound("Notice not found")))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
	if decode(t, rec)["message"] != "Notice not found" {
		t.Errorf("unexpected message")
	}
}

func TestError_HidesInternalCause(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	respond.Error(rec, req, zap.NewNop(), errors.New("dial tcp 10.0.0.1:27017: refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if msg := decode(t, rec)["message"]; msg != "Server error" {
		t.Errorf("message = %v, want generic", msg)
	}
}

func TestNotFoundOr(t *testing.T) {
	err := respond.NotFoundOr(mongo.ErrNoDocuments, "Business not found")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
	other := errors.New("other")
	if respond.NotFoundOr(other, "x") != other {
		t.Error("non-ErrNoDocuments should pass through")
	}
}
