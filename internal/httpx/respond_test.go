package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estivensal7/Moment-API/internal/common"
)

func TestError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    error
		status int
	}{
		{common.ErrUnauthenticated, http.StatusUnauthorized},
		{common.ErrInvalidToken, http.StatusUnauthorized},
		{common.ErrInvalidCredentials, http.StatusUnauthorized},
		{common.ErrNotFound, http.StatusNotFound},
		{fmt.Errorf("user to follow: %w", common.ErrNotFound), http.StatusNotFound},
		{common.ErrConflict, http.StatusConflict},
		{common.ErrForbidden, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		Error(rec, tt.err)
		if rec.Code != tt.status {
			t.Errorf("Error(%v) status = %d, want %d", tt.err, rec.Code, tt.status)
		}
	}
}

func TestError_ValidationFields(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Error(rec, common.NewValidationError("email", "Email must not be empty."))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Errors["email"] != "Email must not be empty." {
		t.Fatalf("unexpected errors map: %v", body.Errors)
	}
}

func TestError_InternalMessageIsOpaque(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Error(rec, errors.New("mongo: connection refused"))

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["error"] != "internal error" {
		t.Fatalf("internal errors must not leak detail, got %q", body["error"])
	}
}
