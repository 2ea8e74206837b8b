package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestProblemDetails_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	pd := &ProblemDetails{
		Status: http.StatusNotFound,
		Title:  "Not Found",
		Detail: "place not found",
	}

	errMsg := pd.Error()

	if !strings.Contains(errMsg, "404") {
		t.Errorf("error message should contain status code, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "Not Found") {
		t.Errorf("error message should contain title, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "place not found") {
		t.Errorf("error message should contain detail, got: %s", errMsg)
	}
}

// ============================================================================
// WriteJSON Tests
// ============================================================================

func TestProblemDetails_WriteJSON_SetsContentTypeAndStatus(t *testing.T) {
	t.Parallel()

	pd := NewUnauthorizedError("credentials seem to be wrong")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	if got := rr.Header().Get("Content-Type"); got != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", got)
	}
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}

	var decoded ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded.Detail != "credentials seem to be wrong" {
		t.Errorf("unexpected detail %q", decoded.Detail)
	}
	if decoded.Code != ErrCodeUnauthorized {
		t.Errorf("expected code %d, got %d", ErrCodeUnauthorized, decoded.Code)
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestConstructors_StatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pd     *ProblemDetails
		status int
	}{
		{"unauthorized", NewUnauthorizedError("x"), http.StatusUnauthorized},
		{"not found", NewNotFoundError("x"), http.StatusNotFound},
		{"validation", NewValidationError(nil), http.StatusUnprocessableEntity},
		{"conflict", NewConflictError("x"), http.StatusUnprocessableEntity},
		{"internal", NewInternalError(""), http.StatusInternalServerError},
		{"bad request", NewBadRequestError("x"), http.StatusBadRequest},
		{"method", NewMethodNotAllowedError("PUT"), http.StatusMethodNotAllowed},
		{"rate limit", NewRateLimitError(3), http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.pd.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, tt.pd.Status)
			}
			if !strings.HasPrefix(tt.pd.Type, errorTypeBase) {
				t.Errorf("unexpected type %q", tt.pd.Type)
			}
		})
	}
}

func TestNewInternalError_DefaultDetail(t *testing.T) {
	t.Parallel()

	pd := NewInternalError("")
	if pd.Detail != "An unexpected error occurred" {
		t.Errorf("unexpected default detail %q", pd.Detail)
	}
}

func TestNewValidationError_SummarizesFieldErrors(t *testing.T) {
	t.Parallel()

	pd := NewValidationError([]FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "address", Message: "address is required"},
	})

	if pd.Detail != "title: title is required (and 1 more errors)" {
		t.Errorf("unexpected detail %q", pd.Detail)
	}
	if len(pd.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(pd.Errors))
	}
}
