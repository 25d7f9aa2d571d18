package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	simple := NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	body := simple.ToHTTPError()
	if body.Code != "BUDGET_NOT_FOUND" || body.Message != "Budget not found" || body.Details != "" {
		t.Fatalf("unexpected body: %+v", body)
	}

	cause := errors.New("connection reset")
	wrapped := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	body = wrapped.ToHTTPError()
	if body.Details != "connection reset" {
		t.Fatalf("expected cause in details, got %+v", body)
	}
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped error to unwrap to cause")
	}
	if wrapped.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected status %d", wrapped.HTTPStatus)
	}
}
