package commonerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	withCause := ErrSubmissionFailed.WithCause(errors.New("timeout"))
	wrapped := fmt.Errorf("submit: %w", withCause)

	if !errors.Is(wrapped, ErrSubmissionFailed) {
		t.Error("expected wrapped clone to match original")
	}
	if errors.Is(wrapped, ErrServerConfiguration) {
		t.Error("different codes must not match")
	}
	if withCause.Error() != "Failed to submit form. Please try again later.: timeout" {
		t.Errorf("unexpected message %q", withCause.Error())
	}
	if ErrSubmissionFailed.TraceID() != "" {
		t.Error("WithCause must not mutate the shared error")
	}
}

func TestAsDomainError(t *testing.T) {
	de, ok := AsDomainError(fmt.Errorf("x: %w", ErrInquiryNotFound.WithTraceID("t1")))
	if !ok {
		t.Fatal("expected domain error")
	}
	if de.HTTPStatus() != http.StatusNotFound || de.TraceID() != "t1" || de.Category() != CategoryNotFound {
		t.Errorf("unexpected domain error %v", de)
	}

	if _, ok := AsDomainError(errors.New("plain")); ok {
		t.Error("plain error should not be a domain error")
	}
	if IsDomainError(nil) {
		t.Error("nil should not be a domain error")
	}
}
