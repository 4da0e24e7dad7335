package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{Resource: "source", ID: "lemonde"}

	expected := "source not found: lemonde"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "url", Message: "must be an absolute http(s) URL"}

	expected := "validation error on field 'url': must be an absolute http(s) URL"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Error(t *testing.T) {
	err := &ExternalAPIError{StatusCode: 503, Message: "service unavailable", API: "example.com"}

	expected := "external API error from example.com: 503 - service unavailable"
	if err.Error() != expected {
		t.Errorf("ExternalAPIError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestExternalAPIError_Unwrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ExternalAPIError{StatusCode: 502, Message: "invalid feed", API: "example.com", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("ExternalAPIError should unwrap to its cause")
	}
}

func TestIsHelpers(t *testing.T) {
	notFound := &NotFoundError{Resource: "source", ID: "x"}
	validation := &ValidationError{Field: "url", Message: "empty"}
	external := &ExternalAPIError{StatusCode: 500, API: "example.com"}
	plain := errors.New("some other error")

	tests := []struct {
		name   string
		check  func(error) bool
		err    error
		expect bool
	}{
		{"IsNotFound true", IsNotFound, notFound, true},
		{"IsNotFound wrapped", IsNotFound, fmt.Errorf("lookup: %w", notFound), true},
		{"IsNotFound false", IsNotFound, plain, false},
		{"IsValidation true", IsValidation, validation, true},
		{"IsValidation false", IsValidation, external, false},
		{"IsExternalAPI true", IsExternalAPI, external, true},
		{"IsExternalAPI wrapped", IsExternalAPI, WrapError(external, "fetch"), true},
		{"IsExternalAPI false", IsExternalAPI, plain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.expect {
				t.Errorf("got %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestAsExternalAPI(t *testing.T) {
	external := &ExternalAPIError{StatusCode: 404, API: "example.com"}

	got, ok := AsExternalAPI(fmt.Errorf("wrapped: %w", external))
	if !ok || got.StatusCode != 404 {
		t.Errorf("AsExternalAPI() = %v, %v", got, ok)
	}

	if _, ok := AsExternalAPI(errors.New("plain")); ok {
		t.Error("AsExternalAPI should not match a plain error")
	}
}

func TestWrapError(t *testing.T) {
	wrapped := WrapError(&NotFoundError{Resource: "source", ID: "abc"}, "failed to fetch source")

	expected := "failed to fetch source: source not found: abc"
	if wrapped.Error() != expected {
		t.Errorf("WrapError message = %v, want %v", wrapped.Error(), expected)
	}
	if !IsNotFound(wrapped) {
		t.Error("wrapped error should still be identifiable as NotFoundError")
	}

	if WrapError(nil, "nothing") != nil {
		t.Error("WrapError should return nil when wrapping nil error")
	}
}
