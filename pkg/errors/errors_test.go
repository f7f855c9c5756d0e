package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "resource not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "resource not found" {
		t.Errorf("expected message 'resource not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("no such device")
	ctx := map[string]any{
		"field":     "mac",
		"interface": "lo",
	}

	err := WrapWithContext(ErrCodeLookupFailed, "interface lookup failed", cause, ctx)

	if err.Code != ErrCodeLookupFailed {
		t.Errorf("expected code %s, got %s", ErrCodeLookupFailed, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["interface"] != "lo" {
		t.Errorf("expected interface to be lo")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
		{
			name:     "lookup failure",
			err:      NewWithContext(ErrCodeLookupFailed, "hostname unavailable", map[string]any{"field": "hostname"}),
			expected: "[LOOKUP_FAILED] hostname unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	base := New(ErrCodeLookupFailed, "kernel version unavailable")
	wrapped := fmt.Errorf("collect system: %w", base)

	code, ok := CodeOf(wrapped)
	if !ok {
		t.Fatal("expected a code in the chain")
	}
	if code != ErrCodeLookupFailed {
		t.Errorf("expected %s, got %s", ErrCodeLookupFailed, code)
	}
	if !HasCode(wrapped, ErrCodeLookupFailed) {
		t.Error("HasCode should match wrapped structured error")
	}
	if HasCode(wrapped, ErrCodeTimeout) {
		t.Error("HasCode should not match a different code")
	}

	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Error("plain errors carry no code")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUnavailable,
		ErrCodeLookupFailed,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
