package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{UserErrors: []UserError{
		{Field: []string{"lines", "0", "merchandiseId"}, Message: "invalid variant"},
		{Message: "cart is locked"},
	}}
	want := "validation failed: lines.0.merchandiseId: invalid variant; cart is locked"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if (&ValidationError{}).Error() != "validation failed" {
		t.Fatalf("unexpected empty message")
	}
}

func TestValidationErrorUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("add line: %w", &ValidationError{UserErrors: []UserError{{Message: "bad"}}})
	var vErr *ValidationError
	if !errors.As(wrapped, &vErr) {
		t.Fatalf("expected ValidationError in chain")
	}
	if len(vErr.UserErrors) != 1 {
		t.Fatalf("unexpected user errors %+v", vErr.UserErrors)
	}
}
