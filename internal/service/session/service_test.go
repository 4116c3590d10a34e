package session

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewRejectsShortSecret(t *testing.T) {
	if _, err := New("short"); err == nil {
		t.Fatalf("expected secret length error")
	}
}

func TestIssueAndDecode(t *testing.T) {
	svc, err := New(testSecret)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	id, token := svc.Issue()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("session id is not a uuid: %q", id)
	}
	got, err := svc.Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != id {
		t.Fatalf("expected %q, got %q", id, got)
	}

	other, _ := svc.Issue()
	if other == id {
		t.Fatalf("expected unique session ids")
	}
}

func TestDecodeRejectsTampering(t *testing.T) {
	svc, _ := New(testSecret)
	otherSvc, _ := New("fedcba9876543210fedcba9876543210")
	id, token := svc.Issue()
	_, foreign := otherSvc.Issue()

	cases := map[string]string{
		"empty":         "",
		"no signature":  id,
		"blank sig":     id + ".",
		"wrong sig":     id + ".AAAA",
		"extra segment": token + ".x",
		"not uuid":      svc.Encode("cart-123"),
		"other secret":  foreign,
	}
	for name, value := range cases {
		if _, err := svc.Decode(value); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
