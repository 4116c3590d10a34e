package logging

import "testing"

func TestNewByEnvironment(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		logger, err := New(env, "test")
		if err != nil {
			t.Fatalf("New(%q): %v", env, err)
		}
		if logger == nil {
			t.Fatalf("New(%q) returned nil logger", env)
		}
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected nop logger")
	}
}
