package errors

import (
	"fmt"
	"testing"
)

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should be nil")
	}

	err := Wrap(ErrSpawn, "create-vite")
	if err.Error() != "create-vite: could not start scaffolding command" {
		t.Errorf("Wrap() = %q", err.Error())
	}
	if !Is(err, ErrSpawn) {
		t.Error("wrapped error should match its sentinel")
	}
}

func TestWrapf(t *testing.T) {
	if Wrapf(nil, "GET %s", "x") != nil {
		t.Error("Wrapf(nil) should be nil")
	}

	err := Wrapf(ErrUnexpectedStatus, "GET %s returned %d", "https://example.com", 404)
	want := "GET https://example.com returned 404: unexpected response status"
	if err.Error() != want {
		t.Errorf("Wrapf() = %q, want %q", err.Error(), want)
	}
	if !Is(err, ErrUnexpectedStatus) {
		t.Error("wrapped error should match its sentinel")
	}
}

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAs(t *testing.T) {
	err := Wrap(&codeError{code: 3}, "scaffold")

	var target *codeError
	if !As(err, &target) {
		t.Fatal("As() should find the wrapped error")
	}
	if target.code != 3 {
		t.Errorf("code = %d, want 3", target.code)
	}
}

func TestJoin(t *testing.T) {
	if Join(nil, nil) != nil {
		t.Error("Join of nils should be nil")
	}
	err := Join(ErrMissingRequired, nil, ErrInvalidConfig)
	if !Is(err, ErrMissingRequired) || !Is(err, ErrInvalidConfig) {
		t.Errorf("Join() lost an error: %v", err)
	}
}
