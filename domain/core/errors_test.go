package core

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDomainError(t *testing.T) {
	err := NewDomainError("auc", 1.5, "0 < auc < 1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrDomain) {
		t.Error("expected error to wrap ErrDomain")
	}
	if !IsDomainError(err) {
		t.Error("expected IsDomainError to report true")
	}

	msg := err.Error()
	for _, want := range []string{"auc", "1.5", "0 < auc < 1"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestIsDomainError_Unrelated(t *testing.T) {
	if IsDomainError(errors.New("boom")) {
		t.Error("unrelated error should not be a domain error")
	}
	if IsDomainError(nil) {
		t.Error("nil should not be a domain error")
	}
}
