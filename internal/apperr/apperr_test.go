package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("missing field"), KindValidation},
		{"not found", NotFound("character", "character %q not found", "Ghost"), KindNotFound},
		{"consistency", Consistency("weapon not in loadout"), KindConsistency},
		{"internal", Internal(errors.New("disk io"), "query failed"), KindInternal},
		{"plain error", errors.New("boom"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("recording match: %w", NotFound("loadout", "loadout %q not found", "Recon"))

	if got := KindOf(err); got != KindNotFound {
		t.Errorf("KindOf(wrapped) = %v, want %v", got, KindNotFound)
	}
	if got := EntityOf(err); got != "loadout" {
		t.Errorf("EntityOf(wrapped) = %q, want %q", got, "loadout")
	}
}

func TestInternalUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause, "query failed")

	if !errors.Is(err, cause) {
		t.Error("Expected Internal to wrap its cause")
	}
	if err.Error() != "query failed" {
		t.Errorf("Expected message 'query failed', got %q", err.Error())
	}
}

func TestEntityOfNonError(t *testing.T) {
	if got := EntityOf(errors.New("boom")); got != "" {
		t.Errorf("EntityOf(plain) = %q, want empty", got)
	}
}
