package domainerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestHasCode(t *testing.T) {
	t.Run("matches outer code", func(t *testing.T) {
		err := New(CodeNotFound, "record missing")
		if !HasCode(err, CodeNotFound) {
			t.Fatalf("expected CodeNotFound")
		}
		if HasCode(err, CodeConflict) {
			t.Fatalf("did not expect CodeConflict")
		}
	})

	t.Run("matches nested code through wrapping", func(t *testing.T) {
		inner := New(CodeValidation, "age below minimum")
		outer := Wrap(inner, CodeInternal, "import row rejected")
		if !HasCode(outer, CodeValidation) {
			t.Fatalf("expected nested CodeValidation to be found")
		}
		if !HasCode(outer, CodeInternal) {
			t.Fatalf("expected outer CodeInternal to be found")
		}
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		if HasCode(errors.New("boom"), CodeInternal) {
			t.Fatalf("plain error must not match any code")
		}
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "store unavailable")
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
	if Wrap(nil, CodeInternal, "ignored") != nil {
		t.Fatalf("wrapping nil must return nil")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(CodeBadRequest, "bad page")); got != CodeBadRequest {
		t.Fatalf("expected CodeBadRequest, got %s", got)
	}
	if got := CodeOf(fmt.Errorf("wrapped: %w", New(CodeConflict, "dup"))); got != CodeConflict {
		t.Fatalf("expected CodeConflict through fmt wrapping, got %s", got)
	}
	if got := CodeOf(errors.New("plain")); got != CodeInternal {
		t.Fatalf("uncoded errors default to CodeInternal, got %s", got)
	}
}
