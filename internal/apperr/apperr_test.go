package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOfSurvivesWrapping(t *testing.T) {
	base := New(KindInfrastructure, "venue index unreachable")
	wrapped := fmt.Errorf("score routes: %w", base)

	if got := KindOf(wrapped); got != KindInfrastructure {
		t.Fatalf("KindOf = %v, want %v", got, KindInfrastructure)
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Fatalf("KindOf = %v, want %v", got, KindUnknown)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(KindClientInput, nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}
