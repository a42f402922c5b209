package session

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewAssignsSessionID(t *testing.T) {
	t.Parallel()

	a := New()
	b := New()
	if _, err := uuid.Parse(a.ID()); err != nil {
		t.Fatalf("ID() = %q, not a uuid: %v", a.ID(), err)
	}
	if a.ID() == b.ID() {
		t.Fatalf("two sessions share id %q", a.ID())
	}
	if a.StartedAt().IsZero() {
		t.Fatal("StartedAt() is zero")
	}
}

func TestCursorDefaultsToZero(t *testing.T) {
	t.Parallel()

	s := New()
	if got := s.Cursor("promo"); got != 0 {
		t.Fatalf("Cursor(promo) = %d, want 0", got)
	}
	s.SetCursor("promo", 2)
	if got := s.Cursor("promo"); got != 2 {
		t.Fatalf("Cursor(promo) = %d, want 2", got)
	}
	if got := s.Cursor("other"); got != 0 {
		t.Fatalf("Cursor(other) = %d, want 0", got)
	}
}
