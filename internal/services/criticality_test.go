package services

import (
	"campus-route-service/internal/domain"
	"testing"
	"time"
)

func TestIsCriticalWindowBoundaries(t *testing.T) {
	class := domain.Class{Start: ct(14, 0), End: ct(15, 0), Size: 40}

	day := func(h, m, s int) time.Time {
		return time.Date(2026, 3, 9, h, m, s, 0, time.UTC)
	}

	cases := []struct {
		name string
		ref  time.Time
		want bool
	}{
		{"starts in exactly 15 minutes", day(13, 45, 0), true},
		{"starts in 15 minutes and 1 second", day(13, 44, 59), false},
		{"starts right now", day(14, 0, 0), true},
		{"started 1 second ago", day(14, 0, 1), true},
		{"started exactly 15 minutes ago", day(14, 15, 0), true},
		{"started 15 minutes and 1 second ago", day(14, 15, 1), false},
		{"mid-class, nowhere near start or end", day(14, 30, 0), false},
		{"ends in exactly 15 minutes", day(14, 45, 0), true},
		{"ends right now", day(15, 0, 0), true},
		{"ended 1 second ago", day(15, 0, 1), false},
		{"long before start", day(9, 0, 0), false},
	}

	for _, c := range cases {
		if got := IsCritical(class, c.ref, DefaultCriticalWindow); got != c.want {
			t.Errorf("%s: IsCritical = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestIsCriticalMissingTimes(t *testing.T) {
	ref := time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)

	noStart := domain.Class{End: ct(15, 0)}
	noEnd := domain.Class{Start: ct(14, 0)}

	if IsCritical(noStart, ref, DefaultCriticalWindow) {
		t.Error("class without start time must not be critical")
	}
	if IsCritical(noEnd, ref, DefaultCriticalWindow) {
		t.Error("class without end time must not be critical")
	}
}

func TestCriticalClassesPreservesOrder(t *testing.T) {
	ref := time.Date(2026, 3, 9, 13, 50, 0, 0, time.UTC)

	classes := []domain.Class{
		{ClassID: "a", Start: ct(14, 0), End: ct(15, 0)},
		{ClassID: "b", Start: ct(9, 0), End: ct(10, 0)},
		{ClassID: "c", Start: ct(13, 0), End: ct(14, 0)},
	}

	got := CriticalClasses(classes, ref, DefaultCriticalWindow)
	if len(got) != 2 {
		t.Fatalf("expected 2 critical classes, got %d", len(got))
	}
	if got[0].ClassID != "a" || got[1].ClassID != "c" {
		t.Fatalf("order = [%s %s], want [a c]", got[0].ClassID, got[1].ClassID)
	}
}
