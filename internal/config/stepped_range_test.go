package config

import "testing"

func TestParseSteppedRangeWithStep(t *testing.T) {
	r, err := ParseSteppedRange("80..200:8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Min == nil || *r.Min != 80 || r.Max == nil || *r.Max != 200 {
		t.Errorf("expected [80,200], got %v", r.PartialRange)
	}
	if r.Step == nil || *r.Step != 8 {
		t.Errorf("expected step 8, got %v", r.Step)
	}
	if got := r.String(); got != "80..200:8" {
		t.Errorf("expected round-trip string, got %q", got)
	}
}

func TestParseSteppedRangeWithoutStep(t *testing.T) {
	r, err := ParseSteppedRange("10..50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Step != nil {
		t.Errorf("expected no step, got %v", r.Step)
	}
}

func TestSteppedRangeFitSnapsUpThenClamps(t *testing.T) {
	r, err := ParseSteppedRange("80..200:8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.Fit(81); got != 88 {
		t.Errorf("expected 81 snapped up to 88, got %d", got)
	}
	if got := r.Fit(5); got != 80 {
		t.Errorf("expected snap-then-clamp to the minimum 80, got %d", got)
	}
	if got := r.Fit(500); got != 200 {
		t.Errorf("expected clamp to the maximum 200, got %d", got)
	}
	if got := r.Fit(80); got != 80 {
		t.Errorf("expected an already-aligned value unchanged, got %d", got)
	}
}
