package config

import (
	"fmt"
	"strconv"
	"strings"
)

// SteppedRange is a PartialRange with an optional step: values are
// snapped up to the nearest multiple of Step before being clamped.
type SteppedRange struct {
	PartialRange
	Step *int
}

// Fit snaps value up to the nearest multiple of Step (if set) then
// clamps it into the range.
func (r SteppedRange) Fit(value int) int {
	if r.Step != nil {
		value = snapUp(value, *r.Step)
	}
	return r.Clamp(value)
}

func (r SteppedRange) String() string {
	s := r.PartialRange.String()
	if r.Step != nil {
		s += fmt.Sprintf(":%d", *r.Step)
	}
	return s
}

// ParseSteppedRange parses "<range>[:step]", e.g. "80..200:8".
func ParseSteppedRange(s string) (SteppedRange, error) {
	rangePart, stepPart := s, ""
	if colon := strings.LastIndex(s, ":"); colon >= 0 {
		rangePart, stepPart = s[:colon], s[colon+1:]
	}

	pr, err := ParsePartialRange(rangePart)
	if err != nil {
		return SteppedRange{}, err
	}

	sr := SteppedRange{PartialRange: pr}
	if stepPart != "" {
		v, err := strconv.Atoi(stepPart)
		if err != nil {
			return SteppedRange{}, fmt.Errorf("config: stepped range %q: bad step: %w", s, err)
		}
		sr.Step = &v
	}
	return sr, nil
}
