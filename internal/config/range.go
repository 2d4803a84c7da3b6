package config

import (
	"fmt"
	"strconv"
	"strings"
)

// PartialRange is an optionally-bounded inclusive integer range, parsed
// from "min..max", "min..", "..max", or "..".
type PartialRange struct {
	Min, Max *int
}

// Clamp pins value into [Min, Max], leaving it unchanged on the side(s)
// left unbounded.
func (r PartialRange) Clamp(value int) int {
	if r.Min != nil && value < *r.Min {
		value = *r.Min
	}
	if r.Max != nil && value > *r.Max {
		value = *r.Max
	}
	return value
}

func (r PartialRange) String() string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%d..%d", *r.Min, *r.Max)
	case r.Min != nil:
		return fmt.Sprintf("%d..", *r.Min)
	case r.Max != nil:
		return fmt.Sprintf("..%d", *r.Max)
	default:
		return ".."
	}
}

// ParsePartialRange parses "min..max"/"min.."/"..max"/"..".
func ParsePartialRange(s string) (PartialRange, error) {
	dot := strings.Index(s, "..")
	if dot < 0 {
		return PartialRange{}, fmt.Errorf("config: range %q: expected \"..\"", s)
	}
	minStr, maxStr := s[:dot], s[dot+2:]
	if strings.Contains(maxStr, "..") {
		return PartialRange{}, fmt.Errorf("config: range %q: too many \"..\"", s)
	}

	var r PartialRange
	if minStr != "" {
		v, err := strconv.Atoi(minStr)
		if err != nil {
			return PartialRange{}, fmt.Errorf("config: range %q: bad lower bound: %w", s, err)
		}
		r.Min = &v
	}
	if maxStr != "" {
		v, err := strconv.Atoi(maxStr)
		if err != nil {
			return PartialRange{}, fmt.Errorf("config: range %q: bad upper bound: %w", s, err)
		}
		r.Max = &v
	}
	return r, nil
}
