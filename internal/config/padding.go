package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePadding parses "uniform", "v,h", or "t,b,l,r" into a Padding.
func ParsePadding(s string) (Padding, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Padding{}, fmt.Errorf("config: padding %q: %w", s, err)
		}
		vals[i] = v
	}

	switch len(vals) {
	case 1:
		return Uniform(vals[0]), nil
	case 2:
		return Padding{Top: vals[0], Bottom: vals[0], Left: vals[1], Right: vals[1]}, nil
	case 4:
		return Padding{Top: vals[0], Bottom: vals[1], Left: vals[2], Right: vals[3]}, nil
	default:
		return Padding{}, fmt.Errorf("config: padding %q: expected 1, 2, or 4 comma-separated values", s)
	}
}
