package model

import (
	"strconv"
	"strings"
)

// ParsedFloat is the result of defensively parsing a raw numeric field.
// Defaulted distinguishes "the data said 0" from "the data was garbage and
// we fell back", which the clean-vs-degraded tests assert on.
type ParsedFloat struct {
	Value     float64
	Defaulted bool
	Reason    string
}

// ParseFloatField parses a raw string field, falling back to the given
// default instead of failing. A bad field never aborts its record.
func ParseFloatField(raw string, fallback float64) ParsedFloat {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ParsedFloat{Value: fallback, Defaulted: true, Reason: "empty"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ParsedFloat{Value: fallback, Defaulted: true, Reason: "not a number: " + s}
	}
	return ParsedFloat{Value: v}
}
