package life

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is a outer-totalistic birth/survival rule. Bit n of Birth (Survive)
// is set when a dead (live) cell with n live neighbours is alive next tick.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is the B3/S23 rule.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// ParseRule parses rules in "B3/S23" notation. Letters are case-insensitive
// and the two halves may appear in either order.
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("life: rule %q: expected B.../S...", s)
	}
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return r, fmt.Errorf("life: rule %q: empty half", s)
		}
		var mask *uint16
		switch part[0] {
		case 'B', 'b':
			mask, seenB = &r.Birth, true
		case 'S', 's':
			mask, seenS = &r.Survive, true
		default:
			return r, fmt.Errorf("life: rule %q: unknown prefix %q", s, part[0])
		}
		for _, ch := range part[1:] {
			if ch < '0' || ch > '8' {
				return r, fmt.Errorf("life: rule %q: invalid neighbour count %q", s, ch)
			}
			*mask |= 1 << uint(ch-'0')
		}
	}
	if !seenB || !seenS {
		return r, fmt.Errorf("life: rule %q: need both B and S halves", s)
	}
	return r, nil
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.Birth&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.Survive&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// Config holds parameters for the Life engine.
type Config struct {
	Width  int
	Height int
	Rule   Rule
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Rule: Conway}
}

// FromMap populates a Config from a string map. Invalid values keep the
// defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	return c
}
