package unitsafe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse converts text of the form "number, whitespace, label" into a
// Quantity. The grammar is:
//
//   - an optional leading run of standard whitespace code points,
//   - a signed floating-point literal or "Infinity"/"-Infinity",
//   - one or more whitespace characters (a run of any length),
//   - a non-empty label running to the end of the input.
//
// The entire trailing substring after the separating whitespace is the lookup
// key, matched as a complete string against the registry - never as a prefix
// scan - so "mi", "ms", "mg", "mm" and "ml" are unambiguous with respect to
// "m" and to each other.
//
// Zero-width spaces and bidirectional control characters are not whitespace:
// they stay inside the numeric token (failing with ErrInvalidNumber) or the
// label (failing with ErrUnknownUnit) instead of acting as separators.
//
// Parse is referentially transparent: identical input yields independent,
// equal-by-value quantities, with no caching and no registry mutation.
func Parse(text string) (Quantity, error) {
	rest := strings.TrimLeftFunc(text, unicode.IsSpace)

	// The numeric token runs to the first whitespace character.
	end := len(rest)
	for i, r := range rest {
		if unicode.IsSpace(r) {
			end = i
			break
		}
	}
	v, err := parseNumber(rest[:end])
	if err != nil {
		return Quantity{}, err
	}

	label := strings.TrimLeftFunc(rest[end:], unicode.IsSpace)
	u, err := Lookup(label)
	if err != nil {
		return Quantity{}, err
	}
	return u.New(v), nil
}

// parseNumber converts a strict standalone numeric literal to a float64.
// Overflow saturates to ±Infinity and underflow to zero; both follow
// IEEE-754 semantics and are not errors.
func parseNumber(s string) (float64, error) {
	if !isNumericLiteral(s) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	return v, nil
}

// isNumericLiteral reports whether s is a complete, trimmed floating-point
// literal: optional sign, decimal digits with an optional fraction, an
// optional exponent, or the literal "Infinity" (optionally signed). Only
// ASCII digits are accepted; full-width digit glyphs, hex floats, "NaN",
// underscores and embedded whitespace are all rejected. This gate runs
// before strconv.ParseFloat, which on its own is laxer than the grammar.
func isNumericLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return len(s) == i+len("Infinity")
	}

	start := i
	for i < len(s) && isASCIIDigit(s[i]) {
		i++
	}
	digits := i - start

	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isASCIIDigit(s[i]) {
			i++
		}
		digits += i - start
	}
	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start = i
		for i < len(s) && isASCIIDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}

	return i == len(s)
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
