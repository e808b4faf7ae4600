// Package money converts free-form decimal amount strings into integer
// minor-currency units (kopeks). All arithmetic is exact; floats never
// enter the pipeline.
package money

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Parse errors are display strings: callers render them directly in
// form validation UI instead of treating them as system faults.
var (
	// ErrInvalidFormat reports input that is not a decimal amount.
	ErrInvalidFormat = errors.New("Invalid amount format")
	// ErrTooManyDecimals reports a fractional part finer than kopeks.
	ErrTooManyDecimals = errors.New("Amount must have at most 2 decimal places")
)

// amountPattern is the shape of a normalized amount: optional whole
// part, optional single decimal point, optional fraction.
var amountPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

var hundred = decimal.NewFromInt(100)

// maxKopeks is the largest kopek magnitude an int64 can carry.
var maxKopeks = decimal.NewFromInt(math.MaxInt64)

// ParseAmount converts a user-typed amount into kopeks.
//
// Accepted input is tolerant of locale habits: whitespace and
// underscores are stripped as grouping separators, and both `,` and
// `.` may appear as either the decimal or the thousands separator.
// When both appear, the rightmost one is the decimal separator. When
// only one appears it is normally the decimal separator, with one
// heuristic exception: exactly three digits after it with a purely
// numeric head reads as a thousands separator, so "12.345" parses as
// 12345 rubles rather than 12.345. See the package tests for the
// pinned cases; this ambiguity is intentional and must not change
// without product sign-off.
//
// Empty or whitespace-only input parses as zero.
func ParseAmount(input string) (int64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, nil
	}

	sign := int64(1)
	switch trimmed[0] {
	case '+':
		trimmed = strings.TrimSpace(trimmed[1:])
	case '-':
		sign = -1
		trimmed = strings.TrimSpace(trimmed[1:])
	}
	if trimmed == "" {
		return 0, ErrInvalidFormat
	}

	normalized := normalizeSeparators(stripGrouping(trimmed))
	if normalized == "" || normalized == "." || !amountPattern.MatchString(normalized) {
		return 0, ErrInvalidFormat
	}
	if idx := strings.IndexByte(normalized, '.'); idx >= 0 && len(normalized)-idx-1 > 2 {
		return 0, ErrTooManyDecimals
	}

	value, errParse := decimal.NewFromString(normalized)
	if errParse != nil {
		return 0, ErrInvalidFormat
	}
	kopeks := value.Mul(hundred)
	if kopeks.GreaterThan(maxKopeks) {
		return 0, ErrInvalidFormat
	}
	return sign * kopeks.IntPart(), nil
}

// ParseKopeks parses an integer kopek value, as typed into wallet
// balance-delta fields. Grouping separators are tolerated the same way
// ParseAmount tolerates them, but no decimal part is accepted: deltas
// are already minor units, so "-19900" stays -19900.
func ParseKopeks(input string) (int64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, nil
	}

	sign := int64(1)
	switch trimmed[0] {
	case '+':
		trimmed = strings.TrimSpace(trimmed[1:])
	case '-':
		sign = -1
		trimmed = strings.TrimSpace(trimmed[1:])
	}

	digits := stripGrouping(trimmed)
	if !isDigits(digits) {
		return 0, ErrInvalidFormat
	}
	value, errParse := strconv.ParseInt(digits, 10, 64)
	if errParse != nil {
		return 0, ErrInvalidFormat
	}
	return sign * value, nil
}

// FormatKopeks renders kopeks in the canonical "123.45" form, the
// shape ParseAmount round-trips losslessly.
func FormatKopeks(kopeks int64) string {
	return decimal.New(kopeks, -2).StringFixed(2)
}

// stripGrouping removes whitespace and underscores anywhere in the
// amount body; both are treated as thousands grouping.
func stripGrouping(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '_' || unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// normalizeSeparators rewrites `,`/`.` usage into a single `.` decimal
// separator, dropping thousands separators.
func normalizeSeparators(s string) string {
	dot := strings.LastIndexByte(s, '.')
	comma := strings.LastIndexByte(s, ',')

	switch {
	case dot >= 0 && comma >= 0:
		// The rightmost separator is the decimal one.
		if dot > comma {
			return strings.ReplaceAll(s, ",", "")
		}
		s = strings.ReplaceAll(s, ".", "")
		return strings.Replace(s, ",", ".", 1)
	case comma >= 0:
		return normalizeSingle(s, comma)
	case dot >= 0:
		return normalizeSingle(s, dot)
	default:
		return s
	}
}

// normalizeSingle handles the single-separator-type case: decimal by
// default, thousands when exactly 3 digits follow a purely numeric
// head ("12.345" -> "12345").
func normalizeSingle(s string, idx int) string {
	head, tail := s[:idx], s[idx+1:]
	if len(tail) == 3 && head != "" && isDigits(head) && isDigits(tail) {
		return head + tail
	}
	if s[idx] == ',' {
		return head + "." + tail
	}
	return s
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
