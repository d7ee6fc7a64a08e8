// Package format renders document values as display text. Rounding to
// two decimals happens here and only here; the model itself carries
// unrounded numbers.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

// DefaultNumberTemplate is the pattern seeded invoice numbers follow.
const DefaultNumberTemplate = "INV-{YYYY}-{SEQ3}"

// Money renders a monetary value with its currency symbol, e.g. "$3300.00".
func Money(symbol string, v float64) string {
	return fmt.Sprintf("%s%.2f", symbol, v)
}

// Quantity renders a quantity without trailing zeros.
func Quantity(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

// Number formats a human-readable invoice number from a template,
// issue time, and monotonic sequence.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
func Number(template string, issuedAt time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("invoice number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid invoice sequence: %d", seq)
	}

	out := template

	// Date tokens
	out = strings.ReplaceAll(out, "{YYYY}", issuedAt.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", issuedAt.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", issuedAt.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", issuedAt.Format("02"))

	// Simple sequence
	out = strings.ReplaceAll(out, "{SEQ}", strconv.FormatInt(seq, 10))

	// Padded sequence
	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		if len(match) != 2 {
			return m
		}
		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.Contains(out, "{") || strings.Contains(out, "}") {
		return "", fmt.Errorf("unresolved token in invoice number format: %s", out)
	}

	return out, nil
}
