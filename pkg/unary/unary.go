// Package unary converts between integers and unary strings and extracts
// numeric terms from a machine's final tape.
package unary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Digit is the conventional unary digit.
const Digit = '1'

// Encode returns n repetitions of the unary digit. Negative n encodes as "".
func Encode(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(string(Digit), n)
}

// Decode counts the unary digits in s.
func Decode(s string) int {
	return strings.Count(s, string(Digit))
}

// Validate checks that input only contains the unary digit. Empty is valid (zero).
func Validate(input string) error {
	for i, r := range input {
		if r != Digit {
			return fmt.Errorf("%w: character %q at offset %d is not %q", domain.ErrInvalidInput, r, i, Digit)
		}
	}
	return nil
}

// MaxDecimal is the largest decimal n that Normalize accepts. The step count
// grows roughly as 2.6^n, so no run above it can finish.
const MaxDecimal = 1000

// Normalize turns a command-line argument into unary. An argument made only
// of decimal digits is always read as a decimal n ("11" is eleven, not two)
// and must not exceed MaxDecimal. Anything else is returned unchanged for
// Validate to judge.
func Normalize(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" || strings.TrimLeft(arg, "0123456789") != "" {
		return arg, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n > MaxDecimal {
		return "", fmt.Errorf("%w: n=%s is above the supported maximum %d", domain.ErrInvalidInput, arg, MaxDecimal)
	}
	return Encode(n), nil
}
