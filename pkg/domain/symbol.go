package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Symbol is a single character of the tape alphabet.
type Symbol rune

// String returns the symbol as a one-character string.
func (s Symbol) String() string {
	return string(rune(s))
}

// ParseSymbol converts a one-character string into a Symbol.
func ParseSymbol(raw string) (Symbol, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("%w: %q must be exactly one character", ErrUnknownSymbol, raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return Symbol(r), nil
}

// MarshalText encodes the symbol as a one-character string.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a one-character string.
func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Direction is the head movement applied after a write.
type Direction int8

const (
	Left  Direction = -1
	Stay  Direction = 0
	Right Direction = 1
)

// Offset returns the head displacement for the direction.
func (d Direction) Offset() int {
	return int(d)
}

// String returns the single-letter code used in definition files.
func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "S"
	}
}

// ParseDirection accepts L, R or S (case-insensitive).
func ParseDirection(raw string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	case "S":
		return Stay, nil
	}
	return Stay, fmt.Errorf("%w: %q (expected L, R or S)", ErrInvalidDirection, raw)
}

// MarshalText encodes the direction as L, R or S.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes L, R or S.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
