package domain

import "errors"

// ErrUnknownState is returned when a definition references an undeclared state.
var ErrUnknownState = errors.New("unknown state")

// ErrUnknownSymbol is returned when a symbol is malformed or outside the tape alphabet.
var ErrUnknownSymbol = errors.New("unknown symbol")

// ErrInvalidDirection is returned when a head move is not one of L, R or S.
var ErrInvalidDirection = errors.New("invalid direction")

// ErrInvalidInput is returned when an input string is not valid unary notation.
var ErrInvalidInput = errors.New("invalid input")

// ErrReportNotFound is returned when a report ID cannot be found in the store.
var ErrReportNotFound = errors.New("report not found")
