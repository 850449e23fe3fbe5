package unitsafe

import "errors"

// Sentinel errors for quantity operations.
// Use errors.Is() to check for specific error conditions.
var (
	// ErrUnknownUnit indicates the label does not match any registered unit.
	// Returned by Lookup, Parse and the CLI on an unrecognized label,
	// including labels shaped like reserved words ("__proto__", "toString").
	ErrUnknownUnit = errors.New("unitsafe: unknown unit")

	// ErrInvalidNumber indicates a malformed numeric literal.
	// Returned by Unit.FromString, ScalarFromString and Parse when the
	// numeric segment is not a complete, trimmed floating-point literal.
	ErrInvalidNumber = errors.New("unitsafe: invalid numeric input")

	// ErrDimensionMismatch indicates an operation across incompatible
	// dimensions. Returned by To, Add and Sub when the two dimension
	// vectors are not equal.
	ErrDimensionMismatch = errors.New("unitsafe: dimension mismatch")

	// ErrInvalidOperation indicates multiplication or division involving an
	// affine-offset unit (Celsius, Fahrenheit). Only To, Add and Sub are
	// meaningful for affine units.
	ErrInvalidOperation = errors.New("unitsafe: invalid operation on affine unit")
)
