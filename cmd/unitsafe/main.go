// Command unitsafe is a standalone CLI for unit-safe quantity conversion.
// It wraps the embeddable command tree from the unitsafe package and maps
// library errors to documented exit codes.
package main

import (
	"errors"
	"os"

	unitsafe "github.com/mihailShumilov/unitsafe"
)

// CLI exit codes for standardized error reporting.
const (
	// ExitSuccess indicates the operation completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidArgs indicates invalid command line arguments.
	ExitInvalidArgs = 2

	// ExitUnknownUnit indicates a label absent from the unit registry.
	ExitUnknownUnit = 3

	// ExitInvalidNumber indicates a malformed numeric literal.
	ExitInvalidNumber = 4

	// ExitDimensionMismatch indicates a conversion across incompatible dimensions.
	ExitDimensionMismatch = 5

	// ExitInvalidOperation indicates arithmetic on an affine-offset unit.
	ExitInvalidOperation = 6
)

func main() {
	cmd := unitsafe.NewCommand()
	if err := cmd.Execute(); err != nil {
		os.Exit(exitCodeFromError(err))
	}
}

// exitCodeFromError maps error kinds to exit codes.
func exitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, unitsafe.ErrUnknownUnit):
		return ExitUnknownUnit
	case errors.Is(err, unitsafe.ErrInvalidNumber):
		return ExitInvalidNumber
	case errors.Is(err, unitsafe.ErrDimensionMismatch):
		return ExitDimensionMismatch
	case errors.Is(err, unitsafe.ErrInvalidOperation):
		return ExitInvalidOperation
	default:
		return ExitGeneralError
	}
}
