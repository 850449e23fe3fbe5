// Package unitsafe provides unit-safe physical quantities: numeric values
// tagged with a physical unit, dimension-checked arithmetic, conversion
// between commensurable units, and text formatting/parsing.
//
// The package serves two primary use cases:
//
//  1. Programmatic API via Unit and Quantity - Applications construct
//     quantities from the per-unit factories (Meter, Kilogram, ...) or by
//     parsing text, then combine them with To, Add, Sub, Mul, Div and Equal.
//
//  2. Embeddable CLI via NewCommand - Parent CLI tools can attach a complete
//     "units" subcommand tree to their Cobra root command, providing commands
//     like "mytool units convert", "mytool units list", etc.
//
// # Unit Registry
//
// The registry is compiled-in constant data: 110 unit definitions across
// twelve dimensional families (length, mass, time, temperature, area, volume,
// velocity, force, energy, power, pressure, data size), plus a dimensionless
// scalar. It is built once during package initialization and never mutated
// afterward. Lookup is an exact full-string match on the label; there is no
// prefix matching and no inherited-member fallback, so labels shaped like
// reserved words ("__proto__", "constructor", ...) always fail with
// ErrUnknownUnit.
//
// # Numeric Semantics
//
// Values are IEEE-754 float64 end to end. NaN, ±Infinity, signed zero and
// subnormals pass through factories, arithmetic and conversion unchanged;
// overflow and underflow follow standard double-precision behavior and are
// never reported as errors. Malformed numeric text, by contrast, always fails
// loudly with ErrInvalidNumber - it is never coerced to 0 or NaN.
//
// # Thread Safety
//
// Every operation is a pure function over immutable values. The registry is
// read-only after initialization, and quantities carry no shared mutable
// state, so all functions and methods are safe for unsynchronized concurrent
// use.
package unitsafe
