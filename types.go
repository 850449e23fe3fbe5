package unitsafe

import (
	"fmt"
	"strings"
)

// Base dimension axes. Each registered unit's dimension is an exponent
// vector over these eight axes. The four axes beyond the mechanical ones
// (current, amount, data, angle) keep electrically-, data- and angle-like
// units from colliding with mechanical composites.
const (
	axisLength = iota
	axisMass
	axisTime
	axisTemperature
	axisCurrent
	axisAmount
	axisData
	axisAngle

	numAxes = 8
)

// Dimension is an exponent vector over the base physical dimension axes.
// Two units are commensurable (convertible) iff their Dimensions are equal.
// The zero Dimension is dimensionless.
type Dimension [numAxes]int

// Dimension vectors for the registered unit families.
var (
	dimLength      = Dimension{axisLength: 1}
	dimMass        = Dimension{axisMass: 1}
	dimTime        = Dimension{axisTime: 1}
	dimTemperature = Dimension{axisTemperature: 1}
	dimArea        = Dimension{axisLength: 2}
	dimVolume      = Dimension{axisLength: 3}
	dimVelocity    = Dimension{axisLength: 1, axisTime: -1}
	dimForce       = Dimension{axisLength: 1, axisMass: 1, axisTime: -2}
	dimEnergy      = Dimension{axisLength: 2, axisMass: 1, axisTime: -2}
	dimPower       = Dimension{axisLength: 2, axisMass: 1, axisTime: -3}
	dimPressure    = Dimension{axisLength: -1, axisMass: 1, axisTime: -2}
	dimData        = Dimension{axisData: 1}
)

// Add returns the element-wise sum of two dimension vectors.
// Used to derive the dimension of a product of quantities.
func (d Dimension) Add(o Dimension) Dimension {
	var out Dimension
	for i := range d {
		out[i] = d[i] + o[i]
	}
	return out
}

// Sub returns the element-wise difference of two dimension vectors.
// Used to derive the dimension of a quotient of quantities.
func (d Dimension) Sub(o Dimension) Dimension {
	var out Dimension
	for i := range d {
		out[i] = d[i] - o[i]
	}
	return out
}

// Equal reports whether two dimension vectors are element-wise equal.
func (d Dimension) Equal(o Dimension) bool {
	return d == o
}

// IsZero reports whether the dimension is dimensionless (all exponents zero).
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// axisNames are the display names for the base axes, in axis order.
var axisNames = [numAxes]string{
	"length", "mass", "time", "temperature", "current", "amount", "data", "angle",
}

// String renders the dimension as exponent terms, e.g. "length*time^-1".
// The zero dimension renders as "dimensionless".
func (d Dimension) String() string {
	var b strings.Builder
	for i, exp := range d {
		if exp == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('*')
		}
		b.WriteString(axisNames[i])
		if exp != 1 {
			fmt.Fprintf(&b, "^%d", exp)
		}
	}
	if b.Len() == 0 {
		return "dimensionless"
	}
	return b.String()
}

// Unit is a single entry of the unit registry: an immutable definition of a
// label, its dimension, and the affine transform to the dimension's
// SI-coherent base unit.
//
// For a value v expressed in this unit, the canonical (base-unit) value is
// v*Scale + Offset. Scale is always positive; Offset is non-zero only for
// the affine temperature scales (Celsius, Fahrenheit).
type Unit struct {
	// Label is the registry key, e.g. "kg", "km/h", "pt-liq".
	Label string

	// Dimension is the exponent vector identifying the physical dimension.
	Dimension Dimension

	// Scale is the multiplicative factor to the base unit. Always > 0.
	Scale float64

	// Offset is the additive offset to the base unit. Zero except for
	// Celsius and Fahrenheit.
	Offset float64

	// family is the human-readable family name ("length", "mass", ...).
	// Used by introspection and the CLI; not part of the conversion math.
	family string
}

// Family returns the unit's family name, e.g. "length" or "data".
// The scalar unit has the empty family.
func (u Unit) Family() string {
	return u.family
}
