package unitsafe

import "fmt"

// Quantity is a numeric value tagged with a physical unit. It is
// self-describing: the unit's label, scale, offset and dimension are copied
// by value at construction, so arithmetic and conversion never consult the
// registry again. Quantities are immutable; every operation returns a new
// value.
type Quantity struct {
	value  float64
	label  string
	scale  float64
	offset float64
	dim    Dimension
}

// New returns a Quantity of v expressed in unit u.
// v is used verbatim: NaN, ±Infinity, signed zero and subnormal values are
// accepted without validation or clamping.
func (u Unit) New(v float64) Quantity {
	return Quantity{
		value:  v,
		label:  u.Label,
		scale:  u.Scale,
		offset: u.Offset,
		dim:    u.Dimension,
	}
}

// FromString parses s as a standalone floating-point literal and returns the
// resulting Quantity in unit u. The literal accepts a sign, decimal point,
// exponent notation, and "Infinity"/"-Infinity"; anything else (empty string,
// whitespace, non-ASCII digit glyphs, trailing garbage) fails with
// ErrInvalidNumber. Overflow saturates to ±Infinity and underflow to zero.
func (u Unit) FromString(s string) (Quantity, error) {
	v, err := parseNumber(s)
	if err != nil {
		return Quantity{}, err
	}
	return u.New(v), nil
}

// Scalar returns a dimensionless quantity: all-zero dimension, scale 1,
// offset 0, empty label.
func Scalar(v float64) Quantity {
	return Unitless.New(v)
}

// ScalarFromString parses s under the same literal rules as Unit.FromString
// and returns a dimensionless quantity.
func ScalarFromString(s string) (Quantity, error) {
	return Unitless.FromString(s)
}

// Value returns the quantity's raw value expressed in its own unit,
// never the canonical form.
func (q Quantity) Value() float64 {
	return q.value
}

// Label returns the quantity's unit label. Quantities produced by Mul or Div
// between two non-scalar units carry a synthesized composite label ("N*m",
// "m/s") that is not necessarily registered.
func (q Quantity) Label() string {
	return q.label
}

// Dimension returns the quantity's dimension vector.
func (q Quantity) Dimension() Dimension {
	return q.dim
}

// Canonical returns the value expressed in the dimension's SI-coherent base
// unit: value*scale + offset. This is the bridge used by every cross-unit
// operation.
func (q Quantity) Canonical() float64 {
	return q.value*q.scale + q.offset
}

// To converts q into the target unit. The two must share a dimension vector,
// otherwise ErrDimensionMismatch is returned. Converting a quantity to the
// unit it already carries is the exact identity on its value.
func (q Quantity) To(target Unit) (Quantity, error) {
	if !q.dim.Equal(target.Dimension) {
		return Quantity{}, fmt.Errorf("cannot convert %q to %q: %w", q.label, target.Label, ErrDimensionMismatch)
	}
	out := target.New(q.value)
	if q.label == target.Label {
		// Same unit: skip the affine round trip so the value is untouched.
		return out, nil
	}
	out.value = (q.Canonical() - target.Offset) / target.Scale
	return out, nil
}

// Add returns q + o. The operands must share a dimension vector, otherwise
// ErrDimensionMismatch is returned. The right operand is converted into the
// left operand's unit before combining, so the result keeps q's unit; when
// both operands already share a unit the addition is exact.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if !q.dim.Equal(o.dim) {
		return Quantity{}, fmt.Errorf("cannot add %q and %q: %w", q.label, o.label, ErrDimensionMismatch)
	}
	return q.withValue(q.value + q.operandValue(o)), nil
}

// Sub returns q - o under the same rules as Add.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if !q.dim.Equal(o.dim) {
		return Quantity{}, fmt.Errorf("cannot subtract %q from %q: %w", o.label, q.label, ErrDimensionMismatch)
	}
	return q.withValue(q.value - q.operandValue(o)), nil
}

// Mul returns q * o. Neither operand may carry an affine offset (Celsius,
// Fahrenheit); such operands fail with ErrInvalidOperation. The value is the
// raw product of the two values, the dimension is the vector sum, and the
// scale is the product of the scales. A scalar operand leaves the other
// operand's unit intact; two non-scalar operands produce a synthesized
// "a*b" composite label.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	if q.offset != 0 || o.offset != 0 {
		return Quantity{}, fmt.Errorf("cannot multiply %q and %q: %w", q.label, o.label, ErrInvalidOperation)
	}
	v := q.value * o.value
	switch {
	case o.isScalarUnit():
		return q.withValue(v), nil
	case q.isScalarUnit():
		return o.withValue(v), nil
	}
	return Quantity{
		value: v,
		label: q.label + "*" + o.label,
		scale: q.scale * o.scale,
		dim:   q.dim.Add(o.dim),
	}, nil
}

// Div returns q / o under the same offset rules as Mul. The dimension is the
// vector difference and the scale the quotient of the scales. A scalar
// divisor leaves q's unit intact; a scalar dividend yields a "1/b" composite
// (keeping the divisor's unit would invert the dimension).
func (q Quantity) Div(o Quantity) (Quantity, error) {
	if q.offset != 0 || o.offset != 0 {
		return Quantity{}, fmt.Errorf("cannot divide %q by %q: %w", q.label, o.label, ErrInvalidOperation)
	}
	v := q.value / o.value
	if o.isScalarUnit() {
		return q.withValue(v), nil
	}
	label := q.label + "/" + o.label
	if q.isScalarUnit() {
		label = "1/" + o.label
	}
	return Quantity{
		value: v,
		label: label,
		scale: q.scale / o.scale,
		dim:   q.dim.Sub(o.dim),
	}, nil
}

// Equal reports whether q and o share a dimension vector and represent
// exactly the same canonical value. Logically-equal quantities expressed in
// different commensurable units compare equal; comparison follows IEEE-754
// equality, so NaN quantities are never equal to anything.
func (q Quantity) Equal(o Quantity) bool {
	return q.dim.Equal(o.dim) && q.Canonical() == o.Canonical()
}

// operandValue expresses o in q's unit. Same-label operands bypass the
// affine formula so same-unit arithmetic stays exact.
func (q Quantity) operandValue(o Quantity) float64 {
	if o.label == q.label {
		return o.value
	}
	return (o.Canonical() - q.offset) / q.scale
}

// isScalarUnit reports whether q carries the dimensionless scalar unit:
// all-zero dimension, scale 1, offset 0. Dimensionless composites such as
// "m/m" qualify as well.
func (q Quantity) isScalarUnit() bool {
	return q.dim.IsZero() && q.scale == 1 && q.offset == 0
}

// withValue returns a copy of q holding v, keeping the unit untouched.
func (q Quantity) withValue(v float64) Quantity {
	q.value = v
	return q
}
