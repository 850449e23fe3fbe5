package unitsafe

import (
	"math"
	"strconv"
)

// Format renders the quantity as text: the value, a single space, then the
// unit label. The default rendering is the shortest decimal string that
// round-trips to the same float64; WithPrecision(n) renders exactly n digits
// after the decimal point instead. Scalar quantities render the bare value.
//
// ±Infinity renders as "Infinity"/"-Infinity" so that formatted output is
// always accepted by Parse. Formatting is pure and never modifies q.
func (q Quantity) Format(opts ...FormatOption) string {
	var cfg formatConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	num := formatValue(q.value, cfg)
	if q.label == "" {
		return num
	}
	return num + " " + q.label
}

// String renders the quantity with default formatting.
func (q Quantity) String() string {
	return q.Format()
}

func formatValue(v float64, cfg formatConfig) string {
	if math.IsInf(v, 1) {
		return "Infinity"
	}
	if math.IsInf(v, -1) {
		return "-Infinity"
	}
	if cfg.hasPrecision {
		return strconv.FormatFloat(v, 'f', cfg.precision, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
