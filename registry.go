package unitsafe

import (
	"fmt"
	"sort"
)

// Planck-scale reference constants (CODATA 2018). Deliberately registered in
// their families to exercise double-precision boundary behavior.
const (
	planckLength = 1.616255e-35  // meters
	planckTime   = 5.391247e-44  // seconds
	lightSpeed   = 299792458.0   // meters per second, exact
)

// linear builds a registry entry for a purely multiplicative unit.
func linear(label string, dim Dimension, scale float64) Unit {
	return Unit{Label: label, Dimension: dim, Scale: scale}
}

// affine builds a registry entry for a unit with an additive offset.
// Only the Celsius and Fahrenheit temperature scales use this.
func affine(label string, dim Dimension, scale, offset float64) Unit {
	return Unit{Label: label, Dimension: dim, Scale: scale, Offset: offset}
}

// registry is the process-wide unit table: exactly 110 labelled definitions
// across twelve dimensional families. It is built once during package
// initialization and never mutated afterward, so it may be read concurrently
// without synchronization. Lookup is an exact full-string match on a plain
// map; there is no prefix matching and no inherited-member fallback.
var registry = buildRegistry()

func buildRegistry() map[string]Unit {
	families := []struct {
		name  string
		units []Unit
	}{
		{"length", []Unit{
			linear("m", dimLength, 1),
			linear("km", dimLength, 1000),
			linear("cm", dimLength, 0.01),
			linear("mm", dimLength, 0.001),
			linear("um", dimLength, 1e-6),
			linear("nm", dimLength, 1e-9),
			linear("in", dimLength, 0.0254),
			linear("ft", dimLength, 0.3048),
			linear("yd", dimLength, 0.9144),
			linear("mi", dimLength, 1609.344),
			linear("nmi", dimLength, 1852),
			linear("au", dimLength, 1.495978707e11),
			linear("ly", dimLength, 9.4607304725808e15),
			linear("pc", dimLength, 3.0856775814913673e16),
			linear("angstrom", dimLength, 1e-10),
			linear("lP", dimLength, planckLength),
		}},
		{"mass", []Unit{
			linear("kg", dimMass, 1),
			linear("g", dimMass, 0.001),
			linear("mg", dimMass, 1e-6),
			linear("ug", dimMass, 1e-9),
			linear("t", dimMass, 1000),
			linear("lb", dimMass, 0.45359237),
			linear("oz", dimMass, 0.028349523125),
			linear("st", dimMass, 6.35029318),
			linear("ton", dimMass, 907.18474),
			linear("gr", dimMass, 6.479891e-5),
			linear("Da", dimMass, 1.6605390666e-27),
		}},
		{"time", []Unit{
			linear("s", dimTime, 1),
			linear("ms", dimTime, 1e-3),
			linear("us", dimTime, 1e-6),
			linear("ns", dimTime, 1e-9),
			linear("min", dimTime, 60),
			linear("h", dimTime, 3600),
			linear("d", dimTime, 86400),
			linear("wk", dimTime, 604800),
			linear("yr", dimTime, 31557600), // Julian year
			linear("tP", dimTime, planckTime),
		}},
		{"temperature", []Unit{
			linear("K", dimTemperature, 1),
			affine("degC", dimTemperature, 1, 273.15),
			affine("degF", dimTemperature, 5.0/9.0, 273.15-32*5.0/9.0),
			linear("degR", dimTemperature, 5.0/9.0),
		}},
		{"area", []Unit{
			linear("m2", dimArea, 1),
			linear("km2", dimArea, 1e6),
			linear("cm2", dimArea, 1e-4),
			linear("mm2", dimArea, 1e-6),
			linear("ha", dimArea, 1e4),
			linear("acre", dimArea, 4046.8564224),
			linear("ft2", dimArea, 0.09290304),
			linear("in2", dimArea, 6.4516e-4),
			linear("barn", dimArea, 1e-28),
		}},
		{"volume", []Unit{
			linear("m3", dimVolume, 1),
			linear("L", dimVolume, 1e-3),
			linear("ml", dimVolume, 1e-6),
			linear("ul", dimVolume, 1e-9),
			linear("ft3", dimVolume, 0.028316846592),
			linear("in3", dimVolume, 1.6387064e-5),
			linear("gal", dimVolume, 3.785411784e-3),
			linear("qt", dimVolume, 9.46352946e-4),
			linear("pt-liq", dimVolume, 4.73176473e-4),
			linear("cup", dimVolume, 2.365882365e-4),
			linear("fl-oz", dimVolume, 2.95735295625e-5),
			linear("tbsp", dimVolume, 1.478676478125e-5),
			linear("tsp", dimVolume, 4.92892159375e-6),
			linear("lP3", dimVolume, planckLength*planckLength*planckLength),
		}},
		{"velocity", []Unit{
			linear("m/s", dimVelocity, 1),
			linear("km/h", dimVelocity, 1000.0/3600.0),
			linear("mph", dimVelocity, 0.44704),
			linear("kn", dimVelocity, 1852.0/3600.0),
			linear("ft/s", dimVelocity, 0.3048),
			linear("c", dimVelocity, lightSpeed),
		}},
		{"force", []Unit{
			linear("N", dimForce, 1),
			linear("kN", dimForce, 1000),
			linear("dyn", dimForce, 1e-5),
			linear("lbf", dimForce, 4.4482216152605),
			linear("kgf", dimForce, 9.80665),
			linear("ozf", dimForce, 0.27801385095378125),
		}},
		{"energy", []Unit{
			linear("J", dimEnergy, 1),
			linear("kJ", dimEnergy, 1000),
			linear("Wh", dimEnergy, 3600),
			linear("kWh", dimEnergy, 3.6e6),
			linear("cal", dimEnergy, 4.184),
			linear("kcal", dimEnergy, 4184),
			linear("BTU", dimEnergy, 1055.05585262),
			linear("eV", dimEnergy, 1.602176634e-19),
			linear("erg", dimEnergy, 1e-7),
		}},
		{"power", []Unit{
			linear("W", dimPower, 1),
			linear("fW", dimPower, 1e-15),
			linear("kW", dimPower, 1e3),
			linear("MW", dimPower, 1e6),
			linear("GW", dimPower, 1e9),
			linear("hp", dimPower, 745.69987158227022),
		}},
		{"pressure", []Unit{
			linear("Pa", dimPressure, 1),
			linear("uPa", dimPressure, 1e-6),
			linear("kPa", dimPressure, 1e3),
			linear("bar", dimPressure, 1e5),
			linear("mbar", dimPressure, 100),
			linear("atm", dimPressure, 101325),
			linear("mmHg", dimPressure, 133.322387415),
			linear("psi", dimPressure, 6894.757293168361),
			linear("torr", dimPressure, 101325.0/760.0),
		}},
		{"data", []Unit{
			linear("b", dimData, 1),
			linear("B", dimData, 8),
			linear("kB", dimData, 8e3),
			linear("MB", dimData, 8e6),
			linear("GB", dimData, 8e9),
			linear("TB", dimData, 8e12),
			linear("KiB", dimData, 8192),
			linear("MiB", dimData, 8*1024*1024),
			linear("GiB", dimData, 8*1024*1024*1024),
			linear("TiB", dimData, 8*1024*1024*1024*1024),
		}},
	}

	reg := make(map[string]Unit, 128)
	for _, fam := range families {
		for _, u := range fam.units {
			if u.Scale <= 0 {
				panic(fmt.Sprintf("unitsafe: unit %q has non-positive scale", u.Label))
			}
			if _, dup := reg[u.Label]; dup {
				panic(fmt.Sprintf("unitsafe: duplicate unit label %q", u.Label))
			}
			u.family = fam.name
			reg[u.Label] = u
		}
	}
	return reg
}

// Lookup returns the registered unit definition for label.
// Matching is an exact comparison of the full label string ("km/h" and
// "km" are unrelated entries). Returns ErrUnknownUnit if the label is not
// registered.
func Lookup(label string) (Unit, error) {
	u, ok := registry[label]
	if !ok {
		return Unit{}, fmt.Errorf("%q: %w", label, ErrUnknownUnit)
	}
	return u, nil
}

// Labels returns the sorted list of all registered unit labels.
func Labels() []string {
	labels := make([]string, 0, len(registry))
	for label := range registry {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// mustLookup resolves a label at package initialization.
// A panic here means the compiled-in table is inconsistent.
func mustLookup(label string) Unit {
	u, err := Lookup(label)
	if err != nil {
		panic(err)
	}
	return u
}
