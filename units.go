package unitsafe

// Per-unit factories. Each variable is the registered Unit definition for one
// label; call New or FromString on it to build a Quantity in that unit, or
// pass it to Quantity.To as a conversion target.
//
// The variables alias the registry entries by value and must be treated as
// read-only.
var (
	// Length
	Meter            = mustLookup("m")
	Kilometer        = mustLookup("km")
	Centimeter       = mustLookup("cm")
	Millimeter       = mustLookup("mm")
	Micrometer       = mustLookup("um")
	Nanometer        = mustLookup("nm")
	Inch             = mustLookup("in")
	Foot             = mustLookup("ft")
	Yard             = mustLookup("yd")
	Mile             = mustLookup("mi")
	NauticalMile     = mustLookup("nmi")
	AstronomicalUnit = mustLookup("au")
	LightYear        = mustLookup("ly")
	Parsec           = mustLookup("pc")
	Angstrom         = mustLookup("angstrom")
	PlanckLength     = mustLookup("lP")

	// Mass
	Kilogram  = mustLookup("kg")
	Gram      = mustLookup("g")
	Milligram = mustLookup("mg")
	Microgram = mustLookup("ug")
	Tonne     = mustLookup("t")
	Pound     = mustLookup("lb")
	Ounce     = mustLookup("oz")
	Stone     = mustLookup("st")
	ShortTon  = mustLookup("ton")
	Grain     = mustLookup("gr")
	Dalton    = mustLookup("Da")

	// Time
	Second      = mustLookup("s")
	Millisecond = mustLookup("ms")
	Microsecond = mustLookup("us")
	Nanosecond  = mustLookup("ns")
	Minute      = mustLookup("min")
	Hour        = mustLookup("h")
	Day         = mustLookup("d")
	Week        = mustLookup("wk")
	Year        = mustLookup("yr")
	PlanckTime  = mustLookup("tP")

	// Temperature
	Kelvin     = mustLookup("K")
	Celsius    = mustLookup("degC")
	Fahrenheit = mustLookup("degF")
	Rankine    = mustLookup("degR")

	// Area
	SquareMeter      = mustLookup("m2")
	SquareKilometer  = mustLookup("km2")
	SquareCentimeter = mustLookup("cm2")
	SquareMillimeter = mustLookup("mm2")
	Hectare          = mustLookup("ha")
	Acre             = mustLookup("acre")
	SquareFoot       = mustLookup("ft2")
	SquareInch       = mustLookup("in2")
	Barn             = mustLookup("barn")

	// Volume
	CubicMeter   = mustLookup("m3")
	Liter        = mustLookup("L")
	Milliliter   = mustLookup("ml")
	Microliter   = mustLookup("ul")
	CubicFoot    = mustLookup("ft3")
	CubicInch    = mustLookup("in3")
	Gallon       = mustLookup("gal")
	Quart        = mustLookup("qt")
	LiquidPint   = mustLookup("pt-liq")
	Cup          = mustLookup("cup")
	FluidOunce   = mustLookup("fl-oz")
	Tablespoon   = mustLookup("tbsp")
	Teaspoon     = mustLookup("tsp")
	PlanckVolume = mustLookup("lP3")

	// Velocity
	MeterPerSecond   = mustLookup("m/s")
	KilometerPerHour = mustLookup("km/h")
	MilePerHour      = mustLookup("mph")
	Knot             = mustLookup("kn")
	FootPerSecond    = mustLookup("ft/s")
	SpeedOfLight     = mustLookup("c")

	// Force
	Newton        = mustLookup("N")
	Kilonewton    = mustLookup("kN")
	Dyne          = mustLookup("dyn")
	PoundForce    = mustLookup("lbf")
	KilogramForce = mustLookup("kgf")
	OunceForce    = mustLookup("ozf")

	// Energy
	Joule        = mustLookup("J")
	Kilojoule    = mustLookup("kJ")
	WattHour     = mustLookup("Wh")
	KilowattHour = mustLookup("kWh")
	Calorie      = mustLookup("cal")
	Kilocalorie  = mustLookup("kcal")
	BTU          = mustLookup("BTU")
	Electronvolt = mustLookup("eV")
	Erg          = mustLookup("erg")

	// Power
	Watt       = mustLookup("W")
	Femtowatt  = mustLookup("fW")
	Kilowatt   = mustLookup("kW")
	Megawatt   = mustLookup("MW")
	Gigawatt   = mustLookup("GW")
	Horsepower = mustLookup("hp")

	// Pressure
	Pascal              = mustLookup("Pa")
	Micropascal         = mustLookup("uPa")
	Kilopascal          = mustLookup("kPa")
	Bar                 = mustLookup("bar")
	Millibar            = mustLookup("mbar")
	Atmosphere          = mustLookup("atm")
	MillimeterOfMercury = mustLookup("mmHg")
	PSI                 = mustLookup("psi")
	Torr                = mustLookup("torr")

	// Data size
	Bit      = mustLookup("b")
	Byte     = mustLookup("B")
	Kilobyte = mustLookup("kB")
	Megabyte = mustLookup("MB")
	Gigabyte = mustLookup("GB")
	Terabyte = mustLookup("TB")
	Kibibyte = mustLookup("KiB")
	Mebibyte = mustLookup("MiB")
	Gibibyte = mustLookup("GiB")
	Tebibyte = mustLookup("TiB")
)

// Unitless is the dimensionless scalar unit: all-zero dimension, scale 1,
// offset 0, empty label. It is not registered under any label, so Parse and
// Lookup never resolve to it. Use Scalar or ScalarFromString to build
// dimensionless quantities, or pass Unitless to Quantity.To to strip a
// dimensionless composite back to a plain scalar.
var Unitless = Unit{Scale: 1}
