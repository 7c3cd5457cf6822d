package css_ast

// Numeric is the shared representation behind every CSS numeric value:
// plain numbers, dimensions (length/angle/time/resolution/flex), and
// percentages all carry one of these underneath. It keeps the three
// facts a consumer of a numeric token needs that the raw decimal value
// alone does not: whether the source wrote an explicit sign (CSS Values
// 4 "hasSign", needed to round-trip "+5" vs "5" and to drive calc's
// sign() / unary-minus folding), whether the source was written as an
// integer or had a fractional/exponent form ("IntValue" mirrors the
// lexer's TNumber integer-vs-number distinction, needed by properties
// like z-index and grid-row that require an <integer>), and the literal
// source text ("Repr") so a lossless serializer can echo "1.0" rather
// than normalizing it to "1".
type Numeric struct {
	Repr     string
	Value    float64
	IntValue int64
	IsInt    bool
	HasSign  bool
}

// Unit identifies the dimension a Numeric is tagged with. The zero value
// UnitUnknown means "some unit string the value parser did not recognize
// as belonging to any of the typed categories below" — such dimensions
// get no typed leaf: the typed parse of the declaration fails and its
// value is kept in Value.Unparsed rather than being rejected or forced
// into the wrong category.
type Unit uint8

const (
	UnitUnknown Unit = iota

	// Length units (CSS Values 4 §6).
	UnitPx
	UnitCm
	UnitMm
	UnitQ
	UnitIn
	UnitPt
	UnitPc
	UnitEm
	UnitRem
	UnitEx
	UnitRex
	UnitCh
	UnitRch
	UnitCap
	UnitRcap
	UnitIc
	UnitRic
	UnitLh
	UnitRlh
	UnitVw
	UnitVh
	UnitVi
	UnitVb
	UnitVmin
	UnitVmax
	UnitSvw
	UnitSvh
	UnitLvw
	UnitLvh
	UnitDvw
	UnitDvh
	UnitCqw
	UnitCqh
	UnitCqi
	UnitCqb
	UnitCqmin
	UnitCqmax

	// Angle units.
	UnitDeg
	UnitGrad
	UnitRad
	UnitTurn

	// Time units.
	UnitS
	UnitMs

	// Resolution units.
	UnitDpi
	UnitDpcm
	UnitDppx

	// Flex unit (grid track sizing, not strictly CSS Values but shares
	// the dimension-token shape and is handled by the same machinery).
	UnitFr
)

var unitNames = map[string]Unit{
	"px": UnitPx, "cm": UnitCm, "mm": UnitMm, "q": UnitQ, "in": UnitIn,
	"pt": UnitPt, "pc": UnitPc, "em": UnitEm, "rem": UnitRem, "ex": UnitEx,
	"rex": UnitRex, "ch": UnitCh, "rch": UnitRch, "cap": UnitCap, "rcap": UnitRcap,
	"ic": UnitIc, "ric": UnitRic, "lh": UnitLh, "rlh": UnitRlh,
	"vw": UnitVw, "vh": UnitVh, "vi": UnitVi, "vb": UnitVb,
	"vmin": UnitVmin, "vmax": UnitVmax,
	"svw": UnitSvw, "svh": UnitSvh, "lvw": UnitLvw, "lvh": UnitLvh,
	"dvw": UnitDvw, "dvh": UnitDvh,
	"cqw": UnitCqw, "cqh": UnitCqh, "cqi": UnitCqi, "cqb": UnitCqb,
	"cqmin": UnitCqmin, "cqmax": UnitCqmax,
	"deg": UnitDeg, "grad": UnitGrad, "rad": UnitRad, "turn": UnitTurn,
	"s": UnitS, "ms": UnitMs,
	"dpi": UnitDpi, "dpcm": UnitDpcm, "dppx": UnitDppx,
	"fr": UnitFr,
}

// LookupUnit maps a lowercased unit string (the lexer's DimensionUnit())
// to its typed Unit, or UnitUnknown if it names nothing this library
// assigns a typed leaf to.
func LookupUnit(name string) Unit {
	if u, ok := unitNames[name]; ok {
		return u
	}
	return UnitUnknown
}

func (u Unit) IsLength() bool     { return u >= UnitPx && u <= UnitCqmax }
func (u Unit) IsAngle() bool      { return u >= UnitDeg && u <= UnitTurn }
func (u Unit) IsTime() bool       { return u == UnitS || u == UnitMs }
func (u Unit) IsResolution() bool { return u >= UnitDpi && u <= UnitDppx }

var unitStrings = func() map[Unit]string {
	m := make(map[Unit]string, len(unitNames))
	for name, u := range unitNames {
		m[u] = name
	}
	return m
}()

// String returns the CSS unit keyword for u (lowercase, as the lexer
// would have read it), or "" for UnitUnknown.
func (u Unit) String() string {
	return unitStrings[u]
}

// CSSLength, CSSAngle, CSSTime, CSSResolution are the typed dimension
// leaves named in the data model: a Numeric plus the Unit it resolved
// to. Calc expressions over these are represented by CSSCalc[T] in
// calc.go rather than by a field on the leaf itself, since a value is
// always either a resolved leaf value or a calc expression tree, never
// both at once.
type CSSLength struct {
	Numeric Numeric
	Unit    Unit
}

type CSSAngle struct {
	Numeric Numeric
	Unit    Unit
}

type CSSTime struct {
	Numeric Numeric
	Unit    Unit
}

type CSSResolution struct {
	Numeric Numeric
	Unit    Unit
}

// CSSPercentage stores the value as entered/100 (so 50% is 0.5), per the
// data model's explicit normalization note — this lets percentage math
// (e.g. inside calc()) share the same arithmetic as a plain <number>
// without a *100 correction at every use site.
type CSSPercentage struct {
	Numeric Numeric // Numeric.Value here is the *normalized* fraction
	Repr    string  // original written form, e.g. "50%", for serialization
}

// CSSDimensionPercentage is the generic "<length-percentage>" /
// "<angle-percentage>" family: a property that accepts either a typed
// dimension or a percentage resolved against some axis not known until
// layout. D is one of CSSLength, CSSAngle, CSSTime, CSSResolution.
type CSSDimensionPercentage[D any] struct {
	Dimension  *D
	Percentage *CSSPercentage
	Calc       *CSSCalc[D]
}

func (d CSSDimensionPercentage[D]) IsPercentage() bool { return d.Percentage != nil }
func (d CSSDimensionPercentage[D]) IsCalc() bool       { return d.Calc != nil }
