package units

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Unit is a measurement scale for a dimension. Scale is the factor that
// converts a value in this unit into the coherent SI unit of Dim. Unit is
// comparable; two units are the same when symbol, dimension and scale match.
type Unit struct {
	Symbol string
	Dim    Dimension
	Scale  float64
}

// Built-in units.
var (
	One        = Unit{Symbol: "one", Dim: DimOne, Scale: 1}
	Metre      = Unit{Symbol: "m", Dim: Dim(Length, 1), Scale: 1}
	Kilometre  = Unit{Symbol: "km", Dim: Dim(Length, 1), Scale: 1e3}
	Centimetre = Unit{Symbol: "cm", Dim: Dim(Length, 1), Scale: 1e-2}
	Millimetre = Unit{Symbol: "mm", Dim: Dim(Length, 1), Scale: 1e-3}
	Foot       = Unit{Symbol: "ft", Dim: Dim(Length, 1), Scale: 0.3048}
	Second     = Unit{Symbol: "s", Dim: Dim(Time, 1), Scale: 1}
	Minute     = Unit{Symbol: "min", Dim: Dim(Time, 1), Scale: 60}
	Hour       = Unit{Symbol: "h", Dim: Dim(Time, 1), Scale: 3600}
	Kilogram   = Unit{Symbol: "kg", Dim: Dim(Mass, 1), Scale: 1}
	Gram       = Unit{Symbol: "g", Dim: Dim(Mass, 1), Scale: 1e-3}
)

// builtinUnits indexes the built-in units by symbol.
var builtinUnits = map[string]Unit{}

func init() {
	for _, u := range []Unit{One, Metre, Kilometre, Centimetre, Millimetre, Foot, Second, Minute, Hour, Kilogram, Gram} {
		builtinUnits[u.Symbol] = u
	}
}

// IsOne reports whether u is the unit one.
func (u Unit) IsOne() bool {
	return u == One
}

// Convertible reports whether values in u can be expressed in o.
func (u Unit) Convertible(o Unit) bool {
	return u.Dim == o.Dim
}

// Mul returns the product unit u·o.
func (u Unit) Mul(o Unit) Unit {
	switch {
	case u.IsOne():
		return o
	case o.IsOne():
		return u
	}
	return normalize(Unit{
		Symbol: u.Symbol + "·" + o.Symbol,
		Dim:    u.Dim.Mul(o.Dim),
		Scale:  u.Scale * o.Scale,
	})
}

// Div returns the quotient unit u/o.
func (u Unit) Div(o Unit) Unit {
	switch {
	case o.IsOne():
		return u
	case u.IsOne():
		return o.Inv()
	case u == o:
		return One
	}
	return normalize(Unit{
		Symbol: u.Symbol + "/" + wrap(o.Symbol),
		Dim:    u.Dim.Div(o.Dim),
		Scale:  u.Scale / o.Scale,
	})
}

// Inv returns the reciprocal unit 1/u.
func (u Unit) Inv() Unit {
	if u.IsOne() {
		return u
	}
	sym := "1/" + wrap(u.Symbol)
	if rest, ok := strings.CutPrefix(u.Symbol, "1/"); ok {
		sym = strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")")
	}
	return normalize(Unit{Symbol: sym, Dim: u.Dim.Inv(), Scale: 1 / u.Scale})
}

// Pow returns u^n for n >= 1.
func (u Unit) Pow(n int) Unit {
	if n == 1 || u.IsOne() {
		return u
	}
	scale := 1.0
	for i := 0; i < n; i++ {
		scale *= u.Scale
	}
	return normalize(Unit{
		Symbol: wrap(u.Symbol) + "^" + strconv.Itoa(n),
		Dim:    u.Dim.Pow(n),
		Scale:  scale,
	})
}

// String returns the unit symbol.
func (u Unit) String() string {
	return u.Symbol
}

// normalize collapses a coherent dimensionless unit to One.
func normalize(u Unit) Unit {
	if u.Dim.IsOne() && u.Scale == 1 {
		return One
	}
	return u
}

func wrap(sym string) string {
	if strings.ContainsAny(sym, "/·") {
		return "(" + sym + ")"
	}
	return sym
}

// LookupUnit returns the built-in unit with the given symbol.
func LookupUnit(symbol string) (Unit, error) {
	u, ok := builtinUnits[symbol]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return u, nil
}

// UnitSymbols lists the built-in unit symbols in sorted order.
func UnitSymbols() []string {
	syms := make([]string, 0, len(builtinUnits))
	for s := range builtinUnits {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

// ParseUnit parses a unit expression built from built-in symbols, such as
// "m", "km/h", "m·s^-1", "1/m" or "kg*m^2/s^2". An empty string is One.
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return One, nil
	}

	result := One
	divide := false
	var tok strings.Builder

	flush := func() error {
		f := strings.TrimSpace(tok.String())
		tok.Reset()
		if f == "" {
			return fmt.Errorf("%w: empty factor in %q", ErrUnknownUnit, s)
		}
		if f == "1" {
			return nil
		}
		sym, power := f, 1
		if i := strings.IndexByte(f, '^'); i >= 0 {
			sym = f[:i]
			p, err := strconv.Atoi(f[i+1:])
			if err != nil || p == 0 {
				return fmt.Errorf("%w: bad exponent in %q", ErrUnknownUnit, f)
			}
			power = p
		}
		u, err := LookupUnit(sym)
		if err != nil {
			return err
		}
		if power < 0 {
			power = -power
			u = u.Pow(power).Inv()
		} else {
			u = u.Pow(power)
		}
		if divide {
			result = result.Div(u)
		} else {
			result = result.Mul(u)
		}
		return nil
	}

	for _, r := range s {
		switch r {
		case '*', '·', '/':
			if err := flush(); err != nil {
				return Unit{}, err
			}
			divide = r == '/'
		default:
			tok.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return Unit{}, err
	}
	return result, nil
}
