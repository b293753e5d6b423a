package units

import (
	"fmt"
	"strconv"
	"strings"
)

// BaseDimension identifies one of the seven ISQ base dimensions.
type BaseDimension int

// ISQ base dimensions, in the order used by Dimension.String.
const (
	Length BaseDimension = iota
	Mass
	Time
	Current
	Temperature
	Amount
	Luminosity

	numBaseDimensions
)

// baseSymbols are the canonical dimension symbols, indexed by BaseDimension.
var baseSymbols = [numBaseDimensions]string{"L", "M", "T", "I", "Θ", "N", "J"}

// symbolAliases maps accepted spellings onto base dimensions for parsing.
var symbolAliases = map[string]BaseDimension{
	"L":     Length,
	"M":     Mass,
	"T":     Time,
	"I":     Current,
	"Θ":     Temperature,
	"Theta": Temperature,
	"N":     Amount,
	"J":     Luminosity,
}

// String returns the dimension symbol.
func (b BaseDimension) String() string {
	if b < 0 || b >= numBaseDimensions {
		return "BaseDimension(" + strconv.Itoa(int(b)) + ")"
	}
	return baseSymbols[b]
}

// Dimension is a product of base dimensions raised to integer powers.
// The zero value is DimOne, the dimension of pure numbers. Dimension is
// comparable and can be used as a map key.
type Dimension struct {
	exp [numBaseDimensions]int
}

// maxExponent bounds the powers ParseDimension accepts, so that products
// of parsed dimensions cannot overflow an exponent.
const maxExponent = 1 << 20

// DimOne is the dimensionless dimension.
var DimOne = Dimension{}

// Dim returns the dimension b^power.
func Dim(b BaseDimension, power int) Dimension {
	var d Dimension
	d.exp[b] = power
	return d
}

// Exponent returns the power of base dimension b in d.
func (d Dimension) Exponent(b BaseDimension) int {
	return d.exp[b]
}

// IsOne reports whether d is dimensionless.
func (d Dimension) IsOne() bool {
	return d == DimOne
}

// Mul returns d·o.
func (d Dimension) Mul(o Dimension) Dimension {
	var r Dimension
	for i := range r.exp {
		r.exp[i] = d.exp[i] + o.exp[i]
	}
	return r
}

// Div returns d/o.
func (d Dimension) Div(o Dimension) Dimension {
	return d.Mul(o.Inv())
}

// Inv returns 1/d.
func (d Dimension) Inv() Dimension {
	var r Dimension
	for i := range r.exp {
		r.exp[i] = -d.exp[i]
	}
	return r
}

// Pow returns d^n.
func (d Dimension) Pow(n int) Dimension {
	var r Dimension
	for i := range r.exp {
		r.exp[i] = d.exp[i] * n
	}
	return r
}

// String renders d as "L·T^-1", or "1" when dimensionless.
func (d Dimension) String() string {
	if d.IsOne() {
		return "1"
	}
	var parts []string
	for i, e := range d.exp {
		switch {
		case e == 0:
			continue
		case e == 1:
			parts = append(parts, baseSymbols[i])
		default:
			parts = append(parts, baseSymbols[i]+"^"+strconv.Itoa(e))
		}
	}
	return strings.Join(parts, "·")
}

// ParseDimension parses the textual form used in kind catalogs. Factors are
// separated by "*", "·" or "/" and may carry an integer power: "L", "L/T",
// "M*L^2/T^2", "T^-1", "1".
func ParseDimension(s string) (Dimension, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "1" {
		return DimOne, nil
	}

	var d Dimension
	divide := false
	var tok strings.Builder

	flush := func() error {
		f := strings.TrimSpace(tok.String())
		tok.Reset()
		if f == "" {
			return fmt.Errorf("%w: empty factor in %q", ErrInvalidDimension, s)
		}
		if f == "1" {
			return nil
		}
		name, power := f, 1
		if i := strings.IndexByte(f, '^'); i >= 0 {
			name = strings.TrimSpace(f[:i])
			p, err := strconv.Atoi(strings.TrimSpace(f[i+1:]))
			if err != nil || p > maxExponent || p < -maxExponent {
				return fmt.Errorf("%w: bad exponent in %q", ErrInvalidDimension, f)
			}
			power = p
		}
		b, ok := symbolAliases[name]
		if !ok {
			return fmt.Errorf("%w: unknown base dimension %q", ErrInvalidDimension, name)
		}
		if divide {
			power = -power
		}
		d = d.Mul(Dim(b, power))
		return nil
	}

	for _, r := range s {
		switch r {
		case '*', '·', '/':
			if err := flush(); err != nil {
				return DimOne, err
			}
			divide = r == '/'
		default:
			tok.WriteRune(r)
		}
	}
	if err := flush(); err != nil {
		return DimOne, err
	}
	return d, nil
}

// MustParseDimension is like ParseDimension but panics on error. It is
// intended for package-level declarations.
func MustParseDimension(s string) Dimension {
	d, err := ParseDimension(s)
	if err != nil {
		panic(err)
	}
	return d
}
