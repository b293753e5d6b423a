package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/quantikind"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

var (
	dimLength = units.Dim(units.Length, 1)
	dimTime   = units.Dim(units.Time, 1)
)

// geometry declares length with radius, height, rate_of_climb and
// optionally wavenumber, plus time and one.
func geometry(withWavenumber bool) *kinds.Registry {
	reg := kinds.NewRegistry()
	length := reg.MustBase("length", dimLength)
	reg.MustDeclare("radius", length, dimLength)
	height := reg.MustDeclare("height", length, dimLength)
	reg.MustDeclare("rate_of_climb", height, dimLength.Div(dimTime))
	if withWavenumber {
		reg.MustDeclare("wavenumber", length, dimLength.Inv())
	}
	reg.MustBase("time", dimTime)
	reg.MustBase("one", units.DimOne)
	return reg
}

func TestEval(t *testing.T) {
	e := New(geometry(true))

	tests := []struct {
		expr string
		want string
		kind string
	}{
		{"radius(5 m) * one(2)", "radius(10 m)", "radius"},
		{"one(2) * radius(5 m)", "radius(10 m)", "radius"},
		{"radius(5 m) * 2", "radius(10 m)", "radius"},
		{"radius(5 m) / 2", "radius(2.5 m)", "radius"},
		{"length(3 m) + radius(2 m)", "length(5 m)", "length"},
		{"radius(2 m) + length(3 m)", "radius(5 m)", "radius"},
		{"radius(2 m) - length(50 cm)", "radius(1.5 m)", "radius"},
		{"-radius(2 m)", "radius(-2 m)", "radius"},
		{"+radius(2 m)", "radius(2 m)", "radius"},
		{"height(120 m) / 60 s", "rate_of_climb(2 m/s)", "rate_of_climb"},
		{"length(radius(2 m))", "length(2 m)", "length"},
		{"radius(length(2 m))", "radius(2 m)", "radius"},
		{"radius(2 m) in cm", "radius(200 cm)", "radius"},
		{"5 m", "5 m", ""},
		{"5 km in m", "5000 m", ""},
		{"1.5e3 m in km", "1.5 km", ""},
		{"(2 + 3) * 4", "20", ""},
		{"-(2 - 5)", "3", ""},
		{"one(2) / radius(5 m)", "wavenumber(0.4 1/m)", "wavenumber"},
		{"2 m + 50 cm", "2.5 m", ""},
		{"one(0.5) + one(0.25)", "one(0.75)", "one"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			r, err := e.Eval(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.String())
			if tt.kind == "" {
				assert.Nil(t, r.Kind)
				return
			}
			require.NotNil(t, r.Kind)
			assert.Equal(t, tt.kind, r.Kind.Name())
		})
	}
}

func TestEvalReciprocal(t *testing.T) {
	r, err := New(geometry(true)).Eval("1 / radius(5 m)")
	require.NoError(t, err)
	assert.Equal(t, "wavenumber", r.Kind.Name())
	assert.InDelta(t, 0.2, r.Number(), 1e-12)
	assert.Equal(t, "1/m", r.Quantity.Unit().Symbol)

	v, err := r.Value()
	require.NoError(t, err)
	assert.Same(t, r.Kind, v.Kind())
}

func TestEvalReciprocalWithoutDeclaredKind(t *testing.T) {
	r, err := New(geometry(false)).Eval("1 / radius(5 m)")
	require.NoError(t, err)
	assert.True(t, r.Kind.IsBound())
	assert.Equal(t, "length[L^-1](0.2 1/m)", r.String())
}

func TestEvalAmbiguous(t *testing.T) {
	reg := kinds.NewRegistry()
	length := reg.MustBase("length", dimLength)
	height := reg.MustDeclare("height", length, dimLength)
	altitude := reg.MustDeclare("altitude", length, dimLength)
	reg.MustDeclare("rate_of_climb", height, dimLength.Div(dimTime))
	reg.MustDeclare("ascent_rate", altitude, dimLength.Div(dimTime))

	_, err := New(reg).Eval("length(10 m) / 2 s")
	assert.ErrorIs(t, err, kinds.ErrAmbiguousKind)

	var amb *kinds.AmbiguityError
	require.ErrorAs(t, err, &amb)
	assert.Len(t, amb.Candidates, 2)
}

func TestEvalErrors(t *testing.T) {
	e := New(geometry(true))

	tests := []struct {
		expr    string
		wantErr error
	}{
		{"radius(5 m) + time(3 s)", quantikind.ErrKindMismatch},
		{"radius(5 m) + 5 m", ErrOperands},
		{"2 + radius(5 m)", ErrOperands},
		{"radius(5)", quantikind.ErrNotDimensionless},
		{"radius(5 s)", quantikind.ErrDimensionMismatch},
		{"time(radius(2 m))", quantikind.ErrKindMismatch},
		{"nope(5)", ErrUnknownKind},
		{"nope(5)", kinds.ErrKindNotFound},
		{"5 furlong", units.ErrUnknownUnit},
		{"2 m + 3 s", units.ErrIncompatibleDimension},
		{"radius(2 m) in s", units.ErrIncompatibleDimension},
		{"1 / 0", ErrDivByZero},
		{"radius(2 m) / 0", ErrDivByZero},
		{"5 +", ErrSyntax},
		{"(5", ErrSyntax},
		{"radius 5", ErrSyntax},
		{"5 m^", ErrSyntax},
		{"5 radius(2 m)", ErrSyntax},
		{"5 m in", ErrSyntax},
		{"5 $", ErrSyntax},
		{"", ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := e.Eval(tt.expr)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResultWithoutKind(t *testing.T) {
	r, err := New(geometry(true)).Eval("3 m")
	require.NoError(t, err)

	_, err = r.Value()
	assert.ErrorIs(t, err, quantikind.ErrNoKind)
	assert.Equal(t, 3.0, r.Number())
}

func TestLexer(t *testing.T) {
	l := newLexer("rate_of_climb(1.5e-3 m·s^-1) / 2")
	var got []tokenType
	for tok := l.next(); tok.typ != tokEOF; tok = l.next() {
		got = append(got, tok.typ)
	}
	assert.Equal(t, []tokenType{
		tokIdent, tokLParen, tokNumber, tokIdent, tokDot, tokIdent, tokCaret, tokMinus, tokNumber, tokRParen, tokSlash, tokNumber,
	}, got)
}
