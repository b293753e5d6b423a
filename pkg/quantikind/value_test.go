package quantikind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/quantikind/pkg/kinds"
	"github.com/mesh-intelligence/quantikind/pkg/units"
)

var (
	dimLength = units.Dim(units.Length, 1)
	dimTime   = units.Dim(units.Time, 1)
)

type geometry struct {
	reg         *kinds.Registry
	length      *kinds.Kind
	radius      *kinds.Kind
	wavelength  *kinds.Kind
	height      *kinds.Kind
	rateOfClimb *kinds.Kind
	wavenumber  *kinds.Kind
	duration    *kinds.Kind
	one         *kinds.Kind
}

func newGeometry(t *testing.T) geometry {
	t.Helper()
	r := kinds.NewRegistry()
	g := geometry{reg: r}
	g.length = r.MustBase("length", dimLength)
	g.radius = r.MustDeclare("radius", g.length, dimLength)
	g.wavelength = r.MustDeclare("wavelength", g.length, dimLength)
	g.height = r.MustDeclare("height", g.length, dimLength)
	g.rateOfClimb = r.MustDeclare("rate_of_climb", g.height, dimLength.Div(dimTime))
	g.wavenumber = r.MustDeclare("wavenumber", g.length, dimLength.Inv())
	g.duration = r.MustBase("duration", dimTime)
	g.one = r.MustBase("one", units.DimOne)
	return g
}

func metres(v float64) units.Quantity[float64] { return units.New(v, units.Metre) }

func TestFromQuantityRoundTrip(t *testing.T) {
	g := newGeometry(t)

	tests := []struct {
		name string
		kind *kinds.Kind
		q    units.Quantity[float64]
	}{
		{"base kind", g.length, metres(3)},
		{"specialization", g.radius, units.New(12.5, units.Centimetre)},
		{"dimension changing specialization", g.rateOfClimb, units.New(4.0, units.Metre.Div(units.Second))},
		{"dimensionless", g.one, units.Dimensionless(7.0)},
		{"time", g.duration, units.New(90.0, units.Minute)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromQuantity(tt.kind, tt.q)
			require.NoError(t, err)
			assert.Equal(t, tt.q, v.Common())
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.q.Unit(), v.Unit())
			assert.Equal(t, tt.q.Value(), v.Number())
			assert.Equal(t, tt.kind.Dimension(), v.Dimension())
		})
	}
}

func TestFromQuantityErrors(t *testing.T) {
	g := newGeometry(t)

	_, err := FromQuantity(g.radius, units.New(2.0, units.Second))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = FromQuantity(nil, metres(1))
	assert.ErrorIs(t, err, ErrNoKind)
}

func TestFromNumber(t *testing.T) {
	g := newGeometry(t)

	v, err := FromNumber(g.one, 2.0)
	require.NoError(t, err)
	assert.Equal(t, units.One, v.Unit())
	assert.Equal(t, 2.0, v.Number())

	_, err = FromNumber(g.radius, 5.0)
	assert.ErrorIs(t, err, ErrNotDimensionless)

	_, err = FromNumber[float64](nil, 5.0)
	assert.ErrorIs(t, err, ErrNoKind)
}

func TestDefault(t *testing.T) {
	g := newGeometry(t)

	v, err := Default[int](g.radius, units.Millimetre)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Number())
	assert.Equal(t, units.Millimetre, v.Unit())
	assert.Equal(t, g.radius, v.Kind())

	_, err = Default[int](g.radius, units.Second)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFactories(t *testing.T) {
	g := newGeometry(t)

	zero := Must(Zero[int8](g.radius, units.Metre))
	one := Must(One[int8](g.radius, units.Metre))
	lo := Must(Min[int8](g.radius, units.Metre))
	hi := Must(Max[int8](g.radius, units.Metre))

	assert.Equal(t, int8(0), zero.Number())
	assert.Equal(t, int8(1), one.Number())
	assert.Equal(t, int8(-128), lo.Number())
	assert.Equal(t, int8(127), hi.Number())
	for _, v := range []Value[int8]{zero, one, lo, hi} {
		assert.Equal(t, g.radius, v.Kind())
	}

	ulo := Must(Min[uint16](g.length, units.Metre))
	assert.Equal(t, uint16(0), ulo.Number())

	_, err := Max[float64](g.radius, units.Hour)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMustPanics(t *testing.T) {
	g := newGeometry(t)
	assert.Panics(t, func() { Must(FromNumber(g.radius, 1.0)) })
}

func TestWiden(t *testing.T) {
	g := newGeometry(t)
	r := Must(FromQuantity(g.radius, metres(5)))

	w, err := Widen(g.length, r)
	require.NoError(t, err)
	assert.Equal(t, g.length, w.Kind())
	assert.Equal(t, r.Common(), w.Common())

	self, err := Widen(g.radius, r)
	require.NoError(t, err)
	assert.Equal(t, r, self)

	l := Must(FromQuantity(g.length, metres(5)))
	_, err = Widen(g.radius, l)
	assert.ErrorIs(t, err, ErrNarrowing)

	_, err = Widen(g.wavelength, r)
	assert.ErrorIs(t, err, ErrNarrowing, "siblings are not ancestors")

	climb := Must(FromQuantity(g.rateOfClimb, units.New(3.0, units.Metre.Div(units.Second))))
	_, err = Widen(g.length, climb)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Widen(g.length, Value[float64]{})
	assert.ErrorIs(t, err, ErrNoKind)
}

func TestCast(t *testing.T) {
	g := newGeometry(t)
	l := Must(FromQuantity(g.length, metres(5)))

	r, err := Cast(g.radius, l)
	require.NoError(t, err)
	assert.Equal(t, g.radius, r.Kind())

	wl, err := Cast(g.wavelength, r)
	require.NoError(t, err)
	assert.Equal(t, g.wavelength, wl.Kind())

	_, err = Cast(g.duration, l)
	var mismatch *MismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, g.length, mismatch.Left)
	assert.Equal(t, g.duration, mismatch.Right)
	assert.ErrorIs(t, err, ErrKindMismatch)

	_, err = Cast(g.wavenumber, l)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestConvert(t *testing.T) {
	g := newGeometry(t)
	v := Must(FromQuantity(g.radius, units.New(12.0, units.Centimetre)))

	i := Convert[int64](v)
	assert.Equal(t, int64(12), i.Number())
	assert.Equal(t, units.Centimetre, i.Unit())
	assert.Equal(t, g.radius, i.Kind())
}

func TestIn(t *testing.T) {
	g := newGeometry(t)
	v := Must(FromQuantity(g.radius, units.New(1500, units.Millimetre)))

	m, err := Convert[float64](v).In(units.Metre)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, m.Number(), 1e-12)
	assert.Equal(t, g.radius, m.Kind())

	_, err = v.In(units.Metre)
	assert.ErrorIs(t, err, units.ErrLossyConversion)

	_, err = v.In(units.Second)
	assert.ErrorIs(t, err, units.ErrIncompatibleDimension)
}

func TestString(t *testing.T) {
	g := newGeometry(t)

	assert.Equal(t, "radius(5 m)", Must(FromQuantity(g.radius, metres(5))).String())
	assert.Equal(t, "one(2)", Must(FromNumber(g.one, 2.0)).String())
	assert.Equal(t, "0", Value[float64]{}.String())
}

func TestZeroValue(t *testing.T) {
	var v Value[int]
	assert.Nil(t, v.Kind())
	assert.Equal(t, units.One, v.Unit())

	v.Inc()
	v.Inc()
	assert.Equal(t, 2, v.Number())

	_, err := v.Add(v)
	assert.ErrorIs(t, err, ErrNoKind)
	_, err = v.Neg()
	assert.ErrorIs(t, err, ErrNoKind)
}
