package units

import (
	"math"
	"reflect"
)

// Integer is the set of integer representations. Operations that only make
// sense for integers, such as the remainder family, are constrained to it so
// that they do not exist for floating-point quantities.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point representations.
type Float interface {
	~float32 | ~float64
}

// Number is the set of representations a Quantity may use. Every Number is
// totally ordered and supports increment and decrement.
type Number interface {
	Integer | Float
}

// isInteger reports whether R is an integer representation.
func isInteger[R Number]() bool {
	half := 0.5
	return R(half) == 0
}

// limits returns the lowest and highest finite values of R.
func limits[R Number]() (lo, hi R) {
	t := reflect.TypeOf((*R)(nil)).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := uint(t.Size() * 8)
		var l, h int64 = -1 << (bits - 1), 1<<(bits-1) - 1
		return R(l), R(h)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		bits := uint(t.Size() * 8)
		var h uint64 = math.MaxUint64 >> (64 - bits)
		return 0, R(h)
	case reflect.Float32:
		var h float64 = math.MaxFloat32
		return R(-h), R(h)
	default:
		var h float64 = math.MaxFloat64
		return R(-h), R(h)
	}
}
