package lo

import (
	"github.com/iotaledger/linkedds/constraints"
)

// Cond is a 1 line if/else statement.
func Cond[T any](condition bool, trueValue, falseValue T) T {
	if condition {
		return trueValue
	}

	return falseValue
}

// Comparator is a generic comparator for two values. It returns 0 if the two values are equal, -1 if the first value is
// smaller and 1 if the first value is larger.
func Comparator[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// PanicOnErr panics if err is not nil and otherwise returns the result.
func PanicOnErr[T any](result T, err error) T {
	if err != nil {
		panic(err)
	}

	return result
}

// Zero returns the zero value of the given type.
func Zero[T any]() (zero T) {
	return zero
}
