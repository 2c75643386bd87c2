package ds

import (
	"reflect"
)

// Equal is the default equality used by containers that search for values. Two "no value" sentinels (nil interfaces,
// pointers, maps, slices, channels or funcs) are considered equal. Values without interface fields are compared with ==,
// all other values with reflect.DeepEqual, since == panics if an interface field holds an uncomparable value.
func Equal[T any](a, b T) bool {
	valueA := concreteValue(reflect.ValueOf(&a).Elem())
	valueB := concreteValue(reflect.ValueOf(&b).Elem())

	if nilA, nilB := isNil(valueA), isNil(valueB); nilA || nilB {
		return nilA && nilB
	}

	if valueA.Type() != valueB.Type() {
		return false
	}

	if strictlyComparable(valueA.Type()) {
		return valueA.Interface() == valueB.Interface()
	}

	return reflect.DeepEqual(valueA.Interface(), valueB.Interface())
}

// concreteValue unwraps interface values until it reaches the dynamic value or a nil interface.
func concreteValue(value reflect.Value) reflect.Value {
	for value.Kind() == reflect.Interface && !value.IsNil() {
		value = value.Elem()
	}

	return value
}

// strictlyComparable returns true if == can be applied to values of the given type without panicking.
func strictlyComparable(t reflect.Type) bool {
	//nolint:exhaustive // only composite kinds can hide uncomparable values
	switch t.Kind() {
	case reflect.Interface:
		return false
	case reflect.Array:
		return strictlyComparable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !strictlyComparable(t.Field(i).Type) {
				return false
			}
		}

		return true
	default:
		return t.Comparable()
	}
}

func isNil(value reflect.Value) bool {
	//nolint:exhaustive // only nillable kinds are relevant
	switch value.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return value.IsNil()
	default:
		return false
	}
}
