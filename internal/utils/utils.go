package utils

import "reflect"

// Abs32 - Returns the absolute value of a signed 32 bit hash code.
// The one exception is math.MinInt32 which has no positive counterpart, its negation wraps
// around and the value is returned unchanged (still negative). That boundary is left
// unguarded on purpose, callers deriving a bucket number from it will get an out of range index.
func Abs32(hashCode int32) int32 {
	if hashCode < 0 {
		return -hashCode
	}

	return hashCode
}

// IsNil - Returns true if the given key is a nil reference, i.e. a nil pointer or an
// interface typed key holding nil (or holding nothing at all). Keys of value kinds such as
// integers and strings are never nil, regardless of being zero valued.
func IsNil(key any) bool {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	case reflect.UnsafePointer:
		return v.Pointer() == 0
	}

	return false
}
