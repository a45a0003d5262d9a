package viewmock

import (
	"reflect"
)

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}

	return false
}

// valuesEqual compares with the value's own Equal method when it has one
// (time.Time and friends) and falls back to reflect.DeepEqual.
func valuesEqual(a, b any) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}

	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)

	if eq := av.MethodByName("Equal"); eq.IsValid() {
		t := eq.Type()
		if t.NumIn() == 1 && t.NumOut() == 1 && t.Out(0).Kind() == reflect.Bool && bv.Type().AssignableTo(t.In(0)) {
			return eq.Call([]reflect.Value{bv})[0].Bool()
		}
	}

	return reflect.DeepEqual(a, b)
}
