package reflectutil

import "reflect"

// UnwrapPointer returns the element type if pointer, otherwise returns the type itself.
func UnwrapPointer(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// UnwrapValue unwraps pointers and interfaces to get the underlying value.
// A nil pointer or interface is returned as is.
func UnwrapValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}

// IsNil reports whether v holds no value: invalid, or a nil pointer,
// interface, map or slice.
func IsNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// SimpleTypeName returns the unqualified name of a type, looking through pointers.
func SimpleTypeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	t = UnwrapPointer(t)
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// StringValue extracts a string from v.
// present is false for nil pointers and interfaces; ok is false when the
// underlying kind is not a string.
func StringValue(v reflect.Value) (s string, present, ok bool) {
	v = UnwrapValue(v)
	if IsNil(v) {
		return "", false, true
	}
	if v.Kind() != reflect.String {
		return "", true, false
	}
	return v.String(), true, true
}
