// Package reflectutil provides shared reflection utilities for bean-validation.
package reflectutil

import (
	"reflect"
	"strings"
)

// JSONFieldName returns the JSON field name for a struct field.
// Returns the json tag name if present, otherwise the Go field name.
// Returns "-" for ignored fields.
func JSONFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}
	if idx := strings.Index(tag, ","); idx != -1 {
		tag = tag[:idx]
	}
	if tag == "" {
		return field.Name
	}
	return tag
}

// FieldPath returns the name a violation reports for a struct field:
// the JSON name, or the Go name when the field is hidden from JSON.
func FieldPath(field reflect.StructField) string {
	name := JSONFieldName(field)
	if name == "-" {
		return field.Name
	}
	return name
}

// FieldByJSONName finds a struct field value by its JSON name.
// Searches by exact match, capitalized version, and json tags.
func FieldByJSONName(val reflect.Value, typ reflect.Type, jsonName string) reflect.Value {
	// Unwrap pointers
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return reflect.Value{}
		}
		val = val.Elem()
		typ = typ.Elem()
	}
	if val.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	// Try direct field name match
	if field := val.FieldByName(jsonName); field.IsValid() {
		return field
	}

	// Try capitalized version (common: "zipCode" -> "ZipCode")
	if len(jsonName) > 0 {
		capitalized := strings.ToUpper(jsonName[:1]) + jsonName[1:]
		if field := val.FieldByName(capitalized); field.IsValid() {
			return field
		}
	}

	return fieldByTag(val, typ, jsonName)
}

// fieldByTag searches json tags, descending into embedded structs.
func fieldByTag(val reflect.Value, typ reflect.Type, jsonName string) reflect.Value {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if JSONFieldName(field) == jsonName {
			return val.Field(i)
		}
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if found := fieldByTag(val.Field(i), field.Type, jsonName); found.IsValid() {
				return found
			}
		}
	}
	return reflect.Value{}
}
