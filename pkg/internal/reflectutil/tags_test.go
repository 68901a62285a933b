package reflectutil

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testTagStruct struct {
	ZipCode  string `json:"zipCode"`
	TelNo    string `json:"telNo,omitempty"`
	Kana     string
	Internal string `json:"-"`
	Bare     string `json:",omitempty"`
}

func TestJSONFieldName(t *testing.T) {
	tests := []struct {
		name     string
		field    reflect.StructField
		expected string
	}{
		{"no tag", reflect.StructField{Name: "Kana", Type: reflect.TypeOf("")}, "Kana"},
		{"simple tag", reflect.StructField{Name: "X", Type: reflect.TypeOf(""), Tag: `json:"x"`}, "x"},
		{"with omitempty", reflect.StructField{Name: "X", Type: reflect.TypeOf(""), Tag: `json:"x,omitempty"`}, "x"},
		{"options only", reflect.StructField{Name: "X", Type: reflect.TypeOf(""), Tag: `json:",omitempty"`}, "X"},
		{"ignored", reflect.StructField{Name: "X", Type: reflect.TypeOf(""), Tag: `json:"-"`}, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JSONFieldName(tt.field))
		})
	}
}

func TestFieldPath(t *testing.T) {
	typ := reflect.TypeOf(testTagStruct{})

	internal, _ := typ.FieldByName("Internal")
	assert.Equal(t, "Internal", FieldPath(internal))

	zip, _ := typ.FieldByName("ZipCode")
	assert.Equal(t, "zipCode", FieldPath(zip))
}

func TestFieldByJSONName(t *testing.T) {
	val := reflect.ValueOf(testTagStruct{ZipCode: "001-1111", Kana: "カナ"})
	typ := reflect.TypeOf(testTagStruct{})

	tests := []struct {
		name      string
		jsonName  string
		wantValid bool
		wantValue any
	}{
		{"by json tag", "zipCode", true, "001-1111"},
		{"by field name", "Kana", true, "カナ"},
		{"by lowercase (capitalized)", "kana", true, "カナ"},
		{"not found", "nonexistent", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FieldByJSONName(val, typ, tt.jsonName)
			require.Equal(t, tt.wantValid, got.IsValid())
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, got.Interface())
			}
		})
	}
}

func TestFieldByJSONName_Pointer(t *testing.T) {
	val := &testTagStruct{ZipCode: "001-1111"}
	field := FieldByJSONName(reflect.ValueOf(val), reflect.TypeOf(val), "zipCode")
	require.True(t, field.IsValid())
	assert.Equal(t, "001-1111", field.String())
}

func TestFieldByJSONName_NilPointer(t *testing.T) {
	var val *testTagStruct
	field := FieldByJSONName(reflect.ValueOf(val), reflect.TypeOf(val), "zipCode")
	assert.False(t, field.IsValid())
}

func TestFieldByJSONName_NotStruct(t *testing.T) {
	field := FieldByJSONName(reflect.ValueOf("x"), reflect.TypeOf("x"), "zipCode")
	assert.False(t, field.IsValid())
}

func TestFieldByJSONName_Embedded(t *testing.T) {
	type address struct {
		Postal string `json:"zip"`
	}
	type member struct {
		address
		Name string `json:"name"`
	}

	val := reflect.ValueOf(member{address: address{Postal: "100-0001"}})
	field := FieldByJSONName(val, val.Type(), "zip")
	require.True(t, field.IsValid())
	assert.Equal(t, "100-0001", field.String())
}
