package beanvalidator_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
)

type address struct {
	ZipCode string `json:"zipCode" constraint:"ZipCode"`
}

type registration struct {
	address
	Code     string  `json:"code" constraint:"NumberString(min=1,max=18)"`
	Kana     *string `json:"kana,omitempty" constraint:"Katakana(space=true)"`
	Plain    string
	Internal string `json:"-" constraint:"HalfNumber"`
}

type coded struct {
	Value string
}

func (coded) DeclareConstraints() []bv.FieldConstraint {
	return []bv.FieldConstraint{bv.ConstrainKind("Value", bv.KindYesOrNo)}
}

type badTag struct {
	Code string `constraint:"NumberString(min=)"`
}

type badConfig struct {
	Born string `json:"born" constraint:"DateFormat"`
}

type intField struct {
	Age int `json:"age" constraint:"HalfNumber"`
}

func TestDeclare_Tags(t *testing.T) {
	got, err := bv.DeclareFor[registration]()
	require.NoError(t, err)
	assert.Equal(t, []bv.FieldConstraint{
		{Field: "zipCode", Kind: bv.KindZipCode, Config: bv.ZipCodeConfig{}},
		{Field: "code", Kind: bv.KindNumberString, Config: bv.NumberStringConfig{Min: 1, Max: 18}},
		{Field: "kana", Kind: bv.KindKatakana, Config: bv.KatakanaConfig{ScriptOptions: bv.ScriptOptions{Space: true}}},
		{Field: "Internal", Kind: bv.KindHalfNumber, Config: bv.HalfNumberConfig{}},
	}, got)
}

func TestDeclare_PointerTypeAndCache(t *testing.T) {
	a, err := bv.Declare(reflect.TypeOf(&registration{}))
	require.NoError(t, err)
	b, err := bv.Declare(reflect.TypeOf(&registration{}))
	require.NoError(t, err)
	require.NotEmpty(t, a)
	assert.Same(t, &a[0], &b[0])
}

func TestDeclare_Declarer(t *testing.T) {
	got, err := bv.DeclareFor[coded]()
	require.NoError(t, err)
	assert.Equal(t, []bv.FieldConstraint{{Field: "Value", Kind: bv.KindYesOrNo}}, got)
}

func TestDeclare_Errors(t *testing.T) {
	_, err := bv.DeclareFor[badTag]()
	assert.True(t, bv.IsConfigurationError(err))
	assert.ErrorIs(t, err, bv.ErrInvalidTag)

	_, err = bv.DeclareFor[badConfig]()
	assert.True(t, bv.IsConfigurationError(err))
	assert.ErrorIs(t, err, bv.ErrInvalidConfig)

	_, err = bv.DeclareFor[intField]()
	assert.True(t, bv.IsConfigurationError(err))
	assert.ErrorIs(t, err, bv.ErrUnsupportedValue)

	_, err = bv.DeclareFor[int]()
	assert.True(t, bv.IsArgumentError(err))
	assert.ErrorIs(t, err, bv.ErrNotBean)

	_, err = bv.Declare(nil)
	assert.ErrorIs(t, err, bv.ErrNilBean)
}

func TestValidate_UsesTags(t *testing.T) {
	bean := &registration{
		address: address{ZipCode: "00z-1111"},
		Code:    "1234567890123456789",
		Kana:    strPtr("ヤマダ　タロウ"),
	}
	vs, err := bv.Validate(bean)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"registration#zipCode[The format of the zipcode is invalid.]",
		"registration#code[NumberString length must be between 1 and 18]",
	}, vs.Rendered())
}

func TestValidate_Declarer(t *testing.T) {
	vs, err := bv.Validate(coded{Value: "maybe"})
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "coded#Value[The format of \"yes\" or \"no\" is invalid.]", vs[0].Rendered())
}

func TestValidate_NilBean(t *testing.T) {
	_, err := bv.Validate(nil)
	assert.True(t, bv.IsArgumentError(err))

	var r *registration
	_, err = bv.Validate(r)
	assert.ErrorIs(t, err, bv.ErrNilBean)
}

func TestValidate_RecordDeclaresNothing(t *testing.T) {
	vs, err := bv.Validate(bv.Record{Type: "Row", Fields: map[string]any{"a": "b"}})
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestValidateConstraints(t *testing.T) {
	tests := []struct {
		name    string
		cs      []bv.FieldConstraint
		wantErr error
		wantLoc []string
	}{
		{
			name: "valid and defaults",
			cs: []bv.FieldConstraint{
				bv.ConstrainKind("zip", bv.KindZipCode),
				bv.Constrain("code", bv.NumberStringConfig{Min: 1, Max: 18}),
			},
		},
		{
			name:    "pattern default has no regexp",
			cs:      []bv.FieldConstraint{bv.ConstrainKind("slug", bv.KindPattern)},
			wantErr: bv.ErrInvalidConfig,
			wantLoc: []string{"Event", "slug"},
		},
		{
			name:    "pointer config",
			cs:      []bv.FieldConstraint{bv.Constrain("zip", &bv.ZipCodeConfig{})},
			wantErr: bv.ErrInvalidConfig,
			wantLoc: []string{"Event", "zip"},
		},
		{
			name:    "unknown kind",
			cs:      []bv.FieldConstraint{{Field: "x", Kind: bv.Kind(200)}},
			wantErr: bv.ErrUnknownKind,
			wantLoc: []string{"Event", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bv.ValidateConstraints("Event", tt.cs)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, bv.IsConfigurationError(err))
			var verr *bv.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantLoc, verr.Loc)
		})
	}
}
