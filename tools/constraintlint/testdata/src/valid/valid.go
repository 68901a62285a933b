package valid

import bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"

type Address struct {
	ZipCode string `json:"zipCode" constraint:"ZipCode"`
	Pref    string `json:"pref"`
}

type Member struct {
	Address
	Code     string  `json:"code" constraint:"NumberString(min=1,max=18)"`
	Kana     string  `json:"kana" constraint:"Katakana(space=true,longMarks=true)"`
	TelNo    *string `json:"telNo,omitempty" constraint:"TelNo"`
	Joined   string  `json:"joined" constraint:"DateFormat(pattern='yyyy/MM/dd')"`
	Nickname string  `constraint:"Pattern(regexp='[a-z]+',message='lower case only')"`
	Age      int     `json:"age"`
}

type Code string

type Coupon struct {
	Code Code `json:"code" constraint:"HalfNumber"`
}

type Order struct {
	Paid    string
	Gift    string `json:"gift"`
	Charset string `json:"charset"`
}

func (Order) DeclareConstraints() []bv.FieldConstraint {
	return []bv.FieldConstraint{
		bv.ConstrainKind("Paid", bv.KindBoolean),
		bv.ConstrainKind("gift", bv.KindYesOrNo).WithMessage("yes or no"),
		bv.Constrain("charset", bv.CharsetConfig{}),
	}
}

type Registration struct {
	Member
}

func (r *Registration) DeclareConstraints() []bv.FieldConstraint {
	return []bv.FieldConstraint{
		bv.ConstrainKind("zipCode", bv.KindZipCode),
		bv.Constrain("code", bv.NumberStringConfig{Min: 1, Max: 18}),
	}
}

type Legacy struct {
	// nolint:constraintlint
	Count int `constraint:"NumberString"`
}
