package invalid

import bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"

type Member struct {
	Code   string `json:"code" constraint:"NumberString(min=5,max=1)"` // want "invalid constraint tag on field code: .*max \\(1\\) must be >= min \\(5\\)"
	Kana   string `json:"kana" constraint:"Katakana(spaces=true)"`     // want "invalid constraint tag on field kana: .*"
	Kind   string `json:"kind" constraint:"Email"`                     // want "invalid constraint tag on field kind: .*unknown constraint kind.*"
	Joined string `json:"joined" constraint:"DateFormat"`              // want "invalid constraint tag on field joined: .*"
	Age    int    `json:"age" constraint:"NumberString"`               // want "constraint tag on field age of non-string type int"
	Tags   []byte `constraint:"HalfNumber"`                            // want "constraint tag on field Tags of non-string type \\[\\]byte"
	Quoted string `constraint:"Pattern(regexp='[a-z]+)"`               // want "invalid constraint tag on field Quoted: .*"
}

type Order struct {
	Paid string `json:"paid"`
	Gift string `json:"gift"`
}

func (Order) DeclareConstraints() []bv.FieldConstraint {
	return []bv.FieldConstraint{
		bv.ConstrainKind("payd", bv.KindBoolean),      // want "DeclareConstraints names field \"payd\" which is not on Order \\(did you mean paid\\?\\)"
		bv.ConstrainKind("Gift", bv.KindYesOrNo),      // want "DeclareConstraints names field \"Gift\" which is not on Order \\(did you mean gift\\?\\)"
		bv.Constrain("total", bv.HalfNumberConfig{}), // want "DeclareConstraints names field \"total\" which is not on Order"
	}
}
