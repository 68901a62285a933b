// Package beanvalidator evaluates declarative field constraints against
// records ("beans") and reports human-readable violations.
//
// Constraints are declared with the constraint struct tag, by implementing
// ConstraintDeclarer, or passed to Evaluate as a list:
//
//	type Member struct {
//		Code    string `json:"code" constraint:"NumberString(min=1,max=18)"`
//		ZipCode string `json:"zipCode" constraint:"ZipCode"`
//		Kana    string `json:"kana" constraint:"Katakana(space=true,longMarks=true)"`
//	}
//
//	violations, err := beanvalidator.Validate(&member)
//
// A failed constraint is a Violation, not an error. Errors are reserved for
// a nil bean (argument errors) and malformed declarations (configuration errors).
// Empty and nil field values satisfy every constraint.
package beanvalidator
