package beanvalidator

import (
	"reflect"
	"sync"

	verrors "github.com/nakamurakj/bean-validation/pkg/internal/errors"
	"github.com/nakamurakj/bean-validation/pkg/internal/reflectutil"
)

// ConstraintDeclarer is implemented by types that list their constraints in
// code instead of struct tags.
type ConstraintDeclarer interface {
	DeclareConstraints() []FieldConstraint
}

var declarerType = reflect.TypeFor[ConstraintDeclarer]()

// declarations caches Declare results per type.
var declarations sync.Map // map[reflect.Type][]FieldConstraint

// DeclareFor returns the constraints declared by T.
func DeclareFor[T any]() ([]FieldConstraint, error) {
	return Declare(reflect.TypeFor[T]())
}

// Declare returns the constraints declared by typ, in field order.
//
// A type implementing ConstraintDeclarer (on its value or pointer) is asked
// for its declarations on a zero value. Otherwise every field carrying a
// constraint tag contributes, embedded structs included, under its JSON name.
// Results are cached; callers must not modify the returned slice.
func Declare(typ reflect.Type) ([]FieldConstraint, error) {
	if typ == nil {
		return nil, verrors.Argument(ErrNilBean, "")
	}
	if cached, ok := declarations.Load(typ); ok {
		return cached.([]FieldConstraint), nil
	}

	constraints, err := declare(typ)
	if err != nil {
		return nil, err
	}
	actual, _ := declarations.LoadOrStore(typ, constraints)
	return actual.([]FieldConstraint), nil
}

func declare(typ reflect.Type) ([]FieldConstraint, error) {
	base := reflectutil.UnwrapPointer(typ)
	if base.Implements(declarerType) {
		return reflect.Zero(base).Interface().(ConstraintDeclarer).DeclareConstraints(), nil
	}
	if reflect.PointerTo(base).Implements(declarerType) {
		return reflect.New(base).Interface().(ConstraintDeclarer).DeclareConstraints(), nil
	}
	if base.Kind() != reflect.Struct {
		// Bean implementations without tags declare nothing.
		if typ.Implements(reflect.TypeFor[Bean]()) {
			return nil, nil
		}
		return nil, verrors.Argument(ErrNotBean, "got %s", typ)
	}

	var out []FieldConstraint
	if err := collectTags(base, reflectutil.SimpleTypeName(base), &out); err != nil {
		return nil, err
	}
	if err := ValidateConstraints(reflectutil.SimpleTypeName(base), out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectTags(typ reflect.Type, beanName string, out *[]FieldConstraint) error {
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag, tagged := field.Tag.Lookup(TagName)
		if !tagged {
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				if err := collectTags(field.Type, beanName, out); err != nil {
					return err
				}
			}
			continue
		}

		name := reflectutil.FieldPath(field)
		if reflectutil.UnwrapPointer(field.Type).Kind() != reflect.String {
			return verrors.Configuration([]string{beanName, name}, ErrUnsupportedValue, "field type %s", field.Type)
		}
		constraints, err := ParseTag(name, tag)
		if err != nil {
			return verrors.Configuration([]string{beanName, name}, err, "")
		}
		*out = append(*out, constraints...)
	}
	return nil
}
