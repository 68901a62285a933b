package beanvalidator

import (
	"fmt"

	verrors "github.com/nakamurakj/bean-validation/pkg/internal/errors"
)

// FieldConstraint declares that one field of a bean must satisfy one kind.
type FieldConstraint struct {
	Field   string // Field name as reported in violations
	Kind    Kind
	Config  Config // nil selects the registry default
	Message string // empty selects the registry default template
}

// Constrain declares cfg's kind on field.
func Constrain(field string, cfg Config) FieldConstraint {
	return FieldConstraint{Field: field, Kind: cfg.Kind(), Config: cfg}
}

// ConstrainKind declares kind on field with its default configuration.
func ConstrainKind(field string, kind Kind) FieldConstraint {
	return FieldConstraint{Field: field, Kind: kind}
}

// WithMessage returns a copy of fc using template instead of the default message.
func (fc FieldConstraint) WithMessage(template string) FieldConstraint {
	fc.Message = template
	return fc
}

// ValidateConstraints checks the configuration of every constraint in cs,
// using the kind's default where none is set. The first failure is returned
// as a configuration error located at beanName and the field.
func ValidateConstraints(beanName string, cs []FieldConstraint) error {
	for _, fc := range cs {
		if !fc.Kind.Valid() {
			return verrors.Configuration([]string{beanName, fc.Field}, fmt.Errorf("%w: %s", ErrUnknownKind, fc.Kind), "")
		}
		if _, err := resolveConfig(DefaultRegistry(), fc); err != nil {
			return locate(err, []string{beanName, fc.Field})
		}
	}
	return nil
}
