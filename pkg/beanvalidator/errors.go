package beanvalidator

import (
	"errors"

	verrors "github.com/nakamurakj/bean-validation/pkg/internal/errors"
)

// Error is the failure type returned by Evaluate, Validate and Declare.
// Failed constraints are not errors; they are reported as Violations.
type Error = verrors.Error

// ErrorType classifies an Error.
type ErrorType = verrors.ErrorType

// Error type constants.
const (
	ErrorTypeArgument      = verrors.ErrorTypeArgument
	ErrorTypeConfiguration = verrors.ErrorTypeConfiguration
)

// Sentinel causes, matchable with errors.Is.
var (
	// ErrNilBean: the bean passed for evaluation is nil.
	ErrNilBean = errors.New("bean is nil")
	// ErrNotBean: the bean is neither a struct nor a Bean implementation.
	ErrNotBean = errors.New("bean must be a struct or implement Bean")
	// ErrUnknownKind: a constraint names a kind outside the closed set.
	ErrUnknownKind = errors.New("unknown constraint kind")
	// ErrInvalidConfig: a constraint configuration violates its kind's schema.
	ErrInvalidConfig = errors.New("invalid constraint configuration")
	// ErrFieldNotFound: a constraint names a field the bean does not have.
	ErrFieldNotFound = errors.New("field not found")
	// ErrUnsupportedValue: a constrained field does not hold a string.
	ErrUnsupportedValue = errors.New("constrained field must hold a string")
	// ErrInvalidTag: a constraint struct tag cannot be parsed.
	ErrInvalidTag = errors.New("invalid constraint tag")
)

// IsArgumentError reports whether err is a caller usage error, such as a nil bean.
func IsArgumentError(err error) bool {
	return verrors.HasType(err, ErrorTypeArgument)
}

// IsConfigurationError reports whether err comes from a malformed constraint declaration.
func IsConfigurationError(err error) bool {
	return verrors.HasType(err, ErrorTypeConfiguration)
}
