package beanvalidator

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	verrors "github.com/nakamurakj/bean-validation/pkg/internal/errors"
	"github.com/nakamurakj/bean-validation/pkg/internal/reflectutil"
	"github.com/nakamurakj/bean-validation/pkg/logger"
)

// Evaluator checks declared constraints against beans.
// It holds no per-call state and is safe for concurrent use.
type Evaluator struct {
	registry *Registry
	logger   *slog.Logger
}

// NewEvaluator returns an Evaluator backed by the default registry.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		registry: DefaultRegistry(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt.apply(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// Validate declares the constraints of bean's type and evaluates them
// with the default evaluator.
func Validate(bean any) (Violations, error) {
	return defaultEvaluator.Validate(bean)
}

// Evaluate checks constraints against bean with the default evaluator.
func Evaluate(bean any, constraints []FieldConstraint) (Violations, error) {
	return defaultEvaluator.Evaluate(bean, constraints)
}

// Validate declares the constraints of bean's type and evaluates them.
// A bean implementing ConstraintDeclarer supplies its own declarations.
func (e *Evaluator) Validate(bean any) (Violations, error) {
	if isNilBean(bean) {
		return nil, verrors.Argument(ErrNilBean, "")
	}
	var constraints []FieldConstraint
	if d, ok := bean.(ConstraintDeclarer); ok {
		constraints = d.DeclareConstraints()
	} else {
		var err error
		if constraints, err = Declare(reflect.TypeOf(bean)); err != nil {
			return nil, err
		}
	}
	return e.Evaluate(bean, constraints)
}

// Evaluate checks each constraint, in order, against the matching field of bean.
//
// Absent values (nil, nil pointer, empty string) satisfy every constraint.
// A failed check becomes a Violation; a malformed declaration aborts the
// call with a configuration *Error and no violations.
func (e *Evaluator) Evaluate(bean any, constraints []FieldConstraint) (Violations, error) {
	acc, err := accessorFor(bean)
	if err != nil {
		return nil, err
	}

	var violations Violations
	for _, fc := range constraints {
		loc := []string{acc.name, fc.Field}
		v, err := e.check(acc, fc)
		if err != nil {
			return nil, locate(err, loc)
		}
		if v != nil {
			e.logger.Debug("constraint violated",
				logger.Bean(acc.name),
				slog.String("field", fc.Field),
				slog.String("kind", fc.Kind.String()),
				slog.String("message", v.Message))
			violations = append(violations, *v)
		}
	}
	return violations, nil
}

func (e *Evaluator) check(acc beanAccessor, fc FieldConstraint) (*Violation, error) {
	if !fc.Kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, fc.Kind)
	}
	pred, err := e.registry.Resolve(fc.Kind)
	if err != nil {
		return nil, err
	}
	cfg, err := e.config(fc)
	if err != nil {
		return nil, err
	}
	template := fc.Message
	if template == "" {
		if template, err = e.registry.DefaultMessage(fc.Kind); err != nil {
			return nil, err
		}
	}

	raw, found := acc.lookup(fc.Field)
	if !found {
		return nil, ErrFieldNotFound
	}
	s, present, ok := reflectutil.StringValue(raw)
	if !ok {
		return nil, fmt.Errorf("%w, got %s", ErrUnsupportedValue, raw.Type())
	}
	if !present || s == "" {
		e.logger.Debug("skipping absent value",
			logger.Bean(acc.name),
			slog.String("field", fc.Field),
			slog.String("kind", fc.Kind.String()))
		return nil, nil
	}

	e.logger.Debug("evaluating constraint",
		logger.Bean(acc.name),
		slog.String("field", fc.Field),
		slog.String("kind", fc.Kind.String()))
	valid, err := pred(s, cfg)
	if err != nil {
		return nil, err
	}
	if valid {
		return nil, nil
	}
	return &Violation{
		BeanType:   acc.name,
		Field:      fc.Field,
		Message:    Interpolate(template, cfg.Params()),
		Constraint: fc.Kind,
	}, nil
}

// config resolves and validates the configuration a constraint runs with.
func (e *Evaluator) config(fc FieldConstraint) (Config, error) {
	return resolveConfig(e.registry, fc)
}

func resolveConfig(reg *Registry, fc FieldConstraint) (Config, error) {
	cfg := fc.Config
	if cfg == nil {
		var err error
		if cfg, err = reg.DefaultConfig(fc.Kind); err != nil {
			return nil, err
		}
	}
	if reflect.TypeOf(cfg).Kind() == reflect.Pointer {
		return nil, fmt.Errorf("%w: %T must be passed by value", ErrInvalidConfig, cfg)
	}
	if cfg.Kind() != fc.Kind {
		return nil, fmt.Errorf("%w: %s constraint given %s config", ErrInvalidConfig, fc.Kind, cfg.Kind())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// locate attaches the declaration location to err as a configuration error.
func locate(err error, loc []string) error {
	var e *Error
	if errors.As(err, &e) {
		located := *e
		located.Loc = loc
		return &located
	}
	return verrors.Configuration(loc, err, "")
}

type beanAccessor struct {
	name   string
	lookup func(field string) (reflect.Value, bool)
}

func isNilBean(bean any) bool {
	return bean == nil || reflectutil.IsNil(reflect.ValueOf(bean))
}

func accessorFor(bean any) (beanAccessor, error) {
	if isNilBean(bean) {
		return beanAccessor{}, verrors.Argument(ErrNilBean, "")
	}
	if b, ok := bean.(Bean); ok {
		return beanAccessor{
			name: b.BeanName(),
			lookup: func(field string) (reflect.Value, bool) {
				v, ok := b.FieldValue(field)
				return reflect.ValueOf(v), ok
			},
		}, nil
	}

	val := reflect.ValueOf(bean)
	typ := val.Type()
	if reflectutil.UnwrapPointer(typ).Kind() != reflect.Struct {
		return beanAccessor{}, verrors.Argument(ErrNotBean, "got %s", typ)
	}
	return beanAccessor{
		name: reflectutil.SimpleTypeName(typ),
		lookup: func(field string) (reflect.Value, bool) {
			v := reflectutil.FieldByJSONName(val, typ, field)
			return v, v.IsValid()
		},
	}, nil
}
