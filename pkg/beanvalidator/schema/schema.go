// Package schema renders declared bean constraints as JSON Schema.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
	"github.com/nakamurakj/bean-validation/pkg/internal/reflectutil"
)

// Generator generates JSON Schema for a bean type.
type Generator[T any] struct {
	reflector *jsonschema.Reflector
}

// NewGenerator creates a schema generator for T.
func NewGenerator[T any]() *Generator[T] {
	return &Generator[T]{reflector: newReflector()}
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		ExpandedStruct:             true,
		DoNotReference:             true,
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
	}
}

// Generate generates the schema for T with its declared constraints applied.
func (g *Generator[T]) Generate() (*jsonschema.Schema, error) {
	return generate(g.reflector, reflect.TypeFor[T]())
}

// GenerateJSON generates the schema as indented JSON.
func (g *Generator[T]) GenerateJSON() (string, error) {
	s, err := g.Generate()
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	return string(data), nil
}

// Generate generates the schema for T.
func Generate[T any]() (*jsonschema.Schema, error) {
	return NewGenerator[T]().Generate()
}

// GenerateForType generates the schema for a type known only at runtime.
func GenerateForType(t reflect.Type) (*jsonschema.Schema, error) {
	if t == nil {
		return nil, fmt.Errorf("schema: nil type")
	}
	return generate(newReflector(), t)
}

func generate(reflector *jsonschema.Reflector, t reflect.Type) (*jsonschema.Schema, error) {
	constraints, err := bv.Declare(t)
	if err != nil {
		return nil, err
	}
	s := reflector.ReflectFromType(reflectutil.UnwrapPointer(t))
	if s.Title == "" {
		s.Title = reflectutil.SimpleTypeName(t)
	}
	Apply(s, constraints)
	return s, nil
}

// ForConstraints builds an object schema for an untyped record. Every
// constrained field becomes an optional string property.
func ForConstraints(title string, constraints []bv.FieldConstraint) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Version:    jsonschema.Version,
		Title:      title,
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}
	for _, fc := range constraints {
		if _, ok := s.Properties.Get(fc.Field); !ok {
			s.Properties.Set(fc.Field, &jsonschema.Schema{Type: "string"})
		}
	}
	Apply(s, constraints)
	return s
}

// Apply adds each constraint to the matching property of an object schema.
// Constraints on fields without a property are skipped.
func Apply(s *jsonschema.Schema, constraints []bv.FieldConstraint) {
	if s == nil || s.Properties == nil {
		return
	}
	for _, fc := range constraints {
		prop, ok := s.Properties.Get(fc.Field)
		if !ok || prop == nil {
			continue
		}
		applyConstraint(prop, fc)
	}
}
