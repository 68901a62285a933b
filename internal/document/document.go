// Package document reads YAML files of bean type declarations and records
// and checks the records against them.
//
//	types:
//	  - name: Member
//	    fields:
//	      code: NumberString(min=1,max=18)
//	      zipCode: ZipCode
//	records:
//	  - type: Member
//	    fields:
//	      code: "1234567890123456789"
//	      zipCode: 00z-1111
package document

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
)

// ErrUnknownType is returned for a record whose type is not declared.
var ErrUnknownType = errors.New("unknown record type")

// Document is one YAML input file.
type Document struct {
	Types   []TypeDecl   `yaml:"types"`
	Records []RecordDecl `yaml:"records"`
}

// TypeDecl declares the constraint tags of one bean type.
type TypeDecl struct {
	Name   string    `yaml:"name"`
	Fields FieldTags `yaml:"fields"`
}

// FieldTags keeps the declaration order of a YAML mapping of field to tag.
type FieldTags []FieldTag

type FieldTag struct {
	Field string
	Tag   string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (ft *FieldTags) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fields must be a mapping of field name to constraint tag", node.Line)
	}
	out := make(FieldTags, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: constraint tag for %q must be a string", value.Line, key.Value)
		}
		out = append(out, FieldTag{Field: key.Value, Tag: value.Value})
	}
	*ft = out
	return nil
}

// RecordDecl is one record to check. Scalar values are read as strings;
// null and missing fields are absent.
type RecordDecl struct {
	Type   string             `yaml:"type"`
	Fields map[string]*string `yaml:"fields"`
}

// Bean returns the record as a beanvalidator.Record.
func (r RecordDecl) Bean() bv.Record {
	fields := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return bv.Record{Type: r.Type, Fields: fields}
}

// Parse decodes a document. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &doc, nil
}

// Declarations parses every type's tags into constraints, keyed by type name.
// Configurations are validated, so a bad declaration fails here as a
// configuration error.
func (d *Document) Declarations() (map[string][]bv.FieldConstraint, error) {
	decls := make(map[string][]bv.FieldConstraint, len(d.Types))
	for _, td := range d.Types {
		if td.Name == "" {
			return nil, fmt.Errorf("type declaration without a name")
		}
		if _, dup := decls[td.Name]; dup {
			return nil, fmt.Errorf("type %q declared twice", td.Name)
		}
		var constraints []bv.FieldConstraint
		for _, ft := range td.Fields {
			cs, err := bv.ParseTag(ft.Field, ft.Tag)
			if err != nil {
				return nil, fmt.Errorf("type %s field %s: %w", td.Name, ft.Field, err)
			}
			constraints = append(constraints, cs...)
		}
		if err := bv.ValidateConstraints(td.Name, constraints); err != nil {
			return nil, err
		}
		decls[td.Name] = constraints
	}
	return decls, nil
}

// Result holds the violations of one record.
type Result struct {
	Record     int // index in Records
	Type       string
	Violations bv.Violations
}

// Check evaluates every record against its type's declarations.
// It returns one Result per record, in order.
func (d *Document) Check(ev *bv.Evaluator) ([]Result, error) {
	decls, err := d.Declarations()
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(d.Records))
	for i, rec := range d.Records {
		constraints, ok := decls[rec.Type]
		if !ok {
			return nil, fmt.Errorf("record %d: %w %q", i, ErrUnknownType, rec.Type)
		}
		vs, err := ev.Evaluate(rec.Bean(), constraints)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		results = append(results, Result{Record: i, Type: rec.Type, Violations: vs})
	}
	return results, nil
}

// Count returns the total number of violations in results.
func Count(results []Result) int {
	n := 0
	for _, r := range results {
		n += len(r.Violations)
	}
	return n
}
