package beanvalidator

// Bean is a record that exposes its fields by name.
// Structs need not implement it; their fields are read by reflection.
type Bean interface {
	BeanName() string
	// FieldValue returns the field's value and whether the field exists.
	FieldValue(name string) (any, bool)
}

// Record is a map-backed Bean for untyped payloads.
// Declared fields missing from Fields read as absent.
type Record struct {
	Type   string
	Fields map[string]any
}

func (r Record) BeanName() string { return r.Type }

func (r Record) FieldValue(name string) (any, bool) {
	return r.Fields[name], true
}
