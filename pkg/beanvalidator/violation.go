package beanvalidator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Violation reports one failed constraint on one field.
type Violation struct {
	BeanType   string // Simple type name of the bean, e.g. "Member"
	Field      string
	Message    string // Rendered message with parameters substituted
	Constraint Kind
}

// ErrorCode returns "Invalid" followed by the field name with its first letter upper-cased.
func (v Violation) ErrorCode() string {
	return "Invalid" + capitalize(v.Field)
}

// Rendered returns the violation as "Type#field[message]".
func (v Violation) Rendered() string {
	return fmt.Sprintf("%s#%s[%s]", v.BeanType, v.Field, v.Message)
}

func (v Violation) String() string {
	return v.Rendered()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToTitle(r)) + s[size:]
}

// Violations is the ordered result of an evaluation.
type Violations []Violation

// Error implements the error interface so violations can be returned as one.
func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "no violations"
	}
	return strings.Join(vs.Rendered(), "; ")
}

// Messages returns every violation message in order.
func (vs Violations) Messages() []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Message
	}
	return out
}

// Rendered returns every violation in "Type#field[message]" form.
func (vs Violations) Rendered() []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Rendered()
	}
	return out
}

// Has reports whether field has at least one violation.
func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns the violations for field.
func (vs Violations) Get(field string) Violations {
	var out Violations
	for _, v := range vs {
		if v.Field == field {
			out = append(out, v)
		}
	}
	return out
}

// Fields returns the violated field names, first occurrence order, without duplicates.
func (vs Violations) Fields() []string {
	seen := make(map[string]bool, len(vs))
	var out []string
	for _, v := range vs {
		if !seen[v.Field] {
			seen[v.Field] = true
			out = append(out, v.Field)
		}
	}
	return out
}
