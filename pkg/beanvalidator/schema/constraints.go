package schema

import (
	"strings"
	"unicode"

	"github.com/invopop/jsonschema"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
	"github.com/nakamurakj/bean-validation/pkg/beanvalidator/predicate"
)

// ExtensionKey lists the constraint kinds declared on a property.
const ExtensionKey = "x-constraints"

// Patterns use ECMA-262 syntax so browsers and schema validators accept them.
const (
	numberStringPattern = `^[+-]?[0-9\uFF10-\uFF19]+$`
	halfKatakanaPattern = `^[\uFF65-\uFF9F]*$`
)

// applyConstraint maps one constraint onto a property schema.
func applyConstraint(prop *jsonschema.Schema, fc bv.FieldConstraint) {
	cfg := fc.Config
	if cfg == nil {
		var err error
		if cfg, err = bv.DefaultRegistry().DefaultConfig(fc.Kind); err != nil {
			return
		}
	}

	switch c := cfg.(type) {
	case bv.NumberStringConfig:
		setMinLength(prop, c.Min)
		setMaxLength(prop, c.Max)
		addPattern(prop, numberStringPattern)
	case bv.HalfNumberConfig:
		addPattern(prop, predicate.HalfNumberPattern)
	case bv.KatakanaConfig:
		addPattern(prop, blockPattern(`\u30A0-\u30FF`, c.ScriptOptions))
	case bv.HiraganaConfig:
		addPattern(prop, blockPattern(`\u3040-\u309F`, c.ScriptOptions))
	case bv.HalfKatakanaConfig:
		addPattern(prop, halfKatakanaPattern)
	case bv.TelNoConfig:
		if c.Pattern != "" {
			addPattern(prop, anchored(c.Pattern))
		} else {
			addPattern(prop, predicate.TelNoLookaroundPattern)
		}
	case bv.ZipCodeConfig:
		p := c.Pattern
		if p == "" {
			p = predicate.ZipCodePattern
		}
		addPattern(prop, anchored(p))
	case bv.DateFormatConfig:
		appendDescription(prop, "Date in "+c.Pattern+" format.")
	case bv.CharsetConfig:
		appendDescription(prop, "Name of a supported character set.")
	case bv.BooleanConfig:
		addPattern(prop, tokenPattern(predicate.BooleanTokens()))
	case bv.YesOrNoConfig:
		addPattern(prop, tokenPattern(predicate.YesOrNoTokens()))
	case bv.PatternConfig:
		addPattern(prop, anchored(c.Regexp))
	}

	if prop.Extras == nil {
		prop.Extras = make(map[string]any)
	}
	kinds, _ := prop.Extras[ExtensionKey].([]string)
	prop.Extras[ExtensionKey] = append(kinds, fc.Kind.String())
}

func anchored(p string) string {
	return "^(?:" + p + ")$"
}

// addPattern sets the property pattern, or adds an allOf branch when one is
// already present, since a schema holds a single pattern keyword.
func addPattern(prop *jsonschema.Schema, pattern string) {
	switch prop.Pattern {
	case "":
		prop.Pattern = pattern
	case pattern:
	default:
		prop.AllOf = append(prop.AllOf, &jsonschema.Schema{Pattern: pattern})
	}
}

func setMinLength(prop *jsonschema.Schema, n int) {
	v := uint64(n)
	if prop.MinLength == nil || *prop.MinLength < v {
		prop.MinLength = &v
	}
}

func setMaxLength(prop *jsonschema.Schema, n int) {
	v := uint64(n)
	if prop.MaxLength == nil || *prop.MaxLength > v {
		prop.MaxLength = &v
	}
}

func appendDescription(prop *jsonschema.Schema, text string) {
	if prop.Description == "" {
		prop.Description = text
		return
	}
	prop.Description += " " + text
}

// blockPattern allows runes in block plus the characters opts ignores.
func blockPattern(block string, opts bv.ScriptOptions) string {
	var b strings.Builder
	b.WriteString("^[")
	b.WriteString(block)
	if opts.Space {
		b.WriteString(`\u3000`)
	}
	if opts.HalfSpace {
		b.WriteString(" ")
	}
	if opts.LongMarks {
		b.WriteString(`\u30FC`)
	}
	b.WriteString("]*$")
	return b.String()
}

// tokenPattern matches any of the tokens ignoring ASCII case, e.g. [Yy][Ee][Ss].
func tokenPattern(tokens []string) string {
	alts := make([]string, len(tokens))
	for i, tok := range tokens {
		var b strings.Builder
		for _, r := range tok {
			upper, lower := unicode.ToUpper(r), unicode.ToLower(r)
			if upper == lower {
				b.WriteRune(r)
				continue
			}
			b.WriteByte('[')
			b.WriteRune(upper)
			b.WriteRune(lower)
			b.WriteByte(']')
		}
		alts[i] = b.String()
	}
	return "^(?:" + strings.Join(alts, "|") + ")$"
}
