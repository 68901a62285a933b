package beanvalidator

import (
	"fmt"
	"strconv"
	"strings"
)

// TagName is the struct tag holding constraint declarations.
const TagName = "constraint"

// ParseTag parses a constraint tag for field.
//
// The tag is a semicolon-separated list of kinds, each with optional
// parameters in parentheses:
//
//	constraint:"NumberString(min=1,max=18);HalfNumber"
//	constraint:"DateFormat(pattern='yyyy/MM/dd',message='bad date')"
//
// Values are integers, true/false, or single-quoted strings where \' and \\
// escape a quote and a backslash. Parameters left out keep the kind's default.
func ParseTag(field, tag string) ([]FieldConstraint, error) {
	items, err := splitTopLevel(tag, ';')
	if err != nil {
		return nil, err
	}
	var out []FieldConstraint
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fc, err := parseTagItem(field, item)
		if err != nil {
			return nil, err
		}
		out = append(out, fc)
	}
	return out, nil
}

type tagParam struct {
	name  string
	value any // int, bool or string
}

func parseTagItem(field, item string) (FieldConstraint, error) {
	name, args := item, ""
	if open := strings.IndexByte(item, '('); open >= 0 {
		if !strings.HasSuffix(item, ")") {
			return FieldConstraint{}, fmt.Errorf("%w: %q is missing a closing parenthesis", ErrInvalidTag, item)
		}
		name, args = item[:open], item[open+1:len(item)-1]
	}
	kind, err := ParseKind(name)
	if err != nil {
		return FieldConstraint{}, fmt.Errorf("%w: %w", ErrInvalidTag, err)
	}

	params, err := parseTagParams(args)
	if err != nil {
		return FieldConstraint{}, err
	}
	cfg, message, err := buildConfig(kind, params)
	if err != nil {
		return FieldConstraint{}, err
	}
	return FieldConstraint{Field: field, Kind: kind, Config: cfg, Message: message}, nil
}

func parseTagParams(args string) ([]tagParam, error) {
	parts, err := splitTopLevel(args, ',')
	if err != nil {
		return nil, err
	}
	var params []tagParam
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		eq := strings.IndexByte(part, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("%w: parameter %q is not name=value", ErrInvalidTag, part)
		}
		value, err := parseTagValue(strings.TrimSpace(part[eq+1:]))
		if err != nil {
			return nil, err
		}
		params = append(params, tagParam{name: strings.TrimSpace(part[:eq]), value: value})
	}
	return params, nil
}

func parseTagValue(raw string) (any, error) {
	switch {
	case strings.HasPrefix(raw, "'"):
		return unquote(raw)
	case raw == "true":
		return true, nil
	case raw == "false":
		return false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: value %q is not an integer, boolean or quoted string", ErrInvalidTag, raw)
	}
	return n, nil
}

func unquote(raw string) (string, error) {
	if len(raw) < 2 || raw[len(raw)-1] != '\'' {
		return "", fmt.Errorf("%w: unterminated string %s", ErrInvalidTag, raw)
	}
	body := raw[1 : len(raw)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		switch c := body[i]; c {
		case '\\':
			if i+1 == len(body) {
				return "", fmt.Errorf("%w: dangling escape in %s", ErrInvalidTag, raw)
			}
			i++
			b.WriteByte(body[i])
		case '\'':
			return "", fmt.Errorf("%w: unescaped quote in %s", ErrInvalidTag, raw)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// splitTopLevel splits s on sep outside quotes and parentheses.
func splitTopLevel(s string, sep byte) ([]string, error) {
	var (
		parts   []string
		start   int
		depth   int
		inQuote bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote && c == '\\':
			i++
		case c == '\'':
			inQuote = !inQuote
		case inQuote:
		case c == '(':
			depth++
		case c == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced parenthesis in %q", ErrInvalidTag, s)
			}
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	if inQuote {
		return nil, fmt.Errorf("%w: unterminated string in %q", ErrInvalidTag, s)
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced parenthesis in %q", ErrInvalidTag, s)
	}
	return append(parts, s[start:]), nil
}

// buildConfig applies tag parameters over the kind's default configuration.
func buildConfig(kind Kind, params []tagParam) (Config, string, error) {
	cfg, err := DefaultRegistry().DefaultConfig(kind)
	if err != nil {
		return nil, "", err
	}
	var message string
	for _, p := range params {
		if p.name == ParamMessage {
			if message, err = stringParam(kind, p); err != nil {
				return nil, "", err
			}
			continue
		}
		if cfg, err = setParam(cfg, p); err != nil {
			return nil, "", err
		}
	}
	return cfg, message, nil
}

func setParam(cfg Config, p tagParam) (Config, error) {
	var err error
	switch c := cfg.(type) {
	case NumberStringConfig:
		switch p.name {
		case ParamMin:
			c.Min, err = intParam(c.Kind(), p)
		case ParamMax:
			c.Max, err = intParam(c.Kind(), p)
		default:
			return nil, unknownParam(c.Kind(), p)
		}
		return c, err
	case KatakanaConfig:
		c.ScriptOptions, err = setScriptParam(c.Kind(), c.ScriptOptions, p)
		return c, err
	case HiraganaConfig:
		c.ScriptOptions, err = setScriptParam(c.Kind(), c.ScriptOptions, p)
		return c, err
	case TelNoConfig:
		if p.name != ParamPattern {
			return nil, unknownParam(c.Kind(), p)
		}
		c.Pattern, err = stringParam(c.Kind(), p)
		return c, err
	case ZipCodeConfig:
		if p.name != ParamPattern {
			return nil, unknownParam(c.Kind(), p)
		}
		c.Pattern, err = stringParam(c.Kind(), p)
		return c, err
	case DateFormatConfig:
		if p.name != ParamPattern {
			return nil, unknownParam(c.Kind(), p)
		}
		c.Pattern, err = stringParam(c.Kind(), p)
		return c, err
	case PatternConfig:
		if p.name != ParamRegexp {
			return nil, unknownParam(c.Kind(), p)
		}
		c.Regexp, err = stringParam(c.Kind(), p)
		return c, err
	}
	return nil, unknownParam(cfg.Kind(), p)
}

func setScriptParam(kind Kind, opts ScriptOptions, p tagParam) (ScriptOptions, error) {
	var err error
	switch p.name {
	case ParamSpace:
		opts.Space, err = boolParam(kind, p)
	case ParamHalfSpace:
		opts.HalfSpace, err = boolParam(kind, p)
	case ParamLongMarks:
		opts.LongMarks, err = boolParam(kind, p)
	default:
		err = unknownParam(kind, p)
	}
	return opts, err
}

func unknownParam(kind Kind, p tagParam) error {
	return fmt.Errorf("%w: %s has no parameter %q", ErrInvalidTag, kind, p.name)
}

func intParam(kind Kind, p tagParam) (int, error) {
	n, ok := p.value.(int)
	if !ok {
		return 0, fmt.Errorf("%w: %s.%s must be an integer", ErrInvalidTag, kind, p.name)
	}
	return n, nil
}

func boolParam(kind Kind, p tagParam) (bool, error) {
	b, ok := p.value.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s.%s must be true or false", ErrInvalidTag, kind, p.name)
	}
	return b, nil
}

func stringParam(kind Kind, p tagParam) (string, error) {
	s, ok := p.value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s.%s must be a quoted string", ErrInvalidTag, kind, p.name)
	}
	return s, nil
}
