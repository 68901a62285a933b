package beanvalidator

import (
	"fmt"

	"github.com/nakamurakj/bean-validation/pkg/beanvalidator/predicate"
)

// Config is the per-declaration configuration of a constraint. Each kind has
// exactly one Config variant; the set is sealed.
//
// Configs are plain values and immutable once built. Pass them by value:
// a pointer to a variant is not accepted by the evaluator.
type Config interface {
	// Kind returns the kind this variant configures.
	Kind() Kind
	// Params lists the parameters in declaration order, for message templates.
	Params() []Param
	// Validate checks the parameters against the kind's schema.
	Validate() error

	isConfig()
}

// Param is one named configuration value.
type Param struct {
	Name  string
	Value any
}

// ScriptOptions lists the characters Katakana and Hiragana ignore.
type ScriptOptions = predicate.ScriptOptions

func invalidConfig(kind Kind, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, kind, fmt.Sprintf(format, args...))
}

// NumberStringConfig bounds the rune length of a numeric string.
type NumberStringConfig struct {
	Min int
	Max int
}

func (NumberStringConfig) Kind() Kind { return KindNumberString }
func (NumberStringConfig) isConfig()  {}

func (c NumberStringConfig) Params() []Param {
	return []Param{{ParamMin, c.Min}, {ParamMax, c.Max}}
}

func (c NumberStringConfig) Validate() error {
	if c.Min < 0 {
		return invalidConfig(KindNumberString, "min must be >= 0, got %d", c.Min)
	}
	if c.Max < c.Min {
		return invalidConfig(KindNumberString, "max (%d) must be >= min (%d)", c.Max, c.Min)
	}
	return nil
}

// HalfNumberConfig has no parameters.
type HalfNumberConfig struct{}

func (HalfNumberConfig) Kind() Kind      { return KindHalfNumber }
func (HalfNumberConfig) Params() []Param { return nil }
func (HalfNumberConfig) Validate() error { return nil }
func (HalfNumberConfig) isConfig()       {}

// KatakanaConfig selects the characters ignored by the katakana check.
type KatakanaConfig struct {
	ScriptOptions
}

func (KatakanaConfig) Kind() Kind        { return KindKatakana }
func (c KatakanaConfig) Params() []Param { return scriptParams(c.ScriptOptions) }
func (KatakanaConfig) Validate() error   { return nil }
func (KatakanaConfig) isConfig()         {}

// HiraganaConfig selects the characters ignored by the hiragana check.
type HiraganaConfig struct {
	ScriptOptions
}

func (HiraganaConfig) Kind() Kind        { return KindHiragana }
func (c HiraganaConfig) Params() []Param { return scriptParams(c.ScriptOptions) }
func (HiraganaConfig) Validate() error   { return nil }
func (HiraganaConfig) isConfig()         {}

func scriptParams(o ScriptOptions) []Param {
	return []Param{{ParamSpace, o.Space}, {ParamHalfSpace, o.HalfSpace}, {ParamLongMarks, o.LongMarks}}
}

// HalfKatakanaConfig has no parameters.
type HalfKatakanaConfig struct{}

func (HalfKatakanaConfig) Kind() Kind      { return KindHalfKatakana }
func (HalfKatakanaConfig) Params() []Param { return nil }
func (HalfKatakanaConfig) Validate() error { return nil }
func (HalfKatakanaConfig) isConfig()       {}

// TelNoConfig overrides the built-in telephone rule when Pattern is set.
type TelNoConfig struct {
	Pattern string
}

func (TelNoConfig) Kind() Kind        { return KindTelNo }
func (c TelNoConfig) Params() []Param { return []Param{{ParamPattern, c.Pattern}} }
func (c TelNoConfig) Validate() error { return validateOverride(KindTelNo, c.Pattern) }
func (TelNoConfig) isConfig()         {}

// ZipCodeConfig overrides the built-in postal code rule when Pattern is set.
type ZipCodeConfig struct {
	Pattern string
}

func (ZipCodeConfig) Kind() Kind        { return KindZipCode }
func (c ZipCodeConfig) Params() []Param { return []Param{{ParamPattern, c.Pattern}} }
func (c ZipCodeConfig) Validate() error { return validateOverride(KindZipCode, c.Pattern) }
func (ZipCodeConfig) isConfig()         {}

func validateOverride(kind Kind, pattern string) error {
	if pattern == "" {
		return nil
	}
	if _, err := predicate.CompileFull(pattern); err != nil {
		return invalidConfig(kind, "%v", err)
	}
	return nil
}

// DateFormatConfig holds the date pattern, e.g. "yyyy/MM/dd".
type DateFormatConfig struct {
	Pattern string
}

func (DateFormatConfig) Kind() Kind        { return KindDateFormat }
func (c DateFormatConfig) Params() []Param { return []Param{{ParamPattern, c.Pattern}} }
func (DateFormatConfig) isConfig()         {}

func (c DateFormatConfig) Validate() error {
	if _, err := predicate.CompileDate(c.Pattern); err != nil {
		return invalidConfig(KindDateFormat, "%v", err)
	}
	return nil
}

// CharsetConfig has no parameters.
type CharsetConfig struct{}

func (CharsetConfig) Kind() Kind      { return KindCharset }
func (CharsetConfig) Params() []Param { return nil }
func (CharsetConfig) Validate() error { return nil }
func (CharsetConfig) isConfig()       {}

// BooleanConfig has no parameters.
type BooleanConfig struct{}

func (BooleanConfig) Kind() Kind      { return KindBoolean }
func (BooleanConfig) Params() []Param { return nil }
func (BooleanConfig) Validate() error { return nil }
func (BooleanConfig) isConfig()       {}

// YesOrNoConfig has no parameters.
type YesOrNoConfig struct{}

func (YesOrNoConfig) Kind() Kind      { return KindYesOrNo }
func (YesOrNoConfig) Params() []Param { return nil }
func (YesOrNoConfig) Validate() error { return nil }
func (YesOrNoConfig) isConfig()       {}

// PatternConfig holds a regular expression the whole value must match.
type PatternConfig struct {
	Regexp string
}

func (PatternConfig) Kind() Kind        { return KindPattern }
func (c PatternConfig) Params() []Param { return []Param{{ParamRegexp, c.Regexp}} }
func (PatternConfig) isConfig()         {}

func (c PatternConfig) Validate() error {
	if c.Regexp == "" {
		return invalidConfig(KindPattern, "regexp is required")
	}
	if _, err := predicate.CompileFull(c.Regexp); err != nil {
		return invalidConfig(KindPattern, "%v", err)
	}
	return nil
}
