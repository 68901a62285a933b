package beanvalidator

import (
	"fmt"
	"sync"

	"github.com/nakamurakj/bean-validation/pkg/beanvalidator/predicate"
	verrors "github.com/nakamurakj/bean-validation/pkg/internal/errors"
)

// Predicate classifies a field value under a configuration.
// The error result is reserved for configuration problems, never for a failed check.
type Predicate func(value string, cfg Config) (bool, error)

// typed adapts a predicate over one concrete config variant.
func typed[C Config](fn func(string, C) (bool, error)) Predicate {
	return func(value string, cfg Config) (bool, error) {
		c, ok := cfg.(C)
		if !ok {
			var want C
			return false, fmt.Errorf("%w: %s expects %T, got %T", ErrInvalidConfig, want.Kind(), want, cfg)
		}
		return fn(value, c)
	}
}

func plain[C Config](fn func(string) bool) Predicate {
	return typed(func(value string, _ C) (bool, error) { return fn(value), nil })
}

type registryEntry struct {
	predicate Predicate
	config    Config
	message   string
}

// Registry maps each kind to its predicate, default configuration and
// default message template. It is immutable after construction.
type Registry struct {
	entries map[Kind]registryEntry
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry covering every Kind.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newRegistry()
	})
	return defaultRegistry
}

func newRegistry() *Registry {
	return &Registry{entries: map[Kind]registryEntry{
		KindNumberString: {
			predicate: typed(func(v string, c NumberStringConfig) (bool, error) {
				return predicate.NumberString(v, c.Min, c.Max), nil
			}),
			config:  NumberStringConfig{Min: 1, Max: 10},
			message: "NumberString length must be between {min} and {max}",
		},
		KindHalfNumber: {
			predicate: plain[HalfNumberConfig](predicate.HalfNumber),
			config:    HalfNumberConfig{},
			message:   `The format of "Half-Number" is invalid.`,
		},
		KindKatakana: {
			predicate: typed(func(v string, c KatakanaConfig) (bool, error) {
				return predicate.Katakana(v, c.ScriptOptions), nil
			}),
			config:  KatakanaConfig{},
			message: `The format of "Katakana" is invalid.`,
		},
		KindHiragana: {
			predicate: typed(func(v string, c HiraganaConfig) (bool, error) {
				return predicate.Hiragana(v, c.ScriptOptions), nil
			}),
			config:  HiraganaConfig{},
			message: `The format of "Hiragana" is invalid.`,
		},
		KindHalfKatakana: {
			predicate: plain[HalfKatakanaConfig](predicate.HalfKatakana),
			config:    HalfKatakanaConfig{},
			message:   `The format of "Half-Katakana" is invalid.`,
		},
		KindTelNo: {
			predicate: typed(func(v string, c TelNoConfig) (bool, error) {
				return predicate.TelNo(v, c.Pattern)
			}),
			config:  TelNoConfig{},
			message: "The format of the tel no is invalid.",
		},
		KindZipCode: {
			predicate: typed(func(v string, c ZipCodeConfig) (bool, error) {
				return predicate.ZipCode(v, c.Pattern)
			}),
			config:  ZipCodeConfig{},
			message: "The format of the zipcode is invalid.",
		},
		KindDateFormat: {
			predicate: typed(func(v string, c DateFormatConfig) (bool, error) {
				return predicate.DateFormat(v, c.Pattern)
			}),
			config:  DateFormatConfig{},
			message: "The format of the date is invalid. ({pattern})",
		},
		KindCharset: {
			predicate: plain[CharsetConfig](predicate.CharsetSupported),
			config:    CharsetConfig{},
			message:   "charset is not supported.",
		},
		KindBoolean: {
			predicate: plain[BooleanConfig](predicate.Boolean),
			config:    BooleanConfig{},
			message:   `The format of "true" or "false" is invalid.`,
		},
		KindYesOrNo: {
			predicate: plain[YesOrNoConfig](predicate.YesOrNo),
			config:    YesOrNoConfig{},
			message:   `The format of "yes" or "no" is invalid.`,
		},
		KindPattern: {
			predicate: typed(func(v string, c PatternConfig) (bool, error) {
				return predicate.Pattern(v, c.Regexp)
			}),
			config:  PatternConfig{},
			message: `must match "{regexp}"`,
		},
	}}
}

func (r *Registry) entry(kind Kind) (registryEntry, error) {
	e, ok := r.entries[kind]
	if !ok {
		return registryEntry{}, verrors.Configuration(nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind), "")
	}
	return e, nil
}

// Resolve returns the predicate registered for kind.
func (r *Registry) Resolve(kind Kind) (Predicate, error) {
	e, err := r.entry(kind)
	if err != nil {
		return nil, err
	}
	return e.predicate, nil
}

// DefaultConfig returns the configuration used when a declaration omits one.
// For DateFormat and Pattern the default does not pass Validate.
func (r *Registry) DefaultConfig(kind Kind) (Config, error) {
	e, err := r.entry(kind)
	if err != nil {
		return nil, err
	}
	return e.config, nil
}

// DefaultMessage returns the message template for kind, with {param} placeholders.
func (r *Registry) DefaultMessage(kind Kind) (string, error) {
	e, err := r.entry(kind)
	if err != nil {
		return "", err
	}
	return e.message, nil
}
