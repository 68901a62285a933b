package beanvalidator

import (
	"fmt"
	"strings"
)

// Kind identifies a constraint rule. The set is closed and fixed at compile time.
type Kind uint8

// Constraint kinds.
const (
	KindInvalid Kind = iota
	KindNumberString
	KindHalfNumber
	KindKatakana
	KindHiragana
	KindHalfKatakana
	KindTelNo
	KindZipCode
	KindDateFormat
	KindCharset
	KindBoolean
	KindYesOrNo
	KindPattern
)

var kindNames = [...]string{
	KindInvalid:      "Invalid",
	KindNumberString: "NumberString",
	KindHalfNumber:   "HalfNumber",
	KindKatakana:     "Katakana",
	KindHiragana:     "Hiragana",
	KindHalfKatakana: "HalfKatakana",
	KindTelNo:        "TelNo",
	KindZipCode:      "ZipCode",
	KindDateFormat:   "DateFormat",
	KindCharset:      "Charset",
	KindBoolean:      "Boolean",
	KindYesOrNo:      "YesOrNo",
	KindPattern:      "Pattern",
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames)-1)
	for k := KindNumberString; int(k) < len(kindNames); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kindNames)
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the kind with the given name, ignoring case.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for _, k := range Kinds() {
		if strings.EqualFold(kindNames[k], name) {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
