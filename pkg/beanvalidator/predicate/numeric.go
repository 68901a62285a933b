package predicate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// HalfNumberPattern accepts ASCII digits only, including the empty string.
const HalfNumberPattern = `^[0-9]*$`

var halfNumberRe = regexp.MustCompile(HalfNumberPattern)

// NumberString reports whether s is between min and max runes long (inclusive)
// and parses as a base-10 signed 64-bit integer.
// The length is checked first; full-width digits count as digits.
func NumberString(s string, min, max int) bool {
	n := utf8.RuneCountInString(s)
	if n < min || n > max {
		return false
	}
	_, err := strconv.ParseInt(foldDigits(s), 10, 64)
	return err == nil
}

// HalfNumber reports whether s consists of ASCII digits only.
func HalfNumber(s string) bool {
	return halfNumberRe.MatchString(s)
}

// foldDigits maps full-width digits to their ASCII form and leaves every
// other rune untouched.
func foldDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if !unicode.IsDigit(r) {
			return r
		}
		p := width.LookupRune(r)
		if p.Kind() == width.EastAsianFullwidth {
			return p.Narrow()
		}
		return r
	}, s)
}
