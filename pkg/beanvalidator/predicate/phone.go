package predicate

import (
	"regexp"
	"strings"
)

// ZipCodePattern is the default Japanese postal code shape.
const ZipCodePattern = `[0-9]{3}-[0-9]{4}`

// TelNoLookaroundPattern is the default telephone rule written with
// lookaround, for consumers whose regex engine supports it (JSON Schema,
// browsers). TelNo implements the same rule without lookaround.
const TelNoLookaroundPattern = `^(?:(?!(090|080|070|050))(?=\d{2,5}-\d{1,4}-\d{4}$)[\d-]{12}|(?=(090|080|070|050)-\d{4}-\d{4}$)[\d-]{13})$`

// landlineLength is the fixed length of an area-exchange-subscriber number
// including both hyphens.
const landlineLength = 12

var (
	mobilePrefixes = []string{"090", "080", "070", "050"}

	zipCodeRe  = regexp.MustCompile(`^` + ZipCodePattern + `$`)
	mobileRe   = regexp.MustCompile(`^[0-9]{3}-[0-9]{4}-[0-9]{4}$`)
	landlineRe = regexp.MustCompile(`^[0-9]{2,5}-[0-9]{1,4}-[0-9]{4}$`)
)

// TelNo reports whether s is a Japanese telephone number. A non-empty
// pattern replaces the built-in rule entirely.
//
// Built-in rule: numbers starting with 090, 080, 070 or 050 must have the
// shape PPP-NNNN-NNNN. Any other number must be exactly 12 characters of
// 2-5 digits, 1-4 digits and 4 digits joined by hyphens.
func TelNo(s, pattern string) (bool, error) {
	if pattern != "" {
		return Pattern(s, pattern)
	}
	if hasMobilePrefix(s) {
		return mobileRe.MatchString(s), nil
	}
	return len(s) == landlineLength && landlineRe.MatchString(s), nil
}

// ZipCode reports whether s is a postal code: NNN-NNNN by default, or a
// match of pattern when one is given.
func ZipCode(s, pattern string) (bool, error) {
	if pattern != "" {
		return Pattern(s, pattern)
	}
	return zipCodeRe.MatchString(s), nil
}

func hasMobilePrefix(s string) bool {
	for _, p := range mobilePrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
