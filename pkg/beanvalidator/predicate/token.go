package predicate

import "strings"

var (
	booleanTokens = []string{"true", "false"}
	yesOrNoTokens = []string{"yes", "no"}
)

// Boolean reports whether s is "true" or "false", ignoring case.
func Boolean(s string) bool {
	return oneOfLower(s, booleanTokens)
}

// YesOrNo reports whether s is "yes" or "no", ignoring case.
func YesOrNo(s string) bool {
	return oneOfLower(s, yesOrNoTokens)
}

// BooleanTokens returns the accepted Boolean tokens in lower case.
func BooleanTokens() []string { return append([]string(nil), booleanTokens...) }

// YesOrNoTokens returns the accepted YesOrNo tokens in lower case.
func YesOrNoTokens() []string { return append([]string(nil), yesOrNoTokens...) }

func oneOfLower(s string, tokens []string) bool {
	lower := strings.ToLower(s)
	for _, t := range tokens {
		if lower == t {
			return true
		}
	}
	return false
}
