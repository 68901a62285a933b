package predicate

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// ErrDatePattern is returned for date patterns that cannot be compiled.
var ErrDatePattern = errors.New("invalid date pattern")

// datePatterns caches compiled date patterns.
var datePatterns sync.Map // map[string]*DatePattern

// DateFormat reports whether s parses under pattern. Patterns use the
// letter notation common to form definitions (yyyy/MM/dd HH:mm:ss).
// Out-of-range fields such as February 30 or hour 25 are rejected.
func DateFormat(s, pattern string) (bool, error) {
	p, err := CompileDate(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(s), nil
}

// DatePattern is a compiled date pattern: literal text matched exactly and
// date fields checked by the time package.
type DatePattern struct {
	elems []dateElem
}

type dateElem struct {
	literal string // non-empty for literal text
	letter  rune
	count   int
	layout  string // time layout of the field; empty when time does not check it
}

// CompileDate compiles a letter pattern.
//
// Supported letters: y (yy, or y/yyyy for one to four digits), M (numeric,
// MMM, MMMM), d, H, h, m, s, S, a, E, z, Z, X. Any other character, and text
// between single quotes, is literal and must appear exactly; '' is a literal
// quote. Numeric fields accept one or two digits.
func CompileDate(pattern string) (*DatePattern, error) {
	if cached, ok := datePatterns.Load(pattern); ok {
		return cached.(*DatePattern), nil
	}
	p, err := compileDate(pattern)
	if err != nil {
		return nil, err
	}
	actual, _ := datePatterns.LoadOrStore(pattern, p)
	return actual.(*DatePattern), nil
}

func compileDate(pattern string) (*DatePattern, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty", ErrDatePattern)
	}

	p := &DatePattern{}
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			lit, next, err := quotedLiteral(runes, i)
			if err != nil {
				return nil, err
			}
			p.addLiteral(lit)
			i = next
			continue
		}

		if !isASCIILetter(r) {
			p.addLiteral(string(r))
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		layout, err := fieldLayout(r, n)
		if err != nil {
			return nil, err
		}
		p.elems = append(p.elems, dateElem{letter: r, count: n, layout: layout})
		i += n
	}
	return p, nil
}

func (p *DatePattern) addLiteral(lit string) {
	if lit == "" {
		return
	}
	if last := len(p.elems) - 1; last >= 0 && p.elems[last].literal != "" {
		p.elems[last].literal += lit
		return
	}
	p.elems = append(p.elems, dateElem{literal: lit})
}

// Layout returns the time layout the scanned fields are parsed with,
// fields separated by single spaces.
func (p *DatePattern) Layout() string {
	var parts []string
	for _, e := range p.elems {
		if e.layout != "" {
			parts = append(parts, e.layout)
		}
	}
	return strings.Join(parts, " ")
}

// Match reports whether s is a valid date under the pattern.
func (p *DatePattern) Match(s string) bool {
	rest := s
	var layout, value []string
	for _, e := range p.elems {
		if e.literal != "" {
			if !strings.HasPrefix(rest, e.literal) {
				return false
			}
			rest = rest[len(e.literal):]
			continue
		}
		tok, ok := e.scan(rest)
		if !ok {
			return false
		}
		rest = rest[len(tok):]
		if e.layout == "" {
			continue
		}
		layout = append(layout, e.layout)
		value = append(value, e.normalize(tok))
	}
	if rest != "" {
		return false
	}
	if len(layout) == 0 {
		return true
	}
	_, err := time.Parse(strings.Join(layout, " "), strings.Join(value, " "))
	return err == nil
}

func fieldLayout(letter rune, n int) (string, error) {
	switch letter {
	case 'y':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M':
		switch {
		case n >= 4:
			return "January", nil
		case n == 3:
			return "Jan", nil
		default:
			return "1", nil
		}
	case 'd':
		return "2", nil
	case 'H':
		return "15", nil
	case 'h':
		return "3", nil
	case 'm':
		return "4", nil
	case 's':
		return "5", nil
	case 'S':
		return "", nil
	case 'a':
		return "PM", nil
	case 'E':
		if n >= 4 {
			return "Monday", nil
		}
		return "Mon", nil
	case 'z':
		return "MST", nil
	case 'Z':
		return "-0700", nil
	case 'X':
		return "Z07:00", nil
	}
	return "", fmt.Errorf("%w: unsupported letter %q", ErrDatePattern, letter)
}

// scan returns the prefix of s holding the field's value.
func (e dateElem) scan(s string) (string, bool) {
	switch e.letter {
	case 'y':
		if e.count == 2 {
			return scanDigits(s, 2, 2)
		}
		return scanDigits(s, 1, 4)
	case 'M':
		if e.count >= 3 {
			return scanLetters(s)
		}
		return scanDigits(s, 1, 2)
	case 'd', 'H', 'h', 'm', 's':
		return scanDigits(s, 1, 2)
	case 'S':
		return scanDigits(s, e.count, e.count)
	case 'a', 'E', 'z':
		return scanLetters(s)
	case 'Z':
		return scanOffset(s, false)
	case 'X':
		if strings.HasPrefix(s, "Z") {
			return "Z", true
		}
		return scanOffset(s, true)
	}
	return "", false
}

// normalize pads short years to the four digits the layout requires.
func (e dateElem) normalize(tok string) string {
	if e.letter == 'y' && e.count != 2 && len(tok) < 4 {
		return strings.Repeat("0", 4-len(tok)) + tok
	}
	return tok
}

func scanDigits(s string, minLen, maxLen int) (string, bool) {
	n := 0
	for n < len(s) && n < maxLen && isDigit(s[n]) {
		n++
	}
	return s[:n], n >= minLen
}

func scanLetters(s string) (string, bool) {
	n := 0
	for n < len(s) && isASCIILetter(rune(s[n])) {
		n++
	}
	return s[:n], n > 0
}

// scanOffset reads +hhmm, or +hh:mm when colon is set.
func scanOffset(s string, colon bool) (string, bool) {
	want := 5
	if colon {
		want = 6
	}
	if len(s) < want || (s[0] != '+' && s[0] != '-') {
		return "", false
	}
	for i := 1; i < want; i++ {
		if colon && i == 3 {
			if s[i] != ':' {
				return "", false
			}
			continue
		}
		if !isDigit(s[i]) {
			return "", false
		}
	}
	return s[:want], true
}

// quotedLiteral reads a '...' section starting at runes[start].
func quotedLiteral(runes []rune, start int) (string, int, error) {
	if start+1 < len(runes) && runes[start+1] == '\'' {
		return "'", start + 2, nil
	}
	var b strings.Builder
	for i := start + 1; i < len(runes); i++ {
		if runes[i] != '\'' {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			b.WriteRune('\'')
			i++
			continue
		}
		return b.String(), i + 1, nil
	}
	return "", 0, fmt.Errorf("%w: unterminated quote", ErrDatePattern)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
