package predicate

import (
	"fmt"
	"regexp"
	"sync"
)

// compiled caches full-match regexps by source pattern.
var compiled sync.Map // map[string]*regexp.Regexp

// CompileFull compiles pattern so that it must match the whole input.
// Results are cached; the cache only grows with distinct declared patterns.
func CompileFull(pattern string) (*regexp.Regexp, error) {
	if cached, ok := compiled.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	actual, _ := compiled.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// Pattern reports whether the whole of s matches pattern.
func Pattern(s, pattern string) (bool, error) {
	re, err := CompileFull(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}
