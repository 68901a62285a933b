package beanvalidator

import (
	"fmt"
	"strings"
)

// Interpolate replaces each {name} in template with the matching parameter.
// Unknown placeholders are left untouched.
func Interpolate(template string, params []Param) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}
	pairs := make([]string, 0, len(params)*2)
	for _, p := range params {
		pairs = append(pairs, "{"+p.Name+"}", fmt.Sprint(p.Value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
