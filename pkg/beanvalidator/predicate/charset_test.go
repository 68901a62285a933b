package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nakamurakj/bean-validation/pkg/beanvalidator/predicate"
)

func TestCharsetSupported(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"UTF-8", true},
		{"utf-8", true},
		{"Shift_JIS", true},
		{"Windows-31J", true},
		{"EUC_JP", true},
		{"EUC-JP", true},
		{"ISO-2022-JP", true},
		{"ISO-8859-1", true},
		{"xxx", false},
		{"", false},
		{"-UTF-8", false},
		{"UTF 8", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, predicate.CharsetSupported(tt.name))
		})
	}
}
