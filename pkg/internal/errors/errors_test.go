package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			"argument without location",
			Argument(errSentinel, "bean is nil"),
			"argument error: bean is nil: sentinel",
		},
		{
			"configuration with location",
			Configuration([]string{"Member", "zipCode"}, nil, "pattern does not compile"),
			"configuration error at Member.zipCode: pattern does not compile",
		},
		{
			"bare type",
			&Error{Type: ErrorTypeConfiguration},
			"configuration error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := fmt.Errorf("evaluate: %w", Configuration(nil, errSentinel, "unknown kind %d", 99))

	assert.True(t, errors.Is(err, errSentinel))

	var typed *Error
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, ErrorTypeConfiguration, typed.Type)
	assert.Equal(t, "unknown kind 99", typed.Message)
}

func TestHasType(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		typ      ErrorType
		expected bool
	}{
		{"nil", nil, ErrorTypeArgument, false},
		{"plain error", errSentinel, ErrorTypeArgument, false},
		{"matching", Argument(nil, "x"), ErrorTypeArgument, true},
		{"other type", Argument(nil, "x"), ErrorTypeConfiguration, false},
		{"wrapped", fmt.Errorf("outer: %w", Configuration(nil, nil, "x")), ErrorTypeConfiguration, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasType(tt.err, tt.typ))
		})
	}
}
