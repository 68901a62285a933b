package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nakamurakj/bean-validation/pkg/beanvalidator/predicate"
)

func TestBoolean(t *testing.T) {
	for _, v := range []string{"true", "false", "TRUE", "False", "tRuE"} {
		assert.True(t, predicate.Boolean(v), v)
	}
	for _, v := range []string{"", "yes", "1", "t", "true ", "falsey"} {
		assert.False(t, predicate.Boolean(v), v)
	}
}

func TestYesOrNo(t *testing.T) {
	for _, v := range []string{"yes", "no", "YES", "No", "yEs"} {
		assert.True(t, predicate.YesOrNo(v), v)
	}
	for _, v := range []string{"", "xxx", "y", "n", "true", " yes"} {
		assert.False(t, predicate.YesOrNo(v), v)
	}
}

func TestTokens_ReturnCopies(t *testing.T) {
	tokens := predicate.YesOrNoTokens()
	tokens[0] = "oui"
	assert.Equal(t, []string{"yes", "no"}, predicate.YesOrNoTokens())
	assert.Equal(t, []string{"true", "false"}, predicate.BooleanTokens())
}
