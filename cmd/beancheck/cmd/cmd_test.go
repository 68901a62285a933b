package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bv "github.com/nakamurakj/bean-validation/pkg/beanvalidator"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("BEANCHECK_LOG_LEVEL", "error")
	t.Setenv("BEANCHECK_LOG_FORMAT", "text")
	checkJSON, schemaType, envFile, logLevel = false, "", "", ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheck_Violations(t *testing.T) {
	out, _, err := run(t, "check", "testdata/members.yaml")
	require.ErrorIs(t, err, ErrViolations)
	assert.Equal(t,
		"testdata/members.yaml:1: Member#code[NumberString length must be between 1 and 18]\n"+
			"testdata/members.yaml:1: Member#zipCode[The format of the zipcode is invalid.]\n",
		out)
}

func TestCheck_Valid(t *testing.T) {
	out, _, err := run(t, "check", "testdata/valid.yaml")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheck_JSON(t *testing.T) {
	out, _, err := run(t, "check", "--json", "testdata/members.yaml", "testdata/valid.yaml")
	require.ErrorIs(t, err, ErrViolations)

	var got []violationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, violationOutput{
		File:    "testdata/members.yaml",
		Record:  1,
		Code:    "InvalidNumberString",
		Type:    "Member",
		Field:   "code",
		Message: "NumberString length must be between 1 and 18",
	}, got[0])
	assert.Equal(t, "InvalidZipCode", got[1].Code)
}

func TestCheck_ConfigurationError(t *testing.T) {
	_, _, err := run(t, "check", "testdata/broken.yaml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrViolations)
	assert.True(t, bv.IsConfigurationError(err))
}

func TestCheck_MissingFile(t *testing.T) {
	_, _, err := run(t, "check", "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestCheck_RequiresFile(t *testing.T) {
	_, _, err := run(t, "check")
	assert.Error(t, err)
}

func TestCheck_DebugLogs(t *testing.T) {
	t.Setenv("BEANCHECK_LOG_FORMAT", "json")
	checkJSON, schemaType, envFile = false, "", ""
	logLevel = ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"check", "--log-level", "debug", "testdata/valid.yaml"})
	require.NoError(t, Execute())

	assert.Contains(t, stderr.String(), `"msg":"checked file"`)
	assert.Contains(t, stderr.String(), `"component":"beancheck"`)
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, _, err := run(t, "kinds", "--log-level", "loud")
	assert.Error(t, err)
}

func TestKinds(t *testing.T) {
	out, _, err := run(t, "kinds")
	require.NoError(t, err)
	for _, k := range bv.Kinds() {
		assert.Contains(t, out, k.String())
	}
	assert.Contains(t, out, "min,max")
	assert.Contains(t, out, "NumberString length must be between {min} and {max}")
}

func TestSchema(t *testing.T) {
	out, _, err := run(t, "schema", "--type", "Member", "testdata/members.yaml")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Member", got["title"])
	props, ok := got["properties"].(map[string]any)
	require.True(t, ok)
	code, ok := props["code"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, code["minLength"])
	assert.EqualValues(t, 18, code["maxLength"])
}

func TestSchema_AllTypes(t *testing.T) {
	out, _, err := run(t, "schema", "testdata/members.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, `"$defs"`)
	assert.Contains(t, out, `"Member"`)
}

func TestSchema_UnknownType(t *testing.T) {
	_, _, err := run(t, "schema", "--type", "Ghost", "testdata/members.yaml")
	assert.Error(t, err)
}

func TestSchema_ConfigurationError(t *testing.T) {
	out, _, err := run(t, "schema", "testdata/broken.yaml")
	require.Error(t, err)
	assert.True(t, bv.IsConfigurationError(err))
	assert.Empty(t, out)
}
