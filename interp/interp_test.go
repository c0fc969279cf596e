package interp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFileRejectsWrongExtension(t *testing.T) {
	it := New()
	_, err := it.RunFile("testdata/fixtures/not_a_script.txt")
	require.NotNil(t, err)
	assert.Equal(t, "Runtime Error", err.Kind)
	assert.Contains(t, err.Detail, ".pyr")
}

func TestRunFileMissingFile(t *testing.T) {
	it := New()
	_, err := it.RunFile("testdata/fixtures/does_not_exist.pyr")
	require.NotNil(t, err)
	assert.Equal(t, "Runtime Error", err.Kind)
}

func TestRunFileExecutesScript(t *testing.T) {
	it := New()
	result, err := it.RunFile("testdata/fixtures/factorial.pyr")
	require.Nil(t, err)
	assert.Equal(t, "null", result)
}

func TestFormatResultProjection(t *testing.T) {
	it := New()
	result, err := it.Run("true")
	require.Nil(t, err)
	assert.Equal(t, "true", result)

	result, err = it.Run("null")
	require.Nil(t, err)
	assert.Equal(t, "null", result)

	result, err = it.Run("42")
	require.Nil(t, err)
	assert.Equal(t, "42", result)
}
