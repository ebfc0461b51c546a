package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	underlying := stderrors.New("yaml: line 3: mapping values are not allowed")
	err := NewParseError("themes/midnight.yaml", underlying)

	assert.Contains(t, err.Error(), "themes/midnight.yaml")
	assert.Contains(t, err.Error(), "mapping values")

	var parseErr *ParseError
	require.True(t, stderrors.As(err, &parseErr))
	assert.Same(t, underlying, stderrors.Unwrap(err))
}

func TestParseErrorWithoutPath(t *testing.T) {
	err := NewParseError("", stderrors.New("boom"))
	assert.Equal(t, "theme parse error: boom", err.Error())
}

func TestUnknownThemeError(t *testing.T) {
	err := NewUnknownThemeError("solarized")
	assert.Equal(t, `unknown theme: "solarized"`, err.Error())

	var unknown *UnknownThemeError
	require.True(t, stderrors.As(err, &unknown))
	assert.Equal(t, "solarized", unknown.Name)
}
