package theme

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdhuntington/react-compose/pkg/errors"
)

const sampleTheme = `
name: midnight
tokens:
  colorPrimary: "#60a5fa"
  paddingMedium: 2
components:
  error-alert:
    icon: "!!"
`

func TestParseTheme(t *testing.T) {
	th, err := Parse([]byte(sampleTheme))
	require.NoError(t, err)

	assert.Equal(t, "midnight", th.Name)
	assert.Equal(t, "#60a5fa", th.TokenString(TokenColorPrimary, ""))
	assert.Equal(t, map[string]any{"icon": "!!"}, th.Overrides("error-alert"))
}

func TestParseEmptyDocument(t *testing.T) {
	th, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.NotNil(t, th.Tokens)
	assert.NotNil(t, th.Components)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "midnight.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTheme), 0o644))

	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "midnight", th.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.True(t, stderrors.As(err, &parseErr))
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tokens: [unbalanced"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *errors.ParseError
	require.True(t, stderrors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"", "default", "light", "dark"} {
		th, err := Named(name)
		require.NoError(t, err, "built-in theme %q", name)
		assert.NotNil(t, th)
	}

	_, err := Named("solarized")
	require.Error(t, err)

	var unknown *errors.UnknownThemeError
	require.True(t, stderrors.As(err, &unknown))
	assert.Equal(t, "solarized", unknown.Name)
}
