package theme

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jdhuntington/react-compose/pkg/errors"
)

type themeFile struct {
	Name       string                    `yaml:"name"`
	Tokens     map[string]any            `yaml:"tokens"`
	Components map[string]map[string]any `yaml:"components"`
}

// Load reads a theme definition from a YAML file.
//
// The file schema mirrors the Theme struct: a name, a tokens mapping, and
// a components mapping of per-slot overrides. No schema validation is
// performed beyond YAML decoding; unknown keys are ignored and generators
// defend themselves against missing tokens.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewParseError(path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, errors.NewParseError(path, err)
	}
	return t, nil
}

// Parse decodes a YAML theme definition.
func Parse(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	t := &Theme{
		Name:       file.Name,
		Tokens:     file.Tokens,
		Components: file.Components,
	}
	if t.Tokens == nil {
		t.Tokens = map[string]any{}
	}
	if t.Components == nil {
		t.Components = map[string]map[string]any{}
	}
	return t, nil
}

// Named returns one of the built-in themes by name.
func Named(name string) (*Theme, error) {
	switch name {
	case "", "default", "light":
		return Default(), nil
	case "dark":
		return Dark(), nil
	default:
		return nil, errors.NewUnknownThemeError(name)
	}
}
