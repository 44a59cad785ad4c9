package formatter

import (
	"os"

	"github.com/arthur-debert/streamprinter/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Theme is the YAML document holding a style table
type Theme struct {
	Styles StyleTable `yaml:"styles"`
}

// LoadTheme reads a style table from a YAML file
func LoadTheme(path string) (StyleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "theme file %s not found", path).
				WithDetail(errors.DetailPath, path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read theme file %s", path).
			WithDetail(errors.DetailPath, path)
	}

	table, err := ParseTheme(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to parse theme file %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return table, nil
}

// ParseTheme parses a YAML style table. An empty document yields an empty table.
func ParseTheme(data []byte) (StyleTable, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeLoad, "invalid theme")
	}
	if theme.Styles == nil {
		return StyleTable{}, nil
	}
	return theme.Styles, nil
}
