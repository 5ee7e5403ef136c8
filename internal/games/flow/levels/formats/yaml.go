// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Author   string            `yaml:"author,omitempty"`
	Layout   string            `yaml:"layout"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level file. The layout is still text;
// turning it into a grid is the board package's job.
type Level struct {
	ID       string
	Name     string
	Author   string
	Layout   string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	layout := strings.TrimSpace(yl.Layout)
	if layout == "" {
		return Level{}, fmt.Errorf("yaml level %q: missing layout", yl.ID)
	}

	return Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Author:   yl.Author,
		Layout:   layout,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML renders a level back to the YAML file format.
func MarshalYAML(l Level) ([]byte, error) {
	data, err := yaml.Marshal(YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Author:   l.Author,
		Layout:   l.Layout + "\n",
		Metadata: l.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt", ".flow"}
}
