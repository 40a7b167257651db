package blueprint

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Blueprint declares the parameters of a project to scaffold.
type Blueprint struct {
	Name        string `yaml:"name"`
	DatabaseURL string `yaml:"database_url"`
	Version     string `yaml:"version"`
	SQLEcho     bool   `yaml:"sql_echo"`
}

// ParseFile reads a blueprint, validates it against the embedded schema, and
// returns the typed struct. Schema violations are returned as a single error
// listing every issue with its instance path.
func ParseFile(path string) (*Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blueprint %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating blueprint %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("blueprint %s is invalid:\n%s", path, result.IssueSummary())
	}

	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("parsing blueprint %s: %w", path, err)
	}
	return &bp, nil
}
