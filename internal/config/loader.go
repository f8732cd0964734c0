package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultRoster []byte

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// LoadRoster reads a roster file from disk. An empty path selects the
// roster compiled into the binary.
func LoadRoster(path string) (*RosterConfig, error) {
	var rc RosterConfig
	if path == "" {
		if err := yaml.Unmarshal(defaultRoster, &rc); err != nil {
			return nil, fmt.Errorf("parse built-in roster: %w", err)
		}
		return &rc, nil
	}
	if err := loadYAML(path, &rc); err != nil {
		return nil, fmt.Errorf("load roster %s: %w", path, err)
	}
	return &rc, nil
}
