package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and builds a fixture from a YAML file on disk.
func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse builds a fixture from YAML bytes already in memory. path is used
// only for error messages (tests can pass an empty string).
func Parse(data []byte, path string) (*Result, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}
	res, err := Build(&doc)
	if err != nil {
		return nil, fmt.Errorf("building fixture %s: %w", path, err)
	}
	return res, nil
}
