package output

import (
	"bytes"
	"os"

	"gopkg.in/yaml.v3"
)

// SaveYAML writes data as YAML with two-space indentation, keeping record key order
func SaveYAML(data any, filepath string) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(data); err != nil {
		return persistenceError(filepath, err)
	}
	if err := encoder.Close(); err != nil {
		return persistenceError(filepath, err)
	}

	if err := os.WriteFile(filepath, buf.Bytes(), 0644); err != nil {
		return persistenceError(filepath, err)
	}
	return nil
}
