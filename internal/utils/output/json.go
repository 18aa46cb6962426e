package output

import (
	"bytes"
	"encoding/json"
	"os"
)

// SaveJSON writes data as indented JSON. Key order of records is kept,
// non-ASCII text is written verbatim and HTML characters are not escaped.
func SaveJSON(data any, filepath string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")

	if err := enc.Encode(data); err != nil {
		return persistenceError(filepath, err)
	}

	if err := os.WriteFile(filepath, buf.Bytes(), 0644); err != nil {
		return persistenceError(filepath, err)
	}
	return nil
}
