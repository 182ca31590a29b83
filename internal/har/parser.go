package har

import (
	"encoding/json"
	"fmt"
	"io"
)

// Parse reads and parses a HAR from an io.Reader
func Parse(r io.Reader) (*HAR, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read HAR data: %w", err)
	}

	return ParseBytes(data)
}

// ParseBytes parses a HAR document from raw JSON
func ParseBytes(data []byte) (*HAR, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty HAR data")
	}

	var har HAR
	if err := json.Unmarshal(data, &har); err != nil {
		return nil, fmt.Errorf("failed to parse HAR JSON: %w", err)
	}

	if har.Log == nil {
		return nil, fmt.Errorf("invalid HAR: missing Log field")
	}

	if har.Log.Entries == nil {
		return nil, fmt.Errorf("invalid HAR: missing entries")
	}

	return &har, nil
}

// ParseContent parses the harContent request field, which may be either the
// archive object itself or a JSON string holding the archive.
func ParseContent(content json.RawMessage) (*HAR, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("harContent is required")
	}

	data := []byte(content)

	// A string value wraps the archive as escaped JSON; decode it once to
	// recover the document before parsing.
	var inner string
	if err := json.Unmarshal(data, &inner); err == nil {
		data = []byte(inner)
	}

	return ParseBytes(data)
}
