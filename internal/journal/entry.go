package journal

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedDocument is returned when the export document is not valid JSON.
var ErrMalformedDocument = errors.New("malformed journal document")

// Document is the root of a Day One export.
// Entry order comes from the source and is not assumed chronological.
type Document struct {
	Metadata *Metadata `json:"metadata,omitempty"`
	Entries  []Entry   `json:"entries"`
}

// Metadata holds export-level metadata. Day One writes a version string;
// nothing in the pipeline depends on it.
type Metadata struct {
	Version string `json:"version,omitempty"`
}

// Entry is one raw journal entry. Every field is optional; the normalizer
// degrades gracefully when timestamps or text are absent.
type Entry struct {
	UUID         string `json:"uuid,omitempty"`
	CreationDate string `json:"creationDate,omitempty"`
	ModifiedDate string `json:"modifiedDate,omitempty"`
	Text         string `json:"text,omitempty"`
	RichText     string `json:"richText,omitempty"`
}

// Parse decodes a journal document from raw JSON.
// A decode failure is fatal for the whole conversion and wraps
// ErrMalformedDocument.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}
