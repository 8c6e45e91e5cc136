package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/cookbook/internal/recipe"
)

// marshalDocument converts a document to JSON TEXT for storage.
// HTML escaping is disabled so stored payloads match what the CLI prints.
func marshalDocument(doc recipe.Document) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), nil
}

// unmarshalDocument parses a stored payload.
func unmarshalDocument(data string) (recipe.Document, error) {
	var doc recipe.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return recipe.Document{}, fmt.Errorf("unmarshal document: %w", err)
	}
	return doc, nil
}
