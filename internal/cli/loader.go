package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/cookbook/internal/recipe"
)

// Error code constants - unified across all CLI commands.
// Document validation codes (E2xx) come from the validate package.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeUnsupported  = "E002" // Unsupported file extension
	ErrCodeParseFailed  = "E004" // Document could not be decoded
	ErrCodeNotFound     = "E005" // Path or recipe not found
	ErrCodeBuildFailed  = "E006" // CUE build failed
	ErrCodeWriteFailed  = "E007" // File write error
	ErrCodeBadArgument  = "E008" // Invalid flag value
	ErrCodeEditRejected = "E009" // Edit could not be applied
	ErrCodeStoreFailed  = "E010" // Database error
)

// LoadError represents an error that occurred while reading a document.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// FormatFor maps a file name to its encoding by extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", &LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported file type %q: use .json, .yaml, .yml or .cue", filepath.Ext(path))}
	}
}

// LoadDocument reads a recipe document from path. Unknown fields are
// rejected in every encoding so typos do not silently drop data.
func LoadDocument(path string) (recipe.Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return recipe.Document{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return recipe.Document{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("document not found: %s", path), Err: err}
	}
	if err != nil {
		return recipe.Document{}, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error reading %s: %v", path, err), Err: err}
	}

	return DecodeDocument(data, format)
}

// DecodeDocument parses data in the given encoding.
func DecodeDocument(data []byte, format Format) (recipe.Document, error) {
	var doc recipe.Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return recipe.Document{}, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("failed to parse JSON: %v", err), Err: err}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true) // Reject unknown fields
		if err := dec.Decode(&doc); err != nil {
			return recipe.Document{}, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("failed to parse YAML: %v", err), Err: err}
		}
	case FormatCUE:
		ctx := cuecontext.New()
		value := ctx.CompileBytes(data)
		if err := value.Err(); err != nil {
			return recipe.Document{}, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err), Err: err}
		}
		if err := value.Validate(cue.Concrete(true)); err != nil {
			return recipe.Document{}, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("CUE value is not concrete: %v", err), Err: err}
		}
		// Export to JSON so unknown fields are rejected the same way
		exported, err := value.MarshalJSON()
		if err != nil {
			return recipe.Document{}, &LoadError{Code: ErrCodeParseFailed, Message: fmt.Sprintf("exporting CUE value: %v", err), Err: err}
		}
		return DecodeDocument(exported, FormatJSON)
	default:
		return recipe.Document{}, &LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported format %q", format)}
	}
	return doc, nil
}

// EncodeDocument renders doc in the given encoding. CUE output is JSON,
// which CUE reads as a concrete value.
func EncodeDocument(doc recipe.Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, FormatCUE:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("encode document: unsupported format %q", format)
	}
}

// WriteDocument writes doc to path in the encoding its extension names.
func WriteDocument(path string, doc recipe.Document) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := EncodeDocument(doc, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
