package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"a.YAML", FormatYAML},
		{"dir/a.yml", FormatYAML},
		{"a.cue", FormatCUE},
	}
	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFor("a.toml")
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeUnsupported, loadErr.Code)
}

func TestLoadSameRecipeAcrossFormats(t *testing.T) {
	want, err := LoadDocument(fixture("pizza.yaml"))
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"pizza.json", "pizza.cue", "pizza.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteDocument(path, want))

			got, err := LoadDocument(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeCUERejectsUnknownFields(t *testing.T) {
	_, err := DecodeDocument([]byte(`id: "x", title: "t", ingredients: [], instructions: [], servings: 4`), FormatCUE)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeParseFailed, loadErr.Code)
}

func TestDecodeCUERejectsIncomplete(t *testing.T) {
	_, err := DecodeDocument([]byte(`id: string, title: "t", ingredients: [], instructions: []`), FormatCUE)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeBuildFailed, loadErr.Code)
}

func TestDecodeCUESyntaxError(t *testing.T) {
	_, err := DecodeDocument([]byte(`id: "x" title: {`), FormatCUE)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, ErrCodeBuildFailed, loadErr.Code)
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	_, err := DecodeDocument([]byte(`{"id":"x","title":"t","ingredients":[],"instructions":[],"servings":4}`), FormatJSON)
	assert.Error(t, err)
}

func TestWriteDocumentUnsupported(t *testing.T) {
	doc, err := LoadDocument(fixture("pancakes.json"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.txt")
	assert.Error(t, WriteDocument(path, doc))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
