// Package extract turns statement files into raw tabular data. Each source
// handles one file format and produces RawTables; nothing here interprets
// column meaning.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/desco97/financedashboard/internal/model"
)

// ErrUnsupportedFormat marks a file extension no source handles.
var ErrUnsupportedFormat = errors.New("unsupported statement format")

// ErrNoTables marks a file that parsed but yielded no tabular data.
var ErrNoTables = errors.New("no tabular data found")

// ExtractionError wraps a failure to read a statement file.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Source converts one statement file format into raw tables.
type Source interface {
	Extract(r io.Reader) ([]model.RawTable, error)
	Extensions() []string
}

// Registry holds sources keyed by file extension.
type Registry struct {
	sources map[string]Source
}

// NewRegistry creates an empty source registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]Source)}
}

// Register adds a source. Panics on a duplicate extension.
func (r *Registry) Register(s Source) {
	for _, ext := range s.Extensions() {
		key := strings.ToLower(ext)
		if _, ok := r.sources[key]; ok {
			panic("duplicate source extension: " + key)
		}
		r.sources[key] = s
	}
}

// Get returns the source for a file extension (with or without the leading
// dot), or nil.
func (r *Registry) Get(ext string) Source {
	return r.sources[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// DefaultRegistry returns a registry with all built-in sources.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVSource{})
	r.Register(&XLSXSource{})
	r.Register(&PDFSource{})
	return r
}

// FromFile extracts all tables from a statement file, choosing the source by
// extension. An empty result is an error: a statement with nothing in it is a
// bad file, not an empty import.
func (r *Registry) FromFile(path string) ([]model.RawTable, error) {
	src := r.Get(filepath.Ext(path))
	if src == nil {
		return nil, &ExtractionError{Path: path, Err: ErrUnsupportedFormat}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}
	defer f.Close()

	tables, err := src.Extract(f)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}
	if len(tables) == 0 {
		return nil, &ExtractionError{Path: path, Err: ErrNoTables}
	}
	return tables, nil
}

// readAllSeekable buffers a reader for sources that need random access.
func readAllSeekable(r io.Reader) (*bytes.Reader, int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, err
	}
	return bytes.NewReader(b), int64(len(b)), nil
}
