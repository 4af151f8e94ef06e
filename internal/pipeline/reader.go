package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
)

// Sentinel errors for reading part files.
var (
	ErrReadPart  = errors.New("failed to read part file")
	ErrParsePart = errors.New("failed to parse part file")
)

// PartReader loads the records of one input file.
type PartReader interface {
	ReadPart(ctx context.Context, path string) ([]Record, error)
}

// JSONPartReader reads a JSON array of records from disk.
type JSONPartReader struct{}

// ReadPart reads and decodes path. Text fields are converted to NFC so glyph
// matching works on files produced by tools that emit decomposed Hangul.
func (r *JSONPartReader) ReadPart(ctx context.Context, path string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- discovered input path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadPart, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsePart, err)
	}

	for i := range records {
		records[i] = nfcRecord(records[i])
	}
	return records, nil
}

func nfcRecord(r Record) Record {
	r.Title = norm.NFC.String(r.Title)
	content := make([]string, len(r.Content))
	for i, c := range r.Content {
		content[i] = norm.NFC.String(c)
	}
	r.Content = content
	return r
}

// Compile-time interface check.
var _ PartReader = (*JSONPartReader)(nil)
