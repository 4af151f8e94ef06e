package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adventure705/shortstobenz3/internal/config"
)

const defaultInputPattern = "*.json"

// inputDirError reports an unusable data directory.
type inputDirError struct {
	dir string
	err error
}

func (e *inputDirError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrNoInput, e.dir, e.err)
}

func (e *inputDirError) Unwrap() []error {
	return []error{ErrNoInput, e.err}
}

// discoverInputs lists the files of in.Dir whose names match in.Pattern,
// sorted by name. Subdirectories are not searched.
func discoverInputs(in config.InputConfig) ([]string, error) {
	entries, err := os.ReadDir(in.Dir)
	if err != nil {
		return nil, &inputDirError{dir: in.Dir, err: err}
	}

	pattern := in.Pattern
	if pattern == "" {
		pattern = defaultInputPattern
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: input.pattern: %v", config.ErrInvalidValue, err)
		}
		if ok {
			files = append(files, filepath.Join(in.Dir, e.Name()))
		}
	}
	return files, nil
}
