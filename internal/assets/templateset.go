package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// Built-in asset names.
const (
	DefaultTemplateSetName = "default"
	DefaultStyleName       = "neon"
	PrintStyleName         = "print"
)

// Template file names inside a template set directory.
const (
	pageFile     = "page.html"
	documentFile = "document.html"
)

// TemplateSet holds the two templates a lecture page is rendered with.
type TemplateSet struct {
	Name     string
	Page     string // lecture fragment
	Document string // standalone HTML wrapper
}

// AssetLoader loads styles and template sets by name.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplateSet(name string) (*TemplateSet, error)
}

// readTemplateSet reads both templates of the set in dir through read.
// A set with neither file does not exist; a set with one file is incomplete.
func readTemplateSet(name, dir string, read func(path string) ([]byte, error)) (*TemplateSet, error) {
	page, pageErr := read(dir + "/" + pageFile)
	doc, docErr := read(dir + "/" + documentFile)

	pageMissing := errors.Is(pageErr, fs.ErrNotExist)
	docMissing := errors.Is(docErr, fs.ErrNotExist)

	switch {
	case pageMissing && docMissing:
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	case pageErr != nil && !pageMissing:
		return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, pageFile, pageErr)
	case docErr != nil && !docMissing:
		return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, documentFile, docErr)
	case pageMissing:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, pageFile)
	case docMissing:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, documentFile)
	}

	return &TemplateSet{Name: name, Page: string(page), Document: string(doc)}, nil
}
