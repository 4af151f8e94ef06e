package render

import "errors"

// Sentinel errors for rendering.
var (
	ErrTemplateParse = errors.New("template parsing failed")
	ErrPageRender    = errors.New("page rendering failed")
	ErrMarkdown      = errors.New("markdown conversion failed")
	ErrNilDocument   = errors.New("document is nil")
)
