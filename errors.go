package shortstobenz

import (
	"errors"

	"github.com/adventure705/shortstobenz3/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInvalidLecture = errors.New("lecture number must be positive")
	ErrInvalidAssets  = errors.New("invalid asset configuration")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPoolClosed     = errors.New("converter pool is closed")
)

// Errors reported for input files. Convert never returns them directly:
// unreadable files are listed in ConvertResult.Skipped, and empty lectures
// render a placeholder page.
var (
	ErrReadPart  = pipeline.ErrReadPart
	ErrParsePart = pipeline.ErrParsePart
	ErrNoData    = pipeline.ErrNoData
	ErrNoContent = pipeline.ErrNoContent
)
