package main

import (
	"errors"
	"os"

	shortstobenz "github.com/adventure705/shortstobenz3"
	"github.com/adventure705/shortstobenz3/internal/assets"
	"github.com/adventure705/shortstobenz3/internal/config"
	"github.com/adventure705/shortstobenz3/internal/dateutil"
	"github.com/adventure705/shortstobenz3/internal/hints"
)

// Exit codes for lecture2html.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Without --strict, failed lectures and skipped part files still exit 0.
const (
	ExitSuccess = 0 // All lectures written, or best effort without --strict
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or assets
	ExitIO      = 3 // Missing data directory, unwritable output
	ExitBrowser = 4 // Browser/Chrome errors
	ExitPartial = 5 // --strict: a lecture failed or a part file was skipped
)

// Sentinel errors for CLI runs.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrNoInput        = errors.New("no lecture files found")
	ErrOutputDir      = errors.New("cannot create output directory")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrPartialFailure = errors.New("conversion incomplete")
)

// exitCodeFor returns the exit code for an error returned by run.
// It uses errors.Is, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, shortstobenz.ErrBrowserConnect) ||
		errors.Is(err, shortstobenz.ErrPageCreate) ||
		errors.Is(err, shortstobenz.ErrPageLoad) ||
		errors.Is(err, shortstobenz.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, ErrPartialFailure) {
		return ExitPartial
	}

	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, shortstobenz.ErrInvalidAssets) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateSetNotFound) ||
		errors.Is(err, assets.ErrIncompleteTemplateSet) {
		return ExitUsage
	}

	return ExitGeneral
}

// formatError appends actionable hints to err's message.
func formatError(err error) string {
	msg := "error: " + err.Error()

	var cfgErr *configLookupError
	switch {
	case errors.As(err, &cfgErr):
		msg += hints.ForConfigNotFound(config.SearchPaths(cfgErr.name))
	case errors.Is(err, ErrNoInput):
		var inErr *inputDirError
		if errors.As(err, &inErr) {
			msg += hints.ForInputDirectory(inErr.dir)
		}
	case errors.Is(err, ErrOutputDir), errors.Is(err, ErrWriteOutput):
		msg += hints.ForOutputDirectory()
	case exitCodeFor(err) == ExitBrowser:
		msg += hints.ForBrowserConnect()
	case errors.Is(err, assets.ErrStyleNotFound):
		msg += hints.ForAssetNotFound(assets.StyleNames())
	case errors.Is(err, assets.ErrTemplateSetNotFound):
		msg += hints.ForAssetNotFound(assets.TemplateSetNames())
	}
	return msg
}
