// Package hints appends actionable advice to CLI error messages, formatted as
// "\n  hint: <text>".
package hints

import (
	"os"
	"strings"

	"github.com/adventure705/shortstobenz3/internal/fileutil"
)

// IsInContainer reports whether the process runs in a Docker container.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for headless browser launch failures.
func ForBrowserConnect() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if (inCI || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	hints = append(hints, "or drop --pdf to write HTML only")

	return format(strings.Join(hints, "; "))
}

// ForConfigNotFound suggests --config, or creating the user config file
// among the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(slashPath(p), ".config/shortstobenz") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForInputDirectory returns hints when no lecture files were found.
func ForInputDirectory(dir string) string {
	return format("place lecture JSON files such as \"1강_1부.json\" in " + dir + " or use --data")
}

// ForOutputDirectory returns hints for output directory errors.
func ForOutputDirectory() string {
	return format("check that the parent directory exists and is writable, or use --out")
}

// ForAssetNotFound lists the built-in names when a style or template set is missing.
func ForAssetNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

func slashPath(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
