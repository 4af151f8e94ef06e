package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxTOCTitleLength excludes sentence-like titles from the TOC.
const DefaultMaxTOCTitleLength = 35

// TOCEntry links to an eligible section.
type TOCEntry struct {
	ID    string
	Title string
}

// TOCPolicy decides which section titles become TOC entries.
type TOCPolicy struct {
	MaxTitleLength   int      // in characters; 0 disables the check
	ExcludeQuestions bool     // titles ending in "?"
	PlaceholderWords []string // generated names such as "Section 3"
}

// DefaultTOCPolicy returns the policy used for the lecture notes.
func DefaultTOCPolicy() TOCPolicy {
	return TOCPolicy{
		MaxTitleLength:   DefaultMaxTOCTitleLength,
		ExcludeQuestions: true,
		PlaceholderWords: []string{"Section"},
	}
}

// tocRule rejects a title when it returns a non-empty reason.
type tocRule func(p TOCPolicy, title string) string

// tocRules run in order; the first rejection wins.
var tocRules = []tocRule{
	func(_ TOCPolicy, title string) string {
		if title == "" {
			return "empty"
		}
		return ""
	},
	func(p TOCPolicy, title string) string {
		if p.ExcludeQuestions && strings.HasSuffix(title, "?") {
			return "question"
		}
		return ""
	},
	func(p TOCPolicy, title string) string {
		if p.MaxTitleLength > 0 && utf8.RuneCountInString(title) > p.MaxTitleLength {
			return "too long"
		}
		return ""
	},
	func(p TOCPolicy, title string) string {
		if containsAny(title, p.PlaceholderWords) && strings.IndexFunc(title, unicode.IsDigit) >= 0 {
			return "placeholder"
		}
		return ""
	},
}

// Reject returns why title is not eligible, or "" if it is.
func (p TOCPolicy) Reject(title string) string {
	for _, rule := range tocRules {
		if reason := rule(p, title); reason != "" {
			return reason
		}
	}
	return ""
}

// Eligible reports whether title may appear in the TOC.
func (p TOCPolicy) Eligible(title string) bool {
	return p.Reject(title) == ""
}

// TOCTitle derives the display title of a TOC entry from a normalized section title.
func TOCTitle(normalizedTitle string) string {
	return StripInlineMarkup(CleanMarkers(normalizedTitle))
}
