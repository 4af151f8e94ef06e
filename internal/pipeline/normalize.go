package pipeline

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Precompiled patterns for inline markup.
var (
	// Timestamp tokens such as <<123,456>> left by the transcription tool.
	timestampPattern = regexp.MustCompile(`<<.*?>>`)

	// Markdown-style bold: **text**
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

	// Semantic spans produced by normalization or present in the source data.
	emphasisPattern  = regexp.MustCompile(`<strong>(.*?)</strong>`)
	highlightPattern = regexp.MustCompile(`<mark>(.*?)</mark>`)
)

// Emphasis markup emitted for **bold** source spans.
const (
	EmphasisOpen  = "<strong>"
	EmphasisClose = "</strong>"
)

// Replacement is one literal substitution applied during normalization.
type Replacement struct {
	Old string
	New string
}

// DefaultReplacements corrects known transcription errors in the lecture data.
// Order matters: the most specific key comes first so it is not shadowed.
func DefaultReplacements() []Replacement {
	return []Replacement{
		{Old: "음팔(58)", New: "Opal (오팔)"},
		{Old: "음팔", New: "Opal (오팔)"},
		{Old: "58", New: "Opal (오팔)"},
	}
}

// Normalizer cleans raw lecture text. The result is markup-bearing text, not plain text.
type Normalizer struct {
	replacements []Replacement
	sanitizer    *bluemonday.Policy
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithReplacements sets the ordered substitution table (nil disables substitutions).
func WithReplacements(r []Replacement) NormalizerOption {
	return func(n *Normalizer) {
		n.replacements = append([]Replacement(nil), r...)
	}
}

// WithSanitizer strips any HTML other than the inline tags the pipeline understands.
func WithSanitizer() NormalizerOption {
	return func(n *Normalizer) {
		n.sanitizer = inlinePolicy()
	}
}

// NewNormalizer creates a Normalizer using DefaultReplacements unless overridden.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{replacements: DefaultReplacements()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// inlinePolicy allows only the semantic inline tags used downstream.
func inlinePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "mark", "br")
	return p
}

// Normalize removes timestamps, applies substitutions, converts **bold** to
// emphasis markup and trims whitespace. Steps run in this order.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = timestampPattern.ReplaceAllString(text, "")

	for _, r := range n.replacements {
		if r.Old == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.Old, r.New)
	}

	text = boldPattern.ReplaceAllString(text, EmphasisOpen+"${1}"+EmphasisClose)

	if n.sanitizer != nil {
		text = n.sanitizer.Sanitize(text)
	}

	return strings.TrimSpace(text)
}

// HasEmphasis reports whether text carries emphasis markup.
func HasEmphasis(text string) bool {
	return strings.Contains(text, EmphasisOpen)
}

// HighlightToEmphasis rewrites <mark> spans as emphasis spans.
func HighlightToEmphasis(text string) string {
	return highlightPattern.ReplaceAllString(text, EmphasisOpen+"${1}"+EmphasisClose)
}

// StripInlineMarkup drops <mark> and <strong> tags, keeping their content.
func StripInlineMarkup(text string) string {
	text = highlightPattern.ReplaceAllString(text, "${1}")
	return emphasisPattern.ReplaceAllString(text, "${1}")
}

// ReplaceHighlight rewrites <mark> spans using a template such as `<span>${1}</span>`.
func ReplaceHighlight(text, template string) string {
	return highlightPattern.ReplaceAllString(text, template)
}

// ReplaceEmphasis rewrites <strong> spans using a template such as `<span>${1}</span>`.
func ReplaceEmphasis(text, template string) string {
	return emphasisPattern.ReplaceAllString(text, template)
}
