package pipeline

import (
	"regexp"
	"sort"
	"strings"
)

var markTagPattern = regexp.MustCompile(`</?mark>`)

// DefaultHighlightTerms are the concept terms marked in the lecture notes.
func DefaultHighlightTerms() []string {
	return []string{
		"본질",
		"생산성",
		"워크플로우",
		"기획력",
		"글쓰기 구조",
		"기승전결",
		"일관성",
		"저품질 콘텐츠",
		"콘텐츠 제작 가이드라인",
		"클멍",
		"수익화",
		"나만의 것",
		"시스템",
		"자동화",
		"대본",
		"스토리보드",
		"실행력",
	}
}

// Highlighter replaces existing <mark> spans with marks around a fixed term list.
type Highlighter struct {
	pattern *regexp.Regexp // nil when there are no terms
}

// NewHighlighter compiles terms into a single alternation, longest term first,
// so "콘텐츠 제작 가이드라인" wins over any shorter overlapping term.
func NewHighlighter(terms []string) *Highlighter {
	sorted := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != "" {
			sorted = append(sorted, t)
		}
	}
	if len(sorted) == 0 {
		return &Highlighter{}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return len([]rune(sorted[i])) > len([]rune(sorted[j]))
	})

	quoted := make([]string, len(sorted))
	for i, t := range sorted {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return &Highlighter{pattern: regexp.MustCompile(strings.Join(quoted, "|"))}
}

// Highlight strips existing marks and marks every term occurrence in one pass.
func (h *Highlighter) Highlight(text string) string {
	text = markTagPattern.ReplaceAllString(text, "")
	if h.pattern == nil {
		return text
	}
	return h.pattern.ReplaceAllString(text, "<mark>${0}</mark>")
}

// Apply highlights the title and content of a record.
func (h *Highlighter) Apply(r Record) Record {
	r.Title = h.Highlight(r.Title)
	content := make([]string, len(r.Content))
	for i, c := range r.Content {
		content[i] = h.Highlight(c)
	}
	r.Content = content
	return r
}
