package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// RecordTypeSection is the only record type the pipeline renders.
const RecordTypeSection = "section"

// Marker glyphs that turn a section into a callout.
const (
	PinMarker  = "📌"
	BulbMarker = "💡"
)

var (
	// "1. Title:" or "**Title**" on the first line of a content block.
	cardHeaderPattern = regexp.MustCompile(`^(\d+\.)?\s*(?:\*\*)?(.*?)(?:\*\*)?(:)?$`)

	// Leading ordinal such as "2. " on card item lines.
	ordinalPrefixPattern = regexp.MustCompile(`^\d+\.\s*`)

	// Content blocks that carry no text.
	placeholderBlocks = []string{"![image]()"}

	warningCalloutWords = []string{"경고", "trash", "금지"}
)

// Record is one JSON object of an input file.
type Record struct {
	Type    string   `json:"type"`
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// CalloutKind selects the callout palette.
type CalloutKind string

// Callout kinds.
const (
	CalloutWarning CalloutKind = "warning"
	CalloutInfo    CalloutKind = "info"
)

// Callout is a top-level highlighted box rendered instead of a section body.
type Callout struct {
	Kind       CalloutKind
	Title      string
	Paragraphs []string
}

// Prose is a loose paragraph of a section.
type Prose struct {
	Text  string
	Chart *Chart
}

// Section is a parsed record. Callout sections carry no cards or prose.
type Section struct {
	Index   int
	ID      string
	Title   string
	Callout *Callout
	Prose   []Prose
	Cards   []Card
}

// IsCallout reports whether the section renders as a callout box.
func (s Section) IsCallout() bool {
	return s.Callout != nil
}

// SectionID returns the anchor id of the section with the given global index.
func SectionID(index int) string {
	return fmt.Sprintf("lecture-part-%d", index)
}

// ChartPolicy controls when money charts are attached to text blocks.
type ChartPolicy struct {
	Enabled         bool
	RequireCurrency bool // only scan blocks that mention 원
}

// DefaultChartPolicy enables charts for blocks that mention a currency.
func DefaultChartPolicy() ChartPolicy {
	return ChartPolicy{Enabled: true, RequireCurrency: true}
}

// chartFor returns a chart for text if the policy allows one.
func (p ChartPolicy) chartFor(text string) *Chart {
	if !p.Enabled {
		return nil
	}
	if p.RequireCurrency && !strings.Contains(text, "원") {
		return nil
	}
	return ChartFor(StripInlineMarkup(text))
}

// SectionParser turns records into sections.
type SectionParser struct {
	normalizer *Normalizer
	charts     ChartPolicy
}

// NewSectionParser creates a SectionParser.
func NewSectionParser(n *Normalizer, charts ChartPolicy) *SectionParser {
	if n == nil {
		n = NewNormalizer()
	}
	return &SectionParser{normalizer: n, charts: charts}
}

// Parse converts one record into a section with the given global index.
func (p *SectionParser) Parse(rec Record, index int) Section {
	title := HighlightToEmphasis(p.normalizer.Normalize(rec.Title))

	sec := Section{
		Index: index,
		ID:    SectionID(index),
		Title: title,
	}

	if isCalloutTitle(title) {
		sec.Callout = p.parseCallout(title, rec.Content)
		return sec
	}

	for _, raw := range rec.Content {
		if isPlaceholderBlock(raw) {
			continue
		}
		cleaned := p.normalizer.Normalize(raw)
		if cleaned == "" {
			continue
		}

		if card, ok := p.parseCardBlock(cleaned); ok {
			sec.Cards = append(sec.Cards, card)
			continue
		}
		sec.Prose = append(sec.Prose, Prose{Text: cleaned, Chart: p.charts.chartFor(cleaned)})
	}

	return sec
}

// parseCardBlock treats a multi-line block, or a line with emphasis, as a card.
func (p *SectionParser) parseCardBlock(cleaned string) (Card, bool) {
	lines := strings.Split(cleaned, "\n")
	first := strings.TrimSpace(lines[0])

	m := cardHeaderPattern.FindStringSubmatch(first)
	if m == nil || (len(lines) < 2 && !HasEmphasis(first)) {
		return Card{}, false
	}

	var items []string
	for _, l := range lines[1:] {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		items = append(items, ordinalPrefixPattern.ReplaceAllString(l, ""))
	}

	card := ParseCard(strings.TrimSpace(m[2]), items, p.normalizer)
	card.Chart = p.charts.chartFor(card.Text())
	return card, true
}

// parseCallout builds a warning or info box from a marker-titled record.
func (p *SectionParser) parseCallout(title string, content []string) *Callout {
	clean := CleanMarkers(title)

	kind := CalloutInfo
	lower := strings.ToLower(clean)
	for _, w := range warningCalloutWords {
		if strings.Contains(lower, w) {
			kind = CalloutWarning
			break
		}
	}

	c := &Callout{Kind: kind, Title: clean}
	for _, line := range content {
		cleaned := p.normalizer.Normalize(line)
		if cleaned == "" {
			continue
		}
		c.Paragraphs = append(c.Paragraphs, cleaned)
	}
	return c
}

// CleanMarkers removes callout marker glyphs from a title.
func CleanMarkers(title string) string {
	title = strings.ReplaceAll(title, PinMarker, "")
	title = strings.ReplaceAll(title, BulbMarker, "")
	return strings.TrimSpace(title)
}

func isCalloutTitle(title string) bool {
	return strings.Contains(title, PinMarker) || strings.Contains(title, BulbMarker)
}

func isPlaceholderBlock(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return true
	}
	for _, p := range placeholderBlocks {
		if trimmed == p {
			return true
		}
	}
	return false
}
