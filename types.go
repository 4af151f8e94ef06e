package shortstobenz

// Input describes one lecture conversion.
type Input struct {
	Lecture int      // lecture number, shown in the hero heading
	Files   []string // part files in reading order

	Standalone bool // wrap the fragment in a full HTML document with inlined CSS
	Markdown   bool // also export Markdown
	PDF        bool // also print a PDF with headless Chrome
}

// ConvertResult holds the outputs of one lecture.
type ConvertResult struct {
	Lecture  int
	HTML     []byte
	Markdown []byte // nil unless Input.Markdown
	PDF      []byte // nil unless Input.PDF

	Sections    int           // rendered sections across all parts
	Placeholder string        // message of the placeholder page, empty for real content
	Skipped     []SkippedFile // part files that could not be read
}

// SkippedFile is an input file left out of a lecture.
type SkippedFile struct {
	Path string
	Err  error
}

// Replacement substitutes From with To in all lecture text.
type Replacement struct {
	From string
	To   string
}

// TOC layouts.
const (
	TOCLayoutGrid      = "grid"
	TOCLayoutAccordion = "accordion"
)

// PageSettings configures the page shell around the sections.
type PageSettings struct {
	Badge          string
	Tagline        string // Markdown
	Footer         string // Markdown
	Updated        string // shown under the footer when non-empty
	ShowPartLabels bool
}

// DefaultPageSettings returns the course site's page shell.
func DefaultPageSettings() PageSettings {
	return PageSettings{
		Badge:          "PREMIUM CLASS",
		Tagline:        "AI 워크플로우와 수익화의 핵심을 마스터하세요.",
		Footer:         "ShortsToBenz Class • All Rights Reserved",
		ShowPartLabels: true,
	}
}

// TOCSettings decides which section titles become table of contents entries
// and how the table is laid out.
type TOCSettings struct {
	MaxTitleLength   int
	ExcludeQuestions bool
	PlaceholderWords []string
	Layout           string // TOCLayoutGrid or TOCLayoutAccordion
}

// DefaultTOCSettings returns the eligibility rules of the lecture notes.
func DefaultTOCSettings() TOCSettings {
	return TOCSettings{
		MaxTitleLength:   35,
		ExcludeQuestions: true,
		PlaceholderWords: []string{"Section"},
		Layout:           TOCLayoutGrid,
	}
}

// ChartSettings controls money charts.
type ChartSettings struct {
	Enabled         bool
	RequireCurrency bool // only scan text that mentions 원
}
