package shortstobenz

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds the settings applied by options.
type converterConfig struct {
	timeout      time.Duration
	logger       zerolog.Logger
	assetPath    string
	templateSet  string
	style        string
	pdfStyle     string
	page         PageSettings
	toc          TOCSettings
	charts       ChartSettings
	replacements []Replacement // nil keeps the built-in table
	sanitize     bool
	highlight    []string // nil disables the highlighter
}

// defaultTimeout bounds page loading during PDF generation.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("shortstobenz: WithTimeout duration must be positive")
	}
	return func(c *Converter) { c.cfg.timeout = d }
}

// WithLogger sets the logger for skipped files and lecture progress.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Converter) { c.cfg.logger = l }
}

// WithAssetPath loads styles and templates from dir, falling back to the
// embedded assets for anything missing.
func WithAssetPath(dir string) Option {
	return func(c *Converter) { c.cfg.assetPath = dir }
}

// WithTemplateSet selects the template set by name.
func WithTemplateSet(name string) Option {
	return func(c *Converter) { c.cfg.templateSet = name }
}

// WithStyle selects the stylesheet inlined into standalone HTML.
func WithStyle(name string) Option {
	return func(c *Converter) { c.cfg.style = name }
}

// WithPDFStyle selects the stylesheet used for PDF output.
func WithPDFStyle(name string) Option {
	return func(c *Converter) { c.cfg.pdfStyle = name }
}

// WithPage sets the page shell.
func WithPage(p PageSettings) Option {
	return func(c *Converter) { c.cfg.page = p }
}

// WithTOC sets the table of contents rules.
func WithTOC(t TOCSettings) Option {
	return func(c *Converter) { c.cfg.toc = t }
}

// WithCharts sets the money chart policy.
func WithCharts(s ChartSettings) Option {
	return func(c *Converter) { c.cfg.charts = s }
}

// WithReplacements replaces the built-in substitution table. Replacements
// apply in order, so list the most specific key first.
func WithReplacements(r []Replacement) Option {
	return func(c *Converter) {
		c.cfg.replacements = append([]Replacement{}, r...)
	}
}

// WithSanitize strips HTML other than the inline markup the pages use.
func WithSanitize(enabled bool) Option {
	return func(c *Converter) { c.cfg.sanitize = enabled }
}

// WithHighlight re-marks terms in every record before parsing, replacing
// any <mark> spans already present.
func WithHighlight(terms []string) Option {
	return func(c *Converter) {
		c.cfg.highlight = append([]string{}, terms...)
	}
}
