package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/adventure705/shortstobenz3/internal/assets"
	"github.com/adventure705/shortstobenz3/internal/pipeline"
)

// Placeholder messages shown instead of the lecture body.
const (
	NoDataMessage    = "데이터 파일이 없습니다."
	NoContentMessage = "변환할 콘텐츠가 없습니다. JSON 구조를 확인해주세요."
)

// TOCLayout selects how the table of contents is laid out.
type TOCLayout string

// TOC layouts.
const (
	TOCGrid      TOCLayout = "grid"
	TOCAccordion TOCLayout = "accordion"
)

// PageOptions configures the page shell around the lecture content.
type PageOptions struct {
	Badge          string
	Tagline        string // Markdown
	Footer         string // Markdown
	Updated        string // shown under the footer when non-empty
	ShowPartLabels bool
	TOCLayout      TOCLayout
}

// DefaultPageOptions returns the course site defaults.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		Badge:          "PREMIUM CLASS",
		Tagline:        "AI 워크플로우와 수익화의 핵심을 마스터하세요.",
		Footer:         "ShortsToBenz Class • All Rights Reserved",
		ShowPartLabels: true,
		TOCLayout:      TOCGrid,
	}
}

// pageData is the value the page template executes with.
type pageData struct {
	Lecture        int
	Badge          string
	Tagline        template.HTML
	Footer         template.HTML
	Updated        string
	Placeholder    string
	ShowPartLabels bool
	TOCLayout      TOCLayout
	Parts          []pipeline.Part
}

// documentData is the value the document template executes with.
type documentData struct {
	Title   string
	Body    template.HTML
	Scripts bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPageOptions replaces the page shell options.
func WithPageOptions(p PageOptions) Option {
	return func(r *Renderer) { r.opts = p }
}

// WithCSSInjector replaces the stylesheet injector used by Standalone.
func WithCSSInjector(c CSSInjector) Option {
	return func(r *Renderer) { r.css = c }
}

// Renderer executes a template set against assembled documents.
// It is safe for concurrent use once created.
type Renderer struct {
	page     *template.Template
	document *template.Template
	css      CSSInjector
	opts     PageOptions

	tagline template.HTML
	footer  template.HTML
}

// New parses the template set and pre-renders the Markdown page options.
func New(ts *assets.TemplateSet, opts ...Option) (*Renderer, error) {
	if ts == nil {
		return nil, fmt.Errorf("%w: nil template set", ErrTemplateParse)
	}

	r := &Renderer{
		css:  &CSSInjection{},
		opts: DefaultPageOptions(),
	}
	for _, opt := range opts {
		opt(r)
	}

	page, err := template.New("page").Funcs(funcMap()).Parse(ts.Page)
	if err != nil {
		return nil, fmt.Errorf("%w: %s page: %v", ErrTemplateParse, ts.Name, err)
	}
	document, err := template.New("document").Parse(ts.Document)
	if err != nil {
		return nil, fmt.Errorf("%w: %s document: %v", ErrTemplateParse, ts.Name, err)
	}
	r.page, r.document = page, document

	md := NewMarkdown()
	ctx := context.Background()
	if r.tagline, err = md.Inline(ctx, r.opts.Tagline); err != nil {
		return nil, err
	}
	if r.footer, err = md.Inline(ctx, r.opts.Footer); err != nil {
		return nil, err
	}

	return r, nil
}

// Render returns the lecture fragment for doc. A document without sections
// renders the no-data placeholder when no files were given, and the
// no-content placeholder otherwise.
func (r *Renderer) Render(ctx context.Context, doc *pipeline.Document) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := pageData{
		Lecture:        doc.Lecture,
		Badge:          r.opts.Badge,
		Tagline:        r.tagline,
		Footer:         r.footer,
		Updated:        r.opts.Updated,
		ShowPartLabels: r.opts.ShowPartLabels,
		TOCLayout:      r.opts.TOCLayout,
		Parts:          doc.Parts,
	}
	if data.Placeholder = Placeholder(doc); data.Placeholder != "" {
		data.Parts = nil
	}

	var buf bytes.Buffer
	if err := r.page.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: lecture %d: %v", ErrPageRender, doc.Lecture, err)
	}
	return buf.String(), nil
}

// Standalone wraps a fragment in the document template and inlines css.
// With scripts set, the document also loads the Tailwind and Font Awesome
// CDN assets the fragment's classes come from.
func (r *Renderer) Standalone(ctx context.Context, fragment, title, css string, scripts bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	data := documentData{
		Title:   title,
		Body:    template.HTML(fragment), // #nosec G203 -- rendered by Render
		Scripts: scripts,
	}
	if err := r.document.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: document: %v", ErrPageRender, err)
	}
	return r.css.InjectCSS(ctx, buf.String(), css), nil
}

// Title returns the document title of a lecture page.
func Title(lecture int) string {
	return fmt.Sprintf("정규 강의 %d강", lecture)
}

// Placeholder returns the message shown instead of sections, or "" when doc
// has sections.
func Placeholder(doc *pipeline.Document) string {
	if doc.Sections > 0 {
		return ""
	}
	if len(doc.Parts) == 0 && len(doc.Skipped) == 0 {
		return NoDataMessage
	}
	return NoContentMessage
}
