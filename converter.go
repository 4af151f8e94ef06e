package shortstobenz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/adventure705/shortstobenz3/internal/assets"
	"github.com/adventure705/shortstobenz3/internal/pipeline"
	"github.com/adventure705/shortstobenz3/internal/render"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.PartReader = (*pipeline.JSONPartReader)(nil)
	_ render.CSSInjector  = (*render.CSSInjection)(nil)
	_ pdfConverter        = (*rodConverter)(nil)
	_ pdfRenderer         = (*rodRenderer)(nil)
)

// Converter turns the part files of a lecture into a styled page.
// Create with NewConverter, use Convert per lecture, and Close when done.
// A Converter is not safe for concurrent use; use ConverterPool.
type Converter struct {
	cfg       converterConfig
	assembler *pipeline.Assembler
	renderer  *render.Renderer
	exporter  *render.Exporter

	styleCSS string
	pdfCSS   string

	pdfConverter pdfConverter
}

// NewConverter creates a Converter. Assets are loaded and templates parsed
// up front; the browser is started on the first PDF conversion.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:     defaultTimeout,
			logger:      zerolog.Nop(),
			templateSet: assets.DefaultTemplateSetName,
			style:       assets.DefaultStyleName,
			pdfStyle:    assets.PrintStyleName,
			page:        DefaultPageSettings(),
			toc:         DefaultTOCSettings(),
			charts:      ChartSettings{Enabled: true, RequireCurrency: true},
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	loader, err := c.assetLoader()
	if err != nil {
		return nil, err
	}
	ts, err := loader.LoadTemplateSet(c.cfg.templateSet)
	if err != nil {
		return nil, fmt.Errorf("loading template set %q: %w", c.cfg.templateSet, err)
	}
	if c.styleCSS, err = loader.LoadStyle(c.cfg.style); err != nil {
		return nil, fmt.Errorf("loading style %q: %w", c.cfg.style, err)
	}
	if c.pdfCSS, err = loader.LoadStyle(c.cfg.pdfStyle); err != nil {
		return nil, fmt.Errorf("loading PDF style %q: %w", c.cfg.pdfStyle, err)
	}

	c.renderer, err = render.New(ts, render.WithPageOptions(c.pageOptions()))
	if err != nil {
		return nil, fmt.Errorf("initializing renderer: %w", err)
	}
	c.assembler = c.newAssembler()
	c.exporter = render.NewExporter()

	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}
	return c, nil
}

// Convert renders one lecture. Unreadable part files are skipped and listed
// in the result; a lecture without files or sections renders a placeholder
// page and is not an error. Recovers from internal panics so one lecture
// cannot crash a batch.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: lecture %d: %v", input.Lecture, r)
		}
	}()

	if input.Lecture < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLecture, input.Lecture)
	}

	start := time.Now()
	c.cfg.logger.Info().
		Int("lecture", input.Lecture).
		Int("parts", len(input.Files)).
		Msg("processing lecture")

	doc, err := c.assembler.Assemble(ctx, input.Lecture, input.Files)
	if err != nil && !errors.Is(err, pipeline.ErrNoData) && !errors.Is(err, pipeline.ErrNoContent) {
		return nil, err
	}

	res := &ConvertResult{
		Lecture:  input.Lecture,
		Sections: doc.Sections,
		Skipped:  toSkipped(doc.Skipped),
	}
	if err != nil {
		res.Placeholder = render.Placeholder(doc)
		c.cfg.logger.Warn().Err(err).Int("lecture", input.Lecture).Msg("rendering placeholder page")
	}

	fragment, err := c.renderer.Render(ctx, doc)
	if err != nil {
		return nil, err
	}
	title := render.Title(input.Lecture)

	page := fragment
	if input.Standalone {
		if page, err = c.renderer.Standalone(ctx, fragment, title, c.styleCSS, true); err != nil {
			return nil, err
		}
	}
	res.HTML = []byte(page)

	if input.Markdown {
		md, err := c.exporter.Export(ctx, fragment)
		if err != nil {
			return nil, fmt.Errorf("exporting markdown: %w", err)
		}
		res.Markdown = []byte(md)
	}

	if input.PDF {
		printable, err := c.renderer.Standalone(ctx, fragment, title, c.pdfCSS, true)
		if err != nil {
			return nil, err
		}
		if res.PDF, err = c.pdfConverter.ToPDF(ctx, printable); err != nil {
			return nil, fmt.Errorf("converting to PDF: %w", err)
		}
	}

	c.cfg.logger.Debug().
		Int("lecture", input.Lecture).
		Int("sections", res.Sections).
		Int("skipped", len(res.Skipped)).
		Dur("elapsed", time.Since(start)).
		Msg("lecture converted")
	return res, nil
}

// Close releases the headless browser, if one was started.
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

func (c *Converter) assetLoader() (assets.AssetLoader, error) {
	for _, name := range []string{c.cfg.templateSet, c.cfg.style, c.cfg.pdfStyle} {
		if err := assets.ValidateAssetName(name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssets, err)
		}
	}
	if c.cfg.assetPath == "" {
		return assets.NewEmbeddedLoader(), nil
	}
	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssets, err)
	}
	return resolver, nil
}

func (c *Converter) newAssembler() *pipeline.Assembler {
	var nopts []pipeline.NormalizerOption
	if c.cfg.replacements != nil {
		reps := make([]pipeline.Replacement, len(c.cfg.replacements))
		for i, r := range c.cfg.replacements {
			reps[i] = pipeline.Replacement{Old: r.From, New: r.To}
		}
		nopts = append(nopts, pipeline.WithReplacements(reps))
	}
	if c.cfg.sanitize {
		nopts = append(nopts, pipeline.WithSanitizer())
	}

	parser := pipeline.NewSectionParser(
		pipeline.NewNormalizer(nopts...),
		pipeline.ChartPolicy{Enabled: c.cfg.charts.Enabled, RequireCurrency: c.cfg.charts.RequireCurrency},
	)

	aopts := []pipeline.AssemblerOption{
		pipeline.WithTOCPolicy(pipeline.TOCPolicy{
			MaxTitleLength:   c.cfg.toc.MaxTitleLength,
			ExcludeQuestions: c.cfg.toc.ExcludeQuestions,
			PlaceholderWords: c.cfg.toc.PlaceholderWords,
		}),
		pipeline.WithLogger(c.cfg.logger),
	}
	if c.cfg.highlight != nil {
		aopts = append(aopts, pipeline.WithHighlighter(pipeline.NewHighlighter(c.cfg.highlight)))
	}
	return pipeline.NewAssembler(parser, aopts...)
}

func (c *Converter) pageOptions() render.PageOptions {
	layout := render.TOCGrid
	if c.cfg.toc.Layout == TOCLayoutAccordion {
		layout = render.TOCAccordion
	}
	return render.PageOptions{
		Badge:          c.cfg.page.Badge,
		Tagline:        c.cfg.page.Tagline,
		Footer:         c.cfg.page.Footer,
		Updated:        c.cfg.page.Updated,
		ShowPartLabels: c.cfg.page.ShowPartLabels,
		TOCLayout:      layout,
	}
}

func toSkipped(in []pipeline.SkippedFile) []SkippedFile {
	if len(in) == 0 {
		return nil
	}
	out := make([]SkippedFile, len(in))
	for i, s := range in {
		out[i] = SkippedFile{Path: s.Path, Err: s.Err}
	}
	return out
}
