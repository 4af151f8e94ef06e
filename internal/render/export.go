package render

import (
	"context"
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// Exporter converts rendered lecture HTML to Markdown.
type Exporter struct {
	conv *converter.Converter
}

// NewExporter creates an Exporter with the CommonMark rule set.
func NewExporter() *Exporter {
	return &Exporter{conv: converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)}
}

// Export converts an HTML fragment or document to Markdown.
func (e *Exporter) Export(ctx context.Context, html string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	md, err := e.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdown, err)
	}
	return md, nil
}
