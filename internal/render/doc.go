// Package render turns an assembled lecture document into HTML.
//
// The page template produces a fragment meant to be embedded in the course
// site: hero header, table of contents, then every section of every part with
// an anchor at each part boundary. Renderer.Standalone wraps a fragment in the
// document template and injects a stylesheet for viewing on its own or
// printing to PDF. Exporter converts a rendered fragment to Markdown.
//
// Section text arrives with <strong> and <mark> spans already in place; the
// template functions restyle those spans per context (callout, prose, card
// item) the same way the course site does.
package render
