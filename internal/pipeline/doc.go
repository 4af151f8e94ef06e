// Package pipeline implements the lecture-notes structuring pipeline.
//
// This package turns ordered JSON records into a structured Document:
//   - Text normalization (timestamps, term substitutions, **bold** emphasis)
//   - Section parsing into callouts, themed cards and loose prose
//   - Card parsing into subtitle, main list and tip box
//   - Money extraction and bar chart data
//   - Table of contents eligibility and document assembly
//
// HTML layout is handled separately by internal/render. The pipeline never
// emits page markup beyond the inline <strong> and <mark> spans carried by
// normalized text.
package pipeline
