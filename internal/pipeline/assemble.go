package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"
)

// Sentinel errors for document assembly. Both are returned together with a
// placeholder Document so callers can still render a page.
var (
	ErrNoData    = errors.New("no input files")
	ErrNoContent = errors.New("no section records found")
)

// partTitlePattern extracts "2부 실전편" from "1강_2부 실전편.json".
var partTitlePattern = regexp.MustCompile(`(\d+부.*?)\.`)

// Part groups the sections read from one input file.
type Part struct {
	Title    string
	ID       string
	Entries  []TOCEntry
	Sections []Section
}

// SkippedFile records an input file that could not be read.
type SkippedFile struct {
	Path string
	Err  error
}

// Document is an assembled lecture.
type Document struct {
	Lecture  int
	Parts    []Part
	Skipped  []SkippedFile
	Sections int // total sections across parts
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithPartReader replaces the file reader.
func WithPartReader(r PartReader) AssemblerOption {
	return func(a *Assembler) { a.reader = r }
}

// WithTOCPolicy replaces the TOC eligibility policy.
func WithTOCPolicy(p TOCPolicy) AssemblerOption {
	return func(a *Assembler) { a.toc = p }
}

// WithHighlighter runs h over every record before parsing.
func WithHighlighter(h *Highlighter) AssemblerOption {
	return func(a *Assembler) { a.highlighter = h }
}

// WithLogger sets the logger used for skipped files.
func WithLogger(l zerolog.Logger) AssemblerOption {
	return func(a *Assembler) { a.logger = l }
}

// Assembler builds a Document from the ordered part files of one lecture.
type Assembler struct {
	reader      PartReader
	parser      *SectionParser
	normalizer  *Normalizer
	toc         TOCPolicy
	highlighter *Highlighter
	logger      zerolog.Logger
}

// NewAssembler creates an Assembler around a section parser.
func NewAssembler(parser *SectionParser, opts ...AssemblerOption) *Assembler {
	if parser == nil {
		parser = NewSectionParser(nil, DefaultChartPolicy())
	}
	a := &Assembler{
		reader:     &JSONPartReader{},
		parser:     parser,
		normalizer: parser.normalizer,
		toc:        DefaultTOCPolicy(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble reads files in the given order. Section indices are global to the
// lecture and never reset between files. A file that cannot be read is logged,
// recorded in Document.Skipped and does not stop the remaining files.
//
// Returns ErrNoData for an empty file list and ErrNoContent when no section
// records were found; the returned Document is non-nil in both cases.
func (a *Assembler) Assemble(ctx context.Context, lecture int, files []string) (*Document, error) {
	doc := &Document{Lecture: lecture}
	if len(files) == 0 {
		return doc, ErrNoData
	}

	index := 0
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		records, err := a.reader.ReadPart(ctx, path)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			a.logger.Warn().
				Err(err).
				Str("file", path).
				Int("lecture", lecture).
				Int("part", i+1).
				Msg("skipping part file")
			doc.Skipped = append(doc.Skipped, SkippedFile{Path: path, Err: err})
			continue
		}

		part := Part{
			Title: PartTitle(path, i),
			ID:    fmt.Sprintf("part-%d", i+1),
		}
		for _, rec := range records {
			if rec.Type != RecordTypeSection {
				continue
			}
			if a.highlighter != nil {
				rec = a.highlighter.Apply(rec)
			}

			sec := a.parser.Parse(rec, index)
			if title := TOCTitle(a.normalizer.Normalize(rec.Title)); a.toc.Eligible(title) {
				part.Entries = append(part.Entries, TOCEntry{ID: sec.ID, Title: title})
			}
			part.Sections = append(part.Sections, sec)
			index++
		}
		doc.Parts = append(doc.Parts, part)
	}

	doc.Sections = index
	if index == 0 {
		return doc, ErrNoContent
	}
	return doc, nil
}

// PartTitle derives a display title from a file name. Names containing a
// "N부" label use that segment, other names containing 부 fall back to the
// stem, and the rest get a positional "PART n" title.
func PartTitle(path string, position int) string {
	name := norm.NFC.String(filepath.Base(path))
	if !strings.Contains(name, "부") {
		return fmt.Sprintf("PART %d", position+1)
	}
	if m := partTitlePattern.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
