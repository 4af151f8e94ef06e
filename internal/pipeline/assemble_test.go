package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/text/unicode/norm"
)

// mockPartReader serves records from memory.
type mockPartReader struct {
	parts map[string][]Record
	errs  map[string]error
}

func (m *mockPartReader) ReadPart(_ context.Context, path string) ([]Record, error) {
	if err, ok := m.errs[path]; ok {
		return nil, err
	}
	return m.parts[path], nil
}

func sections(titles ...string) []Record {
	recs := make([]Record, len(titles))
	for i, title := range titles {
		recs[i] = Record{Type: RecordTypeSection, Title: title, Content: []string{"본문 " + title}}
	}
	return recs
}

func newTestAssembler(r PartReader, opts ...AssemblerOption) *Assembler {
	opts = append([]AssemblerOption{WithPartReader(r)}, opts...)
	return NewAssembler(NewSectionParser(nil, DefaultChartPolicy()), opts...)
}

func TestAssembler_GlobalIndices(t *testing.T) {
	t.Parallel()

	r := &mockPartReader{parts: map[string][]Record{
		"1강_1부 기초.json": sections("a", "b", "c"),
		"1강_2부 실전.json": sections("d", "e"),
	}}
	doc, err := newTestAssembler(r).Assemble(context.Background(), 1, []string{"1강_1부 기초.json", "1강_2부 실전.json"})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if len(doc.Parts) != 2 {
		t.Fatalf("Parts = %d, want 2", len(doc.Parts))
	}
	if doc.Sections != 5 {
		t.Errorf("Sections = %d, want 5", doc.Sections)
	}

	want := 0
	for _, p := range doc.Parts {
		for _, s := range p.Sections {
			if s.Index != want {
				t.Errorf("section %q index = %d, want %d", s.Title, s.Index, want)
			}
			if s.ID != fmt.Sprintf("lecture-part-%d", want) {
				t.Errorf("section %q id = %s", s.Title, s.ID)
			}
			want++
		}
	}

	if doc.Parts[0].Title != "1부 기초" || doc.Parts[1].Title != "2부 실전" {
		t.Errorf("part titles = %q, %q", doc.Parts[0].Title, doc.Parts[1].Title)
	}
	if doc.Parts[1].ID != "part-2" {
		t.Errorf("part id = %s, want part-2", doc.Parts[1].ID)
	}
	if got := doc.Parts[1].Entries[0].ID; got != "lecture-part-3" {
		t.Errorf("entry id = %s, want lecture-part-3", got)
	}
}

func TestAssembler_PartialFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := &mockPartReader{
		parts: map[string][]Record{
			"a.json": sections("a1", "a2"),
			"c.json": sections("c1"),
		},
		errs: map[string]error{"b.json": fmt.Errorf("%w: broken", ErrParsePart)},
	}

	doc, err := newTestAssembler(r, WithLogger(logger)).Assemble(context.Background(), 2, []string{"a.json", "b.json", "c.json"})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if len(doc.Parts) != 2 {
		t.Fatalf("Parts = %d, want 2", len(doc.Parts))
	}
	if doc.Parts[1].ID != "part-3" {
		t.Errorf("third file part id = %s, want part-3", doc.Parts[1].ID)
	}
	if got := doc.Parts[1].Sections[0].Index; got != 2 {
		t.Errorf("index after skipped file = %d, want 2", got)
	}
	if len(doc.Skipped) != 1 || doc.Skipped[0].Path != "b.json" || !errors.Is(doc.Skipped[0].Err, ErrParsePart) {
		t.Errorf("Skipped = %+v", doc.Skipped)
	}

	out := buf.String()
	for _, want := range []string{"skipping part file", `"file":"b.json"`, `"part":2`, `"lecture":2`} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %s: %s", want, out)
		}
	}
}

func TestAssembler_RealFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeFile(t, dir, "1강_1부.json", `[{"type":"section","title":"핵심 전략","content":["본문"]}]`)
	b := writeFile(t, dir, "1강_2부.json", `[{"type":"section"`)
	c := writeFile(t, dir, "1강_3부.json", `[{"type":"section","title":"마무리","content":["끝"]}]`)

	doc, err := NewAssembler(nil).Assemble(context.Background(), 1, []string{a, b, c})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if len(doc.Parts) != 2 || len(doc.Skipped) != 1 {
		t.Fatalf("Parts/Skipped = %d/%d, want 2/1", len(doc.Parts), len(doc.Skipped))
	}
	if doc.Skipped[0].Path != filepath.Join(dir, "1강_2부.json") {
		t.Errorf("skipped = %s", doc.Skipped[0].Path)
	}
}

func TestAssembler_Empty(t *testing.T) {
	t.Parallel()

	t.Run("no files", func(t *testing.T) {
		t.Parallel()

		doc, err := NewAssembler(nil).Assemble(context.Background(), 4, nil)
		if !errors.Is(err, ErrNoData) {
			t.Errorf("error = %v, want ErrNoData", err)
		}
		if doc == nil || doc.Lecture != 4 {
			t.Errorf("doc = %+v, want placeholder for lecture 4", doc)
		}
	})

	t.Run("no section records", func(t *testing.T) {
		t.Parallel()

		r := &mockPartReader{parts: map[string][]Record{
			"a.json": {{Type: "meta", Title: "x"}},
		}}
		doc, err := newTestAssembler(r).Assemble(context.Background(), 1, []string{"a.json"})
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("error = %v, want ErrNoContent", err)
		}
		if doc == nil {
			t.Fatal("doc = nil")
		}
	})

	t.Run("every file unreadable", func(t *testing.T) {
		t.Parallel()

		r := &mockPartReader{errs: map[string]error{"a.json": ErrReadPart}}
		_, err := newTestAssembler(r).Assemble(context.Background(), 1, []string{"a.json"})
		if !errors.Is(err, ErrNoContent) {
			t.Errorf("error = %v, want ErrNoContent", err)
		}
	})
}

func TestAssembler_Options(t *testing.T) {
	t.Parallel()

	r := &mockPartReader{parts: map[string][]Record{
		"a.json": {
			{Type: RecordTypeSection, Title: "수익화 로드맵", Content: []string{"수익화 전략"}},
			{Type: RecordTypeSection, Title: "Section 2"},
			{Type: "note", Title: "무시"},
			{Type: RecordTypeSection, Title: "왜 지금인가?"},
		},
	}}

	t.Run("default policy and highlighter", func(t *testing.T) {
		t.Parallel()

		doc, err := newTestAssembler(r, WithHighlighter(NewHighlighter([]string{"수익화"}))).
			Assemble(context.Background(), 1, []string{"a.json"})
		if err != nil {
			t.Fatalf("Assemble() error = %v", err)
		}

		part := doc.Parts[0]
		if len(part.Sections) != 3 {
			t.Errorf("Sections = %d, want 3", len(part.Sections))
		}
		if len(part.Entries) != 1 || part.Entries[0].Title != "수익화 로드맵" {
			t.Errorf("Entries = %+v", part.Entries)
		}
		if got := part.Sections[0].Prose[0].Text; got != "<mark>수익화</mark> 전략" {
			t.Errorf("prose = %q", got)
		}
		if got := part.Sections[0].Title; got != "<strong>수익화</strong> 로드맵" {
			t.Errorf("title = %q", got)
		}
	})

	t.Run("permissive policy", func(t *testing.T) {
		t.Parallel()

		doc, err := newTestAssembler(r, WithTOCPolicy(TOCPolicy{})).
			Assemble(context.Background(), 1, []string{"a.json"})
		if err != nil {
			t.Fatalf("Assemble() error = %v", err)
		}
		if got := len(doc.Parts[0].Entries); got != 3 {
			t.Errorf("Entries = %d, want 3", got)
		}
	})
}

func TestAssembler_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &mockPartReader{parts: map[string][]Record{"a.json": sections("a")}}
	_, err := newTestAssembler(r).Assemble(ctx, 1, []string{"a.json"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestPartTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		position int
		want     string
	}{
		{"part label", "1강_2부 실전편.json", 1, "2부 실전편"},
		{"nested path", "data/3강 1부.json", 0, "1부"},
		{"no part label", "notes.json", 0, "PART 1"},
		{"positional", "extra.json", 2, "PART 3"},
		{"part word without number", "부록.json", 0, "부록"},
		{"decomposed name", norm.NFD.String("1강_2부 실전.json"), 0, "2부 실전"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PartTitle(tt.path, tt.position); got != tt.want {
				t.Errorf("PartTitle(%q, %d) = %q, want %q", tt.path, tt.position, got, tt.want)
			}
		})
	}
}
