// Package shortstobenz converts lecture notes, stored as JSON arrays of
// section records, into styled HTML lecture pages.
//
// # Quick Start
//
//	conv, err := shortstobenz.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	for _, lec := range shortstobenz.GroupLectures(files) {
//	    res, err := conv.Convert(ctx, shortstobenz.Input{
//	        Lecture: lec.Number,
//	        Files:   lec.Files,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    os.WriteFile(fmt.Sprintf("lecture%d.html", lec.Number), res.HTML, 0o644)
//	}
//
// # Input Files
//
// Each file holds one part of a lecture:
//
//	[{"type": "section", "title": "핵심 전략", "content": ["..."]}]
//
// File names group and order parts: "1강_2부 실전편.json" is part 2 of
// lecture 1. Files without a "N강" marker belong to lecture 1.
//
// # Conversion Pipeline
//
//  1. Text normalization (timestamps, term substitutions, **bold**)
//  2. Section parsing into callouts, cards and prose
//  3. Card parsing into subtitle, main list and tip box, themed by title
//  4. Money charts from amounts such as "300만원" and "1억원"
//  5. Page rendering with html/template: hero, table of contents, sections
//
// Section numbering is global to a lecture and follows file order. A part
// file that cannot be read is skipped and reported in
// ConvertResult.Skipped; the rest of the lecture is still rendered.
//
// # Outputs
//
// Convert returns an HTML fragment by default. Input.Standalone wraps it in a
// full document with the selected stylesheet inlined, Input.Markdown adds a
// Markdown export, and Input.PDF prints the page with headless Chrome.
//
// # Parallel Processing
//
// Lectures share no state, so a batch can run them in parallel:
//
//	pool := shortstobenz.NewConverterPool(shortstobenz.ResolvePoolSize(0))
//	defer pool.Close()
//
//	conv, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(conv)
//
// # Browser Requirements
//
// PDF output requires Chrome/Chromium. go-rod downloads a managed Chromium on
// first use. In containers and CI set ROD_NO_SANDBOX=1, and use
// ROD_BROWSER_BIN to point at an installed binary.
package shortstobenz
