package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	shortstobenz "github.com/adventure705/shortstobenz3"
	"github.com/adventure705/shortstobenz3/internal/config"
	"github.com/adventure705/shortstobenz3/internal/fileutil"
)

// LectureResult holds the outcome of one lecture.
type LectureResult struct {
	Lecture     int
	Parts       int
	OutputPaths []string // HTML first, then Markdown and PDF when requested
	Sections    int
	Placeholder string
	Skipped     []shortstobenz.SkippedFile
	Err         error
	Duration    time.Duration
}

// convertBatch converts lectures concurrently, one Converter per worker.
// Results keep the order of lectures.
func convertBatch(ctx context.Context, pool Pool, lectures []shortstobenz.Lecture, out config.OutputConfig) []LectureResult {
	if len(lectures) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(lectures) {
		concurrency = len(lectures)
	}

	results := make([]LectureResult, len(lectures))
	var wg sync.WaitGroup
	jobs := make(chan int, len(lectures))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire()
			if err != nil {
				for idx := range jobs {
					results[idx] = failed(lectures[idx], fmt.Errorf("initializing converter: %w", err))
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = failed(lectures[idx], ctx.Err())
					continue
				}
				results[idx] = convertLecture(ctx, conv, lectures[idx], out)
			}
		}()
	}

	for i := range lectures {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

type outputFile struct {
	path string
	data []byte
}

func failed(lec shortstobenz.Lecture, err error) LectureResult {
	return LectureResult{Lecture: lec.Number, Parts: len(lec.Files), Err: err}
}

// convertLecture converts one lecture and writes its outputs next to each
// other in out.Dir.
func convertLecture(ctx context.Context, conv LectureConverter, lec shortstobenz.Lecture, out config.OutputConfig) LectureResult {
	start := time.Now()
	result := LectureResult{Lecture: lec.Number, Parts: len(lec.Files)}

	res, err := conv.Convert(ctx, shortstobenz.Input{
		Lecture:    lec.Number,
		Files:      lec.Files,
		Standalone: out.Standalone,
		Markdown:   out.Markdown,
		PDF:        out.PDF,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Sections = res.Sections
	result.Placeholder = res.Placeholder
	result.Skipped = res.Skipped

	htmlPath := filepath.Join(out.Dir, out.OutputName(lec.Number))
	outputs := []outputFile{{htmlPath, res.HTML}}
	if res.Markdown != nil {
		outputs = append(outputs, outputFile{fileutil.ReplaceExt(htmlPath, ".md"), res.Markdown})
	}
	if res.PDF != nil {
		outputs = append(outputs, outputFile{fileutil.ReplaceExt(htmlPath, ".pdf"), res.PDF})
	}

	for _, o := range outputs {
		if err := fileutil.WriteFileAtomic(o.path, o.data); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
			result.Duration = time.Since(start)
			return result
		}
		result.OutputPaths = append(result.OutputPaths, o.path)
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary tallies a batch.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Skipped   int // part files left out of otherwise converted lectures
}

func countResults(results []LectureResult) ResultSummary {
	var s ResultSummary
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Succeeded++
		s.Skipped += len(r.Skipped)
	}
	return s
}

// printResults writes one line per output to env.Stdout and failures to
// env.Stderr.
func printResults(results []LectureResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED lecture %d: %v\n", r.Lecture, r.Err)
			continue
		}
		for _, s := range r.Skipped {
			fmt.Fprintf(env.Stderr, "SKIPPED %s: %v\n", s.Path, s.Err)
		}
		if quiet {
			continue
		}
		for _, p := range r.OutputPaths {
			if verbose {
				fmt.Fprintf(env.Stdout, "lecture %d (%d parts, %d sections) -> %s (%v)\n",
					r.Lecture, r.Parts, r.Sections, p, r.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", p)
			}
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}
	return summary
}
