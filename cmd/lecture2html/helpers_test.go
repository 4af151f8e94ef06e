package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	shortstobenz "github.com/adventure705/shortstobenz3"
)

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// testEnv returns an environment with captured output and the given
// environment variables.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			sort.Strings(out)
			return out
		},
		NewPool: newConverterPool,
	}
	return env, &stdout, &stderr
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// workspace creates data/, a config pointing at data/ and pages/, and
// returns the root and the config path.
func workspace(t *testing.T, parts map[string]string, extraConfig string) (string, string) {
	t.Helper()
	root := t.TempDir()
	for name, content := range parts {
		writeFile(t, filepath.Join(root, "data", name), content)
	}
	cfg := "input:\n  dir: " + filepath.Join(root, "data") +
		"\noutput:\n  dir: " + filepath.Join(root, "pages") + "\n" + extraConfig
	cfgPath := filepath.Join(root, "site.yaml")
	writeFile(t, cfgPath, cfg)
	return root, cfgPath
}

const sectionPart = `[
  {"type": "section", "title": "핵심 전략", "content": ["월 300만원에서 1억원으로"]},
  {"type": "section", "title": "💡 알아두기", "content": ["**꾸준함**이 중요합니다"]}
]`

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func containsAll(s string, subs ...string) string {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return sub
		}
	}
	return ""
}

// fakeConverter records the lectures it converts.
type fakeConverter struct {
	mu     sync.Mutex
	calls  []shortstobenz.Input
	result shortstobenz.ConvertResult
	err    error
}

func (f *fakeConverter) Convert(ctx context.Context, input shortstobenz.Input) (*shortstobenz.ConvertResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, input)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	res := f.result
	res.Lecture = input.Lecture
	return &res, nil
}

// fakePool hands out a single shared converter.
type fakePool struct {
	conv       LectureConverter
	acquireErr error
	size       int
	closed     bool
}

func (p *fakePool) Acquire() (LectureConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *fakePool) Release(LectureConverter) {}
func (p *fakePool) Size() int               { return p.size }
func (p *fakePool) Close() error            { p.closed = true; return nil }

var _ Pool = (*fakePool)(nil)
