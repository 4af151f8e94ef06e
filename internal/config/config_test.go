package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adventure705/shortstobenz3/internal/dateutil"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Input.Dir != "data" || cfg.Output.Dir != "pages" {
		t.Errorf("dirs = %q, %q", cfg.Input.Dir, cfg.Output.Dir)
	}
	if got := cfg.Output.OutputName(3); got != "lecture3.html" {
		t.Errorf("OutputName(3) = %q", got)
	}
	if len(cfg.Text.Replacements) != 3 || cfg.Text.Replacements[0].From != "음팔(58)" {
		t.Errorf("replacements = %+v", cfg.Text.Replacements)
	}
	if cfg.TOC.MaxTitleLength != 35 || !cfg.TOC.ExcludeQuestions || cfg.TOC.Layout != "grid" {
		t.Errorf("toc = %+v", cfg.TOC)
	}
	if !cfg.Charts.Enabled || !cfg.Charts.RequireCurrency {
		t.Errorf("charts = %+v", cfg.Charts)
	}
	if cfg.Highlight.Enabled || len(cfg.Highlight.Terms) != 17 {
		t.Errorf("highlight = %+v", cfg.Highlight)
	}
	if cfg.Output.Standalone || cfg.Output.Markdown || cfg.Output.PDF {
		t.Error("optional outputs enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "1234567890", 10); err != nil {
		t.Errorf("value at limit: %v", err)
	}
	err := validateFieldLength("page.badge", "12345678901", 10)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("error = %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "page.badge") {
		t.Errorf("error %q does not name the field", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"accordion layout", func(c *Config) { c.TOC.Layout = "Accordion" }, nil},
		{"empty layout", func(c *Config) { c.TOC.Layout = "" }, nil},
		{"unknown layout", func(c *Config) { c.TOC.Layout = "list" }, ErrInvalidValue},
		{"pattern without placeholder", func(c *Config) { c.Output.Pattern = "lecture.html" }, ErrInvalidValue},
		{"pattern with directory", func(c *Config) { c.Output.Pattern = "out/{n}.html" }, ErrInvalidValue},
		{"bad input glob", func(c *Config) { c.Input.Pattern = "[" }, ErrInvalidValue},
		{"empty replacement source", func(c *Config) { c.Text.Replacements = []Replacement{{From: "", To: "x"}} }, ErrInvalidValue},
		{"long replacement", func(c *Config) { c.Text.Replacements = []Replacement{{From: strings.Repeat("a", MaxTermLength+1)}} }, ErrFieldTooLong},
		{"long term", func(c *Config) { c.Highlight.Terms = []string{strings.Repeat("a", MaxTermLength+1)} }, ErrFieldTooLong},
		{"long badge", func(c *Config) { c.Page.Badge = strings.Repeat("a", MaxBadgeLength+1) }, ErrFieldTooLong},
		{"negative toc length", func(c *Config) { c.TOC.MaxTitleLength = -1 }, ErrInvalidValue},
		{"too many workers", func(c *Config) { c.Workers = MaxWorkers + 1 }, ErrInvalidValue},
		{"bad updated date", func(c *Config) { c.Page.Updated = "auto:" }, dateutil.ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "site.yaml", `
input:
  dir: notes
output:
  pattern: "class-{n}.html"
  standalone: true
toc:
  layout: accordion
  placeholderWords: [Section, Part]
highlight:
  enabled: true
  terms: [수익화]
page:
  showPartLabels: false
workers: 4
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}

		if cfg.Input.Dir != "notes" || cfg.Input.Pattern != "*.json" {
			t.Errorf("input = %+v", cfg.Input)
		}
		if cfg.Output.Dir != "pages" || !cfg.Output.Standalone || cfg.Output.OutputName(2) != "class-2.html" {
			t.Errorf("output = %+v", cfg.Output)
		}
		if cfg.TOC.Layout != "accordion" || len(cfg.TOC.PlaceholderWords) != 2 || cfg.TOC.MaxTitleLength != 35 {
			t.Errorf("toc = %+v", cfg.TOC)
		}
		if !cfg.Highlight.Enabled || len(cfg.Highlight.Terms) != 1 {
			t.Errorf("highlight = %+v", cfg.Highlight)
		}
		if cfg.Page.ShowPartLabels || cfg.Page.Badge != "PREMIUM CLASS" {
			t.Errorf("page = %+v", cfg.Page)
		}
		if cfg.Workers != 4 {
			t.Errorf("workers = %d", cfg.Workers)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "output:\n  folder: x\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "toc:\n  layout: tabs\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("LoadConfig() error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig() error = %v, want ErrEmptyConfigName", err)
		}
	})
}

// Not parallel: modifies XDG_CONFIG_HOME.
func TestLoadConfig_UserConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	writeConfig(t, home, filepath.Join(userConfigDirName, "course-x.yml"), "page:\n  badge: VIP\n")

	cfg, err := LoadConfig("course-x")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Page.Badge != "VIP" {
		t.Errorf("badge = %q, want VIP", cfg.Page.Badge)
	}

	_, err = LoadConfig("course-missing-zz")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
	if err != nil && !strings.Contains(err.Error(), "course-missing-zz.yaml") {
		t.Errorf("error %q does not list tried paths", err)
	}
}

// Not parallel: sets XDG_CONFIG_HOME.
func TestSearchPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got := SearchPaths("site")
	if len(got) != 4 {
		t.Fatalf("SearchPaths() = %v, want 4 candidates", got)
	}
	if got[0] != "site.yaml" || got[1] != "site.yml" {
		t.Errorf("cwd candidates = %v", got[:2])
	}
	if want := filepath.Join(dir, "shortstobenz", "site.yaml"); got[2] != want {
		t.Errorf("user candidate = %q, want %q", got[2], want)
	}
}
