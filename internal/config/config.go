package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adventure705/shortstobenz3/internal/dateutil"
	"github.com/adventure705/shortstobenz3/internal/fileutil"
	"github.com/adventure705/shortstobenz3/internal/pipeline"
	"github.com/adventure705/shortstobenz3/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultConfigName is looked up when no config is given explicitly.
const DefaultConfigName = "lecture2html"

// userConfigDirName is the directory under os.UserConfigDir searched for configs.
const userConfigDirName = "shortstobenz"

// LecturePlaceholder is replaced by the lecture number in output.pattern.
const LecturePlaceholder = "{n}"

// Field length limits.
const (
	MaxPathLength        = 4096
	MaxPatternLength     = 100
	MaxBadgeLength       = 50
	MaxTextLength        = 500 // tagline, footer
	MaxDateLength        = 50
	MaxTermLength        = 100 // highlight terms, replacement strings
	MaxWorkers           = 32
	MaxTOCTitleLimit     = 200
	MaxAssetNameLength   = 64
	MaxPlaceholderLength = 50
)

// Config holds every setting of a conversion run.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Text      TextConfig      `yaml:"text"`
	Highlight HighlightConfig `yaml:"highlight"`
	TOC       TOCConfig       `yaml:"toc"`
	Charts    ChartsConfig    `yaml:"charts"`
	Page      PageConfig      `yaml:"page"`
	Assets    AssetsConfig    `yaml:"assets"`
	Workers   int             `yaml:"workers"` // 0 = automatic
}

// InputConfig locates the lecture JSON files.
type InputConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"` // glob matched against file names
}

// OutputConfig controls what is written for each lecture.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	Pattern    string `yaml:"pattern"`    // must contain {n}
	Standalone bool   `yaml:"standalone"` // full HTML document instead of a fragment
	Markdown   bool   `yaml:"markdown"`   // also write a .md export
	PDF        bool   `yaml:"pdf"`        // also print a .pdf with a headless browser
}

// TextConfig controls text normalization.
type TextConfig struct {
	Replacements []Replacement `yaml:"replacements"` // applied in order
	Sanitize     bool          `yaml:"sanitize"`     // drop HTML other than strong/mark/br
}

// Replacement substitutes From with To in every text field.
type Replacement struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// HighlightConfig controls the concept-term highlighter.
type HighlightConfig struct {
	Enabled bool     `yaml:"enabled"`
	Terms   []string `yaml:"terms"`
}

// TOCConfig controls table of contents eligibility and layout.
type TOCConfig struct {
	MaxTitleLength   int      `yaml:"maxTitleLength"` // characters; 0 disables
	ExcludeQuestions bool     `yaml:"excludeQuestions"`
	PlaceholderWords []string `yaml:"placeholderWords"`
	Layout           string   `yaml:"layout"` // grid, accordion
}

// ChartsConfig controls money charts.
type ChartsConfig struct {
	Enabled         bool `yaml:"enabled"`
	RequireCurrency bool `yaml:"requireCurrency"`
}

// PageConfig controls the page shell.
type PageConfig struct {
	Badge          string `yaml:"badge"`
	Tagline        string `yaml:"tagline"` // Markdown
	Footer         string `yaml:"footer"`  // Markdown
	Updated        string `yaml:"updated"` // literal, "auto" or "auto:FORMAT"
	ShowPartLabels bool   `yaml:"showPartLabels"`
}

// AssetsConfig selects templates and styles.
type AssetsConfig struct {
	BasePath    string `yaml:"basePath"` // empty = embedded assets only
	TemplateSet string `yaml:"templateSet"`
	Style       string `yaml:"style"`    // standalone HTML
	PDFStyle    string `yaml:"pdfStyle"` // PDF output
}

// DefaultConfig returns the settings of the course site.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Dir: "data", Pattern: "*.json"},
		Output: OutputConfig{Dir: "pages", Pattern: "lecture{n}.html"},
		Text: TextConfig{Replacements: []Replacement{
			{From: "음팔(58)", To: "Opal (오팔)"},
			{From: "음팔", To: "Opal (오팔)"},
			{From: "58", To: "Opal (오팔)"},
		}},
		Highlight: HighlightConfig{Terms: pipeline.DefaultHighlightTerms()},
		TOC: TOCConfig{
			MaxTitleLength:   pipeline.DefaultMaxTOCTitleLength,
			ExcludeQuestions: true,
			PlaceholderWords: []string{"Section"},
			Layout:           "grid",
		},
		Charts: ChartsConfig{Enabled: true, RequireCurrency: true},
		Page: PageConfig{
			Badge:          "PREMIUM CLASS",
			Tagline:        "AI 워크플로우와 수익화의 핵심을 마스터하세요.",
			Footer:         "ShortsToBenz Class • All Rights Reserved",
			ShowPartLabels: true,
		},
		Assets: AssetsConfig{
			TemplateSet: "default",
			Style:       "neon",
			PDFStyle:    "print",
		},
	}
}

// OutputName returns the output file name of a lecture.
func (o OutputConfig) OutputName(lecture int) string {
	return strings.ReplaceAll(o.Pattern, LecturePlaceholder, fmt.Sprint(lecture))
}

// Validate checks field lengths and enumerated values.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.dir", c.Input.Dir, MaxPathLength},
		{"input.pattern", c.Input.Pattern, MaxPatternLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"output.pattern", c.Output.Pattern, MaxPatternLength},
		{"page.badge", c.Page.Badge, MaxBadgeLength},
		{"page.tagline", c.Page.Tagline, MaxTextLength},
		{"page.footer", c.Page.Footer, MaxTextLength},
		{"page.updated", c.Page.Updated, MaxDateLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.templateSet", c.Assets.TemplateSet, MaxAssetNameLength},
		{"assets.style", c.Assets.Style, MaxAssetNameLength},
		{"assets.pdfStyle", c.Assets.PDFStyle, MaxAssetNameLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Input.Pattern != "" {
		if _, err := filepath.Match(c.Input.Pattern, ""); err != nil {
			return fmt.Errorf("%w: input.pattern: %v", ErrInvalidValue, err)
		}
	}
	if !strings.Contains(c.Output.Pattern, LecturePlaceholder) {
		return fmt.Errorf("%w: output.pattern %q must contain %s", ErrInvalidValue, c.Output.Pattern, LecturePlaceholder)
	}
	if strings.ContainsAny(c.Output.Pattern, `/\`) {
		return fmt.Errorf("%w: output.pattern %q must be a file name", ErrInvalidValue, c.Output.Pattern)
	}

	for i, r := range c.Text.Replacements {
		if r.From == "" {
			return fmt.Errorf("%w: text.replacements[%d].from is empty", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("text.replacements[%d].from", i), r.From, MaxTermLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("text.replacements[%d].to", i), r.To, MaxTermLength); err != nil {
			return err
		}
	}
	for i, term := range c.Highlight.Terms {
		if err := validateFieldLength(fmt.Sprintf("highlight.terms[%d]", i), term, MaxTermLength); err != nil {
			return err
		}
	}
	for i, w := range c.TOC.PlaceholderWords {
		if err := validateFieldLength(fmt.Sprintf("toc.placeholderWords[%d]", i), w, MaxPlaceholderLength); err != nil {
			return err
		}
	}

	if c.TOC.MaxTitleLength < 0 || c.TOC.MaxTitleLength > MaxTOCTitleLimit {
		return fmt.Errorf("%w: toc.maxTitleLength must be between 0 and %d, got %d", ErrInvalidValue, MaxTOCTitleLimit, c.TOC.MaxTitleLength)
	}
	switch strings.ToLower(c.TOC.Layout) {
	case "", "grid", "accordion":
	default:
		return fmt.Errorf("%w: toc.layout %q (must be grid or accordion)", ErrInvalidValue, c.TOC.Layout)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	if _, err := dateutil.ResolveDate(c.Page.Updated, time.Now()); err != nil {
		return fmt.Errorf("page.updated: %w", err)
	}

	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads a config file over DefaultConfig. nameOrPath is a file
// path when it contains a separator, otherwise a name searched as
// name.yaml and name.yml in the current directory and then in
// $XDG_CONFIG_HOME/shortstobenz (or the platform equivalent).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- user-provided config path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrConfigParse, configPath, yamlutil.FormatError(err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	var candidates []string
	for _, ext := range []string{".yaml", ".yml"} {
		candidates = append(candidates, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range []string{".yaml", ".yml"} {
			candidates = append(candidates, filepath.Join(dir, userConfigDirName, name+ext))
		}
	}
	return candidates
}

func resolveConfigPath(name string) (string, error) {
	candidates := SearchPaths(name)
	for _, p := range candidates {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(candidates, ", "))
}
