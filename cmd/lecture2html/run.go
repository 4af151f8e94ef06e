package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	shortstobenz "github.com/adventure705/shortstobenz3"
	"github.com/adventure705/shortstobenz3/internal/config"
	"github.com/adventure705/shortstobenz3/internal/dateutil"
	"github.com/adventure705/shortstobenz3/internal/fileutil"
)

// configLookupError reports a config name that resolved to no file.
type configLookupError struct {
	name string
	err  error
}

func (e *configLookupError) Error() string { return e.err.Error() }
func (e *configLookupError) Unwrap() error { return e.err }

// run converts every lecture under the data directory. Failed lectures and
// skipped part files are reported but only fail the run with --strict.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseFlags(args[1:], env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "lecture2html %s\n", Version)
		return nil
	}

	logger := newLogger(env.Stderr, flags.quiet, flags.verbose)
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logger)
	}
	warnUnknownEnvVars(env.Environ(), logger)

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.config, envCfg.ConfigPath, logger)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	updated, err := dateutil.ResolveDate(cfg.Page.Updated, env.Now())
	if err != nil {
		return fmt.Errorf("page.updated: %w", err)
	}

	files, err := discoverInputs(cfg.Input)
	if err != nil {
		if flags.strict || !errors.Is(err, ErrNoInput) {
			return err
		}
		logger.Warn().Err(err).Msg("nothing to convert")
		return nil
	}
	lectures := shortstobenz.GroupLectures(files)
	if len(lectures) == 0 {
		if flags.strict {
			return &inputDirError{dir: cfg.Input.Dir, err: errors.New("no files match " + cfg.Input.Pattern)}
		}
		logger.Warn().Str("dir", cfg.Input.Dir).Str("pattern", cfg.Input.Pattern).Msg("no lecture files found")
		return nil
	}

	if err := fileutil.EnsureDir(cfg.Output.Dir); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputDir, err)
	}

	size := shortstobenz.ResolvePoolSize(cfg.Workers)
	logger.Debug().Int("pool", size).Int("lectures", len(lectures)).Msg("starting conversion")

	pool := env.NewPool(size, converterOptions(cfg, updated, flags, logger)...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn().Err(err).Msg("closing browsers")
		}
	}()

	// Asset and template errors are settings errors, not per-lecture failures.
	conv, err := pool.Acquire()
	if err != nil {
		return fmt.Errorf("initializing converter: %w", err)
	}
	pool.Release(conv)

	results := convertBatch(ctx, pool, lectures, cfg.Output)

	summary := printResults(results, flags.quiet, flags.verbose, env)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	if !flags.quiet {
		fmt.Fprintln(env.Stdout, "All conversions complete.")
	}

	if !flags.strict || (summary.Failed == 0 && summary.Skipped == 0) {
		return nil
	}
	return strictError(results, summary)
}

// strictError reports an incomplete batch, keeping the first lecture error
// so browser failures map to their own exit code.
func strictError(results []LectureResult, summary ResultSummary) error {
	err := fmt.Errorf("%w: %d lectures failed, %d part files skipped",
		ErrPartialFailure, summary.Failed, summary.Skipped)
	for _, r := range results {
		if r.Err != nil {
			return errors.Join(err, r.Err)
		}
	}
	return err
}

// loadConfig loads the explicit config, else LECTURE2HTML_CONFIG, else the
// default config name when such a file exists, else the built-in defaults.
func loadConfig(flagValue, envValue string, logger zerolog.Logger) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	explicit := name != ""
	if !explicit {
		name = config.DefaultConfigName
	}

	cfg, err := config.LoadConfig(name)
	switch {
	case err == nil:
		logger.Debug().Str("config", name).Msg("loaded config")
		return cfg, nil
	case errors.Is(err, config.ErrConfigNotFound) && !explicit:
		return config.DefaultConfig(), nil
	case errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name):
		return nil, &configLookupError{name: name, err: fmt.Errorf("loading config: %w", err)}
	default:
		return nil, fmt.Errorf("loading config: %w", err)
	}
}

// converterOptions maps settings to library options.
func converterOptions(cfg *config.Config, updated string, flags *cliFlags, logger zerolog.Logger) []shortstobenz.Option {
	replacements := make([]shortstobenz.Replacement, len(cfg.Text.Replacements))
	for i, r := range cfg.Text.Replacements {
		replacements[i] = shortstobenz.Replacement{From: r.From, To: r.To}
	}

	opts := []shortstobenz.Option{
		shortstobenz.WithLogger(logger),
		shortstobenz.WithReplacements(replacements),
		shortstobenz.WithSanitize(cfg.Text.Sanitize),
		shortstobenz.WithTOC(shortstobenz.TOCSettings{
			MaxTitleLength:   cfg.TOC.MaxTitleLength,
			ExcludeQuestions: cfg.TOC.ExcludeQuestions,
			PlaceholderWords: cfg.TOC.PlaceholderWords,
			Layout:           cfg.TOC.Layout,
		}),
		shortstobenz.WithCharts(shortstobenz.ChartSettings{
			Enabled:         cfg.Charts.Enabled,
			RequireCurrency: cfg.Charts.RequireCurrency,
		}),
		shortstobenz.WithPage(shortstobenz.PageSettings{
			Badge:          cfg.Page.Badge,
			Tagline:        cfg.Page.Tagline,
			Footer:         cfg.Page.Footer,
			Updated:        updated,
			ShowPartLabels: cfg.Page.ShowPartLabels,
		}),
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, shortstobenz.WithHighlight(cfg.Highlight.Terms))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, shortstobenz.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Assets.TemplateSet != "" {
		opts = append(opts, shortstobenz.WithTemplateSet(cfg.Assets.TemplateSet))
	}
	if cfg.Assets.Style != "" {
		opts = append(opts, shortstobenz.WithStyle(cfg.Assets.Style))
	}
	if cfg.Assets.PDFStyle != "" {
		opts = append(opts, shortstobenz.WithPDFStyle(cfg.Assets.PDFStyle))
	}
	if flags.timeout > 0 {
		opts = append(opts, shortstobenz.WithTimeout(flags.timeout))
	}
	return opts
}
