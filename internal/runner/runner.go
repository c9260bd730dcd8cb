// Package runner orchestrates the load -> build -> render -> output pipeline.
package runner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/akedrou/textdiff"

	"github.com/donaldgifford/fixerconf/internal/config"
	"github.com/donaldgifford/fixerconf/internal/fixerconfig"
	"github.com/donaldgifford/fixerconf/internal/logging"
	"github.com/donaldgifford/fixerconf/internal/render"
	"github.com/donaldgifford/fixerconf/internal/version"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitDrift = 1
	ExitError = 2
)

// Target selects the file to generate.
type Target int

const (
	// TargetFixer generates the php-cs-fixer config.
	TargetFixer Target = iota
	// TargetRefactor generates the rector profile.
	TargetRefactor
)

func (t Target) String() string {
	if t == TargetRefactor {
		return "refactor"
	}
	return "fixer"
}

// Options configures the runner behavior. Zero-valued overrides keep the
// value from the config file.
type Options struct {
	Target     Target
	ConfigPath string
	Dir        string
	PHPVersion version.Tag
	Risky      *bool
	Format     string
	Output     string
	ToStdout   bool
	Check      bool
	Diff       bool
	Quiet      bool
	Verbose    bool
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
}

// Run executes the generate pipeline and returns an exit code.
func Run(opts *Options) int {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			writeErr(opts.Stderr, "fixerconf: getting working directory: %v\n", err)
			return ExitError
		}
		dir = wd
	}

	cfg, err := config.LoadFrom(dir, opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "fixerconf: %v\n", err)
		return ExitError
	}
	out := applyOverrides(opts, cfg)

	logger := opts.Logger
	if logger == nil {
		level := cfg.Log.Level
		if opts.Verbose {
			level = "debug"
		}
		logger = logging.New(opts.Stderr, level, cfg.Log.Format)
	}

	content, err := Generate(cfg, opts.Target, dir, out.Format)
	if err != nil {
		writeErr(opts.Stderr, "fixerconf: %v\n", err)
		return ExitError
	}
	logger.Debug("generated config",
		"target", opts.Target.String(),
		"php_version", cfg.PHPVersion.String(),
		"risky", cfg.Risky,
		"format", out.Format,
		"bytes", len(content))

	if opts.ToStdout {
		writeOut(opts.Stdout, content)
		return ExitOK
	}

	return runFile(opts, logger, dir, out.Path, content)
}

func runFile(opts *Options, logger *slog.Logger, dir, name, content string) int {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	existing, exists, err := readExisting(path)
	if err != nil {
		writeErr(opts.Stderr, "fixerconf: %v\n", err)
		return ExitError
	}

	if opts.Verbose {
		writeErr(opts.Stderr, "%s\n", name)
	}

	if opts.Check {
		if !exists || existing != content {
			// Verbose mode has already printed the name.
			if !opts.Quiet && !opts.Verbose {
				writeErr(opts.Stderr, "%s\n", name)
			}
			return ExitDrift
		}
		return ExitOK
	}

	if opts.Diff {
		d := textdiff.Unified("a/"+name, "b/"+name, existing, content)
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitDrift
		}
		return ExitOK
	}

	// Write mode (default).
	if exists && existing == content {
		logger.Debug("config up to date", "path", path)
		return ExitOK
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		writeErr(opts.Stderr, "fixerconf: creating directory for %s: %v\n", name, err)
		return ExitError
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		writeErr(opts.Stderr, "fixerconf: writing %s: %v\n", name, err)
		return ExitError
	}
	logger.Info("wrote config", "path", path)

	return ExitOK
}

// Generate renders the target described by cfg in the named format. dir is
// the project root that finder patterns are expanded against.
func Generate(cfg *config.Config, target Target, dir, format string) (string, error) {
	r, err := render.Lookup(format)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch target {
	case TargetRefactor:
		p, err := cfg.RefactorProfile()
		if err != nil {
			return "", err
		}
		if err := r.Refactor(&b, p); err != nil {
			return "", fmt.Errorf("rendering refactor profile: %w", err)
		}

	default:
		c, err := cfg.Configurator()
		if err != nil {
			return "", err
		}
		finder, err := cfg.Finder.Expand(os.DirFS(dir))
		if err != nil {
			return "", err
		}
		fc := fixerconfig.New(c,
			fixerconfig.WithIndent(cfg.Indent),
			fixerconfig.WithLineEnding(cfg.LineEnding),
			fixerconfig.WithFinder(finder),
			fixerconfig.WithCacheFile(cfg.CacheFile),
		)
		if err := r.Fixer(&b, fc); err != nil {
			return "", fmt.Errorf("rendering fixer config: %w", err)
		}
	}

	return b.String(), nil
}

// applyOverrides folds command-line overrides into cfg and returns the
// output settings for the selected target.
func applyOverrides(opts *Options, cfg *config.Config) config.OutputConfig {
	if opts.PHPVersion.Valid() {
		cfg.PHPVersion = opts.PHPVersion
	}
	if opts.Risky != nil {
		cfg.Risky = *opts.Risky
	}

	out := cfg.Output
	if opts.Target == TargetRefactor {
		out = cfg.Refactor.Output
	}

	if opts.Format != "" {
		out.Format = opts.Format
		// Keep the extension in step with the format unless a path was given.
		if opts.Output == "" {
			if r, err := render.Lookup(opts.Format); err == nil {
				out.Path = strings.TrimSuffix(out.Path, filepath.Ext(out.Path)) + r.Extension()
			}
		}
	}
	if opts.Output != "" {
		out.Path = opts.Output
	}
	return out
}

func readExisting(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), true, nil
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
