package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/donaldgifford/fixerconf/internal/fixerconfig"
	"github.com/donaldgifford/fixerconf/internal/ruleset"
	"github.com/donaldgifford/fixerconf/internal/version"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"PHPVersion", cfg.PHPVersion, version.PHP80},
		{"Risky", cfg.Risky, true},
		{"Indent", cfg.Indent, "    "},
		{"LineEnding", cfg.LineEnding, "\n"},
		{"Header", cfg.Header, ""},
		{"CacheFile", cfg.CacheFile, ""},
		{"Output.Path", cfg.Output.Path, ".php-cs-fixer.dist.php"},
		{"Output.Format", cfg.Output.Format, "php"},
		{"Refactor.Output.Path", cfg.Refactor.Output.Path, "rector.php"},
		{"Refactor.Output.Format", cfg.Refactor.Output.Format, "php"},
		{"Log.Level", cfg.Log.Level, "warn"},
		{"Log.Format", cfg.Log.Format, "text"},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if diff := cmp.Diff([]string{"."}, cfg.Finder.In); diff != "" {
		t.Errorf("Finder.In (-want +got):\n%s", diff)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yml", `php_version: "7.4"
risky: false
header: |
  This file is part of acme/widgets.
rules:
  yoda_style: true
  concat_space:
    spacing: none
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.PHPVersion != version.PHP74 {
		t.Errorf("PHPVersion: got %v, want 7.4", cfg.PHPVersion)
	}
	if cfg.Risky {
		t.Error("Risky: got true, want false")
	}
	if cfg.Header != "This file is part of acme/widgets.\n" {
		t.Errorf("Header: got %q", cfg.Header)
	}
	if !cfg.Rules["yoda_style"].Equal(ruleset.On()) {
		t.Errorf("rules.yoda_style: got %v", cfg.Rules["yoda_style"])
	}
	if got := cfg.Rules["concat_space"].Options()["spacing"]; got != "none" {
		t.Errorf("rules.concat_space.spacing: got %v", got)
	}

	// Verify unspecified fields retain defaults.
	if cfg.Indent != "    " {
		t.Errorf("Indent: got %q, want default", cfg.Indent)
	}
	if cfg.Output.Path != ".php-cs-fixer.dist.php" {
		t.Errorf("Output.Path: got %q, want default", cfg.Output.Path)
	}
}

func TestLoadUnquotedVersion(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "fixerconf.yml", "php_version: 8.0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PHPVersion != version.PHP80 {
		t.Errorf("PHPVersion: got %v, want 8.0", cfg.PHPVersion)
	}
}

func TestLoadNoConfigReturnsDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir, "")
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("expected default config (-want +got):\n%s", diff)
	}
}

func TestLoadNoConfigInWorkingDir(t *testing.T) {
	tmp := t.TempDir()
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PHPVersion != DefaultConfig().PHPVersion {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestDiscoverPriority(t *testing.T) {
	dir := t.TempDir()

	content := "php_version: \"8.1\"\n"

	// Create all four files; fixerconf.yml (first in order) should win.
	for _, name := range []string{"fixerconf.yml", "fixerconf.yaml", ".fixerconf.yml", ".fixerconf.yaml"} {
		writeConfig(t, dir, name, content)
	}

	for _, name := range []string{"fixerconf.yml", "fixerconf.yaml", ".fixerconf.yml", ".fixerconf.yaml"} {
		want := filepath.Join(dir, name)
		if got := Discover(dir); got != want {
			t.Errorf("Discover = %q, want %q", got, want)
		}
		os.Remove(want)
	}

	if got := Discover(dir); got != "" {
		t.Errorf("Discover after removing all: got %q, want empty string", got)
	}
}

func TestLoadDiscovery(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".fixerconf.yaml", "php_version: \"7.3\"\n")

	cfg, err := LoadFrom(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PHPVersion != version.PHP73 {
		t.Errorf("PHPVersion: got %v, want 7.3", cfg.PHPVersion)
	}
	if !cfg.Risky {
		t.Error("Risky: got false, want true (default)")
	}
}

func TestLoadRelativeExplicitPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "custom.yml", "php_version: \"7.2\"\n")

	cfg, err := LoadFrom(dir, "custom.yml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PHPVersion != version.PHP72 {
		t.Errorf("PHPVersion: got %v, want 7.2", cfg.PHPVersion)
	}
}

func TestLoadPartialFinder(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "fixerconf.yml", `finder:
  exclude: [var, vendor]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := fixerconfig.Finder{In: []string{"."}, Exclude: []string{"var", "vendor"}}
	if diff := cmp.Diff(want, cfg.Finder); diff != "" {
		t.Errorf("Finder (-want +got):\n%s", diff)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "bad.yml", "{{{{not valid yaml")

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoadSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "unknown: true\n"},
		{"risky not bool", "risky: sometimes\n"},
		{"rule value string", "rules:\n  yoda_style: maybe\n"},
		{"bad line ending", "line_ending: \"\\t\"\n"},
		{"bad output format", "output:\n  format: toml\n"},
		{"finder not list", "finder:\n  in: src\n"},
		{"bad log level", "log:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), "fixerconf.yml", tt.content)
			if _, err := Load(path); err == nil {
				t.Errorf("expected validation error for %q", tt.content)
			}
		})
	}
}

func TestLoadUnsupportedVersion(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "fixerconf.yml", "php_version: \"5.6\"\n")
	_, err := Load(path)
	if !errors.Is(err, version.ErrInvalid) {
		t.Errorf("got %v, want ErrInvalid", err)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yml"); err == nil {
		t.Error("expected error for missing explicit path, got nil")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "empty.yml", "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("expected default config for empty file (-want +got):\n%s", diff)
	}
}

func TestLoadCommentOnlyFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "fixerconf.yml", "# nothing configured yet\n")
	if _, err := Load(path); err != nil {
		t.Errorf("comment-only file: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "fixerconf.yml", "php_version: \"7.2\"\nrisky: true\n")

	t.Setenv(EnvPHPVersion, "8.1")
	t.Setenv(EnvRisky, "false")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg, err := LoadFrom(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PHPVersion != version.PHP81 {
		t.Errorf("PHPVersion: got %v, want 8.1", cfg.PHPVersion)
	}
	if cfg.Risky {
		t.Error("Risky: got true, want false")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("Log: got %+v", cfg.Log)
	}
}

func TestEnvOverridesInvalid(t *testing.T) {
	t.Run("version", func(t *testing.T) {
		t.Setenv(EnvPHPVersion, "9.9")
		if _, err := LoadFrom(t.TempDir(), ""); !errors.Is(err, version.ErrInvalid) {
			t.Errorf("got %v, want ErrInvalid", err)
		}
	})
	t.Run("risky", func(t *testing.T) {
		t.Setenv(EnvRisky, "perhaps")
		if _, err := LoadFrom(t.TempDir(), ""); err == nil {
			t.Error("expected error for invalid risky value")
		}
	})
}

func TestConfigurator(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PHPVersion = version.PHP74
	cfg.Header = "Header text"
	cfg.Rules = ruleset.Rules{
		"final_class": ruleset.Off(),
		"yoda_style":  ruleset.On(),
	}

	c, err := cfg.Configurator()
	if err != nil {
		t.Fatal(err)
	}

	rules, risky := c.Materialize()
	if !risky {
		t.Error("risky: got false, want true")
	}

	checks := map[string]ruleset.Value{
		// Config rules are applied after risky rules, so they win.
		"final_class":           ruleset.Off(),
		"yoda_style":            ruleset.On(),
		"@PHP74Migration:risky": ruleset.On(),
		"header_comment":        ruleset.With(map[string]any{"header": "Header text"}),
	}
	for name, want := range checks {
		got, ok := rules.Get(name)
		if !ok || !got.Equal(want) {
			t.Errorf("%s: got %v (present=%v), want %v", name, got, ok, want)
		}
	}
}

func TestConfiguratorRiskyDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Risky = false

	c, err := cfg.Configurator()
	if err != nil {
		t.Fatal(err)
	}
	rules, risky := c.Materialize()
	if risky {
		t.Error("risky: got true, want false")
	}
	for _, name := range rules.Names() {
		if ruleset.Risky(name) {
			t.Errorf("unexpected risky rule %q", name)
		}
	}
	if _, ok := rules.Get("header_comment"); ok {
		t.Error("header_comment added without a header")
	}
}

func TestConfiguratorInvalidVersion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PHPVersion = 0
	if _, err := cfg.Configurator(); !errors.Is(err, ruleset.ErrUnsupportedVersion) {
		t.Errorf("got %v, want ErrUnsupportedVersion", err)
	}
	if _, err := cfg.RefactorProfile(); !errors.Is(err, ruleset.ErrUnsupportedVersion) {
		t.Errorf("got %v, want ErrUnsupportedVersion", err)
	}
}

func TestRefactorProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PHPVersion = version.PHP73
	cfg.Refactor.Paths = []string{"src", "tests"}
	cfg.Refactor.Skip = []string{`Rector\Custom\FooRector`}

	p, err := cfg.RefactorProfile()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"src", "tests"}, p.Paths); diff != "" {
		t.Errorf("Paths (-want +got):\n%s", diff)
	}
	if p.Skip[len(p.Skip)-1] != `Rector\Custom\FooRector` {
		t.Errorf("Skip: got %v", p.Skip)
	}
	if p.PHPVersionFeatures != "PHP_73" {
		t.Errorf("PHPVersionFeatures: got %q", p.PHPVersionFeatures)
	}
}

func TestSchemaIsJSON(t *testing.T) {
	if len(Schema()) == 0 {
		t.Fatal("empty schema")
	}
	if err := Validate([]byte("php_version: \"8.0\"\nrules:\n  a: true\n  b: {x: 1}\n")); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
