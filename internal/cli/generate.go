package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"

	"github.com/donaldgifford/fixerconf/internal/render"
	"github.com/donaldgifford/fixerconf/internal/runner"
	"github.com/donaldgifford/fixerconf/internal/version"
)

// generateFlags are the flags shared by the commands that write a file.
type generateFlags struct {
	phpVersion version.Tag
	risky      bool
	format     render.Format
	output     string
	check      bool
	diff       bool
	stdout     bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	phpVersionFlag(fs, &f.phpVersion)
	fs.BoolVar(&f.risky, "risky", false, "enable or disable risky rules (overrides config)")
	fs.Var(enumflag.New(&f.format, "format", render.FormatIDs(), enumflag.EnumCaseInsensitive),
		"format", "output format: "+strings.Join(render.Names(), ", ")+" (overrides config)")
	// The config decides the format unless the flag is given.
	fs.Lookup("format").DefValue = ""
	fs.StringVarP(&f.output, "output", "o", "", "output file (overrides config)")
	fs.BoolVar(&f.check, "check", false, "exit 1 if the file is missing or out of date")
	fs.BoolVar(&f.diff, "diff", false, "print a unified diff against the file on disk")
	fs.BoolVar(&f.stdout, "stdout", false, "print the result instead of writing the file")
	cmd.MarkFlagsMutuallyExclusive("check", "diff", "stdout")
}

// options builds runner options, passing only the overrides that were set.
func (f *generateFlags) options(cmd *cobra.Command, a *app, target runner.Target) *runner.Options {
	opts := &runner.Options{
		Target:     target,
		ConfigPath: a.configPath,
		Dir:        a.dir,
		Output:     f.output,
		ToStdout:   f.stdout,
		Check:      f.check,
		Diff:       f.diff,
		Quiet:      a.quiet,
		Verbose:    a.verbose,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	}

	flags := cmd.Flags()
	if flags.Changed("php-version") {
		opts.PHPVersion = f.phpVersion
	}
	if flags.Changed("risky") {
		risky := f.risky
		opts.Risky = &risky
	}
	if flags.Changed("format") {
		opts.Format = f.format.String()
	}
	return opts
}

func newGenerateCommand(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the php-cs-fixer config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.code = runner.Run(f.options(cmd, a, runner.TargetFixer))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newRefactorCommand(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "refactor",
		Short: "Write the rector config matching the target PHP version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.code = runner.Run(f.options(cmd, a, runner.TargetRefactor))
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

// phpVersionFlag registers --php-version. It has no default of its own: an
// unset flag keeps the configured version.
func phpVersionFlag(fs *pflag.FlagSet, tag *version.Tag) {
	fs.Var(enumflag.New(tag, "version", version.FlagIDs(), enumflag.EnumCaseInsensitive),
		"php-version", "target PHP version: "+versionList()+" (overrides config)")
	fs.Lookup("php-version").DefValue = ""
}

func versionList() string {
	names := make([]string, 0, len(version.All()))
	for _, t := range version.All() {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}
