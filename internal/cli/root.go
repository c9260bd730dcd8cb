// Package cli implements the fixerconf command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/fixerconf/internal/config"
	"github.com/donaldgifford/fixerconf/internal/runner"
)

// Build information, set from main via SetVersionInfo.
var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version, commit and build date for display.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// app holds the persistent flags and the exit code of the last command.
type app struct {
	configPath string
	dir        string
	verbose    bool
	quiet      bool
	code       int
}

// Execute runs the command line in args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "fixerconf: %v\n", err)
		return runner.ExitError
	}
	return a.code
}

func newRootCommand(a *app) *cobra.Command {
	gen := &generateFlags{}
	root := &cobra.Command{
		Use:   "fixerconf",
		Short: "Generate php-cs-fixer and rector configuration for a PHP package",
		Long: `fixerconf builds the php-cs-fixer rule set for a target PHP version from
fixerconf.yml and writes .php-cs-fixer.dist.php. Run without a subcommand it
behaves like "fixerconf generate".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       appVersion,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.code = runner.Run(gen.options(cmd, a, runner.TargetFixer))
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("fixerconf %s (%s) %s\n", appVersion, appCommit, appDate))

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to config file (default: discover fixerconf.yml)")
	pf.StringVarP(&a.dir, "dir", "C", "", "project directory (default: working directory)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print files as they are processed and enable debug logs")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "suppress informational output")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")

	gen.register(root)

	root.AddCommand(
		newGenerateCommand(a),
		newRefactorCommand(a),
		newRulesCommand(a),
		newVersionsCommand(a),
	)
	return root
}

// loadConfig loads the project config honoring --config and --dir.
func (a *app) loadConfig() (*config.Config, error) {
	dir := a.dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		dir = wd
	}
	return config.LoadFrom(dir, a.configPath)
}
