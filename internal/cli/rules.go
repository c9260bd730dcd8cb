package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/fixerconf/internal/refactor"
	"github.com/donaldgifford/fixerconf/internal/ruleset"
	"github.com/donaldgifford/fixerconf/internal/version"
)

func newRulesCommand(a *app) *cobra.Command {
	var (
		phpVersion version.Tag
		risky      bool
		riskyOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the resolved fixer rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("php-version") {
				cfg.PHPVersion = phpVersion
			}
			if cmd.Flags().Changed("risky") {
				cfg.Risky = risky
			}

			c, err := cfg.Configurator()
			if err != nil {
				return err
			}
			rules, riskyAllowed := c.Materialize()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Rule", "Value", "Risky")
			shown := 0
			for _, e := range rules {
				isRisky := ruleset.Risky(e.Name)
				if riskyOnly && !isRisky {
					continue
				}
				if err := table.Append([]string{e.Name, e.Value.String(), yesNo(isRisky)}); err != nil {
					return fmt.Errorf("listing rules: %w", err)
				}
				shown++
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("listing rules: %w", err)
			}

			if !a.quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d rules for PHP %s, risky %s\n",
					shown, c.Version(), allowed(riskyAllowed))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	phpVersionFlag(fs, &phpVersion)
	fs.BoolVar(&risky, "risky", false, "enable or disable risky rules (overrides config)")
	fs.BoolVar(&riskyOnly, "risky-only", false, "list only risky rules")
	return cmd
}

func newVersionsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the supported PHP versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Version", "Rector Set", "Configured")
			for _, t := range version.All() {
				p, err := refactor.ForVersion(t)
				if err != nil {
					return err
				}
				mark := ""
				if t.Equal(cfg.PHPVersion) {
					mark = "*"
				}
				if err := table.Append([]string{t.String(), p.PHPVersionFeatures, mark}); err != nil {
					return fmt.Errorf("listing versions: %w", err)
				}
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("listing versions: %w", err)
			}
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func allowed(b bool) string {
	if b {
		return "allowed"
	}
	return "disabled"
}
