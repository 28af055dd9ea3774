package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"natlint/internal/ast"
	"natlint/internal/config"
	"natlint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rules per declaration kind",
	Long: `List every rule grouped by the kind of declaration it checks, with the
configuration key, whether it is enabled and its description. With --config
the enabled column reflects that file instead of the defaults.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringP("config", "c", "", "show enablement from this configuration file")
	rulesCmd.Flags().String("kind", "", "only list rules of this kind (contract|function|struct|enum|error|event|variable|type)")
}

func runRules(cmd *cobra.Command, _ []string) error {
	cfgPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	kindStr, err := cmd.Flags().GetString("kind")
	if err != nil {
		return fmt.Errorf("failed to get kind flag: %w", err)
	}
	colored, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if cfgPath != "" {
		if cfg, err = config.Load(cfgPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	kinds := ast.Kinds[:]
	if kindStr != "" {
		kind, ok := ast.ParseKind(strings.ToLower(kindStr))
		if !ok {
			return fmt.Errorf("unknown kind %q", kindStr)
		}
		kinds = []ast.DeclKind{kind}
	}
	return printRules(cmd.OutOrStdout(), cfg, kinds, colored)
}

func printRules(out io.Writer, cfg *config.Config, kinds []ast.DeclKind, colored bool) error {
	heading := color.New(color.Bold)
	on := color.New(color.FgGreen)
	off := color.New(color.Faint)
	for _, c := range []*color.Color{heading, on, off} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	title := cases.Title(language.English)

	var b strings.Builder
	for i, kind := range kinds {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s [%s]\n", heading.Sprint(title.String(kind.String())+" rules"), config.SectionName(kind))
		for _, r := range rules.ForKind(kind) {
			state := on.Sprint("on ")
			if !cfg.Enabled(r) {
				state = off.Sprint("off")
			}
			fmt.Fprintf(&b, "  %s  %-20s %-22s %s\n", state, r.Name(), rules.ConfigKey(r.Name()), r.Description())
		}
	}
	if _, err := io.WriteString(out, b.String()); err != nil {
		return fmt.Errorf("failed to print rules: %w", err)
	}
	return nil
}
