package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordfix/internal/cli"
	"github.com/bastiangx/wordfix/pkg/rules"
	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List and edit correction rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list [PREFIX]",
	Short: "List effective rules, optionally filtered by prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		cli.PrintRules(cmd.OutOrStdout(), a.rules.Rules(prefix))
		return nil
	},
}

var rulesAddCmd = &cobra.Command{
	Use:   "add WORD REPLACEMENT...",
	Short: "Add or override a rule",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(printSink(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		defer a.Close()
		return a.corrector.AddRule(args[0], strings.Join(args[1:], " "))
	},
}

var rulesRmCmd = &cobra.Command{
	Use:     "rm WORD",
	Aliases: []string{"remove"},
	Short:   "Remove a user rule",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(printSink(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		defer a.Close()
		return a.corrector.RemoveRule(args[0])
	},
}

var rulesExportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write user rules and exclusions as JSON (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		data, err := json.MarshalIndent(a.rules.Export(), "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
		if len(args) == 0 || args[0] == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return os.WriteFile(args[0], data, 0o644)
	},
}

var rulesImportCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Merge user rules and exclusions from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		var snap rules.Snapshot
		if err := json.NewDecoder(r).Decode(&snap); err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}

		a, err := loadApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		skipped, err := a.rules.Import(snap)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okColor.Sprintf("Imported %d rules, %d exclusions (%d skipped)",
			len(snap.Overrides), len(snap.Exclusions), skipped))
		return nil
	},
}

var excludeCmd = &cobra.Command{
	Use:   "exclude",
	Short: "Manage words that are never corrected",
}

var excludeAddCmd = &cobra.Command{
	Use:   "add WORD...",
	Short: "Never correct WORD",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(printSink(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		defer a.Close()
		for _, w := range args {
			if err := a.corrector.Exclude(w); err != nil {
				return err
			}
		}
		return nil
	},
}

var excludeRmCmd = &cobra.Command{
	Use:     "rm WORD...",
	Aliases: []string{"remove"},
	Short:   "Correct WORD again",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(printSink(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		defer a.Close()
		for _, w := range args {
			if err := a.corrector.Include(w); err != nil {
				return err
			}
		}
		return nil
	},
}

var excludeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List excluded words",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()
		cli.PrintWords(cmd.OutOrStdout(), a.rules.Exclusions())
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesListCmd, rulesAddCmd, rulesRmCmd, rulesExportCmd, rulesImportCmd)
	excludeCmd.AddCommand(excludeAddCmd, excludeRmCmd, excludeListCmd)
}
