package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bastiangx/wordfix/internal/utils"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var versionVerbose bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
			Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ WordFix ] Fixes typos while you type!")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		if !versionVerbose {
			return
		}
		pr, err := utils.NewPathResolver()
		if err != nil {
			logger.Print("runtime info unavailable", "err", err)
			return
		}
		info := pr.GetRuntimeInfo()
		keys := make([]string, 0, len(info))
		for k := range info {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		logger.Print("")
		for _, k := range keys {
			logger.Print(k, "value", info[k])
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := config.LoadConfigWithPriority(configPath)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:          %s\n", config.GetActiveConfigPath(path))
		fmt.Fprintf(out, "autocorrect:     %v\n", cfg.Engine.Autocorrect)
		fmt.Fprintf(out, "autocapitalize:  %v\n", cfg.Engine.Autocapitalize)
		fmt.Fprintf(out, "min_word_length: %d\n", cfg.Engine.MinWordLength)
		fmt.Fprintf(out, "boundary_chars:  %q\n", cfg.Engine.BoundaryChars)
		fmt.Fprintf(out, "store:           %s\n", cfg.Store.Backend)
		fmt.Fprintf(out, "http_addr:       %s\n", cfg.Server.HTTPAddr)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			pr, err := utils.NewPathResolver()
			if err != nil {
				return err
			}
			if path, err = pr.GetConfigPath("config.toml"); err != nil {
				return err
			}
		}
		if _, err := config.InitConfig(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okColor.Sprint("Config ready: "+utils.GetAbsolutePath(path)))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set autocorrect|autocapitalize on|off",
	Short:     "Toggle an engine option and save it",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"autocorrect", "autocapitalize"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var on bool
		switch args[1] {
		case "on", "true":
			on = true
		case "off", "false":
		default:
			return fmt.Errorf("invalid value %q: want on or off", args[1])
		}

		cfg, path, err := config.LoadConfigWithPriority(configPath)
		if err != nil {
			return err
		}
		if path == "" {
			return fmt.Errorf("no writable config file; run %s config init", os.Args[0])
		}
		switch args[0] {
		case "autocorrect":
			err = cfg.SetEngine(path, &on, nil)
		case "autocapitalize":
			err = cfg.SetEngine(path, nil, &on)
		default:
			return fmt.Errorf("unknown option %q", args[0])
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okColor.Sprintf("%s: %s", args[0], args[1]))
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "also show runtime paths")
	configCmd.AddCommand(configInitCmd, configSetCmd)
}
