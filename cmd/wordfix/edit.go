package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bastiangx/wordfix/internal/cli"
	"github.com/bastiangx/wordfix/internal/tui"
	"github.com/bastiangx/wordfix/pkg/notify"
	"github.com/spf13/cobra"
)

var checkWrite bool

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Show the corrections wordfix would make to files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		changed := 0
		for _, path := range args {
			ok, err := cli.Check(a.corrector, path, checkWrite, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if ok {
				changed++
			}
		}
		if changed > 0 && !checkWrite {
			return fmt.Errorf("%d file(s) need corrections; rerun with --write", changed)
		}
		return nil
	},
}

var typeCmd = &cobra.Command{
	Use:   "type [FILE]",
	Short: "Open a small editor that corrects as you type",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdin) {
			return errors.New("type needs an interactive terminal")
		}
		feedback := &notify.Recorder{}
		a, err := loadApp(feedback)
		if err != nil {
			return err
		}
		defer a.Close()

		initial := ""
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			initial = string(data)
		}

		text, err := tui.Run(a.corrector, feedback, initial)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return os.WriteFile(args[0], []byte(text), 0o644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Correct lines read from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(printSink(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		defer a.Close()
		return cli.NewInputHandler(a.corrector, cmd.InOrStdin(), cmd.OutOrStdout()).Start()
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&checkWrite, "write", "w", false, "write corrections back to the files")
}
