// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordfix command: an autocorrect and
autocapitalize engine for editors, usable as an IPC server, an HTTP service,
a file checker or a small terminal editor.

Note: This is a BETA release. APIs and functionality may rapidly change.

# Usage

Start the msgpack IPC server on stdin/stdout (for editor plugins):

	wordfix serve

Serve the HTTP API:

	wordfix http --addr 127.0.0.1:7411

Preview and apply corrections to files:

	wordfix check notes.md
	wordfix check --write notes.md

Manage rules and exclusions:

	wordfix rules add brb "be right back"
	wordfix rules list t
	wordfix exclude add teh
	wordfix rules export rules.json

Try it interactively:

	wordfix type
	wordfix repl

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run at [UserConfigDir]/wordfix/config.toml:

	[engine]
	autocorrect = true
	autocapitalize = true
	min_word_length = 2
	boundary_chars = " .,!?;:"

	[store]
	backend = "file"
	path = ""
	dsn = ""

	[server]
	http_addr = "127.0.0.1:7411"
	read_timeout = 10
	write_timeout = 10

WORDFIX_STORE_DSN and WORDFIX_HTTP_ADDR override the file.
User rules and exclusions are kept in the configured store, rules.toml next
to the config file by default.

# IPC Protocol

See package server. Each request names an op and, for document ops, the
document text and cursor after the user's edit:

	{"id": "1", "op": "edit", "doc": "a", "text": "so teh", "cur": 6, "ins": "h"}
	{"id": "1", "status": "ok", "a": "suggest", "s": {"w": "teh", "r": "the", "st": 3, "en": 6}, "t": 38}
*/
package main

import (
	"os"

	"github.com/bastiangx/wordfix/internal/logger"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	Version = "0.1.0-beta"
	AppName = "wordfix"
	gh      = "https://github.com/bastiangx/wordfix"
)

var (
	configPath string
	debugMode  bool
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:           AppName,
	Short:         "Autocorrect and autocapitalize for editors",
	Long:          `wordfix corrects common typos and sentence capitalization as you type.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(debugMode)
		if noColor || !isTerminal(os.Stdout) {
			color.NoColor = true
		}
		if noColor {
			os.Setenv("NO_COLOR", "1")
		}
	},
}

func init() {
	rootCmd.Version = Version

	rootCmd.AddCommand(serveCmd, httpCmd)
	rootCmd.AddCommand(checkCmd, typeCmd, replCmd)
	rootCmd.AddCommand(rulesCmd, excludeCmd)
	rootCmd.AddCommand(configCmd, versionCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a custom config.toml")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "toggle debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
