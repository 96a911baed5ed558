package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordfix/pkg/httpapi"
	"github.com/bastiangx/wordfix/pkg/notify"
	"github.com/bastiangx/wordfix/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the msgpack IPC server on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		feedback := &notify.Recorder{}
		a, err := loadApp(feedback)
		if err != nil {
			return err
		}
		defer a.Close()

		showStartupInfo(a)
		return server.NewServer(a.corrector, feedback, os.Stdin, os.Stdout).Start()
	},
}

var httpAddr string

var httpCmd = &cobra.Command{
	Use:   "http",
	Short: "Serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(notify.Logger{})
		if err != nil {
			return err
		}
		defer a.Close()

		if httpAddr != "" {
			a.cfg.Server.HTTPAddr = httpAddr
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		showStartupInfo(a)
		return httpapi.NewServer(a.corrector, a.cfg.Server).Serve(ctx)
	},
}

func init() {
	httpCmd.Flags().StringVar(&httpAddr, "addr", "", "listen address (default from config)")
}

// showStartupInfo logs basic info about the init process to stderr.
func showStartupInfo(a *app) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("config: ( %s )", a.cfgPath)
	log.Infof("store: %s, %d rules", a.cfg.Store.Backend, len(a.rules.Rules("")))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
