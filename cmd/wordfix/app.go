package main

import (
	"fmt"
	"io"

	"github.com/bastiangx/wordfix/pkg/autocorrect"
	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/notify"
	"github.com/bastiangx/wordfix/pkg/rules"
	"github.com/bastiangx/wordfix/pkg/store"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

var okColor = color.New(color.FgGreen)

// app holds what every command needs: config, the rule store and a corrector.
type app struct {
	cfg       *config.Config
	cfgPath   string
	kv        store.KV
	rules     *rules.Store
	corrector *autocorrect.Corrector
}

// loadApp resolves config, opens the configured store and builds the
// corrector with sink for feedback.
func loadApp(sink notify.Sink) (*app, error) {
	cfg, path, err := config.LoadConfigWithPriority(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(path))

	kv, err := store.Open(cfg.Store, config.DefaultStorePath(path))
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	rs, err := rules.Load(rules.Defaults, kv)
	if err != nil {
		closeKV(kv)
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return &app{
		cfg:       cfg,
		cfgPath:   path,
		kv:        kv,
		rules:     rs,
		corrector: autocorrect.New(rs, sink, autocorrect.OptionsFromConfig(cfg.Engine)),
	}, nil
}

func (a *app) Close() { closeKV(a.kv) }

func closeKV(kv store.KV) {
	if c, ok := kv.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Warnf("Closing store: %v", err)
		}
	}
}

// printSink writes feedback messages to w.
func printSink(w io.Writer) notify.Sink {
	return notify.Func(func(msg string) {
		fmt.Fprintln(w, okColor.Sprint(msg))
	})
}
