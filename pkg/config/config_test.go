package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitConfig_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordfix", "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *loaded != *cfg {
		t.Fatalf("reloaded config differs: %+v", loaded)
	}
}

func TestLoadConfig_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[engine]\nautocorrect = false\n\n[store]\nbackend = \"memory\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.Autocorrect {
		t.Fatal("autocorrect should be false")
	}
	if !cfg.Engine.Autocapitalize || cfg.Engine.MinWordLength != 2 {
		t.Fatalf("defaults lost: %+v", cfg.Engine)
	}
	if cfg.Store.Backend != "memory" {
		t.Fatalf("backend=%q", cfg.Store.Backend)
	}
}

func TestLoadConfig_PartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// min_word_length has the wrong type, so strict decoding fails.
	data := "[engine]\nautocapitalize = false\nmin_word_length = \"three\"\n\n[server]\nhttp_addr = \":9000\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.Autocapitalize {
		t.Fatal("autocapitalize should be recovered as false")
	}
	if cfg.Engine.MinWordLength != 2 {
		t.Fatalf("min_word_length=%d, want default 2", cfg.Engine.MinWordLength)
	}
	if cfg.Server.HTTPAddr != ":9000" {
		t.Fatalf("http_addr=%q", cfg.Server.HTTPAddr)
	}
}

func TestLoadConfigWithPriority_CustomPathAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := SaveConfig(DefaultConfig(), path); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORDFIX_HTTP_ADDR", "0.0.0.0:1234")
	t.Setenv("WORDFIX_STORE_DSN", "postgres://localhost/wordfix")

	cfg, used, err := LoadConfigWithPriority(path)
	if err != nil {
		t.Fatal(err)
	}
	if used != path {
		t.Fatalf("used=%q, want %q", used, path)
	}
	if cfg.Server.HTTPAddr != "0.0.0.0:1234" {
		t.Fatalf("http_addr=%q", cfg.Server.HTTPAddr)
	}
	if cfg.Store.Backend != "postgres" || cfg.Store.DSN == "" {
		t.Fatalf("store=%+v", cfg.Store)
	}
}

func TestSetEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	off := false
	if err := cfg.SetEngine(path, &off, nil); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Engine.Autocorrect || !loaded.Engine.Autocapitalize {
		t.Fatalf("engine=%+v", loaded.Engine)
	}
}

func TestDefaultStorePath(t *testing.T) {
	got := DefaultStorePath("/etc/wordfix/config.toml")
	if got != filepath.Join("/etc/wordfix", "rules.toml") {
		t.Fatalf("DefaultStorePath=%q", got)
	}
}
