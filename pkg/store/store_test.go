package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/wordfix/pkg/config"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing)=%v,%v", ok, err)
	}
	if err := kv.Set("wordfix.overrides", `{"teh":"the"}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("wordfix.overrides", `{"adn":"and"}`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	v, ok, err := kv.Get("wordfix.overrides")
	if err != nil || !ok || v != `{"adn":"and"}` {
		t.Fatalf("Get=%q,%v,%v", v, ok, err)
	}
}

func TestMemory(t *testing.T) {
	exerciseKV(t, NewMemory())
}

func TestFile_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "rules.toml")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	exerciseKV(t, f)

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	v, ok, _ := reopened.Get("wordfix.overrides")
	if !ok || v != `{"adn":"and"}` {
		t.Fatalf("reopened value=%q,%v", v, ok)
	}
}

func TestFile_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte("values = [[["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestOpen_Backends(t *testing.T) {
	kv, err := Open(config.StoreConfig{Backend: "memory"}, "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := kv.(*Memory); !ok {
		t.Fatalf("memory backend returned %T", kv)
	}

	def := filepath.Join(t.TempDir(), "rules.toml")
	kv, err = Open(config.StoreConfig{Backend: "file"}, def)
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := kv.(*File); !ok || f.Path() != def {
		t.Fatalf("file backend returned %T", kv)
	}

	if _, err := Open(config.StoreConfig{Backend: "redis"}, def); err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if _, err := Open(config.StoreConfig{Backend: "postgres"}, def); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("WORDFIX_TEST_DSN")
	if dsn == "" {
		t.Skip("WORDFIX_TEST_DSN not set")
	}
	p, err := OpenPostgres(dsn)
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	defer p.Close()
	exerciseKV(t, p)
}
