package utils

import (
	"os"
	"path/filepath"
	"testing"
)

type sample struct {
	Name  string            `toml:"name"`
	Count int               `toml:"count"`
	Words map[string]string `toml:"words"`
}

func TestSaveAndLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	in := sample{Name: "rules", Count: 2, Words: map[string]string{"teh": "the"}}
	if err := SaveTOMLFile(in, path); err != nil {
		t.Fatalf("SaveTOMLFile: %v", err)
	}

	var out sample
	if err := LoadTOMLFile(path, &out); err != nil {
		t.Fatalf("LoadTOMLFile: %v", err)
	}
	if out.Name != "rules" || out.Count != 2 || out.Words["teh"] != "the" {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, got %d entries", len(entries))
	}
}

func TestParseTOMLWithRecovery_Extract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	data := "[engine]\nautocorrect = false\nmin_word_length = 3\nboundary_chars = \" .\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("ParseTOMLWithRecovery: %v", err)
	}
	section, ok := ExtractSection(parsed, "engine")
	if !ok {
		t.Fatal("missing engine section")
	}
	if v, ok := Extract[bool](section, "autocorrect"); !ok || v {
		t.Fatalf("autocorrect=%v,%v", v, ok)
	}
	if v, ok := ExtractInt(section, "min_word_length"); !ok || v != 3 {
		t.Fatalf("min_word_length=%v,%v", v, ok)
	}
	if v, ok := Extract[string](section, "boundary_chars"); !ok || v != " ." {
		t.Fatalf("boundary_chars=%q,%v", v, ok)
	}
	if _, ok := Extract[string](section, "missing"); ok {
		t.Fatal("missing key must not be found")
	}
}

func TestWritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "wordfix")
	if !WritableDir(dir) {
		t.Fatal("expected a fresh nested dir to be writable")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("write check left %d files behind", len(entries))
	}
}
