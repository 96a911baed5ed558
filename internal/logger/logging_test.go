package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "wordfix", log.InfoLevel, false, false, log.LogfmtFormatter)
	l.Debug("hidden")
	l.Info("rule added", "from", "teh")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line logged at info level: %q", out)
	}
	if !strings.Contains(out, "from=teh") || !strings.Contains(out, "prefix=wordfix") {
		t.Fatalf("output=%q", out)
	}
}

func TestSetup(t *testing.T) {
	prev := log.Default()
	t.Cleanup(func() { log.SetDefault(prev) })

	Setup(true)
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("level=%v", log.GetLevel())
	}
	Setup(false)
	if log.GetLevel() != log.WarnLevel {
		t.Fatalf("level=%v", log.GetLevel())
	}
}
