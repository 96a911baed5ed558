package notify

import (
	"bytes"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRecorder_Drain(t *testing.T) {
	r := &Recorder{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Notify("Rule added: teh → the")
		}()
	}
	wg.Wait()

	if got := r.Drain(); len(got) != 8 {
		t.Fatalf("drained %d messages, want 8", len(got))
	}
	if got := r.Drain(); got != nil {
		t.Fatalf("second drain=%q, want nil", got)
	}
}

func TestFunc(t *testing.T) {
	var got []string
	var s Sink = Func(func(msg string) { got = append(got, msg) })
	s.Notify("a")
	s.Notify("b")
	Discard.Notify("dropped")
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("got %q", got)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	Logger{L: l}.Notify("Added to dictionary: teh")
	if !strings.Contains(buf.String(), "Added to dictionary: teh") {
		t.Fatalf("log=%q", buf.String())
	}
}
