// Package notify delivers short user-facing messages about rule changes.
package notify

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Sink receives fire-and-forget feedback messages.
type Sink interface {
	Notify(msg string)
}

// Func adapts a plain function to a Sink.
type Func func(msg string)

func (f Func) Notify(msg string) { f(msg) }

// Discard drops every message.
var Discard Sink = Func(func(string) {})

// Logger writes messages to a charm logger at info level.
type Logger struct {
	L *log.Logger
}

func (l Logger) Notify(msg string) {
	if l.L == nil {
		log.Info(msg)
		return
	}
	l.L.Info(msg)
}

// Recorder keeps messages in memory, newest last. Hosts that report feedback
// asynchronously (the IPC and HTTP servers) drain it per request.
type Recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *Recorder) Notify(msg string) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

// Drain returns and clears all recorded messages.
func (r *Recorder) Drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.msgs
	r.msgs = nil
	return out
}
