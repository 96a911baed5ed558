package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"fortio.org/safecast"
	"github.com/bastiangx/wordfix/pkg/autocorrect"
	"github.com/bastiangx/wordfix/pkg/correct"
	"github.com/bastiangx/wordfix/pkg/notify"
	"github.com/bastiangx/wordfix/pkg/rules"
	"github.com/bastiangx/wordfix/pkg/textbuf"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// maxDecodeFailures stops the loop when the input stream is not msgpack.
const maxDecodeFailures = 16

type document struct {
	mirror *textbuf.Memory
	doc    *autocorrect.Document
}

// Server handles msgpack IPC for one host process.
type Server struct {
	corrector *autocorrect.Corrector
	feedback  *notify.Recorder
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
	docs      map[string]*document
	requests  int
}

// NewServer creates a server reading requests from r and writing responses
// to w. feedback must be the sink the corrector was created with; its
// messages are attached to the response of the op that produced them.
func NewServer(c *autocorrect.Corrector, feedback *notify.Recorder, r io.Reader, w io.Writer) *Server {
	enc := msgpack.NewEncoder(w)
	enc.SetOmitEmpty(true)
	return &Server{
		corrector: c,
		feedback:  feedback,
		dec:       msgpack.NewDecoder(r),
		enc:       enc,
		docs:      make(map[string]*document),
	}
}

// Start signals readiness and serves requests until the input ends.
func (s *Server) Start() error {
	log.Debug("Starting Server.")
	s.send(Response{Status: "ready"})

	failures := 0
	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("truncated request: %w", err)
			}
			failures++
			log.Errorf("Decoding request: %v", err)
			s.send(errorResponse("", "invalid msgpack request", 400))
			if failures >= maxDecodeFailures {
				return fmt.Errorf("too many malformed requests: %w", err)
			}
			continue
		}
		failures = 0
		s.requests++
		s.send(s.Handle(req))
	}
}

// Handle processes one request and returns its response.
func (s *Server) Handle(req Request) Response {
	start := time.Now()
	resp := s.dispatch(req)
	resp.ID = req.ID
	if s.feedback != nil {
		resp.Messages = append(resp.Messages, s.feedback.Drain()...)
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	return resp
}

func (s *Server) dispatch(req Request) Response {
	switch req.Op {
	case "edit":
		return s.handleDocument(req, correct.Insert{Text: req.Insert})
	case "cursor":
		return s.handleDocument(req, correct.CursorMoved{})
	case "accept":
		return s.handleDocument(req, correct.Accept{})
	case "dismiss":
		return s.handleDocument(req, correct.Dismiss{})
	case "close":
		delete(s.docs, req.Doc)
		return ok()
	case "fix":
		resp := ok()
		resp.Text = s.corrector.Correct(req.Text)
		return resp
	case "add_rule":
		return s.handleRuleOp(s.corrector.AddRule(req.Word, req.To))
	case "remove_rule":
		return s.handleRuleOp(s.corrector.RemoveRule(req.Word))
	case "exclude":
		return s.handleRuleOp(s.corrector.Exclude(req.Word))
	case "include":
		return s.handleRuleOp(s.corrector.Include(req.Word))
	case "lookup":
		resp := ok()
		resp.Text, resp.Found = s.corrector.Rules().Lookup(req.Word)
		return resp
	case "health":
		return ok()
	case "":
		return errorResponse(req.ID, "missing 'op'", 400)
	default:
		return errorResponse(req.ID, fmt.Sprintf("unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleDocument(req Request, ev correct.Event) Response {
	cursor, err := safecast.Conv[int](req.Cursor)
	if err != nil {
		return errorResponse(req.ID, fmt.Sprintf("cursor out of range: %v", err), 400)
	}
	if n := len([]rune(req.Text)); cursor > n {
		return errorResponse(req.ID, fmt.Sprintf("cursor %d beyond text length %d", cursor, n), 400)
	}

	d, ok := s.docs[req.Doc]
	if !ok {
		mirror := textbuf.NewMemory("", textbuf.Options{HistoryLimit: -1})
		d = &document{mirror: mirror, doc: s.corrector.Open(mirror)}
		s.docs[req.Doc] = d
		log.Debugf("Opened session for %q", req.Doc)
	}
	d.mirror.Reset(req.Text, cursor)

	action, err := d.doc.HandleEdit(ev)
	if err != nil {
		log.Errorf("Handling %s for %q: %v", req.Op, req.Doc, err)
		return errorResponse(req.ID, "internal error", 500)
	}
	resp, err := actionResponse(action)
	if err != nil {
		return errorResponse(req.ID, err.Error(), 500)
	}
	return resp
}

func (s *Server) handleRuleOp(err error) Response {
	var invalid *rules.InvalidRuleError
	var persist *rules.PersistError
	switch {
	case err == nil:
		return ok()
	case errors.As(err, &invalid):
		return errorResponse("", invalid.Error(), 400)
	case errors.As(err, &persist):
		// Applied in memory; the sink message says it was not saved.
		log.Warnf("Rule not persisted: %v", err)
		return ok()
	default:
		log.Errorf("Rule op: %v", err)
		return errorResponse("", "internal error", 500)
	}
}

func actionResponse(a correct.Action) (Response, error) {
	resp := ok()
	resp.Action = a.Kind.String()
	if a.Resolution != correct.Unresolved {
		resp.Resolution = a.Resolution.String()
	}
	switch a.Kind {
	case correct.ActionSuggest:
		st, err1 := safecast.Conv[uint32](a.Pending.Start)
		en, err2 := safecast.Conv[uint32](a.Pending.End)
		if err := errors.Join(err1, err2); err != nil {
			return Response{}, fmt.Errorf("suggestion range: %w", err)
		}
		resp.Suggestion = &Suggestion{
			Word:        a.Pending.Word,
			Replacement: a.Pending.Replacement,
			Start:       st,
			End:         en,
		}
	case correct.ActionReplace:
		st, err1 := safecast.Conv[uint32](a.Start)
		en, err2 := safecast.Conv[uint32](a.End)
		cur, err3 := safecast.Conv[uint32](a.Cursor)
		if err := errors.Join(err1, err2, err3); err != nil {
			return Response{}, fmt.Errorf("edit range: %w", err)
		}
		resp.Edit = &Edit{Start: st, End: en, Text: a.Text, Cursor: cur, Reason: a.Reason.String()}
	}
	return resp, nil
}

// send writes one msgpack response to the client.
func (s *Server) send(resp Response) {
	if err := s.enc.Encode(resp); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func ok() Response { return Response{Status: "ok"} }

func errorResponse(id, message string, code int) Response {
	return Response{ID: id, Status: "error", Error: message, Code: code}
}
