package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bastiangx/wordfix/pkg/rules"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// maxBody caps request bodies for /fix and rule updates.
const maxBody = 1 << 20

// FixRequest is the body of POST /fix.
type FixRequest struct {
	Text string `json:"text"`
}

// FixResponse is returned by POST /fix.
type FixResponse struct {
	Text    string `json:"text"`
	Changed bool   `json:"changed"`
}

// RuleRequest is the body of PUT /rules/{word}.
type RuleRequest struct {
	To string `json:"to"`
}

// RuleResponse describes one rule after a change. Saved is false when the
// rule is active but could not be persisted.
type RuleResponse struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Saved bool   `json:"saved"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) fix(w http.ResponseWriter, r *http.Request) {
	var req FixRequest
	if !decode(w, r, &req) {
		return
	}
	out := s.corrector.Correct(req.Text)
	writeJSON(w, http.StatusOK, FixResponse{Text: out, Changed: out != req.Text})
}

func (s *Server) listRules(w http.ResponseWriter, r *http.Request) {
	list := s.corrector.Rules().Rules(r.URL.Query().Get("prefix"))
	if list == nil {
		list = []rules.Rule{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) getRule(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	to, ok := s.corrector.Rules().Lookup(word)
	if !ok {
		writeError(w, http.StatusNotFound, "no rule for "+rules.Normalize(word))
		return
	}
	writeJSON(w, http.StatusOK, RuleResponse{From: rules.Normalize(word), To: to, Saved: true})
}

func (s *Server) putRule(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	var req RuleRequest
	if !decode(w, r, &req) {
		return
	}
	saved, ok := s.mutation(w, s.corrector.AddRule(word, req.To))
	if !ok {
		return
	}
	to, _ := s.corrector.Rules().Lookup(word)
	writeJSON(w, http.StatusOK, RuleResponse{From: rules.Normalize(word), To: to, Saved: saved})
}

func (s *Server) deleteRule(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.mutation(w, s.corrector.RemoveRule(mux.Vars(r)["word"])); ok {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) listExclusions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.corrector.Rules().Exclusions())
}

func (s *Server) putExclusion(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.mutation(w, s.corrector.Exclude(mux.Vars(r)["word"])); ok {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) deleteExclusion(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.mutation(w, s.corrector.Include(mux.Vars(r)["word"])); ok {
		w.WriteHeader(http.StatusNoContent)
	}
}

// mutation maps a rule store error to a reply. It reports whether the change
// was persisted and whether the caller should write a success reply.
func (s *Server) mutation(w http.ResponseWriter, err error) (saved, ok bool) {
	var invalid *rules.InvalidRuleError
	var persist *rules.PersistError
	switch {
	case err == nil:
		return true, true
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, invalid.Error())
		return false, false
	case errors.As(err, &persist):
		log.Warnf("Rule change not persisted: %v", err)
		return false, true
	default:
		log.Errorf("Rule change: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return false, false
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
