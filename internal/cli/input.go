// Package cli handles line-based input and printing for the wordfix commands.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordfix/internal/logger"
	"github.com/bastiangx/wordfix/pkg/autocorrect"
	"github.com/charmbracelet/log"
)

const helpText = `commands:
  :add WORD REPLACEMENT   add a rule
  :rm WORD                remove a rule
  :exclude WORD           never correct WORD
  :include WORD           undo :exclude
  :rules [PREFIX]         list rules
  :auto on|off            toggle autocorrect
  :caps on|off            toggle autocapitalize
  :q                      quit`

// InputHandler reads lines, corrects each one as if it was typed, and
// prints the changes. Lines starting with ':' are commands.
type InputHandler struct {
	corrector    *autocorrect.Corrector
	in           io.Reader
	out          io.Writer
	log          *log.Logger
	requestCount int
}

// NewInputHandler creates a handler reading from in and printing to out.
func NewInputHandler(c *autocorrect.Corrector, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		corrector: c,
		in:        in,
		out:       out,
		log:       logger.NewWithConfig(out, "", log.InfoLevel, false, false, log.TextFormatter),
	}
}

// Start runs the loop until EOF or :q.
func (h *InputHandler) Start() error {
	h.log.Print("WordFix REPL")
	h.log.Print("type a sentence and press Enter (:help for commands, Ctrl+D to exit):")

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !h.handleInput(line) {
			return nil
		}
	}
}

// handleInput processes one line. It returns false to stop the loop.
func (h *InputHandler) handleInput(line string) bool {
	h.requestCount++
	if strings.HasPrefix(line, ":") {
		return h.handleCommand(strings.Fields(line[1:]))
	}

	start := time.Now()
	fixed := h.corrector.Correct(line)
	log.Debugf("Took [ %v ] for %d runes", time.Since(start), len([]rune(line)))

	if fixed == line {
		h.log.Print("no corrections")
		return true
	}
	diff, hunks := Diff(line, fixed)
	h.log.Printf("%d correction(s): %s", hunks, diff)
	h.log.Print(fixed)
	return true
}

func (h *InputHandler) handleCommand(args []string) bool {
	if len(args) == 0 {
		h.log.Print(helpText)
		return true
	}
	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "q", "quit", "exit":
		return false
	case "help", "h":
		h.log.Print(helpText)
	case "add":
		if len(rest) < 2 {
			h.log.Error("usage: :add WORD REPLACEMENT")
			return true
		}
		err = h.corrector.AddRule(rest[0], strings.Join(rest[1:], " "))
	case "rm":
		if len(rest) != 1 {
			h.log.Error("usage: :rm WORD")
			return true
		}
		err = h.corrector.RemoveRule(rest[0])
	case "exclude":
		if len(rest) != 1 {
			h.log.Error("usage: :exclude WORD")
			return true
		}
		err = h.corrector.Exclude(rest[0])
	case "include":
		if len(rest) != 1 {
			h.log.Error("usage: :include WORD")
			return true
		}
		err = h.corrector.Include(rest[0])
	case "rules":
		prefix := ""
		if len(rest) > 0 {
			prefix = rest[0]
		}
		PrintRules(h.out, h.corrector.Rules().Rules(prefix))
	case "auto", "caps":
		on, ok := parseSwitch(rest)
		if !ok {
			h.log.Errorf("usage: :%s on|off", cmd)
			return true
		}
		if cmd == "auto" {
			h.corrector.SetAutocorrect(on)
		} else {
			h.corrector.SetAutocapitalize(on)
		}
		h.log.Printf("%s: %v", cmd, on)
	default:
		h.log.Errorf("unknown command: %s", cmd)
	}
	if err != nil {
		log.Debugf("command %s: %v", args[0], err)
	}
	return true
}

func parseSwitch(args []string) (bool, bool) {
	if len(args) != 1 {
		return false, false
	}
	switch args[0] {
	case "on", "true", "1":
		return true, true
	case "off", "false", "0":
		return false, true
	}
	return false, false
}
