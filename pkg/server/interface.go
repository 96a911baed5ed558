/*
Package server implements msgpack IPC for editor hosts.

The server reads a stream of msgpack requests from stdin and writes one
msgpack response per request to stdout. Each request carries an ID and an op;
document ops also carry the document key, its full text and the cursor as a
rune offset, taken after the host applied the user's edit.

A typed character:

	{"id": "7", "op": "edit", "doc": "main.md", "text": "so teh", "cur": 6, "ins": "h"}

The server answers with the action the host must perform:

	{"id": "7", "status": "ok", "a": "suggest", "s": {"w": "teh", "r": "the", "st": 3, "en": 6}, "t": 41}

Accepting, dismissing, or moving the cursor use the same fields with the ops
"accept", "dismiss" and "cursor". Replacements come back as an edit:

	{"id": "8", "status": "ok", "a": "replace", "res": "accepted", "ed": {"st": 3, "en": 6, "x": "the", "cur": 6, "why": "rule"}, "t": 12}

Rule management ops ("add_rule", "remove_rule", "exclude", "include",
"lookup") take "w" and "to". "fix" corrects a whole "text" at once.
Feedback messages produced by an op are returned in "msgs".

Errors are reported inline with status "error", a message in "e" and a code
in "c". 400 is a malformed or invalid request, 500 an internal failure.

Each document key gets its own suggestion session. "close" drops it.
*/
package server

// Request is a single IPC request.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Doc    string `msgpack:"doc,omitempty"`
	Text   string `msgpack:"text,omitempty"`
	Cursor uint32 `msgpack:"cur,omitempty"`
	Insert string `msgpack:"ins,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	To     string `msgpack:"to,omitempty"`
}

// Suggestion is a pending inline suggestion.
type Suggestion struct {
	Word        string `msgpack:"w"`
	Replacement string `msgpack:"r"`
	Start       uint32 `msgpack:"st"`
	End         uint32 `msgpack:"en"`
}

// Edit replaces [Start, End) with Text and moves the cursor.
type Edit struct {
	Start  uint32 `msgpack:"st"`
	End    uint32 `msgpack:"en"`
	Text   string `msgpack:"x"`
	Cursor uint32 `msgpack:"cur"`
	Reason string `msgpack:"why"`
}

// Response answers exactly one Request.
type Response struct {
	ID         string      `msgpack:"id"`
	Status     string      `msgpack:"status"`
	Action     string      `msgpack:"a,omitempty"`
	Resolution string      `msgpack:"res,omitempty"`
	Suggestion *Suggestion `msgpack:"s,omitempty"`
	Edit       *Edit       `msgpack:"ed,omitempty"`
	Text       string      `msgpack:"text,omitempty"`
	Found      bool        `msgpack:"found,omitempty"`
	Messages   []string    `msgpack:"msgs,omitempty"`
	Error      string      `msgpack:"e,omitempty"`
	Code       int         `msgpack:"c,omitempty"`
	TimeTaken  int64       `msgpack:"t"`
}
