package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordfix/pkg/autocorrect"
	"github.com/charmbracelet/log"
)

// Check corrects the file at path and prints a word diff to out.
// With write set, the corrected text replaces the file contents.
// It reports whether anything changed.
func Check(c *autocorrect.Corrector, path string, write bool, out io.Writer) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	before := string(data)
	after := c.Correct(before)
	if after == before {
		log.Debugf("%s: no corrections", path)
		return false, nil
	}

	diff, hunks := Diff(before, after)
	fmt.Fprintf(out, "%s: %d correction(s)\n%s\n", path, hunks, diff)

	if write {
		if err := os.WriteFile(path, []byte(after), info.Mode().Perm()); err != nil {
			return true, fmt.Errorf("write %s: %w", path, err)
		}
		log.Infof("Wrote %s", path)
	}
	return true, nil
}
