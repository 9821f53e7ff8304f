package cmd

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Grouped returns the arguments of the Context with every quoted string merged
// into a single argument without its quotation marks, so that
// 'Steve Two' 10 becomes [Steve Two, 10]. Backslashes escape the following
// character. An error is returned if a quotation mark is never closed.
func (c *Context) Grouped() ([]string, error) {
	words, err := shellquote.Split(c.ExecutedString(false))
	if err != nil {
		return nil, fmt.Errorf("group arguments of %q: %w", c.label, err)
	}
	return words, nil
}
