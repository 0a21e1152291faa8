// Package clipboard copies chart readouts to the system clipboard, or to the
// local terminal through OSC52 when running over SSH.
package clipboard

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Method reports how the last copy reached the user
type Method string

const (
	MethodSystem Method = "system clipboard"
	MethodOSC52  Method = "terminal (OSC52)"
)

// Clipboard provides unified clipboard access with OSC52 support for SSH.
type Clipboard struct {
	// Last copied text, kept for the status bar and tests
	last string
	// Whether we're likely in an SSH session
	isSSH bool
	// Output writer for OSC52 sequences (typically os.Stdout)
	output io.Writer
	// Replaced in tests
	writeSystem func(string) error
}

// New creates a new Clipboard instance.
func New(output io.Writer) *Clipboard {
	if output == nil {
		output = os.Stdout
	}
	return &Clipboard{
		isSSH:       isSSHSession(),
		output:      output,
		writeSystem: clipboard.WriteAll,
	}
}

// isSSHSession detects if we're running in an SSH session.
func isSSHSession() bool {
	for _, key := range []string{"SSH_TTY", "SSH_CLIENT", "SSH_CONNECTION"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// Copy copies the given text to the clipboard.
// In SSH sessions, it uses OSC52 escape sequences.
// Locally, it tries the system clipboard first, then falls back to OSC52.
func (c *Clipboard) Copy(text string) (Method, error) {
	c.last = text

	if c.isSSH || clipboard.Unsupported {
		return MethodOSC52, c.copyOSC52(text)
	}

	if err := c.writeSystem(text); err != nil {
		return MethodOSC52, c.copyOSC52(text)
	}
	return MethodSystem, nil
}

// copyOSC52 copies text using OSC52 escape sequence.
func (c *Clipboard) copyOSC52(text string) error {
	seq := osc52.New(text)
	_, err := io.WriteString(c.output, seq.String())
	return err
}

// Last returns the most recently copied text
func (c *Clipboard) Last() string {
	return c.last
}

// IsSSH returns true if we're in an SSH session.
func (c *Clipboard) IsSSH() bool {
	return c.isSSH
}
