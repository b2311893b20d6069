// Package translate defines the boundary to the Python-to-JavaScript
// translator and an adapter for translators that run as external commands.
//
// The translator itself is opaque here: it receives source text and an
// optional namespace and returns target text, or fails. This package adds no
// retries, no caching, and no interpretation of translator errors.
package translate

import (
	"bytes"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// Namespace is an opaque mapping handed to the translator unchanged.
type Namespace map[string]string

// Translator converts Python source text into JavaScript source text.
// Implementations must be deterministic over syntactically valid input.
type Translator interface {
	Translate(source string, ns Namespace) (string, error)
}

// Func adapts an ordinary function to the Translator interface.
type Func func(source string, ns Namespace) (string, error)

func (f Func) Translate(source string, ns Namespace) (string, error) {
	return f(source, ns)
}

// Error reports a rejected translation. The translator's own diagnostic text
// is preserved verbatim in Output.
type Error struct {
	Output string
	Err    error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("translation failed: %s", e.Output)
	}
	return fmt.Sprintf("translation failed: %v", e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Command runs an external translator executable. Source text is written to
// the process's stdin and the translated text is read from its stdout.
// Namespace entries are passed as repeated --namespace key=value arguments,
// in sorted key order so invocations stay deterministic.
type Command struct {
	Path string
	Args []string
}

// NewCommand returns a Command translator for the given executable.
func NewCommand(path string, args ...string) *Command {
	return &Command{Path: path, Args: args}
}

func (c *Command) Translate(source string, ns Namespace) (string, error) {
	args := append([]string{}, c.Args...)
	keys := make([]string, 0, len(ns))
	for k := range ns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--namespace", k+"="+ns[k])
	}

	cmd := exec.Command(c.Path, args...)
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &Error{Output: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.String(), nil
}
